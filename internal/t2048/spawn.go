package t2048

import "fmt"

// DefaultSpawn4Prob is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4Prob = 0.10

// RandSource is the subset of *rand.Rand the spawner needs.
// Tests inject a seeded source to fix tile placement.
type RandSource interface {
	Intn(n int) int
	Float64() float64
}

// Spawner places new tiles on empty cells.
type Spawner struct {
	rng        RandSource
	spawn4Prob float64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandSource, spawn4Prob float64) *Spawner {
	if rng == nil {
		panic("t2048: spawner needs a random source")
	}
	if spawn4Prob < 0 || spawn4Prob > 1 {
		panic(fmt.Sprintf("t2048: spawn4 probability %v outside [0,1]", spawn4Prob))
	}
	return &Spawner{rng: rng, spawn4Prob: spawn4Prob}
}

// Spawn returns a copy of g with one new tile (2 or 4) in a uniformly chosen
// empty cell. When the grid is full it returns g unchanged and ok=false.
func (s *Spawner) Spawn(g Grid) (out Grid, at Cell, ok bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return g, Cell{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.spawn4Prob {
		value = 4
	}

	return g.With(cell, value), cell, true
}
