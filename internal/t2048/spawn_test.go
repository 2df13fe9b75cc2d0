package t2048

import (
	"math/rand"
	"testing"
)

// fixedRand returns the same draws every time.
type fixedRand struct {
	intn int
	frac float64
}

func (f fixedRand) Intn(n int) int   { return f.intn % n }
func (f fixedRand) Float64() float64 { return f.frac }

func TestSpawnPlacesTileInEmptyCell(t *testing.T) {
	g := FromRows([][]int{
		{2, 0, 4, 0},
		{8, 8, 8, 8},
		{8, 8, 8, 8},
		{8, 8, 8, 8},
	})

	tests := []struct {
		name  string
		rng   fixedRand
		cell  Cell
		value int
	}{
		{"first empty, a two", fixedRand{intn: 0, frac: 0.5}, Cell{Row: 0, Col: 1}, 2},
		{"second empty, a four", fixedRand{intn: 1, frac: 0.05}, Cell{Row: 0, Col: 3}, 4},
		{"boundary draw is a two", fixedRand{intn: 0, frac: DefaultSpawn4Prob}, Cell{Row: 0, Col: 1}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sp := NewSpawner(tt.rng, DefaultSpawn4Prob)
			out, at, ok := sp.Spawn(g)
			if !ok {
				t.Fatal("Spawn should succeed with empty cells")
			}
			if at != tt.cell {
				t.Errorf("spawned at %v, want %v", at, tt.cell)
			}
			if got := out.At(at.Row, at.Col); got != tt.value {
				t.Errorf("spawned value %d, want %d", got, tt.value)
			}
			if len(out.EmptyCells()) != len(g.EmptyCells())-1 {
				t.Error("exactly one cell should be filled")
			}
			if g.At(at.Row, at.Col) != 0 {
				t.Error("Spawn modified its input")
			}
		})
	}
}

func TestSpawnFullGrid(t *testing.T) {
	g := FromRows([][]int{
		{2, 4},
		{4, 2},
	})

	sp := NewSpawner(rand.New(rand.NewSource(1)), DefaultSpawn4Prob)
	out, _, ok := sp.Spawn(g)
	if ok {
		t.Error("Spawn on a full grid should report ok=false")
	}
	if !out.Equal(g) {
		t.Error("Spawn on a full grid should return it unchanged")
	}
}

func TestSpawnDistribution(t *testing.T) {
	const draws = 10000
	sp := NewSpawner(rand.New(rand.NewSource(99)), DefaultSpawn4Prob)
	empty := New(4)

	fours := 0
	perCell := make(map[Cell]int)
	for range draws {
		out, at, ok := sp.Spawn(empty)
		if !ok {
			t.Fatal("Spawn on an empty grid failed")
		}
		perCell[at]++
		switch out.At(at.Row, at.Col) {
		case 4:
			fours++
		case 2:
		default:
			t.Fatalf("spawned %d", out.At(at.Row, at.Col))
		}
	}

	if ratio := float64(fours) / draws; ratio < 0.08 || ratio > 0.12 {
		t.Errorf("share of 4s = %.3f, want about %.2f", ratio, DefaultSpawn4Prob)
	}
	if len(perCell) != 16 {
		t.Fatalf("only %d cells ever chosen", len(perCell))
	}
	for cell, count := range perCell {
		if count < 450 || count > 800 {
			t.Errorf("cell %v chosen %d times, expected about %d", cell, count, draws/16)
		}
	}
}

func TestSpawnDeterministicWithSeed(t *testing.T) {
	a := NewSpawner(rand.New(rand.NewSource(42)), DefaultSpawn4Prob)
	b := NewSpawner(rand.New(rand.NewSource(42)), DefaultSpawn4Prob)

	ga, gb := New(4), New(4)
	for range 10 {
		ga, _, _ = a.Spawn(ga)
		gb, _, _ = b.Spawn(gb)
	}
	if !ga.Equal(gb) {
		t.Errorf("same seed produced different grids:\n%v\nvs\n%v", ga, gb)
	}
}

func TestNewSpawnerRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rng  RandSource
		p    float64
	}{
		{"nil source", nil, 0.1},
		{"negative probability", fixedRand{}, -0.1},
		{"probability above one", fixedRand{}, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewSpawner should panic")
				}
			}()
			NewSpawner(tt.rng, tt.p)
		})
	}
}
