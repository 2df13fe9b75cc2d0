package t2048

// Snapshot captures everything a renderer or persistence adapter needs after
// a state change.
type Snapshot struct {
	Size      int
	Target    int
	Board     [][]int
	Score     int
	BestScore int
	NewBest   bool
	Moves     int
	MaxTile   int
	Merged    []Cell
	Spawned   *Cell
	State     State
	Outcome   Outcome
	CanUndo   bool
}

// Snapshot returns the current session view.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Size:      s.cfg.Size,
		Target:    s.cfg.WinTarget,
		Board:     s.grid.Rows(),
		Score:     s.score,
		BestScore: s.best,
		NewBest:   s.IsNewBest(),
		Moves:     s.moves,
		MaxTile:   s.grid.MaxTile(),
		Merged:    s.LastMerged(),
		State:     s.state,
		Outcome:   s.outcome,
		CanUndo:   s.CanUndo(),
	}
	if at, ok := s.LastSpawn(); ok {
		snap.Spawned = &at
	}
	return snap
}

// IsMerged reports whether (row, col) was merged on the last move.
func (s Snapshot) IsMerged(row, col int) bool {
	for _, c := range s.Merged {
		if c.Row == row && c.Col == col {
			return true
		}
	}
	return false
}

// IsSpawned reports whether (row, col) holds the newest tile.
func (s Snapshot) IsSpawned(row, col int) bool {
	return s.Spawned != nil && s.Spawned.Row == row && s.Spawned.Col == col
}
