package t2048

import (
	"math/rand"
	"slices"
	"testing"
)

func TestMergeRowLeft(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		expected  []int
		score     int
		mergedIdx []int
	}{
		{"empty row", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0, nil},
		{"single tile", []int{0, 0, 0, 2}, []int{2, 0, 0, 0}, 0, nil},
		{"two same", []int{2, 2, 0, 0}, []int{4, 0, 0, 0}, 4, []int{0}},
		{"two same with gap", []int{2, 0, 2, 0}, []int{4, 0, 0, 0}, 4, []int{0}},
		{"three same", []int{2, 2, 2, 0}, []int{4, 2, 0, 0}, 4, []int{0}},
		{"four same", []int{2, 2, 2, 2}, []int{4, 4, 0, 0}, 8, []int{0, 1}},
		{"two pairs", []int{2, 2, 4, 4}, []int{4, 8, 0, 0}, 12, []int{0, 1}},
		{"no merge", []int{2, 4, 8, 16}, []int{2, 4, 8, 16}, 0, nil},
		{"merge at end", []int{0, 0, 4, 4}, []int{8, 0, 0, 0}, 8, []int{0}},
		{"no chain merge", []int{4, 4, 8, 0}, []int{8, 8, 0, 0}, 8, []int{0}},
		{"leading edge wins", []int{2, 0, 2, 2}, []int{4, 2, 0, 0}, 4, []int{0}},
		{"merge after a blocker", []int{2, 8, 8, 0}, []int{2, 16, 0, 0}, 16, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, score, merged := mergeRowLeft(tt.input)
			if !slices.Equal(result, tt.expected) {
				t.Errorf("mergeRowLeft(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if score != tt.score {
				t.Errorf("mergeRowLeft(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if !slices.Equal(merged, tt.mergedIdx) {
				t.Errorf("mergeRowLeft(%v) merged = %v, want %v", tt.input, merged, tt.mergedIdx)
			}
		})
	}
}

func TestApplyMoveDirections(t *testing.T) {
	horizontal := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}
	vertical := [][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}

	tests := []struct {
		name   string
		start  [][]int
		dir    Direction
		want   [][]int
		score  int
		merged []Cell
	}{
		{
			name:  "left",
			start: horizontal,
			dir:   DirLeft,
			want: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score:  20,
			merged: []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}},
		},
		{
			name:  "right",
			start: horizontal,
			dir:   DirRight,
			want: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score:  20,
			merged: []Cell{{0, 3}, {1, 3}, {2, 2}, {2, 3}},
		},
		{
			name:  "up",
			start: vertical,
			dir:   DirUp,
			want: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:  20,
			merged: []Cell{{0, 0}, {0, 1}, {0, 2}, {1, 2}},
		},
		{
			name:  "down",
			start: vertical,
			dir:   DirDown,
			want: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score:  20,
			merged: []Cell{{2, 2}, {3, 0}, {3, 1}, {3, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := FromRows(tt.start)
			res := ApplyMove(start, tt.dir)

			if !res.Changed {
				t.Fatal("move should change the grid")
			}
			if want := FromRows(tt.want); !res.Grid.Equal(want) {
				t.Errorf("grid:\n%v\nwant\n%v", res.Grid, want)
			}
			if res.ScoreDelta != tt.score {
				t.Errorf("score delta = %d, want %d", res.ScoreDelta, tt.score)
			}
			if !slices.Equal(res.Merged, tt.merged) {
				t.Errorf("merged = %v, want %v", res.Merged, tt.merged)
			}
			if !start.Equal(FromRows(tt.start)) {
				t.Error("ApplyMove modified its input")
			}
		})
	}
}

func TestApplyMoveSingleMergeLeft(t *testing.T) {
	g := FromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := ApplyMove(g, DirLeft)
	if res.Grid.At(0, 0) != 4 || res.Grid.Sum() != 4 {
		t.Errorf("grid after left:\n%v", res.Grid)
	}
	if res.ScoreDelta != 4 {
		t.Errorf("score delta = %d, want 4", res.ScoreDelta)
	}
	if !slices.Equal(res.Merged, []Cell{{0, 0}}) {
		t.Errorf("merged = %v, want [(0,0)]", res.Merged)
	}
	if !res.Changed {
		t.Error("Changed should be true")
	}
}

func TestApplyMoveLeadingEdgeRight(t *testing.T) {
	// The two rightmost 2s merge when moving right; the third is left alone.
	g := FromRows([][]int{
		{2, 2, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := ApplyMove(g, DirRight)
	want := []int{0, 0, 2, 4}
	if got := res.Grid.row(0); !slices.Equal(got, want) {
		t.Errorf("row 0 = %v, want %v", got, want)
	}
	if !slices.Equal(res.Merged, []Cell{{0, 3}}) {
		t.Errorf("merged = %v, want [(0,3)]", res.Merged)
	}
}

func TestApplyMoveNoChange(t *testing.T) {
	full := FromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	packedLeft := FromRows([][]int{
		{2, 4, 0, 0},
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{16, 2, 32, 0},
	})

	for _, dir := range Directions {
		res := ApplyMove(full, dir)
		if res.Changed || res.ScoreDelta != 0 || len(res.Merged) != 0 {
			t.Errorf("%v on unmergeable full grid: %+v", dir, res)
		}
		if !res.Grid.Equal(full) {
			t.Errorf("%v on unmergeable full grid changed it", dir)
		}
	}

	res := ApplyMove(packedLeft, DirLeft)
	if res.Changed || !res.Grid.Equal(packedLeft) {
		t.Errorf("left on a left-packed grid should be a no-op, got\n%v", res.Grid)
	}
	if !CanMoveIn(packedLeft, DirRight) {
		t.Error("right on a left-packed grid should be possible")
	}
}

func TestApplyMoveProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2048))

	for _, n := range []int{3, 4, 5} {
		for range 200 {
			g := randomGrid(rng, n)
			tilesBefore := n*n - len(g.EmptyCells())

			for _, dir := range Directions {
				res := ApplyMove(g, dir)

				// Merging two tiles into one keeps the board total.
				if res.Grid.Sum() != g.Sum() {
					t.Fatalf("%v: sum %d -> %d for\n%v", dir, g.Sum(), res.Grid.Sum(), g)
				}

				created := 0
				for _, c := range res.Merged {
					created += res.Grid.At(c.Row, c.Col)
				}
				if created != res.ScoreDelta {
					t.Fatalf("%v: score delta %d, merged tiles add to %d", dir, res.ScoreDelta, created)
				}

				tilesAfter := n*n - len(res.Grid.EmptyCells())
				if tilesAfter != tilesBefore-len(res.Merged) {
					t.Fatalf("%v: %d tiles -> %d with %d merges", dir, tilesBefore, tilesAfter, len(res.Merged))
				}

				if len(res.Merged) > n*(n/2) {
					t.Fatalf("%v: %d merges on %dx%d", dir, len(res.Merged), n, n)
				}

				if res.Changed == res.Grid.Equal(g) {
					t.Fatalf("%v: Changed=%v disagrees with grid equality", dir, res.Changed)
				}
			}

			// At most n/2 merges per row when moving horizontally.
			res := ApplyMove(g, DirLeft)
			perRow := make([]int, n)
			for _, c := range res.Merged {
				perRow[c.Row]++
			}
			for r, count := range perRow {
				if count > n/2 {
					t.Fatalf("row %d merged %d times", r, count)
				}
			}
		}
	}
}

func TestApplyMoveInvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ApplyMove with an invalid direction should panic")
		}
	}()
	ApplyMove(New(4), Direction(42))
}

func TestParseDirection(t *testing.T) {
	for _, dir := range Directions {
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), got, err)
		}
	}

	if got, err := ParseDirection(" Left "); err != nil || got != DirLeft {
		t.Errorf("ParseDirection should trim and ignore case, got %v, %v", got, err)
	}
	if _, err := ParseDirection("diagonal"); err == nil {
		t.Error("ParseDirection(diagonal) should fail")
	}
}
