package t2048

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction is the way every tile slides during a move.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four moves in a fixed order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return 0, fmt.Errorf("t2048: unknown direction %q", s)
}

// MoveResult describes the outcome of applying one direction to a grid.
type MoveResult struct {
	Grid       Grid
	ScoreDelta int
	Merged     []Cell // cells holding a freshly merged tile, row-major
	Changed    bool
}

// mergeRowLeft slides a row left and merges equal neighbours once each.
// Returns the new row, the score gained and the final indices of merged tiles.
func mergeRowLeft(row []int) (result []int, score int, merged []int) {
	work := SlideRowLeft(row)
	hit := make([]bool, len(work))
	for i := 0; i < len(work)-1; i++ {
		if work[i] == 0 || work[i] != work[i+1] {
			continue
		}
		work[i] *= 2
		work[i+1] = 0
		score += work[i]
		hit[i] = true
		i++ // the merged tile is done for this move
	}

	// Close the gaps, tracking where merged tiles end up.
	result = make([]int, len(work))
	pos := 0
	for i, v := range work {
		if v == 0 {
			continue
		}
		result[pos] = v
		if hit[i] {
			merged = append(merged, pos)
		}
		pos++
	}
	return result, score, merged
}

// orient rotates g so that dir becomes a move to the left.
func orient(g Grid, dir Direction) Grid {
	switch dir {
	case DirLeft:
		return g.Clone()
	case DirRight:
		return reverseRows(g)
	case DirUp:
		return RotateCounterClockwise(g)
	case DirDown:
		return RotateClockwise(g)
	}
	panic(fmt.Sprintf("t2048: invalid direction %d", int(dir)))
}

// unorient undoes orient.
func unorient(g Grid, dir Direction) Grid {
	switch dir {
	case DirRight:
		return reverseRows(g)
	case DirUp:
		return RotateClockwise(g)
	case DirDown:
		return RotateCounterClockwise(g)
	}
	return g
}

// boardCell maps position i of oriented row r back to board coordinates.
func boardCell(n, r, i int, dir Direction) Cell {
	switch dir {
	case DirRight:
		return Cell{Row: r, Col: n - 1 - i}
	case DirUp:
		return Cell{Row: i, Col: n - 1 - r}
	case DirDown:
		return Cell{Row: n - 1 - i, Col: r}
	}
	return Cell{Row: r, Col: i}
}

// ApplyMove slides every tile in dir and merges equal pairs, leading edge
// first. The input grid is never modified.
func ApplyMove(g Grid, dir Direction) MoveResult {
	n := g.Size()
	work := orient(g, dir)

	score := 0
	var merged []Cell
	for r := range n {
		row, gained, idx := mergeRowLeft(work.row(r))
		copy(work.cells[r*n:(r+1)*n], row)
		score += gained
		for _, i := range idx {
			merged = append(merged, boardCell(n, r, i, dir))
		}
	}

	out := unorient(work, dir)
	if out.Equal(g) {
		return MoveResult{Grid: g.Clone()}
	}

	slices.SortFunc(merged, func(a, b Cell) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col))
	})

	return MoveResult{
		Grid:       out,
		ScoreDelta: score,
		Merged:     merged,
		Changed:    true,
	}
}

// CanMoveIn reports whether dir would change the grid.
func CanMoveIn(g Grid, dir Direction) bool {
	return ApplyMove(g, dir).Changed
}
