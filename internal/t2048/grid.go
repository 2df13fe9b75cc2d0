// Package t2048 implements the 2048 rule engine: grid transforms, the merge
// algorithm, tile spawning, terminal detection, undo history and the session
// state machine that ties them together.
package t2048

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultSize is the classic board dimension.
const DefaultSize = 4

// Cell addresses a grid position.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is an immutable N×N board. Zero means empty; every other value is a
// power of two. All operations return new grids.
type Grid struct {
	n     int
	cells []int // row-major
}

// New returns an empty n×n grid.
func New(n int) Grid {
	if n < 2 {
		panic(fmt.Sprintf("t2048: grid size %d, need at least 2", n))
	}
	return Grid{n: n, cells: make([]int, n*n)}
}

// FromRows builds a grid from a square matrix.
// It panics on ragged or non-square input and on invalid tile values.
func FromRows(rows [][]int) Grid {
	n := len(rows)
	g := New(n)
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("t2048: row %d has %d cells, want %d", r, len(row), n))
		}
		for c, v := range row {
			if !validTile(v) {
				panic(fmt.Sprintf("t2048: invalid tile %d at (%d,%d)", v, r, c))
			}
			g.cells[r*n+c] = v
		}
	}
	return g
}

// validTile reports whether v is 0 or a power of two >= 2.
func validTile(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return g.n
}

// At returns the value at (row, col).
func (g Grid) At(row, col int) int {
	return g.cells[row*g.n+col]
}

// With returns a copy of g with the given cell set to v.
func (g Grid) With(c Cell, v int) Grid {
	if !validTile(v) {
		panic(fmt.Sprintf("t2048: invalid tile %d at %s", v, c))
	}
	out := g.Clone()
	out.cells[c.Row*g.n+c.Col] = v
	return out
}

// Clone returns a deep copy.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.cells))
	copy(cells, g.cells)
	return Grid{n: g.n, cells: cells}
}

// Equal reports element-wise equality.
func (g Grid) Equal(other Grid) bool {
	if g.n != other.n {
		return false
	}
	for i, v := range g.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Rows returns the grid as a freshly allocated matrix.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.n)
	for r := range g.n {
		rows[r] = make([]int, g.n)
		copy(rows[r], g.cells[r*g.n:(r+1)*g.n])
	}
	return rows
}

// row returns a copy of row r.
func (g Grid) row(r int) []int {
	out := make([]int, g.n)
	copy(out, g.cells[r*g.n:(r+1)*g.n])
	return out
}

// EmptyCells returns the empty positions in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, v := range g.cells {
		if v == 0 {
			cells = append(cells, Cell{Row: i / g.n, Col: i % g.n})
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func (g Grid) HasEmptyCell() bool {
	for _, v := range g.cells {
		if v == 0 {
			return true
		}
	}
	return false
}

// MaxTile returns the highest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g.cells {
		maxVal = max(maxVal, v)
	}
	return maxVal
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, v := range g.cells {
		total += v
	}
	return total
}

// Contains reports whether any cell holds v.
func (g Grid) Contains(v int) bool {
	for _, c := range g.cells {
		if c == v {
			return true
		}
	}
	return false
}

// String renders the grid one row per line, for logs and test failures.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range g.n {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.n {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g.At(r, c)))
		}
	}
	return sb.String()
}

// SlideRowLeft compacts non-zero values to the front of the row, keeping
// their order and padding with zeros. It never merges.
func SlideRowLeft(row []int) []int {
	out := make([]int, len(row))
	writePos := 0
	for _, v := range row {
		if v != 0 {
			out[writePos] = v
			writePos++
		}
	}
	return out
}

// RotateClockwise turns the grid a quarter turn clockwise: column c, read
// bottom to top, becomes row c.
func RotateClockwise(g Grid) Grid {
	n := g.n
	out := New(n)
	for r := range n {
		for c := range n {
			out.cells[r*n+c] = g.cells[(n-1-c)*n+r]
		}
	}
	return out
}

// RotateCounterClockwise is the inverse of RotateClockwise.
func RotateCounterClockwise(g Grid) Grid {
	n := g.n
	out := New(n)
	for r := range n {
		for c := range n {
			out.cells[r*n+c] = g.cells[c*n+(n-1-r)]
		}
	}
	return out
}

// reverseRows mirrors every row left to right.
func reverseRows(g Grid) Grid {
	n := g.n
	out := New(n)
	for r := range n {
		for c := range n {
			out.cells[r*n+c] = g.cells[r*n+(n-1-c)]
		}
	}
	return out
}
