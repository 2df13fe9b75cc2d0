package t2048

// DefaultWinTarget is the tile value that wins the classic game.
const DefaultWinTarget = 2048

// Outcome classifies a grid.
type Outcome string

const (
	OutcomeNone Outcome = "none"
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// HasPossibleMerge returns true if any horizontally or vertically adjacent
// tiles hold the same non-zero value.
func HasPossibleMerge(g Grid) bool {
	n := g.Size()
	for r := range n {
		for c := range n {
			val := g.At(r, c)
			if val == 0 {
				continue
			}
			if c < n-1 && g.At(r, c+1) == val {
				return true
			}
			if r < n-1 && g.At(r+1, c) == val {
				return true
			}
		}
	}
	return false
}

// HasMoves returns true if at least one direction would change the grid.
func HasMoves(g Grid) bool {
	return g.HasEmptyCell() || HasPossibleMerge(g)
}

// Evaluate reports a win if any tile equals target, a loss if the grid is
// full with no adjacent equal pair, and OutcomeNone otherwise.
func Evaluate(g Grid, target int) Outcome {
	if g.Contains(target) {
		return OutcomeWin
	}
	if !HasMoves(g) {
		return OutcomeLose
	}
	return OutcomeNone
}
