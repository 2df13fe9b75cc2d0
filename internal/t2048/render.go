package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth    = 7 // Width of each cell including its left border
	cellHeight   = 2 // Height of each cell including its top border
	hudHeight    = 4
	footerHeight = 1 // blank row under the board
)

// mergedColor marks tiles produced by the last move.
const mergedColor = core.ColorBrightBlue

// tileColor maps a tile value to its colour.
func tileColor(v int) core.Color {
	switch v {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorBrightGreen
	case 512:
		return core.ColorGreen
	case 1024:
		return core.ColorBrightCyan
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

func (g *Game) boardDims() (w, h int) {
	n := g.cfg.Size
	return n*cellWidth + 1, n*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	boardW, boardH := g.boardDims()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, snap, boardX, boardW)
	g.renderBoard(dst, snap, boardX, boardY)
	g.renderOverlays(dst, snap, boardX, boardY, boardW, boardH)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, scores and undo status.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", snap.Score))

	best := fmt.Sprintf("Best: %d", snap.BestScore)
	dst.DrawText(max(boardX+boardW-len(best), boardX), 1, best)

	info := fmt.Sprintf("Target: %d", snap.Target)
	if snap.CanUndo {
		info += "  [undo]"
	}
	dst.DrawTextColor(boardX, 2, info, core.ColorGray)
}

// renderBoard draws the n×n grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot, boardX, boardY int) {
	n := snap.Size
	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridJoint(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for r := range n {
		for c := range n {
			val := snap.Board[r][c]
			if val == 0 {
				continue
			}

			color := tileColor(val)
			if snap.IsMerged(r, c) {
				color = mergedColor
			}

			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)
			cellX := boardX + c*cellWidth + 1
			cellY := boardY + r*cellHeight + 1
			dst.DrawTextColor(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// gridJoint picks the box-drawing rune for grid intersection (x, y).
func gridJoint(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the win and game-over boxes.
func (g *Game) renderOverlays(dst *core.Screen, snap Snapshot, boardX, boardY, boardW, boardH int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch snap.State {
	case StateWon:
		g.drawOverlay(dst, centerX, centerY,
			fmt.Sprintf("You reached %d!", snap.Target),
			"C: keep going",
			"N: new game")
	case StateLost:
		title := "GAME OVER"
		if snap.NewBest {
			title = "NEW HIGH SCORE!"
		}
		g.drawOverlay(dst, centerX, centerY,
			title,
			fmt.Sprintf("Max tile: %d", snap.MaxTile),
			"N: new game  U: undo")
	}
}

// drawOverlay draws a centered, boxed text block.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
