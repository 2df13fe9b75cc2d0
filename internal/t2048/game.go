package t2048

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// VariantID names a board setup for score storage. The classic 4x4 game
// aiming at 2048 is simply "2048".
func VariantID(size, target int) string {
	if size == DefaultSize && target == DefaultWinTarget {
		return "2048"
	}
	return fmt.Sprintf("2048_%dx%d_%d", size, size, target)
}

// Game adapts a Session to the platform: it turns input frames into session
// calls and draws the result into a core.Screen.
type Game struct {
	cfg     SessionConfig
	session *Session

	screenW  int
	screenH  int
	tooSmall bool
}

// NewGame creates a game that will start sessions with cfg.
func NewGame(cfg SessionConfig) *Game {
	return &Game{cfg: cfg.withDefaults()}
}

// ID returns the storage identifier of this variant.
func (g *Game) ID() string {
	return VariantID(g.cfg.Size, g.cfg.WinTarget)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.ID() == "2048" {
		return "2048"
	}
	return fmt.Sprintf("2048 (%dx%d, %d)", g.cfg.Size, g.cfg.Size, g.cfg.WinTarget)
}

// Reset starts a fresh session seeded from cfg.Seed. The best score carries
// over from the previous session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sc := g.cfg
	if g.session != nil {
		sc.BestScore = max(sc.BestScore, g.session.BestScore())
	}
	g.session = NewSession(sc, rand.New(rand.NewSource(cfg.Seed)))
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize records the terminal size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for board and HUD.
func (g *Game) checkScreenSize() {
	boardW, boardH := g.boardDims()
	g.tooSmall = g.screenW < boardW+2 || g.screenH < boardH+hudHeight+footerHeight
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step handles one input frame. Commands take priority over moves, and at
// most one thing happens per frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	changed := false
	switch {
	case in.Has(core.ActionNewGame):
		g.session.NewGame()
		changed = true
	case in.Has(core.ActionUndo):
		changed = g.session.Undo()
	case in.Has(core.ActionContinue):
		changed = g.session.Continue()
	default:
		if dir, ok := directionFor(in); ok {
			changed = g.session.Move(dir).Changed
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor picks the move requested by the frame, if any.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{BestScore: g.cfg.BestScore}
	}
	return core.GameState{
		Score:     g.session.Score(),
		BestScore: g.session.BestScore(),
		NewBest:   g.session.IsNewBest(),
		GameOver:  g.session.IsOver(),
		Won:       g.session.State() == StateWon,
	}
}
