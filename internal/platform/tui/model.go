package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Options configures the game screen.
type Options struct {
	Runtime        core.RuntimeConfig
	SwipeThreshold int       // drag distance in cells; 0 uses 2
	Recorder       *Recorder // nil disables persistence
	Logger         *log.Logger
	ScreenshotDir  string // defaults to ~/.t2048/screenshots
}

// Model is the Bubble Tea model for a game of 2048.
// Every key press or swipe becomes one input frame; there is no tick loop.
type Model struct {
	game     *t2048.Game
	screen   *core.Screen
	palette  Palette
	keys     KeyMap
	help     help.Model
	recorder *Recorder
	logger   *log.Logger
	config   core.RuntimeConfig

	swipeThreshold int
	screenshotDir  string
	dragging       bool
	dragX, dragY   int

	gameState core.GameState
	gameUUID  string // storage id of the game in progress
	won       bool   // target reached during this game
	quitting  bool
	width     int
	height    int
}

// NewModel creates a model and starts the first game.
func NewModel(game *t2048.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.SwipeThreshold <= 0 {
		opts.SwipeThreshold = 2
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Recorder == nil {
		opts.Recorder = NewRecorder(nil, game.ID(), opts.Logger)
	}
	if opts.ScreenshotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.ScreenshotDir = filepath.Join(home, ".t2048", "screenshots")
		}
	}

	m := Model{
		game:           game,
		palette:        DefaultPalette(),
		keys:           DefaultKeyMap(),
		help:           help.New(),
		recorder:       opts.Recorder,
		logger:         opts.Logger,
		config:         cfg,
		swipeThreshold: opts.SwipeThreshold,
		screenshotDir:  opts.ScreenshotDir,
		gameUUID:       uuid.NewString(),
		width:          cfg.ScreenW,
		height:         cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.boardHeight())

	cfg.ScreenH = m.boardHeight()
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.width, m.height)
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.record()
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	m.step(action)
	return m, nil
}

// handleMouse turns a left-button drag that starts on the game area into a
// swipe. Presses on the help bar are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	area := core.NewRect(0, 0, m.screen.Width(), m.screen.Height())

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && area.Contains(msg.X, msg.Y) {
			m.dragging = true
			m.dragX, m.dragY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		action := core.ResolveSwipe(msg.X-m.dragX, msg.Y-m.dragY, m.swipeThreshold)
		if action != core.ActionNone {
			m.step(action)
		}
	}
	return m, nil
}

// handleResize keeps the game running at the new size.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.width = width
	m.height = height
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	h := m.boardHeight()
	m.screen.Resize(width, h)
	m.game.Resize(width, h)
	return m, nil
}

// step feeds one action to the game and records the game when it ends.
func (m *Model) step(action core.Action) {
	if action == core.ActionNewGame {
		m.record()
	}

	prev := m.gameState
	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	if action == core.ActionNewGame && result.Changed {
		m.gameUUID = uuid.NewString()
		m.won = false
		return
	}

	if m.gameState.Won {
		m.won = true
	}
	if m.gameState.GameOver && !prev.GameOver {
		m.record()
	}
}

// record saves the game in progress. Games without a single move are skipped.
func (m *Model) record() {
	session := m.game.Session()
	if session == nil || session.Moves() == 0 {
		return
	}

	outcome := storage.OutcomeAbandoned
	switch {
	case m.won:
		outcome = storage.OutcomeWon
	case session.IsOver():
		outcome = storage.OutcomeLost
	}

	m.recorder.SaveGame(storage.GameRecord{
		ID:      m.gameUUID,
		Score:   session.Score(),
		MaxTile: session.Grid().MaxTile(),
		Moves:   session.Moves(),
		Outcome: outcome,
	})
}

// boardHeight is the number of rows left for the game above the help bar.
func (m Model) boardHeight() int {
	return max(m.height-lipgloss.Height(m.help.View(m.keys)), 0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.screenshotDir == "" {
		return
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", m.screenshotDir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return m.palette.Render(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameUUID returns the storage id of the game in progress.
func (m Model) GameUUID() string {
	return m.gameUUID
}

// Run starts the Bubble Tea program for game.
func Run(game *t2048.Game, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
