package t2048

import (
	"io"

	"github.com/charmbracelet/log"
)

// State is the session's position in the play / won / lost state machine.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// ScoreListener is called after every score change with the current score
// and best score. Persistence adapters hook in here.
type ScoreListener func(score, best int)

// SessionConfig configures a Session. Zero values fall back to the classic
// defaults.
type SessionConfig struct {
	Size         int
	WinTarget    int
	Spawn4Prob   float64
	HistoryLimit int
	StartTiles   int

	// BestScore seeds the best score, typically loaded from storage.
	BestScore int

	OnScore ScoreListener
	Logger  *log.Logger
}

// DefaultSessionConfig returns the classic 4x4 / 2048 setup.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Size:         DefaultSize,
		WinTarget:    DefaultWinTarget,
		Spawn4Prob:   DefaultSpawn4Prob,
		HistoryLimit: DefaultHistoryLimit,
		StartTiles:   2,
	}
}

func (c SessionConfig) withDefaults() SessionConfig {
	def := DefaultSessionConfig()
	if c.Size == 0 {
		c.Size = def.Size
	}
	if c.WinTarget == 0 {
		c.WinTarget = def.WinTarget
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = def.HistoryLimit
	}
	if c.StartTiles == 0 {
		c.StartTiles = def.StartTiles
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	return c
}

// Session owns one game: the grid, the score, the undo history and the
// outcome. It is not safe for concurrent use; callers serialise input.
type Session struct {
	cfg     SessionConfig
	spawner *Spawner
	history *History
	logger  *log.Logger

	grid      Grid
	score     int
	best      int
	startBest int // best score when the current game began
	moves     int
	reached   bool // target reached in this game
	state     State
	outcome   Outcome

	lastMerged []Cell
	lastSpawn  Cell
	spawned    bool
}

// NewSession creates a session and starts the first game.
// Spawn4Prob is taken as given, so a zero value never spawns 4s.
func NewSession(cfg SessionConfig, rng RandSource) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		cfg:     cfg,
		spawner: NewSpawner(rng, cfg.Spawn4Prob),
		history: NewHistory(cfg.HistoryLimit),
		logger:  cfg.Logger,
		best:    cfg.BestScore,
	}
	s.NewGame()
	return s
}

// NewGame clears the board, score and history and places the start tiles.
func (s *Session) NewGame() {
	s.grid = New(s.cfg.Size)
	s.score = 0
	s.moves = 0
	s.reached = false
	s.history.Clear()
	s.state = StatePlaying
	s.outcome = OutcomeNone
	s.lastMerged = nil
	s.spawned = false
	s.startBest = s.best

	for range s.cfg.StartTiles {
		s.spawn()
	}

	s.logger.Debug("new game", "size", s.cfg.Size, "target", s.cfg.WinTarget, "best", s.best)
	s.notify()
}

// spawn adds one tile and remembers where it went.
func (s *Session) spawn() {
	grid, at, ok := s.spawner.Spawn(s.grid)
	if !ok {
		return
	}
	s.grid = grid
	s.lastSpawn = at
	s.spawned = true
}

// Move applies dir. Unchanged moves, and any move after a loss, leave the
// session untouched. A changed move is snapshotted, committed, followed by
// one spawned tile and then evaluated. The returned result describes the
// slide itself, before the spawn.
//
// Moving from the won state resumes play, as if Continue had been called.
func (s *Session) Move(dir Direction) MoveResult {
	if s.state == StateLost {
		return MoveResult{Grid: s.grid.Clone()}
	}

	res := ApplyMove(s.grid, dir)
	if !res.Changed {
		return res
	}

	s.history.Push(HistoryEntry{Grid: s.grid, Score: s.score, Reached: s.reached})

	s.grid = res.Grid
	s.score += res.ScoreDelta
	s.moves++
	s.lastMerged = res.Merged
	s.spawned = false
	s.spawn()

	s.state = StatePlaying
	s.outcome = OutcomeNone
	switch {
	case !s.reached && s.grid.Contains(s.cfg.WinTarget):
		s.reached = true
		s.state = StateWon
		s.outcome = OutcomeWin
		s.logger.Info("target reached", "target", s.cfg.WinTarget, "score", s.score, "moves", s.moves)
	case !HasMoves(s.grid):
		s.state = StateLost
		s.outcome = OutcomeLose
		s.logger.Info("no moves left", "score", s.score, "max", s.grid.MaxTile(), "moves", s.moves)
	}

	s.logger.Debug("move", "dir", dir, "delta", res.ScoreDelta, "merged", len(res.Merged), "score", s.score)
	s.notify()
	return res
}

// Undo restores the most recent snapshot and resumes play.
// Returns false, changing nothing, when the history is empty.
func (s *Session) Undo() bool {
	entry, ok := s.history.Pop()
	if !ok {
		return false
	}

	s.grid = entry.Grid
	s.score = entry.Score
	s.reached = entry.Reached
	s.moves = max(s.moves-1, 0)
	s.state = StatePlaying
	s.outcome = OutcomeNone
	s.lastMerged = nil
	s.spawned = false

	s.logger.Debug("undo", "score", s.score, "history", s.history.Len())
	s.notify()
	return true
}

// Continue dismisses a win and resumes play. Only valid from StateWon.
// If the winning move also left no moves, the game ends as lost.
func (s *Session) Continue() bool {
	if s.state != StateWon {
		return false
	}
	if !HasMoves(s.grid) {
		s.state = StateLost
		s.outcome = OutcomeLose
		s.logger.Info("no moves left", "score", s.score, "max", s.grid.MaxTile(), "moves", s.moves)
		return true
	}
	s.state = StatePlaying
	s.outcome = OutcomeNone
	s.logger.Debug("continue after win", "score", s.score)
	return true
}

// Reached reports whether the target has been reached in this game.
func (s *Session) Reached() bool { return s.reached }

// notify bumps the best score and informs the listener.
func (s *Session) notify() {
	if s.score > s.best {
		s.best = s.score
	}
	if s.cfg.OnScore != nil {
		s.cfg.OnScore(s.score, s.best)
	}
}

// Grid returns the current board.
func (s *Session) Grid() Grid { return s.grid.Clone() }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// BestScore returns the best score seen, including the current game.
func (s *Session) BestScore() int { return s.best }

// IsNewBest reports whether this game beat the best score it started with.
func (s *Session) IsNewBest() bool { return s.score > 0 && s.score > s.startBest }

// State returns the state machine position.
func (s *Session) State() State { return s.state }

// Outcome returns the outcome of the last committed move.
func (s *Session) Outcome() Outcome { return s.outcome }

// IsOver reports whether the game is lost.
func (s *Session) IsOver() bool { return s.state == StateLost }

// Moves returns the number of committed moves in the current line of play.
func (s *Session) Moves() int { return s.moves }

// CanUndo reports whether Undo would do anything.
func (s *Session) CanUndo() bool { return s.history.Len() > 0 }

// HistoryLen returns the number of stored snapshots.
func (s *Session) HistoryLen() int { return s.history.Len() }

// History returns the stored snapshots, oldest first.
func (s *Session) History() []HistoryEntry { return s.history.Entries() }

// LastMerged returns the cells that received a merge on the last committed move.
func (s *Session) LastMerged() []Cell {
	out := make([]Cell, len(s.lastMerged))
	copy(out, s.lastMerged)
	return out
}

// LastSpawn returns where the most recent tile appeared, if it is still the
// latest change on the board.
func (s *Session) LastSpawn() (Cell, bool) { return s.lastSpawn, s.spawned }

// Config returns the effective configuration.
func (s *Session) Config() SessionConfig { return s.cfg }
