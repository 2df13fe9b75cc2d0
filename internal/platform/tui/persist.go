package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Recorder persists the best score and finished games of one board variant.
// Storage failures are logged and never interrupt play. A nil store turns
// every call into a no-op.
type Recorder struct {
	store  *storage.Store
	gameID string
	logger *log.Logger
	saved  int // best score last written
}

// NewRecorder creates a recorder for gameID.
func NewRecorder(store *storage.Store, gameID string, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, gameID: gameID, logger: logger}
}

// GameID returns the variant this recorder writes to.
func (r *Recorder) GameID() string {
	return r.gameID
}

// LoadBest returns the stored best score, falling back to the best finished
// game for databases that predate the best_scores table.
func (r *Recorder) LoadBest() int {
	if r.store == nil {
		return 0
	}

	best, err := r.store.Best(r.gameID)
	if err != nil {
		r.logger.Warn("could not load best score", "game", r.gameID, "error", err)
	}
	high, err := r.store.HighScore(r.gameID)
	if err != nil {
		r.logger.Warn("could not load high score", "game", r.gameID, "error", err)
	}

	r.saved = max(best, high)
	return r.saved
}

// OnScore matches t2048.ScoreListener. It writes the best score whenever it
// rises.
func (r *Recorder) OnScore(_, best int) {
	if r.store == nil || best <= r.saved {
		return
	}
	if _, err := r.store.UpdateBest(r.gameID, best); err != nil {
		r.logger.Warn("could not save best score", "game", r.gameID, "best", best, "error", err)
		return
	}
	r.saved = best
}

// SaveGame records or updates a game. Saving the same game id again replaces
// the earlier record.
func (r *Recorder) SaveGame(rec storage.GameRecord) {
	if r.store == nil {
		return
	}
	rec.GameID = r.gameID
	id, err := r.store.SaveGame(rec)
	if err != nil {
		r.logger.Warn("could not save game", "game", r.gameID, "score", rec.Score, "error", err)
		return
	}
	r.logger.Info("game saved", "id", id, "score", rec.Score, "max", rec.MaxTile, "outcome", rec.Outcome)
}
