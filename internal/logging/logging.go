// Package logging builds the charmbracelet/log logger shared by the CLI, the
// TUI and the game session.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// Prefix tags every log line.
const Prefix = "t2048"

// New creates a logger writing to w at the given level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           lvl,
	}), nil
}

// Open creates a logger for cfg. Output goes to cfg.File, appending, or is
// discarded when no file is set; the terminal belongs to the TUI.
// The returned close function is never nil.
func Open(cfg config.LogConfig) (*log.Logger, func() error, error) {
	noop := func() error { return nil }

	if cfg.File == "" {
		logger, err := New(io.Discard, cfg.Level)
		return logger, noop, err
	}

	path := config.ExpandPath(cfg.File)
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, noop, fmt.Errorf("logging: create directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, noop, fmt.Errorf("logging: open %s: %w", path, err)
	}

	logger, err := New(f, cfg.Level)
	if err != nil {
		f.Close()
		return nil, noop, err
	}
	return logger, f.Close, nil
}
