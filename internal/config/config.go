// Package config provides YAML-based configuration loading and board presets
// for t2048.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// Config contains everything the CLI and TUI need to start a game.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	History HistoryConfig `yaml:"history"`
	Input   InputConfig   `yaml:"input"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// BoardConfig defines the grid and the rules played on it.
type BoardConfig struct {
	Size       int     `yaml:"size"`
	WinTarget  int     `yaml:"win_target"`
	Spawn4Prob float64 `yaml:"spawn4_prob"`
	StartTiles int     `yaml:"start_tiles"`
}

// HistoryConfig bounds the undo stack.
type HistoryConfig struct {
	Limit int `yaml:"limit"`
}

// InputConfig tunes pointer input.
type InputConfig struct {
	SwipeThreshold int `yaml:"swipe_threshold"` // in terminal cells
}

// StorageConfig locates the score database.
type StorageConfig struct {
	Path string `yaml:"path"` // may start with ~/
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty discards output
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Size < 2 {
		errs = append(errs, fmt.Errorf("board.size %d: need at least 2", c.Board.Size))
	}
	if !isPowerOfTwo(c.Board.WinTarget) || c.Board.WinTarget < 4 {
		errs = append(errs, fmt.Errorf("board.win_target %d: need a power of two of at least 4", c.Board.WinTarget))
	}
	if c.Board.Spawn4Prob < 0 || c.Board.Spawn4Prob > 1 {
		errs = append(errs, fmt.Errorf("board.spawn4_prob %v: need a value in [0,1]", c.Board.Spawn4Prob))
	}
	if cells := c.Board.Size * c.Board.Size; c.Board.StartTiles < 1 || c.Board.StartTiles > cells {
		errs = append(errs, fmt.Errorf("board.start_tiles %d: need 1..%d", c.Board.StartTiles, cells))
	}
	if c.History.Limit < 1 {
		errs = append(errs, fmt.Errorf("history.limit %d: need at least 1", c.History.Limit))
	}
	if c.Input.SwipeThreshold < 1 {
		errs = append(errs, fmt.Errorf("input.swipe_threshold %d: need at least 1", c.Input.SwipeThreshold))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// GameID names the board variant for score storage.
func (c Config) GameID() string {
	return t2048.VariantID(c.Board.Size, c.Board.WinTarget)
}

// SessionConfig converts the board and history settings for the engine.
func (c Config) SessionConfig() t2048.SessionConfig {
	return t2048.SessionConfig{
		Size:         c.Board.Size,
		WinTarget:    c.Board.WinTarget,
		Spawn4Prob:   c.Board.Spawn4Prob,
		HistoryLimit: c.History.Limit,
		StartTiles:   c.Board.StartTiles,
	}
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}
