package config

import (
	"fmt"
	"strings"
)

// Preset represents a named board setup.
type Preset string

const (
	PresetClassic Preset = "classic"
	PresetSmall   Preset = "small"
	PresetLarge   Preset = "large"
	PresetHard    Preset = "hard"
)

// Presets lists the presets in display order.
var Presets = []Preset{PresetClassic, PresetSmall, PresetLarge, PresetHard}

// ParsePreset converts a name such as "large" into a Preset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q", s)
}

// ApplyPreset modifies the board and history settings for a preset.
// Storage, input and log settings are left alone.
func ApplyPreset(cfg *Config, preset Preset) {
	def := DefaultConfig()
	cfg.Board = def.Board
	cfg.History = def.History

	switch preset {
	case PresetSmall:
		cfg.Board.Size = 3
		cfg.Board.WinTarget = 256
	case PresetLarge:
		cfg.Board.Size = 5
		cfg.Board.WinTarget = 4096
	case PresetHard:
		cfg.Board.Spawn4Prob = 0.25
		cfg.History.Limit = 3
	}
}
