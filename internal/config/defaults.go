package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the classic 4x4 game aiming at 2048.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:       t2048.DefaultSize,
			WinTarget:  t2048.DefaultWinTarget,
			Spawn4Prob: t2048.DefaultSpawn4Prob,
			StartTiles: 2,
		},
		History: HistoryConfig{
			Limit: t2048.DefaultHistoryLimit,
		},
		Input: InputConfig{
			SwipeThreshold: 2,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
