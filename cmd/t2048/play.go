package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
	"github.com/vovakirdan/tui-2048/internal/t2048"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game on the configured board.

Controls:
  Arrows/WASD  - Slide tiles (or drag with the mouse)
  U/Ctrl+Z     - Undo
  C            - Keep going after reaching the target
  N/R          - New game
  ?            - All keys
  Q/Ctrl+C     - Quit

Presets:
  classic - 4x4 board, reach 2048
  small   - 3x3 board, reach 256
  large   - 5x5 board, reach 4096
  hard    - 4x4 board, more 4s, only 3 undos

Examples:
  t2048 play
  t2048 play --preset small
  t2048 play --size 5 --target 4096
  t2048 play --config ./my-2048.yaml --log-file /tmp/t2048.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, logger, store, cleanup := mustSetup(cmd)
	width, height := terminalSize()

	err := playGame(cfg, store, logger, width, height)
	cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// playGame runs one board until the player quits.
func playGame(cfg config.Config, store *storage.Store, logger *log.Logger, width, height int) error {
	recorder := tui.NewRecorder(store, cfg.GameID(), logger)

	sc := cfg.SessionConfig()
	sc.BestScore = recorder.LoadBest()
	sc.OnScore = recorder.OnScore
	sc.Logger = logger

	game := t2048.NewGame(sc)
	logger.Info("starting game", "variant", game.ID(), "best", sc.BestScore, "seed", flags.seed)

	return tui.Run(game, tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flags.seed,
		},
		SwipeThreshold: cfg.Input.SwipeThreshold,
		Recorder:       recorder,
		Logger:         logger,
	})
}
