// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048                    - Play (same as "t2048 play")
//	t2048 play               - Play the configured board
//	t2048 menu               - Pick a preset board interactively
//	t2048 scores             - Show high scores for the configured board
//	t2048 config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible games
//	--db <path>        - Set database path (default: ~/.t2048/scores.db)
//	--config <path>    - Load settings from a YAML file
//	--preset <name>    - classic, small, large or hard
//	--size, --target   - Board size and winning tile
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flags options

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the tiles with the arrow keys, WASD or a mouse drag. Equal tiles merge
and add their value to the score. Reach the target tile to win, then keep
going if you like.

Available commands:
  play     - Play the configured board (default)
  menu     - Pick a preset board interactively
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  t2048
  t2048 --preset large
  t2048 play --size 6 --target 8192
  t2048 scores --tui`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.Int64Var(&flags.seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flags.dbPath, "db", "", "Path to scores database (default from config: ~/.t2048/scores.db)")
	pf.StringVar(&flags.configPath, "config", "", "Path to custom config YAML")
	pf.StringVar(&flags.preset, "preset", "", "Board preset: classic, small, large, hard")
	pf.IntVar(&flags.size, "size", 0, "Board size (overrides config and preset)")
	pf.IntVar(&flags.target, "target", 0, "Winning tile (overrides config and preset)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
