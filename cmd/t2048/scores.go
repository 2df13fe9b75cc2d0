package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
	flagScoresLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores for the configured board.

Examples:
  t2048 scores
  t2048 scores --preset large
  t2048 scores --tui
  t2048 scores --size 5 --target 4096 --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all boards in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the board")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of games to list")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(config.ExpandPath(cfg.Storage.Path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	gameID := cfg.GameID()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", tui.VariantTitle(gameID))
		return
	}

	if flagScoresTUI {
		width, height := terminalSize()
		if _, err := tui.RunScoreboard(store, gameID, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, gameID, flagScoresLimit); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top games and best score of one variant as text.
func printScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}
	best, err := store.Best(gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", tui.VariantTitle(gameID))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		if best > 0 {
			fmt.Fprintf(w, "Best: %d\n", best)
		}
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "Rank", "Score", "Max", "Moves", "Outcome", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-9s  %s\n", "----", "-----", "---", "-----", "-------", "----")

	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-6d  %-6d  %-9s  %s\n",
			i+1, e.Score, e.MaxTile, e.Moves, e.Outcome, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", max(best, scores[0].Score))
	return nil
}
