package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores for the specified game, or a summary
of every game played when no game is given.

Examples:
  arcade scores
  arcade scores snake
  arcade scores roadrush --limit 20
  arcade scores tetris --all
  arcade scores pong --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		// Check if game exists
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
			os.Exit(1)
		}
	} else if flagScoresClear {
		fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
		os.Exit(1)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(settings.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch {
	case gameID == "":
		err = printSummary(os.Stdout, store)
	case flagScoresClear:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Cleared scores for %s.\n", gameID)
		}
	default:
		limit := flagScoresLimit
		if flagScoresAll {
			limit = 0
		}
		err = printScores(os.Stdout, store, gameID, limit)
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores lists a game's best runs. A non-positive limit lists them all.
func printScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var scores []storage.ScoreEntry
	if limit > 0 {
		scores, err = store.TopScores(gameID, limit)
	} else {
		scores, err = store.AllScores(gameID)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-10d  %-12s  %s\n", i+1, entry.Score, player, dateStr)
	}

	// Show totals
	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Fprintf(w, "\nBest: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

// printSummary shows one line per registered game that has been played.
func printSummary(w io.Writer, store *storage.Store) error {
	all, err := store.AllGameStats()
	if err != nil {
		return err
	}

	if len(all) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-6s  %-8s  %-8s  %s\n", "Game", "Games", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-16s  %-6s  %-8s  %-8s  %s\n", "----", "-----", "----", "-------", "-----------")

	for _, g := range registry.List() {
		stats, ok := all[g.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-16s  %-6d  %-8d  %-8.1f  %s\n",
			g.ID, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
