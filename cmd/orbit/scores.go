package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orbit/internal/storage"
)

var (
	flagRecent      bool
	flagScoresLimit int
	flagScoresOf    string
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best runs recorded on this machine.

Runs are ranked by garbage destroyed, then by the year reached.

Examples:
  orbit scores
  orbit scores --recent
  orbit scores --player alice --limit 5
  orbit scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the latest runs instead of the best")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().StringVar(&flagScoresOf, "player", "", "Only list runs of this player")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	if flagClearScores {
		if err := clearScores(flagDBPath, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var (
		runs  []storage.Run
		title string
	)
	switch {
	case flagScoresOf != "":
		title = fmt.Sprintf("Runs - %s", flagScoresOf)
		runs, err = store.PlayerRuns(flagScoresOf, flagScoresLimit)
	case flagRecent:
		title = "Recent Runs"
		runs, err = store.RecentRuns(flagScoresLimit)
	default:
		title = "High Scores"
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'orbit play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Year", "Date")
	fmt.Printf("  %-4s  %-16s  %-6s  %-5s  %s\n", "----", "------", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-6d  %-5d  %s\n", i+1, r.Player, r.Score, r.Year, dateStr)
	}

	// Show totals
	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Printf("Runs: %d  Best: %d  Furthest year: %d\n", stats.Runs, stats.BestScore, stats.BestYear)
	}
}

// clearScores wipes the run history at dbPath and reports how many runs went.
func clearScores(dbPath string, out io.Writer) error {
	store, err := storage.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if err := store.ClearRuns(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Cleared %d runs.\n", stats.Runs)
	return nil
}
