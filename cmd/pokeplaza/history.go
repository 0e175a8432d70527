package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pokeplaza/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show archived run statistics",
	Long: `Display totals and the most recent runs from the history archive.
Unlike the high score table the archive keeps every run, including
abandoned ones.

Examples:
  pokeplaza history
  pokeplaza history --limit 25`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of recent runs to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	history, err := storage.OpenHistory(filepath.Join(mustDataDir(), storage.HistoryFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer history.Close()

	stats, err := history.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading statistics: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Run History - PockyMan")
	fmt.Println()

	if stats.Sessions == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  Runs:        %d (%d abandoned)\n", stats.Sessions, stats.Abandoned)
	fmt.Printf("  Best score:  %d\n", stats.BestScore)
	fmt.Printf("  Avg score:   %.1f\n", stats.AvgScore)
	fmt.Printf("  Play time:   %s\n", stats.PlayTime.Round(time.Second))
	fmt.Printf("  Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	fmt.Println()

	sessions, err := history.RecentSessions(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading recent runs: %v\n", err)
		os.Exit(1)
	}

	// Print header
	fmt.Printf("  %-16s  %-10s  %-10s  %-8s  %-9s  %s\n", "Date", "Character", "Difficulty", "Score", "Duration", "Outcome")
	fmt.Printf("  %-16s  %-10s  %-10s  %-8s  %-9s  %s\n", "----", "---------", "----------", "-----", "--------", "-------")

	for _, s := range sessions {
		fmt.Printf("  %-16s  %-10s  %-10s  %-8d  %-9s  %s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.Character,
			s.Difficulty,
			s.Score,
			s.Duration.Round(time.Second),
			s.Outcome,
		)
	}
}
