package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pokeplaza/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the saved high score table",
	Long: `Display the ranked high score table kept in the game config file.

Examples:
  pokeplaza scores
  pokeplaza scores --data-dir ./saves`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store := storage.NewFileStore(filepath.Join(mustDataDir(), storage.ConfigFile))

	cfg, err := store.Load()
	if err != nil && !errors.Is(err, storage.ErrCorrupt) {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", store.Path(), err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s is damaged, showing defaults\n", store.Path())
	}

	fmt.Println("High Scores - PockyMan")
	fmt.Println()

	entries := cfg.Scores.Entries()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pokeplaza' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-15s  %-10s  %s\n", "Rank", "Name", "Score", "Difficulty")
	fmt.Printf("  %-4s  %-15s  %-10s  %s\n", "----", "----", "-----", "----------")

	for i, entry := range entries {
		fmt.Printf("  %-4d  %-15s  %-10d  %s\n", i+1, entry.Name, entry.Score, entry.Difficulty)
	}
}
