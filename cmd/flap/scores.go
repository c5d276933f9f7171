package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flap/internal/platform/tui"
	"github.com/vovakirdan/flap/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score table",
	Long: `Display the stored high scores.

Examples:
  flap scores
  flap scores --plain
  flap scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the viewer")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("High scores cleared.")
		return nil
	}

	if !flagPlain {
		return tui.RunScoreboard(store, flagLimit)
	}

	entries, err := store.Top(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flap play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Initials", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "--------", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, e.Score, e.Initials, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
