package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recorded runs",
	Long: `Display the most recent runs recorded with 'flyer trace'.

Examples:
  flyer runs
  flyer runs --limit 50`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Number of runs to show")
}

func runRuns(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.Runs(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet. Run 'flyer trace' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-10s  %20s  %7s  %5s  %-8s  %s\n",
		"ID", "Pilot", "Seed", "Ticks", "Score", "Outcome", "Recorded")
	for _, r := range runs {
		outcome := "survived"
		if r.Died {
			outcome = "crashed"
		}
		recorded := "-"
		if !r.CreatedAt.IsZero() {
			recorded = r.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-36s  %-10s  %20d  %7d  %5d  %-8s  %s\n",
			r.ID, r.Pilot, r.Seed, r.Ticks, r.Score, outcome, recorded)
	}
}
