package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/registry"
	"github.com/vovakirdan/tui-flyer/internal/runner"
	"github.com/vovakirdan/tui-flyer/internal/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <run-id>",
	Short: "Replay a recorded run and compare it frame by frame",
	Long: `Re-simulate a recorded run with its stored seed, pilot and configuration
and compare every step against the recording. Exits with status 1 at the
first frame that differs.

Examples:
  flyer runs
  flyer verify 3f1c2a9e-7b1d-4c1e-9a53-0d6f3c1b8e27`,
	Args: cobra.ExactArgs(1),
	Run:  runVerify,
}

func runVerify(cmd *cobra.Command, args []string) {
	logger := newLogger("flyer")

	id, err := uuid.Parse(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q: %v\n", args[0], err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	run, err := store.Run(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no run %s in %s\n", id, flagDBPath)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	recorded, err := store.Frames(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(run.ConfigYAML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: stored config is unreadable: %v\n", err)
		os.Exit(1)
	}
	params, err := cfg.Params()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pilot, err := registry.Create(run.Pilot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("replaying", "id", id, "seed", run.Seed, "ticks", run.Ticks)
	res, err := runner.Run(cmd.Context(), params, run.Seed, pilot, run.Ticks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runner.Compare(recorded, res.Frames); err != nil {
		logger.Error("replay diverged", "id", id, "error", err)
		os.Exit(1)
	}
	if res.Score != run.Score || res.Died != run.Died {
		logger.Error("replay summary differs",
			"id", id,
			"score", res.Score, "recorded_score", run.Score,
			"died", res.Died, "recorded_died", run.Died,
		)
		os.Exit(1)
	}

	fmt.Printf("Run %s reproduced: %d frames identical, score %d\n", id, len(recorded), run.Score)
}
