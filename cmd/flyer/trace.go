package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/registry"
	"github.com/vovakirdan/tui-flyer/internal/runner"
	"github.com/vovakirdan/tui-flyer/internal/storage"
)

var (
	flagTracePilot string
	flagTraceTicks int
)

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Record a headless pilot run",
	Long: `Run the simulation without a terminal, letting a pilot fly, and record
every step in the trace database.

The run stops when the flyer crashes or after --ticks steps. The seed
(drawn fresh unless --seed is set) and the effective configuration are
stored with the run so 'flyer verify' can replay it.

Examples:
  flyer trace
  flyer trace --pilot metronome --ticks 2000
  flyer trace --seed 42 --db ./traces.db`,
	Args: cobra.NoArgs,
	Run:  runTrace,
}

func init() {
	traceCmd.Flags().StringVar(&flagTracePilot, "pilot", "autopilot", "Pilot to fly the run")
	traceCmd.Flags().IntVar(&flagTraceTicks, "ticks", 12000, "Maximum number of steps to simulate")
}

func runTrace(cmd *cobra.Command, _ []string) {
	logger := newLogger("flyer")

	cfg, params, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfgYAML, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pilot, err := registry.Create(flagTracePilot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'flyer pilots' to see available pilots.")
		os.Exit(1)
	}

	logger.Debug("running", "pilot", pilot.ID(), "seed", flagSeed, "ticks", flagTraceTicks)
	res, err := runner.Run(cmd.Context(), params, flagSeed, pilot, flagTraceTicks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening trace database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	id, err := store.SaveRun(res, cfgYAML)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		os.Exit(1)
	}
	logger.Info("run recorded", "id", id, "frames", len(res.Frames))

	outcome := "survived"
	if res.Died {
		outcome = "crashed"
	}
	fmt.Printf("Run %s\n", id)
	fmt.Printf("  pilot: %s\n", res.Pilot)
	fmt.Printf("  seed:  %d\n", res.Seed)
	fmt.Printf("  ticks: %d (%s)\n", res.Ticks, outcome)
	fmt.Printf("  score: %d\n", res.Score)
}
