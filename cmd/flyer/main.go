// flyer is a side-scrolling arcade game for the terminal with a
// deterministic fixed-step simulation, scripted pilots and run traces.
//
// Usage:
//
//	flyer play              - Play in the terminal
//	flyer serve             - Start SSH server for remote play
//	flyer trace             - Record a headless pilot run
//	flyer runs              - List recorded runs
//	flyer verify <run-id>   - Replay a recorded run and compare frames
//	flyer pilots            - List available pilots
//	flyer config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set host frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible sessions
//	--config <path>     - Use a custom configuration file
//	--db <path>         - Set trace database path (default: ~/.flyer/traces.db)
//	--log-level <lvl>   - Set log level (debug, info, warn, error)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import pilots to register them
	_ "github.com/vovakirdan/tui-flyer/internal/pilots"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flyer",
	Short: "Flyer - a side-scrolling arcade game for your terminal",
	Long: `Flyer is a one-button arcade game: keep the square in the air and
steer it through the gaps between scrolling barriers.

Available commands:
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  trace    - Record a headless pilot run
  runs     - List recorded runs
  verify   - Replay a recorded run and compare it frame by frame
  pilots   - List available pilots
  config   - Print the effective configuration

Examples:
  flyer play
  flyer play --pilot autopilot
  flyer serve --ssh :2222
  flyer trace --pilot metronome --seed 42
  flyer verify 3f1c2a9e-...`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		log.SetLevel(level)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = fresh seed every session)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flyer/traces.db", "Path to trace database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a stderr logger at the configured level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	logger.SetLevel(log.GetLevel())
	return logger
}
