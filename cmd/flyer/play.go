package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/game"
	"github.com/vovakirdan/tui-flyer/internal/platform/tui"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

var flagPlayPilot string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W - Fly
  Y/Enter    - Play (from the menu or after a crash)
  N          - Leave (from the menu or after a crash)
  Ctrl+S     - Save a screenshot to ~/.flyer/screenshots
  Q/Ctrl+C   - Quit

With --pilot the named pilot flies for you; run 'flyer pilots' to see them.

Examples:
  flyer play
  flyer play --seed 42
  flyer play --pilot autopilot
  flyer play --config ./my-flyer.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayPilot, "pilot", "", "Let a pilot fly (e.g. autopilot)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, params, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var pilot registry.Pilot
	if flagPlayPilot != "" {
		if pilot, err = registry.Create(flagPlayPilot); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'flyer pilots' to see available pilots.")
			os.Exit(1)
		}
	}

	sim, err := game.New(params, flagSeed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	opts := tui.Options{
		Pilot:    pilot,
		MaxFrame: cfg.World.MaxFrame,
	}

	if err := tui.Run(sim, rt, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
