package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/config"
	"github.com/vovakirdan/tui-flyer/internal/game"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration flyer would play with, as YAML.

Config search order:
  1. --config <path>
  2. ~/.flyer/configs/flyer.yaml
  3. ./configs/flyer.yaml
  4. built-in defaults

The output is a complete config file and can be saved and edited:
  flyer config > ~/.flyer/configs/flyer.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data) //nolint:errcheck // Nothing to do on a failed stdout write
}

// loadConfig loads the configuration named by --config and derives the
// simulation parameters from it.
func loadConfig() (config.FlyerConfig, game.Params, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.FlyerConfig{}, game.Params{}, err
	}
	params, err := cfg.Params()
	if err != nil {
		return config.FlyerConfig{}, game.Params{}, err
	}
	return cfg, params, nil
}
