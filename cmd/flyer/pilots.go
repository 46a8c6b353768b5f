package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flyer/internal/registry"
)

var pilotsCmd = &cobra.Command{
	Use:   "pilots",
	Short: "List all available pilots",
	Long:  `Shows the automated input strategies usable with play --pilot and trace --pilot.`,
	Args:  cobra.NoArgs,
	Run:   runPilots,
}

func runPilots(_ *cobra.Command, _ []string) {
	pilots := registry.List()

	if len(pilots) == 0 {
		fmt.Println("No pilots available.")
		return
	}

	fmt.Println("Available pilots:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range pilots {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, p := range pilots {
		fmt.Printf("  %-*s  %s\n", maxIDLen, p.ID, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flyer trace --pilot <id>' to record a run.")
}
