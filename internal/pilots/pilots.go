// Package pilots contains the built-in automated input strategies.
// Importing the package registers them with the registry.
package pilots

import (
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

func init() {
	registry.Register("idle", func() registry.Pilot { return &Idle{} })
	registry.Register("metronome", func() registry.Pilot { return &Metronome{} })
	registry.Register("autopilot", func() registry.Pilot { return NewAutopilot() })
}
