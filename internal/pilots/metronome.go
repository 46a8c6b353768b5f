package pilots

import "github.com/vovakirdan/tui-flyer/internal/game"

// Metronome flies on a fixed cadence regardless of the world.
// With Every left at zero it uses the hover cadence: the number of steps
// after which an impulse has been fully cancelled by gravity, so the
// flyer bobs around its start height.
type Metronome struct {
	Every int // Steps between impulses
}

// ID returns the unique identifier for this pilot.
func (*Metronome) ID() string { return "metronome" }

// Title returns the display name for this pilot.
func (*Metronome) Title() string { return "Metronome (fixed cadence)" }

// Reset does nothing; the cadence is derived from the step counter.
func (*Metronome) Reset() {}

// Decide flies on every multiple of the cadence, including the first step.
func (m *Metronome) Decide(sim *game.Simulation) bool {
	if m.Every <= 0 {
		m.Every = HoverCadence(sim.Params())
	}
	return sim.Ticks()%m.Every == 0
}

// HoverCadence returns the impulse period with zero net vertical drift:
// the velocity sequence -v+g, -v+2g, ... sums to zero after 2v/g-1 steps.
func HoverCadence(p game.Params) int {
	if p.GravityScale <= 0 {
		return 1
	}
	n := int(2*p.FlySpeed/p.GravityScale) - 1
	if n < 1 {
		n = 1
	}
	return n
}
