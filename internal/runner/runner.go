// Package runner drives a simulation headlessly with a pilot and records
// one Frame per fixed step. Recorded runs can be replayed and compared
// to check that a seed reproduces the same session.
package runner

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flyer/internal/game"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

// ErrNoTicks is returned when a run is requested with a non-positive budget.
var ErrNoTicks = errors.New("runner: tick budget must be positive")

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 256

// Frame is a snapshot of the session taken after one step.
type Frame struct {
	Tick      int
	FlyerX    float32
	FlyerY    float32
	VelocityY float32
	Barriers  int     // Length of the barrier queue
	HeadX     float32 // X of the oldest barrier, 0 when the queue is empty
	Score     uint32
	State     game.State
}

// Result summarizes a finished run.
type Result struct {
	Pilot  string
	Seed   int64 // Seed the session actually used
	Ticks  int
	Score  uint32
	Died   bool
	Frames []Frame
}

// Run starts a session with the given seed, steps it with the pilot's
// decisions until the flyer dies or maxTicks steps have run, and returns
// every frame. A zero seed draws one from entropy; Result.Seed reports it.
func Run(ctx context.Context, p game.Params, seed int64, pilot registry.Pilot, maxTicks int) (Result, error) {
	if maxTicks <= 0 {
		return Result{}, ErrNoTicks
	}

	sim, err := game.New(p, seed)
	if err != nil {
		return Result{}, fmt.Errorf("runner: %w", err)
	}
	sim.Handle(game.EventConfirm)
	pilot.Reset()

	res := Result{
		Pilot:  pilot.ID(),
		Seed:   sim.Seed(),
		Frames: make([]Frame, 0, min(maxTicks, 4096)),
	}

	dt := p.FixedDT
	for sim.State() == game.StatePlaying && sim.Ticks() < maxTicks {
		if sim.Ticks()%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("runner: cancelled after %d ticks: %w", sim.Ticks(), err)
			}
		}

		if pilot.Decide(sim) {
			sim.Handle(game.EventFly)
		}
		sim.Step(dt)
		res.Frames = append(res.Frames, Snapshot(sim))
	}

	res.Ticks = sim.Ticks()
	res.Score = sim.Score()
	res.Died = sim.State() == game.StateDead
	return res, nil
}

// Snapshot captures the current state of a simulation.
func Snapshot(sim *game.Simulation) Frame {
	f := sim.Flyer()
	fr := Frame{
		Tick:      sim.Ticks(),
		FlyerX:    f.Position.X,
		FlyerY:    f.Position.Y,
		VelocityY: f.Velocity.Y,
		Score:     sim.Score(),
		State:     sim.State(),
	}
	if bs := sim.Barriers(); len(bs) > 0 {
		fr.Barriers = len(bs)
		fr.HeadX = bs[0].Position.X
	}
	return fr
}

// Divergence describes the first frame at which two recordings disagree.
type Divergence struct {
	Index int
	Want  Frame
	Got   Frame
}

func (d Divergence) Error() string {
	return fmt.Sprintf("runner: frames diverge at index %d (tick %d): want %+v, got %+v",
		d.Index, d.Want.Tick, d.Want, d.Got)
}

// Compare checks two recordings frame by frame. It returns nil when they
// are identical and a *Divergence otherwise. A length mismatch diverges
// at the first missing frame.
func Compare(want, got []Frame) error {
	n := min(len(want), len(got))
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			return &Divergence{Index: i, Want: want[i], Got: got[i]}
		}
	}
	if len(want) == len(got) {
		return nil
	}

	d := &Divergence{Index: n}
	if n < len(want) {
		d.Want = want[n]
	}
	if n < len(got) {
		d.Got = got[n]
	}
	return d
}
