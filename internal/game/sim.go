// Package game implements the deterministic flyer simulation: fixed-step
// physics, barrier generation and recycling, collision detection, scoring
// and the menu/playing/dead state machine.
//
// The package has no I/O. Hosts feed it fixed steps and input events and
// collect draw primitives through a DrawSink.
package game

import (
	"fmt"
	"math/rand/v2"
)

// pcgStream is the PCG increment used for every session RNG.
const pcgStream = 0x9e3779b97f4a7c15

// Simulation owns one session: the flyer, the barrier queue, the score and
// the random source. It is not safe for concurrent use; hosts call Step and
// Handle from their update phase and Render from their render phase.
type Simulation struct {
	params   Params
	state    State
	flyer    Flyer
	barriers []Barrier // Oldest first
	score    ScoreTracker
	rng      *rand.Rand
	fixed    bool  // Reseed with seed on every restart
	seed     int64 // Seed of the current (or next) session
	ticks    int   // Steps taken while playing this session
}

// New creates a simulation in the main menu. A non-zero seed makes every
// session deterministic; zero draws a fresh seed from system entropy on
// each restart. Invalid parameters are reported as ErrInvalidParams.
func New(p Params, seed int64) (*Simulation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Simulation{
		params: p,
		state:  StateMainMenu,
		flyer:  NewFlyer(p),
		fixed:  seed != 0,
		seed:   seed,
	}
	return s, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(p Params, seed int64) *Simulation {
	s, err := New(p, seed)
	if err != nil {
		panic(fmt.Sprintf("game: %v", err))
	}
	return s
}

// Params returns the session constants.
func (s *Simulation) Params() Params {
	return s.params
}

// State returns the current phase.
func (s *Simulation) State() State {
	return s.state
}

// Score returns the number of barriers passed this session.
func (s *Simulation) Score() uint32 {
	return s.score.Value()
}

// Flyer returns a copy of the flyer.
func (s *Simulation) Flyer() Flyer {
	return s.flyer
}

// Barriers returns the barrier queue, oldest first.
// The slice is owned by the simulation and must not be modified.
func (s *Simulation) Barriers() []Barrier {
	return s.barriers
}

// Seed returns the seed of the current session.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Ticks returns the number of steps simulated in the current session.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// Handle applies an input event and reports whether the host should exit.
func (s *Simulation) Handle(ev Event) (quit bool) {
	switch s.state {
	case StatePlaying:
		if ev == EventFly {
			s.flyer.ApplyImpulse(s.params)
		}
	case StateMainMenu, StateDead:
		switch ev {
		case EventConfirm:
			s.restart()
			s.state = StatePlaying
		case EventDecline:
			return true
		}
	}
	return false
}

// restart resets every session-scoped value and reseeds the RNG.
func (s *Simulation) restart() {
	if !s.fixed {
		s.seed = entropySeed()
	}
	s.rng = rand.New(rand.NewPCG(uint64(s.seed), pcgStream))
	s.flyer = NewFlyer(s.params)
	s.score = ScoreTracker{}
	s.ticks = 0

	// Seed the queue so the spawn check always has a tail to look at.
	s.barriers = s.barriers[:0]
	s.barriers = append(s.barriers, NewBarrier(s.params, s.rng))
}

// entropySeed draws a non-zero seed from the runtime's entropy-seeded source.
func entropySeed() int64 {
	for {
		if v := rand.Int64(); v != 0 {
			return v
		}
	}
}

// Step advances the session by dt seconds. It does nothing unless playing.
func (s *Simulation) Step(dt float32) {
	if s.state != StatePlaying {
		return
	}
	s.ticks++

	s.flyer.Advance(s.params, dt)

	s.spawnBarrier()
	for i := range s.barriers {
		s.barriers[i].Advance(dt)
	}

	s.scorePass()
	s.cullBarrier()

	if s.flyerDies() {
		s.state = StateDead
	}
}

// spawnBarrier appends a barrier once the tail has scrolled
// BarrierWidth+BarrierSpacing away from the right edge.
func (s *Simulation) spawnBarrier() {
	if len(s.barriers) == 0 {
		s.barriers = append(s.barriers, NewBarrier(s.params, s.rng))
		return
	}
	tail := s.barriers[len(s.barriers)-1]
	limit := float32(s.params.ScreenWidth - s.params.BarrierWidth - s.params.BarrierSpacing)
	if tail.Position.X < limit {
		s.barriers = append(s.barriers, NewBarrier(s.params, s.rng))
	}
}

// scorePass marks the oldest unpassed barrier the flyer has cleared.
// Only one barrier can be passed per step at the configured speeds.
func (s *Simulation) scorePass() {
	for i := range s.barriers {
		b := &s.barriers[i]
		if b.Passed {
			continue
		}
		if s.flyer.HasPassed(*b) {
			b.Passed = true
			s.score.Increment()
			return
		}
	}
}

// cullBarrier drops the oldest barrier once it is fully off screen.
func (s *Simulation) cullBarrier() {
	if len(s.barriers) == 0 {
		return
	}
	if s.barriers[0].Right() < 0 {
		s.barriers = s.barriers[1:]
	}
}

// flyerDies reports a collision with any barrier or a flyer outside
// [0, ScreenHeight] vertically. The flyer's height is not added to the
// floor check, which leaves some leeway at the bottom.
func (s *Simulation) flyerDies() bool {
	for _, b := range s.barriers {
		if s.flyer.CollidesWith(b) {
			return true
		}
	}
	return OutOfBounds(s.flyer.Position.Y, s.params.ScreenHeight)
}

// OutOfBounds reports whether y lies outside [0, height].
func OutOfBounds(y float32, height int) bool {
	return y < 0 || y > float32(height)
}

// Render emits the primitives for the current state into dst.
func (s *Simulation) Render(dst DrawSink) {
	switch s.state {
	case StateMainMenu:
		dst.DrawText(PromptMainMenu, s.params.TextOffset, s.params.TextOffset)
	case StatePlaying:
		s.renderPlaying(dst)
	case StateDead:
		dst.DrawText(fmt.Sprintf("you got a score of %d!", s.score.Value()), s.params.TextOffset, s.params.TextOffset)
		dst.DrawText(PromptPlayAgain, s.params.TextOffset, s.params.TextOffset+s.params.LineHeight)
	}
}

// renderPlaying draws the flyer, then barriers oldest to newest, then the
// score so it sits on top of everything else.
func (s *Simulation) renderPlaying(dst DrawSink) {
	fb := s.flyer.Box
	dst.FillRect(fb.Min.X, fb.Min.Y, fb.Width(), fb.Height(), s.params.FlyerColor)

	for _, b := range s.barriers {
		dst.FillRect(b.Upper.Min.X, b.Upper.Min.Y, b.Upper.Width(), b.Upper.Height(), s.params.BarrierColor)
		dst.FillRect(b.Lower.Min.X, b.Lower.Min.Y, b.Lower.Width(), b.Lower.Height(), s.params.BarrierColor)
	}

	dst.DrawDigits(s.score.Value(), s.params.ScoreOffset, s.params.ScoreOffset)
}
