package game

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-flyer/internal/game/mocks"
)

// safeParams keeps the flyer hovering inside an always-open gap so long
// runs never end in death.
func safeParams() Params {
	p := DefaultParams()
	p.GravityScale = 0
	p.GapBound = 0
	p.GapSize = p.ScreenHeight - 1
	return p
}

func newPlaying(t *testing.T, p Params, seed int64) *Simulation {
	t.Helper()
	s, err := New(p, seed)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if quit := s.Handle(EventConfirm); quit {
		t.Fatal("confirm should not quit")
	}
	return s
}

func TestNewRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Params)
	}{
		{"empty gap range", func(p *Params) { p.GapBound = 225 }},
		{"gap larger than screen", func(p *Params) { p.GapSize = 700 }},
		{"zero timestep", func(p *Params) { p.FixedDT = 0 }},
		{"zero screen", func(p *Params) { p.ScreenWidth = 0 }},
		{"spacing wider than screen", func(p *Params) { p.BarrierSpacing = 1200 }},
		{"stationary barriers", func(p *Params) { p.BarrierSpeed = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParams()
			tc.mutate(&p)
			_, err := New(p, 1)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("expected ErrInvalidParams, got %v", err)
			}
		})
	}
}

func TestMustNewPanicsOnInvalidParams(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew should panic on an empty gap range")
		}
	}()
	p := DefaultParams()
	p.GapSize = p.ScreenHeight
	MustNew(p, 1)
}

func TestConfirmStartsSession(t *testing.T) {
	p := DefaultParams()
	s, err := New(p, 42)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if s.State() != StateMainMenu {
		t.Fatalf("initial state = %v, expected MainMenu", s.State())
	}

	s.Handle(EventConfirm)

	if s.State() != StatePlaying {
		t.Fatalf("state after confirm = %v, expected Playing", s.State())
	}
	if len(s.Barriers()) != 1 {
		t.Fatalf("expected exactly one barrier, got %d", len(s.Barriers()))
	}
	if x := s.Barriers()[0].Position.X; x != float32(p.ScreenWidth) {
		t.Errorf("first barrier at x=%v, expected %v", x, p.ScreenWidth)
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
}

func TestEndToEndFallToDeath(t *testing.T) {
	p := DefaultParams()
	s := newPlaying(t, p, 42)

	for i := 0; i < 1000; i++ {
		s.Step(p.FixedDT)
	}

	if s.State() != StateDead {
		t.Fatalf("state = %v, expected Dead", s.State())
	}
	if y := s.Flyer().Position.Y; y <= float32(p.ScreenHeight) {
		t.Errorf("flyer should have fallen below the screen, y=%v", y)
	}
	// The first barrier needs far longer than the fall to reach the flyer.
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}

	// Physics stops once dead.
	ticks := s.Ticks()
	y := s.Flyer().Position.Y
	s.Step(p.FixedDT)
	if s.Ticks() != ticks || s.Flyer().Position.Y != y {
		t.Error("steps while dead should not advance physics")
	}
}

func TestStepIgnoredInMainMenu(t *testing.T) {
	p := DefaultParams()
	s := MustNew(p, 1)
	before := s.Flyer()

	for i := 0; i < 10; i++ {
		s.Step(p.FixedDT)
	}
	s.Handle(EventFly)

	if s.Flyer() != before {
		t.Error("flyer should not change in the main menu")
	}
	if len(s.Barriers()) != 0 {
		t.Error("no barriers should exist before the first confirm")
	}
	if s.Ticks() != 0 {
		t.Errorf("ticks = %d, expected 0", s.Ticks())
	}
}

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		name      string
		from      State
		event     Event
		wantState State
		wantQuit  bool
	}{
		{"menu confirm", StateMainMenu, EventConfirm, StatePlaying, false},
		{"menu decline", StateMainMenu, EventDecline, StateMainMenu, true},
		{"menu fly", StateMainMenu, EventFly, StateMainMenu, false},
		{"playing confirm", StatePlaying, EventConfirm, StatePlaying, false},
		{"playing decline", StatePlaying, EventDecline, StatePlaying, false},
		{"playing fly", StatePlaying, EventFly, StatePlaying, false},
		{"dead confirm", StateDead, EventConfirm, StatePlaying, false},
		{"dead decline", StateDead, EventDecline, StateDead, true},
		{"dead fly", StateDead, EventFly, StateDead, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := MustNew(DefaultParams(), 3)
			if tc.from != StateMainMenu {
				s.Handle(EventConfirm)
			}
			s.state = tc.from

			quit := s.Handle(tc.event)
			if quit != tc.wantQuit {
				t.Errorf("quit = %v, expected %v", quit, tc.wantQuit)
			}
			if s.State() != tc.wantState {
				t.Errorf("state = %v, expected %v", s.State(), tc.wantState)
			}
		})
	}
}

func TestFlyAppliesImpulseWhilePlaying(t *testing.T) {
	p := DefaultParams()
	s := newPlaying(t, p, 5)
	s.Step(p.FixedDT)

	s.Handle(EventFly)
	if v := s.Flyer().Velocity.Y; v != -p.FlySpeed {
		t.Errorf("velocity after fly = %v, expected %v", v, -p.FlySpeed)
	}
}

func TestRestartResetsSession(t *testing.T) {
	p := DefaultParams()
	s := newPlaying(t, p, 11)
	firstGap := s.Barriers()[0].GapTop

	for s.State() == StatePlaying {
		s.Step(p.FixedDT)
	}
	s.Handle(EventConfirm)

	if s.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing", s.State())
	}
	if s.Flyer() != NewFlyer(p) {
		t.Error("flyer should be back at its start")
	}
	if s.Score() != 0 || s.Ticks() != 0 {
		t.Errorf("score=%d ticks=%d, expected both reset", s.Score(), s.Ticks())
	}
	if len(s.Barriers()) != 1 {
		t.Fatalf("expected one barrier after restart, got %d", len(s.Barriers()))
	}
	// A fixed seed replays the same barrier sequence.
	if g := s.Barriers()[0].GapTop; g != firstGap {
		t.Errorf("first gap after restart = %v, expected %v", g, firstGap)
	}
}

func TestEntropySeedChangesOnRestart(t *testing.T) {
	s := MustNew(DefaultParams(), 0)
	s.Handle(EventConfirm)
	first := s.Seed()
	if first == 0 {
		t.Fatal("entropy seed should be non-zero")
	}

	s.state = StateDead
	s.Handle(EventConfirm)
	if s.Seed() == first {
		t.Errorf("expected a fresh seed on restart, got %d twice", first)
	}
}

func TestBoundaryDeath(t *testing.T) {
	p := DefaultParams()

	tests := []struct {
		name     string
		y        float32
		wantDead bool
	}{
		{"just above ceiling", -0.01, true},
		{"at ceiling", 0, false},
		{"at floor", float32(p.ScreenHeight), false},
		{"just below floor", float32(p.ScreenHeight) + 0.01, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newPlaying(t, p, 9)

			// Cancel gravity for the next step so the flyer stays put.
			s.flyer.Position.Y = tc.y
			s.flyer.Velocity.Y = -p.GravityScale
			s.flyer.Box = NewBox(s.flyer.Position, p.FlyerSize, p.FlyerSize)

			s.Step(p.FixedDT)

			if s.Flyer().Position.Y != tc.y {
				t.Fatalf("flyer moved to %v", s.Flyer().Position.Y)
			}
			if dead := s.State() == StateDead; dead != tc.wantDead {
				t.Errorf("dead = %v, expected %v", dead, tc.wantDead)
			}
		})
	}
}

func TestBarrierCollisionKills(t *testing.T) {
	p := safeParams()
	p.GapBound = 100
	p.GapSize = 100 // Gap spans somewhere in [100, 400)
	s := newPlaying(t, p, 2)

	// Park the flyer at the top of the field, well clear of any gap.
	s.flyer.Position.Y = 10
	s.flyer.Box = NewBox(s.flyer.Position, p.FlyerSize, p.FlyerSize)

	for i := 0; i < 5000 && s.State() == StatePlaying; i++ {
		s.Step(p.FixedDT)
	}

	if s.State() != StateDead {
		t.Fatal("flyer should have hit the first barrier")
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, expected 0", s.Score())
	}
	hit := false
	for _, b := range s.Barriers() {
		if s.Flyer().CollidesWith(b) {
			hit = true
		}
	}
	if !hit {
		t.Error("death should be caused by a barrier overlap")
	}
}

func TestFlyerBoxInSyncDuringPlay(t *testing.T) {
	p := DefaultParams()
	s := newPlaying(t, p, 77)

	for i := 0; i < 2000 && s.State() == StatePlaying; i++ {
		if i%40 == 0 {
			s.Handle(EventFly)
		}
		s.Step(p.FixedDT)
		assertBoxInSync(t, s.Flyer())
	}
}

func TestScoreCountsPassedBarriers(t *testing.T) {
	p := safeParams()
	s := newPlaying(t, p, 21)

	culled := 0
	var prevScore uint32
	for i := 0; i < 20000; i++ {
		bs := s.Barriers()
		head := bs[0]
		head.Advance(p.FixedDT)

		s.Step(p.FixedDT)
		if s.State() != StatePlaying {
			t.Fatalf("flyer died at tick %d", i)
		}

		if s.Barriers()[0].Position != head.Position {
			culled++
		}

		score := s.Score()
		if score < prevScore || score > prevScore+1 {
			t.Fatalf("tick %d: score went from %d to %d", i, prevScore, score)
		}
		prevScore = score
	}

	passed := 0
	for _, b := range s.Barriers() {
		if b.Passed {
			passed++
		}
	}
	if s.Score() == 0 {
		t.Fatal("expected barriers to be passed")
	}
	if got := uint32(passed + culled); got != s.Score() {
		t.Errorf("score = %d, passed barriers = %d", s.Score(), got)
	}
}

func TestBarrierSpacing(t *testing.T) {
	p := safeParams()
	s := newPlaying(t, p, 8)

	drift := p.BarrierSpeed * p.FixedDT
	spawns := 0
	for i := 0; i < 10000; i++ {
		bs := s.Barriers()
		tail := bs[len(bs)-1]
		tail.Advance(p.FixedDT)

		s.Step(p.FixedDT)

		bs = s.Barriers()
		last := bs[len(bs)-1]
		if last.Position == tail.Position {
			continue
		}
		spawns++
		prev := bs[len(bs)-2]
		if prev.Position != tail.Position {
			t.Fatalf("tick %d: new barrier was not appended behind the previous tail", i)
		}
		gap := last.Position.X - prev.Right()
		if gap < float32(p.BarrierSpacing) || gap > float32(p.BarrierSpacing)+drift+0.001 {
			t.Fatalf("tick %d: spacing %v, expected %d (+ at most %v)", i, gap, p.BarrierSpacing, drift)
		}
	}
	if spawns < 5 {
		t.Fatalf("expected several spawns, saw %d", spawns)
	}
}

func TestCullPromotesSecondBarrier(t *testing.T) {
	p := safeParams()
	s := newPlaying(t, p, 13)

	for i := 0; i < 10000; i++ {
		bs := s.Barriers()
		if len(bs) < 2 {
			s.Step(p.FixedDT)
			continue
		}
		head, second := bs[0], bs[1]
		head.Advance(p.FixedDT)
		second.Advance(p.FixedDT)

		s.Step(p.FixedDT)

		if s.Barriers()[0].Position == head.Position {
			continue
		}
		if head.Right() >= 0 {
			t.Fatalf("barrier culled while still on screen (right edge %v)", head.Right())
		}
		got := s.Barriers()[0]
		if got.Position != second.Position || got.GapTop != second.GapTop || got.Upper != second.Upper || got.Lower != second.Lower {
			t.Errorf("new head %+v is not the previous second barrier %+v", got, second)
		}
		return
	}
	t.Fatal("no barrier scrolled off screen")
}

// runScript flies on a fixed cadence and restarts after death.
func runScript(s *Simulation, steps int) []Flyer {
	dt := s.Params().FixedDT
	trace := make([]Flyer, 0, steps)
	for i := 0; i < steps; i++ {
		switch {
		case s.State() == StateDead:
			s.Handle(EventConfirm)
		case i%23 == 0:
			s.Handle(EventFly)
		}
		s.Step(dt)
		trace = append(trace, s.Flyer())
	}
	return trace
}

func TestDeterminism(t *testing.T) {
	p := DefaultParams()
	a := newPlaying(t, p, 12345)
	b := newPlaying(t, p, 12345)

	for round := 0; round < 20; round++ {
		ta := runScript(a, 250)
		tb := runScript(b, 250)

		for i := range ta {
			if ta[i] != tb[i] {
				t.Fatalf("round %d tick %d: flyers differ %+v vs %+v", round, i, ta[i], tb[i])
			}
		}
		if a.Score() != b.Score() || a.State() != b.State() {
			t.Fatalf("round %d: score/state differ (%d %v) vs (%d %v)", round, a.Score(), a.State(), b.Score(), b.State())
		}
		ba, bb := a.Barriers(), b.Barriers()
		if len(ba) != len(bb) {
			t.Fatalf("round %d: barrier counts differ %d vs %d", round, len(ba), len(bb))
		}
		for i := range ba {
			if ba[i] != bb[i] {
				t.Fatalf("round %d: barrier %d differs", round, i)
			}
		}
	}
}

func TestInstancesDoNotInterfere(t *testing.T) {
	p := DefaultParams()
	alone := newPlaying(t, p, 99)
	want := make([]Flyer, 0, 600)
	for i := 0; i < 6; i++ {
		want = append(want, runScript(alone, 100)...)
	}

	a := newPlaying(t, p, 99)
	other := newPlaying(t, p, 0)
	got := make([]Flyer, 0, 600)
	for i := 0; i < 6; i++ {
		got = append(got, runScript(a, 100)...)
		runScript(other, 37)
	}

	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("tick %d: interleaved run diverged", i)
		}
	}
}

func TestRenderMainMenu(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockDrawSink(ctrl)
	p := DefaultParams()
	s := MustNew(p, 1)

	sink.EXPECT().DrawText(PromptMainMenu, p.TextOffset, p.TextOffset)

	s.Render(sink)
}

func TestRenderDead(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockDrawSink(ctrl)
	p := DefaultParams()
	s := newPlaying(t, p, 1)
	s.score = ScoreTracker{score: 7}
	s.state = StateDead

	gomock.InOrder(
		sink.EXPECT().DrawText("you got a score of 7!", p.TextOffset, p.TextOffset),
		sink.EXPECT().DrawText(PromptPlayAgain, p.TextOffset, p.TextOffset+p.LineHeight),
	)

	s.Render(sink)
}

func TestRenderPlayingOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockDrawSink(ctrl)
	p := safeParams()
	s := newPlaying(t, p, 4)

	for len(s.Barriers()) < 3 {
		s.Step(p.FixedDT)
	}

	fb := s.Flyer().Box
	calls := []any{
		sink.EXPECT().FillRect(fb.Min.X, fb.Min.Y, fb.Width(), fb.Height(), p.FlyerColor),
	}
	for _, b := range s.Barriers() {
		calls = append(calls,
			sink.EXPECT().FillRect(b.Upper.Min.X, b.Upper.Min.Y, b.Upper.Width(), b.Upper.Height(), p.BarrierColor),
			sink.EXPECT().FillRect(b.Lower.Min.X, b.Lower.Min.Y, b.Lower.Width(), b.Lower.Height(), p.BarrierColor),
		)
	}
	calls = append(calls, sink.EXPECT().DrawDigits(s.Score(), p.ScoreOffset, p.ScoreOffset))
	gomock.InOrder(calls...)

	s.Render(sink)
}
