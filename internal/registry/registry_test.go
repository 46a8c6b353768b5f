package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flyer/internal/game"
)

type stubPilot struct{ id string }

func (p stubPilot) ID() string                   { return p.id }
func (p stubPilot) Title() string                { return "Stub " + p.id }
func (p stubPilot) Reset()                       {}
func (p stubPilot) Decide(*game.Simulation) bool { return false }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func() Pilot { return stubPilot{id: "stub-b"} })
	Register("stub-a", func() Pilot { return stubPilot{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should be registered")
	}

	p, err := Create("stub-b")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if p.ID() != "stub-b" {
		t.Errorf("ID() = %q, expected stub-b", p.ID())
	}

	var a, b int = -1, -1
	for i, info := range List() {
		switch info.ID {
		case "stub-a":
			a = i
			if info.Title != "Stub stub-a" {
				t.Errorf("title = %q", info.Title)
			}
		case "stub-b":
			b = i
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List() not sorted by ID: stub-a at %d, stub-b at %d", a, b)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-pilot")
	if !errors.Is(err, ErrUnknownPilot) {
		t.Errorf("expected ErrUnknownPilot, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Pilot { return stubPilot{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("stub-dup", func() Pilot { return stubPilot{id: "stub-dup"} })
}
