// Package registry provides a global registry for pilot factories.
// Pilots register themselves in init() functions, allowing the hosts
// to discover and instantiate input strategies by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flyer/internal/game"
)

// ErrUnknownPilot is returned by Create for an unregistered ID.
var ErrUnknownPilot = errors.New("registry: unknown pilot")

// Pilot is an automated input strategy. Hosts ask it once per fixed step
// while the simulation is playing whether to deliver a fly event.
// Pilots only read the simulation; they never mutate it.
type Pilot interface {
	// ID returns a unique identifier (e.g., "autopilot").
	// Used for CLI flags and recorded with traces.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset clears per-session state. Called whenever a session starts.
	Reset()

	// Decide reports whether to fly before the next step.
	Decide(sim *game.Simulation) bool
}

// PilotInfo contains metadata about a registered pilot.
type PilotInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a pilot.
type Factory func() Pilot

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a pilot factory to the registry.
// Panics if a pilot with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: pilot %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered pilots, sorted by ID.
func List() []PilotInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PilotInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PilotInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new pilot by its ID.
func Create(id string) (Pilot, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPilot, id)
	}

	return f(), nil
}

// Exists checks if a pilot with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
