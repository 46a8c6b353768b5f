package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/game"
)

// KeyMap defines the key bindings of the play screen.
// It centralizes key bindings and makes them testable.
type KeyMap struct {
	Fly        key.Binding
	Confirm    key.Binding
	Decline    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fly, k.Confirm, k.Decline, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fly, k.Confirm, k.Decline},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fly: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fly"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "play"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to an action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Fly):
		return core.ActionFly
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Decline):
		return core.ActionDecline
	}
	return core.ActionNone
}

// Events converts the actions of a frame into simulation events, in the
// order the simulation should receive them.
func Events(f core.InputFrame) []game.Event {
	var evs []game.Event
	if f.Has(core.ActionConfirm) {
		evs = append(evs, game.EventConfirm)
	}
	if f.Has(core.ActionDecline) {
		evs = append(evs, game.EventDecline)
	}
	if f.Has(core.ActionFly) {
		evs = append(evs, game.EventFly)
	}
	return evs
}
