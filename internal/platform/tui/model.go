package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flyer/internal/core"
	"github.com/vovakirdan/tui-flyer/internal/game"
	"github.com/vovakirdan/tui-flyer/internal/registry"
)

var _ game.DrawSink = (*Canvas)(nil)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// RunSummary describes a session that just ended in death.
type RunSummary struct {
	Seed  int64
	Score uint32
	Ticks int
}

// Options configures optional behavior of the play model.
type Options struct {
	// Pilot, when set, decides the fly input on every step while playing.
	Pilot registry.Pilot

	// MaxFrame clamps the elapsed time fed to the simulation per host
	// frame, in seconds. Zero means 0.25.
	MaxFrame float64

	// OnDeath is called once each time a session ends.
	OnDeath func(RunSummary)
}

// Model is the Bubble Tea model that hosts one simulation.
// Each tick is one host frame: input collected since the previous frame
// is delivered first, then as many fixed steps as real time allows.
// Rendering happens in View.
type Model struct {
	sim      *game.Simulation
	screen   *core.Screen
	canvas   *Canvas
	clock    *core.Accumulator
	config   core.RuntimeConfig
	opts     Options
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	last     time.Time // Time of the previous tick, zero before the first
	quitting bool
}

// NewModel creates a play model for the given simulation.
// The bottom terminal row is reserved for the help footer.
func NewModel(sim *game.Simulation, cfg core.RuntimeConfig, opts Options) Model {
	if opts.MaxFrame <= 0 {
		opts.MaxFrame = 0.25
	}

	p := sim.Params()
	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:    sim,
		screen: screen,
		canvas: NewCanvas(screen, p.ScreenWidth, p.ScreenHeight),
		clock:  core.NewAccumulator(float64(p.FixedDT), opts.MaxFrame),
		config: cfg,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick runs one host frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.last.IsZero() {
		elapsed = now.Sub(m.last)
	}
	m.last = now

	for _, ev := range Events(m.input) {
		wasPlaying := m.sim.State() == game.StatePlaying
		if m.sim.Handle(ev) {
			m.quitting = true
			return m, tea.Quit
		}
		if !wasPlaying && m.sim.State() == game.StatePlaying {
			m.clock.Reset()
			if m.opts.Pilot != nil {
				m.opts.Pilot.Reset()
			}
		}
	}
	m.input.Clear()

	dt := m.sim.Params().FixedDT
	for range m.clock.Advance(elapsed) {
		if m.sim.State() != game.StatePlaying {
			break
		}
		if m.opts.Pilot != nil && m.opts.Pilot.Decide(m.sim) {
			m.sim.Handle(game.EventFly)
		}
		m.sim.Step(dt)

		if m.sim.State() == game.StateDead && m.opts.OnDeath != nil {
			m.opts.OnDeath(RunSummary{
				Seed:  m.sim.Seed(),
				Score: m.sim.Score(),
				Ticks: m.sim.Ticks(),
			})
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// Simulation returns the hosted simulation.
func (m Model) Simulation() *game.Simulation {
	return m.sim
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.draw()

	dir := filepath.Join(os.Getenv("HOME"), ".flyer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flyer_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// draw renders the simulation into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	m.sim.Render(m.canvas)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	footer := m.help.View(m.keys)
	if m.opts.Pilot != nil {
		footer = statusStyle.Render("pilot: "+m.opts.Pilot.Title()) + "  " + footer
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program with the given simulation.
func Run(sim *game.Simulation, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(sim, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
