package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/engine"
)

// helpRows is the height of the key help footer below the screen.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one play session. The simulation owns
// the whole flow from the title screen to the end of the last run; the
// model only feeds it intents and ticks and draws what it reports.
type Model struct {
	sim      *engine.Simulation
	renderer *Renderer
	screen   *core.Screen
	keys     *KeyMapper
	help     help.Model
	config   core.RuntimeConfig
	duck     *duckLatch
	runs     *runTracker
	snap     engine.Snapshot
	quitting bool
}

// NewModel creates a Bubble Tea model driving sim.
func NewModel(sim *engine.Simulation, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	runs := &runTracker{}
	sim.AddObserver(runs)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		sim:      sim,
		renderer: NewRenderer(sim.Config(), sim.Catalog()),
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		keys:     NewKeyMapper(),
		help:     h,
		config:   cfg,
		duck:     newDuckLatch(cfg.TickRate / 2),
		runs:     runs,
		snap:     sim.CurrentSnapshot(),
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	intent, isQuit := m.keys.MapKey(msg, m.snap.State)
	if isQuit {
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	}

	if intent == core.IntentDuckPressed {
		// Auto-repeat presses only keep the latch armed.
		held := m.duck.held()
		m.duck.press()
		if held {
			return m, nil
		}
	}

	m.sim.SubmitIntent(intent)
	return m, nil
}

// handleResize processes window resize events. The world is logical, so
// only the screen buffer changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.duck.tick() {
		m.sim.SubmitIntent(core.IntentDuckReleased)
	}

	m.snap = m.sim.Tick(1)
	if m.snap.State != engine.StateRunning {
		m.duck.reset()
	}

	if m.sim.Done() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// abandon ends a run in progress so it is committed before the program exits.
func (m *Model) abandon() {
	if m.snap.State != engine.StateRunning {
		return
	}
	m.sim.SubmitIntent(core.IntentCancel)
	m.snap = m.sim.Tick(0)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.snap, m.runs.last)

	dir := filepath.Join(os.Getenv("HOME"), ".dinorun", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("dinorun_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.snap, m.runs.last)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Snapshot returns the last snapshot the model has seen.
func (m Model) Snapshot() engine.Snapshot {
	return m.snap
}

// runTracker remembers the last finished run for the run-over screen.
type runTracker struct {
	last *engine.RunResult
}

func (r *runTracker) OnTransition(t engine.Transition) {
	switch {
	case t.To == engine.StateRunning:
		r.last = nil
	case t.Run != nil && !t.Run.Abandoned:
		r.last = t.Run
	}
}

// Run starts the Bubble Tea program for sim and blocks until it exits.
func Run(sim *engine.Simulation, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(sim, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
