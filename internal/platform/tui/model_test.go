package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/engine"
)

// send feeds msgs to the model in order and returns the result.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, expected Model", next)
		}
	}
	return m, cmd
}

func newTestModel() (Model, *engine.Simulation) {
	sim := newTestSim()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 20, Seed: 1}
	return NewModel(sim, cfg), sim
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	tick  = TickMsg{}
)

func TestModelFlowToRun(t *testing.T) {
	m, _ := newTestModel()

	m, _ = send(t, m, enter, tick)
	if m.Snapshot().State != engine.StateCharacterSelect {
		t.Fatalf("state = %v, expected character_select", m.Snapshot().State)
	}

	m, cmd := send(t, m, enter, enter, tick)
	if m.Snapshot().State != engine.StateRunning {
		t.Fatalf("state = %v, expected running", m.Snapshot().State)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Snapshot().FrameCount != 1 {
		t.Errorf("FrameCount = %d, expected 1", m.Snapshot().FrameCount)
	}

	m, _ = send(t, m, runeKey(" "), tick)
	if !m.Snapshot().Player.Jumping {
		t.Error("space should jump while running")
	}
}

func TestModelDuckHold(t *testing.T) {
	m, _ := newTestModel()
	m, _ = send(t, m, enter, enter, enter, tick)

	m, _ = send(t, m, down, tick)
	if !m.Snapshot().Player.Ducking {
		t.Fatal("down should start a duck")
	}

	// Auto-repeat keeps the duck held.
	for i := 0; i < 8; i++ {
		m, _ = send(t, m, tick)
	}
	m, _ = send(t, m, down, tick)
	if !m.Snapshot().Player.Ducking {
		t.Fatal("repeat press should keep the duck")
	}

	// Hold is TickRate/2 = 10 ticks without a fresh press.
	for i := 0; i < 11; i++ {
		m, _ = send(t, m, tick)
	}
	if m.Snapshot().Player.Ducking {
		t.Error("duck should be released once presses stop")
	}
}

func TestModelQuitAbandonsRun(t *testing.T) {
	m, sim := newTestModel()

	var runs []engine.RunResult
	sim.AddObserver(engine.ObserverFunc(func(tr engine.Transition) {
		if tr.Run != nil {
			runs = append(runs, *tr.Run)
		}
	}))

	m, _ = send(t, m, enter, enter, enter, tick, tick, tick)
	m, cmd := send(t, m, runeKey("q"))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if len(runs) != 1 || !runs[0].Abandoned {
		t.Errorf("runs = %+v, expected one abandoned run", runs)
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelQuitsWhenTerminated(t *testing.T) {
	m, sim := newTestModel()

	m, cmd := send(t, m, esc, tick)
	if !sim.Done() {
		t.Fatal("esc on the title screen should terminate the session")
	}
	if cmd == nil || m.View() != "" {
		t.Error("model should quit once the session terminates")
	}
}

func TestModelResizeAndView(t *testing.T) {
	m, _ := newTestModel()

	view := m.View()
	if !strings.Contains(view, title) {
		t.Errorf("View() should show the title screen")
	}
	if !strings.Contains(view, "jump") {
		t.Errorf("View() should end with the key help")
	}

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if m.screen.Width() != 100 || m.screen.Height() != 30-helpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 30-helpRows)
	}
}

func TestRunTracker(t *testing.T) {
	r := &runTracker{}

	r.OnTransition(engine.Transition{From: engine.StateRunning, To: engine.StateRunOver, Run: &engine.RunResult{Score: 30}})
	if r.last == nil || r.last.Score != 30 {
		t.Fatalf("last = %+v, expected the finished run", r.last)
	}

	r.OnTransition(engine.Transition{From: engine.StateRunning, To: engine.StateMenu, Run: &engine.RunResult{Abandoned: true}})
	if r.last == nil || r.last.Score != 30 {
		t.Error("abandoned run should not replace the last finished run")
	}

	r.OnTransition(engine.Transition{From: engine.StateDifficultySelect, To: engine.StateRunning})
	if r.last != nil {
		t.Error("a new run should clear the last result")
	}
}
