package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dinorun/internal/core"
	"github.com/vovakirdan/dinorun/internal/engine"
)

// KeyMap defines the key bindings of a play session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Back    key.Binding
	Jump    key.Binding
	Duck    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Duck, k.Confirm, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Confirm, k.Back},
		{k.Jump, k.Duck, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d", "next"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/up", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "duck"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to intents. The meaning of
// a key depends on the screen: space jumps during a run and confirms
// everywhere else.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an intent for the given state.
// Returns the intent (may be IntentNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, state engine.State) (intent core.Intent, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return core.IntentNone, true
	}

	if state == engine.StateRunning {
		switch {
		case key.Matches(msg, km.keys.Jump):
			return core.IntentJumpPressed, false
		case key.Matches(msg, km.keys.Duck):
			return core.IntentDuckPressed, false
		case key.Matches(msg, km.keys.Back):
			return core.IntentCancel, false
		}
		return core.IntentNone, false
	}

	switch {
	case key.Matches(msg, km.keys.Left):
		return core.IntentMoveLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.IntentMoveRight, false
	case key.Matches(msg, km.keys.Confirm), msg.String() == " ":
		return core.IntentConfirm, false
	case key.Matches(msg, km.keys.Back):
		return core.IntentCancel, false
	}
	return core.IntentNone, false
}

// duckLatch turns repeated duck key presses into a held duck. Terminals
// report no key releases, so the duck is released after holdTicks ticks
// without a fresh press. The hold has to outlast the keyboard's initial
// auto-repeat delay.
type duckLatch struct {
	holdTicks int
	remaining int
}

func newDuckLatch(holdTicks int) *duckLatch {
	return &duckLatch{holdTicks: max(holdTicks, 1)}
}

// press (re)arms the latch.
func (d *duckLatch) press() {
	d.remaining = d.holdTicks
}

// reset drops a held duck without reporting a release.
func (d *duckLatch) reset() {
	d.remaining = 0
}

// held reports whether the duck is currently held.
func (d *duckLatch) held() bool {
	return d.remaining > 0
}

// tick counts down one tick and reports true exactly when the hold expires.
func (d *duckLatch) tick() bool {
	if d.remaining == 0 {
		return false
	}
	d.remaining--
	return d.remaining == 0
}
