package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
)

// KeyMap holds the in-game key bindings. The movement, undo, reset and
// quit bindings come from the user's configuration.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Undo  key.Binding
	Reset key.Binding
	Quit  key.Binding
	Pause key.Binding
	Back  key.Binding
	Help  key.Binding
}

// NewKeyMap builds the key map from configured bindings. Key names must
// already be normalized (see config.Validate).
func NewKeyMap(kb config.KeyBindings) KeyMap {
	return KeyMap{
		Up:    binding(kb.Up, "up"),
		Down:  binding(kb.Down, "down"),
		Left:  binding(kb.Left, "left"),
		Right: binding(kb.Right, "right"),
		Undo:  binding(kb.Undo, "undo"),
		Reset: binding(kb.Reset, "reset"),
		Quit:  binding(kb.Quit, "quit"),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause replay"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// DefaultKeyMap returns the key map for the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().KeyBindings)
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keyLabel(k)
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "backspace":
		return "bksp"
	}
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Reset, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Undo, k.Reset, k.Pause},
		{k.Back, k.Quit, k.Help},
	}
}

// Action translates a key message to a game action. Keys bound to
// several actions resolve in the order movement, undo, reset, quit.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Reset):
		return core.ActionRestart
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
