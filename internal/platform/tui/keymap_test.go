package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey("w"), core.ActionUp},
		{"j", runeKey("j"), core.ActionDown},
		{"a", runeKey("a"), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo},
		{"u", runeKey("u"), core.ActionUndo},
		{"r", runeKey("r"), core.ActionRestart},
		{"q", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"p", runeKey("p"), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"unbound", runeKey("x"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	kb := config.DefaultConfig().KeyBindings
	kb.Undo = []string{"z"}
	kb.Reset = []string{" "}

	keys := NewKeyMap(kb)

	if got := keys.Action(runeKey("z")); got != core.ActionUndo {
		t.Errorf("z = %v, expected Undo", got)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.ActionRestart {
		t.Errorf("space = %v, expected Restart", got)
	}
	if got := keys.Action(runeKey("u")); got != core.ActionNone {
		t.Errorf("u should be unbound, got %v", got)
	}
	if help := keys.Reset.Help().Key; help != "space" {
		t.Errorf("reset help key = %q, expected \"space\"", help)
	}
}
