// Package config provides YAML-based configuration loading for Sokoban.
package config

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Config contains all user-tunable settings.
type Config struct {
	UndoLevel      int         `yaml:"undo_level"`
	ReplayInterval int         `yaml:"replay_interval"`
	CellSize       int         `yaml:"cell_size"`
	LevelsDir      string      `yaml:"levels_dir"`
	KeyBindings    KeyBindings `yaml:"key_bindings"`
}

// KeyBindings lists the key names bound to each action.
type KeyBindings struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Undo  []string `yaml:"undo"`
	Reset []string `yaml:"reset"`
	Quit  []string `yaml:"quit"`
}

// Validate checks numeric settings and normalizes key names.
// Unknown key names do not fail validation: the default binding for that
// action is kept and a warning is returned instead.
func (c *Config) Validate() (warnings []string, err error) {
	if c.UndoLevel < 1 {
		return nil, fmt.Errorf("invalid undo_level %d: must be positive", c.UndoLevel)
	}
	if c.ReplayInterval < 1 {
		return nil, fmt.Errorf("invalid replay_interval %d: must be positive", c.ReplayInterval)
	}
	if c.CellSize < 1 || c.CellSize > 4 {
		return nil, fmt.Errorf("invalid cell_size %d: must be between 1 and 4", c.CellSize)
	}

	def := DefaultConfig().KeyBindings
	for _, b := range []struct {
		action string
		keys   *[]string
		def    []string
	}{
		{"up", &c.KeyBindings.Up, def.Up},
		{"down", &c.KeyBindings.Down, def.Down},
		{"left", &c.KeyBindings.Left, def.Left},
		{"right", &c.KeyBindings.Right, def.Right},
		{"undo", &c.KeyBindings.Undo, def.Undo},
		{"reset", &c.KeyBindings.Reset, def.Reset},
		{"quit", &c.KeyBindings.Quit, def.Quit},
	} {
		if len(*b.keys) == 0 {
			*b.keys = b.def
			continue
		}
		normalized := make([]string, 0, len(*b.keys))
		for _, name := range *b.keys {
			key, ok := NormalizeKey(name)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("unknown key binding %q for '%s'", name, b.action))
				continue
			}
			normalized = append(normalized, key)
		}
		if len(normalized) == 0 {
			normalized = b.def
		}
		*b.keys = normalized
	}

	if dup := c.KeyBindings.duplicates(); len(dup) > 0 {
		warnings = append(warnings, fmt.Sprintf("keys bound to several actions: %s", strings.Join(dup, ", ")))
	}
	return warnings, nil
}

func (kb KeyBindings) duplicates() []string {
	seen := make(map[string]int)
	for _, keys := range [][]string{kb.Up, kb.Down, kb.Left, kb.Right, kb.Undo, kb.Reset, kb.Quit} {
		for _, k := range keys {
			seen[k]++
		}
	}
	var dup []string
	for k, n := range seen {
		if n > 1 {
			dup = append(dup, k)
		}
	}
	sort.Strings(dup)
	return dup
}

var namedKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"enter": true, "esc": true, "backspace": true, "tab": true,
	"delete": true, "insert": true, "home": true, "end": true,
	"pgup": true, "pgdown": true,
}

var keyAliases = map[string]string{
	"arrow-up":    "up",
	"arrow-down":  "down",
	"arrow-left":  "left",
	"arrow-right": "right",
	"escape":      "esc",
	"return":      "enter",
	"space":       " ",
}

// NormalizeKey maps a configured key name to the name the terminal layer
// reports, lowercasing single letters. It reports false for unknown names.
func NormalizeKey(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if name == " " {
		return " ", true
	}
	if alias, ok := keyAliases[key]; ok {
		return alias, true
	}
	if namedKeys[key] {
		return key, true
	}
	if utf8.RuneCountInString(key) == 1 {
		return key, true
	}
	if rest, ok := strings.CutPrefix(key, "ctrl+"); ok && len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z' {
		return key, true
	}
	if rest, ok := strings.CutPrefix(key, "f"); ok {
		var n int
		if _, err := fmt.Sscanf(rest, "%d", &n); err == nil && n >= 1 && n <= 12 && fmt.Sprint(n) == rest {
			return key, true
		}
	}
	return "", false
}
