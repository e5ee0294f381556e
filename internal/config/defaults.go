package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		UndoLevel:      16,
		ReplayInterval: 15,
		CellSize:       2,
		KeyBindings: KeyBindings{
			Up:    []string{"up", "w", "k"},
			Down:  []string{"down", "s", "j"},
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Undo:  []string{"backspace", "u"},
			Reset: []string{"r"},
			Quit:  []string{"q", "ctrl+c"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}
