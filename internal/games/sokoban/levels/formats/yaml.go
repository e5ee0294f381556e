package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// Map holds the rows only; the width and height header is derived.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Author   string            `yaml:"author,omitempty"`
	Map      string            `yaml:"map"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Map) == "" {
		return Level{}, fmt.Errorf("level %q has no map", yl.ID)
	}

	rows := strings.Split(strings.TrimRight(yl.Map, "\n"), "\n")
	def, err := Definition(rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %q: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}
	return Level{
		ID:         yl.ID,
		Name:       name,
		Author:     yl.Author,
		Definition: def,
		Metadata:   yl.Metadata,
	}, nil
}
