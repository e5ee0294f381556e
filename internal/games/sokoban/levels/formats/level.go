// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"strings"
)

// Level represents a parsed level file. Definition is always a complete
// map definition (width and height header followed by the rows), whatever
// the source format.
type Level struct {
	ID         string
	Name       string
	Author     string
	Definition string
	Metadata   map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".map", ".yaml", ".yml"}
}

// Parse routes to the parser for ext. stem is the file name without its
// extension and becomes the ID when the format carries none.
func Parse(data []byte, ext, stem string) (Level, error) {
	switch strings.ToLower(ext) {
	case ".txt", ".map":
		return ParsePlain(data, stem)
	case ".yaml", ".yml":
		lvl, err := ParseYAML(data)
		if err != nil {
			return Level{}, err
		}
		if lvl.ID == "" {
			lvl.ID = stem
		}
		return lvl, nil
	default:
		return Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

// Definition builds a map definition from bare rows. All rows must have
// the same width.
func Definition(rows []string) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("map has no rows")
	}
	width := len([]rune(rows[0]))
	for i, row := range rows {
		if n := len([]rune(row)); n != width {
			return "", fmt.Errorf("row %d has %d cells, want %d", i+1, n, width)
		}
	}
	return fmt.Sprintf("%d\n%d\n%s\n", width, len(rows), strings.Join(rows, "\n")), nil
}
