package formats

import "fmt"

// ParsePlain wraps a plain map definition file. The definition itself is
// validated when the level is turned into a map.
func ParsePlain(data []byte, stem string) (Level, error) {
	if len(data) == 0 {
		return Level{}, fmt.Errorf("empty map file")
	}
	return Level{
		ID:         stem,
		Name:       stem,
		Definition: string(data),
	}, nil
}
