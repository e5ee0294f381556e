package formats

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`id: demo
name: Demo
author: someone
map: |
  .....
  .sbg.
  ....x
metadata:
  difficulty: "2"
`)
	lvl, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "demo", lvl.ID)
	assert.Equal(t, "Demo", lvl.Name)
	assert.Equal(t, "someone", lvl.Author)
	assert.Equal(t, "5\n3\n.....\n.sbg.\n....x\n", lvl.Definition)
	assert.Equal(t, map[string]string{"difficulty": "2"}, lvl.Metadata)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "id: [", "yaml unmarshal"},
		{"no map", "id: empty\n", "has no map"},
		{"ragged rows", "id: ragged\nmap: |\n  sbgx\n  ..\n", "row 2 has 2 cells"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse(t *testing.T) {
	lvl, err := Parse([]byte("4\n1\nsbgx\n"), ".MAP", "corridor")
	require.NoError(t, err)
	assert.Equal(t, "corridor", lvl.ID)
	assert.Equal(t, "4\n1\nsbgx\n", lvl.Definition)

	_, err = Parse([]byte("x"), ".json", "x")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "unsupported extension"))

	_, err = Parse(nil, ".txt", "empty")
	assert.Error(t, err)
}

func TestDefinition(t *testing.T) {
	def, err := Definition([]string{"sbgx", "...."})
	require.NoError(t, err)
	assert.Equal(t, "4\n2\nsbgx\n....\n", def)

	_, err = Definition(nil)
	assert.Error(t, err)
}
