package levels_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader("testdata/pack")

	lvls, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 2, "the unbalanced map and the README are skipped")

	assert.Equal(t, "corridor", lvls[0].ID)
	assert.Equal(t, "room", lvls[1].ID)
	assert.Equal(t, "Small Room", lvls[1].Name)
	assert.Equal(t, "tests", lvls[1].Author)
	assert.Equal(t, "1", lvls[1].Metadata["difficulty"])
	assert.Equal(t, 7, lvls[1].Width)
	assert.Equal(t, 4, lvls[1].Height)
	assert.Equal(t, 1, lvls[1].Goals)
}

func TestLoaderCheck(t *testing.T) {
	problems, err := levels.NewLoader("testdata/pack").Check()
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems["broken.map"], core.ErrUnbalanced)
}

func TestLoaderLoadByID(t *testing.T) {
	loader := levels.NewLoader("testdata/pack")

	lvl, err := loader.LoadByID("corridor")
	require.NoError(t, err)
	assert.Equal(t, "5\n1\nsbg x\n", lvl.Definition)
	assert.Equal(t, "corridor.txt", lvl.FilePath)

	_, err = loader.LoadByID("missing")
	assert.True(t, errors.Is(err, levels.ErrNotFound))
}

func TestLoaderMissingRoot(t *testing.T) {
	_, err := levels.NewLoader("testdata/does-not-exist").LoadAll()
	assert.Error(t, err)
}

func TestLevelNewMapIsFresh(t *testing.T) {
	lvl, err := levels.NewLoader("testdata/pack").LoadByID("room")
	require.NoError(t, err)

	m1, err := lvl.NewMap(2, 8)
	require.NoError(t, err)
	require.True(t, m1.Apply(core.DirRight).Moved)

	m2, err := lvl.NewMap(2, 8)
	require.NoError(t, err)
	assert.Equal(t, core.C(1, 1), m2.Player(), "maps do not share state")
	assert.Equal(t, 8, m2.MaxUndo())
}

func TestFSLoader(t *testing.T) {
	fsys := fstest.MapFS{
		"pack/a.yml": {Data: []byte("map: |\n  sbgx\n")},
		"pack/b.txt": {Data: []byte("4\n1\nxgbs\n")},
		"pack/c.txt": {Data: []byte("")},
	}

	lvls, err := levels.NewFSLoader(fsys, "pack").LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 2)
	assert.Equal(t, "a", lvls[0].ID, "YAML without an id falls back to the file stem")
	assert.Equal(t, "a", lvls[0].Title())
	assert.Equal(t, "4\n1\nsbgx\n", lvls[0].Definition)
	assert.Equal(t, "b", lvls[1].ID)
}

func TestFromDefinition(t *testing.T) {
	lvl, err := levels.FromDefinition("stdin", "4\n1\nsbgx\n")
	require.NoError(t, err)
	assert.Equal(t, "stdin", lvl.ID)
	assert.Equal(t, 4, lvl.Width)

	_, err = levels.FromDefinition("stdin", "4\n1\nsbg\n")
	assert.ErrorIs(t, err, core.ErrShortRow)
}

func TestBuiltinLevelsAreSolvable(t *testing.T) {
	lvls, err := levels.Builtin().LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 5)

	problems, err := levels.Builtin().Check()
	require.NoError(t, err)
	assert.Empty(t, problems)

	first := lvls[0]
	assert.Equal(t, "01-first-push", first.ID)

	m, err := first.NewMap(2, core.DefaultMaxUndo)
	require.NoError(t, err)
	solution := []core.Command{
		core.CmdRight, core.CmdRight, core.CmdRight,
		core.CmdDown, core.CmdRight, core.CmdDown,
	}
	s := core.Replay(m, core.NewReplay(solution))
	assert.True(t, s.Won())
	assert.Equal(t, 6, s.Moves())
	assert.Equal(t, 2, s.Pushes())
}
