package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

var corridor = []string{
	"s    bgx",
}

func TestMapAccessors(t *testing.T) {
	m := mustMap(t, 16,
		".....",
		".sbg.",
		".   x",
	)
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, 2, m.CellSize())
	assert.Equal(t, 16, m.MaxUndo())
	assert.Equal(t, 1, m.HistoryLen())
	assert.Equal(t, core.C(1, 1), m.Player())
	assert.Equal(t, 1, m.GoalsLeft())
	assert.False(t, m.Solved())
	assert.Equal(t, core.KindBlock, m.Cell(2, 1).Kind)
	assert.Equal(t, core.KindWall, m.Cell(-1, 0).Kind, "out of bounds reads as wall")
	assert.Equal(t, "5x3, 1 goals, 1 blocks, 0 crates", m.Summary())
}

func TestNewMapFromReader(t *testing.T) {
	src := def(corridor...)
	m, err := core.NewMap(strings.NewReader(src), 1, core.DefaultMaxUndo)
	require.NoError(t, err)
	assert.Equal(t, src, m.Definition())
	assert.Equal(t, core.DefaultMaxUndo, m.MaxUndo())
}

func TestFullPlaythrough(t *testing.T) {
	m := mustMap(t, 16,
		".....",
		".sbg.",
		".   x",
		".....",
	)

	res := m.Apply(core.DirRight)
	assert.Equal(t, core.Result{Moved: true, Pushed: true}, res)
	assert.Equal(t, 0, m.GoalsLeft())
	assert.True(t, m.Solved())

	assert.False(t, m.Update(core.DirDown))
	assert.False(t, m.Update(core.DirRight))
	assert.True(t, m.Update(core.DirRight), "player reaches the open exit")
	assert.Equal(t, core.C(4, 2), m.Player())
	assert.Equal(t, 5, m.HistoryLen())
}

func TestBlockedMoveCommitsNothing(t *testing.T) {
	m := mustMap(t, 16, corridor...)
	before := m.Current()

	res := m.Apply(core.DirLeft)
	assert.Equal(t, core.Result{}, res)
	assert.Equal(t, 1, m.HistoryLen())
	assert.Same(t, before, m.Current(), "no state is pushed for a blocked move")
}

func TestApplyDoesNotMutateHistory(t *testing.T) {
	m := mustMap(t, 16, corridor...)
	initial := m.Current()
	snapshot := initial.Clone()

	require.True(t, m.Apply(core.DirRight).Moved)
	assert.True(t, initial.Equal(snapshot), "committed states are immutable")
	assert.NotSame(t, initial, m.Current())
}

func TestUndoSingleEntryIsNoop(t *testing.T) {
	m := mustMap(t, 16, corridor...)
	before := m.Current().Clone()

	assert.False(t, m.Undo())
	assert.Equal(t, 1, m.HistoryLen())
	assert.True(t, m.Current().Equal(before))
}

func TestUndoRestoresPreviousState(t *testing.T) {
	m := mustMap(t, 16, corridor...)
	require.True(t, m.Apply(core.DirRight).Moved)
	afterOne := m.Current().Clone()
	require.True(t, m.Apply(core.DirRight).Moved)

	require.True(t, m.Undo())
	assert.True(t, m.Current().Equal(afterOne))
	require.True(t, m.Undo())
	assert.Equal(t, core.C(0, 0), m.Player())
	assert.False(t, m.Undo())
}

func TestUndoRevertsPush(t *testing.T) {
	m := mustMap(t, 16,
		"sbg x",
	)
	require.True(t, m.Apply(core.DirRight).Pushed)
	require.Equal(t, 0, m.GoalsLeft())

	require.True(t, m.Undo())
	assert.Equal(t, 1, m.GoalsLeft())
	assert.Equal(t, core.KindBlock, m.Cell(1, 0).Kind)
	assert.Equal(t, core.GoalCell(), m.Cell(2, 0))
}

func TestHistoryBoundEvictsOldest(t *testing.T) {
	const maxUndo = 3
	m := mustMap(t, maxUndo, corridor...)

	for i := 0; i < maxUndo+1; i++ {
		require.True(t, m.Apply(core.DirRight).Moved, "move %d", i)
		assert.LessOrEqual(t, m.HistoryLen(), maxUndo)
	}
	assert.Equal(t, maxUndo, m.HistoryLen())
	assert.Equal(t, core.C(4, 0), m.Player())

	// Only maxUndo-1 undos are possible; the initial position was evicted.
	for m.Undo() {
	}
	assert.Equal(t, 1, m.HistoryLen())
	assert.Equal(t, core.C(2, 0), m.Player())
}

func TestHistoryOfOne(t *testing.T) {
	m := mustMap(t, 1, corridor...)
	require.True(t, m.Apply(core.DirRight).Moved)
	assert.Equal(t, 1, m.HistoryLen())
	assert.False(t, m.Undo())
	assert.Equal(t, core.C(1, 0), m.Player())
}

func TestResetRestoresInitialState(t *testing.T) {
	rows := []string{
		".....",
		".sbg.",
		".c  x",
	}
	m := mustMap(t, 16, rows...)
	initial := mustState(t, rows...)

	require.True(t, m.Apply(core.DirRight).Moved)
	require.True(t, m.Apply(core.DirDown).Moved)
	require.True(t, m.Apply(core.DirRight).Moved)

	m.Reset()
	assert.Equal(t, 1, m.HistoryLen())
	assert.True(t, m.Current().Equal(initial))
	assert.Equal(t, initial.Hash(), m.Current().Hash())

	// A second reset is equally clean.
	m.Reset()
	assert.True(t, m.Current().Equal(initial))
}

func TestResetAfterWin(t *testing.T) {
	m := mustMap(t, 16,
		"xsbg.",
	)
	require.True(t, m.Apply(core.DirRight).Moved)
	require.True(t, m.Apply(core.DirLeft).Moved)
	require.True(t, m.Update(core.DirLeft))

	m.Reset()
	assert.False(t, m.Solved())
	assert.Equal(t, 1, m.GoalsLeft())
	assert.Equal(t, core.C(1, 0), m.Player())
}

func TestHistoryDirect(t *testing.T) {
	s := mustState(t, corridor...)
	h := core.NewHistory(s, 0)
	assert.Equal(t, 1, h.Max(), "max clamps to one")

	h = core.NewHistory(s, 2)
	next := s.Clone()
	next.Player = core.C(1, 0)
	h.Push(next)
	assert.Equal(t, 2, h.Len())
	assert.Same(t, next, h.Current())
	assert.True(t, h.Undo())
	assert.Same(t, s, h.Current())

	h.Push(next)
	h.Reset(s)
	assert.Equal(t, 1, h.Len())
	assert.Same(t, s, h.Current())
}
