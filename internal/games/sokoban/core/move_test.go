package core_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// def joins rows into a map definition with a width/height header.
func def(rows ...string) string {
	return fmt.Sprintf("%d\n%d\n%s\n", len(rows[0]), len(rows), strings.Join(rows, "\n"))
}

func mustState(t *testing.T, rows ...string) *core.BoardState {
	t.Helper()
	s, err := core.ParseState(strings.NewReader(def(rows...)))
	require.NoError(t, err)
	return s
}

func mustMap(t *testing.T, maxUndo int, rows ...string) *core.Map {
	t.Helper()
	m, err := core.ParseMap(def(rows...), 2, maxUndo)
	require.NoError(t, err)
	return m
}

func TestCellPredicates(t *testing.T) {
	tests := []struct {
		name     string
		cell     core.Cell
		free     bool
		freeSolv bool
		movable  bool
	}{
		{"wall", core.Wall(), false, false, false},
		{"empty", core.Empty(), true, true, false},
		{"goal", core.GoalCell(), true, true, false},
		{"block", core.Cell{Kind: core.KindBlock}, false, false, true},
		{"block on goal", core.Cell{Kind: core.KindBlock, Goal: true}, false, false, true},
		{"crate", core.Cell{Kind: core.KindCrate}, false, false, true},
		{"exit", core.Cell{Kind: core.KindExit}, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.free, tt.cell.IsFree(false), "IsFree(false)")
			assert.Equal(t, tt.freeSolv, tt.cell.IsFree(true), "IsFree(true)")
			assert.Equal(t, tt.movable, tt.cell.IsMovable(), "IsMovable")
		})
	}

	assert.True(t, core.Cell{Kind: core.KindCrate}.IsCrate())
	assert.True(t, core.GoalCell().IsGoal())
	assert.True(t, core.Cell{Kind: core.KindExit}.IsExit())
	assert.True(t, core.Cell{Kind: core.KindBlock, Goal: true}.IsSatisfied())
}

func TestMoveIntoWallOrEdge(t *testing.T) {
	s := mustState(t,
		"sbg x",
	)

	for _, d := range []core.Dir{core.DirUp, core.DirDown, core.DirLeft} {
		before := s.Clone()
		assert.False(t, s.Move(d), "move %s", d)
		assert.True(t, s.Equal(before), "state changed after blocked move %s", d)
	}

	walled := mustState(t,
		".....",
		".s.bg",
		"....x",
	)
	for _, d := range []core.Dir{core.DirUp, core.DirDown, core.DirLeft, core.DirRight} {
		assert.False(t, walled.Move(d), "move %s", d)
		assert.Equal(t, core.C(1, 1), walled.Player)
	}
}

func TestMoveIntoFreeCell(t *testing.T) {
	s := mustState(t,
		"s gbx",
	)
	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, core.C(1, 0), s.Player)
	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, core.C(2, 0), s.Player, "goal cells are walkable")
	assert.Equal(t, 1, s.GoalsLeft)
}

func TestPushBlockAgainstBoundary(t *testing.T) {
	s := mustState(t,
		"g sb",
		"x   ",
	)
	// Block at the last column has no cell behind it.
	before := s.Clone()
	assert.False(t, s.Move(core.DirRight))
	assert.True(t, s.Equal(before))
}

func TestPushBlockOntoGoalAndBack(t *testing.T) {
	s := mustState(t,
		"sbg x",
	)
	require.Equal(t, 1, s.GoalsLeft)

	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, 0, s.GoalsLeft)
	assert.True(t, s.Cell(core.C(2, 0)).IsSatisfied())
	assert.Equal(t, core.KindEmpty, s.Cell(core.C(1, 0)).Kind)

	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, 1, s.GoalsLeft, "moving the block off its goal restores the count")
	assert.Equal(t, core.KindBlock, s.Cell(core.C(3, 0)).Kind)
	assert.True(t, s.Cell(core.C(2, 0)).IsGoal(), "goal marker stays behind")
	assert.Equal(t, core.KindEmpty, s.Cell(core.C(2, 0)).Kind)
}

func TestPushBlockBetweenGoals(t *testing.T) {
	s := mustState(t,
		"sbgg x",
		"  b   ",
	)
	require.Equal(t, 2, s.GoalsLeft)

	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, 1, s.GoalsLeft)
	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, 1, s.GoalsLeft, "leaving one goal for another nets zero")
	assert.True(t, s.Cell(core.C(3, 0)).IsSatisfied())
	assert.False(t, s.Cell(core.C(2, 0)).IsSatisfied())
}

func TestPushCrateIgnoresGoals(t *testing.T) {
	s := mustState(t,
		"scg  .",
		"x b...",
	)
	require.Equal(t, 1, s.GoalsLeft)

	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, 1, s.GoalsLeft, "crate onto goal")
	assert.Equal(t, core.Cell{Kind: core.KindCrate, Goal: true}, s.Cell(core.C(2, 0)))

	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, 1, s.GoalsLeft, "crate off goal")
	assert.Equal(t, core.GoalCell(), s.Cell(core.C(2, 0)))
	assert.Equal(t, core.KindCrate, s.Cell(core.C(3, 0)).Kind)
}

func TestCannotPushTwoPieces(t *testing.T) {
	s := mustState(t,
		"sbcg x",
	)
	before := s.Clone()
	assert.False(t, s.Move(core.DirRight))
	assert.True(t, s.Equal(before))
}

func TestVerticalPush(t *testing.T) {
	s := mustState(t,
		"s.",
		"b.",
		"g.",
		"x.",
	)
	require.True(t, s.Move(core.DirDown))
	assert.Equal(t, core.C(0, 1), s.Player)
	assert.Equal(t, 0, s.GoalsLeft)

	// Solved is only refreshed by Evaluate, so the exit is still closed.
	assert.False(t, s.Move(core.DirDown))
	assert.False(t, s.Evaluate())
	assert.True(t, s.Solved)
}

func TestExitClosedUntilSolved(t *testing.T) {
	s := mustState(t,
		"xsbg.",
	)
	assert.False(t, s.Move(core.DirLeft), "exit is closed while goals remain")

	require.True(t, s.Move(core.DirRight))
	assert.False(t, s.Evaluate(), "solved but not on the exit")
	assert.True(t, s.Solved)

	require.True(t, s.Move(core.DirLeft))
	assert.False(t, s.Evaluate())
	require.True(t, s.Move(core.DirLeft))
	assert.True(t, s.Evaluate(), "player on the open exit wins")
}

func TestEvaluateReclosesExit(t *testing.T) {
	s := mustState(t,
		"sbg x",
	)
	require.True(t, s.Move(core.DirRight))
	s.Evaluate()
	require.True(t, s.Solved)

	require.True(t, s.Move(core.DirRight))
	assert.False(t, s.Evaluate())
	assert.False(t, s.Solved)
	assert.False(t, s.Cell(core.C(4, 0)).IsFree(s.Solved))
}

func TestPushOntoOpenExitReplacesIt(t *testing.T) {
	m := mustMap(t, 16,
		"sbg.",
		" c  ",
		" x  ",
	)
	assert.False(t, m.Update(core.DirRight))
	require.True(t, m.Solved(), "exit opens once the goal is filled")

	res := m.Apply(core.DirDown)
	require.True(t, res.Moved, "a crate can be pushed onto the open exit")
	assert.False(t, res.Won)
	assert.Equal(t, core.KindCrate, m.Cell(1, 2).Kind)
	_, hasExit := m.Current().Grid.Exit()
	assert.False(t, hasExit, "the pushed crate takes the exit's place")

	require.True(t, m.Undo())
	assert.True(t, m.Cell(1, 2).IsExit(), "undo brings the exit back")
}

func TestStateDump(t *testing.T) {
	s := mustState(t,
		".....",
		".sbg.",
		".c  x",
	)
	assert.Equal(t, ".....\n.sbg.\n.c  x", s.String())

	require.True(t, s.Move(core.DirRight))
	assert.Equal(t, ".....\n. s!.\n.c  x", s.String())
}

func TestDirDelta(t *testing.T) {
	tests := []struct {
		d      core.Dir
		dx, dy int
	}{
		{core.DirUp, 0, -1},
		{core.DirDown, 0, 1},
		{core.DirLeft, -1, 0},
		{core.DirRight, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			dx, dy := tt.d.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
			assert.Equal(t, core.C(2+2*tt.dx, 2+2*tt.dy), core.C(2, 2).Step(tt.d, 2))
		})
	}
}
