package core

import (
	"fmt"
	"io"
	"strings"
)

// DefaultMaxUndo is the history depth used when none is configured.
const DefaultMaxUndo = 16

// Result is the outcome of one directional command.
type Result struct {
	Moved  bool // Player position changed; a state was committed
	Pushed bool // A block or crate was displaced
	Won    bool // All goals satisfied and player on the exit
}

// Map owns a puzzle: its dimensions, the original definition (kept for
// Reset) and the bounded history of board states.
type Map struct {
	width      int
	height     int
	cellSize   int
	definition string
	initial    *BoardState
	history    *History
}

// NewMap reads and parses a map definition. cellSize is an opaque
// rendering hint; maxUndo bounds the history and must be positive.
// No Map is returned when the definition is invalid.
func NewMap(r io.Reader, cellSize, maxUndo int) (*Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, loadErr(CodeRead, 0, "can't read map definition: %v", err)
	}
	return ParseMap(string(data), cellSize, maxUndo)
}

// ParseMap parses a map definition held in memory.
func ParseMap(definition string, cellSize, maxUndo int) (*Map, error) {
	if maxUndo < 1 {
		return nil, loadErr(CodeBadUndoLevel, 0, "undo level must be positive, got %d", maxUndo)
	}
	state, err := ParseState(strings.NewReader(definition))
	if err != nil {
		return nil, err
	}
	return &Map{
		width:      state.Grid.W,
		height:     state.Grid.H,
		cellSize:   cellSize,
		definition: definition,
		initial:    state,
		history:    NewHistory(state.Clone(), maxUndo),
	}, nil
}

// Width returns the grid width.
func (m *Map) Width() int { return m.width }

// Height returns the grid height.
func (m *Map) Height() int { return m.height }

// CellSize returns the rendering hint given at construction.
func (m *Map) CellSize() int { return m.cellSize }

// Definition returns the original map definition text.
func (m *Map) Definition() string { return m.definition }

// MaxUndo returns the history bound.
func (m *Map) MaxUndo() int { return m.history.Max() }

// HistoryLen returns the number of states in history.
func (m *Map) HistoryLen() int { return m.history.Len() }

// Current returns the current board state. Callers must not mutate it;
// use Clone to experiment.
func (m *Map) Current() *BoardState { return m.history.Current() }

// Cell returns the current cell at (x, y).
func (m *Map) Cell(x, y int) Cell { return m.history.Current().Cell(C(x, y)) }

// Player returns the current player position.
func (m *Map) Player() Coord { return m.history.Current().Player }

// GoalsLeft returns the number of goals still missing a block.
func (m *Map) GoalsLeft() int { return m.history.Current().GoalsLeft }

// Solved reports whether all goals are satisfied and the exit is open.
func (m *Map) Solved() bool { return m.history.Current().Solved }

// Apply resolves one directional command against a clone of the current
// state. The clone is committed only when the player moved, and the win
// check runs only on committed states.
func (m *Map) Apply(d Dir) Result {
	cur := m.history.Current()
	next := cur.Clone()
	if !next.Move(d) {
		return Result{}
	}
	res := Result{
		Moved:  true,
		Pushed: !next.Grid.Equal(cur.Grid),
	}
	res.Won = next.Evaluate()
	m.history.Push(next)
	return res
}

// Update applies a direction and reports whether the session is won.
func (m *Map) Update(d Dir) bool {
	return m.Apply(d).Won
}

// Undo reverts the last committed move. The initial state is never
// discarded; Undo on a single-entry history does nothing.
func (m *Map) Undo() bool {
	return m.history.Undo()
}

// Reset discards the history and restores the initial state of the
// original definition.
func (m *Map) Reset() {
	m.history.Reset(m.initial.Clone())
}

// String dumps the current board.
func (m *Map) String() string {
	return m.history.Current().String()
}

// Summary returns a one-line description of the map.
func (m *Map) Summary() string {
	g := m.initial.Grid
	return fmt.Sprintf("%dx%d, %d goals, %d blocks, %d crates",
		m.width, m.height, g.Goals(), g.Blocks(), g.Count(Cell.IsCrate))
}
