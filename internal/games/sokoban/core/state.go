package core

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// BoardState is a complete snapshot of the board: cells, player position,
// solved flag and the number of goals still waiting for a block.
// States held in history are never mutated; moves run on a clone.
type BoardState struct {
	Grid      *Grid
	Player    Coord
	Solved    bool
	GoalsLeft int
}

// Clone returns a deep copy of the state.
func (s *BoardState) Clone() *BoardState {
	return &BoardState{
		Grid:      s.Grid.Clone(),
		Player:    s.Player,
		Solved:    s.Solved,
		GoalsLeft: s.GoalsLeft,
	}
}

// Equal returns true if both states describe the same board.
func (s *BoardState) Equal(other *BoardState) bool {
	return s.Player == other.Player &&
		s.Solved == other.Solved &&
		s.GoalsLeft == other.GoalsLeft &&
		s.Grid.Equal(other.Grid)
}

// Cell returns the cell at the given position.
func (s *BoardState) Cell(c Coord) Cell {
	return s.Grid.Get(c)
}

// Hash returns a stable hash of the state for determinism checks.
func (s *BoardState) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d;", s.Grid.W, s.Grid.H)
	for _, cell := range s.Grid.Cells {
		fmt.Fprintf(h, "%d%t,", cell.Kind, cell.Goal)
	}
	fmt.Fprintf(h, ";P:%d:%d;S:%t;G:%d", s.Player.X, s.Player.Y, s.Solved, s.GoalsLeft)
	return h.Sum64()
}

// String dumps the board in the map vocabulary with the player as 's'.
func (s *BoardState) String() string {
	rows := s.Grid.Rows()
	if s.Grid.InBounds(s.Player) {
		row := []rune(rows[s.Player.Y])
		row[s.Player.X] = 's'
		rows[s.Player.Y] = string(row)
	}
	return strings.Join(rows, "\n")
}
