package core

import "strings"

// Grid is the board as a rectangular grid of cells.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []Cell
}

// NewGrid creates a grid of the given dimensions filled with walls.
func NewGrid(w, h int) *Grid {
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]Cell, w*h), // zero Kind is KindWall
	}
}

func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// Get returns the cell at the given coordinate.
// Out-of-bounds coordinates read as walls.
func (g *Grid) Get(c Coord) Cell {
	if !g.InBounds(c) {
		return Wall()
	}
	return g.Cells[g.index(c)]
}

// Set replaces the cell at the given coordinate.
func (g *Grid) Set(c Coord, cell Cell) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = cell
	}
}

// SetKind changes the kind of a cell, keeping its goal marker.
func (g *Grid) SetKind(c Coord, k Kind) {
	if g.InBounds(c) {
		g.Cells[g.index(c)].Kind = k
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// Count returns the number of cells matching the predicate.
func (g *Grid) Count(match func(Cell) bool) int {
	n := 0
	for _, cell := range g.Cells {
		if match(cell) {
			n++
		}
	}
	return n
}

// Goals returns the number of goal-marked cells.
func (g *Grid) Goals() int {
	return g.Count(Cell.IsGoal)
}

// Blocks returns the number of block cells.
func (g *Grid) Blocks() int {
	return g.Count(Cell.IsBlock)
}

// Unsatisfied returns the number of goal cells not holding a block.
func (g *Grid) Unsatisfied() int {
	return g.Count(func(c Cell) bool { return c.Goal && c.Kind != KindBlock })
}

// Exit returns the position of the exit cell.
func (g *Grid) Exit() (Coord, bool) {
	for i, cell := range g.Cells {
		if cell.IsExit() {
			return C(i%g.W, i/g.W), true
		}
	}
	return Coord{}, false
}

// Rows renders the grid one string per row using the map vocabulary.
func (g *Grid) Rows() []string {
	rows := make([]string, g.H)
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		sb.Reset()
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Get(C(x, y)).Rune())
		}
		rows[y] = sb.String()
	}
	return rows
}
