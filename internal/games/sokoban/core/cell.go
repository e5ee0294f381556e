// Package core provides the board engine for the Sokoban puzzle game.
// This package is UI-agnostic and deterministic: a session is a pure
// function of the map definition and the ordered command sequence.
package core

// Kind is the content of a board cell.
type Kind uint8

const (
	KindWall Kind = iota
	KindEmpty
	KindBlock
	KindCrate
	KindExit
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "Wall"
	case KindEmpty:
		return "Empty"
	case KindBlock:
		return "Block"
	case KindCrate:
		return "Crate"
	case KindExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Cell is a single board cell. Goal is a marker independent of Kind:
// a Block resting on a goal cell satisfies that goal.
type Cell struct {
	Kind Kind
	Goal bool
}

// Wall returns a wall cell.
func Wall() Cell {
	return Cell{Kind: KindWall}
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// GoalCell returns an empty cell marked as goal.
func GoalCell() Cell {
	return Cell{Kind: KindEmpty, Goal: true}
}

// IsFree reports whether the player (or a pushed piece) may enter the cell.
// The exit only opens once the board is solved.
func (c Cell) IsFree(solved bool) bool {
	switch c.Kind {
	case KindEmpty:
		return true
	case KindExit:
		return solved
	default:
		return false
	}
}

// IsMovable reports whether the cell can be pushed.
func (c Cell) IsMovable() bool {
	return c.Kind == KindBlock || c.Kind == KindCrate
}

// IsBlock reports whether the cell holds a goal-counting block.
func (c Cell) IsBlock() bool {
	return c.Kind == KindBlock
}

// IsCrate reports whether the cell holds a crate.
func (c Cell) IsCrate() bool {
	return c.Kind == KindCrate
}

// IsGoal reports whether the cell is marked as goal.
func (c Cell) IsGoal() bool {
	return c.Goal
}

// IsExit reports whether the cell is the exit.
func (c Cell) IsExit() bool {
	return c.Kind == KindExit
}

// IsSatisfied reports whether the cell is a goal holding a block.
func (c Cell) IsSatisfied() bool {
	return c.Goal && c.Kind == KindBlock
}

// Rune returns the map definition character for the cell.
// Block on goal and crate on goal have no definition character and
// print as '!' and 'C'.
func (c Cell) Rune() rune {
	switch c.Kind {
	case KindWall:
		return '.'
	case KindBlock:
		if c.Goal {
			return '!'
		}
		return 'b'
	case KindCrate:
		if c.Goal {
			return 'C'
		}
		return 'c'
	case KindExit:
		return 'x'
	default:
		if c.Goal {
			return 'g'
		}
		return ' '
	}
}
