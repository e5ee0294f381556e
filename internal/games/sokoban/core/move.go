package core

// Move advances the player one cell in direction d, pushing an adjacent
// block or crate one further cell when possible. It reports whether the
// player position changed.
//
// A player flush against the edge never reaches the resolver, so every
// grid access below stays in bounds.
func (s *BoardState) Move(d Dir) bool {
	if !s.Grid.InBounds(s.Player.Step(d, 1)) {
		return false
	}
	hasNext := s.Grid.InBounds(s.Player.Step(d, 2))
	return s.resolve(d, hasNext)
}

// resolve runs the push algorithm for one direction. hasNext is false when
// the cell two steps away would fall outside the grid.
func (s *BoardState) resolve(d Dir, hasNext bool) bool {
	first := s.Player.Step(d, 1)
	target1 := s.Grid.Get(first)

	if target1.IsFree(s.Solved) {
		s.Player = first
		return true
	}
	if !hasNext {
		return false
	}

	second := s.Player.Step(d, 2)
	target2 := s.Grid.Get(second)
	if !target1.IsMovable() || !target2.IsFree(s.Solved) {
		return false
	}

	if target1.IsCrate() {
		// Crates never touch goal bookkeeping.
		s.Grid.SetKind(second, KindCrate)
		s.Grid.SetKind(first, KindEmpty)
	} else {
		if target2.Goal {
			s.GoalsLeft--
		}
		s.Grid.SetKind(second, KindBlock)
		if target1.Goal {
			s.GoalsLeft++
		}
		s.Grid.SetKind(first, KindEmpty)
	}

	s.Player = first
	return true
}
