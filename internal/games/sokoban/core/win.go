package core

// Evaluate updates the solved flag after an accepted move and reports
// whether the session is won: every goal holds a block and the player
// stands on the exit. Unsolving closes the exit again.
func (s *BoardState) Evaluate() bool {
	if s.GoalsLeft != 0 {
		s.Solved = false
		return false
	}
	s.Solved = true
	return s.Grid.Get(s.Player).IsExit()
}
