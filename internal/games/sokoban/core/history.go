package core

// History is the bounded undo stack of board states, oldest first.
// It always holds at least one state; the last one is current.
type History struct {
	states []*BoardState
	max    int
}

// NewHistory creates a history holding the initial state.
// max is clamped to at least 1.
func NewHistory(initial *BoardState, max int) *History {
	if max < 1 {
		max = 1
	}
	states := make([]*BoardState, 0, max)
	states = append(states, initial)
	return &History{states: states, max: max}
}

// Current returns the current state. Callers must not mutate it.
func (h *History) Current() *BoardState {
	return h.states[len(h.states)-1]
}

// Len returns the number of stored states.
func (h *History) Len() int {
	return len(h.states)
}

// Max returns the history bound.
func (h *History) Max() int {
	return h.max
}

// Push appends a state, evicting the oldest when the bound is reached.
func (h *History) Push(s *BoardState) {
	if len(h.states) >= h.max {
		copy(h.states, h.states[1:])
		h.states[len(h.states)-1] = nil
		h.states = h.states[:len(h.states)-1]
	}
	h.states = append(h.states, s)
}

// Undo drops the current state. The last remaining state is kept.
// Returns false when there was nothing to undo.
func (h *History) Undo() bool {
	if len(h.states) <= 1 {
		return false
	}
	h.states[len(h.states)-1] = nil
	h.states = h.states[:len(h.states)-1]
	return true
}

// Reset replaces the whole history with a single state.
func (h *History) Reset(s *BoardState) {
	for i := range h.states {
		h.states[i] = nil
	}
	h.states = append(h.states[:0], s)
}
