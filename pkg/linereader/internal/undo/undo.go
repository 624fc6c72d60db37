// ABOUTME: Bounded undo history of editor snapshots
// ABOUTME: Type-parameterized; oldest snapshots are dropped once the depth is reached

package undo

// Stack records snapshots for undo, newest on top.
type Stack[S any] struct {
	states []S
	depth  int
}

// New returns a Stack keeping at most depth snapshots.
func New[S any](depth int) *Stack[S] {
	return &Stack[S]{states: make([]S, 0, min(depth, 64)), depth: depth}
}

// Push records a snapshot, evicting the oldest when full.
func (s *Stack[S]) Push(state S) {
	if s.depth <= 0 {
		return
	}
	if len(s.states) == s.depth {
		copy(s.states, s.states[1:])
		s.states = s.states[:len(s.states)-1]
	}
	s.states = append(s.states, state)
}

// Pop removes and returns the newest snapshot.
func (s *Stack[S]) Pop() (S, bool) {
	if len(s.states) == 0 {
		var zero S
		return zero, false
	}
	last := s.states[len(s.states)-1]
	var zero S
	s.states[len(s.states)-1] = zero
	s.states = s.states[:len(s.states)-1]
	return last, true
}

// Reset discards every snapshot.
func (s *Stack[S]) Reset() {
	clear(s.states)
	s.states = s.states[:0]
}

// Len returns the number of snapshots.
func (s *Stack[S]) Len() int {
	return len(s.states)
}
