package terminal

import "github.com/lixenwraith/cellbridge/core"

// ClipStack is a LIFO of clip rectangles; each push is intersected with the current top
type ClipStack struct {
	stack []core.Area
}

// Reset empties the stack
func (s *ClipStack) Reset() {
	s.stack = s.stack[:0]
}

// Push intersects a with the current clip and makes it current
func (s *ClipStack) Push(a core.Area) {
	if top, ok := s.Top(); ok {
		a = top.Intersect(a)
	}
	s.stack = append(s.stack, a)
}

// Pop restores the previous clip; popping an empty stack is a no-op
func (s *ClipStack) Pop() {
	if len(s.stack) > 0 {
		s.stack = s.stack[:len(s.stack)-1]
	}
}

// Depth returns the number of active clips
func (s *ClipStack) Depth() int {
	return len(s.stack)
}

// Top returns the current clip
func (s *ClipStack) Top() (core.Area, bool) {
	if len(s.stack) == 0 {
		return core.Area{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Allows reports whether (x, y) is inside the current clip, true when unclipped
func (s *ClipStack) Allows(x, y int) bool {
	top, ok := s.Top()
	return !ok || top.Contains(x, y)
}
