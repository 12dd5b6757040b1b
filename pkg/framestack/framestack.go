// Package framestack implements a grouped stack:
// a last-in-first-out stack of frames, each frame an ordered group of
// elements stored contiguously, with a stable view over the top frame.
//
// Grounded directly on original_source/src/grouped_stack.h's
// GroupedStack<T_>: a flat element buffer plus a stack of frame-start
// offsets, so popping a frame is just truncating the buffer back to its
// start offset. Expressed here with a Go type parameter since the shape is
// identical for both of PivotScale's two stacks (dropped vertices, pivot
// non-neighbors) and nothing in the pack offers an off-the-shelf
// checkpoint-offset buffer — this is one of the three core, spec-owned
// structures meant to be hand-built, not delegated to a
// container library.
package framestack

// Stack is a grouped, last-in-first-out stack of frames over a contiguous
// element buffer. The zero value is an empty stack ready to use.
type Stack[T any] struct {
	elems  []T
	starts []int
}

// Reserve hints the element buffer's capacity, so that a TopView taken
// before further pushes remains stable: callers that need a
// stable view across pushes must reserve up front.
func (s *Stack[T]) Reserve(n int) {
	if cap(s.elems) < n {
		grown := make([]T, len(s.elems), n)
		copy(grown, s.elems)
		s.elems = grown
	}
}

// NewFrame pushes an empty frame; subsequent Push calls append to it.
func (s *Stack[T]) NewFrame() {
	s.starts = append(s.starts, len(s.elems))
}

// Push appends an element to the current (top) frame.
func (s *Stack[T]) Push(x T) {
	s.elems = append(s.elems, x)
}

// TopView returns the top frame's elements. The returned slice is stable
// only until the next Push that forces the element buffer to reallocate;
// see Reserve. With no frames on the stack it returns an empty slice.
func (s *Stack[T]) TopView() []T {
	if len(s.starts) == 0 {
		return nil
	}
	start := s.starts[len(s.starts)-1]
	return s.elems[start:]
}

// PopFrame discards the top frame, resetting the element buffer to the
// frame's start offset.
func (s *Stack[T]) PopFrame() {
	start := s.starts[len(s.starts)-1]
	s.starts = s.starts[:len(s.starts)-1]
	s.elems = s.elems[:start]
}

// Clear resets the stack to empty.
func (s *Stack[T]) Clear() {
	s.elems = s.elems[:0]
	s.starts = s.starts[:0]
}
