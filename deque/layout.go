// File: deque/layout.go
// Author: momentics <momentics@gmail.com>
//
// Cursor arithmetic over the circular block: logical-to-physical index
// mapping and decomposition of the live window into contiguous spans.

package deque

// span is the half-open physical range [start, start+n) of the block.
type span struct {
	start uint
	n     uint
}

// layout holds the circular cursors of a ring buffer.
// Invariants: lo < cap whenever cap > 0; n <= cap.
type layout struct {
	lo  uint // physical slot of logical index 0
	n   uint // number of live elements
	cap uint // slot capacity of the block
}

// offset maps logical index i (0 <= i <= n) to its physical slot.
// Subtraction happens before addition so no intermediate value exceeds
// cap on unsigned arithmetic; do not simplify the expression.
func (l layout) offset(i uint) uint {
	if l.lo >= l.cap-i {
		return i - (l.cap - l.lo)
	}
	return l.lo + i
}

// backOffset returns the slot where the next appended element lands.
func (l layout) backOffset() uint {
	return l.offset(l.n)
}

// frontOffset returns the slot where the next prepended element lands.
// The explicit lo == 0 branch avoids unsigned underflow.
func (l layout) frontOffset() uint {
	if l.lo == 0 {
		return l.cap - 1
	}
	return l.lo - 1
}

// wraps reports whether the live window crosses the physical end of the
// block. A window that touches the end without crossing does not wrap.
func (l layout) wraps() bool {
	return l.lo > l.cap-l.n
}

// spans decomposes the live window into at most two contiguous spans.
// The first starts at lo; the second, present only when the window
// wraps, starts at physical 0. Concatenated they cover the logical
// sequence in order and never overlap.
func (l layout) spans() (span, span) {
	if l.wraps() {
		len1 := l.cap - l.lo
		return span{l.lo, len1}, span{0, l.n - len1}
	}
	return span{l.lo, l.n}, span{}
}
