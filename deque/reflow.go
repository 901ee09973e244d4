// File: deque/reflow.go
// Author: momentics <momentics@gmail.com>
//
// Reflow engine: capacity changes and in-place linearization. resize
// relocates the two spans into a fresh block; reset eliminates the wrap
// offset in place, allocating scratch sized only to the shorter span.

package deque

import (
	"github.com/momentics/ringbuf/api"
	"github.com/momentics/ringbuf/internal/storage"
)

// resetCase identifies the relocation strategy chosen by planReset.
type resetCase int

const (
	// resetNoop: empty window, nothing to move.
	resetNoop resetCase = iota
	// resetShift: no wrap, slide the single span down to offset 0.
	resetShift
	// resetDisjoint: the gap between the spans fits the front span, so
	// both can be moved without scratch.
	resetDisjoint
	// resetScratchFront: front span is the shorter one; park it in
	// scratch while the back span slides up.
	resetScratchFront
	// resetScratchBack: back span is the shorter one; park it in
	// scratch while the front span slides down.
	resetScratchBack
)

// planReset selects the relocation strategy for a window decomposed
// into a front span of len1 elements at lo and a back span of len2
// elements at physical 0, inside a block of capacity slots. The cases
// are mutually exclusive and cover all inputs.
func planReset(len1, len2, capacity uint) resetCase {
	switch {
	case len1 == 0:
		return resetNoop
	case len2 == 0:
		return resetShift
	case len1 <= (capacity-len1)-len2:
		return resetDisjoint
	case len1 < len2:
		return resetScratchFront
	default:
		return resetScratchBack
	}
}

// resize relocates the deque into a fresh block of newCap slots.
// newCap < Len indicates an internal bug and panics with a structured
// CapacityUnderflow error; the condition is unreachable through the
// public surface. No-op when newCap == Cap or T is zero-size.
func (r *RingBuffer[T]) resize(newCap uint) {
	if newCap < r.pos.n {
		panic(api.NewError(api.ErrCodeCapacityUnderflow, "capacity underflow").
			WithContext("capacity", newCap).
			WithContext("length", r.pos.n))
	}
	if newCap == r.pos.cap || storage.Zero[T]() {
		return
	}
	block := storage.Alloc[T](newCap)
	s1, s2 := r.pos.spans()
	m := copy(block, r.buf[s1.start:s1.start+s1.n])
	copy(block[m:], r.buf[s2.start:s2.start+s2.n])
	r.buf = block
	r.pos = layout{lo: 0, n: r.pos.n, cap: newCap}
}

// reset normalizes lo to 0 in place so the logical sequence occupies
// [0, Len) of the block. Used before exposing the block as a linear
// slice. Scratch, when needed at all, is sized to the shorter span.
func (r *RingBuffer[T]) reset() {
	if r.pos.lo == 0 {
		return
	}
	s1, s2 := r.pos.spans()
	len1, len2 := s1.n, s2.n
	switch planReset(len1, len2, r.pos.cap) {
	case resetNoop:
		// Empty window; only lo needs clearing.

	case resetShift:
		//   lo
		//    v
		// +-+-+-+-+-+-+-+
		// | |x|x|x|x|x| |
		// +-+-+-+-+-+-+-+
		copy(r.buf, r.buf[s1.start:s1.start+len1])

	case resetDisjoint:
		//           lo
		//            v
		// +-+-+-+-+-+-+-+
		// |x|x| | | |x|x|
		// +-+-+-+-+-+-+-+
		// Back span first: it moves into the gap, clearing the way for
		// the front span to land at 0.
		copy(r.buf[len1:], r.buf[:len2])
		copy(r.buf, r.buf[s1.start:s1.start+len1])

	case resetScratchFront:
		//           lo
		//            v
		// +-+-+-+-+-+-+-+
		// |x|x|x|x| |x|x|
		// +-+-+-+-+-+-+-+
		tmp := storage.Alloc[T](len1)
		copy(tmp, r.buf[s1.start:s1.start+len1])
		copy(r.buf[len1:], r.buf[:len2])
		copy(r.buf, tmp)

	case resetScratchBack:
		//         lo
		//          v
		// +-+-+-+-+-+-+-+
		// |x|x| | |x|x|x|
		// +-+-+-+-+-+-+-+
		tmp := storage.Alloc[T](len2)
		copy(tmp, r.buf[:len2])
		copy(r.buf, r.buf[s1.start:s1.start+len1])
		copy(r.buf[len1:len1+len2], tmp)
	}
	clear(r.buf[r.pos.n:])
	r.pos.lo = 0
}
