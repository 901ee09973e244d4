// File: deque/convert.go
// Author: momentics <momentics@gmail.com>
//
// Conversions between the deque and linear owned sequences, cloning and
// bulk append. Slice adoption and extraction transfer ownership of the
// backing array; the donor is neutralized so the block has one owner.

package deque

import (
	"iter"

	"github.com/momentics/ringbuf/internal/storage"
)

// Of creates a deque holding the given items in order, sized to fit.
func Of[T any](items ...T) *RingBuffer[T] {
	r := WithCapacity[T](len(items))
	r.Append(items...)
	return r
}

// FromSlice adopts the slice's backing array without copying: the array
// becomes the deque's block and the slice length its element count. The
// caller must not use s afterwards; ownership has transferred.
func FromSlice[T any](s []T) *RingBuffer[T] {
	if storage.Zero[T]() {
		return &RingBuffer[T]{pos: layout{n: uint(len(s)), cap: storage.UnboundedCap}}
	}
	return &RingBuffer[T]{
		buf: s[:cap(s)],
		pos: layout{n: uint(len(s)), cap: uint(cap(s))},
	}
}

// Collect drains a sequence into a fresh deque.
func Collect[T any](seq iter.Seq[T]) *RingBuffer[T] {
	r := WithCapacity[T](0)
	r.AppendSeq(seq)
	return r
}

// IntoSlice extracts the logical sequence as a linear slice owning the
// block, linearizing in place first so no copy is made. The deque is
// left empty with capacity 0 and remains usable.
func (r *RingBuffer[T]) IntoSlice() []T {
	n := r.pos.n
	if storage.Zero[T]() {
		r.pos = layout{}
		return make([]T, n)
	}
	r.reset()
	out := r.buf[:n]
	r.buf = nil
	r.pos = layout{}
	return out
}

// Clone returns a deque with the same logical sequence in a fresh block
// sized to the element count. The clone shares no storage with the
// source; element values are shallow-copied.
func (r *RingBuffer[T]) Clone() *RingBuffer[T] {
	c := WithCapacity[T](r.Len())
	if !storage.Zero[T]() {
		s1, s2 := r.Slices()
		m := copy(c.buf, s1)
		copy(c.buf[m:], s2)
	}
	c.pos.n = r.pos.n
	return c
}

// Append bulk-appends items, reserving the needed headroom up front.
func (r *RingBuffer[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	r.Grow(len(items))
	for _, v := range items {
		r.PushBack(v)
	}
}

// AppendSeq appends every value yielded by the sequence.
func (r *RingBuffer[T]) AppendSeq(seq iter.Seq[T]) {
	for v := range seq {
		r.PushBack(v)
	}
}
