// File: deque/iter.go
// Author: momentics <momentics@gmail.com>
//
// Iteration layer: borrowing range-over-func iterators over the two
// spans, and the consuming Drain that takes the block with it.

package deque

import (
	"iter"

	"github.com/momentics/ringbuf/internal/storage"
)

// Values returns a borrowing iterator over the elements front to back.
// Each call yields fresh iteration state. Structural mutation of the
// deque during iteration is undefined.
func (r *RingBuffer[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2 := r.Slices()
		for _, v := range s1 {
			if !yield(v) {
				return
			}
		}
		for _, v := range s2 {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a borrowing iterator over the elements back to front.
func (r *RingBuffer[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		s1, s2 := r.Slices()
		for i := len(s2) - 1; i >= 0; i-- {
			if !yield(s2[i]) {
				return
			}
		}
		for i := len(s1) - 1; i >= 0; i-- {
			if !yield(s1[i]) {
				return
			}
		}
	}
}

// All returns an iterator over logical index and value pairs, front to
// back, with the same shape as slices.All.
func (r *RingBuffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s1, s2 := r.Slices()
		i := 0
		for _, v := range s1 {
			if !yield(i, v) {
				return
			}
			i++
		}
		for _, v := range s2 {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// RefsFront returns an iterator over element pointers front to back,
// for in-place mutation. The pointers alias the backing block;
// structural mutation during iteration is undefined.
func (r *RingBuffer[T]) RefsFront() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s1, s2 := r.Slices()
		for i := range s1 {
			if !yield(&s1[i]) {
				return
			}
		}
		for i := range s2 {
			if !yield(&s2[i]) {
				return
			}
		}
	}
}

// RefsBack returns an iterator over element pointers back to front.
func (r *RingBuffer[T]) RefsBack() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		s1, s2 := r.Slices()
		for i := len(s2) - 1; i >= 0; i-- {
			if !yield(&s2[i]) {
				return
			}
		}
		for i := len(s1) - 1; i >= 0; i-- {
			if !yield(&s1[i]) {
				return
			}
		}
	}
}

// Drain is a consuming traversal that owns the block it was given.
// Elements may be taken from either end; Close releases whatever was
// not taken. Abandoning a Drain without Close keeps the block alive
// only until the GC collects it, but Close is the contract.
type Drain[T any] struct {
	buf []T
	pos layout
}

// Drain transfers the backing block out of the deque and returns a
// consuming iterator over it. The deque itself is left empty with
// capacity 0 and remains usable.
func (r *RingBuffer[T]) Drain() *Drain[T] {
	d := &Drain[T]{buf: r.buf, pos: r.pos}
	r.buf = nil
	r.pos = layout{}
	return d
}

// Len returns the exact number of elements not yet taken.
func (d *Drain[T]) Len() int {
	return int(d.pos.n)
}

// Next takes the front element, false when exhausted.
func (d *Drain[T]) Next() (T, bool) {
	var zero T
	if d.pos.n == 0 {
		return zero, false
	}
	if storage.Zero[T]() {
		d.pos.n--
		return zero, true
	}
	off := d.pos.offset(0)
	v := d.buf[off]
	d.buf[off] = zero
	d.pos.lo = d.pos.offset(1)
	d.pos.n--
	return v, true
}

// NextBack takes the back element, false when exhausted.
func (d *Drain[T]) NextBack() (T, bool) {
	var zero T
	if d.pos.n == 0 {
		return zero, false
	}
	if storage.Zero[T]() {
		d.pos.n--
		return zero, true
	}
	off := d.pos.offset(d.pos.n - 1)
	v := d.buf[off]
	d.buf[off] = zero
	d.pos.n--
	return v, true
}

// Values returns a front-to-back iterator that closes the drain when
// the loop ends, including on early break.
func (d *Drain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer d.Close()
		for {
			v, ok := d.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Close zeroes every untaken slot and releases the block. Idempotent.
func (d *Drain[T]) Close() {
	clear(d.buf)
	d.buf = nil
	d.pos = layout{}
}
