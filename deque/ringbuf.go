// File: deque/ringbuf.go
// Author: momentics <momentics@gmail.com>
//
// Deque core: construction, element access, push/pop at both ends and
// the capacity-control surface. Physical relocation lives in reflow.go.

package deque

import (
	"math"
	"math/bits"

	"github.com/momentics/ringbuf/api"
	"github.com/momentics/ringbuf/internal/storage"
)

const (
	initialCapacity = 8
	minCapacity     = 2
)

// RingBuffer is a growable double-ended queue over one circular block.
// The zero value is a valid empty deque of capacity 0.
type RingBuffer[T any] struct {
	buf []T // nil for zero-size T and for capacity 0
	pos layout
}

// Ensure compile-time compliance.
var _ api.Deque[any] = (*RingBuffer[any])(nil)

// New creates an empty deque with the default initial capacity.
func New[T any]() *RingBuffer[T] {
	return WithCapacity[T](initialCapacity)
}

// WithCapacity creates an empty deque able to hold at least capacity
// elements without reallocating. The block is never smaller than
// minCapacity slots. Panics on negative capacity. Zero-size element
// types never allocate and report unbounded capacity.
func WithCapacity[T any](capacity int) *RingBuffer[T] {
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeCapacityOverflow, "negative capacity").
			WithContext("capacity", capacity))
	}
	if storage.Zero[T]() {
		return &RingBuffer[T]{pos: layout{cap: storage.UnboundedCap}}
	}
	c := uint(capacity)
	if c < minCapacity {
		c = minCapacity
	}
	return &RingBuffer[T]{buf: storage.Alloc[T](c), pos: layout{cap: c}}
}

// Len returns the current number of elements.
func (r *RingBuffer[T]) Len() int {
	return int(r.pos.n)
}

// Cap returns the slot capacity of the backing block. Zero-size element
// types report math.MaxInt, as no storage bounds them.
func (r *RingBuffer[T]) Cap() int {
	if storage.Zero[T]() {
		return math.MaxInt
	}
	return int(r.pos.cap)
}

// Empty reports whether the deque holds no elements.
func (r *RingBuffer[T]) Empty() bool {
	return r.pos.n == 0
}

// Front returns the first element, false if empty.
func (r *RingBuffer[T]) Front() (T, bool) {
	if r.pos.n == 0 {
		var zero T
		return zero, false
	}
	return r.At(0), true
}

// Back returns the last element, false if empty.
func (r *RingBuffer[T]) Back() (T, bool) {
	if r.pos.n == 0 {
		var zero T
		return zero, false
	}
	return r.At(r.Len() - 1), true
}

// FrontPtr returns a pointer to the first element for in-place access,
// or nil when empty. Structural mutation invalidates the pointer.
func (r *RingBuffer[T]) FrontPtr() *T {
	if r.pos.n == 0 {
		return nil
	}
	return r.AtPtr(0)
}

// BackPtr returns a pointer to the last element, or nil when empty.
func (r *RingBuffer[T]) BackPtr() *T {
	if r.pos.n == 0 {
		return nil
	}
	return r.AtPtr(r.Len() - 1)
}

// At returns the element at logical index i.
// Panics with IndexOutOfBounds when i is negative or >= Len.
func (r *RingBuffer[T]) At(i int) T {
	r.boundsCheck(i)
	if storage.Zero[T]() {
		var zero T
		return zero
	}
	return r.buf[r.pos.offset(uint(i))]
}

// AtPtr returns a pointer to the element at logical index i.
// Panics when out of bounds; structural mutation invalidates the pointer.
func (r *RingBuffer[T]) AtPtr(i int) *T {
	r.boundsCheck(i)
	if storage.Zero[T]() {
		return new(T)
	}
	return &r.buf[r.pos.offset(uint(i))]
}

// Set overwrites the element at logical index i. Panics when out of bounds.
func (r *RingBuffer[T]) Set(i int, v T) {
	r.boundsCheck(i)
	if storage.Zero[T]() {
		return
	}
	r.buf[r.pos.offset(uint(i))] = v
}

// Swap exchanges the elements at indices i and j.
// Panics when either index is out of bounds; i == j is a no-op.
func (r *RingBuffer[T]) Swap(i, j int) {
	r.boundsCheck(i)
	r.boundsCheck(j)
	if i == j || storage.Zero[T]() {
		return
	}
	oi := r.pos.offset(uint(i))
	oj := r.pos.offset(uint(j))
	r.buf[oi], r.buf[oj] = r.buf[oj], r.buf[oi]
}

// PushBack appends an element, doubling capacity when full.
func (r *RingBuffer[T]) PushBack(v T) {
	if storage.Zero[T]() {
		r.bumpLen()
		return
	}
	if r.pos.n == r.pos.cap {
		r.resize(max(r.pos.n, 1) * 2)
	}
	r.buf[r.pos.backOffset()] = v
	r.pos.n++
}

// PushFront prepends an element, doubling capacity when full.
func (r *RingBuffer[T]) PushFront(v T) {
	if storage.Zero[T]() {
		r.bumpLen()
		return
	}
	if r.pos.n == r.pos.cap {
		r.resize(max(r.pos.n, 1) * 2)
	}
	slot := r.pos.frontOffset()
	r.buf[slot] = v
	r.pos.lo = slot
	r.pos.n++
}

// PopFront removes and returns the first element, false if empty.
// The vacated slot is zeroed so it pins no garbage.
func (r *RingBuffer[T]) PopFront() (T, bool) {
	var zero T
	if r.pos.n == 0 {
		return zero, false
	}
	if storage.Zero[T]() {
		r.pos.n--
		return zero, true
	}
	off := r.pos.offset(0)
	v := r.buf[off]
	r.buf[off] = zero
	r.pos.lo = r.pos.offset(1)
	r.pos.n--
	return v, true
}

// PopBack removes and returns the last element, false if empty.
func (r *RingBuffer[T]) PopBack() (T, bool) {
	var zero T
	if r.pos.n == 0 {
		return zero, false
	}
	if storage.Zero[T]() {
		r.pos.n--
		return zero, true
	}
	off := r.pos.offset(r.pos.n - 1)
	v := r.buf[off]
	r.buf[off] = zero
	r.pos.n--
	return v, true
}

// Truncate drops elements from the back until at most target remain.
// No effect when target >= Len; panics on negative target.
func (r *RingBuffer[T]) Truncate(target int) {
	if target < 0 {
		panic(api.NewError(api.ErrCodeIndexOutOfBounds, "negative target").
			WithContext("target", target))
	}
	for uint(target) < r.pos.n {
		r.PopBack()
	}
}

// Clear removes every element. Capacity is retained.
func (r *RingBuffer[T]) Clear() {
	r.Truncate(0)
}

// Reserve grows capacity to the next power of two at least capacity.
// Panics with CapacityOverflow when the rounded value is unrepresentable.
func (r *RingBuffer[T]) Reserve(capacity int) {
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeCapacityOverflow, "negative capacity").
			WithContext("capacity", capacity))
	}
	r.ReserveExact(int(ceilPow2(uint(capacity))))
}

// ReserveExact grows capacity to exactly capacity. Never shrinks; no-op
// for zero-size element types and when capacity <= Cap.
func (r *RingBuffer[T]) ReserveExact(capacity int) {
	if capacity < 0 {
		panic(api.NewError(api.ErrCodeCapacityOverflow, "negative capacity").
			WithContext("capacity", capacity))
	}
	if storage.Zero[T]() {
		return
	}
	if uint(capacity) > r.pos.cap {
		r.resize(uint(capacity))
	}
}

// Grow ensures headroom for at least extra additional elements, growing
// only when free space is short. Panics with LengthOverflow when
// Len+extra is not representable.
func (r *RingBuffer[T]) Grow(extra int) {
	if extra < 0 {
		panic(api.NewError(api.ErrCodeCapacityOverflow, "negative capacity").
			WithContext("extra", extra))
	}
	if r.Cap()-r.Len() >= extra {
		return
	}
	total := r.pos.n + uint(extra)
	if total > storage.MaxCap[T]() {
		panic(api.NewError(api.ErrCodeLengthOverflow, "length overflow").
			WithContext("length", r.pos.n).
			WithContext("extra", extra))
	}
	r.Reserve(int(total))
}

// ShrinkToFit resizes the backing block down to exactly Len.
func (r *RingBuffer[T]) ShrinkToFit() {
	r.resize(r.pos.n)
}

// Slices returns the live window as two contiguous views in logical
// order; the second is empty unless the window wraps. The views alias
// the backing block: element writes through them are visible to the
// deque, and structural mutation invalidates them. For zero-size
// element types the views are synthesized (no storage exists).
func (r *RingBuffer[T]) Slices() (first, second []T) {
	if storage.Zero[T]() {
		return make([]T, r.pos.n), nil
	}
	s1, s2 := r.pos.spans()
	return r.buf[s1.start : s1.start+s1.n], r.buf[s2.start : s2.start+s2.n]
}

func (r *RingBuffer[T]) boundsCheck(i int) {
	if i < 0 || uint(i) >= r.pos.n {
		panic(api.NewError(api.ErrCodeIndexOutOfBounds, "index out of bounds").
			WithContext("index", i).
			WithContext("length", r.pos.n))
	}
}

// bumpLen is the zero-size push path: no storage exists, only the count.
func (r *RingBuffer[T]) bumpLen() {
	if r.pos.n == storage.MaxCap[T]() {
		panic(api.NewError(api.ErrCodeLengthOverflow, "length overflow").
			WithContext("length", r.pos.n))
	}
	r.pos.n++
}

// ceilPow2 rounds n up to a power of two, panicking when the result
// would not fit in an int.
func ceilPow2(n uint) uint {
	if n <= 1 {
		return 1
	}
	p := uint(1) << bits.Len(n-1)
	if p < n || p > uint(math.MaxInt) {
		panic(api.NewError(api.ErrCodeCapacityOverflow, "capacity overflow").
			WithContext("capacity", n))
	}
	return p
}
