// File: api/deque.go
// Author: momentics <momentics@gmail.com>
//
// Double-ended queue contract for single-goroutine use.

package api

// Deque is a growable double-ended queue contract.
//
// Implementations provide amortized O(1) insertion and removal at both
// ends and O(1) random access. No internal synchronization is implied;
// concurrent access requires caller-supplied mutual exclusion.
type Deque[T any] interface {
	// Len returns current number of elements.
	Len() int
	// Cap returns slot capacity of the backing block.
	Cap() int
	// Empty reports whether the deque holds no elements.
	Empty() bool

	// Front returns the first element, false if empty.
	Front() (T, bool)
	// Back returns the last element, false if empty.
	Back() (T, bool)
	// At returns the element at logical index i; panics when out of bounds.
	At(i int) T
	// Set overwrites the element at logical index i; panics when out of bounds.
	Set(i int, v T)

	// PushFront prepends an element, growing if full.
	PushFront(v T)
	// PushBack appends an element, growing if full.
	PushBack(v T)
	// PopFront removes and returns the first element, false if empty.
	PopFront() (T, bool)
	// PopBack removes and returns the last element, false if empty.
	PopBack() (T, bool)
	// Swap exchanges the elements at indices i and j; panics when out of bounds.
	Swap(i, j int)
	// Truncate drops elements from the back until at most target remain.
	Truncate(target int)
	// Clear removes every element, keeping capacity.
	Clear()

	// Reserve grows capacity to the next power of two at least capacity.
	Reserve(capacity int)
	// ReserveExact grows capacity to exactly capacity, never shrinking.
	ReserveExact(capacity int)
	// Grow ensures headroom for at least extra additional elements.
	Grow(extra int)
	// ShrinkToFit resizes the backing block down to the element count.
	ShrinkToFit()
}
