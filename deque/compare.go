// File: deque/compare.go
// Author: momentics <momentics@gmail.com>
//
// Relational operations over the logical sequence: equality,
// lexicographic ordering and display. Physical layout never matters.

package deque

import (
	"cmp"
	"fmt"
	"strings"
)

// Equal reports whether a and b hold pairwise-equal elements in the
// same logical order.
func Equal[T comparable](a, b *RingBuffer[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T, U any](a *RingBuffer[T], b *RingBuffer[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, v := range a.All() {
		if !eq(v, b.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically over their logical
// sequences: the first unequal pair decides; on an equal shared prefix
// the shorter sequence is less. Returns -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *RingBuffer[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T, U any](a *RingBuffer[T], b *RingBuffer[U], compare func(T, U) int) int {
	bn := b.Len()
	for i, v := range a.All() {
		if i >= bn {
			return 1
		}
		if c := compare(v, b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), bn)
}

// String renders the logical sequence as a bracketed, comma-separated
// list, e.g. "[1, 2, 3]". Implements fmt.Stringer.
func (r *RingBuffer[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range r.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
