// File: internal/storage/block.go
// Author: momentics <momentics@gmail.com>
//
// Typed block allocation and size arithmetic for the ring buffer.
// All capacity overflow checking happens here, before any allocation.

package storage

import (
	"math"
	"unsafe"

	"github.com/momentics/ringbuf/api"
)

// UnboundedCap is the capacity reported for zero-size element types,
// which never occupy storage.
const UnboundedCap = uint(math.MaxInt)

// SizeOf returns the storage footprint of one element.
func SizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

// Zero reports whether T occupies no storage.
func Zero[T any]() bool {
	return SizeOf[T]() == 0
}

// MaxCap returns the largest slot count whose byte size is representable.
func MaxCap[T any]() uint {
	size := SizeOf[T]()
	if size == 0 {
		return UnboundedCap
	}
	return uint(math.MaxInt) / uint(size)
}

// Alloc allocates a block of exactly capacity slots. Capacity 0 and
// zero-size element types yield no allocation. Panics with a structured
// CapacityOverflow error when capacity*sizeof(T) is not representable.
func Alloc[T any](capacity uint) []T {
	if capacity > MaxCap[T]() {
		panic(api.NewError(api.ErrCodeCapacityOverflow, "capacity overflow").
			WithContext("capacity", capacity).
			WithContext("elemSize", SizeOf[T]()))
	}
	if capacity == 0 || Zero[T]() {
		return nil
	}
	return make([]T, capacity)
}
