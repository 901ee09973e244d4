//go:build !linux

// File: benchmarks/alloc_stub_test.go
// Author: momentics <momentics@gmail.com>
//
// Stub mmap backend for platforms where the benchmark is skipped.

package benchmarks

import "errors"

var errNoMmap = errors.New("mmap allocation not supported on this platform")

func mmapAlloc(int) ([]byte, error) {
	return nil, errNoMmap
}

func mmapFree([]byte) error {
	return nil
}
