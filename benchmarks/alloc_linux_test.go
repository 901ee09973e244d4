//go:build linux

// File: benchmarks/alloc_linux_test.go
// Author: momentics <momentics@gmail.com>
//
// mmap-backed allocation strategy for the allocator benchmarks.

package benchmarks

import "golang.org/x/sys/unix"

func mmapAlloc(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func mmapFree(b []byte) error {
	return unix.Munmap(b)
}
