// Package deque
// Author: momentics <momentics@gmail.com>
//
// Growable double-ended queue backed by a single circular buffer.
// Amortized O(1) push/pop at both ends, O(1) random access, in-place
// linearization, borrowing and consuming iteration. Not thread-safe;
// callers provide their own mutual exclusion when sharing an instance.
// See layout.go for the cursor arithmetic and reflow.go for the
// relocation algorithms.
package deque
