// File: deque/ringbuf_test.go
// Author: momentics <momentics@gmail.com>

package deque

import (
	"errors"
	"math"
	"math/bits"
	"slices"
	"testing"

	"github.com/momentics/ringbuf/api"
)

func assertPanics(t *testing.T, name string, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		rec := recover()
		if rec == nil {
			t.Errorf("%s: did not panic", name)
			return
		}
		err, ok := rec.(error)
		if !ok || !errors.Is(err, sentinel) {
			t.Errorf("%s: recovered %v, want %v", name, rec, sentinel)
		}
	}()
	fn()
}

func TestZeroValue(t *testing.T) {
	var r RingBuffer[string]
	if r.Len() != 0 || r.Cap() != 0 || !r.Empty() {
		t.Fatalf("zero value: Len=%d Cap=%d Empty=%v", r.Len(), r.Cap(), r.Empty())
	}
	if _, ok := r.PopFront(); ok {
		t.Error("PopFront on empty returned ok")
	}
	if _, ok := r.Back(); ok {
		t.Error("Back on empty returned ok")
	}
	r.PushBack("a")
	if v, ok := r.Front(); !ok || v != "a" {
		t.Fatalf("Front = %q, %v after push onto zero value", v, ok)
	}
}

func TestSimple(t *testing.T) {
	d := New[int]()
	if d.Len() != 0 {
		t.Fatalf("Len = %d, want 0", d.Len())
	}
	d.PushFront(17)
	d.PushFront(42)
	d.PushBack(137)
	if d.Len() != 3 {
		t.Fatalf("Len = %d, want 3", d.Len())
	}
	d.PushBack(137)
	if d.Len() != 4 {
		t.Fatalf("Len = %d, want 4", d.Len())
	}
	if v, _ := d.Front(); v != 42 {
		t.Errorf("Front = %d, want 42", v)
	}
	if v, _ := d.Back(); v != 137 {
		t.Errorf("Back = %d, want 137", v)
	}
	if v, _ := d.PopFront(); v != 42 {
		t.Errorf("PopFront = %d, want 42", v)
	}
	if v, _ := d.PopBack(); v != 137 {
		t.Errorf("PopBack = %d, want 137", v)
	}
	if v, _ := d.PopBack(); v != 137 {
		t.Errorf("PopBack = %d, want 137", v)
	}
	if v, _ := d.PopBack(); v != 17 {
		t.Errorf("PopBack = %d, want 17", v)
	}
	if d.Len() != 0 {
		t.Fatalf("Len = %d after draining, want 0", d.Len())
	}
	d.PushBack(3)
	d.PushFront(2)
	d.PushBack(4)
	d.PushFront(1)
	for i, want := range []int{1, 2, 3, 4} {
		if got := d.At(i); got != want {
			t.Errorf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestScenarioPushPop(t *testing.T) {
	r := New[int]()
	r.PushBack(1)
	r.PushBack(2)
	if v, _ := r.Front(); v != 1 {
		t.Errorf("Front = %d, want 1", v)
	}
	if v, _ := r.Back(); v != 2 {
		t.Errorf("Back = %d, want 2", v)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}
	if v, _ := r.PopFront(); v != 1 {
		t.Errorf("PopFront = %d, want 1", v)
	}
	if got := slices.Collect(r.Values()); !slices.Equal(got, []int{2}) {
		t.Errorf("remaining sequence = %v, want [2]", got)
	}
}

func TestPushMixedWrapAndGrowth(t *testing.T) {
	r := WithCapacity[int](1)
	r.PushBack(4)
	r.PushBack(5)
	r.PushFront(3)
	r.PushBack(6)
	r.PushFront(2)
	r.PushFront(1)
	got := slices.Collect(r.Values())
	if !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("sequence = %v, want [1 2 3 4 5 6]", got)
	}
}

func TestPushFrontGrow(t *testing.T) {
	d := New[int]()
	for i := 0; i < 66; i++ {
		d.PushFront(i)
	}
	if d.Len() != 66 {
		t.Fatalf("Len = %d, want 66", d.Len())
	}
	if c := d.Cap(); c < 66 || bits.OnesCount(uint(c)) != 1 {
		t.Fatalf("Cap = %d, want a power of two >= 66", c)
	}
	for i := 0; i < 66; i++ {
		if got := d.At(i); got != 65-i {
			t.Errorf("At(%d) = %d, want %d", i, got, 65-i)
		}
	}

	d = New[int]()
	for i := 0; i < 66; i++ {
		d.PushBack(i)
	}
	for i := 0; i < 66; i++ {
		if got := d.At(i); got != i {
			t.Errorf("At(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestWithCapacity(t *testing.T) {
	d := WithCapacity[int](0)
	d.PushBack(1)
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
	if d.Cap() != minCapacity {
		t.Errorf("Cap = %d, want %d", d.Cap(), minCapacity)
	}
	d = WithCapacity[int](50)
	d.PushBack(1)
	if d.Len() != 1 || d.Cap() != 50 {
		t.Errorf("Len = %d Cap = %d, want 1 and 50", d.Len(), d.Cap())
	}
	assertPanics(t, "negative capacity", api.ErrCapacityOverflow, func() {
		WithCapacity[int](-1)
	})
}

func TestReserve(t *testing.T) {
	d := New[uint64]()
	d.PushBack(0)
	d.Reserve(50)
	if d.Cap() != 64 {
		t.Errorf("Cap = %d after Reserve(50), want 64", d.Cap())
	}
	d.Reserve(10) // never shrinks
	if d.Cap() != 64 {
		t.Errorf("Cap = %d after smaller Reserve, want 64", d.Cap())
	}
}

func TestReserveExact(t *testing.T) {
	d := New[uint64]()
	d.PushBack(0)
	d.ReserveExact(50)
	if d.Cap() != 50 {
		t.Errorf("Cap = %d after ReserveExact(50), want 50", d.Cap())
	}
	d.ReserveExact(10)
	if d.Cap() != 50 {
		t.Errorf("Cap = %d after smaller ReserveExact, want 50", d.Cap())
	}
}

func TestGrow(t *testing.T) {
	d := New[int]()
	d.PushBack(1)
	d.Grow(100)
	if free := d.Cap() - d.Len(); free < 100 {
		t.Errorf("free space = %d after Grow(100), want >= 100", free)
	}
	capBefore := d.Cap()
	d.Grow(10) // headroom already present
	if d.Cap() != capBefore {
		t.Errorf("Cap changed from %d to %d on satisfied Grow", capBefore, d.Cap())
	}
	assertPanics(t, "negative grow", api.ErrCapacityOverflow, func() {
		d.Grow(-1)
	})
}

func TestShrinkToFit(t *testing.T) {
	d := New[int]()
	for i := 0; i < 5; i++ {
		d.PushBack(i)
	}
	d.ShrinkToFit()
	if d.Cap() != 5 {
		t.Errorf("Cap = %d after ShrinkToFit, want 5", d.Cap())
	}
	if got := slices.Collect(d.Values()); !slices.Equal(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("sequence = %v after ShrinkToFit", got)
	}

	e := New[int]()
	e.ShrinkToFit()
	if e.Cap() != 0 {
		t.Errorf("Cap = %d after empty ShrinkToFit, want 0", e.Cap())
	}
	e.PushBack(7) // must regrow from nothing
	if v, _ := e.Front(); v != 7 {
		t.Errorf("Front = %d after regrow, want 7", v)
	}
}

func TestSwap(t *testing.T) {
	d := Of(0, 1, 2, 3, 4)
	d.PopFront()
	d.Swap(0, 3)
	got := slices.Collect(d.Values())
	if !slices.Equal(got, []int{4, 2, 3, 1}) {
		t.Fatalf("sequence = %v after swap, want [4 2 3 1]", got)
	}
	d.Swap(1, 1) // no-op
	if got := slices.Collect(d.Values()); !slices.Equal(got, []int{4, 2, 3, 1}) {
		t.Fatalf("sequence = %v after self swap, want [4 2 3 1]", got)
	}
}

func TestSetAndAt(t *testing.T) {
	d := Of(1, 2, 3)
	d.Set(1, 9)
	if got := d.At(1); got != 9 {
		t.Errorf("At(1) = %d after Set, want 9", got)
	}
	*d.AtPtr(2) = 8
	if got := d.At(2); got != 8 {
		t.Errorf("At(2) = %d after AtPtr write, want 8", got)
	}
	*d.FrontPtr() = 7
	*d.BackPtr() = 6
	if got := slices.Collect(d.Values()); !slices.Equal(got, []int{7, 9, 6}) {
		t.Errorf("sequence = %v after pointer writes, want [7 9 6]", got)
	}
}

func TestOutOfRangePanics(t *testing.T) {
	d := Of(1, 2, 3)
	assertPanics(t, "At past end", api.ErrIndexOutOfBounds, func() { d.At(3) })
	assertPanics(t, "At negative", api.ErrIndexOutOfBounds, func() { d.At(-1) })
	assertPanics(t, "Set past end", api.ErrIndexOutOfBounds, func() { d.Set(3, 0) })
	assertPanics(t, "Swap first out of range", api.ErrIndexOutOfBounds, func() { d.Swap(3, 0) })
	assertPanics(t, "Swap second out of range", api.ErrIndexOutOfBounds, func() { d.Swap(0, 3) })
	assertPanics(t, "Truncate negative", api.ErrIndexOutOfBounds, func() { d.Truncate(-1) })
	assertPanics(t, "AtPtr past end", api.ErrIndexOutOfBounds, func() { d.AtPtr(3) })
}

func TestTruncate(t *testing.T) {
	d := Of(1, 2, 3, 4, 5)
	d.Truncate(2)
	if got := slices.Collect(d.Values()); !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("sequence = %v after Truncate(2), want [1 2]", got)
	}
	d.Truncate(2) // idempotent
	if d.Len() != 2 {
		t.Errorf("Len = %d after repeated Truncate, want 2", d.Len())
	}
	d.Truncate(10) // no effect past length
	if d.Len() != 2 {
		t.Errorf("Len = %d after oversized Truncate, want 2", d.Len())
	}
	capBefore := d.Cap()
	d.Clear()
	if d.Len() != 0 || d.Cap() != capBefore {
		t.Errorf("Clear: Len = %d Cap = %d, want 0 and %d", d.Len(), d.Cap(), capBefore)
	}
}

func TestVacatedSlotsAreZeroed(t *testing.T) {
	v := 7
	d := Of(&v, &v, &v)
	d.PopBack()
	d.PopFront()
	d.Clear()
	for i, p := range d.buf {
		if p != nil {
			t.Errorf("slot %d still holds %p after clear", i, p)
		}
	}
}

func TestZeroSizeElements(t *testing.T) {
	d := New[struct{}]()
	if d.Cap() != math.MaxInt {
		t.Fatalf("Cap = %d for zero-size elements, want MaxInt", d.Cap())
	}
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			d.PushBack(struct{}{})
		} else {
			d.PushFront(struct{}{})
		}
	}
	if d.Len() != 100 {
		t.Fatalf("Len = %d, want 100", d.Len())
	}
	d.At(99)
	d.Swap(0, 99)
	if _, ok := d.PopFront(); !ok {
		t.Error("PopFront on populated deque returned !ok")
	}
	if _, ok := d.PopBack(); !ok {
		t.Error("PopBack on populated deque returned !ok")
	}
	d.Truncate(10)
	if d.Len() != 10 {
		t.Errorf("Len = %d after Truncate(10), want 10", d.Len())
	}
	s1, s2 := d.Slices()
	if len(s1)+len(s2) != 10 {
		t.Errorf("views cover %d elements, want 10", len(s1)+len(s2))
	}
	if n := len(d.IntoSlice()); n != 10 {
		t.Errorf("IntoSlice length = %d, want 10", n)
	}
}

func TestSlices(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 8; i++ {
		d.PushBack(i)
	}
	s1, s2 := d.Slices()
	if !slices.Equal(s1, []int{1, 2, 3, 4, 5, 6, 7, 8}) || len(s2) != 0 {
		t.Fatalf("unwrapped views = %v, %v", s1, s2)
	}

	d.PopFront()
	d.PopFront()
	d.PushBack(9) // wraps
	s1, s2 = d.Slices()
	if !slices.Equal(s1, []int{3, 4, 5, 6, 7, 8}) || !slices.Equal(s2, []int{9}) {
		t.Fatalf("wrapped views = %v, %v", s1, s2)
	}
	s2[0] = 99 // views alias the block
	if v, _ := d.Back(); v != 99 {
		t.Errorf("Back = %d after write through view, want 99", v)
	}
}
