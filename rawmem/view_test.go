package rawmem

import "testing"

func TestOf_Borrowed(t *testing.T) {
	buf := []byte{1, 2, 3, 4}
	v := Of(buf)
	if !v.Valid() {
		t.Fatal("view of non-empty slice should be valid")
	}
	if got := v.At(2); got != 3 {
		t.Errorf("At(2) = %d, want 3", got)
	}

	v.Set(0, 9)
	if buf[0] != 9 {
		t.Errorf("Set should write through to the caller's slice, buf[0] = %d", buf[0])
	}
}

func TestOf_Empty(t *testing.T) {
	if Of[byte](nil).Valid() {
		t.Error("view of nil slice should be invalid")
	}
	if Of(make([]int, 0)).Valid() {
		t.Error("view of zero-capacity slice should be invalid")
	}

	// A zero-length slice with spare capacity still refers to memory.
	s := make([]int, 0, 4)
	if !Of(s).Valid() {
		t.Error("view of zero-length slice with capacity should be valid")
	}
}

func TestView_Add(t *testing.T) {
	buf := []uint16{10, 20, 30, 40, 50}
	v := Of(buf).Add(2)

	if got := v.At(0); got != 30 {
		t.Errorf("Add(2).At(0) = %d, want 30", got)
	}
	if got := v.At(-1); got != 20 {
		t.Errorf("Add(2).At(-1) = %d, want 20", got)
	}

	back := v.Add(-2)
	if got := back.At(4); got != 50 {
		t.Errorf("Add(2).Add(-2).At(4) = %d, want 50", got)
	}

	var zero View[uint16]
	if zero.Add(3).Valid() {
		t.Error("offsetting an invalid view should stay invalid")
	}
}

func TestView_Slice(t *testing.T) {
	buf := []int32{1, 2, 3, 4, 5, 6}
	s := Of(buf).Add(1).Slice(3)

	if len(s) != 3 {
		t.Fatalf("len(Slice(3)) = %d, want 3", len(s))
	}
	want := []int32{2, 3, 4}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("s[%d] = %d, want %d", i, s[i], want[i])
		}
	}

	s[0] = 42
	if buf[1] != 42 {
		t.Error("Slice should share memory with the view")
	}

	if Of(buf).Slice(0) != nil {
		t.Error("Slice(0) should be nil")
	}
	var zero View[int32]
	if zero.Slice(4) != nil {
		t.Error("Slice of invalid view should be nil")
	}
}

func TestView_Fill(t *testing.T) {
	buf := make([]byte, 8)
	Of(buf).Add(2).Fill(4, 0xAA)

	want := []byte{0, 0, 0xAA, 0xAA, 0xAA, 0xAA, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("buf[%d] = %#x, want %#x", i, buf[i], want[i])
		}
	}
}

func TestView_Struct(t *testing.T) {
	type pair struct {
		a, b int64
	}
	buf := []pair{{1, 2}, {3, 4}, {5, 6}}
	v := Of(buf)

	if got := v.At(2); got.a != 5 || got.b != 6 {
		t.Errorf("At(2) = %+v, want {5 6}", got)
	}
	v.Ptr(1).b = 40
	if buf[1].b != 40 {
		t.Errorf("Ptr(1) should alias buf[1], got %+v", buf[1])
	}
}

func TestFromPointer(t *testing.T) {
	arr := [3]float32{1.5, 2.5, 3.5}
	v := FromPointer(&arr[0])
	if got := v.At(2); got != 3.5 {
		t.Errorf("At(2) = %v, want 3.5", got)
	}
	if FromPointer[float32](nil).Valid() {
		t.Error("view of nil pointer should be invalid")
	}
}

func TestAlloc(t *testing.T) {
	b := Alloc[byte](16)
	if b.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", b.Len())
	}
	v := b.View()
	if !v.Valid() {
		t.Fatal("view of allocated buffer should be valid")
	}
	for i := 0; i < b.Len(); i++ {
		if v.At(i) != 0 {
			t.Fatalf("fresh buffer not zeroed at %d", i)
		}
	}

	v.Set(15, 7)
	if got := b.View().Slice(16)[15]; got != 7 {
		t.Errorf("write through view lost, got %d", got)
	}

	b.Release()
	if b.Len() != 0 {
		t.Errorf("Len() after Release = %d, want 0", b.Len())
	}
	if b.View().Valid() {
		t.Error("view after Release should be invalid")
	}
	b.Release() // idempotent
}

func TestAlloc_Empty(t *testing.T) {
	b := Alloc[int](0)
	if b.Len() != 0 || b.View().Valid() {
		t.Error("Alloc(0) should own nothing")
	}
}

func TestBuffer_Grow(t *testing.T) {
	b := Alloc[byte](4)
	b.Grow(2)
	if b.Len() != 4 {
		t.Errorf("Grow to a smaller size changed Len to %d", b.Len())
	}
	b.Grow(32)
	if b.Len() != 32 {
		t.Errorf("Len() after Grow(32) = %d, want 32", b.Len())
	}
}

func BenchmarkView_At(b *testing.B) {
	buf := make([]byte, 4096)
	v := Of(buf)
	var sum int
	for n := 0; n < b.N; n++ {
		for i := 0; i < len(buf); i++ {
			sum += int(v.At(i))
		}
	}
	_ = sum
}
