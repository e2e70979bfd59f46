package rawmem

import "unsafe"

// View is an unchecked reference to a contiguous run of T.
//
// The zero View is invalid. Views are values; copying one copies the
// reference, not the memory.
type View[T any] struct {
	ptr *T
}

// Of returns a view of s's backing array starting at s[0].
// The view borrows the array: s's owner keeps it alive and frees it.
// A nil or zero-capacity slice yields the zero View.
func Of[T any](s []T) View[T] {
	if cap(s) == 0 {
		return View[T]{}
	}
	return View[T]{ptr: unsafe.SliceData(s)}
}

// FromPointer returns a view starting at p.
func FromPointer[T any](p *T) View[T] {
	return View[T]{ptr: p}
}

// Valid reports whether v refers to memory.
func (v View[T]) Valid() bool {
	return v.ptr != nil
}

// Ptr returns a pointer to the i'th element. i is not checked.
func (v View[T]) Ptr(i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(v.ptr), i*int(unsafe.Sizeof(zero))))
}

// At returns the i'th element. i is not checked.
func (v View[T]) At(i int) T {
	return *v.Ptr(i)
}

// Set stores x as the i'th element. i is not checked.
func (v View[T]) Set(i int, x T) {
	*v.Ptr(i) = x
}

// Add returns a view starting n elements after v, over the same region.
// n may be negative. It is not checked.
func (v View[T]) Add(n int) View[T] {
	if v.ptr == nil {
		return v
	}
	return View[T]{ptr: v.Ptr(n)}
}

// Slice returns the first n elements as a slice sharing v's memory.
// It returns nil for an invalid view or n <= 0.
func (v View[T]) Slice(n int) []T {
	if v.ptr == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice(v.ptr, n)
}

// Fill sets the first n elements to x.
func (v View[T]) Fill(n int, x T) {
	for i := 0; i < n; i++ {
		*v.Ptr(i) = x
	}
}
