package rawmem

// Buffer owns a freshly allocated run of T.
//
// Views obtained from a Buffer are valid until Release. Buffers are not
// reference counted; the holder tracks when the memory is no longer needed.
type Buffer[T any] struct {
	data []T
}

// Alloc allocates a zeroed buffer of n elements. n <= 0 yields an empty
// buffer whose View is invalid.
func Alloc[T any](n int) *Buffer[T] {
	if n <= 0 {
		return &Buffer[T]{}
	}
	return &Buffer[T]{data: make([]T, n)}
}

// View returns a view of the buffer's first element.
func (b *Buffer[T]) View() View[T] {
	return Of(b.data)
}

// Len returns the number of elements the buffer owns.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Grow makes sure the buffer owns at least n elements, reallocating when it
// is too small. The contents are not preserved across a reallocation.
// Views taken before a reallocation must not be used afterwards.
func (b *Buffer[T]) Grow(n int) {
	if n <= len(b.data) {
		return
	}
	b.data = make([]T, n)
}

// Release drops the allocation. It is safe to call more than once.
func (b *Buffer[T]) Release() {
	b.data = nil
}
