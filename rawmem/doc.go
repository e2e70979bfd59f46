// Package rawmem provides zero-copy views over contiguous element buffers.
//
// A [View] is a bare pointer to the first element of a region. It carries no
// length: every access trusts the length the caller agreed on with whoever
// supplied the memory. This keeps the per-pixel paths of glyph rasterization
// free of bounds checks. Outside hot loops, [View.Slice] materializes an
// ordinary length-bounded slice.
//
// Memory comes from one of two places:
//
//   - [Of] and [FromPointer] borrow caller-owned memory. A View has no way to
//     free it.
//   - [Alloc] returns a [Buffer] that owns a fresh allocation until
//     [Buffer.Release] is called or the Buffer is dropped.
//
// # Safety
//
// Views follow the unsafe.Pointer rules: an offset view must stay inside the
// allocation it was derived from. Reading or writing past the region the
// caller vouched for is undefined behavior, not a panic.
package rawmem
