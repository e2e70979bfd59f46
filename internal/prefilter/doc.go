// Package prefilter implements the separable box prefilter applied to
// rasterized glyph coverage.
//
// The filter softens a bitmap that was rendered with a margin of kernel-1
// empty pixels on its high edges: each output pixel is the mean of the kernel
// pixels ending at it, so ink spreads right (or down) into the margin.
// Kernels are limited to MaxKernel, the size of the ring buffer that holds the
// pixels leaving the window.
//
// The width pass runs before the height pass. At region edges the two passes
// do not commute for different kernel sizes, so callers rely on that order.
package prefilter
