// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "github.com/gogpu/fontsrc/rawmem"

// GlyphRasterizer turns a glyph outline into 8-bit coverage.
//
// Coordinates are in pixels with the Y axis pointing down and the origin at
// the top-left corner of the w×h target region. Contours are filled with the
// non-zero winding rule.
type GlyphRasterizer interface {
	// Reset clears the outline and sets the target size.
	Reset(w, h int)

	MoveTo(x, y float32)
	LineTo(x, y float32)
	QuadTo(bx, by, cx, cy float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()

	// Fill writes w×h coverage bytes to dst, rows stride bytes apart.
	// Bytes between w and stride on each row are left untouched.
	Fill(dst rawmem.View[byte], stride int)
}

// New returns the legacy scanline rasterizer when legacy is true and the
// area-coverage rasterizer otherwise.
func New(legacy bool) GlyphRasterizer {
	if legacy {
		return NewScanline(0, 0)
	}
	return NewVector(0, 0)
}
