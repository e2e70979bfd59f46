// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/fontsrc/rawmem"
)

// Vector rasterizes with exact signed-area coverage accumulation
// (golang.org/x/image/vector).
type Vector struct {
	z *vector.Rasterizer

	// scratch receives the coverage when the destination rows are not
	// contiguous. vector's fast path writes w*h bytes with no stride.
	scratch *rawmem.Buffer[byte]
}

// NewVector creates a vector rasterizer for a w×h region.
func NewVector(w, h int) *Vector {
	v := &Vector{
		z:       vector.NewRasterizer(w, h),
		scratch: rawmem.Alloc[byte](0),
	}
	v.z.DrawOp = draw.Src
	return v
}

// Reset implements GlyphRasterizer.
func (v *Vector) Reset(w, h int) {
	v.z.Reset(w, h)
	v.z.DrawOp = draw.Src
}

// MoveTo implements GlyphRasterizer.
func (v *Vector) MoveTo(x, y float32) { v.z.MoveTo(x, y) }

// LineTo implements GlyphRasterizer.
func (v *Vector) LineTo(x, y float32) { v.z.LineTo(x, y) }

// QuadTo implements GlyphRasterizer.
func (v *Vector) QuadTo(bx, by, cx, cy float32) { v.z.QuadTo(bx, by, cx, cy) }

// CubeTo implements GlyphRasterizer.
func (v *Vector) CubeTo(bx, by, cx, cy, dx, dy float32) { v.z.CubeTo(bx, by, cx, cy, dx, dy) }

// ClosePath implements GlyphRasterizer.
func (v *Vector) ClosePath() { v.z.ClosePath() }

// Fill implements GlyphRasterizer.
func (v *Vector) Fill(dst rawmem.View[byte], stride int) {
	size := v.z.Size()
	w, h := size.X, size.Y
	if w <= 0 || h <= 0 || !dst.Valid() {
		return
	}

	direct := stride == w
	var pix []byte
	if direct {
		pix = dst.Slice(w * h)
	} else {
		v.scratch.Grow(w * h)
		pix = v.scratch.View().Slice(w * h)
	}

	img := &image.Alpha{Pix: pix, Stride: w, Rect: image.Rect(0, 0, w, h)}
	v.z.Draw(img, img.Rect, image.Opaque, image.Point{})

	if direct {
		return
	}
	for y := 0; y < h; y++ {
		copy(dst.Add(y*stride).Slice(w), pix[y*w:(y+1)*w])
	}
}
