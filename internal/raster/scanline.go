// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"cmp"
	"slices"

	"github.com/gogpu/fontsrc/rawmem"
)

// SupersampleShift controls supersampling: 2 means 4 sub-scanlines per pixel
// row (1 << 2 = 4).
const SupersampleShift = 2

// SupersampleScale is the number of sub-scanlines per pixel row.
const SupersampleScale = 1 << SupersampleShift

// lineEdge is a non-horizontal outline segment with y0 < y1.
type lineEdge struct {
	x0, y0 float32
	x1, y1 float32
	dxdy   float32
	// winding is +1 for segments drawn downwards and -1 for upwards.
	winding int
}

type crossing struct {
	x       float32
	winding int
}

// Scanline is the legacy rasterizer. It samples each pixel row on
// SupersampleScale evenly spaced sub-scanlines and accumulates the exact
// horizontal extent of every filled span. Curves are flattened to lines.
type Scanline struct {
	w, h int

	edges  []lineEdge
	active []int

	firstX, firstY float32
	penX, penY     float32

	crossings []crossing
	coverage  []float32
}

// NewScanline creates a scanline rasterizer for a w×h region.
func NewScanline(w, h int) *Scanline {
	s := &Scanline{}
	s.Reset(w, h)
	return s
}

// Reset implements GlyphRasterizer.
func (s *Scanline) Reset(w, h int) {
	s.w, s.h = w, h
	s.edges = s.edges[:0]
	s.firstX, s.firstY = 0, 0
	s.penX, s.penY = 0, 0
	if cap(s.coverage) < w {
		s.coverage = make([]float32, w)
	}
	s.coverage = s.coverage[:w]
}

// MoveTo implements GlyphRasterizer.
func (s *Scanline) MoveTo(x, y float32) {
	s.firstX, s.firstY = x, y
	s.penX, s.penY = x, y
}

// LineTo implements GlyphRasterizer.
func (s *Scanline) LineTo(x, y float32) {
	s.addEdge(s.penX, s.penY, x, y)
	s.penX, s.penY = x, y
}

// QuadTo implements GlyphRasterizer.
func (s *Scanline) QuadTo(bx, by, cx, cy float32) {
	flattenQuad(s.penX, s.penY, bx, by, cx, cy, s.LineTo)
}

// CubeTo implements GlyphRasterizer.
func (s *Scanline) CubeTo(bx, by, cx, cy, dx, dy float32) {
	flattenCube(s.penX, s.penY, bx, by, cx, cy, dx, dy, s.LineTo)
}

// ClosePath implements GlyphRasterizer.
func (s *Scanline) ClosePath() {
	s.LineTo(s.firstX, s.firstY)
}

func (s *Scanline) addEdge(x0, y0, x1, y1 float32) {
	if y0 == y1 {
		return
	}
	winding := 1
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
		winding = -1
	}
	s.edges = append(s.edges, lineEdge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy:    (x1 - x0) / (y1 - y0),
		winding: winding,
	})
}

// Fill implements GlyphRasterizer.
func (s *Scanline) Fill(dst rawmem.View[byte], stride int) {
	if s.w <= 0 || s.h <= 0 || !dst.Valid() {
		return
	}

	slices.SortFunc(s.edges, func(a, b lineEdge) int { return cmp.Compare(a.y0, b.y0) })
	s.active = s.active[:0]
	next := 0

	const weight = 1 / float32(SupersampleScale)
	for y := 0; y < s.h; y++ {
		row := dst.Add(y * stride)
		if len(s.active) == 0 && (next == len(s.edges) || s.edges[next].y0 >= float32(y+1)) {
			row.Fill(s.w, 0)
			continue
		}
		clear(s.coverage)

		for sub := 0; sub < SupersampleScale; sub++ {
			sy := float32(y) + (float32(sub)+0.5)*weight

			for next < len(s.edges) && s.edges[next].y0 <= sy {
				s.active = append(s.active, next)
				next++
			}
			s.active = slices.DeleteFunc(s.active, func(i int) bool { return s.edges[i].y1 <= sy })

			s.crossings = s.crossings[:0]
			for _, i := range s.active {
				e := &s.edges[i]
				s.crossings = append(s.crossings, crossing{
					x:       e.x0 + (sy-e.y0)*e.dxdy,
					winding: e.winding,
				})
			}
			slices.SortFunc(s.crossings, func(a, b crossing) int { return cmp.Compare(a.x, b.x) })

			winding := 0
			var start float32
			for _, c := range s.crossings {
				prev := winding
				winding += c.winding
				switch {
				case prev == 0 && winding != 0:
					start = c.x
				case prev != 0 && winding == 0:
					s.span(start, c.x, weight)
				}
			}
		}

		for x, c := range s.coverage {
			v := c*255 + 0.5
			if v > 255 {
				v = 255
			}
			row.Set(x, byte(v))
		}
	}
}

// span adds weight times the covered fraction of each pixel in [xa, xb).
func (s *Scanline) span(xa, xb, weight float32) {
	w := float32(s.w)
	xa = max(xa, 0)
	xb = min(xb, w)
	if xb <= xa {
		return
	}

	ia, ib := int(xa), int(xb)
	if ia == ib {
		s.coverage[ia] += (xb - xa) * weight
		return
	}
	s.coverage[ia] += (float32(ia+1) - xa) * weight
	for i := ia + 1; i < ib; i++ {
		s.coverage[i] += weight
	}
	if ib < s.w {
		s.coverage[ib] += (xb - float32(ib)) * weight
	}
}
