package fontsrc

import (
	"github.com/gogpu/fontsrc/internal/prefilter"
	"github.com/gogpu/fontsrc/internal/raster"
	"github.com/gogpu/fontsrc/rawmem"
)

type segmentOp uint8

const (
	segmentMoveTo segmentOp = iota
	segmentLineTo
	segmentQuadTo
	segmentCubeTo
)

type point struct {
	x, y float32
}

type segment struct {
	op   segmentOp
	args [3]point
}

// outline is a glyph path in font units with Y pointing up. Backends fill
// it from their own segment types; it is reused across calls.
type outline struct {
	segments []segment
}

func (o *outline) reset() {
	o.segments = o.segments[:0]
}

func (o *outline) add(op segmentOp, args ...point) {
	s := segment{op: op}
	copy(s.args[:], args)
	o.segments = append(o.segments, s)
}

// bounds returns the box of all on- and off-curve points. It reports false
// for an empty outline.
func (o *outline) bounds() (box, bool) {
	var b box
	first := true
	for _, s := range o.segments {
		for _, p := range s.args[:s.op.numArgs()] {
			if first {
				b = box{p.x, p.y, p.x, p.y}
				first = false
				continue
			}
			b.xMin, b.xMax = min(b.xMin, p.x), max(b.xMax, p.x)
			b.yMin, b.yMax = min(b.yMin, p.y), max(b.yMax, p.y)
		}
	}
	return b, !first
}

func (op segmentOp) numArgs() int {
	switch op {
	case segmentQuadTo:
		return 2
	case segmentCubeTo:
		return 3
	}
	return 1
}

// rasterizeGlyph draws o at scale into the width×height region at dst, rows
// stride bytes apart, then applies the prefilter passes. The outline is
// translated so the top-left corner of its unpadded pixel box lands on the
// region origin.
func rasterizeGlyph(r raster.GlyphRasterizer, o *outline, scale float32, settings Settings,
	dst rawmem.View[byte], width, height, stride int) {
	if width <= 0 || height <= 0 {
		return
	}

	var x0, y0 int
	if b, ok := o.bounds(); ok {
		x0, y0, _, _ = b.pixels(scale)
	}
	dx, dy := float32(-x0), float32(-y0)
	px := func(p point) (float32, float32) {
		return p.x*scale + dx, -p.y*scale + dy
	}

	r.Reset(width, height)
	open := false
	for _, s := range o.segments {
		switch s.op {
		case segmentMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(px(s.args[0]))
			open = true
		case segmentLineTo:
			r.LineTo(px(s.args[0]))
		case segmentQuadTo:
			bx, by := px(s.args[0])
			cx, cy := px(s.args[1])
			r.QuadTo(bx, by, cx, cy)
		case segmentCubeTo:
			bx, by := px(s.args[0])
			cx, cy := px(s.args[1])
			ex, ey := px(s.args[2])
			r.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	if open {
		r.ClosePath()
	}
	r.Fill(dst, stride)

	prefilter.Box.Apply(dst, width, height, stride, settings.KernelWidth, settings.KernelHeight)
}

// regionView returns a view of buf at start after checking that the
// width×height region with the given stride fits.
func regionView(buf []byte, start, width, height, stride int) rawmem.View[byte] {
	if width <= 0 || height <= 0 {
		return rawmem.View[byte]{}
	}
	if start < 0 || stride < width || start+(height-1)*stride+width > len(buf) {
		panic("fontsrc: glyph region out of buffer bounds")
	}
	return rawmem.FromPointer(&buf[start])
}
