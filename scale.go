package fontsrc

import "math"

// designMetrics holds font-wide vertical metrics in font units, Y up.
// Descent is negative for fonts that reach below the baseline.
type designMetrics struct {
	ascent, descent, lineGap float32
}

// degenerate reports whether no pixel-height scale can be derived.
func (m designMetrics) degenerate() bool {
	return m.ascent == m.descent
}

// scale returns the factor mapping font units to pixels so that the
// distance from ascent to descent is size pixels.
func (m designMetrics) scale(size float32) float32 {
	return size / (m.ascent - m.descent)
}

// pixels rounds the metrics at size. LineHeight is derived from the rounded
// ascent and descent so LineHeight == Ascent - Descent + gap holds exactly.
func (m designMetrics) pixels(size float32) FontMetrics {
	s := m.scale(size)
	ascent := int(m.ascent*s + 0.5)
	descent := int(m.descent*s - 0.5)
	gap := int(m.lineGap*s + 0.5)
	return FontMetrics{
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: ascent - descent + gap,
	}
}

// box is an outline bounding box in font units, Y up.
type box struct {
	xMin, yMin, xMax, yMax float32
}

// pixels returns the bitmap box at scale with Y pointing down.
func (b box) pixels(scale float32) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(float64(b.xMin * scale)))
	y0 = int(math.Floor(float64(-b.yMax * scale)))
	x1 = int(math.Ceil(float64(b.xMax * scale)))
	y1 = int(math.Ceil(float64(-b.yMin * scale)))
	return x0, y0, x1, y1
}

// glyphMetrics rounds a glyph's advance and box at scale and pads the box
// for the prefilter kernels.
func glyphMetrics(advance float32, o *outline, scale float32, settings Settings) GlyphMetrics {
	gm := GlyphMetrics{Advance: int(advance*scale + 0.5)}
	if b, ok := o.bounds(); ok {
		gm.X0, gm.Y0, gm.X1, gm.Y1 = b.pixels(scale)
	}
	gm.X1 += settings.KernelWidth
	gm.Y1 += settings.KernelHeight
	return gm
}
