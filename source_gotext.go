package fontsrc

import (
	"bytes"
	"errors"
	"math"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"

	"github.com/gogpu/fontsrc/internal/raster"
)

var errNoHorizontalMetrics = errors.New("no horizontal metrics")

// GoTextSource implements FontSource using github.com/go-text/typesetting.
//
// Kerning comes from the 'kern' and 'kerx' subtables that store plain
// glyph pairs; GPOS pair adjustments are not consulted.
//
// GoTextSource must not be copied after creation (enforced by copyCheck).
type GoTextSource struct {
	// addr is used for copy protection. It must point to the source itself.
	addr *GoTextSource

	handle *fontHandle[*font.Face]

	// kerns are the horizontal pair-kerning subtables, in table order.
	kerns []font.SimpleKerns

	metrics  designMetrics
	settings Settings
	kerning  KerningCache

	rast raster.GlyphRasterizer
	path outline
}

var _ FontSource = (*GoTextSource)(nil)

// NewGoTextSource parses data with github.com/go-text/typesetting.
// The data slice is copied and can be reused after this call.
func NewGoTextSource(data []byte, settings Settings) (*GoTextSource, error) {
	if len(data) == 0 {
		return nil, ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	face, err := font.ParseTTF(bytes.NewReader(bytes.Clone(data)))
	if err != nil {
		return nil, &FontLoadError{Backend: BackendGoText, Err: err}
	}
	h := newFontHandle(face, func(*font.Face) {
		Logger().Debug("fontsrc: font released", "backend", BackendGoText)
	})
	ok := false
	defer func() {
		if !ok {
			h.close()
		}
	}()

	ext, found := face.FontHExtents()
	if !found {
		return nil, &FontLoadError{Backend: BackendGoText, Err: errNoHorizontalMetrics}
	}
	s := &GoTextSource{
		handle: h,
		metrics: designMetrics{
			ascent:  ext.Ascender,
			descent: ext.Descender,
			lineGap: ext.LineGap,
		},
		settings: settings,
	}
	if s.metrics.degenerate() {
		return nil, &FontLoadError{Backend: BackendGoText, Err: errDegenerateMetrics}
	}
	s.kerns = append(pairKerns(face.Kern), pairKerns(face.Kerx)...)

	s.rast = raster.New(settings.UseOldRasterizer)
	s.addr = s
	ok = true

	Logger().Debug("fontsrc: font loaded", "backend", BackendGoText,
		"unitsPerEm", face.Upem(), "kernSubtables", len(s.kerns))
	return s, nil
}

// pairKerns returns the subtables of k that hold horizontal glyph pairs.
func pairKerns(k font.Kernx) []font.SimpleKerns {
	var out []font.SimpleKerns
	for _, st := range k {
		if !st.IsHorizontal() || st.IsCrossStream() || st.IsVariation() {
			continue
		}
		if sk, ok := st.Data.(font.SimpleKerns); ok {
			out = append(out, sk)
		}
	}
	return out
}

// Metrics implements FontSource.
func (s *GoTextSource) Metrics(size float32) FontMetrics {
	s.face()
	return s.metrics.pixels(size)
}

// GlyphID implements FontSource.
func (s *GoTextSource) GlyphID(r rune) (GlyphID, bool) {
	gid, ok := s.face().NominalGlyph(r)
	if !ok || gid == 0 {
		return 0, false
	}
	return GlyphID(gid), true
}

// GlyphMetrics implements FontSource.
func (s *GoTextSource) GlyphMetrics(id GlyphID, size float32) GlyphMetrics {
	f := s.face()
	var advance float32
	if id <= math.MaxUint16 {
		advance = f.HorizontalAdvance(font.GID(id))
	}
	s.loadOutline(id)
	return glyphMetrics(advance, &s.path, s.metrics.scale(size), s.settings)
}

// RasterizeGlyph implements FontSource.
func (s *GoTextSource) RasterizeGlyph(id GlyphID, size float32, buf []byte, start, width, height, stride int) {
	s.face()
	dst := regionView(buf, start, width, height, stride)
	if !dst.Valid() {
		return
	}
	s.loadOutline(id)
	rasterizeGlyph(s.rast, &s.path, s.metrics.scale(size), s.settings, dst, width, height, stride)
}

// KernAdvance implements FontSource.
func (s *GoTextSource) KernAdvance(a, b GlyphID, size float32) int {
	s.face()
	return kernAdvance(&s.kerning, a, b, s.metrics.scale(size), s.kern)
}

// Close implements FontSource.
func (s *GoTextSource) Close() error {
	s.copyCheck()
	if !s.handle.close() {
		return ErrClosed
	}
	s.kerns = nil
	s.rast = nil
	return nil
}

// kern returns the unscaled kerning of (a, b) summed over all pair
// subtables.
func (s *GoTextSource) kern(a, b GlyphID) int {
	var v int
	for _, k := range s.kerns {
		v += int(k.KernPair(font.GID(a), font.GID(b)))
	}
	return v
}

// loadOutline fills s.path with the outline of id in font units.
func (s *GoTextSource) loadOutline(id GlyphID) {
	s.path.reset()
	f := s.face()
	if id > math.MaxUint16 {
		return
	}
	out, ok := f.GlyphDataOutline(tables.GlyphID(id))
	if !ok {
		return
	}
	pt := func(p font.SegmentPoint) point { return point{p.X, p.Y} }
	for _, seg := range out.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			s.path.add(segmentMoveTo, pt(seg.Args[0]))
		case ot.SegmentOpLineTo:
			s.path.add(segmentLineTo, pt(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			s.path.add(segmentQuadTo, pt(seg.Args[0]), pt(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			s.path.add(segmentCubeTo, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
}

// face returns the parsed face, panicking if s was copied or closed.
func (s *GoTextSource) face() *font.Face {
	s.copyCheck()
	return s.handle.get()
}

// copyCheck panics if GoTextSource was copied by value.
func (s *GoTextSource) copyCheck() {
	if s.addr != s {
		panic("fontsrc: GoTextSource must not be copied by value")
	}
}
