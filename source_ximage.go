package fontsrc

import (
	"bytes"
	"errors"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontsrc/internal/raster"
)

// XImageSource implements FontSource using golang.org/x/image/font/sfnt.
//
// All sfnt queries use a ppem equal to the font's units per em, so results
// come back in unscaled font units and are scaled here.
//
// XImageSource must not be copied after creation (enforced by copyCheck).
type XImageSource struct {
	// addr is used for copy protection. It must point to the source itself.
	addr *XImageSource

	handle *fontHandle[*sfnt.Font]
	buf    sfnt.Buffer
	ppem   fixed.Int26_6

	metrics  designMetrics
	settings Settings
	kerning  KerningCache

	rast raster.GlyphRasterizer
	path outline
}

var _ FontSource = (*XImageSource)(nil)

// NewXImageSource parses data with golang.org/x/image/font/sfnt.
// The data slice is copied and can be reused after this call.
func NewXImageSource(data []byte, settings Settings) (*XImageSource, error) {
	if len(data) == 0 {
		return nil, ErrInvalidInput
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	f, err := opentype.Parse(bytes.Clone(data))
	if err != nil {
		return nil, &FontLoadError{Backend: BackendXImage, Err: err}
	}
	h := newFontHandle(f, func(*sfnt.Font) {
		Logger().Debug("fontsrc: font released", "backend", BackendXImage)
	})
	ok := false
	defer func() {
		if !ok {
			h.close()
		}
	}()

	s := &XImageSource{
		handle:   h,
		ppem:     fixed.Int26_6(f.UnitsPerEm()),
		settings: settings,
	}
	m, err := f.Metrics(&s.buf, s.ppem, font.HintingNone)
	if err != nil {
		return nil, &FontLoadError{Backend: BackendXImage, Err: err}
	}
	// sfnt reports descent as a positive distance below the baseline and
	// Height as ascent + descent + line gap.
	s.metrics = designMetrics{
		ascent:  float32(m.Ascent),
		descent: -float32(m.Descent),
		lineGap: float32(m.Height - m.Ascent - m.Descent),
	}
	if s.metrics.degenerate() {
		return nil, &FontLoadError{Backend: BackendXImage, Err: errDegenerateMetrics}
	}

	s.rast = raster.New(settings.UseOldRasterizer)
	s.addr = s
	ok = true

	Logger().Debug("fontsrc: font loaded", "backend", BackendXImage,
		"glyphs", f.NumGlyphs(), "unitsPerEm", f.UnitsPerEm())
	return s, nil
}

// Metrics implements FontSource.
func (s *XImageSource) Metrics(size float32) FontMetrics {
	s.parsed()
	return s.metrics.pixels(size)
}

// GlyphID implements FontSource.
func (s *XImageSource) GlyphID(r rune) (GlyphID, bool) {
	idx, err := s.parsed().GlyphIndex(&s.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// GlyphMetrics implements FontSource.
func (s *XImageSource) GlyphMetrics(id GlyphID, size float32) GlyphMetrics {
	f := s.parsed()
	var advance float32
	if idx, ok := glyphIndex(id); ok {
		if adv, err := f.GlyphAdvance(&s.buf, idx, s.ppem, font.HintingNone); err == nil {
			advance = float32(adv)
		}
	}
	s.loadOutline(id)
	return glyphMetrics(advance, &s.path, s.metrics.scale(size), s.settings)
}

// RasterizeGlyph implements FontSource.
func (s *XImageSource) RasterizeGlyph(id GlyphID, size float32, buf []byte, start, width, height, stride int) {
	s.parsed()
	dst := regionView(buf, start, width, height, stride)
	if !dst.Valid() {
		return
	}
	s.loadOutline(id)
	rasterizeGlyph(s.rast, &s.path, s.metrics.scale(size), s.settings, dst, width, height, stride)
}

// KernAdvance implements FontSource.
func (s *XImageSource) KernAdvance(a, b GlyphID, size float32) int {
	s.parsed()
	return kernAdvance(&s.kerning, a, b, s.metrics.scale(size), s.kern)
}

// Close implements FontSource.
func (s *XImageSource) Close() error {
	s.copyCheck()
	if !s.handle.close() {
		return ErrClosed
	}
	s.rast = nil
	return nil
}

// kern returns the unscaled kerning of (a, b) from GPOS or the kern table.
func (s *XImageSource) kern(a, b GlyphID) int {
	ia, okA := glyphIndex(a)
	ib, okB := glyphIndex(b)
	if !okA || !okB {
		return 0
	}
	k, err := s.parsed().Kern(&s.buf, ia, ib, s.ppem, font.HintingNone)
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) {
			Logger().Debug("fontsrc: kerning lookup failed", "backend", BackendXImage,
				"left", a, "right", b, "err", err)
		}
		return 0
	}
	return int(k)
}

// loadOutline fills s.path with the outline of id in font units. Unknown
// glyphs and glyphs sfnt cannot load leave the outline empty.
func (s *XImageSource) loadOutline(id GlyphID) {
	s.path.reset()
	idx, ok := glyphIndex(id)
	if !ok {
		return
	}
	segs, err := s.parsed().LoadGlyph(&s.buf, idx, s.ppem, nil)
	if err != nil {
		return
	}
	// sfnt segments point Y down; the outline points Y up.
	pt := func(p fixed.Point26_6) point { return point{float32(p.X), -float32(p.Y)} }
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.path.add(segmentMoveTo, pt(seg.Args[0]))
		case sfnt.SegmentOpLineTo:
			s.path.add(segmentLineTo, pt(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			s.path.add(segmentQuadTo, pt(seg.Args[0]), pt(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			s.path.add(segmentCubeTo, pt(seg.Args[0]), pt(seg.Args[1]), pt(seg.Args[2]))
		}
	}
}

// parsed returns the parsed font, panicking if s was copied or closed.
func (s *XImageSource) parsed() *sfnt.Font {
	s.copyCheck()
	return s.handle.get()
}

// copyCheck panics if XImageSource was copied by value.
func (s *XImageSource) copyCheck() {
	if s.addr != s {
		panic("fontsrc: XImageSource must not be copied by value")
	}
}

// glyphIndex converts id to an sfnt glyph index, reporting false for ids
// that do not fit in 16 bits.
func glyphIndex(id GlyphID) (sfnt.GlyphIndex, bool) {
	if id > math.MaxUint16 {
		return 0, false
	}
	return sfnt.GlyphIndex(id), true
}
