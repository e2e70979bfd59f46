package fontsrc

import (
	"fmt"
	"os"
)

// GlyphID identifies a glyph within one font. Glyph 0 (.notdef) is never
// returned by FontSource.GlyphID.
type GlyphID uint32

// FontMetrics holds font-wide vertical metrics in whole pixels.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top (positive).
	Ascent int

	// Descent is the distance from the baseline to the bottom (negative).
	Descent int

	// LineHeight is Ascent - Descent plus the font's line gap.
	LineHeight int
}

// GlyphMetrics holds a glyph's advance and bitmap box in whole pixels.
// The box is relative to the pen position with Y pointing down, so Y0 is
// negative for glyphs above the baseline. X1 and Y1 include the prefilter
// padding.
type GlyphMetrics struct {
	Advance int
	X0, Y0  int
	X1, Y1  int
}

// Width returns the bitmap width.
func (m GlyphMetrics) Width() int { return m.X1 - m.X0 }

// Height returns the bitmap height.
func (m GlyphMetrics) Height() int { return m.Y1 - m.Y0 }

// FontSource turns one font into scaled metrics, glyph bitmaps and kerning.
//
// Sizes are pixel heights: the font's ascent-to-descent distance maps to
// size pixels.
//
// A FontSource is not safe for concurrent use. Calling any method other
// than Close after Close panics.
type FontSource interface {
	// Metrics returns the font-wide metrics at size.
	Metrics(size float32) FontMetrics

	// GlyphID maps a code point to a glyph. It reports false when the font
	// has no glyph for r.
	GlyphID(r rune) (GlyphID, bool)

	// GlyphMetrics returns the advance and bitmap box of id at size.
	GlyphMetrics(id GlyphID, size float32) GlyphMetrics

	// RasterizeGlyph writes the 8-bit coverage of id at size into the
	// width×height region of buf that starts at start, rows stride bytes
	// apart. Bytes outside the region are left untouched.
	RasterizeGlyph(id GlyphID, size float32, buf []byte, start, width, height, stride int)

	// KernAdvance returns the horizontal adjustment between a and b at size
	// in pixels, negative when the glyphs move closer.
	KernAdvance(a, b GlyphID, size float32) int

	// Close releases the font. A second Close returns ErrClosed.
	Close() error
}

// Loader creates a FontSource from font data. Loaders must return
// ErrInvalidInput for empty data and a *FontLoadError when parsing fails.
type Loader func(data []byte, settings Settings) (FontSource, error)

// Backend names.
const (
	BackendXImage = "ximage"
	BackendGoText = "gotext"
)

// defaultBackendName is the name of the default backend.
const defaultBackendName = BackendXImage

// loaderRegistry holds registered backends.
var loaderRegistry = map[string]Loader{
	BackendXImage: func(data []byte, settings Settings) (FontSource, error) {
		s, err := NewXImageSource(data, settings)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
	BackendGoText: func(data []byte, settings Settings) (FontSource, error) {
		s, err := NewGoTextSource(data, settings)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
}

// RegisterLoader registers a font backend under name, replacing any backend
// registered under the same name. It is not safe to call concurrently with
// Open.
func RegisterLoader(name string, l Loader) {
	loaderRegistry[name] = l
}

// getLoader returns the backend by name, or the default if not found.
func getLoader(name string) (string, Loader) {
	if l, ok := loaderRegistry[name]; ok {
		return name, l
	}
	Logger().Warn("fontsrc: unknown backend, using default",
		"backend", name, "default", defaultBackendName)
	return defaultBackendName, loaderRegistry[defaultBackendName]
}

// Open creates a FontSource from font data (TTF or OTF).
// The data slice is copied and can be reused after this call.
func Open(data []byte, opts ...Option) (FontSource, error) {
	config := defaultOpenConfig()
	for _, opt := range opts {
		opt(&config)
	}

	name, load := getLoader(config.backend)
	s, err := load(data, config.settings)
	if err != nil {
		return nil, err
	}
	Logger().Debug("fontsrc: font opened", "backend", name, "bytes", len(data))
	return s, nil
}

// OpenFile loads a FontSource from a font file path.
func OpenFile(path string, opts ...Option) (FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontsrc: failed to read font file: %w", err)
	}
	return Open(data, opts...)
}
