// Package fontsrc turns font files into scaled glyph bitmaps, metrics and
// kerning for glyph atlases.
//
// # Overview
//
// A [FontSource] wraps one parsed font. Sizes are pixel heights: the
// distance from the font's ascent to its descent maps to size pixels.
// Glyph boxes use the bitmap convention with Y pointing down, so a glyph
// bitmap is drawn at (penX + X0, baseline + Y0).
//
// # Quick Start
//
//	src, err := fontsrc.Open(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	id, ok := src.GlyphID('A')
//	if !ok {
//	    return
//	}
//	gm := src.GlyphMetrics(id, 32)
//	w, h := gm.Width(), gm.Height()
//	pix := make([]byte, w*h)
//	src.RasterizeGlyph(id, 32, pix, 0, w, h, w)
//
// RasterizeGlyph can write straight into an atlas: pass the atlas pixels,
// the offset of the glyph's slot as start and the atlas width as stride.
//
// # Backends
//
// Two backends are registered:
//   - "ximage" (default): golang.org/x/image/font/sfnt
//   - "gotext": github.com/go-text/typesetting
//
// Select one with [WithBackend]. [RegisterLoader] adds custom backends.
//
// # Rasterization
//
// By default outlines are filled by exact area coverage
// (golang.org/x/image/vector). [Settings.UseOldRasterizer] selects the
// legacy supersampled scanline rasterizer. [Settings.KernelWidth] and
// [Settings.KernelHeight] enable box prefilters that soften glyph edges;
// glyph boxes grow by the kernel sizes to leave room for the spread.
//
// # Kerning
//
// KernAdvance queries the backend once per glyph pair and keeps the unscaled
// value in a [KerningCache], so later calls at any size are map lookups.
//
// # Concurrency
//
// A FontSource is not safe for concurrent use. Independent sources can be
// used from different goroutines.
//
// # Logging
//
// fontsrc is silent by default. Use [SetLogger] to enable structured logging
// via log/slog.
package fontsrc
