// Command glyphdump prints metrics, kerning and coverage art for the glyphs
// of a string, and can write the rasterized glyphs to a PNG strip.
//
// Usage:
//
//	glyphdump [-font path] [-size 16] [-text AV] [-backend ximage|gotext]
//	          [-old] [-kw n] [-kh n] [-png out.png] [-zoom 1] [-v]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/fontsrc"
)

type options struct {
	fontPath string
	size     float64
	text     string
	backend  string
	old      bool
	kw, kh   int
	pngPath  string
	zoom     int
	verbose  bool
}

func main() {
	var o options
	flag.StringVar(&o.fontPath, "font", "", "font file (default: Go Regular)")
	flag.Float64Var(&o.size, "size", 16, "pixel height (ascent to descent)")
	flag.StringVar(&o.text, "text", "AV", "text to dump")
	flag.StringVar(&o.backend, "backend", fontsrc.BackendXImage, "font backend: ximage or gotext")
	flag.BoolVar(&o.old, "old", false, "use the legacy scanline rasterizer")
	flag.IntVar(&o.kw, "kw", 0, "horizontal prefilter kernel")
	flag.IntVar(&o.kh, "kh", 0, "vertical prefilter kernel")
	flag.StringVar(&o.pngPath, "png", "", "write the glyph strip to this PNG file")
	flag.IntVar(&o.zoom, "zoom", 1, "PNG magnification")
	flag.BoolVar(&o.verbose, "v", false, "debug logging to stderr")
	flag.Parse()

	initDisplay()
	if err := run(o); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error ",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func run(o options) error {
	if o.verbose {
		fontsrc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []fontsrc.Option{
		fontsrc.WithBackend(o.backend),
		fontsrc.WithOldRasterizer(o.old),
		fontsrc.WithKernel(o.kw, o.kh),
	}
	var (
		src fontsrc.FontSource
		err error
	)
	if o.fontPath == "" {
		src, err = fontsrc.Open(goregular.TTF, opts...)
	} else {
		src, err = fontsrc.OpenFile(o.fontPath, opts...)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	size := float32(o.size)
	m := src.Metrics(size)
	pterm.Info.Printfln("size %v: ascent %d, descent %d, line height %d", size, m.Ascent, m.Descent, m.LineHeight)

	glyphs := collect(src, norm.NFC.String(o.text), size)
	if err := printTable(glyphs); err != nil {
		return fmt.Errorf("glyphdump: render table: %w", err)
	}
	for _, g := range glyphs {
		if g.found {
			pterm.Printfln("%q  glyph %d", g.r, g.id)
			pterm.Println(asciiArt(g.pix, g.metrics.Width(), g.metrics.Height()))
		}
	}

	if o.pngPath == "" {
		return nil
	}
	strip := layout(glyphs, m)
	if o.zoom > 1 {
		strip = magnify(strip, o.zoom)
	}
	if err := writePNG(o.pngPath, strip); err != nil {
		return err
	}
	pterm.Info.Printfln("wrote %s (%dx%d)", o.pngPath, strip.Bounds().Dx(), strip.Bounds().Dy())
	return nil
}

// glyph is one rune of the input with its rasterized coverage.
type glyph struct {
	r       rune
	id      fontsrc.GlyphID
	found   bool
	metrics fontsrc.GlyphMetrics
	kern    int
	pix     []byte
}

// collect rasterizes every rune of text. Kerning is taken against the
// previous found glyph.
func collect(src fontsrc.FontSource, text string, size float32) []glyph {
	var (
		out     []glyph
		prev    fontsrc.GlyphID
		hasPrev bool
	)
	for _, r := range text {
		g := glyph{r: r}
		g.id, g.found = src.GlyphID(r)
		if !g.found {
			out = append(out, g)
			hasPrev = false
			continue
		}
		g.metrics = src.GlyphMetrics(g.id, size)
		if hasPrev {
			g.kern = src.KernAdvance(prev, g.id, size)
		}
		w, h := g.metrics.Width(), g.metrics.Height()
		g.pix = make([]byte, w*h)
		src.RasterizeGlyph(g.id, size, g.pix, 0, w, h, w)

		prev, hasPrev = g.id, true
		out = append(out, g)
	}
	return out
}

func printTable(glyphs []glyph) error {
	data := [][]string{
		{"Rune", "Name", "Glyph", "Advance", "Box", "Kern"},
	}
	for _, g := range glyphs {
		name := runenames.Name(g.r)
		if !g.found {
			data = append(data, []string{fmt.Sprintf("%U", g.r), name, "missing", "", "", ""})
			continue
		}
		m := g.metrics
		data = append(data, []string{
			fmt.Sprintf("%U", g.r),
			name,
			fmt.Sprintf("%d", g.id),
			fmt.Sprintf("%d", m.Advance),
			fmt.Sprintf("(%d,%d)-(%d,%d)", m.X0, m.Y0, m.X1, m.Y1),
			fmt.Sprintf("%d", g.kern),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ramp maps coverage to characters, darkest last.
const ramp = " .:-=+*#%@"

func asciiArt(pix []byte, w, h int) string {
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for _, v := range pix[y*w : (y+1)*w] {
			sb.WriteByte(ramp[int(v)*len(ramp)/256])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// layout places the found glyphs on one line, advancing the pen by each
// glyph's advance plus its kerning, and composites their coverage.
// The baseline is at y = 0; the image always spans the font's ascent and
// descent.
func layout(glyphs []glyph, m fontsrc.FontMetrics) *image.Gray {
	type placed struct {
		g    glyph
		rect image.Rectangle
	}
	var items []placed
	bounds := image.Rect(0, -m.Ascent, 1, -m.Descent)
	pen := 0
	for _, g := range glyphs {
		if !g.found {
			continue
		}
		pen += g.kern
		gm := g.metrics
		r := image.Rect(pen+gm.X0, gm.Y0, pen+gm.X1, gm.Y1)
		items = append(items, placed{g, r})
		bounds = bounds.Union(r)
		pen += gm.Advance
	}
	if pen > bounds.Max.X {
		bounds.Max.X = pen
	}

	dst := image.NewGray(bounds)
	for _, it := range items {
		if it.rect.Empty() {
			continue
		}
		mask := &image.Alpha{
			Pix:    it.g.pix,
			Stride: it.rect.Dx(),
			Rect:   image.Rect(0, 0, it.rect.Dx(), it.rect.Dy()),
		}
		xdraw.DrawMask(dst, it.rect, image.White, image.Point{}, mask, image.Point{}, xdraw.Over)
	}
	return dst
}

func magnify(src *image.Gray, zoom int) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("glyphdump: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("glyphdump: encode %s: %w", path, err)
	}
	return f.Close()
}
