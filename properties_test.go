package fontsrc

import (
	"bytes"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// openGoRegular opens Go Regular with every backend/rasterizer combination.
func openGoRegular(t *testing.T, settings Settings) map[string]FontSource {
	t.Helper()
	out := make(map[string]FontSource)
	for _, c := range sourceCases(settings) {
		s, err := Open(goregular.TTF, WithBackend(c.backend), WithSettings(c.settings))
		if err != nil {
			t.Fatalf("Open(goregular, %s) error = %v", c.name, err)
		}
		t.Cleanup(func() { s.Close() })
		out[c.name] = s
	}
	return out
}

func TestGoRegular_Metrics(t *testing.T) {
	for name, s := range openGoRegular(t, Settings{}) {
		prevAscent := 0
		for _, size := range []float32{8, 9, 10, 11, 12, 13.5, 16, 24, 48, 100} {
			m := s.Metrics(size)
			if m.Ascent < prevAscent {
				t.Errorf("%s: Metrics(%v) ascent %d < %d at a smaller size", name, size, m.Ascent, prevAscent)
			}
			prevAscent = m.Ascent
			if m.Ascent <= 0 || m.Descent >= 0 {
				t.Errorf("%s: Metrics(%v) = %+v, want ascent > 0 and descent < 0", name, size, m)
			}
			if span := m.Ascent - m.Descent; float32(span) < size-1 || float32(span) > size+1 {
				t.Errorf("%s: Metrics(%v) ascent-descent = %d, want ~%v", name, size, span, size)
			}
			if m.LineHeight < m.Ascent-m.Descent {
				t.Errorf("%s: Metrics(%v) LineHeight %d < ascent-descent", name, size, m.LineHeight)
			}
			if again := s.Metrics(size); again != m {
				t.Errorf("%s: Metrics(%v) not idempotent", name, size)
			}
		}
	}
}

func TestGoRegular_GlyphIDs(t *testing.T) {
	sources := openGoRegular(t, Settings{})
	x, g := sources["ximage/vector"], sources["gotext/vector"]

	for _, r := range "Hello, Wörld! AV Ta 0123" {
		idX, okX := x.GlyphID(r)
		idG, okG := g.GlyphID(r)
		if !okX || !okG {
			t.Errorf("GlyphID(%q) = (%v, %v), want both found", r, okX, okG)
			continue
		}
		if idX != idG {
			t.Errorf("GlyphID(%q): ximage %d, gotext %d", r, idX, idG)
		}
		if idX == 0 {
			t.Errorf("GlyphID(%q) returned .notdef", r)
		}
		ax := x.GlyphMetrics(idX, 16).Advance
		ag := g.GlyphMetrics(idG, 16).Advance
		if ax != ag {
			t.Errorf("advance of %q at 16: ximage %d, gotext %d", r, ax, ag)
		}
	}

	for name, s := range sources {
		for _, r := range []rune{'\U0001F600', 0xFFFF, 0x0378} {
			if id, ok := s.GlyphID(r); ok {
				t.Errorf("%s: GlyphID(%U) = %d, want not found", name, r, id)
			}
		}
	}
}

func TestGoRegular_GlyphMetrics(t *testing.T) {
	plain := openGoRegular(t, Settings{})
	padded := openGoRegular(t, Settings{KernelWidth: 3, KernelHeight: 2})

	for name, s := range plain {
		p := padded[name]
		for _, r := range "AgjW.|" {
			id, _ := s.GlyphID(r)
			for _, size := range []float32{12, 32} {
				a := s.GlyphMetrics(id, size)
				b := p.GlyphMetrics(id, size)
				if a.Advance <= 0 {
					t.Errorf("%s: %q at %v: advance %d, want > 0", name, r, size, a.Advance)
				}
				if a.X1 <= a.X0 || a.Y1 <= a.Y0 {
					t.Errorf("%s: %q at %v: empty box %+v", name, r, size, a)
				}
				want := a
				want.X1 += 3
				want.Y1 += 2
				if b != want {
					t.Errorf("%s: %q at %v: padded %+v, want %+v", name, r, size, b, want)
				}
			}
			small := s.GlyphMetrics(id, 12)
			large := s.GlyphMetrics(id, 48)
			if large.Advance < small.Advance || large.Width() < small.Width() {
				t.Errorf("%s: %q metrics shrink with size: %+v at 12, %+v at 48", name, r, small, large)
			}
		}

		// Descenders reach below the baseline, dots stay above it.
		gID, _ := s.GlyphID('g')
		if gm := s.GlyphMetrics(gID, 32); gm.Y1 <= 0 {
			t.Errorf("%s: 'g' box %+v does not reach below the baseline", name, gm)
		}
		space, _ := s.GlyphID(' ')
		if gm := s.GlyphMetrics(space, 32); gm.X0 != 0 || gm.Y0 != 0 || gm.X1 != 0 || gm.Y1 != 0 || gm.Advance <= 0 {
			t.Errorf("%s: space metrics = %+v, want empty box with an advance", name, gm)
		}
	}
}

func TestGoRegular_RasterizeGlyph(t *testing.T) {
	for _, settings := range []Settings{{}, {KernelWidth: 2, KernelHeight: 2}} {
		for name, s := range openGoRegular(t, settings) {
			for _, r := range "A@g" {
				id, _ := s.GlyphID(r)
				gm := s.GlyphMetrics(id, 24)
				w, h := gm.Width(), gm.Height()

				const pad = 7
				stride := w + pad
				start := stride*2 + 3
				buf := bytes.Repeat([]byte{0xEE}, start+(h+2)*stride)
				s.RasterizeGlyph(id, 24, buf, start, w, h, stride)

				var ink int
				for i, v := range buf {
					rel := i - start
					inside := rel >= 0 && rel%stride < w && rel/stride < h
					if !inside {
						if v != 0xEE {
							t.Fatalf("%s %+v: %q wrote byte %d outside its region", name, settings, r, i)
						}
						continue
					}
					ink += int(v)
				}
				if ink == 0 {
					t.Errorf("%s %+v: %q rasterized to nothing", name, settings, r)
				}
			}
		}
	}
}

func TestGoRegular_RasterizersAgree(t *testing.T) {
	sources := openGoRegular(t, Settings{})
	for _, backend := range []string{BackendXImage, BackendGoText} {
		v, o := sources[backend+"/vector"], sources[backend+"/scanline"]
		for _, r := range "BOx" {
			id, _ := v.GlyphID(r)
			gm := v.GlyphMetrics(id, 40)
			w, h := gm.Width(), gm.Height()

			a := make([]byte, w*h)
			b := make([]byte, w*h)
			v.RasterizeGlyph(id, 40, a, 0, w, h, w)
			o.RasterizeGlyph(id, 40, b, 0, w, h, w)

			var sumA, sumB int
			for i := range a {
				sumA += int(a[i])
				sumB += int(b[i])
			}
			// Both estimate the same area; allow 3% for sampling.
			if diff := sumA - sumB; diff*100 > sumA*3 || -diff*100 > sumA*3 {
				t.Errorf("%s %q: vector ink %d, scanline ink %d", backend, r, sumA, sumB)
			}
		}
	}
}

func TestGoRegular_KernAdvance(t *testing.T) {
	for name, s := range openGoRegular(t, Settings{}) {
		a, _ := s.GlyphID('A')
		v, _ := s.GlyphID('V')
		for _, size := range []float32{16, 64} {
			k1 := s.KernAdvance(a, v, size)
			k2 := s.KernAdvance(a, v, size)
			if k1 != k2 {
				t.Errorf("%s: KernAdvance(A, V, %v) not stable: %d then %d", name, size, k1, k2)
			}
			if k1 > 0 {
				t.Errorf("%s: KernAdvance(A, V, %v) = %d, want <= 0", name, size, k1)
			}
		}
	}
}

func BenchmarkGoRegular_GlyphMetrics(b *testing.B) {
	s, err := Open(goregular.TTF)
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()
	id, _ := s.GlyphID('g')

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.GlyphMetrics(id, 24)
	}
}
