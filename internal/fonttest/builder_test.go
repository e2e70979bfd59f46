package fonttest

import (
	"bytes"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

func TestRing_ParsesWithSfnt(t *testing.T) {
	f, err := sfnt.Parse(Ring())
	if err != nil {
		t.Fatalf("sfnt.Parse() error = %v", err)
	}

	if got := f.NumGlyphs(); got != 3 {
		t.Errorf("NumGlyphs() = %d, want 3", got)
	}
	if got := f.UnitsPerEm(); got != 1024 {
		t.Errorf("UnitsPerEm() = %d, want 1024", got)
	}

	var buf sfnt.Buffer
	for r, want := range map[rune]sfnt.GlyphIndex{RingRune: RingGlyph, SquareRune: SquareGlyph, 'Z': 0} {
		got, err := f.GlyphIndex(&buf, r)
		if err != nil {
			t.Fatalf("GlyphIndex(%q) error = %v", r, err)
		}
		if got != want {
			t.Errorf("GlyphIndex(%q) = %d, want %d", r, got, want)
		}
	}

	ppem := fixed.Int26_6(f.UnitsPerEm())
	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if m.Ascent != 832 || m.Descent != 192 || m.Height != 1152 {
		t.Errorf("Metrics() = %+v, want ascent 832, descent 192, height 1152", m)
	}

	k, err := f.Kern(&buf, RingGlyph, SquareGlyph, ppem, font.HintingNone)
	if err != nil {
		t.Fatalf("Kern() error = %v", err)
	}
	if k != KernRingSquare {
		t.Errorf("Kern(ring, square) = %d, want %d", k, KernRingSquare)
	}

	segs, err := f.LoadGlyph(&buf, RingGlyph, ppem, nil)
	if err != nil {
		t.Fatalf("LoadGlyph() error = %v", err)
	}
	b := segs.Bounds()
	want := fixed.Rectangle26_6{Min: fixed.Point26_6{X: 64, Y: -512}, Max: fixed.Point26_6{X: 448, Y: 0}}
	if b != want {
		t.Errorf("ring bounds = %v, want %v", b, want)
	}
}

func TestBytes_TableLayout(t *testing.T) {
	data := Ring()

	numTables := int(be.Uint16(data[4:]))
	if numTables != 9 {
		t.Fatalf("numTables = %d, want 9", numTables)
	}

	var prev []byte
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i:]
		tag := rec[:4]
		if prev != nil && bytes.Compare(prev, tag) >= 0 {
			t.Errorf("table %q out of order after %q", tag, prev)
		}
		prev = tag
		if off := be.Uint32(rec[8:]); off%4 != 0 {
			t.Errorf("table %q offset %d is not 4-byte aligned", tag, off)
		}
	}
}

func TestBytes_NoKerning(t *testing.T) {
	f := RingFont()
	f.Kerning = nil

	parsed, err := sfnt.Parse(f.Bytes())
	if err != nil {
		t.Fatalf("sfnt.Parse() error = %v", err)
	}
	k, err := parsed.Kern(nil, RingGlyph, SquareGlyph, fixed.Int26_6(parsed.UnitsPerEm()), font.HintingNone)
	if err != nil || k != 0 {
		t.Errorf("Kern() = %d, %v, want 0, nil", k, err)
	}
}

func TestBinarySearchParams(t *testing.T) {
	tests := []struct {
		n, size    int
		sr, es, rs uint16
	}{
		{9, 16, 128, 3, 16},
		{3, 2, 4, 1, 2},
		{2, 6, 12, 1, 0},
		{0, 6, 0, 0, 0},
	}
	for _, tt := range tests {
		sr, es, rs := binarySearchParams(tt.n, tt.size)
		if sr != tt.sr || es != tt.es || rs != tt.rs {
			t.Errorf("binarySearchParams(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				tt.n, tt.size, sr, es, rs, tt.sr, tt.es, tt.rs)
		}
	}
}
