package fonttest

// Glyphs and runes of the Ring font.
const (
	RingGlyph   = 1
	SquareGlyph = 2

	RingRune   = 'A'
	SquareRune = 'V'
)

// Kerning of the Ring font in font units.
const (
	KernRingSquare = -128
	KernSquareRing = 64
)

// RingFont returns the description of a two-glyph test font with 1024 units
// per em, ascent 832, descent -192 and line gap 128. At size 16 one pixel is
// 64 font units.
//
// Glyph 1 ('A') is a 384×512 square ring at x=64 with a 128×256 hole at
// (192, 128), so it covers a 6×8 pixel box with a 2×4 hole at size 16.
// Glyph 2 ('V') is a 256×256 square at the origin.
func RingFont() *Font {
	return &Font{
		UnitsPerEm: 1024,
		Ascent:     832,
		Descent:    -192,
		LineGap:    128,
		Glyphs: []Glyph{
			{Advance: 512},
			{
				Advance: 512,
				Contours: []Contour{
					{{64, 0}, {64, 512}, {448, 512}, {448, 0}},
					{{192, 128}, {320, 128}, {320, 384}, {192, 384}},
				},
			},
			{
				Advance: 320,
				Contours: []Contour{
					{{0, 0}, {0, 256}, {256, 256}, {256, 0}},
				},
			},
		},
		CMap: map[rune]uint16{
			RingRune:   RingGlyph,
			SquareRune: SquareGlyph,
		},
		Kerning: []KernPair{
			{Left: RingGlyph, Right: SquareGlyph, Value: KernRingSquare},
			{Left: SquareGlyph, Right: RingGlyph, Value: KernSquareRing},
		},
	}
}

// Ring returns the encoded RingFont.
func Ring() []byte {
	return RingFont().Bytes()
}
