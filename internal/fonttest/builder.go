// Package fonttest builds small TrueType fonts in memory for tests.
//
// The fonts carry only the tables both font backends require (cmap, glyf,
// head, hhea, hmtx, kern, loca, maxp and post) and glyphs made of straight
// on-curve contours, so rasterized coverage can be predicted exactly.
package fonttest

import (
	"encoding/binary"
	"math/bits"
	"slices"
	"sort"
)

// Point is an on-curve outline point in font units (Y up).
type Point struct {
	X, Y int16
}

// Contour is a closed polygon. Outer contours run clockwise, holes
// counter-clockwise.
type Contour []Point

// Glyph is a simple glyph.
type Glyph struct {
	Advance  uint16
	Contours []Contour
}

// KernPair is a horizontal kerning adjustment in font units.
type KernPair struct {
	Left, Right uint16
	Value       int16
}

// Font describes a TrueType font to build. Glyph 0 is .notdef.
type Font struct {
	UnitsPerEm uint16

	// Ascent, Descent and LineGap go to the hhea table. Descent is
	// negative for fonts that reach below the baseline.
	Ascent, Descent, LineGap int16

	Glyphs  []Glyph
	CMap    map[rune]uint16
	Kerning []KernPair
}

var be = binary.BigEndian

type table struct {
	tag  string
	data []byte
}

// Bytes encodes f as a TrueType font file.
func (f *Font) Bytes() []byte {
	glyf, loca := f.glyfLoca()
	tables := []table{
		{"cmap", f.cmap()},
		{"glyf", glyf},
		{"head", f.head()},
		{"hhea", f.hhea()},
		{"hmtx", f.hmtx()},
		{"loca", loca},
		{"maxp", f.maxp()},
		{"post", f.post()},
	}
	if len(f.Kerning) > 0 {
		tables = append(tables, table{"kern", f.kern()})
	}
	slices.SortFunc(tables, func(a, b table) int {
		switch {
		case a.tag < b.tag:
			return -1
		case a.tag > b.tag:
			return 1
		}
		return 0
	})
	return encode(tables)
}

func encode(tables []table) []byte {
	n := len(tables)
	searchRange, entrySelector, rangeShift := binarySearchParams(n, 16)

	var out []byte
	out = be.AppendUint32(out, 0x00010000)
	out = be.AppendUint16(out, uint16(n))
	out = be.AppendUint16(out, searchRange)
	out = be.AppendUint16(out, entrySelector)
	out = be.AppendUint16(out, rangeShift)

	offset := 12 + 16*n
	for _, t := range tables {
		out = append(out, t.tag...)
		out = be.AppendUint32(out, checksum(t.data))
		out = be.AppendUint32(out, uint32(offset))
		out = be.AppendUint32(out, uint32(len(t.data)))
		offset += pad4(len(t.data))
	}
	for _, t := range tables {
		out = append(out, t.data...)
		out = append(out, make([]byte, pad4(len(t.data))-len(t.data))...)
	}
	return out
}

// binarySearchParams returns the searchRange, entrySelector and rangeShift
// header fields for n records of the given size.
func binarySearchParams(n, size int) (uint16, uint16, uint16) {
	if n == 0 {
		return 0, 0, 0
	}
	log := bits.Len(uint(n)) - 1
	searchRange := (1 << log) * size
	return uint16(searchRange), uint16(log), uint16(n*size - searchRange)
}

func checksum(b []byte) uint32 {
	var sum uint32
	for i := 0; i < len(b); i += 4 {
		var word [4]byte
		copy(word[:], b[i:])
		sum += be.Uint32(word[:])
	}
	return sum
}

func pad4(n int) int { return (n + 3) &^ 3 }

// bounds returns the bounding box of all points of g.
func (g Glyph) bounds() (xMin, yMin, xMax, yMax int16) {
	first := true
	for _, c := range g.Contours {
		for _, p := range c {
			if first {
				xMin, yMin, xMax, yMax = p.X, p.Y, p.X, p.Y
				first = false
				continue
			}
			xMin, xMax = min(xMin, p.X), max(xMax, p.X)
			yMin, yMax = min(yMin, p.Y), max(yMax, p.Y)
		}
	}
	return
}

func (f *Font) fontBounds() (xMin, yMin, xMax, yMax int16) {
	first := true
	for _, g := range f.Glyphs {
		if len(g.Contours) == 0 {
			continue
		}
		x0, y0, x1, y1 := g.bounds()
		if first {
			xMin, yMin, xMax, yMax = x0, y0, x1, y1
			first = false
			continue
		}
		xMin, yMin = min(xMin, x0), min(yMin, y0)
		xMax, yMax = max(xMax, x1), max(yMax, y1)
	}
	return
}

// glyfLoca encodes every glyph as a simple glyph with on-curve points and
// 16-bit coordinate deltas, and the matching long-format loca table.
func (f *Font) glyfLoca() (glyf, loca []byte) {
	for _, g := range f.Glyphs {
		loca = be.AppendUint32(loca, uint32(len(glyf)))
		if len(g.Contours) == 0 {
			continue
		}

		xMin, yMin, xMax, yMax := g.bounds()
		glyf = be.AppendUint16(glyf, uint16(len(g.Contours)))
		glyf = be.AppendUint16(glyf, uint16(xMin))
		glyf = be.AppendUint16(glyf, uint16(yMin))
		glyf = be.AppendUint16(glyf, uint16(xMax))
		glyf = be.AppendUint16(glyf, uint16(yMax))

		end := -1
		for _, c := range g.Contours {
			end += len(c)
			glyf = be.AppendUint16(glyf, uint16(end))
		}
		glyf = be.AppendUint16(glyf, 0) // instructionLength

		const onCurve = 0x01
		for range end + 1 {
			glyf = append(glyf, onCurve)
		}
		var prev Point
		for _, c := range g.Contours {
			for _, p := range c {
				glyf = be.AppendUint16(glyf, uint16(p.X-prev.X))
				prev.X = p.X
			}
		}
		for _, c := range g.Contours {
			for _, p := range c {
				glyf = be.AppendUint16(glyf, uint16(p.Y-prev.Y))
				prev.Y = p.Y
			}
		}
		glyf = append(glyf, make([]byte, pad4(len(glyf))-len(glyf))...)
	}
	loca = be.AppendUint32(loca, uint32(len(glyf)))
	return glyf, loca
}

// cmap encodes a (3, 1) format 4 subtable with one segment per rune.
func (f *Font) cmap() []byte {
	runes := make([]rune, 0, len(f.CMap))
	for r := range f.CMap {
		if r < 0xFFFF {
			runes = append(runes, r)
		}
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	segCount := len(runes) + 1
	searchRange, entrySelector, rangeShift := binarySearchParams(segCount, 2)

	var sub []byte
	sub = be.AppendUint16(sub, 4) // format
	sub = be.AppendUint16(sub, uint16(16+8*segCount))
	sub = be.AppendUint16(sub, 0) // language
	sub = be.AppendUint16(sub, uint16(2*segCount))
	sub = be.AppendUint16(sub, searchRange)
	sub = be.AppendUint16(sub, entrySelector)
	sub = be.AppendUint16(sub, rangeShift)
	for _, r := range runes {
		sub = be.AppendUint16(sub, uint16(r))
	}
	sub = be.AppendUint16(sub, 0xFFFF)
	sub = be.AppendUint16(sub, 0) // reservedPad
	for _, r := range runes {
		sub = be.AppendUint16(sub, uint16(r))
	}
	sub = be.AppendUint16(sub, 0xFFFF)
	for _, r := range runes {
		sub = be.AppendUint16(sub, f.CMap[r]-uint16(r))
	}
	sub = be.AppendUint16(sub, 1)
	for range segCount {
		sub = be.AppendUint16(sub, 0) // idRangeOffset
	}

	var out []byte
	out = be.AppendUint16(out, 0) // version
	out = be.AppendUint16(out, 1) // numTables
	out = be.AppendUint16(out, 3) // platformID: Windows
	out = be.AppendUint16(out, 1) // encodingID: Unicode BMP
	out = be.AppendUint32(out, 12)
	return append(out, sub...)
}

func (f *Font) head() []byte {
	xMin, yMin, xMax, yMax := f.fontBounds()

	var out []byte
	out = be.AppendUint32(out, 0x00010000) // version
	out = be.AppendUint32(out, 0x00010000) // fontRevision
	out = be.AppendUint32(out, 0)          // checksumAdjustment
	out = be.AppendUint32(out, 0x5F0F3CF5) // magicNumber
	out = be.AppendUint16(out, 0x000B)     // flags
	out = be.AppendUint16(out, f.UnitsPerEm)
	out = be.AppendUint64(out, 0) // created
	out = be.AppendUint64(out, 0) // modified
	out = be.AppendUint16(out, uint16(xMin))
	out = be.AppendUint16(out, uint16(yMin))
	out = be.AppendUint16(out, uint16(xMax))
	out = be.AppendUint16(out, uint16(yMax))
	out = be.AppendUint16(out, 0) // macStyle
	out = be.AppendUint16(out, 8) // lowestRecPPEM
	out = be.AppendUint16(out, 2) // fontDirectionHint
	out = be.AppendUint16(out, 1) // indexToLocFormat: long
	out = be.AppendUint16(out, 0) // glyphDataFormat
	return out
}

func (f *Font) hhea() []byte {
	var advMax uint16
	for _, g := range f.Glyphs {
		advMax = max(advMax, g.Advance)
	}
	xMin, _, xMax, _ := f.fontBounds()

	var out []byte
	out = be.AppendUint32(out, 0x00010000)
	out = be.AppendUint16(out, uint16(f.Ascent))
	out = be.AppendUint16(out, uint16(f.Descent))
	out = be.AppendUint16(out, uint16(f.LineGap))
	out = be.AppendUint16(out, advMax)
	out = be.AppendUint16(out, uint16(xMin)) // minLeftSideBearing
	out = be.AppendUint16(out, 0)            // minRightSideBearing
	out = be.AppendUint16(out, uint16(xMax)) // xMaxExtent
	out = be.AppendUint16(out, 1)            // caretSlopeRise
	out = be.AppendUint16(out, 0)            // caretSlopeRun
	out = be.AppendUint16(out, 0)            // caretOffset
	out = append(out, make([]byte, 8)...)    // reserved
	out = be.AppendUint16(out, 0)            // metricDataFormat
	out = be.AppendUint16(out, uint16(len(f.Glyphs)))
	return out
}

func (f *Font) hmtx() []byte {
	var out []byte
	for _, g := range f.Glyphs {
		var lsb int16
		if len(g.Contours) > 0 {
			lsb, _, _, _ = g.bounds()
		}
		out = be.AppendUint16(out, g.Advance)
		out = be.AppendUint16(out, uint16(lsb))
	}
	return out
}

// kern encodes a version 0 table with one horizontal format 0 subtable.
func (f *Font) kern() []byte {
	pairs := slices.Clone(f.Kerning)
	sort.Slice(pairs, func(i, j int) bool {
		ki := uint32(pairs[i].Left)<<16 | uint32(pairs[i].Right)
		kj := uint32(pairs[j].Left)<<16 | uint32(pairs[j].Right)
		return ki < kj
	})
	searchRange, entrySelector, rangeShift := binarySearchParams(len(pairs), 6)

	var out []byte
	out = be.AppendUint16(out, 0) // version
	out = be.AppendUint16(out, 1) // nTables
	out = be.AppendUint16(out, 0) // subtable version
	out = be.AppendUint16(out, uint16(6+8+6*len(pairs)))
	out = be.AppendUint16(out, 0x0001) // format 0, horizontal
	out = be.AppendUint16(out, uint16(len(pairs)))
	out = be.AppendUint16(out, searchRange)
	out = be.AppendUint16(out, entrySelector)
	out = be.AppendUint16(out, rangeShift)
	for _, p := range pairs {
		out = be.AppendUint16(out, p.Left)
		out = be.AppendUint16(out, p.Right)
		out = be.AppendUint16(out, uint16(p.Value))
	}
	return out
}

func (f *Font) maxp() []byte {
	var points, contours int
	for _, g := range f.Glyphs {
		n := 0
		for _, c := range g.Contours {
			n += len(c)
		}
		points = max(points, n)
		contours = max(contours, len(g.Contours))
	}

	var out []byte
	out = be.AppendUint32(out, 0x00010000)
	out = be.AppendUint16(out, uint16(len(f.Glyphs)))
	out = be.AppendUint16(out, uint16(points))
	out = be.AppendUint16(out, uint16(contours))
	out = be.AppendUint16(out, 0) // maxCompositePoints
	out = be.AppendUint16(out, 0) // maxCompositeContours
	out = be.AppendUint16(out, 2) // maxZones
	out = append(out, make([]byte, 2*8)...)
	return out
}

func (f *Font) post() []byte {
	var out []byte
	out = be.AppendUint32(out, 0x00030000) // version 3: no glyph names
	out = be.AppendUint32(out, 0)          // italicAngle
	out = be.AppendUint16(out, uint16(0xFF9C))
	out = be.AppendUint16(out, 50)
	out = append(out, make([]byte, 4*5)...)
	return out
}
