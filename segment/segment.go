// Package segment maps characters to seven-segment glyphs.
//
// Glyph bits follow the dp-a-b-c-d-e-f-g order (bit 7 to bit 0).
package segment

import "iter"

// Dot is the decimal point segment.
const Dot byte = 0x80

// Blank is the glyph with every segment off.
const Blank byte = 0x00

// Table resolves a character to its glyph.
//
// Implementations decide what unknown characters become; Lookup never fails.
type Table interface {
	Lookup(r rune) byte
}

// Map is a Table backed by a character map.
type Map struct {
	glyphs   map[rune]byte
	fallback byte
}

// NewMap creates a Map from glyphs. Characters missing from glyphs resolve to
// Blank.
func NewMap(glyphs map[rune]byte) *Map {
	m := &Map{
		glyphs: make(map[rune]byte, len(glyphs)),
	}
	for r, g := range glyphs {
		m.glyphs[r] = g
	}
	return m
}

// Lookup returns the glyph for r, or the fallback glyph if r is unknown.
func (m *Map) Lookup(r rune) byte {
	if g, ok := m.glyphs[r]; ok {
		return g
	}
	return m.fallback
}

// WithFallback returns a copy of m that resolves unknown characters to the
// glyph of r. If r itself is unknown the copy falls back to Blank.
func (m *Map) WithFallback(r rune) *Map {
	c := NewMap(m.glyphs)
	c.fallback = m.glyphs[r]
	return c
}

// With returns a copy of m with the given glyphs added or replaced.
func (m *Map) With(glyphs map[rune]byte) *Map {
	c := NewMap(m.glyphs)
	c.fallback = m.fallback
	for r, g := range glyphs {
		c.glyphs[r] = g
	}
	return c
}

// Default covers digits, the latin letters that fit on seven segments and a
// few symbols. Unknown characters are blank.
var Default = NewMap(map[rune]byte{
	' ':  0x00,
	'-':  0x01,
	'_':  0x08,
	'\'': 0x02,
	'0':  0x7E,
	'1':  0x30,
	'2':  0x6D,
	'3':  0x79,
	'4':  0x33,
	'5':  0x5B,
	'6':  0x5F,
	'7':  0x70,
	'8':  0x7F,
	'9':  0x7B,
	'a':  0x7D,
	'b':  0x1F,
	'c':  0x0D,
	'd':  0x3D,
	'e':  0x6F,
	'f':  0x47,
	'g':  0x7B,
	'h':  0x17,
	'i':  0x10,
	'j':  0x18,
	'l':  0x06,
	'n':  0x15,
	'o':  0x1D,
	'p':  0x67,
	'q':  0x73,
	'r':  0x05,
	's':  0x5B,
	't':  0x0F,
	'u':  0x1C,
	'v':  0x1C,
	'y':  0x3B,
	'z':  0x6D,
	'A':  0x77,
	'B':  0x7F,
	'C':  0x4E,
	'D':  0x7E,
	'E':  0x4F,
	'F':  0x47,
	'G':  0x5E,
	'H':  0x37,
	'I':  0x30,
	'J':  0x38,
	'L':  0x0E,
	'N':  0x76,
	'O':  0x7E,
	'P':  0x67,
	'Q':  0x73,
	'R':  0x46,
	'S':  0x5B,
	'T':  0x0F,
	'U':  0x3E,
	'V':  0x3E,
	'Y':  0x3B,
	'Z':  0x6D,
	',':  Dot,
	'.':  Dot,
	'!':  0xB0,
})

// Munch yields the glyphs of text, folding every character whose glyph is
// exactly Dot into the glyph before it. A dot with nothing to fold into
// (leading, or following another dot) yields a glyph of its own.
//
// A nil table means Default.
func Munch(t Table, text string) iter.Seq[byte] {
	if t == nil {
		t = Default
	}
	return func(yield func(byte) bool) {
		var (
			pending byte
			held    bool
		)
		for _, r := range text {
			g := t.Lookup(r)
			if g == Dot {
				// held is false after a dot, so consecutive dots never merge
				if !yield(pending | Dot) {
					return
				}
				pending, held = 0, false
				continue
			}
			if held && !yield(pending) {
				return
			}
			pending, held = g, true
		}
		if held {
			yield(pending)
		}
	}
}
