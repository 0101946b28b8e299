// Package segment maps characters to seven-segment glyphs for the HT1621 LCD driver.
//
// Each glyph is a single byte where every bit drives one segment of a digit:
//
//	 --a--
//	|     |
//	f     b
//	|     |
//	 --g--
//	|     |
//	e     c
//	|     |
//	 --d--  .dp
//
//	bit:     7  6  5  4  3  2  1  0
//	segment: dp a  b  c  d  e  f  g
//
// For example the digit 2 lights segments a, b, d, e and g, which gives 0x6D.
//
// This package provides:
//
// - Table: the lookup capability used by the driver
// - Map: a Table backed by a character map with a fallback glyph
// - Default: a Map covering digits, most latin letters and a few symbols
// - Munch: a glyph producer that folds decimal points into the preceding glyph
//
// Example usage:
//
//	for g := range segment.Munch(segment.Default, "12.5") {
//		fmt.Printf("0x%02X\n", g) // 0x30, 0xED, 0x5B
//	}
//
// Characters that cannot be drawn on seven segments (K, M, W, X) are not part
// of Default and resolve to its fallback glyph. Use WithFallback to pick a
// visible placeholder such as '_' instead of a blank digit.
package segment
