package ht1621

import (
	"fmt"

	"github.com/flavioheleno/ht1621/segment"
)

// Digits is the number of glyph positions on a PDC6x1 display.
const Digits = 6

// Indicator values accepted by Show and ApplyIndicators.
const (
	NoDecimalPoint = -1 // No decimal point lit
	NoBattery      = -1 // Battery indicator off
)

// indicatorBit is the segment bit shared by decimal points and battery bars.
const indicatorBit = segment.Dot

// batteryBase is the first buffer index driving a battery bar.
const batteryBase = 3

// Buffer holds one glyph per display position.
// Index 0 is the leftmost position and the one whose dot is closest to the
// battery indicator.
type Buffer [Digits]byte

// Encode converts text into a right-aligned Buffer using t (Default if nil).
//
// Only the first Digits characters of text are considered; the rest is
// ignored. Dots are folded into the preceding glyph, so "12.34" needs four
// positions. Unused leading positions stay blank.
func Encode(t segment.Table, text string) Buffer {
	if r := []rune(text); len(r) > Digits {
		text = string(r[:Digits])
	}

	// At most Digits characters, so at most Digits glyphs.
	glyphs := make([]byte, 0, Digits)
	for g := range segment.Munch(t, text) {
		glyphs = append(glyphs, g)
	}

	var b Buffer
	copy(b[Digits-len(glyphs):], glyphs)
	return b
}

// ApplyIndicators lights the decimal point at position decimalPoint and the
// battery indicator at level batteryLevel.
//
// Both values must be NoDecimalPoint/NoBattery or between 0 and 2. Battery
// levels are cumulative: level 2 also lights the bars of levels 0 and 1.
// On error the buffer is left untouched.
func (b *Buffer) ApplyIndicators(decimalPoint, batteryLevel int) error {
	if err := checkIndicators(decimalPoint, batteryLevel); err != nil {
		return err
	}

	if decimalPoint != NoDecimalPoint {
		b[decimalPoint] |= indicatorBit
	}

	if batteryLevel != NoBattery {
		for i := batteryBase; i <= batteryBase+batteryLevel; i++ {
			b[i] |= indicatorBit
		}
	}

	return nil
}

// String returns the buffer as hex bytes.
func (b Buffer) String() string {
	return fmt.Sprintf("% X", b[:])
}

func checkIndicators(decimalPoint, batteryLevel int) error {
	if decimalPoint < NoDecimalPoint || decimalPoint > 2 {
		return fmt.Errorf("%w: decimal point must be -1, 0, 1 or 2, got %d", ErrInvalidArgument, decimalPoint)
	}
	if batteryLevel < NoBattery || batteryLevel > 2 {
		return fmt.Errorf("%w: battery level must be -1, 0, 1 or 2, got %d", ErrInvalidArgument, batteryLevel)
	}
	return nil
}
