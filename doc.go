// Package ht1621 controls a HT1621 segment LCD controller via SPI.
//
// The HT1621 drives up to 128 LCD segments (32 segment lines × 4 commons).
// This driver targets the PDC6x1 module built around it: six seven-segment
// digits, three decimal points and a three bar battery indicator.
//
// # Display Characteristics
//
// - 6 seven-segment digits, right aligned
// - 3 decimal points (0 is the one closest to the battery indicator)
// - 3 level battery indicator
// - Write-only serial interface (CS, WR, DATA)
//
// # Hardware Connection
//
// The chip's serial interface is clocked on the rising edge of WR, which maps
// onto SPI Mode0:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V (or 5V depending on module)
//	CS          → SPI Chip Select
//	WR          → SPI Clock (SCLK)
//	DATA        → SPI Data (MOSI)
//
// # Basic Usage
//
//	package main
//
//	import (
//		"github.com/flavioheleno/ht1621"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device
//		dev, _ := ht1621.NewSPI(spiBus, nil)
//		defer dev.Halt()
//
//		// 12.34 with a half full battery
//		dev.Show("12.34", ht1621.NoDecimalPoint, 1)
//	}
//
// # Decimal Points
//
// A dot in the text is merged into the digit before it, so "12.34" uses four
// positions. The decimal point argument of Show lights one of the three
// dedicated points independently of the text:
//
//	dev.Show("1234", 1, ht1621.NoBattery)
//
// # Battery Indicator
//
// Battery levels are cumulative: level 0 lights the first bar, level 1 the
// first two and level 2 all three.
//
// # Raw Segments
//
// Build a Buffer with Encode, adjust it and send it with Write:
//
//	b := ht1621.Encode(segment.Default, "88")
//	b[0] = 0x01 // a dash in the leftmost digit
//	dev.Write(b)
//
// # Operating Mode
//
// By default the chip is programmed with the sequence PDC6x1 modules ship
// with. A different clock source, bias or number of commons can be selected
// with Opts.Mode:
//
//	dev, _ := ht1621.NewSPI(spiBus, &ht1621.Opts{
//		Mode: &ht1621.Mode{Oscillator: ht1621.XTAL32K, Bias: ht1621.BiasThird, Commons: 4},
//	})
//
// # Wire Format
//
// Every update is a single 64-bit WRITE transfer:
//
//	bits   width  value
//	63-61  3      101 (WRITE)
//	60-55  6      start address 000000
//	54-7   48     6 glyphs, index 0 to 5, MSB first
//	6-0    7      zero padding
//
// # Datasheet
//
// For the command set and timing information, see the Holtek HT1621
// datasheet, sections "Command Format" and "Command Summary".
package ht1621
