package ht1621

import (
	"encoding/binary"
	"fmt"
)

// Command identifiers, the first bits of every transfer (HT1621 datasheet,
// "Command Summary").
const (
	idWrite   = 0b101 // WRITE: data to display RAM
	idCommand = 0b100 // Command mode
	idBits    = 3
)

// Frame layout for a WRITE to display RAM.
const (
	addressBits = 6 // RAM address A5..A0
	glyphBits   = 8
	padBits     = 7 // completes the frame to a byte boundary
	frameBits   = idBits + addressBits + Digits*glyphBits + padBits

	// Single display, always written from the first RAM address.
	startAddress = 0x00
)

// FrameSize is the length in bytes of a display frame.
const FrameSize = frameBits / 8

// Command mode encodes each command as 8 command bits followed by one
// don't-care bit.
const commandBits = 9

// Chip commands (C7..C0).
const (
	cmdSysDisable byte = 0x00 // Oscillator and bias generator off
	cmdSysEnable  byte = 0x01 // Oscillator on
	cmdLCDOff     byte = 0x02 // Bias generator off
	cmdLCDOn      byte = 0x03 // Bias generator on
	cmdClearTimer byte = 0x0C // Clear time base output
	cmdBias       byte = 0x20 // 0010-abXc: ab commons, c=1 for 1/3 bias

	cmdBiasThird4Commons = cmdBias | 0x09
)

// Frame is a complete WRITE transfer: the 101 id, the start address, six
// glyph bytes and the padding bits, most significant bit first.
type Frame uint64

// BuildFrame packs b into a Frame. Glyphs are sent from index 0 to index 5.
func BuildFrame(b Buffer) Frame {
	var acc uint64
	acc = accumulate(acc, idWrite, idBits)
	acc = accumulate(acc, startAddress, addressBits)
	for _, g := range b {
		acc = accumulate(acc, uint64(g), glyphBits)
	}
	acc = accumulate(acc, 0, padBits)
	return Frame(acc)
}

// Bytes returns the frame as FrameSize bytes, most significant byte first.
func (f Frame) Bytes() []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, FrameSize), uint64(f))
}

// String returns the frame as a 64-bit hex value.
func (f Frame) String() string {
	return fmt.Sprintf("0x%016X", uint64(f))
}

// accumulate shifts the low n bits of value into acc, MSB first.
func accumulate(acc, value uint64, n int) uint64 {
	for i := n - 1; i >= 0; i-- {
		acc <<= 1
		if value&(1<<i) != 0 {
			acc |= 1
		}
	}
	return acc
}

// commandFrame packs cmds into a single command mode transfer, zero padded
// to a whole number of bytes. At most six commands fit in one transfer.
func commandFrame(cmds ...byte) []byte {
	if len(cmds) > (64-idBits)/commandBits {
		panic("ht1621: too many commands in one transfer")
	}

	acc := accumulate(0, idCommand, idBits)
	n := idBits
	for _, c := range cmds {
		acc = accumulate(acc, uint64(c)<<1, commandBits)
		n += commandBits
	}

	size := (n + 7) / 8
	acc <<= size*8 - n

	out := binary.BigEndian.AppendUint64(nil, acc<<(64-size*8))
	return out[:size]
}
