// Package ht1621 controls a HT1621 segment LCD controller via SPI.
//
// The driver targets the PDC6x1 module: six seven-segment digits, three
// decimal points and a three bar battery indicator.
//
// See the examples for how to use this package.
package ht1621

import (
	"errors"
	"fmt"
	"sync"

	"github.com/flavioheleno/ht1621/segment"
	"github.com/rs/zerolog"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

var (
	// ErrInvalidArgument is returned for decimal point, battery level or mode
	// values outside their range.
	ErrInvalidArgument = errors.New("ht1621: invalid argument")

	// ErrHalted is returned by display updates after Halt.
	ErrHalted = errors.New("ht1621: halted")
)

// Oscillator selects the system clock source.
type Oscillator byte

const (
	RC256K  Oscillator = 0x18 // On-chip RC oscillator
	XTAL32K Oscillator = 0x14 // External 32.768kHz crystal
	EXT256K Oscillator = 0x1C // External 256kHz clock
)

// Bias selects the LCD driving bias.
type Bias byte

const (
	BiasThird Bias = iota // 1/3 bias
	BiasHalf              // 1/2 bias
)

// Mode is the chip operating mode programmed during initialization.
type Mode struct {
	Oscillator Oscillator // Clock source (default: RC256K)
	Bias       Bias       // LCD bias (default: BiasThird)
	Commons    int        // Common lines in use, 2 to 4 (default: 4)
}

// commands returns the command sequence that programs m.
func (m Mode) commands() ([]byte, error) {
	osc := m.Oscillator
	if osc == 0 {
		osc = RC256K
	}
	switch osc {
	case RC256K, XTAL32K, EXT256K:
	default:
		return nil, fmt.Errorf("%w: unknown oscillator 0x%02X", ErrInvalidArgument, byte(osc))
	}

	var third byte
	switch m.Bias {
	case BiasThird:
		third = 1
	case BiasHalf:
	default:
		return nil, fmt.Errorf("%w: unknown bias %d", ErrInvalidArgument, m.Bias)
	}

	commons := m.Commons
	if commons == 0 {
		commons = 4
	}
	if commons < 2 || commons > 4 {
		return nil, fmt.Errorf("%w: commons must be between 2 and 4, got %d", ErrInvalidArgument, commons)
	}
	bias := cmdBias | byte(commons-2)<<2 | third

	return []byte{cmdSysEnable, byte(osc), bias, cmdLCDOn}, nil
}

// pdc6x1Commands is the power-up sequence PDC6x1 modules are known to work
// with: 1/3 bias with 4 commons on the power-on RC256K clock.
var pdc6x1Commands = []byte{cmdSysEnable, cmdBiasThird4Commons, cmdLCDOn, cmdClearTimer}

// Opts is the configuration for the HT1621 display.
type Opts struct {
	// Chip operating mode (optional, nil for the PDC6x1 power-up sequence)
	Mode *Mode

	// Glyph lookup (optional, nil for segment.Default)
	Table segment.Table

	// Debug logging of every update (optional, nil disables logging)
	Logger *zerolog.Logger
}

// Dev is the device handle for the HT1621 display.
type Dev struct {
	mu sync.Mutex

	// Communication
	c conn.Conn

	table segment.Table
	log   zerolog.Logger

	// State
	halted bool
}

// NewSPI creates a new HT1621 device connected via SPI.
//
// The SPI port is configured for 1MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. CS drives the chip's CS line, CLK its WR line and MOSI its
// DATA line.
//
// opts can be nil to use defaults.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return newDev(c, opts)
}

func newDev(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}

	cmds := pdc6x1Commands
	if opts.Mode != nil {
		var err error
		if cmds, err = opts.Mode.commands(); err != nil {
			return nil, err
		}
	}

	d := &Dev{
		c:     c,
		table: opts.Table,
		log:   zerolog.Nop(),
	}
	if d.table == nil {
		d.table = segment.Default
	}
	if opts.Logger != nil {
		d.log = opts.Logger.With().Str("dev", "ht1621").Logger()
	}

	if err := d.init(cmds); err != nil {
		return nil, err
	}

	return d, nil
}

// init resets the chip and programs its operating mode.
func (d *Dev) init(cmds []byte) error {
	if err := d.c.Tx(commandFrame(cmdSysDisable), nil); err != nil {
		return fmt.Errorf("ht1621: failed to reset: %w", err)
	}
	if err := d.c.Tx(commandFrame(cmds...), nil); err != nil {
		return fmt.Errorf("ht1621: failed to configure: %w", err)
	}
	d.log.Debug().Hex("cmds", cmds).Msg("initialized")
	return nil
}

// Show displays text right aligned, with an optional decimal point and
// battery indicator.
//
// Use NoDecimalPoint and NoBattery to leave them off. Decimal point 0 is the
// one closest to the battery indicator; battery level 2 lights all three
// bars. Text longer than six characters is truncated and dots inside text
// don't take a position of their own.
func (d *Dev) Show(text string, decimalPoint, batteryLevel int) error {
	if err := checkIndicators(decimalPoint, batteryLevel); err != nil {
		return err
	}

	b := Encode(d.table, text)
	if err := b.ApplyIndicators(decimalPoint, batteryLevel); err != nil {
		return err
	}

	d.log.Debug().
		Str("text", text).
		Int("decimal_point", decimalPoint).
		Int("battery_level", batteryLevel).
		Stringer("buffer", b).
		Msg("show")

	return d.Write(b)
}

// Write sends raw glyphs to the display, b[0] being the leftmost digit.
func (d *Dev) Write(b Buffer) error {
	f := BuildFrame(b)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.halted {
		return ErrHalted
	}

	d.log.Debug().Stringer("frame", f).Msg("write")

	return d.c.Tx(f.Bytes(), nil)
}

// Clear blanks every digit and indicator.
func (d *Dev) Clear() error {
	return d.Write(Buffer{})
}

// Halt turns the LCD and the oscillator off.
// After calling Halt, the display will not accept further updates until the
// device is re-initialized.
func (d *Dev) Halt() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.halted = true
	return d.c.Tx(commandFrame(cmdLCDOff, cmdSysDisable), nil)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ht1621.Dev{%s}", d.c)
}
