package bus

import (
	"github.com/valerio/go-ymz/ymz/addr"
)

// Driver is the only way register values reach the chips.
// The chips are write-only and always accept a write, so there is no error.
type Driver interface {
	Write(target addr.Target, reg, value uint8)
}

// Mode is the state of the shared bus select line.
type Mode uint8

const (
	AddressMode Mode = iota
	DataMode
)

func (m Mode) String() string {
	if m == DataMode {
		return "data"
	}
	return "address"
}

// Lines is the board-specific capability a Bus drives: one implementation per
// physical target (shift register on GPIO, serial bridge, trace...).
type Lines interface {
	// Select switches the bus between address and data mode.
	Select(mode Mode)
	// Shift transmits one byte onto the bus latch.
	Shift(value uint8)
	// Strobe pulses the chip-select line(s) of target, latching the byte.
	Strobe(target addr.Target)
}

// Bus implements the PSG write protocol on top of a Lines implementation.
type Bus struct {
	lines Lines
}

func New(lines Lines) *Bus {
	return &Bus{lines: lines}
}

// Write sends the register index and then the value. The address byte always
// precedes the data byte, and each strobe follows the byte it latches.
func (b *Bus) Write(target addr.Target, reg, value uint8) {
	b.lines.Select(AddressMode)
	b.lines.Shift(reg)
	b.lines.Strobe(target)

	b.lines.Select(DataMode)
	b.lines.Shift(value)
	b.lines.Strobe(target)
}

var _ Driver = (*Bus)(nil)
