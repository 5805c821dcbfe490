package psg

import (
	"log/slog"

	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
)

// Envelope shape bits.
const (
	Hold      uint8 = 0x01
	Alternate uint8 = 0x02
	Attack    uint8 = 0x04
	Continue  uint8 = 0x08
)

// SetEnvelopePeriod sets the 16 bit envelope period on both chips.
func (c *Controller) SetEnvelopePeriod(ep uint16) {
	c.regs.Set(addr.TargetBoth, addr.EnvelopeFine, uint8(envelopePeriodFine.Get(ep)))
	c.regs.Set(addr.TargetBoth, addr.EnvelopeCoarse, uint8(envelopePeriodCoarse.Get(ep)))
}

// EnvelopePeriod returns the current envelope period.
func (c *Controller) EnvelopePeriod() uint16 {
	return bit.Combine(c.regs.Get(addr.ChipA, addr.EnvelopeCoarse), c.regs.Get(addr.ChipA, addr.EnvelopeFine))
}

// SetEnvelopeFrequency sets the envelope period to floor(7812.5 / hz).
func (c *Controller) SetEnvelopeFrequency(hz float64) {
	if hz <= 0 {
		slog.Warn("Ignoring non-positive envelope frequency", "hz", hz)
		return
	}
	c.SetEnvelopePeriod(uint16(periodFor(envelopeBase, hz)))
}

// StartEnvelope writes the 4 bit envelope shape. The chips restart the
// envelope phase on every write to this register.
func (c *Controller) StartEnvelope(shape uint8) {
	c.regs.Set(addr.TargetBoth, addr.EnvelopeShape, envelopeShape.Put8(0, shape))
}

// EnvelopeShape returns the last written envelope shape.
func (c *Controller) EnvelopeShape() uint8 {
	return envelopeShape.Get8(c.regs.Get(addr.ChipA, addr.EnvelopeShape))
}

// RestartEnvelope rewrites the current shape to restart the envelope.
func (c *Controller) RestartEnvelope() {
	c.StartEnvelope(c.EnvelopeShape())
}
