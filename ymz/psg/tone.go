package psg

import (
	"log/slog"
	"math"

	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
)

// Clock-derived conversion constants for a 4 MHz master clock.
// Tone and noise: Hz = 4e6 / (32 * period). Envelope: Hz = 7812.5 / period.
const (
	MasterClock    = 4000000
	toneBase       = MasterClock / 32
	envelopeBase   = 7812.5
	maxTonePeriod  = 0x0FFF
	maxNoisePeriod = 0x1F
)

// SetTonePeriod sets the 12 bit tone period of a channel. Higher bits are
// dropped. The fine byte is written before the coarse nibble.
func (c *Controller) SetTonePeriod(channel uint8, period uint16) {
	chip, local, ok := c.locate(channel, "SetTonePeriod")
	if !ok {
		return
	}

	period = tonePeriod.Get(period)
	target := addr.TargetOf(chip)
	c.regs.Set(target, toneFineReg(local), uint8(tonePeriodFine.Get(period)))
	c.regs.Set(target, toneCoarseReg(local), uint8(tonePeriodCoarse.Get(period)))
}

// TonePeriod returns the tone period of a channel as last written.
func (c *Controller) TonePeriod(channel uint8) uint16 {
	chip, local, ok := c.locate(channel, "TonePeriod")
	if !ok {
		return 0
	}
	fine := c.regs.Get(chip, toneFineReg(local))
	coarse := c.regs.Get(chip, toneCoarseReg(local))
	return bit.Combine(coarse, fine)
}

// SetToneFrequency sets the tone period producing hz, floor(125000 / hz).
// A non-positive frequency is ignored.
func (c *Controller) SetToneFrequency(channel uint8, hz float64) {
	if hz <= 0 {
		slog.Warn("Ignoring non-positive tone frequency", "channel", channel, "hz", hz)
		return
	}
	c.SetTonePeriod(channel, uint16(periodFor(toneBase, hz)))
}

// SetToneMidi sets the tone period of a channel to the given MIDI note.
func (c *Controller) SetToneMidi(channel uint8, note uint8) {
	if note > MaxNote {
		slog.Warn("Ignoring invalid MIDI note", "channel", channel, "note", note)
		return
	}
	c.SetTonePeriod(channel, MidiPeriod(note))
}

// periodFor returns floor(base / hz), saturated to 32 bits so the result can
// be masked safely by the caller.
func periodFor(base, hz float64) uint32 {
	p := math.Floor(base / hz)
	if p > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(p)
}
