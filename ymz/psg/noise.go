package psg

import (
	"log/slog"

	"github.com/valerio/go-ymz/ymz/addr"
)

// SetNoisePeriod sets the 5 bit noise period shared by all channels.
func (c *Controller) SetNoisePeriod(np uint8) {
	c.regs.Set(addr.TargetBoth, addr.NoisePeriod, noisePeriod.Put8(0, np))
}

// NoisePeriod returns the current noise period.
func (c *Controller) NoisePeriod() uint8 {
	return noisePeriod.Get8(c.regs.Get(addr.ChipA, addr.NoisePeriod))
}

// SetNoiseFrequency sets the noise period to floor(125000 / hz), masked to 5 bits.
func (c *Controller) SetNoiseFrequency(hz float64) {
	if hz <= 0 {
		slog.Warn("Ignoring non-positive noise frequency", "hz", hz)
		return
	}
	c.SetNoisePeriod(uint8(periodFor(toneBase, hz) & maxNoisePeriod))
}
