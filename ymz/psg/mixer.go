package psg

import (
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
)

// SetTone enables or disables tone output on a channel.
func (c *Controller) SetTone(channel uint8, enabled bool) {
	chip, local, ok := c.locate(channel, "SetTone")
	if !ok {
		return
	}
	c.setMixerBit(chip, toneEnable(local), enabled)
	c.setToneCache(channel, !enabled)
}

// IsTone reports whether tone output is enabled on a channel.
func (c *Controller) IsTone(channel uint8) bool {
	chip, local, ok := c.locate(channel, "IsTone")
	if !ok {
		return false
	}
	return !toneEnable(local).Flag(c.regs.Get(chip, addr.Mixer))
}

// SetNoise enables or disables noise output on a channel.
func (c *Controller) SetNoise(channel uint8, enabled bool) {
	chip, local, ok := c.locate(channel, "SetNoise")
	if !ok {
		return
	}
	c.setMixerBit(chip, noiseEnable(local), enabled)
}

// IsNoise reports whether noise output is enabled on a channel.
func (c *Controller) IsNoise(channel uint8) bool {
	chip, local, ok := c.locate(channel, "IsNoise")
	if !ok {
		return false
	}
	return !noiseEnable(local).Flag(c.regs.Get(chip, addr.Mixer))
}

// SetEnvelope routes a channel's amplitude through the envelope generator.
func (c *Controller) SetEnvelope(channel uint8, enabled bool) {
	chip, local, ok := c.locate(channel, "SetEnvelope")
	if !ok {
		return
	}
	reg := volumeReg(local)
	value := envelopeSelect.Put8(c.regs.Get(chip, reg), boolBit(enabled))
	c.regs.Set(addr.TargetOf(chip), reg, value)
}

// IsEnvelope reports whether a channel follows the envelope generator.
func (c *Controller) IsEnvelope(channel uint8) bool {
	chip, local, ok := c.locate(channel, "IsEnvelope")
	if !ok {
		return false
	}
	return envelopeSelect.Flag(c.regs.Get(chip, volumeReg(local)))
}

// Mute disables tone and noise on every channel of both chips.
func (c *Controller) Mute() {
	c.toneOff = allChannelsOff
	c.regs.Set(addr.TargetBoth, addr.Mixer, allChannelsOff)
}

// setMixerBit writes one mixer bit. Mixer bits are active low.
func (c *Controller) setMixerBit(chip addr.Chip, f bit.Field, enabled bool) {
	value := f.Put8(c.regs.Get(chip, addr.Mixer), boolBit(!enabled))
	c.regs.Set(addr.TargetOf(chip), addr.Mixer, value)
}

// writeToneMask rewrites the tone bits of the channels in which, taking their
// new state from disabled. Each chip's mixer is written exactly once.
func (c *Controller) writeToneMask(which, disabled uint8) {
	for chip := addr.ChipA; chip < addr.ChipCount; chip++ {
		shift := uint8(chip) * addr.ChannelsPerChip
		sel := (which >> shift) & 0x07
		off := (disabled >> shift) & 0x07

		mixer := c.regs.Get(chip, addr.Mixer)
		mixer = (mixer &^ sel) | (off & sel)
		c.regs.Set(addr.TargetOf(chip), addr.Mixer, mixer)
	}
}
