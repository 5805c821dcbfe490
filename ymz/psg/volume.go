package psg

import (
	"github.com/valerio/go-ymz/ymz/addr"
)

// SetVolume sets the 4 bit level of a channel and remembers it. The envelope
// select bit of the register is preserved.
func (c *Controller) SetVolume(channel, level uint8) {
	c.setVolume(channel, level, false)
}

// SetVolumeSilent writes the level to the hardware without updating the
// remembered volume, so a later restore brings back the previous level.
func (c *Controller) SetVolumeSilent(channel, level uint8) {
	c.setVolume(channel, level, true)
}

// SetVolumeAll applies the same level to all six channels.
func (c *Controller) SetVolumeAll(level uint8) {
	for ch := uint8(0); ch < addr.ChannelCount; ch++ {
		c.SetVolume(ch, level)
	}
}

// SetVolumeByEnvelope hands a channel's amplitude to the envelope generator,
// with the fixed level cleared.
func (c *Controller) SetVolumeByEnvelope(channel uint8) {
	chip, local, ok := c.locate(channel, "SetVolumeByEnvelope")
	if !ok {
		return
	}
	value := envelopeSelect.Put8(0, 1)
	c.regs.Set(addr.TargetOf(chip), volumeReg(local), value)
}

// Volume returns the level bits currently written for a channel.
func (c *Controller) Volume(channel uint8) uint8 {
	chip, local, ok := c.locate(channel, "Volume")
	if !ok {
		return 0
	}
	return volumeLevel.Get8(c.regs.Get(chip, volumeReg(local)))
}

// RememberedVolume returns the level a channel returns to after a silent mute.
func (c *Controller) RememberedVolume(channel uint8) uint8 {
	if channel >= addr.ChannelCount {
		return 0
	}
	return c.volume[channel]
}

func (c *Controller) setVolume(channel, level uint8, silent bool) {
	chip, local, ok := c.locate(channel, "SetVolume")
	if !ok {
		return
	}

	level = volumeLevel.Get8(level)
	if !silent {
		c.volume[channel] = level
	}

	reg := volumeReg(local)
	value := volumeLevel.Put8(c.regs.Get(chip, reg), level)
	c.regs.Set(addr.TargetOf(chip), reg, value)
}
