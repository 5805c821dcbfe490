package psg

import (
	"log/slog"

	"github.com/valerio/go-ymz/ymz/addr"
)

// SetChannels retunes all six channels at once. Each value is a MIDI note,
// Skip to leave the channel alone, or Off to silence it. Values 129-254 are
// treated as Skip.
//
// Every affected channel is disabled first, then the call waits for the
// articulation gap, then the new notes are tuned and enabled. Each chip's
// mixer is written once per pass. Off channels are muted without forgetting
// their volume.
func (c *Controller) SetChannels(notes [addr.ChannelCount]uint8) {
	var touched, playing uint8
	for i, note := range notes {
		ch := uint8(i)
		switch {
		case note == Off:
			touched |= 1 << ch
			c.setToneCache(ch, true)
			c.SetVolumeSilent(ch, 0)
		case note <= MaxNote:
			touched |= 1 << ch
			playing |= 1 << ch
			c.setToneCache(ch, false)
		}
	}

	c.writeToneMask(touched, touched)
	c.articulate()

	for i, note := range notes {
		ch := uint8(i)
		if playing&(1<<ch) == 0 {
			continue
		}
		c.SetToneMidi(ch, note)
		c.SetVolume(ch, c.volume[ch])
	}

	c.writeToneMask(touched, c.toneOff)
}

// SetNote plays a MIDI note on one channel: tone off, retune, articulation
// gap, tone on. Off only disables the tone.
func (c *Controller) SetNote(channel, note uint8) {
	if _, _, ok := c.locate(channel, "SetNote"); !ok {
		return
	}
	if note != Off && note > MaxNote {
		slog.Warn("Ignoring invalid note", "channel", channel, "note", note)
		return
	}

	c.SetTone(channel, false)
	if note == Off {
		return
	}

	c.SetToneMidi(channel, note)
	c.articulate()
	c.SetTone(channel, true)
}
