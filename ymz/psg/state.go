package psg

import "github.com/valerio/go-ymz/ymz/addr"

// ChannelState is a read-only view of one channel, derived from the shadow.
type ChannelState struct {
	Channel  uint8
	Chip     addr.Chip
	Tone     bool
	Noise    bool
	Envelope bool
	Volume   uint8
	// Remembered is the level restored when the channel plays again.
	Remembered uint8
	Period     uint16
}

// State returns the state of a channel. Invalid channels yield a zero state.
func (c *Controller) State(channel uint8) ChannelState {
	chip, _, ok := c.locate(channel, "State")
	if !ok {
		return ChannelState{}
	}
	return ChannelState{
		Channel:    channel,
		Chip:       chip,
		Tone:       c.IsTone(channel),
		Noise:      c.IsNoise(channel),
		Envelope:   c.IsEnvelope(channel),
		Volume:     c.Volume(channel),
		Remembered: c.volume[channel],
		Period:     c.TonePeriod(channel),
	}
}

// States returns the state of all six channels.
func (c *Controller) States() [addr.ChannelCount]ChannelState {
	var out [addr.ChannelCount]ChannelState
	for ch := range out {
		out[ch] = c.State(uint8(ch))
	}
	return out
}
