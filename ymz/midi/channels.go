package midi

import "github.com/valerio/go-ymz/ymz/addr"

// MIDI channels, 1-based as on the wire.
const (
	ChannelStereo uint8 = 1
	ChannelLeft   uint8 = 2
	ChannelRight  uint8 = 3

	ChannelNoiseStereo uint8 = 4
	ChannelNoiseLeft   uint8 = 5
	ChannelNoiseRight  uint8 = 6

	ChannelRawStereo uint8 = 7
	ChannelRawLeft   uint8 = 8
	ChannelRawRight  uint8 = 9
)

// Mode is how events on a MIDI channel are interpreted.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeMusic
	ModeNoise
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeMusic:
		return "music"
	case ModeNoise:
		return "noise"
	case ModeRaw:
		return "raw"
	default:
		return "none"
	}
}

// Route returns the mode of a MIDI channel and the chips it addresses.
// Stereo drives both chips, left drives chip B and right drives chip A.
func Route(channel uint8) (Mode, addr.Target) {
	if channel < ChannelStereo || channel > ChannelRawRight {
		return ModeNone, 0
	}
	mode := Mode((channel-1)/3) + ModeMusic
	switch (channel - 1) % 3 {
	case 0:
		return mode, addr.TargetBoth
	case 1:
		return mode, addr.TargetB
	default:
		return mode, addr.TargetA
	}
}
