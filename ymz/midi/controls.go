package midi

import (
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
)

// Control change numbers understood in raw mode.
const (
	CCToneMSBA      uint8 = 20
	CCToneMSBB      uint8 = 21
	CCToneMSBC      uint8 = 22
	CCNoise         uint8 = 23
	CCMixer         uint8 = 24
	CCLevelA        uint8 = 25
	CCLevelB        uint8 = 26
	CCLevelC        uint8 = 27
	CCEnvelopeHigh  uint8 = 28
	CCEnvelopeMid   uint8 = 29
	CCEnvelopeLow   uint8 = 30
	CCEnvelopeShape uint8 = 31
	CCToneLSBA      uint8 = 52
	CCToneLSBB      uint8 = 53
	CCToneLSBC      uint8 = 54
	CCLatch         uint8 = 80
)

// latchThreshold is the highest control value that releases the latch.
const latchThreshold = 64

// wideField places a 7 bit control value into a register pair holding a
// 12 or 16 bit quantity.
type wideField struct {
	fine   uint8
	coarse uint8
	// width of the whole quantity
	width uint8
	// field the prepared value lands in
	field bit.Field
	// prepare turns the control value into the field content
	prepare func(v uint8) uint16
}

func whole(v uint8) uint16 {
	return uint16(v)
}

func tonePair(local uint8, field bit.Field, prepare func(uint8) uint16) wideField {
	return wideField{
		fine:    addr.ToneFineA + local*2,
		coarse:  addr.ToneCoarseA + local*2,
		width:   12,
		field:   field,
		prepare: prepare,
	}
}

func envelopePair(field bit.Field, prepare func(uint8) uint16) wideField {
	return wideField{
		fine:    addr.EnvelopeFine,
		coarse:  addr.EnvelopeCoarse,
		width:   16,
		field:   field,
		prepare: prepare,
	}
}

var (
	// Tone period: 7 high bits from the MSB control, 5 low bits from the LSB
	// control, which uses value bits 2-6.
	toneMSB = bit.Field{Shift: 5, Width: 7}
	toneLSB = bit.Field{Shift: 0, Width: 5}

	// Envelope period: bits 9-15, 2-8 and 0-1. The low control uses value
	// bits 5-6.
	envelopeHigh = bit.Field{Shift: 9, Width: 7}
	envelopeMid  = bit.Field{Shift: 2, Width: 7}
	envelopeLow  = bit.Field{Shift: 0, Width: 2}
)

func lsbBits(v uint8) uint16 {
	return uint16(v&0x7C) >> 2
}

func envLowBits(v uint8) uint16 {
	return uint16(v&0x60) >> 5
}

var wideControls = map[uint8]wideField{
	CCToneMSBA:     tonePair(0, toneMSB, whole),
	CCToneMSBB:     tonePair(1, toneMSB, whole),
	CCToneMSBC:     tonePair(2, toneMSB, whole),
	CCToneLSBA:     tonePair(0, toneLSB, lsbBits),
	CCToneLSBB:     tonePair(1, toneLSB, lsbBits),
	CCToneLSBC:     tonePair(2, toneLSB, lsbBits),
	CCEnvelopeHigh: envelopePair(envelopeHigh, whole),
	CCEnvelopeMid:  envelopePair(envelopeMid, whole),
	CCEnvelopeLow:  envelopePair(envelopeLow, envLowBits),
}

// narrowControl maps a control value onto one whole register by dropping its
// low bits.
type narrowControl struct {
	reg   uint8
	shift uint8
}

var narrowControls = map[uint8]narrowControl{
	CCNoise:         {addr.NoisePeriod, 2},
	CCMixer:         {addr.Mixer, 1},
	CCLevelA:        {addr.VolumeA, 2},
	CCLevelB:        {addr.VolumeB, 2},
	CCLevelC:        {addr.VolumeC, 2},
	CCEnvelopeShape: {addr.EnvelopeShape, 3},
}
