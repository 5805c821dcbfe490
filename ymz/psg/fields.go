package psg

import (
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
)

// Named register fields. Setters and queries of the same flag go through the
// same field, so their bit positions always agree.
var (
	// 12 bit tone period split over fine/coarse registers.
	tonePeriodFine   = bit.Field{Shift: 0, Width: 8}
	tonePeriodCoarse = bit.Field{Shift: 8, Width: 4}
	tonePeriod       = bit.Field{Shift: 0, Width: 12}

	// 16 bit envelope period split over fine/coarse registers.
	envelopePeriodFine   = bit.Field{Shift: 0, Width: 8}
	envelopePeriodCoarse = bit.Field{Shift: 8, Width: 8}

	noisePeriod   = bit.Field{Shift: 0, Width: 5}
	envelopeShape = bit.Field{Shift: 0, Width: 4}

	// Volume register layout.
	volumeLevel    = bit.Field{Shift: 0, Width: 4}
	envelopeSelect = bit.Field{Shift: 4, Width: 1}
)

// toneEnable is the mixer bit disabling tone on a local channel.
func toneEnable(local uint8) bit.Field {
	return bit.Field{Shift: local, Width: 1}
}

// noiseEnable is the mixer bit disabling noise on a local channel.
func noiseEnable(local uint8) bit.Field {
	return bit.Field{Shift: local + addr.ChannelsPerChip, Width: 1}
}

func toneFineReg(local uint8) uint8 {
	return addr.ToneFineA + local*2
}

func toneCoarseReg(local uint8) uint8 {
	return toneFineReg(local) + 1
}

func volumeReg(local uint8) uint8 {
	return addr.VolumeA + local
}

// allChannelsOff is the mixer value with tone and noise disabled everywhere.
const allChannelsOff = 0x3F

func boolBit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
