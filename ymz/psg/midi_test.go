package psg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidiPeriod(t *testing.T) {
	tests := []struct {
		note     uint8
		expected uint16
	}{
		{0, 0},
		{23, 0},
		{24, 3822},
		{60, 478},
		{69, 284},
		{108, 30},
		{109, 0},
		{MaxNote, 0},
		{Off, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MidiPeriod(tt.note), "note %d", tt.note)
	}
}

// hcTable lists the periods of notes 24 (C1) to 108 (C8) at a 4 MHz clock,
// as carried by the shield firmware.
var hcTable = [85]uint16{
	3822, 3608, 3405, 3214, 3034, 2863, 2703, 2551, 2408, 2273, 2145, 2025,
	1911, 1804, 1703, 1607, 1517, 1432, 1351, 1276, 1204, 1136, 1073, 1012,
	956, 902, 851, 804, 758, 716, 676, 638, 602, 568, 536, 506,
	478, 451, 426, 402, 379, 358, 338, 319, 301, 284, 268, 253,
	239, 225, 213, 201, 190, 179, 169, 159, 150, 142, 134, 127,
	119, 113, 106, 100, 95, 89, 84, 80, 75, 71, 67, 63,
	60, 56, 53, 50, 47, 45, 42, 40, 38, 36, 34, 32,
	30,
}

func TestMidiPeriod_FullTable(t *testing.T) {
	for note := 0; note <= MaxNote; note++ {
		expected := uint16(0)
		if note >= 24 && note <= 108 {
			expected = hcTable[note-24]
		}
		assert.Equal(t, expected, MidiPeriod(uint8(note)), "note %d (%s)", note, NoteName(uint8(note)))
	}
}

func TestMidiPeriod_DescendsWithPitch(t *testing.T) {
	for note := uint8(25); note <= 108; note++ {
		assert.Less(t, MidiPeriod(note), MidiPeriod(note-1), "note %d", note)
	}
}

func TestNoteName(t *testing.T) {
	tests := map[uint8]string{
		0:    "C-1",
		24:   "C1",
		60:   "C4",
		61:   "C#4",
		69:   "A4",
		127:  "G9",
		Skip: "SKIP",
		Off:  "OFF",
		200:  "?200",
	}

	for note, expected := range tests {
		assert.Equal(t, expected, NoteName(note))
	}
}
