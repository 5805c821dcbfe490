package psg

import "fmt"

//go:generate go run ../../cmd/gen_midi_table -out midi_table.go

// MaxNote is the highest MIDI note number.
const MaxNote = 127

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// MidiPeriod returns the tone period for a MIDI note using the exact
// 128 entry table. Notes without a representable period return 0.
func MidiPeriod(note uint8) uint16 {
	if note > MaxNote {
		return 0
	}
	return midiPeriods[note]
}

// NoteName formats a MIDI note as pitch class and octave, with MIDI 60 = C4.
func NoteName(note uint8) string {
	switch {
	case note == Off:
		return "OFF"
	case note == Skip:
		return "SKIP"
	case note > MaxNote:
		return fmt.Sprintf("?%d", note)
	}
	return fmt.Sprintf("%s%d", noteNames[note%12], int(note/12)-1)
}
