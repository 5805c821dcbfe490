package input

import "github.com/valerio/go-ymz/ymz/input/action"

// Octave limits for the lower piano row. MIDI 60 is C4.
const (
	MinOctave     = -1
	MaxOctave     = 8
	DefaultOctave = 4
)

// Note returns the MIDI pitch played by a piano key with the lower row at
// octave. The second result is false for non-note actions and for pitches
// outside 0-127.
func Note(act action.Action, octave int) (uint8, bool) {
	if !act.IsNote() {
		return 0, false
	}
	pitch := (octave+1)*12 + int(act-action.NoteC)
	if pitch < 0 || pitch > 127 {
		return 0, false
	}
	return uint8(pitch), true
}

// ClampOctave keeps octave within MinOctave and MaxOctave.
func ClampOctave(octave int) int {
	switch {
	case octave < MinOctave:
		return MinOctave
	case octave > MaxOctave:
		return MaxOctave
	}
	return octave
}
