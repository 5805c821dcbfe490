package action

import "fmt"

// Action represents something the player can do from the keyboard.
type Action int

// Piano keys, lower row then upper row, one semitone apart.
const (
	NoteC Action = iota
	NoteCSharp
	NoteD
	NoteDSharp
	NoteE
	NoteF
	NoteFSharp
	NoteG
	NoteGSharp
	NoteA
	NoteASharp
	NoteB
	NoteHighC
	NoteHighCSharp
	NoteHighD
	NoteHighDSharp
	NoteHighE
	NoteHighF
	NoteHighFSharp
	NoteHighG
	NoteHighGSharp
	NoteHighA
	NoteHighASharp
	NoteHighB

	// NoteCount is the number of piano key actions.
	NoteCount = iota
)

// Instrument controls.
const (
	OctaveUp Action = iota + NoteCount
	OctaveDown
	Mute
	Panic
	LatchToggle
	Quit

	DebugLogLevelIncrease
	DebugLogLevelDecrease
)

// Category groups actions by how the backend treats them.
type Category int

const (
	// CategoryNote actions are held while the key repeats.
	CategoryNote Category = iota
	// CategoryControl actions fire once per press.
	CategoryControl
	CategoryDebug
)

// Info describes an action.
type Info struct {
	Description string
	Category    Category
}

var controlInfo = map[Action]Info{
	OctaveUp:              {"Octave up", CategoryControl},
	OctaveDown:            {"Octave down", CategoryControl},
	Mute:                  {"Mute", CategoryControl},
	Panic:                 {"Reset chips", CategoryControl},
	LatchToggle:           {"Toggle latch", CategoryControl},
	Quit:                  {"Quit", CategoryControl},
	DebugLogLevelIncrease: {"More logs", CategoryDebug},
	DebugLogLevelDecrease: {"Fewer logs", CategoryDebug},
}

var semitoneNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// IsNote reports whether a is a piano key.
func (a Action) IsNote() bool {
	return a >= NoteC && a < NoteCount
}

// GetInfo returns the description and category of an action.
func GetInfo(a Action) Info {
	if a.IsNote() {
		desc := "Note " + semitoneNames[int(a)%12]
		if a >= NoteHighC {
			desc += " (upper)"
		}
		return Info{Description: desc, Category: CategoryNote}
	}
	if info, ok := controlInfo[a]; ok {
		return info
	}
	return Info{Description: fmt.Sprintf("Action(%d)", int(a)), Category: CategoryControl}
}
