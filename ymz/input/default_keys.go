package input

import "github.com/valerio/go-ymz/ymz/input/action"

// DefaultKeyMap maps key names to actions. The two letter rows of a QWERTY
// keyboard form a two octave piano, as in most trackers.
var DefaultKeyMap = map[string]action.Action{
	// Lower octave
	"z": action.NoteC,
	"s": action.NoteCSharp,
	"x": action.NoteD,
	"d": action.NoteDSharp,
	"c": action.NoteE,
	"v": action.NoteF,
	"g": action.NoteFSharp,
	"b": action.NoteG,
	"h": action.NoteGSharp,
	"n": action.NoteA,
	"j": action.NoteASharp,
	"m": action.NoteB,

	// Upper octave
	"q": action.NoteHighC,
	"2": action.NoteHighCSharp,
	"w": action.NoteHighD,
	"3": action.NoteHighDSharp,
	"e": action.NoteHighE,
	"r": action.NoteHighF,
	"5": action.NoteHighFSharp,
	"t": action.NoteHighG,
	"6": action.NoteHighGSharp,
	"y": action.NoteHighA,
	"7": action.NoteHighASharp,
	"u": action.NoteHighB,

	// Instrument controls
	"Up":        action.OctaveUp,
	"Down":      action.OctaveDown,
	"]":         action.OctaveUp,
	"[":         action.OctaveDown,
	"Space":     action.Mute,
	"Backspace": action.Panic,
	"l":         action.LatchToggle,
	"Escape":    action.Quit,

	// Debug controls
	"+": action.DebugLogLevelIncrease,
	"=": action.DebugLogLevelIncrease, // Alternative without shift
	"-": action.DebugLogLevelDecrease,
	"_": action.DebugLogLevelDecrease, // Alternative with shift
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
