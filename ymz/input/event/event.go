package event

// Type represents the type of input event
type Type int

const (
	Press   Type = iota // Key pressed down
	Release             // Key released, or its repeat timed out
	Hold                // Key still held, sent on every update
)

func (t Type) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case Hold:
		return "hold"
	default:
		return "unknown"
	}
}
