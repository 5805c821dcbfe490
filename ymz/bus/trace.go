package bus

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/valerio/go-ymz/ymz/addr"
)

// EventKind is the kind of a recorded line event.
type EventKind uint8

const (
	EventSelect EventKind = iota
	EventShift
	EventStrobe
)

// Event is one recorded line operation.
type Event struct {
	Kind   EventKind
	Mode   Mode
	Value  uint8
	Target addr.Target
}

func (e Event) String() string {
	switch e.Kind {
	case EventSelect:
		return "select " + e.Mode.String()
	case EventShift:
		return fmt.Sprintf("shift 0x%02X", e.Value)
	default:
		return "strobe " + e.Target.String()
	}
}

// Write is one complete register write decoded from line events.
type Write struct {
	Target addr.Target
	Reg    uint8
	Value  uint8
}

func (w Write) String() string {
	return fmt.Sprintf("%s[%s]=0x%02X", w.Target, addr.Name(w.Reg), w.Value)
}

// Trace is a Lines implementation that records line activity and decodes it
// back into register writes. It stands in for hardware in tests and in
// dry runs.
type Trace struct {
	mu     sync.Mutex
	events []Event
	writes []Write

	mode    Mode
	latched uint8
	reg     uint8
	hasReg  bool
}

func NewTrace() *Trace {
	return &Trace{}
}

func (t *Trace) Select(mode Mode) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.mode = mode
	t.events = append(t.events, Event{Kind: EventSelect, Mode: mode})
}

func (t *Trace) Shift(value uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.latched = value
	t.events = append(t.events, Event{Kind: EventShift, Value: value})
}

func (t *Trace) Strobe(target addr.Target) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, Event{Kind: EventStrobe, Target: target})

	if t.mode == AddressMode {
		t.reg = t.latched
		t.hasReg = true
		return
	}

	if !t.hasReg {
		slog.Warn("Bus data strobe without address", "value", fmt.Sprintf("0x%02X", t.latched))
		return
	}

	w := Write{Target: target, Reg: t.reg, Value: t.latched}
	t.writes = append(t.writes, w)
	slog.Debug("Bus write", "target", target.String(), "reg", addr.Name(w.Reg), "value", fmt.Sprintf("0x%02X", w.Value))
}

// Writes returns a copy of all decoded writes so far.
func (t *Trace) Writes() []Write {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Write, len(t.writes))
	copy(out, t.writes)
	return out
}

// Events returns a copy of the raw line events.
func (t *Trace) Events() []Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Event, len(t.events))
	copy(out, t.events)
	return out
}

// Reset forgets everything recorded so far.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = nil
	t.writes = nil
	t.hasReg = false
}

// Null discards all line activity.
type Null struct{}

func (Null) Select(Mode)        {}
func (Null) Shift(uint8)        {}
func (Null) Strobe(addr.Target) {}

var (
	_ Lines = (*Trace)(nil)
	_ Lines = Null{}
)
