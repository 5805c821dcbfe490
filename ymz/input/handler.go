package input

import (
	"time"

	"github.com/valerio/go-ymz/ymz/input/action"
	"github.com/valerio/go-ymz/ymz/input/event"
)

// Event is an action with its event type.
type Event struct {
	Action action.Action
	Type   event.Type
}

// Handler manages input processing with debouncing for control actions.
// Piano keys are never debounced.
type Handler struct {
	lastActionTime map[action.Action]time.Time
	debounceDelay  time.Duration
	now            func() time.Time
}

func NewHandler() *Handler {
	return &Handler{
		lastActionTime: make(map[action.Action]time.Time),
		debounceDelay:  300 * time.Millisecond,
		now:            time.Now,
	}
}

// ProcessEvent returns true if the event should be handled, false if it was
// debounced.
func (h *Handler) ProcessEvent(evt Event) bool {
	if evt.Action.IsNote() {
		return true
	}
	if evt.Type == event.Press || evt.Type == event.Release {
		now := h.now()
		if lastTime, exists := h.lastActionTime[evt.Action]; exists {
			if now.Sub(lastTime) < h.debounceDelay {
				return false
			}
		}
		h.lastActionTime[evt.Action] = now
	}

	return true
}
