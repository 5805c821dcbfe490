package timing

import (
	"time"
)

// Clock provides the only suspension point of the instrument: a blocking
// delay. Delays are never cancelled once started.
type Clock interface {
	Sleep(d time.Duration)
}

// Milliseconds converts a millisecond count to a Duration.
func Milliseconds(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// NewSystemClock returns a clock backed by time.Sleep.
func NewSystemClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Sleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}
