package timing

import (
	"time"
)

// spinThreshold is the tail of every delay that is busy-waited instead of slept.
const spinThreshold = 2 * time.Millisecond

// PreciseClock combines sleep for efficiency with busy-waiting for accuracy.
// Short articulation gaps are a few milliseconds long, where plain sleeps are
// noticeably late.
type PreciseClock struct {
	now func() time.Time
}

func NewPreciseClock() *PreciseClock {
	return &PreciseClock{now: time.Now}
}

func (p *PreciseClock) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	deadline := p.now().Add(d)

	if d > spinThreshold {
		time.Sleep(d - spinThreshold)
	}
	for p.now().Before(deadline) {
		// busy-wait for the remainder, higher accuracy.
	}
}
