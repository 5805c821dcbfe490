package timing

import (
	"sync"
	"time"
)

// VirtualClock never blocks. It accumulates requested delays so tests can
// check timing without waiting for it.
type VirtualClock struct {
	mu      sync.Mutex
	elapsed time.Duration
	sleeps  []time.Duration
}

func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

func (v *VirtualClock) Sleep(d time.Duration) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if d < 0 {
		d = 0
	}
	v.elapsed += d
	v.sleeps = append(v.sleeps, d)
}

// Elapsed returns the sum of all delays so far.
func (v *VirtualClock) Elapsed() time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.elapsed
}

// Sleeps returns every delay in request order.
func (v *VirtualClock) Sleeps() []time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]time.Duration, len(v.sleeps))
	copy(out, v.sleeps)
	return out
}

// Reset clears the recorded delays.
func (v *VirtualClock) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.elapsed = 0
	v.sleeps = nil
}
