package psg

import (
	"time"

	"github.com/valerio/go-ymz/ymz/timing"
)

// Tempo markings in beats per minute.
const (
	Larghissimo  uint8 = 16
	Grave        uint8 = 30
	Lento        uint8 = 42
	Largo        uint8 = 48
	Larghetto    uint8 = 52
	Adagio       uint8 = 60
	Adagietto    uint8 = 68
	Andante      uint8 = 75
	Andantino    uint8 = 80
	Moderato     uint8 = 90
	Allegretto   uint8 = 102
	Allegro      uint8 = 120
	Vivace       uint8 = 136
	Vivacissimo  uint8 = 146
	Allegrissimo uint8 = 160
	Presto       uint8 = 174
	Prestissimo  uint8 = 180
)

// Articulation gaps in milliseconds.
const (
	Staccato uint8 = 20
	Legato   uint8 = 0
)

// Dot multipliers for Beat, in eighths of the plain length.
const (
	Plain     uint8 = 8
	Dot       uint8 = 12
	DoubleDot uint8 = 14
	TripleDot uint8 = 15
)

// SetTempo sets the tempo in beats per minute.
func (c *Controller) SetTempo(bpm uint8) {
	c.bpm = bpm
}

// Tempo returns the tempo in beats per minute.
func (c *Controller) Tempo() uint8 {
	return c.bpm
}

// SetArticulation sets the silent gap, in milliseconds, inserted between
// note transitions.
func (c *Controller) SetArticulation(ms uint8) {
	c.articulation = ms
}

// Articulation returns the articulation gap in milliseconds.
func (c *Controller) Articulation() uint8 {
	return c.articulation
}

// BeatDuration returns the length of a 1/divisor note at the current tempo,
// stretched by dot/8 and shortened by the articulation gap:
//
//	(60000/bpm*4/divisor) * (dot/8) - articulation
//
// Whole milliseconds are kept at every step. The result is never negative,
// and a zero tempo or divisor yields 0.
func (c *Controller) BeatDuration(divisor, dot uint8) time.Duration {
	if c.bpm == 0 || divisor == 0 {
		return 0
	}
	whole := 60000 / int(c.bpm) * 4 / int(divisor)
	ms := int(float64(whole)*float64(dot)/8) - int(c.articulation)
	if ms < 0 {
		ms = 0
	}
	return timing.Milliseconds(ms)
}

// Beat blocks for BeatDuration(divisor, dot).
func (c *Controller) Beat(divisor, dot uint8) {
	c.clock.Sleep(c.BeatDuration(divisor, dot))
}

// Delay blocks for ms milliseconds.
func (c *Controller) Delay(ms uint16) {
	c.clock.Sleep(timing.Milliseconds(int(ms)))
}

func (c *Controller) articulate() {
	c.clock.Sleep(timing.Milliseconds(int(c.articulation)))
}
