// Package psg presents two write-only PSG chips sharing one bus as a single
// six channel instrument. Channels 0-2 live on chip A, 3-5 on chip B.
package psg

import (
	"log/slog"

	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bus"
	"github.com/valerio/go-ymz/ymz/shadow"
	"github.com/valerio/go-ymz/ymz/timing"
)

// Special note values accepted by SetChannels and SetNote.
const (
	Skip uint8 = 128
	Off  uint8 = 255
)

// Defaults applied by New.
const (
	DefaultTempo        = Moderato
	DefaultArticulation = 8
)

// Controller is the chip-control facade. It is not safe for concurrent use:
// several operations read a register from the shadow and write it back as two
// separate bus transactions.
type Controller struct {
	regs  *shadow.Shadow
	clock timing.Clock

	// toneOff caches the tone-disable bit of all six channels, mixer polarity.
	toneOff uint8
	// volume remembers the last non-silent level of each channel.
	volume [addr.ChannelCount]uint8

	bpm          uint8
	articulation uint8
}

// Option configures a Controller.
type Option func(*Controller)

// WithTempo sets the initial tempo.
func WithTempo(bpm uint8) Option {
	return func(c *Controller) { c.bpm = bpm }
}

// WithArticulation sets the initial articulation gap.
func WithArticulation(ms uint8) Option {
	return func(c *Controller) { c.articulation = ms }
}

// New creates a controller writing through drv and delaying with clock, and
// puts both chips in a silent power-on state.
func New(drv bus.Driver, clock timing.Clock, opts ...Option) *Controller {
	c := &Controller{
		regs:         shadow.New(drv),
		clock:        clock,
		bpm:          DefaultTempo,
		articulation: DefaultArticulation,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Reset()
	return c
}

// Reset clears every register on both chips, disables all outputs and sets
// every volume to zero. Tempo and articulation are kept.
func (c *Controller) Reset() {
	for reg := uint8(0); reg < addr.RegisterCount; reg++ {
		c.regs.Set(addr.TargetBoth, reg, 0)
	}
	c.Mute()
	c.SetVolumeAll(0)
}

// SetRegister writes a raw register value, bypassing the channel abstraction.
func (c *Controller) SetRegister(target addr.Target, reg, value uint8) {
	c.regs.Set(target, reg, value)
	if reg == addr.Mixer {
		c.syncToneCache(target)
	}
}

// Register returns the shadowed value of a raw register.
func (c *Controller) Register(chip addr.Chip, reg uint8) uint8 {
	return c.regs.Get(chip, reg)
}

// Registers returns a copy of both shadowed register files.
func (c *Controller) Registers() shadow.Registers {
	return c.regs.Snapshot()
}

// syncToneCache reloads the cached tone bits of the chips in target from
// their mixer registers.
func (c *Controller) syncToneCache(target addr.Target) {
	for chip := addr.ChipA; chip < addr.ChipCount; chip++ {
		if !target.Includes(chip) {
			continue
		}
		mixer := c.regs.Get(chip, addr.Mixer)
		for local := uint8(0); local < addr.ChannelsPerChip; local++ {
			ch := uint8(chip)*addr.ChannelsPerChip + local
			c.setToneCache(ch, toneEnable(local).Flag(mixer))
		}
	}
}

func (c *Controller) setToneCache(channel uint8, disabled bool) {
	if disabled {
		c.toneOff |= 1 << channel
	} else {
		c.toneOff &^= 1 << channel
	}
}

// locate validates channel and resolves its chip and local index.
func (c *Controller) locate(channel uint8, op string) (addr.Chip, uint8, bool) {
	if channel >= addr.ChannelCount {
		slog.Warn("Ignoring invalid channel", "op", op, "channel", channel)
		return 0, 0, false
	}
	chip, local := addr.ChipOf(channel)
	return chip, local, true
}
