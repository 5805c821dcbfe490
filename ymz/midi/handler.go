// Package midi maps decoded MIDI events onto the instrument. Parsing of the
// MIDI byte stream happens upstream.
package midi

import (
	"log/slog"

	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/shadow"
)

// Instrument is the part of the chip controller the handler needs.
type Instrument interface {
	Reset()
	SetTempo(bpm uint8)
	SetArticulation(ms uint8)
	SetVolumeAll(level uint8)
	SetNote(channel, note uint8)
	SetRegister(target addr.Target, reg, value uint8)
	Register(chip addr.Chip, reg uint8) uint8
	Registers() shadow.Registers
}

// Defaults are applied by Setup.
type Defaults struct {
	Tempo        uint8
	Articulation uint8
	Volume       uint8
}

// DefaultSetup is the power-on state of the synth.
var DefaultSetup = Defaults{Tempo: psg.Allegro, Articulation: psg.Legato, Volume: 10}

// triad is the major chord voiced on each chip.
var triad = [addr.ChannelsPerChip]uint8{0, 4, 7}

// Handler turns note and control events into chip writes.
//
// While latched, raw mode writes go to a staging copy of the registers and
// reach the chips only when the latch is released.
type Handler struct {
	inst    Instrument
	latched bool
	staged  shadow.Registers
}

func NewHandler(inst Instrument) *Handler {
	return &Handler{inst: inst}
}

// Setup resets the chips and applies d.
func (h *Handler) Setup(d Defaults) {
	h.inst.Reset()
	h.inst.SetTempo(d.Tempo)
	h.inst.SetArticulation(d.Articulation)
	h.inst.SetVolumeAll(d.Volume)
	h.latched = false
	slog.Debug("Synth ready", "tempo", d.Tempo, "articulation", d.Articulation, "volume", d.Volume)
}

// Latched reports whether raw writes are being staged.
func (h *Handler) Latched() bool {
	return h.latched
}

// NoteOn plays a major triad rooted at pitch on both chips. Voices above the
// MIDI range are turned off. A zero velocity is a note off.
func (h *Handler) NoteOn(channel, pitch, velocity uint8) {
	if mode, _ := Route(channel); mode != ModeMusic {
		slog.Debug("Ignoring note on", "channel", channel, "mode", mode.String())
		return
	}
	if velocity == 0 {
		h.NoteOff(channel, pitch, velocity)
		return
	}

	for ch := uint8(0); ch < addr.ChannelCount; ch++ {
		note := int(pitch) + int(triad[ch%addr.ChannelsPerChip])
		if note > psg.MaxNote {
			h.inst.SetNote(ch, psg.Off)
			continue
		}
		h.inst.SetNote(ch, uint8(note))
	}
}

// NoteOff silences all six channels.
func (h *Handler) NoteOff(channel, pitch, velocity uint8) {
	if mode, _ := Route(channel); mode != ModeMusic {
		return
	}
	for ch := uint8(0); ch < addr.ChannelCount; ch++ {
		h.inst.SetNote(ch, psg.Off)
	}
}

// ControlChange applies a raw mode control. Values are 7 bit; higher bits
// are dropped.
func (h *Handler) ControlChange(channel, number, value uint8) {
	mode, target := Route(channel)
	if mode != ModeRaw {
		slog.Debug("Ignoring control change", "channel", channel, "number", number, "mode", mode.String())
		return
	}
	value &= 0x7F

	if number == CCLatch {
		h.setLatch(target, value > latchThreshold)
		return
	}
	if w, ok := wideControls[number]; ok {
		h.applyWide(target, w, value)
		return
	}
	if n, ok := narrowControls[number]; ok {
		h.write(target, n.reg, value>>n.shift)
		return
	}
	slog.Debug("Ignoring unknown control", "channel", channel, "number", number)
}

func (h *Handler) applyWide(target addr.Target, w wideField, value uint8) {
	chip := readChip(target)
	current := bit.Combine(h.current(chip, w.coarse), h.current(chip, w.fine))
	current = bit.Field{Width: w.width}.Get(current)

	updated := w.field.Put(current, w.prepare(value))
	h.write(target, w.fine, bit.Low(updated))
	h.write(target, w.coarse, bit.High(updated))
}

func (h *Handler) setLatch(target addr.Target, latched bool) {
	switch {
	case latched && !h.latched:
		h.staged = h.inst.Registers()
		h.latched = true
		slog.Debug("Latch engaged")
	case !latched && h.latched:
		h.latched = false
		h.flush(target)
	}
}

// flush writes every staged register of the chips in target.
func (h *Handler) flush(target addr.Target) {
	for chip := addr.ChipA; chip < addr.ChipCount; chip++ {
		if !target.Includes(chip) {
			continue
		}
		for reg := uint8(0); reg < addr.RegisterCount; reg++ {
			h.inst.SetRegister(addr.TargetOf(chip), reg, h.staged[chip][reg])
		}
	}
	slog.Debug("Latch released", "target", target.String())
}

// write sends the value to the chips, or stages it while latched.
func (h *Handler) write(target addr.Target, reg, value uint8) {
	value &= addr.Mask(reg)
	if !h.latched {
		h.inst.SetRegister(target, reg, value)
		return
	}
	for chip := addr.ChipA; chip < addr.ChipCount; chip++ {
		if target.Includes(chip) {
			h.staged[chip][reg] = value
		}
	}
}

// current is the value a partial update starts from.
func (h *Handler) current(chip addr.Chip, reg uint8) uint8 {
	if h.latched {
		return h.staged[chip][reg]
	}
	return h.inst.Register(chip, reg)
}

// readChip picks the register file partial updates read from. Stereo reads
// chip A.
func readChip(target addr.Target) addr.Chip {
	if target == addr.TargetB {
		return addr.ChipB
	}
	return addr.ChipA
}
