// Package serial drives the PSG bus through a bridge microcontroller attached
// to a serial port. Every line operation becomes one small frame; the bridge
// replays them on its GPIO pins in order.
package serial

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/term"
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bus"
)

// Frame opcodes understood by the bridge firmware.
const (
	FrameAddress = 0xA0
	FrameData    = 0xD0
	FrameShift   = 0x50 // followed by the byte to shift out
	FrameStrobe  = 0xC0 // low bits: 1 = chip A, 2 = chip B
)

// DefaultBaud is used when no baud rate is configured.
const DefaultBaud = 115200

// Port implements bus.Lines over a byte stream.
type Port struct {
	w      io.Writer
	closer io.Closer
	err    error
}

// Open opens a serial device in raw mode at the given baud rate.
func Open(device string, baud int) (*Port, error) {
	if device == "" {
		return nil, errors.New("serial: no device configured")
	}
	if baud <= 0 {
		baud = DefaultBaud
	}

	t, err := term.Open(device, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, fmt.Errorf("serial: failed to open %s: %w", device, err)
	}

	slog.Info("Serial bus bridge opened", "device", device, "baud", baud)
	return &Port{w: t, closer: t}, nil
}

// NewPort wraps an arbitrary writer, mostly useful for tests.
func NewPort(w io.Writer) *Port {
	p := &Port{w: w}
	if c, ok := w.(io.Closer); ok {
		p.closer = c
	}
	return p
}

func (p *Port) Select(mode bus.Mode) {
	if mode == bus.DataMode {
		p.send(FrameData)
		return
	}
	p.send(FrameAddress)
}

func (p *Port) Shift(value uint8) {
	p.send(FrameShift, value)
}

func (p *Port) Strobe(target addr.Target) {
	p.send(FrameStrobe | uint8(target&addr.TargetBoth))
}

// Err returns the first transmission error, if any. Once a write has failed
// all further frames are dropped, since the bridge would be out of sync.
func (p *Port) Err() error {
	return p.err
}

// Close closes the underlying device.
func (p *Port) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

func (p *Port) send(frame ...uint8) {
	if p.err != nil {
		return
	}
	if _, err := p.w.Write(frame); err != nil {
		p.err = fmt.Errorf("serial: write failed: %w", err)
		slog.Error("Serial bus write failed, dropping further frames", "error", err)
	}
}

var _ bus.Lines = (*Port)(nil)
