package song

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/valerio/go-ymz/ymz/addr"
)

// Instrument is what a Player drives. *psg.Controller implements it.
type Instrument interface {
	SetVolumeAll(level uint8)
	SetVolume(channel, level uint8)
	SetTempo(bpm uint8)
	SetArticulation(ms uint8)
	Mute()
	SetTone(channel uint8, enabled bool)
	SetNoise(channel uint8, enabled bool)
	SetEnvelope(channel uint8, enabled bool)
	StartEnvelope(shape uint8)
	RestartEnvelope()
	SetEnvelopePeriod(ep uint16)
	SetTonePeriod(channel uint8, period uint16)
	SetToneMidi(channel, note uint8)
	SetNote(channel, note uint8)
	SetChannels(notes [addr.ChannelCount]uint8)
	SetNoisePeriod(np uint8)
	BeatDuration(divisor, dot uint8) time.Duration
	Beat(divisor, dot uint8)
	Delay(ms uint16)
}

// Result summarizes a Play call.
type Result struct {
	Revision uint8
	// Skipped is set when the revision is newer than MaxRevision.
	Skipped bool
	// Instructions counts the executed instructions, the end opcode excluded.
	Instructions int
	// Delay is the total time requested by beat and delay instructions.
	Delay time.Duration
}

func (r Result) String() string {
	if r.Skipped {
		return fmt.Sprintf("revision %d skipped", r.Revision)
	}
	return fmt.Sprintf("revision %d, %d instructions, %s", r.Revision, r.Instructions, r.Delay)
}

// Player executes programs on an Instrument.
type Player struct {
	inst Instrument
}

func NewPlayer(inst Instrument) *Player {
	return &Player{inst: inst}
}

// Play decodes program and, if it is well formed, executes it. Nothing is
// sent to the instrument when decoding fails. ctx is checked between
// instructions; a delay that has started always runs to completion.
func (p *Player) Play(ctx context.Context, program []byte) (Result, error) {
	prog, err := Decode(program)
	res := Result{Revision: prog.Revision}
	if err != nil {
		return res, err
	}
	if !prog.Supported() {
		slog.Info("Skipping program with newer revision", "revision", prog.Revision, "max", MaxRevision)
		res.Skipped = true
		return res, nil
	}

	return p.run(ctx, prog, res)
}

// run executes the instructions of a decoded program, stopping at the first
// fault or cancellation.
func (p *Player) run(ctx context.Context, prog Program, res Result) (Result, error) {
	for _, in := range prog.Instructions {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		slog.Debug("Executing instruction", "offset", in.Offset, "op", in.Op.String(), "operands", in.Operands)
		d, err := p.exec(in)
		if err != nil {
			return res, err
		}
		res.Delay += d
		res.Instructions++
	}
	return res, nil
}

// exec runs one decoded instruction and returns the delay it requested.
// An opcode without a handler is a decode fault.
func (p *Player) exec(in Instruction) (time.Duration, error) {
	ops := in.Operands
	switch in.Op {
	case OpVolumeAll:
		p.inst.SetVolumeAll(ops[0])
	case OpVolume:
		p.inst.SetVolume(ops[0], ops[1])
	case OpTempo:
		p.inst.SetTempo(ops[0])
	case OpArticulation:
		p.inst.SetArticulation(ops[0])
	case OpMute:
		p.inst.Mute()
	case OpTone:
		p.inst.SetTone(ops[0], ops[1] != 0)
	case OpNoise:
		p.inst.SetNoise(ops[0], ops[1] != 0)
	case OpEnvelope:
		p.inst.SetEnvelope(ops[0], ops[1] != 0)
	case OpStartEnvelope:
		p.inst.StartEnvelope(ops[0])
	case OpRestartEnvelope:
		p.inst.RestartEnvelope()
	case OpEnvelopePeriod:
		p.inst.SetEnvelopePeriod(in.Word(0))
	case OpTonePeriod:
		p.inst.SetTonePeriod(ops[0], in.Word(1))
	case OpToneMidi:
		p.inst.SetToneMidi(ops[0], ops[1])
	case OpNote:
		p.inst.SetNote(ops[0], ops[1])
	case OpChannels:
		var notes [addr.ChannelCount]uint8
		copy(notes[:], ops)
		p.inst.SetChannels(notes)
	case OpNoisePeriod:
		p.inst.SetNoisePeriod(ops[0])
	case OpBeat:
		d := p.inst.BeatDuration(ops[0], ops[1])
		p.inst.Beat(ops[0], ops[1])
		return d, nil
	case OpDelay:
		ms := in.Word(0)
		p.inst.Delay(ms)
		return time.Duration(ms) * time.Millisecond, nil
	default:
		return 0, decodeErr(in.Offset, in.Op, ErrUnknownOpcode, "no handler")
	}
	return 0, nil
}
