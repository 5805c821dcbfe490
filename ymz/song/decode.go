// Package song runs compact bytecode programs against the instrument.
//
// A program is the magic "HC", a revision byte and a stream of opcodes, each
// followed by a fixed number of operand bytes, terminated by a zero opcode.
// Execution is strictly linear: there are no jumps or loops.
package song

import (
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
	"github.com/valerio/go-ymz/ymz/psg"
)

const (
	magic0 = 'H'
	magic1 = 'C'

	// HeaderSize is the length of the magic and revision prefix.
	HeaderSize = 3

	// MaxRevision is the newest program revision this package executes.
	// Later revisions are skipped rather than rejected.
	MaxRevision = 1
)

// Instruction is one decoded opcode and its operands.
type Instruction struct {
	Offset   int
	Op       Opcode
	Operands []byte
}

// Word returns operands[i]<<8 | operands[i+1], the big-endian encoding used
// by period and delay operands.
func (in Instruction) Word(i int) uint16 {
	return bit.Combine(in.Operands[i], in.Operands[i+1])
}

// Program is a decoded song.
type Program struct {
	Revision     uint8
	Instructions []Instruction
}

// Supported reports whether the revision can be executed.
func (p Program) Supported() bool {
	return p.Revision <= MaxRevision
}

// Decode walks a program without executing it. The whole stream is checked:
// header, opcode set, operand lengths and operand ranges. A program with an
// unsupported revision decodes to its header only.
func Decode(program []byte) (Program, error) {
	if len(program) < HeaderSize {
		if (len(program) > 0 && program[0] != magic0) || (len(program) > 1 && program[1] != magic1) {
			return Program{}, decodeErr(0, OpEnd, ErrBadMagic, "")
		}
		return Program{}, decodeErr(len(program), OpEnd, ErrTruncated, "header needs %d bytes", HeaderSize)
	}
	if program[0] != magic0 || program[1] != magic1 {
		return Program{}, decodeErr(0, OpEnd, ErrBadMagic, "got %q", program[:2])
	}

	p := Program{Revision: program[2]}
	if !p.Supported() {
		return p, nil
	}

	pc := HeaderSize
	for {
		if pc >= len(program) {
			return p, decodeErr(pc, OpEnd, ErrTruncated, "missing end opcode")
		}

		op := Opcode(program[pc])
		if op == OpEnd {
			return p, nil
		}

		arity := op.Arity()
		if arity < 0 {
			return p, decodeErr(pc, op, ErrUnknownOpcode, "")
		}
		if pc+1+arity > len(program) {
			return p, decodeErr(pc, op, ErrTruncated, "needs %d operand bytes, %d left", arity, len(program)-pc-1)
		}

		in := Instruction{Offset: pc, Op: op, Operands: program[pc+1 : pc+1+arity]}
		if err := validate(in); err != nil {
			return p, err
		}
		p.Instructions = append(p.Instructions, in)
		pc += 1 + arity
	}
}

// validate checks the operands whose range is not enforced by masking.
func validate(in Instruction) error {
	switch in.Op {
	case OpVolume, OpTone, OpNoise, OpEnvelope, OpTonePeriod:
		return checkChannel(in, in.Operands[0])

	case OpToneMidi:
		if err := checkChannel(in, in.Operands[0]); err != nil {
			return err
		}
		if in.Operands[1] > psg.MaxNote {
			return decodeErr(in.Offset, in.Op, ErrBadOperand, "note %d", in.Operands[1])
		}

	case OpNote:
		if err := checkChannel(in, in.Operands[0]); err != nil {
			return err
		}
		if note := in.Operands[1]; note > psg.MaxNote && note != psg.Off {
			return decodeErr(in.Offset, in.Op, ErrBadOperand, "note %d", note)
		}

	case OpChannels:
		for ch, note := range in.Operands {
			if note > psg.MaxNote && note != psg.Skip && note != psg.Off {
				return decodeErr(in.Offset, in.Op, ErrBadOperand, "channel %d note %d", ch, note)
			}
		}

	case OpBeat:
		if in.Operands[0] == 0 {
			return decodeErr(in.Offset, in.Op, ErrBadOperand, "beat divisor 0")
		}
	}
	return nil
}

func checkChannel(in Instruction, ch uint8) error {
	if ch >= addr.ChannelCount {
		return decodeErr(in.Offset, in.Op, ErrBadOperand, "channel %d", ch)
	}
	return nil
}
