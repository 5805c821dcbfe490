// Package disasm renders song programs as text.
package disasm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/song"
)

// Line is one rendered instruction.
type Line struct {
	Offset      int
	Instruction string
	Length      int
}

// Disassemble renders every instruction of program, including the header and
// the terminating END. On a decode fault the lines before the fault are
// returned together with the error.
func Disassemble(program []byte) ([]Line, error) {
	prog, err := song.Decode(program)
	if errors.Is(err, song.ErrBadMagic) || len(program) < song.HeaderSize {
		return nil, err
	}

	header := fmt.Sprintf("HC revision %d", prog.Revision)
	if !prog.Supported() {
		header += " (unsupported, not decoded)"
	}
	lines := []Line{{Offset: 0, Instruction: header, Length: song.HeaderSize}}

	end := song.HeaderSize
	for _, in := range prog.Instructions {
		lines = append(lines, Format(in))
		end = in.Offset + 1 + len(in.Operands)
	}
	if err != nil {
		return lines, err
	}
	if prog.Supported() {
		lines = append(lines, Line{Offset: end, Instruction: song.OpEnd.String(), Length: 1})
	}
	return lines, nil
}

// Format renders a single decoded instruction.
func Format(in song.Instruction) Line {
	return Line{
		Offset:      in.Offset,
		Instruction: render(in),
		Length:      1 + len(in.Operands),
	}
}

func render(in song.Instruction) string {
	ops := in.Operands
	name := in.Op.String()

	switch in.Op {
	case song.OpVolumeAll, song.OpTempo, song.OpNoisePeriod:
		return fmt.Sprintf("%s %d", name, ops[0])
	case song.OpArticulation:
		return fmt.Sprintf("%s %dms", name, ops[0])
	case song.OpVolume:
		return fmt.Sprintf("%s ch%d %d", name, ops[0], ops[1])
	case song.OpTone, song.OpNoise, song.OpEnvelope:
		return fmt.Sprintf("%s ch%d %s", name, ops[0], onOff(ops[1]))
	case song.OpStartEnvelope:
		return fmt.Sprintf("%s %s", name, shapeName(ops[0]))
	case song.OpEnvelopePeriod:
		return fmt.Sprintf("%s %d", name, in.Word(0))
	case song.OpTonePeriod:
		return fmt.Sprintf("%s ch%d %d", name, ops[0], in.Word(1))
	case song.OpToneMidi, song.OpNote:
		return fmt.Sprintf("%s ch%d %s", name, ops[0], psg.NoteName(ops[1]))
	case song.OpChannels:
		notes := make([]string, len(ops))
		for i, n := range ops {
			notes[i] = psg.NoteName(n)
		}
		return name + " " + strings.Join(notes, " ")
	case song.OpBeat:
		return fmt.Sprintf("%s 1/%d%s", name, ops[0], dotName(ops[1]))
	case song.OpDelay:
		return fmt.Sprintf("%s %dms", name, in.Word(0))
	}
	return name
}

func onOff(v uint8) string {
	if v != 0 {
		return "on"
	}
	return "off"
}

func dotName(dot uint8) string {
	switch dot {
	case psg.Plain:
		return ""
	case psg.Dot:
		return " dot"
	case psg.DoubleDot:
		return " double-dot"
	case psg.TripleDot:
		return " triple-dot"
	}
	return fmt.Sprintf(" x%d/8", dot)
}

// shapeName lists the set shape bits, e.g. "0x0E CONT|ATT|ALT".
func shapeName(shape uint8) string {
	var flags []string
	for _, f := range []struct {
		bit  uint8
		name string
	}{
		{psg.Continue, "CONT"},
		{psg.Attack, "ATT"},
		{psg.Alternate, "ALT"},
		{psg.Hold, "HOLD"},
	} {
		if shape&f.bit != 0 {
			flags = append(flags, f.name)
		}
	}
	if len(flags) == 0 {
		return fmt.Sprintf("0x%02X", shape)
	}
	return fmt.Sprintf("0x%02X %s", shape, strings.Join(flags, "|"))
}
