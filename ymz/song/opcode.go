package song

import "fmt"

// Opcode is one instruction byte of a song program.
type Opcode uint8

const (
	OpEnd             Opcode = 0x00
	OpVolumeAll       Opcode = 0x50
	OpVolume          Opcode = 0x51
	OpTempo           Opcode = 0x52
	OpArticulation    Opcode = 0x53
	OpMute            Opcode = 0x60
	OpTone            Opcode = 0x61
	OpNoise           Opcode = 0x62
	OpEnvelope        Opcode = 0x63
	OpStartEnvelope   Opcode = 0x70
	OpRestartEnvelope Opcode = 0x71
	OpEnvelopePeriod  Opcode = 0x73
	OpTonePeriod      Opcode = 0x80
	OpToneMidi        Opcode = 0x81
	OpNote            Opcode = 0x82
	OpChannels        Opcode = 0x83
	OpNoisePeriod     Opcode = 0x90
	OpBeat            Opcode = 0xA0
	OpDelay           Opcode = 0xA1
)

type opcodeInfo struct {
	name  string
	arity int
}

var opcodes = map[Opcode]opcodeInfo{
	OpEnd:             {"END", 0},
	OpVolumeAll:       {"VOLALL", 1},
	OpVolume:          {"VOL", 2},
	OpTempo:           {"TEMPO", 1},
	OpArticulation:    {"ARTIC", 1},
	OpMute:            {"MUTE", 0},
	OpTone:            {"TONE", 2},
	OpNoise:           {"NOISE", 2},
	OpEnvelope:        {"ENV", 2},
	OpStartEnvelope:   {"ENVSTART", 1},
	OpRestartEnvelope: {"ENVRESTART", 0},
	OpEnvelopePeriod:  {"ENVPERIOD", 2},
	OpTonePeriod:      {"PERIOD", 3},
	OpToneMidi:        {"MIDI", 2},
	OpNote:            {"NOTE", 2},
	OpChannels:        {"CHANNELS", 6},
	OpNoisePeriod:     {"NOISEPERIOD", 1},
	OpBeat:            {"BEAT", 2},
	OpDelay:           {"DELAY", 2},
}

// Known reports whether o is part of the instruction set.
func (o Opcode) Known() bool {
	_, ok := opcodes[o]
	return ok
}

// Arity returns the number of operand bytes following o, or -1 if o is unknown.
func (o Opcode) Arity() int {
	info, ok := opcodes[o]
	if !ok {
		return -1
	}
	return info.arity
}

func (o Opcode) String() string {
	if info, ok := opcodes[o]; ok {
		return info.name
	}
	return fmt.Sprintf("0x%02X", uint8(o))
}
