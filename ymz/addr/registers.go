package addr

// PSG registers. Both chips share the same layout.
// Reference: YMZ284 / AY-3-8910 register map.
const (
	// Tone period fine/coarse pairs, one per local channel.
	ToneFineA   uint8 = 0x00
	ToneCoarseA uint8 = 0x01
	ToneFineB   uint8 = 0x02
	ToneCoarseB uint8 = 0x03
	ToneFineC   uint8 = 0x04
	ToneCoarseC uint8 = 0x05

	// Noise period, 5 bits.
	NoisePeriod uint8 = 0x06
	// Mixer: bits 0-2 disable tone A/B/C, bits 3-5 disable noise A/B/C.
	Mixer uint8 = 0x07

	// Volume per local channel: level in bits 0-3, envelope select in bit 4.
	VolumeA uint8 = 0x08
	VolumeB uint8 = 0x09
	VolumeC uint8 = 0x0A

	EnvelopeFine   uint8 = 0x0B
	EnvelopeCoarse uint8 = 0x0C
	// EnvelopeShape restarts the envelope generator on every write.
	EnvelopeShape uint8 = 0x0D

	// RegisterCount is the number of registers in one chip.
	RegisterCount = 14
)

// registerMasks holds the valid bits of each register.
var registerMasks = [RegisterCount]uint8{
	0xFF, 0x0F, // tone A
	0xFF, 0x0F, // tone B
	0xFF, 0x0F, // tone C
	0x1F,       // noise
	0x3F,       // mixer
	0x1F,       // volume A
	0x1F,       // volume B
	0x1F,       // volume C
	0xFF, 0xFF, // envelope period
	0x0F,       // envelope shape
}

// Mask returns the valid-bit mask of reg, or 0 for an unknown register.
func Mask(reg uint8) uint8 {
	if int(reg) >= RegisterCount {
		return 0
	}
	return registerMasks[reg]
}

// Valid reports whether reg is a register index.
func Valid(reg uint8) bool {
	return int(reg) < RegisterCount
}

var registerNames = [RegisterCount]string{
	"TP_A_FINE", "TP_A_COARSE",
	"TP_B_FINE", "TP_B_COARSE",
	"TP_C_FINE", "TP_C_COARSE",
	"NP", "MIXER",
	"VOL_A", "VOL_B", "VOL_C",
	"EP_FINE", "EP_COARSE", "EP_SHAPE",
}

// Name returns a short mnemonic for reg.
func Name(reg uint8) string {
	if !Valid(reg) {
		return "???"
	}
	return registerNames[reg]
}
