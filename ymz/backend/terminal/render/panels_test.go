package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/shadow"
)

func TestRegisterLines(t *testing.T) {
	var regs shadow.Registers
	regs[addr.ChipA][addr.Mixer] = 0x3E
	regs[addr.ChipB][addr.VolumeC] = 0x1F

	lines := RegisterLines(regs)

	require.Len(t, lines, addr.RegisterCount)
	assert.Equal(t, "0x00 TP_A_FINE    00  00", lines[0])
	assert.Equal(t, "0x07 MIXER        3E  00", lines[7])
	assert.Equal(t, "0x0A VOL_C        00  1F", lines[10])
}

func TestChannelLines(t *testing.T) {
	var states [addr.ChannelCount]psg.ChannelState
	for ch := range states {
		states[ch] = psg.ChannelState{Channel: uint8(ch), Chip: addr.ChipA}
	}
	states[4] = psg.ChannelState{Channel: 4, Chip: addr.ChipB, Tone: true, Envelope: true, Volume: 12, Period: 478}

	lines := ChannelLines(states)

	require.Len(t, lines, addr.ChannelCount)
	assert.Equal(t, " 0 A    -    -     -     0      0", lines[0])
	assert.Equal(t, " 4 B    on   -     on   12    478", lines[4])
}
