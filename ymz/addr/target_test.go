package addr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChipOf(t *testing.T) {
	tests := []struct {
		channel uint8
		chip    Chip
		local   uint8
	}{
		{0, ChipA, 0},
		{1, ChipA, 1},
		{2, ChipA, 2},
		{3, ChipB, 0},
		{4, ChipB, 1},
		{5, ChipB, 2},
	}

	for _, tt := range tests {
		chip, local := ChipOf(tt.channel)
		assert.Equal(t, tt.chip, chip, "channel %d chip", tt.channel)
		assert.Equal(t, tt.local, local, "channel %d local index", tt.channel)
	}
}

func TestTargetIncludes(t *testing.T) {
	assert.True(t, TargetBoth.Includes(ChipA))
	assert.True(t, TargetBoth.Includes(ChipB))
	assert.True(t, TargetA.Includes(ChipA))
	assert.False(t, TargetA.Includes(ChipB))
	assert.False(t, TargetB.Includes(ChipA))
	assert.Equal(t, TargetB, TargetOf(ChipB))
}

func TestMask(t *testing.T) {
	assert.Equal(t, uint8(0x0F), Mask(ToneCoarseB))
	assert.Equal(t, uint8(0x1F), Mask(NoisePeriod))
	assert.Equal(t, uint8(0x3F), Mask(Mixer))
	assert.Equal(t, uint8(0x1F), Mask(VolumeC))
	assert.Equal(t, uint8(0x0F), Mask(EnvelopeShape))
	assert.Equal(t, uint8(0), Mask(0x0E), "unknown register has no valid bits")
	assert.Equal(t, "MIXER", Name(Mixer))
}
