package shadow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bus"
)

func newTestShadow() (*Shadow, *bus.Trace) {
	trace := bus.NewTrace()
	return New(bus.New(trace)), trace
}

func TestShadow_SetSingleChip(t *testing.T) {
	s, trace := newTestShadow()

	s.Set(addr.TargetB, addr.VolumeA, 0x0C)

	assert.Equal(t, uint8(0x0C), s.Get(addr.ChipB, addr.VolumeA))
	assert.Equal(t, uint8(0x00), s.Get(addr.ChipA, addr.VolumeA), "chip A must be untouched")

	writes := trace.Writes()
	require.Len(t, writes, 1)
	assert.Equal(t, bus.Write{Target: addr.TargetB, Reg: addr.VolumeA, Value: 0x0C}, writes[0])
}

func TestShadow_SetBoth(t *testing.T) {
	s, _ := newTestShadow()

	s.Set(addr.TargetBoth, addr.EnvelopeFine, 0xAB)

	assert.Equal(t, uint8(0xAB), s.Get(addr.ChipA, addr.EnvelopeFine))
	assert.Equal(t, uint8(0xAB), s.Get(addr.ChipB, addr.EnvelopeFine))
}

func TestShadow_MasksBeforeTransmitAndStore(t *testing.T) {
	tests := []struct {
		reg      uint8
		value    uint8
		expected uint8
	}{
		{addr.ToneCoarseA, 0xFF, 0x0F},
		{addr.NoisePeriod, 0xFF, 0x1F},
		{addr.Mixer, 0xFF, 0x3F},
		{addr.VolumeB, 0xFF, 0x1F},
		{addr.EnvelopeShape, 0xFE, 0x0E},
		{addr.EnvelopeCoarse, 0xFF, 0xFF},
	}

	for _, tt := range tests {
		t.Run(addr.Name(tt.reg), func(t *testing.T) {
			s, trace := newTestShadow()
			s.Set(addr.TargetA, tt.reg, tt.value)

			assert.Equal(t, tt.expected, s.Get(addr.ChipA, tt.reg))
			writes := trace.Writes()
			require.Len(t, writes, 1)
			assert.Equal(t, tt.expected, writes[0].Value, "shadow must equal what was sent")
		})
	}
}

func TestShadow_IgnoresInvalidWrites(t *testing.T) {
	s, trace := newTestShadow()

	s.Set(addr.TargetA, 0x0E, 0x01)
	s.Set(0, addr.Mixer, 0x01)

	assert.Empty(t, trace.Writes())
	assert.Equal(t, uint8(0), s.Get(addr.ChipA, 0x0E))
	assert.Equal(t, Registers{}, s.Snapshot())
}
