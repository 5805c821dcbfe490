package song

import (
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bit"
)

// Builder assembles a program. Methods append one instruction each and
// can be chained; Bytes adds the header and the end opcode.
//
//	prog := song.NewBuilder().Tempo(90).Note(0, 60).Beat(4, 8).Bytes()
type Builder struct {
	revision uint8
	body     []byte
}

func NewBuilder() *Builder {
	return &Builder{revision: MaxRevision}
}

// Revision overrides the header revision.
func (b *Builder) Revision(r uint8) *Builder {
	b.revision = r
	return b
}

func (b *Builder) VolumeAll(level uint8) *Builder {
	return b.emit(OpVolumeAll, level)
}

func (b *Builder) Volume(ch, level uint8) *Builder {
	return b.emit(OpVolume, ch, level)
}

func (b *Builder) Tempo(bpm uint8) *Builder {
	return b.emit(OpTempo, bpm)
}

func (b *Builder) Articulation(ms uint8) *Builder {
	return b.emit(OpArticulation, ms)
}

func (b *Builder) Mute() *Builder {
	return b.emit(OpMute)
}

func (b *Builder) Tone(ch uint8, on bool) *Builder {
	return b.emit(OpTone, ch, flag(on))
}

func (b *Builder) Noise(ch uint8, on bool) *Builder {
	return b.emit(OpNoise, ch, flag(on))
}

func (b *Builder) Envelope(ch uint8, on bool) *Builder {
	return b.emit(OpEnvelope, ch, flag(on))
}

func (b *Builder) StartEnvelope(shape uint8) *Builder {
	return b.emit(OpStartEnvelope, shape)
}

func (b *Builder) RestartEnvelope() *Builder {
	return b.emit(OpRestartEnvelope)
}

func (b *Builder) EnvelopePeriod(ep uint16) *Builder {
	return b.emit(OpEnvelopePeriod, bit.High(ep), bit.Low(ep))
}

func (b *Builder) TonePeriod(ch uint8, period uint16) *Builder {
	return b.emit(OpTonePeriod, ch, bit.High(period), bit.Low(period))
}

func (b *Builder) Midi(ch, note uint8) *Builder {
	return b.emit(OpToneMidi, ch, note)
}

func (b *Builder) Note(ch, note uint8) *Builder {
	return b.emit(OpNote, ch, note)
}

func (b *Builder) Channels(notes [addr.ChannelCount]uint8) *Builder {
	return b.emit(OpChannels, notes[:]...)
}

func (b *Builder) NoisePeriod(np uint8) *Builder {
	return b.emit(OpNoisePeriod, np)
}

func (b *Builder) Beat(divisor, dot uint8) *Builder {
	return b.emit(OpBeat, divisor, dot)
}

func (b *Builder) Delay(ms uint16) *Builder {
	return b.emit(OpDelay, bit.High(ms), bit.Low(ms))
}

// Raw appends bytes verbatim, without any checks.
func (b *Builder) Raw(data ...byte) *Builder {
	b.body = append(b.body, data...)
	return b
}

// Bytes returns the complete program.
func (b *Builder) Bytes() []byte {
	out := make([]byte, 0, HeaderSize+len(b.body)+1)
	out = append(out, magic0, magic1, b.revision)
	out = append(out, b.body...)
	return append(out, byte(OpEnd))
}

func (b *Builder) emit(op Opcode, operands ...byte) *Builder {
	b.body = append(b.body, byte(op))
	b.body = append(b.body, operands...)
	return b
}

func flag(on bool) byte {
	if on {
		return 1
	}
	return 0
}
