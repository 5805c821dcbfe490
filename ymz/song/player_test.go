package song

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bus"
	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/timing"
)

// recorder is an Instrument that logs every call.
type recorder struct {
	calls    []string
	onDelay  func()
	beatTime time.Duration
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SetVolumeAll(level uint8)               { r.log("volall %d", level) }
func (r *recorder) SetVolume(ch, level uint8)              { r.log("vol %d %d", ch, level) }
func (r *recorder) SetTempo(bpm uint8)                     { r.log("tempo %d", bpm) }
func (r *recorder) SetArticulation(ms uint8)               { r.log("artic %d", ms) }
func (r *recorder) Mute()                                  { r.log("mute") }
func (r *recorder) SetTone(ch uint8, on bool)              { r.log("tone %d %t", ch, on) }
func (r *recorder) SetNoise(ch uint8, on bool)             { r.log("noise %d %t", ch, on) }
func (r *recorder) SetEnvelope(ch uint8, on bool)          { r.log("env %d %t", ch, on) }
func (r *recorder) StartEnvelope(shape uint8)              { r.log("envstart %d", shape) }
func (r *recorder) RestartEnvelope()                       { r.log("envrestart") }
func (r *recorder) SetEnvelopePeriod(ep uint16)            { r.log("envperiod %d", ep) }
func (r *recorder) SetTonePeriod(ch uint8, p uint16)       { r.log("period %d %d", ch, p) }
func (r *recorder) SetToneMidi(ch, note uint8)             { r.log("midi %d %d", ch, note) }
func (r *recorder) SetNote(ch, note uint8)                 { r.log("note %d %d", ch, note) }
func (r *recorder) SetChannels(n [addr.ChannelCount]uint8) { r.log("channels %v", n) }
func (r *recorder) SetNoisePeriod(np uint8)                { r.log("noiseperiod %d", np) }
func (r *recorder) BeatDuration(d, dot uint8) time.Duration {
	return r.beatTime
}
func (r *recorder) Beat(d, dot uint8) { r.log("beat %d %d", d, dot) }
func (r *recorder) Delay(ms uint16) {
	r.log("delay %d", ms)
	if r.onDelay != nil {
		r.onDelay()
	}
}

var _ Instrument = (*psg.Controller)(nil)

func newTestInstrument() (*psg.Controller, *bus.Trace, *timing.VirtualClock) {
	trace := bus.NewTrace()
	clock := timing.NewVirtualClock()
	c := psg.New(bus.New(trace), clock)
	trace.Reset()
	return c, trace, clock
}

func TestPlay_QuarterNoteProgram(t *testing.T) {
	c, _, clock := newTestInstrument()
	program := []byte{'H', 'C', 0x01, 0x52, 90, 0x82, 0, 60, 0xA0, 4, 8, 0x82, 0, 255, 0x00}

	res, err := NewPlayer(c).Play(context.Background(), program)

	require.NoError(t, err)
	assert.Equal(t, Result{Revision: 1, Instructions: 4, Delay: 658 * time.Millisecond}, res)
	assert.Equal(t, psg.Moderato, c.Tempo())
	assert.Equal(t, psg.MidiPeriod(60), c.TonePeriod(0))
	assert.False(t, c.IsTone(0), "channel 0 ends off")
	assert.Equal(t, []time.Duration{8 * time.Millisecond, 658 * time.Millisecond}, clock.Sleeps(),
		"articulation gap of the note, then the beat")
}

func TestPlay_NewerRevisionIsSkipped(t *testing.T) {
	c, trace, clock := newTestInstrument()
	program := NewBuilder().Revision(2).Tempo(120).Note(0, 60).Bytes()

	res, err := NewPlayer(c).Play(context.Background(), program)

	require.NoError(t, err)
	assert.Equal(t, Result{Revision: 2, Skipped: true}, res)
	assert.Empty(t, trace.Writes())
	assert.Empty(t, clock.Sleeps())
}

func TestPlay_RevisionZeroRuns(t *testing.T) {
	rec := &recorder{}
	res, err := NewPlayer(rec).Play(context.Background(), NewBuilder().Revision(0).Mute().Bytes())

	require.NoError(t, err)
	assert.Equal(t, 1, res.Instructions)
	assert.Equal(t, []string{"mute"}, rec.calls)
}

func TestPlay_DispatchesEveryOpcode(t *testing.T) {
	rec := &recorder{beatTime: 250 * time.Millisecond}
	program := NewBuilder().
		VolumeAll(10).
		Volume(2, 7).
		Tempo(120).
		Articulation(20).
		Mute().
		Tone(1, true).
		Noise(4, true).
		Envelope(5, false).
		StartEnvelope(0x0E).
		RestartEnvelope().
		EnvelopePeriod(0x1234).
		TonePeriod(3, 0x0ABC).
		Midi(0, 69).
		Note(1, psg.Off).
		Channels([addr.ChannelCount]uint8{60, 64, 67, psg.Skip, psg.Off, 72}).
		NoisePeriod(17).
		Beat(8, psg.Dot).
		Delay(0x01F4).
		Bytes()

	res, err := NewPlayer(rec).Play(context.Background(), program)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"volall 10",
		"vol 2 7",
		"tempo 120",
		"artic 20",
		"mute",
		"tone 1 true",
		"noise 4 true",
		"env 5 false",
		"envstart 14",
		"envrestart",
		"envperiod 4660",
		"period 3 2748",
		"midi 0 69",
		"note 1 255",
		"channels [60 64 67 128 255 72]",
		"noiseperiod 17",
		"beat 8 12",
		"delay 500",
	}, rec.calls)
	assert.Equal(t, 18, res.Instructions)
	assert.Equal(t, 750*time.Millisecond, res.Delay)
}

func TestPlay_NonZeroFlagIsTrue(t *testing.T) {
	rec := &recorder{}
	program := NewBuilder().Raw(byte(OpTone), 2, 0x80, byte(OpNoise), 2, 0).Bytes()

	_, err := NewPlayer(rec).Play(context.Background(), program)

	require.NoError(t, err)
	assert.Equal(t, []string{"tone 2 true", "noise 2 false"}, rec.calls)
}

func TestPlay_FaultSendsNothing(t *testing.T) {
	c, trace, clock := newTestInstrument()
	program := NewBuilder().Tempo(120).Note(0, 60).Raw(0x72).Bytes()

	res, err := NewPlayer(c).Play(context.Background(), program)

	require.ErrorIs(t, err, ErrUnknownOpcode)
	assert.Zero(t, res.Instructions)
	assert.Empty(t, trace.Writes())
	assert.Empty(t, clock.Sleeps())
	assert.Equal(t, psg.DefaultTempo, c.Tempo())
}

func TestPlay_CancelledBeforeStart(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := NewPlayer(rec).Play(ctx, NewBuilder().Mute().Bytes())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Instructions)
	assert.Empty(t, rec.calls)
}

func TestPlay_CancelledBetweenInstructions(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{onDelay: cancel}
	program := NewBuilder().Tempo(100).Delay(20).Mute().Bytes()

	res, err := NewPlayer(rec).Play(ctx, program)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Instructions, "the running delay completes")
	assert.Equal(t, 20*time.Millisecond, res.Delay)
	assert.Equal(t, []string{"tempo 100", "delay 20"}, rec.calls)
}

func TestRun_UnhandledOpcodeIsDecodeFault(t *testing.T) {
	rec := &recorder{}
	prog := Program{Revision: MaxRevision}
	prog.Instructions = []Instruction{
		{Offset: 3, Op: OpMute},
		{Offset: 4, Op: Opcode(0x72)},
		{Offset: 5, Op: OpMute},
	}

	res, err := NewPlayer(rec).run(context.Background(), prog, Result{Revision: MaxRevision})

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.ErrorIs(t, err, ErrUnknownOpcode)
	assert.Equal(t, 4, de.Offset)
	assert.Equal(t, Opcode(0x72), de.Opcode)
	assert.Equal(t, 1, res.Instructions)
	assert.Equal(t, []string{"mute"}, rec.calls)
}

func TestPlay_DecodeErrorIsTyped(t *testing.T) {
	rec := &recorder{}
	_, err := NewPlayer(rec).Play(context.Background(), []byte{'X', 'Y', 1, 0})

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 0, de.Offset)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "revision 3 skipped", Result{Revision: 3, Skipped: true}.String())
	assert.Equal(t, "revision 1, 4 instructions, 658ms",
		Result{Revision: 1, Instructions: 4, Delay: 658 * time.Millisecond}.String())
}
