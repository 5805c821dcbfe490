// Package terminal is a live instrument in the terminal: the keyboard plays
// notes through the MIDI event handler while the screen shows the registers
// of both chips, the state of each channel and recent log lines.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/backend/terminal/render"
	"github.com/valerio/go-ymz/ymz/input"
	"github.com/valerio/go-ymz/ymz/input/action"
	"github.com/valerio/go-ymz/ymz/input/event"
	"github.com/valerio/go-ymz/ymz/midi"
	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/shadow"
)

const (
	frameTime = time.Second / 60

	// Key expiry timeout - slightly longer than typical key repeat interval
	keyTimeout = 100 * time.Millisecond
	velocity   = 100

	logCapacity   = 200
	panelWidth    = 40
	registerY     = 1
	channelY      = registerY + addr.RegisterCount + 2
	minTermWidth  = 80
	minTermHeight = channelY + addr.ChannelCount + 3
)

// Instrument is the chip controller as seen by the monitor.
type Instrument interface {
	Mute()
	Tempo() uint8
	Articulation() uint8
	Registers() shadow.Registers
	States() [addr.ChannelCount]psg.ChannelState
}

// Synth receives the MIDI events produced by the keyboard.
type Synth interface {
	Setup(d midi.Defaults)
	Latched() bool
	NoteOn(channel, pitch, velocity uint8)
	NoteOff(channel, pitch, velocity uint8)
	ControlChange(channel, number, value uint8)
}

// Backend drives a tcell screen. All methods run on the goroutine that owns
// the instrument.
type Backend struct {
	screen    tcell.Screen
	running   bool
	stop      chan struct{}
	logBuffer *render.LogBuffer
	logLevel  slog.Level
	prevLog   *slog.Logger

	inst     Instrument
	synth    Synth
	defaults midi.Defaults
	input    *input.Handler
	octave   int

	keyStates map[action.Action]time.Time // Last time each piano key repeated
	sounding  action.Action
	pitch     uint8
	playing   bool
}

// New creates a terminal backend. Log lines below level are kept but not
// shown until the filter is lowered.
func New(inst Instrument, synth Synth, defaults midi.Defaults, level slog.Level) *Backend {
	return &Backend{
		stop:      make(chan struct{}),
		logBuffer: render.NewLogBuffer(logCapacity),
		logLevel:  level,
		inst:      inst,
		synth:     synth,
		defaults:  defaults,
		input:     input.NewHandler(),
		octave:    input.DefaultOctave,
		keyStates: make(map[action.Action]time.Time),
		running:   true,
	}
}

// Init opens the terminal and routes the default logger into the log pane.
func (t *Backend) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	t.attach(screen)

	t.prevLog = slog.Default()
	slog.SetDefault(slog.New(render.NewLogBufferHandler(t.logBuffer, slog.LevelDebug)))
	slog.Info("Terminal instrument ready", "octave", t.octave)
	return nil
}

func (t *Backend) attach(screen tcell.Screen) {
	t.screen = screen
	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()
}

// Run polls the keyboard and redraws until quit, a termination signal or
// ctx cancellation. The signal handler is gone when Run returns.
func (t *Backend) Run(ctx context.Context) error {
	if t.screen == nil {
		return fmt.Errorf("terminal backend not initialized")
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	// Set up signal handling for graceful shutdown
	wg.Add(1)
	go func() {
		defer wg.Done()
		t.handleSignals(ctx)
	}()

	ticker := time.NewTicker(frameTime)
	defer ticker.Stop()

	for t.running {
		select {
		case <-ctx.Done():
			t.running = false
		case <-t.stop:
			t.running = false
		case now := <-ticker.C:
			t.Update(now)
		}
	}

	t.silence()
	return nil
}

// Update processes pending input and redraws the screen.
func (t *Backend) Update(now time.Time) {
	// Poll for input events synchronously
	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	t.updateNotes(now)
	if !t.running {
		return
	}
	t.draw()
	t.screen.Show()
}

// Cleanup restores the terminal and the previous default logger.
func (t *Backend) Cleanup() error {
	if t.screen != nil {
		slog.Info("Cleaning up terminal backend")
		t.screen.Fini()
		t.screen = nil
	}
	if t.prevLog != nil {
		slog.SetDefault(t.prevLog)
		t.prevLog = nil
	}
	return nil
}

func (t *Backend) handleSignals(ctx context.Context) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	defer signal.Stop(signals)

	select {
	case sig := <-signals:
		slog.Info("Stopping on signal", "signal", sig.String())
		close(t.stop)
	case <-ctx.Done():
	}
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	act, ok := keyMapping[ev.Key()]
	if !ok && ev.Key() == tcell.KeyRune {
		act, ok = runeMapping[ev.Rune()]
	}
	if !ok {
		return
	}

	info := action.GetInfo(act)
	if info.Category == action.CategoryNote {
		t.keyStates[act] = now
		return
	}
	if !t.input.ProcessEvent(input.Event{Action: act, Type: event.Press}) {
		slog.Debug("Debounced", "action", info.Description)
		return
	}
	t.handleAction(act)
}

// updateNotes keeps the most recently repeated piano key sounding. Keys stop
// repeating when released, so a key older than keyTimeout is up.
func (t *Backend) updateNotes(now time.Time) {
	var (
		latest   action.Action
		latestAt time.Time
		found    bool
	)
	for act, last := range t.keyStates {
		if now.Sub(last) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}
		if !found || last.After(latestAt) || (last.Equal(latestAt) && act > latest) {
			latest, latestAt, found = act, last, true
		}
	}

	switch {
	case !found:
		t.silence()
	case !t.playing || latest != t.sounding:
		pitch, ok := input.Note(latest, t.octave)
		if !ok {
			slog.Debug("Key out of range", "action", action.GetInfo(latest).Description, "octave", t.octave)
			delete(t.keyStates, latest)
			return
		}
		slog.Debug("Key press", "note", psg.NoteName(pitch))
		t.synth.NoteOn(midi.ChannelStereo, pitch, velocity)
		t.sounding, t.pitch, t.playing = latest, pitch, true
	}
}

func (t *Backend) silence() {
	if !t.playing {
		return
	}
	slog.Debug("Key release", "note", psg.NoteName(t.pitch))
	t.synth.NoteOff(midi.ChannelStereo, t.pitch, 0)
	t.playing = false
}

func (t *Backend) handleAction(act action.Action) {
	switch act {
	case action.OctaveUp:
		t.shiftOctave(1)
	case action.OctaveDown:
		t.shiftOctave(-1)
	case action.Mute:
		t.inst.Mute()
		t.releaseKeys()
		slog.Info("Muted")
	case action.Panic:
		t.synth.Setup(t.defaults)
		t.releaseKeys()
		slog.Info("Chips reset")
	case action.LatchToggle:
		value := uint8(127)
		if t.synth.Latched() {
			value = 0
		}
		t.synth.ControlChange(midi.ChannelRawStereo, midi.CCLatch, value)
		slog.Info("Latch", "engaged", value != 0)
	case action.Quit:
		t.running = false
	case action.DebugLogLevelIncrease:
		t.changeLogLevel(1)
	case action.DebugLogLevelDecrease:
		t.changeLogLevel(-1)
	}
}

func (t *Backend) shiftOctave(delta int) {
	octave := input.ClampOctave(t.octave + delta)
	if octave != t.octave {
		t.octave = octave
		slog.Info("Octave changed", "octave", octave)
	}
}

// releaseKeys forgets held keys without sending a note off.
func (t *Backend) releaseKeys() {
	clear(t.keyStates)
	t.playing = false
}

func (t *Backend) changeLogLevel(direction int) {
	oldLevel := t.logLevel
	switch direction {
	case -1:
		switch t.logLevel {
		case slog.LevelDebug:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelError
		}
	case 1:
		switch t.logLevel {
		case slog.LevelError:
			t.logLevel = slog.LevelWarn
		case slog.LevelWarn:
			t.logLevel = slog.LevelInfo
		case slog.LevelInfo:
			t.logLevel = slog.LevelDebug
		}
	}
	if oldLevel != t.logLevel {
		slog.Info("Log filter changed", "from", oldLevel, "to", t.logLevel)
	}
}

// tcellKeyNameMap converts tcell keys to key names used in default mappings
var tcellKeyNameMap = map[tcell.Key]string{
	tcell.KeyUp:         "Up",
	tcell.KeyDown:       "Down",
	tcell.KeyEscape:     "Escape",
	tcell.KeyBackspace:  "Backspace",
	tcell.KeyBackspace2: "Backspace",
}

// buildKeyMapping creates the key mapping from default mappings
func buildKeyMapping() map[tcell.Key]action.Action {
	mapping := make(map[tcell.Key]action.Action)
	for key, keyName := range tcellKeyNameMap {
		if act, ok := input.GetDefaultMapping(keyName); ok {
			mapping[key] = act
		}
	}
	mapping[tcell.KeyCtrlC] = action.Quit
	return mapping
}

// buildRuneMapping maps every single character key name to its action.
func buildRuneMapping() map[rune]action.Action {
	mapping := make(map[rune]action.Action)
	for keyName, act := range input.DefaultKeyMap {
		if utf8.RuneCountInString(keyName) == 1 {
			r, _ := utf8.DecodeRuneInString(keyName)
			mapping[r] = act
		}
	}
	if act, ok := input.GetDefaultMapping("Space"); ok {
		mapping[' '] = act
	}
	return mapping
}

var (
	keyMapping  = buildKeyMapping()
	runeMapping = buildRuneMapping()
)
