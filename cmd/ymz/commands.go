package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"github.com/valerio/go-ymz/ymz/backend/terminal"
	"github.com/valerio/go-ymz/ymz/bus"
	"github.com/valerio/go-ymz/ymz/bus/serial"
	"github.com/valerio/go-ymz/ymz/config"
	"github.com/valerio/go-ymz/ymz/disasm"
	"github.com/valerio/go-ymz/ymz/midi"
	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/song"
	"github.com/valerio/go-ymz/ymz/timing"
)

// settings loads the config file, if any, and applies the global flags.
func settings(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.GlobalString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if c.GlobalIsSet("bus") {
		cfg.Bus.Driver = c.GlobalString("bus")
	}
	if c.GlobalIsSet("port") {
		cfg.Bus.Port = c.GlobalString("port")
	}
	if c.GlobalIsSet("baud") {
		cfg.Bus.Baud = c.GlobalInt("baud")
	}
	if c.GlobalBool("debug") {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func setupLogging(cfg config.Config) {
	level, _ := config.ParseLevel(cfg.LogLevel)
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

// instrument is an open connection to the chips.
type instrument struct {
	ctl   *psg.Controller
	trace *bus.Trace
	close func() error
}

func openInstrument(cfg config.Config) (*instrument, error) {
	inst := &instrument{close: func() error { return nil }}

	var lines bus.Lines
	switch cfg.Bus.Driver {
	case config.DriverTrace:
		inst.trace = bus.NewTrace()
		lines = inst.trace
	case config.DriverNull:
		lines = bus.Null{}
	case config.DriverSerial:
		port, err := serial.Open(cfg.Bus.Port, cfg.Bus.Baud)
		if err != nil {
			return nil, err
		}
		lines = port
		inst.close = func() error {
			return errors.Join(port.Err(), port.Close())
		}
	default:
		return nil, fmt.Errorf("unknown bus driver %q", cfg.Bus.Driver)
	}

	var clock timing.Clock = timing.NewSystemClock()
	if cfg.PreciseTiming {
		clock = timing.NewPreciseClock()
	}

	inst.ctl = psg.New(bus.New(lines), clock,
		psg.WithTempo(cfg.Tempo),
		psg.WithArticulation(cfg.Articulation))
	inst.ctl.SetVolumeAll(cfg.Volume)
	slog.Debug("Instrument ready", "bus", cfg.Bus.Driver, "tempo", cfg.Tempo, "articulation", cfg.Articulation)
	return inst, nil
}

func songPath(c *cli.Context) (string, error) {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, c.Command.Name)
		return "", errors.New("no song file provided")
	}
	return c.Args().Get(0), nil
}

func runPlay(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	path, err := songPath(c)
	if err != nil {
		return err
	}
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read song: %w", err)
	}

	inst, err := openInstrument(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := playSong(ctx, inst, program)
	if cerr := inst.close(); cerr != nil {
		slog.Error("Failed to close bus", "error", cerr)
	}
	if err != nil {
		return fmt.Errorf("failed to play %s: %w", path, err)
	}
	slog.Info("Song finished", "file", path, "result", res.String())
	if inst.trace != nil {
		slog.Info("Bus trace", "writes", len(inst.trace.Writes()))
	}

	if c.Bool("dump-registers") {
		fmt.Println(defaultStyles().registerTable(inst.ctl.Registers()))
	}
	return nil
}

// playSong plays program and mutes the chips when playback is interrupted,
// so no tone is left sounding.
func playSong(ctx context.Context, inst *instrument, program []byte) (song.Result, error) {
	res, err := song.NewPlayer(inst.ctl).Play(ctx, program)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		slog.Info("Playback interrupted, muting", "instructions", res.Instructions)
		inst.ctl.Mute()
	}
	return res, err
}

func runDump(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	path, err := songPath(c)
	if err != nil {
		return err
	}
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read song: %w", err)
	}

	lines, err := disasm.Disassemble(program)
	fmt.Println(defaultStyles().listing(lines, err))
	if err != nil {
		return fmt.Errorf("failed to disassemble %s: %w", path, err)
	}
	return nil
}

func runLive(c *cli.Context) error {
	cfg, err := settings(c)
	if err != nil {
		return err
	}
	setupLogging(cfg)

	inst, err := openInstrument(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := inst.close(); cerr != nil {
			slog.Error("Failed to close bus", "error", cerr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	synth := midi.NewHandler(inst.ctl)
	synth.Setup(cfg.Setup())

	level, _ := config.ParseLevel(cfg.LogLevel)
	backend := terminal.New(inst.ctl, synth, cfg.Setup(), level)
	if err := backend.Init(); err != nil {
		return err
	}
	defer backend.Cleanup()

	return backend.Run(ctx)
}
