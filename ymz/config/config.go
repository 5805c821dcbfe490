// Package config loads the instrument settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/valerio/go-ymz/ymz/bus/serial"
	"github.com/valerio/go-ymz/ymz/midi"
	"gopkg.in/yaml.v3"
)

// Bus driver names.
const (
	DriverTrace  = "trace"
	DriverNull   = "null"
	DriverSerial = "serial"
)

// Bus selects how register writes leave the process.
type Bus struct {
	Driver string `yaml:"driver"`
	Port   string `yaml:"port"`
	Baud   int    `yaml:"baud"`
}

// Config is the content of the settings file.
type Config struct {
	Bus          Bus    `yaml:"bus"`
	Tempo        uint8  `yaml:"tempo"`
	Articulation uint8  `yaml:"articulation"`
	Volume       uint8  `yaml:"volume"`
	LogLevel     string `yaml:"log_level"`
	// PreciseTiming busy-waits the end of every delay.
	PreciseTiming bool `yaml:"precise_timing"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Bus:          Bus{Driver: DriverTrace, Baud: serial.DefaultBaud},
		Tempo:        midi.DefaultSetup.Tempo,
		Articulation: midi.DefaultSetup.Articulation,
		Volume:       midi.DefaultSetup.Volume,
		LogLevel:     "info",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error

	switch c.Bus.Driver {
	case DriverTrace, DriverNull:
	case DriverSerial:
		if c.Bus.Port == "" {
			errs = append(errs, errors.New("bus.port is required for the serial driver"))
		}
		if c.Bus.Baud <= 0 {
			errs = append(errs, fmt.Errorf("bus.baud must be positive, got %d", c.Bus.Baud))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown bus.driver %q", c.Bus.Driver))
	}

	if c.Tempo == 0 {
		errs = append(errs, errors.New("tempo must be positive"))
	}
	if c.Volume > 15 {
		errs = append(errs, fmt.Errorf("volume must be 0-15, got %d", c.Volume))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Setup returns the power-on values for the event handler.
func (c Config) Setup() midi.Defaults {
	return midi.Defaults{Tempo: c.Tempo, Articulation: c.Articulation, Volume: c.Volume}
}

// ParseLevel converts a log level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", name)
}
