package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ymz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DriverTrace, cfg.Bus.Driver)
	assert.Equal(t, 115200, cfg.Bus.Baud)
	assert.Equal(t, uint8(120), cfg.Tempo)
	assert.Equal(t, uint8(0), cfg.Articulation)
	assert.Equal(t, uint8(10), cfg.Volume)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
bus:
  driver: serial
  port: /dev/ttyUSB0
  baud: 57600
tempo: 90
articulation: 20
volume: 12
log_level: debug
precise_timing: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, Config{
		Bus:           Bus{Driver: DriverSerial, Port: "/dev/ttyUSB0", Baud: 57600},
		Tempo:         90,
		Articulation:  20,
		Volume:        12,
		LogLevel:      "debug",
		PreciseTiming: true,
	}, cfg)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "tempo: 160\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, uint8(160), cfg.Tempo)
	assert.Equal(t, DriverTrace, cfg.Bus.Driver)
	assert.Equal(t, uint8(10), cfg.Volume)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		message string
	}{
		{"unknown key", "tempo: 90\nspeed: 3\n", "field speed not found"},
		{"bad type", "tempo: fast\n", "failed to parse config"},
		{"tempo overflow", "tempo: 300\n", "failed to parse config"},
		{"zero tempo", "tempo: 0\n", "tempo must be positive"},
		{"loud", "volume: 16\n", "volume must be 0-15"},
		{"driver", "bus: {driver: usb}\n", `unknown bus.driver "usb"`},
		{"serial without port", "bus: {driver: serial}\n", "bus.port is required"},
		{"log level", "log_level: loud\n", `unknown log_level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}

	for name, expected := range tests {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, expected, level, name)
	}
}

func TestSetup(t *testing.T) {
	cfg := Default()
	cfg.Tempo = 100
	cfg.Volume = 7

	d := cfg.Setup()

	assert.Equal(t, uint8(100), d.Tempo)
	assert.Equal(t, uint8(7), d.Volume)
}
