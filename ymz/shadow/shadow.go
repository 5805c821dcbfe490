// Package shadow mirrors the register files of both chips. The chips cannot
// be read back, so every logical read comes from here.
package shadow

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/bus"
)

// RegisterFile is the content of one chip.
type RegisterFile [addr.RegisterCount]uint8

// Registers holds the register files of both chips, indexed by addr.Chip.
type Registers [addr.ChipCount]RegisterFile

// Shadow sends writes to the bus and remembers what was sent.
// The mirror always equals the last value transmitted for each (chip, reg).
type Shadow struct {
	drv  bus.Driver
	regs Registers
}

// New returns a zeroed shadow writing through drv.
func New(drv bus.Driver) *Shadow {
	return &Shadow{drv: drv}
}

// Get returns the last value written to reg on chip.
func (s *Shadow) Get(chip addr.Chip, reg uint8) uint8 {
	if int(chip) >= addr.ChipCount || !addr.Valid(reg) {
		return 0
	}
	return s.regs[chip][reg]
}

// Set masks value to the register's valid bits, transmits it to target and
// updates the mirror of every selected chip.
func (s *Shadow) Set(target addr.Target, reg, value uint8) {
	if !addr.Valid(reg) {
		slog.Warn("Ignoring write to unknown register", "reg", fmt.Sprintf("0x%02X", reg))
		return
	}
	if target&addr.TargetBoth == 0 {
		slog.Warn("Ignoring write without chip select", "reg", addr.Name(reg))
		return
	}

	value &= addr.Mask(reg)
	s.drv.Write(target, reg, value)

	for chip := addr.ChipA; chip < addr.ChipCount; chip++ {
		if target.Includes(chip) {
			s.regs[chip][reg] = value
		}
	}
}

// Snapshot returns a copy of both register files.
func (s *Shadow) Snapshot() Registers {
	return s.regs
}
