package render

import (
	"fmt"

	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/psg"
	"github.com/valerio/go-ymz/ymz/shadow"
)

// RegisterHeader heads the lines returned by RegisterLines.
const RegisterHeader = "REG  NAME          A   B"

// RegisterLines lists every register of both chips side by side.
func RegisterLines(regs shadow.Registers) []string {
	lines := make([]string, 0, addr.RegisterCount)
	for reg := uint8(0); reg < addr.RegisterCount; reg++ {
		lines = append(lines, fmt.Sprintf("0x%02X %-12s %02X  %02X",
			reg, addr.Name(reg), regs[addr.ChipA][reg], regs[addr.ChipB][reg]))
	}
	return lines
}

// ChannelHeader heads the lines returned by ChannelLines.
const ChannelHeader = "CH CHIP TONE NOISE ENV VOL PERIOD"

// ChannelLines summarizes each channel on one line.
func ChannelLines(states [addr.ChannelCount]psg.ChannelState) []string {
	lines := make([]string, 0, len(states))
	for _, s := range states {
		lines = append(lines, fmt.Sprintf("%2d %-4s %-4s %-5s %-3s %3d %6d",
			s.Channel, s.Chip, flag(s.Tone), flag(s.Noise), flag(s.Envelope), s.Volume, s.Period))
	}
	return lines
}

func flag(on bool) string {
	if on {
		return "on"
	}
	return "-"
}
