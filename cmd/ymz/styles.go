package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/valerio/go-ymz/ymz/addr"
	"github.com/valerio/go-ymz/ymz/disasm"
	"github.com/valerio/go-ymz/ymz/shadow"
)

type styles struct {
	title  lipgloss.Style
	offset lipgloss.Style
	name   lipgloss.Style
	value  lipgloss.Style
	err    lipgloss.Style
	box    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
		offset: lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)),
		name:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		value:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

// registerTable renders both register files side by side.
func (s styles) registerTable(regs shadow.Registers) string {
	rows := []string{
		s.title.Render(fmt.Sprintf("%-4s %-12s %-3s %-3s", "REG", "NAME", "A", "B")),
	}
	for reg := uint8(0); reg < addr.RegisterCount; reg++ {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			s.offset.Render(fmt.Sprintf("0x%02X ", reg)),
			s.name.Render(fmt.Sprintf("%-12s ", addr.Name(reg))),
			s.value.Render(fmt.Sprintf("%02X  %02X", regs[addr.ChipA][reg], regs[addr.ChipB][reg])),
		))
	}
	return s.box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// listing renders a disassembly. A decode error is shown after the last
// decoded line.
func (s styles) listing(lines []disasm.Line, decodeErr error) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.offset.Render(fmt.Sprintf("%04X  ", l.Offset)))
		mnemonic, operands, _ := strings.Cut(l.Instruction, " ")
		sb.WriteString(s.name.Render(mnemonic))
		if operands != "" {
			sb.WriteString(" " + s.value.Render(operands))
		}
	}
	if decodeErr != nil {
		if len(lines) > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.err.Render(decodeErr.Error()))
	}
	return sb.String()
}
