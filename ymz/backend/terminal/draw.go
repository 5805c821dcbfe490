package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-ymz/ymz/backend/terminal/render"
)

const helpText = " z..m q..u play  [ ] octave  SPACE mute  BKSP reset  L latch  +/- logs  ESC quit "

func (t *Backend) draw() {
	termWidth, termHeight := t.screen.Size()
	t.screen.Clear()

	if termWidth < minTermWidth || termHeight < minTermHeight {
		style := tcell.StyleDefault.Foreground(tcell.ColorRed)
		msg := fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight)
		t.drawText(0, termHeight/2, termWidth, msg, style)
		return
	}

	borderStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver).Bold(true)
	valueStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)

	dividerX := panelWidth + 1
	for y := 0; y < termHeight-1; y++ {
		t.screen.SetContent(dividerX, y, '│', nil, borderStyle)
	}
	for x := 0; x < dividerX; x++ {
		t.screen.SetContent(x, channelY-1, '─', nil, borderStyle)
	}
	t.screen.SetContent(dividerX, channelY-1, '┤', nil, borderStyle)

	t.drawText(1, 0, dividerX-1, t.status(), titleStyle)
	t.drawText(1, registerY, dividerX-1, render.RegisterHeader, headerStyle)
	for i, line := range render.RegisterLines(t.inst.Registers()) {
		t.drawText(1, registerY+1+i, dividerX-1, line, valueStyle)
	}

	t.drawText(1, channelY, dividerX-1, render.ChannelHeader, headerStyle)
	for i, line := range render.ChannelLines(t.inst.States()) {
		t.drawText(1, channelY+1+i, dividerX-1, line, valueStyle)
	}

	logsX := dividerX + 2
	title := fmt.Sprintf(" Logs [%s] (-/+ filter) ", render.LevelName(t.logLevel))
	t.drawText(logsX, 0, termWidth-logsX, title, titleStyle)
	t.drawLogs(logsX, 1, termWidth-logsX, termHeight-2)

	t.drawText(0, termHeight-1, termWidth, helpText, borderStyle)
}

func (t *Backend) status() string {
	latch := "off"
	if t.synth.Latched() {
		latch = "on"
	}
	return fmt.Sprintf("Tempo %d  Artic %dms  Oct %d  Latch %s",
		t.inst.Tempo(), t.inst.Articulation(), t.octave, latch)
}

func (t *Backend) drawLogs(startX, startY, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	debugStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	infoStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	warnStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	errStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	for i, entry := range t.logBuffer.GetRecent(height, t.logLevel) {
		style := infoStyle
		switch entry.Level {
		case slog.LevelDebug:
			style = debugStyle
		case slog.LevelWarn:
			style = warnStyle
		case slog.LevelError:
			style = errStyle
		}

		text := render.FormatLogEntry(entry)
		if runes := []rune(text); len(runes) > width && width > 3 {
			text = string(runes[:width-3]) + "..."
		}
		t.drawText(startX, startY+i, width, text, style)
	}
}

// drawText writes text from (x, y), cut at width cells.
func (t *Backend) drawText(x, y, width int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		if i >= width {
			return
		}
		t.screen.SetContent(x+i, y, ch, nil, style)
		i++
	}
}
