package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"math"
	"os"
	"path/filepath"
)

const (
	// Tone period = 4 MHz / (32 * Hz).
	toneBase = 4000000.0 / 32

	// Notes C1 through C8 are the only ones kept in the table.
	lowestNote  = 24
	highestNote = 108
)

func main() {
	var (
		out      string
		pkg      string
		concert  float64
		maxValue int
	)
	flag.StringVar(&out, "out", filepath.Join("ymz", "psg", "midi_table.go"), "Path of the generated Go file")
	flag.StringVar(&pkg, "package", "psg", "Package name of the generated file")
	flag.Float64Var(&concert, "a4", 440, "Frequency of A4 (MIDI 69) in Hz")
	flag.IntVar(&maxValue, "max", 0x0FFF, "Largest representable tone period")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString("// Code generated by gen_midi_table; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("// midiPeriods holds the tone period of every MIDI note at a 4 MHz clock,\n")
	buf.WriteString("// rounded to the nearest integer. Notes outside C1-C8 map to period 0.\n")
	buf.WriteString("var midiPeriods = [128]uint16{\n")

	for octave := 0; octave*12 < 128; octave++ {
		buf.WriteString("\t")
		for i := 0; i < 12; i++ {
			note := octave*12 + i
			if note >= 128 {
				break
			}
			fmt.Fprintf(&buf, "%d, ", period(note, concert, maxValue))
		}
		fmt.Fprintf(&buf, "// octave %d\n", octave-1)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: formatting generated source: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(out, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error: writing %s: %v\n", out, err)
		os.Exit(1)
	}
}

func period(note int, concert float64, maxValue int) int {
	if note < lowestNote || note > highestNote {
		return 0
	}
	hz := concert * math.Pow(2, float64(note-69)/12)
	p := int(math.Round(toneBase / hz))
	if p > maxValue {
		return 0
	}
	return p
}
