package bit

import (
	"testing"
)

func TestPeriodSplit(t *testing.T) {
	tests := []struct {
		period       uint16
		coarse, fine uint8
	}{
		{478, 0x01, 0xDE},
		{0x0FFF, 0x0F, 0xFF},
		{0, 0, 0},
		{0xFFFF, 0xFF, 0xFF},
	}

	for _, tt := range tests {
		if got := High(tt.period); got != tt.coarse {
			t.Errorf("High(%d) = %02X; want %02X", tt.period, got, tt.coarse)
		}
		if got := Low(tt.period); got != tt.fine {
			t.Errorf("Low(%d) = %02X; want %02X", tt.period, got, tt.fine)
		}
		if got := Combine(tt.coarse, tt.fine); got != tt.period {
			t.Errorf("Combine(%02X, %02X) = %d; want %d", tt.coarse, tt.fine, got, tt.period)
		}
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value uint16
		put   uint16
		want  uint16
		get   uint16
	}{
		{"tone period MSB", Field{Shift: 5, Width: 7}, 0x001F, 0x7F, 0x0FFF, 0x7F},
		{"tone period LSB keeps high bits", Field{Shift: 0, Width: 5}, 0x0FE0, 0x15, 0x0FF5, 0x15},
		{"envelope high", Field{Shift: 9, Width: 7}, 0x01FF, 0x01, 0x03FF, 0x01},
		{"envelope low truncates", Field{Shift: 0, Width: 2}, 0xFFFC, 0x07, 0xFFFF, 0x03},
		{"single flag", Field{Shift: 4, Width: 1}, 0x0F, 1, 0x1F, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.field.Put(tt.value, tt.put)
			if got != tt.want {
				t.Errorf("Put(%04X, %X) = %04X; want %04X", tt.value, tt.put, got, tt.want)
			}
			if g := tt.field.Get(got); g != tt.get {
				t.Errorf("Get(%04X) = %X; want %X", got, g, tt.get)
			}
		})
	}
}

func TestField8(t *testing.T) {
	noiseB := Field{Shift: 4, Width: 1}

	v := noiseB.Put8(0x00, 1)
	if v != 0x10 {
		t.Fatalf("Put8 = %02X; want 10", v)
	}
	if !noiseB.Flag(v) {
		t.Errorf("Flag(%02X) = false; want true", v)
	}
	if noiseB.Flag(0xEF) {
		t.Errorf("Flag(EF) = true; want false")
	}
}
