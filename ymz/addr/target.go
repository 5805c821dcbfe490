package addr

// Chip identifies one of the two physical chips.
type Chip uint8

const (
	ChipA Chip = iota
	ChipB

	ChipCount = 2
)

func (c Chip) String() string {
	switch c {
	case ChipA:
		return "A"
	case ChipB:
		return "B"
	default:
		return "?"
	}
}

// Target selects which chip-select lines a bus write pulses.
type Target uint8

const (
	TargetA Target = 1 << iota
	TargetB

	TargetBoth = TargetA | TargetB
)

// TargetOf returns the single-chip target for c.
func TargetOf(c Chip) Target {
	if c == ChipB {
		return TargetB
	}
	return TargetA
}

// Includes reports whether t selects chip c.
func (t Target) Includes(c Chip) bool {
	return t&TargetOf(c) != 0
}

func (t Target) String() string {
	switch t {
	case TargetA:
		return "A"
	case TargetB:
		return "B"
	case TargetBoth:
		return "AB"
	default:
		return "-"
	}
}

// ChannelCount is the number of virtual channels across both chips.
const ChannelCount = 6

// ChannelsPerChip is the number of tone channels in one chip.
const ChannelsPerChip = 3

// ChipOf maps a virtual channel (0-5) to its chip and local channel (0-2).
func ChipOf(channel uint8) (Chip, uint8) {
	if channel >= ChannelsPerChip {
		return ChipB, channel - ChannelsPerChip
	}
	return ChipA, channel
}
