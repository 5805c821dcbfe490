// Package bit packs register values. Tone and envelope periods span a fine
// and a coarse register; control values land in arbitrary bit runs.
package bit

// Combine joins a coarse and a fine register into one period.
func Combine(coarse, fine uint8) uint16 {
	return uint16(coarse)<<8 | uint16(fine)
}

// Low returns the fine register part of a period.
func Low(period uint16) uint8 {
	return uint8(period)
}

// High returns the coarse register part of a period, before masking.
func High(period uint16) uint8 {
	return uint8(period >> 8)
}
