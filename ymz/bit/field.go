package bit

// Field describes a run of Width bits starting at bit Shift inside a value.
// Getters and setters of the same hardware flag share one Field so the bit
// they address can never drift apart.
type Field struct {
	Shift uint8
	Width uint8
}

// Mask returns the unshifted mask covering Width bits.
func (f Field) Mask() uint16 {
	return uint16(1)<<f.Width - 1
}

// Get extracts the field from value.
func (f Field) Get(value uint16) uint16 {
	return (value >> f.Shift) & f.Mask()
}

// Put returns value with the field replaced by x. Bits of x beyond the field
// width are discarded.
func (f Field) Put(value, x uint16) uint16 {
	m := f.Mask() << f.Shift
	return (value &^ m) | ((x << f.Shift) & m)
}

// Get8 is Get for 8 bit registers.
func (f Field) Get8(value uint8) uint8 {
	return uint8(f.Get(uint16(value)))
}

// Put8 is Put for 8 bit registers.
func (f Field) Put8(value, x uint8) uint8 {
	return uint8(f.Put(uint16(value), uint16(x)))
}

// Flag reports whether a single bit field is set in value.
func (f Field) Flag(value uint8) bool {
	return f.Get8(value) != 0
}
