package linkedbytes

// Byte is a single chain digit: a link flag in the most significant bit
// and a base-128 digit value in the low 7 bits.
type Byte byte

// Digit Masks
const (
	LinkMask  byte = 0b_1000_0000
	ValueMask byte = 0b_0111_1111
)

// Linked returns true if another digit follows this one.
func (b Byte) Linked() bool {
	return byte(b)&LinkMask != 0
}

// End returns true if this digit terminates its chain.
func (b Byte) End() bool {
	return byte(b)&LinkMask == 0
}

// Value returns the digit value, in the range 0 to 127.
func (b Byte) Value() byte {
	return byte(b) & ValueMask
}

// AsLinked returns the digit with the link flag set.
func (b Byte) AsLinked() Byte {
	return b | Byte(LinkMask)
}

// AsEnd returns the digit with the link flag cleared.
func (b Byte) AsEnd() Byte {
	return b & Byte(ValueMask)
}
