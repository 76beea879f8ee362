package linkedbytes

import "math"

// FromUint64 returns the Num for v. Construction from a fixed-width
// integer is exact and never fails.
func FromUint64(v uint64) Num {
	if v == 0 {
		return Num{}
	}

	return Num{b: fix(AppendUint(nil, v))}
}

// FromUint32 returns the Num for v.
func FromUint32(v uint32) Num {
	return FromUint64(uint64(v))
}

// FromUint16 returns the Num for v.
func FromUint16(v uint16) Num {
	return FromUint64(uint64(v))
}

// FromUint8 returns the Num for v.
func FromUint8(v uint8) Num {
	return FromUint64(uint64(v))
}

// FromUint returns the Num for v.
func FromUint(v uint) Num {
	return FromUint64(uint64(v))
}

// Uint32 returns the viewed value as a uint32. It returns ErrOverflow
// if the value does not fit.
func (r Ref) Uint32() (uint32, error) {
	return r.uintN(math.MaxUint32)
}

// Uint16 returns the viewed value as a uint16. It returns ErrOverflow
// if the value does not fit.
func (r Ref) Uint16() (uint16, error) {
	v, err := r.uintN(math.MaxUint16)

	return uint16(v), err
}

// Uint8 returns the viewed value as a uint8. It returns ErrOverflow if
// the value does not fit.
func (r Ref) Uint8() (uint8, error) {
	v, err := r.uintN(math.MaxUint8)

	return uint8(v), err
}

func (r Ref) uintN(max uint32) (uint32, error) {
	v, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	if v > uint64(max) {
		return 0, ErrOverflow
	}

	return uint32(v), nil
}

// Uint32 returns the value as a uint32. It returns ErrOverflow if the
// value does not fit.
func (n Num) Uint32() (uint32, error) {
	return n.Ref().Uint32()
}

// Uint16 returns the value as a uint16. It returns ErrOverflow if the
// value does not fit.
func (n Num) Uint16() (uint16, error) {
	return n.Ref().Uint16()
}

// Uint8 returns the value as a uint8. It returns ErrOverflow if the
// value does not fit.
func (n Num) Uint8() (uint8, error) {
	return n.Ref().Uint8()
}
