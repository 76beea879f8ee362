package linkedbytes

// Ref is a read-only view of one chain inside a buffer owned elsewhere:
// a Num, or an outer format embedding a chain in a larger layout. A Ref
// never mutates the bytes it views; operations that would mutate return
// a new Num instead.
//
// A Ref is valid only as long as the buffer it views: it must not be
// used after the owning Num is mutated or the outer buffer is released.
//
// Unlike a Num, a Ref may view a non-canonical chain (one with
// superfluous high zero digits). All observers account for that.
type Ref []byte

// NewRef returns a view of the chain at the front of data, without
// copying, and the number of bytes it occupies. Callers parsing an
// outer format resume at data[consumed:].
func NewRef(data []byte) (r Ref, consumed int, err error) {
	consumed, err = scan(data)
	if err != nil {
		return nil, 0, err
	}

	return Ref(data[:consumed]), consumed, nil
}

// Num copies the viewed chain into an owned, canonical Num.
func (r Ref) Num() Num {
	return Num{b: fix(append([]byte(nil), r...))}
}

// IsZero returns true if the viewed value is zero.
func (r Ref) IsZero() bool {
	return r.digits() == 0
}

// Digits returns the number of digits in the canonical form of the
// viewed value. Zero has one digit.
func (r Ref) Digits() int {
	if d := r.digits(); d > 0 {
		return d
	}

	return 1
}

// digits returns the canonical digit count with zero mapped to 0,
// ignoring any non-canonical high zero digits.
func (r Ref) digits() int {
	n := len(r)
	for n > 0 && r[n-1]&ValueMask == 0 {
		n--
	}

	return n
}

// digit returns the value of the i'th digit, or 0 past the end.
func (r Ref) digit(i int) byte {
	if i >= len(r) {
		return 0
	}

	return r[i] & ValueMask
}

// Cmp compares the viewed values numerically and returns -1, 0, or +1.
// Non-canonical padding on either side does not affect the result.
func (r Ref) Cmp(rhs Ref) int {
	ln, rn := r.digits(), rhs.digits()

	switch {
	case ln < rn:
		return -1
	case ln > rn:
		return 1
	}

	for i := ln - 1; i >= 0; i-- {
		lv, rv := r.digit(i), rhs.digit(i)

		switch {
		case lv < rv:
			return -1
		case lv > rv:
			return 1
		}
	}

	return 0
}

// Uint64 returns the viewed value as a uint64. It returns ErrOverflow
// if the value does not fit.
func (r Ref) Uint64() (uint64, error) {
	v, _, err := DecodeUint(padded(r))

	return v, err
}

// padded returns r as a decodable chain: the canonical zero for an
// empty view, r itself otherwise.
func padded(r Ref) []byte {
	if len(r) == 0 {
		return []byte{0x00}
	}

	return r
}
