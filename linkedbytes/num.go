package linkedbytes

// Num is an owned chain: a growable buffer holding one canonically
// encoded unsigned integer. The zero value is the number zero and is
// ready to use.
//
// A Num is the arithmetic accumulator: the in-place operations mutate
// its buffer directly, reusing capacity when the result does not grow.
// It must not be mutated while a Ref borrowed from it is in use.
type Num struct {
	b []byte
}

// NewNum decodes one chain from the front of data into an owned Num and
// returns the number of bytes consumed. The chain is copied and
// canonicalized; consumed counts the input bytes, including any
// non-canonical padding.
func NewNum(data []byte) (n Num, consumed int, err error) {
	consumed, err = scan(data)
	if err != nil {
		return Num{}, 0, err
	}

	n.b = fix(append([]byte(nil), data[:consumed]...))

	return n, consumed, nil
}

// Ref returns a read-only view of the chain. The view is valid only
// until the Num is next mutated.
func (n Num) Ref() Ref {
	return Ref(n.b)
}

// Bytes returns a copy of the encoded chain. Zero encodes as the single
// byte 0x00.
func (n Num) Bytes() []byte {
	if len(n.b) == 0 {
		return []byte{0x00}
	}

	return append([]byte(nil), n.b...)
}

// Clone returns a Num with its own copy of the buffer.
func (n Num) Clone() Num {
	return Num{b: append([]byte(nil), n.b...)}
}

// IsZero returns true if the number is zero.
func (n Num) IsZero() bool {
	return len(n.b) == 0
}

// Digits returns the number of digits in the canonical chain. Zero has
// one digit.
func (n Num) Digits() int {
	if len(n.b) == 0 {
		return 1
	}

	return len(n.b)
}

// Cmp compares two numbers. It returns -1, 0, or +1.
func (n Num) Cmp(rhs Ref) int {
	return n.Ref().Cmp(rhs)
}

// Uint64 returns the value as a uint64. It returns ErrOverflow if the
// value does not fit.
func (n Num) Uint64() (uint64, error) {
	return n.Ref().Uint64()
}

// Text renders the number in the given base, 2 to 36.
func (n Num) Text(base int) (string, error) {
	return n.Ref().Text(base)
}

// String renders the number in decimal.
func (n Num) String() string {
	return n.Ref().String()
}

// digit returns the value of the i'th digit, or 0 past the end.
func (n Num) digit(i int) byte {
	if i >= len(n.b) {
		return 0
	}

	return n.b[i] & ValueMask
}

// fix restores the chain invariants on b in place and returns the
// canonical slice: high zero digits are trimmed (zero becomes the
// empty slice) and the link flag is set on every digit but the last.
func fix(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1]&ValueMask == 0 {
		end--
	}
	b = b[:end]

	for i := range b {
		b[i] |= LinkMask
	}
	if len(b) > 0 {
		b[len(b)-1] &= ValueMask
	}

	return b
}

// fromDigits builds a canonical Num from bare digit values, least
// significant first. It takes ownership of vals.
func fromDigits(vals []byte) Num {
	return Num{b: fix(vals)}
}
