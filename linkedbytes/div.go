package linkedbytes

// DivRem returns the quotient and remainder of a / b in one pass. It
// returns ErrDivisionByZero if b is zero.
//
// The quotient and remainder satisfy a == q*b + r and r < b.
func DivRem(a, b Ref) (q, r Num, err error) {
	if b.IsZero() {
		return Num{}, Num{}, ErrDivisionByZero
	}

	la := a.digits()
	qvals := make([]byte, la)

	// Long division: walk the dividend from its most significant
	// digit, shifting each into the running remainder and extracting
	// one quotient digit by trial subtraction. The remainder stays
	// below b, so each trial loop runs at most 127 times.
	for i := la - 1; i >= 0; i-- {
		r.shiftIn(a.digit(i))

		var d byte
		for r.Cmp(b) >= 0 {
			// Cannot fail: r >= b was just checked.
			_ = r.Sub(b)
			d++
		}
		qvals[i] = d
	}

	return fromDigits(qvals), r, nil
}

// shiftIn multiplies n by 128 and adds d: the digits move up one place
// and d becomes the least significant.
func (n *Num) shiftIn(d byte) {
	if len(n.b) == 0 {
		if d == 0 {
			return
		}

		n.b = append(n.b, d)
		return
	}

	n.b = append(n.b, 0)
	copy(n.b[1:], n.b)
	n.b[0] = d
	n.b = fix(n.b)
}

// Div returns the quotient of a / b.
func Div(a, b Ref) (Num, error) {
	q, _, err := DivRem(a, b)

	return q, err
}

// Rem returns the remainder of a / b.
func Rem(a, b Ref) (Num, error) {
	_, r, err := DivRem(a, b)

	return r, err
}

// Div replaces n with the quotient of n / rhs.
func (n *Num) Div(rhs Ref) error {
	q, _, err := DivRem(n.Ref(), rhs)
	if err != nil {
		return err
	}
	*n = q

	return nil
}

// Rem replaces n with the remainder of n / rhs.
func (n *Num) Rem(rhs Ref) error {
	_, r, err := DivRem(n.Ref(), rhs)
	if err != nil {
		return err
	}
	*n = r

	return nil
}

// Log returns the integer logarithm of a in the given base: the
// largest k such that base**k <= a. It is computed by repeated
// division, so it is exact for any operand size.
//
// It returns ErrInvalidBase if base < 2 and ErrUnderflow if a is zero,
// since no integer k satisfies base**k <= 0.
func Log(a, base Ref) (uint64, error) {
	two := FromUint8(2)
	if base.Cmp(two.Ref()) < 0 {
		return 0, ErrInvalidBase
	}
	if a.IsZero() {
		return 0, ErrUnderflow
	}

	var k uint64

	n := a.Num()
	for n.Cmp(base) >= 0 {
		q, _, err := DivRem(n.Ref(), base)
		if err != nil {
			return 0, err
		}

		n = q
		k++
	}

	return k, nil
}

// GCD returns the greatest common divisor of a and b by the Euclidean
// algorithm. GCD(0, 0) is zero.
func GCD(a, b Ref) Num {
	x, y := a.Num(), b.Num()

	for !y.IsZero() {
		// Cannot fail: y is nonzero.
		r, _ := Rem(x.Ref(), y.Ref())
		x, y = y, r
	}

	return x
}
