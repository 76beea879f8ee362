package linkedbytes

// Add returns a + b.
func Add(a, b Ref) Num {
	n := a.Num()
	n.Add(b)

	return n
}

// Add adds rhs to n in place. The buffer grows by at most one digit and
// is reused otherwise. rhs may view n's own buffer.
func (n *Num) Add(rhs Ref) {
	ln := rhs.digits()

	for len(n.b) < ln {
		n.b = append(n.b, 0)
	}

	var carry byte
	for i := 0; i < len(n.b); i++ {
		sum := n.digit(i) + rhs.digit(i) + carry
		n.b[i] = sum & ValueMask
		carry = sum >> 7
	}
	if carry > 0 {
		n.b = append(n.b, carry)
	}

	n.b = fix(n.b)
}

// Sub returns a - b. It returns ErrUnderflow if a < b.
func Sub(a, b Ref) (Num, error) {
	n := a.Num()
	if err := n.Sub(b); err != nil {
		return Num{}, err
	}

	return n, nil
}

// Sub subtracts rhs from n in place. It returns ErrUnderflow, leaving n
// unchanged, if n < rhs. The buffer shrinks when high digits cancel.
func (n *Num) Sub(rhs Ref) error {
	if n.Cmp(rhs) < 0 {
		return ErrUnderflow
	}

	var borrow byte
	for i := 0; i < len(n.b); i++ {
		diff := int(n.digit(i)) - int(rhs.digit(i)) - int(borrow)

		borrow = 0
		if diff < 0 {
			diff += 128
			borrow = 1
		}

		n.b[i] = byte(diff)
	}

	// n >= rhs, so the final borrow is always consumed.
	n.b = fix(n.b)

	return nil
}

// Inc increments n by one.
func (n *Num) Inc() {
	for i := 0; i < len(n.b); i++ {
		v := n.digit(i) + 1
		n.b[i] = (v & ValueMask) | LinkMask
		if v <= 127 {
			n.b = fix(n.b)
			return
		}
	}

	n.b = append(n.b, 1)
	n.b = fix(n.b)
}
