package linkedbytes

// Mul returns a * b by schoolbook long multiplication: every pair of
// digits forms a 14-bit partial product accumulated at its shifted
// position, followed by one carry pass.
func Mul(a, b Ref) Num {
	la, lb := a.digits(), b.digits()
	if la == 0 || lb == 0 {
		return Num{}
	}

	acc := make([]uint64, la+lb)
	for i := 0; i < la; i++ {
		av := uint64(a.digit(i))
		if av == 0 {
			continue
		}

		for j := 0; j < lb; j++ {
			acc[i+j] += av * uint64(b.digit(j))
		}
	}

	vals := make([]byte, len(acc))

	var carry uint64
	for i, v := range acc {
		v += carry
		vals[i] = byte(v & 0x7F)
		carry = v >> 7
	}
	for carry > 0 {
		vals = append(vals, byte(carry&0x7F))
		carry >>= 7
	}

	return fromDigits(vals)
}

// Mul multiplies n by rhs in place. rhs may view n's own buffer.
func (n *Num) Mul(rhs Ref) {
	*n = Mul(n.Ref(), rhs)
}
