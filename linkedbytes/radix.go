package linkedbytes

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Text renders the viewed value in the given base, 2 to 36 inclusive.
// Digits above 9 use lowercase letters. It returns ErrInvalidBase for
// a base outside that range.
func (r Ref) Text(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", ErrInvalidBase
	}

	ln := r.digits()
	if ln == 0 {
		return "0", nil
	}

	// Repeated short division of the digit buffer by the base,
	// collecting one output digit per pass. Output arrives least
	// significant first and is reversed at the end.
	vals := make([]byte, ln)
	for i := 0; i < ln; i++ {
		vals[i] = r.digit(i)
	}

	var out []byte
	for len(vals) > 0 {
		var rem uint
		for i := len(vals) - 1; i >= 0; i-- {
			acc := rem<<7 | uint(vals[i])
			vals[i] = byte(acc / uint(base))
			rem = acc % uint(base)
		}

		out = append(out, alphabet[rem])

		for len(vals) > 0 && vals[len(vals)-1] == 0 {
			vals = vals[:len(vals)-1]
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

// String renders the viewed value in decimal. It implements
// fmt.Stringer and is the default textual form.
func (r Ref) String() string {
	s, err := r.Text(10)
	if err != nil {
		// Base 10 is always in range.
		panic(err)
	}

	return s
}
