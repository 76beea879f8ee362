package linkedbytes

// AppendUint appends the chain encoding of v to dst and returns the
// extended buffer.
func AppendUint(dst []byte, v uint64) []byte {
	for v > 127 {
		dst = append(dst, byte(v&0x7F)|LinkMask)
		v >>= 7
	}

	return append(dst, byte(v))
}

// EncodeUint returns the chain encoding of v. Zero encodes as the
// single byte 0x00.
func EncodeUint(v uint64) []byte {
	return AppendUint(nil, v)
}

// DecodeUint decodes one chain from the front of data and returns the
// value and the number of bytes consumed. Callers parsing an outer
// format resume at data[n:].
//
// It returns ErrInvalidEncoding if data ends before a terminal digit
// and ErrOverflow if the chain encodes a value wider than 64 bits.
func DecodeUint(data []byte) (v uint64, n int, err error) {
	n, err = scan(data)
	if err != nil {
		return 0, 0, err
	}

	var shift uint
	for _, d := range data[:n] {
		dv := uint64(d & ValueMask)

		if shift >= 64 || dv<<shift>>shift != dv {
			if dv != 0 {
				return 0, 0, ErrOverflow
			}
		} else {
			v |= dv << shift
		}

		shift += 7
	}

	return v, n, nil
}

// scan returns the length of the chain at the front of data: the index
// of the first byte with a clear link flag, plus one.
func scan(data []byte) (n int, err error) {
	for i, d := range data {
		if Byte(d).End() {
			return i + 1, nil
		}
	}

	return 0, ErrInvalidEncoding
}
