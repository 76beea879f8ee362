package lbstring

import (
	"errors"
	"strings"
	"unicode/utf16"

	"github.com/calebcase/bigbit/linkedbytes"
)

// String is an owned Unicode string stored as one chain per code
// point. The zero value is the empty string.
type String struct {
	b []byte
}

// New encodes native text. Invalid UTF-8 sequences are replaced with
// U+FFFD, following the replacement behavior of native string
// iteration.
func New(text string) String {
	var s String
	for _, r := range text {
		s.b = linkedbytes.AppendUint(s.b, uint64(r))
	}

	return s
}

// Parse validates data as a whole number of chains, each one a Unicode
// scalar value, and takes an owned, canonical copy. Non-canonical
// input chains are re-encoded in canonical form.
//
// It returns linkedbytes.ErrInvalidEncoding if the buffer ends inside
// a chain and ErrInvalidCodepoint if any chain is not a scalar value.
func Parse(data []byte) (String, error) {
	var s String

	rest := data
	for len(rest) > 0 {
		v, n, err := linkedbytes.DecodeUint(rest)
		if errors.Is(err, linkedbytes.ErrOverflow) {
			// Wider than 64 bits is far beyond any scalar value.
			return String{}, ErrInvalidCodepoint
		}
		if err != nil {
			return String{}, err
		}
		if !valid(v) {
			return String{}, ErrInvalidCodepoint
		}

		s.b = linkedbytes.AppendUint(s.b, v)
		rest = rest[n:]
	}

	return s, nil
}

// valid reports whether v is a Unicode scalar value.
func valid(v uint64) bool {
	if v > 0x10FFFF {
		return false
	}

	return !utf16.IsSurrogate(rune(v))
}

// AppendRune appends one code point to the string.
func (s *String) AppendRune(r rune) {
	s.b = linkedbytes.AppendUint(s.b, uint64(r))
}

// Bytes returns a copy of the encoded buffer.
func (s String) Bytes() []byte {
	return append([]byte(nil), s.b...)
}

// Runes returns the code points in string order.
func (s String) Runes() []rune {
	var out []rune

	rest := s.b
	for len(rest) > 0 {
		// Cannot fail: the buffer was validated at construction.
		v, n, err := linkedbytes.DecodeUint(rest)
		if err != nil {
			panic(err)
		}

		out = append(out, rune(v))
		rest = rest[n:]
	}

	return out
}

// Len returns the number of code points stored. It walks the buffer.
func (s String) Len() int {
	count := 0
	for _, b := range s.b {
		if linkedbytes.Byte(b).End() {
			count++
		}
	}

	return count
}

// IsEmpty returns true if the string holds no code points.
func (s String) IsEmpty() bool {
	return len(s.b) == 0
}

// Equal returns true if both strings hold the same code points. Chains
// are canonical per code point, so buffer equality is string equality.
func (s String) Equal(o String) bool {
	return string(s.b) == string(o.b)
}

// String converts back to native text. It implements fmt.Stringer.
func (s String) String() string {
	var sb strings.Builder
	for _, r := range s.Runes() {
		sb.WriteRune(r)
	}

	return sb.String()
}
