// Package lbstring implements Unicode text storage over Linked Bytes
// chains.
//
// A string is the concatenation, in order, of one chain per Unicode
// scalar value: each code point's numeric value is encoded exactly as
// an unsigned chain. Because every chain is self-terminating (the link
// flag marks the last byte of each code point), no surrogate pairs or
// per-character length prefixes are needed, which makes the encoding
// more compact than UTF-8 for most non-ASCII text.
//
//	"Hi!"    -> 0x48 0x69 0x21
//	"¢"      -> 0xA2 0x01     (U+00A2, two digits)
//	"€"      -> 0xAC 0x41     (U+20AC)
//
// A buffer always decomposes into a whole number of complete chains;
// Parse rejects buffers with a trailing partial chain, and rejects any
// chain whose value is not a Unicode scalar value.
package lbstring
