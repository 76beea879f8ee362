// Package linkedbytes implements the Linked Bytes chain format and an
// arbitrary-precision arithmetic engine over it.
//
// Chain
//
// A chain is a sequence of one or more bytes encoding a single unsigned
// integer. Each byte is one base-128 digit: the most significant bit is
// a link flag and the low 7 bits are the digit value. Digits are stored
// least significant first. A set link flag means another digit follows;
// the first byte with the flag clear terminates the chain.
//
//	| 7 | 6 | 5 | 4 | 3 | 2 | 1 | 0 ||                             |
//	|---|---------------------------||-----------------------------|
//	| L |        digit value        || L=1 linked, a digit follows |
//	|   |                           || L=0 end, chain terminates   |
//
// Examples:
//
//	0         -> 0x00
//	127       -> 0x7F
//	128       -> 0x80 0x01
//	1000000   -> 0xC0 0x84 0x3D
//
// Canonical form has no superfluous zero digit at the most significant
// end; the single byte 0x00 is the canonical zero. Every constructor
// and every arithmetic result in this package produces canonical
// chains. Decoders tolerate non-canonical input.
//
// Num and Ref
//
// Num owns its buffer and is the arithmetic accumulator; its in-place
// operations grow and shrink the buffer as the magnitude changes. Ref
// is a read-only view of a chain embedded in a buffer owned elsewhere
// (a Num, or an outer format such as Extended Head Byte); arithmetic on
// a Ref always produces a new Num. Both decoders report the number of
// bytes consumed so an outer parser can resume after an embedded chain.
package linkedbytes
