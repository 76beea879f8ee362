// Package bigbit implements the Linked Bytes layer of the BigBit binary
// standard: compact byte encodings for arbitrarily large numbers and
// Unicode text.
//
// BigBit defines three layered formats:
//
//	Head Byte (HB)           fixed-capacity signed/decimal numbers
//	Extended Head Byte (EHB) arbitrary-precision extension of HB
//	Linked Bytes (LB)        arbitrary-precision unsigned integers
//
// This module implements the LB core: the chain codec, an
// arbitrary-precision arithmetic engine that operates directly on
// chain-encoded operands, conversions to and from fixed-width integers,
// arbitrary-radix text rendering, and a Unicode string encoding built
// from the same chains. HB and EHB layer on top of LB (they embed LB
// chains for exponent and length fields) and are not part of this
// module; the boundary they need is the consumed-byte count returned by
// the LB decoders, which lets an outer parser resume reading its own
// buffer after an embedded chain.
//
// Numeric work lives in package linkedbytes, text in package lbstring.
//
// The library is purely computational: no I/O, no logging, no
// goroutines. The only resource it manages is the byte buffer backing
// each number.
package bigbit
