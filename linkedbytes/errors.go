package linkedbytes

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("linkedbytes")

var (
	// ErrInvalidEncoding indicates that a buffer ended before a
	// terminal digit was found.
	ErrInvalidEncoding = Error.New("chain has no terminal digit")

	// ErrDivisionByZero indicates a zero divisor.
	ErrDivisionByZero = Error.New("division by zero")

	// ErrUnderflow indicates a subtraction whose minuend is smaller
	// than its subtrahend, or another operation whose result would
	// fall below zero.
	ErrUnderflow = Error.New("underflow")

	// ErrOverflow indicates a value too large for the requested
	// fixed-width type.
	ErrOverflow = Error.New("overflow")

	// ErrInvalidBase indicates a radix or logarithm base outside the
	// supported range.
	ErrInvalidBase = Error.New("base out of range")
)
