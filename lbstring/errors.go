package lbstring

import "github.com/zeebo/errs"

// Error is the error class for this package.
var Error = errs.Class("lbstring")

// ErrInvalidCodepoint indicates a decoded chain whose value is not a
// Unicode scalar value: above 0x10FFFF or in the surrogate range
// 0xD800 to 0xDFFF.
var ErrInvalidCodepoint = Error.New("not a unicode scalar value")
