package bignum

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidFormat indicates a decimal string that does not match [+-]?[0-9]+.
	ErrInvalidFormat = errors.New("invalid decimal format")
	// ErrInvalidDigit marks digit accumulation outside [0, 9]. It is always
	// reported as an assertion failure: callers are expected to validate digits.
	ErrInvalidDigit = errors.New("decimal digit out of range")
	// ErrDivisionByZero indicates a scalar division by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrScalarRange indicates a machine integer whose magnitude does not fit in a limb.
	ErrScalarRange = errors.New("scalar does not fit in a limb")
)
