package bignum

import "errors"

var (
	// ErrInvalidLiteral indicates a malformed integer literal.
	ErrInvalidLiteral = errors.New("invalid integer literal")
	// ErrDivByZero indicates an attempt to divide by zero.
	ErrDivByZero = errors.New("division by zero")
	// ErrNegativeFactorial indicates a factorial of a negative integer.
	ErrNegativeFactorial = errors.New("negative integer has no factorial")
	// ErrMathDomain indicates an out-of-domain input to sqrt, log or pow.
	ErrMathDomain = errors.New("math domain error")
	// ErrInvalidDigits indicates an invalid digit count for random generation.
	ErrInvalidDigits = errors.New("invalid digit count")
)
