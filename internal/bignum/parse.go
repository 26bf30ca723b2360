package bignum

import "fmt"

// Parse constructs an Int from a decimal literal matching [+-]?[0-9]+.
// An empty string, a lone sign or any non-digit character yields
// ErrInvalidLiteral; no partially parsed value is ever produced.
func Parse(s string) (Int, error) {
	if !isIntLiteral(s) {
		return Int{}, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}

	var sign int8 = 1
	start := 0
	switch s[0] {
	case '-':
		sign = -1
		start = 1
	case '+':
		start = 1
	}

	d := make([]uint8, len(s)-start)
	for k := range d {
		d[k] = s[len(s)-1-k] - '0'
	}
	return norm(sign, d), nil
}

// MustParse is like Parse but panics on a malformed literal.
// Intended for compile-time-known constants.
func MustParse(s string) Int {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

func isIntLiteral(s string) bool {
	if len(s) == 0 {
		return false
	}
	start := 0
	if s[0] == '+' || s[0] == '-' {
		start = 1
	}
	if start == len(s) {
		return false
	}
	for k := start; k < len(s); k++ {
		if s[k] < '0' || s[k] > '9' {
			return false
		}
	}
	return true
}
