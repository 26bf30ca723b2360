package bignum

import (
	"fmt"
	"math/rand/v2"
)

// DigitsAny asks Random to draw the digit count itself.
const DigitsAny = -1

// DefaultMaxRandomDigits bounds the drawn digit count when none is
// requested. The value mirrors the integer-to-string conversion limit
// of CPython (sys.int_info.default_max_str_digits); callers with other
// needs should use RandomMax with an explicit bound.
const DefaultMaxRandomDigits = 4300

// Random returns a non-negative Int with exactly the given number of
// decimal digits, or with a digit count drawn from
// [0, DefaultMaxRandomDigits] when digits is DigitsAny. Any other
// negative count is ErrInvalidDigits.
//
// The rnd source is consumed sequentially; concurrent callers need a
// source of their own or external synchronization.
func Random(rnd *rand.Rand, digits int) (Int, error) {
	if digits < DigitsAny {
		return Int{}, fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
	}
	if digits == DigitsAny {
		return RandomMax(rnd, DefaultMaxRandomDigits)
	}
	return randomDigits(rnd, digits), nil
}

// RandomMax returns a non-negative Int whose digit count is drawn
// uniformly from [0, maxDigits].
func RandomMax(rnd *rand.Rand, maxDigits int) (Int, error) {
	if maxDigits < 0 {
		return Int{}, fmt.Errorf("%w: bound %d", ErrInvalidDigits, maxDigits)
	}
	return randomDigits(rnd, rnd.IntN(maxDigits+1)), nil
}

func randomDigits(rnd *rand.Rand, n int) Int {
	if n == 0 {
		return Int{}
	}
	d := make([]uint8, n)
	for k := range d {
		d[k] = uint8(rnd.IntN(10)) //nolint:gosec // G115: value is in [0,9].
	}
	// Re-roll a zero most-significant digit so the value really has n
	// digits.
	if d[n-1] == 0 {
		d[n-1] = uint8(1 + rnd.IntN(9)) //nolint:gosec // G115: value is in [1,9].
	}
	return Int{sign: 1, digits: d}
}
