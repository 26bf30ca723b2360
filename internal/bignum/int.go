package bignum

// Int represents a big signed decimal integer.
type Int struct {
	// sign is +1, -1 or 0.
	sign int8
	// digits are base-10 little-endian magnitude (digits[0] is least significant).
	//
	// Canonical zero is represented as sign=0 and nil/empty digits; the
	// most significant stored digit is never zero.
	digits []uint8
}

// Zero returns a zero Int.
func Zero() Int { return Int{} }

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	var sign int8 = 1
	u := uint64(v)
	if v < 0 {
		sign = -1
		u = uint64(-(v + 1)) //nolint:gosec // G115: -(v+1) is non-negative and fits in uint64 here.
		u++
	}
	var d []uint8
	for u > 0 {
		d = append(d, uint8(u%10))
		u /= 10
	}
	return Int{sign: sign, digits: d}
}

// Sign returns +1 for positive, -1 for negative and 0 for zero.
func (i Int) Sign() int { return int(i.sign) }

// IsZero reports whether the integer is zero.
func (i Int) IsZero() bool { return i.sign == 0 }

// IsPositive reports whether the integer is greater than zero.
func (i Int) IsPositive() bool { return i.sign == 1 }

// IsNegative reports whether the integer is less than zero.
func (i Int) IsNegative() bool { return i.sign == -1 }

// IsEven reports whether the integer is even.
func (i Int) IsEven() bool {
	return i.sign == 0 || i.digits[0]&1 == 0
}

// IsOdd reports whether the integer is odd.
func (i Int) IsOdd() bool {
	return i.sign != 0 && i.digits[0]&1 == 1
}

// Digits returns the number of decimal digits in the magnitude.
// The zero value has zero digits.
func (i Int) Digits() int { return len(i.digits) }

// Neg returns the negated value.
func (i Int) Neg() Int {
	return Int{sign: -i.sign, digits: i.digits}
}

// Abs returns the absolute value.
func (i Int) Abs() Int {
	if i.sign == -1 {
		return i.Neg()
	}
	return i
}

// Cmp compares two Int values and returns -1, 0 or 1.
func (i Int) Cmp(j Int) int {
	if i.sign != j.sign {
		switch {
		case i.sign > j.sign:
			return 1
		default:
			return -1
		}
	}

	// Signs are equal; a larger magnitude means a larger value for
	// positive integers and a smaller one for negative integers.
	cmp := cmpMag(i.digits, j.digits)
	if i.sign == -1 {
		return -cmp
	}
	return cmp
}

// Equal reports whether two Int values are equal.
func (i Int) Equal(j Int) bool { return i.Cmp(j) == 0 }

// Int64 converts Int to int64 if possible. The second result is false
// when the value does not fit; no truncated value is produced.
func (i Int) Int64() (int64, bool) {
	const maxMag = ^uint64(0) >> 1 // 1<<63 - 1
	var mag uint64
	for k := len(i.digits) - 1; k >= 0; k-- {
		d := uint64(i.digits[k])
		if mag > (^uint64(0)-d)/10 {
			return 0, false
		}
		mag = mag*10 + d
	}
	if i.sign != -1 {
		if mag > maxMag {
			return 0, false
		}
		return int64(mag), true //nolint:gosec // G115: bounds checked above.
	}
	// Negative: allow magnitude up to 2^63.
	if mag > maxMag+1 {
		return 0, false
	}
	if mag == maxMag+1 {
		return -1 << 63, true
	}
	return -int64(mag), true //nolint:gosec // G115: bounds checked above.
}

// clone returns an independent copy whose digit buffer may be mutated.
func (i Int) clone() Int {
	if len(i.digits) == 0 {
		return Int{sign: i.sign}
	}
	d := make([]uint8, len(i.digits))
	copy(d, i.digits)
	return Int{sign: i.sign, digits: d}
}

func trimDigits(d []uint8) []uint8 {
	for len(d) > 0 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	if len(d) == 0 {
		return nil
	}
	return d
}

// norm strips excess most-significant zero digits and resets the sign
// to zero when the magnitude collapses to the empty sequence.
func norm(sign int8, d []uint8) Int {
	d = trimDigits(d)
	if len(d) == 0 {
		return Int{}
	}
	return Int{sign: sign, digits: d}
}

func cmpMag(a, b []uint8) int {
	a = trimDigits(a)
	b = trimDigits(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for k := len(a) - 1; k >= 0; k-- {
		switch {
		case a[k] < b[k]:
			return -1
		case a[k] > b[k]:
			return 1
		}
		if k == 0 {
			break
		}
	}
	return 0
}

// subMagInPlace computes dst -= sub on raw digit buffers.
// Requires the value in dst to be >= the value in sub.
func subMagInPlace(dst, sub []uint8) {
	var borrow int
	for k := 0; k < len(dst); k++ {
		d := int(dst[k]) - borrow
		if k < len(sub) {
			d -= int(sub[k])
		}
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		dst[k] = uint8(d) //nolint:gosec // G115: d is in [0,9] here.
	}
}
