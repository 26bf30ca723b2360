package bignum

// DivMod returns the quotient and remainder of i / j. Division
// truncates toward zero, so the remainder sign follows the dividend.
func (i Int) DivMod(j Int) (q, r Int, err error) {
	if j.sign == 0 {
		return Int{}, Int{}, ErrDivByZero
	}

	// A shorter dividend cannot reach the divisor's magnitude.
	if len(i.digits) < len(j.digits) {
		return Int{}, i, nil
	}

	size := len(i.digits) - len(j.digits) + 1

	rem := make([]uint8, len(i.digits))
	copy(rem, i.digits)

	// scaled holds divisor * 10^(k+1) before each step; dropping one
	// low zero digit turns it into divisor * 10^k in O(1).
	scaled := make([]uint8, size+len(j.digits))
	copy(scaled[size:], j.digits)

	quot := make([]uint8, size)
	for k := size - 1; k >= 0; k-- {
		scaled = scaled[1:]
		// At most 9 subtractions per position in base 10.
		for cmpMag(rem, scaled) >= 0 {
			subMagInPlace(rem, scaled)
			quot[k]++
		}
	}

	qsign := int8(1)
	if i.sign != j.sign {
		qsign = -1
	}
	return norm(qsign, quot), norm(i.sign, rem), nil
}

// Div returns i / j truncated toward zero.
func (i Int) Div(j Int) (Int, error) {
	q, _, err := i.DivMod(j)
	return q, err
}

// Mod returns i % j with the sign of the dividend.
func (i Int) Mod(j Int) (Int, error) {
	_, r, err := i.DivMod(j)
	return r, err
}
