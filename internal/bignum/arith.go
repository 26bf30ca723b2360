package bignum

// Add returns i + j.
func (i Int) Add(j Int) Int {
	// One operand zero: the sum is the other operand.
	if i.sign == 0 || j.sign == 0 {
		if i.sign == 0 {
			return j
		}
		return i
	}

	// Opposite signs reduce to subtraction so the vertical loop below
	// only ever sees equal-sign operands.
	if i.sign == 1 && j.sign == -1 {
		return i.Sub(j.Neg())
	}
	if i.sign == -1 && j.sign == 1 {
		return j.Sub(i.Neg())
	}

	size := max(len(i.digits), len(j.digits)) + 1
	c := make([]uint8, size)
	for k := 0; k < size-1; k++ {
		c[k] += digitAt(i.digits, k) + digitAt(j.digits, k)
		c[k+1] = c[k] / 10
		c[k] %= 10
	}
	return norm(i.sign, c)
}

// Sub returns i - j.
func (i Int) Sub(j Int) Int {
	if i.sign == 0 || j.sign == 0 {
		if i.sign == 0 {
			return j.Neg()
		}
		return i
	}

	if i.sign != j.sign {
		return i.Add(j.Neg())
	}

	// Equal non-zero signs: subtract the smaller magnitude from the
	// larger one and fix the sign afterwards.
	a, b := i.digits, j.digits
	sign := i.sign
	if cmpMag(a, b) < 0 {
		a, b = b, a
		sign = -sign
	}

	c := make([]uint8, len(a))
	copy(c, a)
	subMagInPlace(c, b)
	return norm(sign, c)
}

// Mul returns i * j using schoolbook long multiplication.
func (i Int) Mul(j Int) Int {
	if i.sign == 0 || j.sign == 0 {
		return Int{}
	}

	a, b := i.digits, j.digits
	c := make([]uint8, len(a)+len(b))
	for k := range a {
		for l := range b {
			c[k+l] += a[k] * b[l]
			c[k+l+1] += c[k+l] / 10
			c[k+l] %= 10
		}
	}

	sign := int8(1)
	if i.sign != j.sign {
		sign = -1
	}
	return norm(sign, c)
}

// Inc returns i + 1 without going through general addition.
func (i Int) Inc() Int {
	if i.sign == 0 {
		return Int{sign: 1, digits: []uint8{1}}
	}
	out := i.clone()
	if out.sign == 1 {
		out.absInc()
	} else {
		out.absDec()
	}
	return out
}

// Dec returns i - 1 without going through general subtraction.
func (i Int) Dec() Int {
	if i.sign == 0 {
		return Int{sign: -1, digits: []uint8{1}}
	}
	out := i.clone()
	if out.sign == 1 {
		out.absDec()
	} else {
		out.absInc()
	}
	return out
}

// absInc increments the magnitude by one in place.
// Requires a non-zero value; the sign is left unchanged.
func (i *Int) absInc() {
	// Sentinel digit for carry overflow past the current top digit.
	i.digits = append(i.digits, 0)

	k := 0
	for i.digits[k] == 9 {
		k++
	}
	i.digits[k]++
	for k != 0 {
		k--
		i.digits[k] = 0
	}

	i.digits = trimDigits(i.digits)
}

// absDec decrements the magnitude by one in place.
// Requires a non-zero value; the sign collapses to zero when the
// magnitude does.
func (i *Int) absDec() {
	k := 0
	for i.digits[k] == 0 {
		k++
	}
	i.digits[k]--
	for k != 0 {
		k--
		i.digits[k] = 9
	}

	i.digits = trimDigits(i.digits)
	if len(i.digits) == 0 {
		i.sign = 0
	}
}

func digitAt(d []uint8, k int) uint8 {
	if k < len(d) {
		return d[k]
	}
	return 0
}
