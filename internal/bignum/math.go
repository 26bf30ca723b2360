package bignum

import "fmt"

var (
	one = Int{sign: 1, digits: []uint8{1}}
	two = Int{sign: 1, digits: []uint8{2}}
)

// Pow returns (base**exp) % mod using iterative fast exponentiation.
// A zero mod is the "no modulus" sentinel: the result is not reduced.
// A negative exp with a zero base is ErrMathDomain; with any other
// base the integer result is 0 (or ±1 for a base of magnitude one).
func Pow(base, exp, mod Int) (Int, error) {
	// Magnitude-one base short-circuits: only a negative base with an
	// odd exponent gives -1.
	if len(base.digits) == 1 && base.digits[0] == 1 {
		if base.sign == -1 && exp.IsOdd() {
			return one.Neg(), nil
		}
		return one, nil
	}

	if exp.IsNegative() {
		if base.IsZero() {
			return Int{}, fmt.Errorf("%w: 0 cannot be raised to a negative power", ErrMathDomain)
		}
		return Int{}, nil
	}

	num := base
	n := exp
	result := one // base**0 == 1
	for !n.IsZero() {
		if n.IsOdd() {
			result = result.Mul(num)
			if !mod.IsZero() {
				r, err := result.Mod(mod)
				if err != nil {
					return Int{}, err
				}
				result = r
			}
		}
		num = num.Mul(num)
		if !mod.IsZero() {
			r, err := num.Mod(mod)
			if err != nil {
				return Int{}, err
			}
			num = r
		}
		half, err := n.Div(two)
		if err != nil {
			return Int{}, err
		}
		n = half
	}
	return result, nil
}

// Sqrt returns the integer square root of n using Newton's method.
// Negative input is ErrMathDomain.
func Sqrt(n Int) (Int, error) {
	if n.IsNegative() {
		return Int{}, fmt.Errorf("%w: square root of negative integer", ErrMathDomain)
	}

	switch {
	case n.IsZero():
		return Int{}, nil
	case n.Cmp(FromInt64(4)) < 0:
		return one, nil
	case n.Cmp(FromInt64(9)) < 0:
		return two, nil
	case n.Cmp(FromInt64(16)) < 0:
		return FromInt64(3), nil
	}

	// Seed with a power of ten strictly above sqrt(n); from an
	// overestimate the Newton sequence decreases monotonically to the
	// integer square root, so the first non-decreasing step terminates.
	// A plain fixed-point stop would oscillate whenever n+1 is a
	// perfect square (80, 99, ...).
	seed := make([]uint8, n.Digits()/2+2)
	seed[len(seed)-1] = 1
	cur := Int{sign: 1, digits: seed}

	for {
		q, err := n.Div(cur)
		if err != nil {
			return Int{}, err
		}
		next, err := cur.Add(q).Div(two)
		if err != nil {
			return Int{}, err
		}
		if next.Cmp(cur) >= 0 {
			return cur, nil
		}
		cur = next
	}
}

// Log returns the integer logarithm of n in the given base: the
// largest k with base**k <= n. n <= 0 or base < 2 is ErrMathDomain.
func Log(n, base Int) (Int, error) {
	if !n.IsPositive() || base.Cmp(two) < 0 {
		return Int{}, fmt.Errorf("%w: log requires a positive value and a base of at least 2", ErrMathDomain)
	}

	// Base 10 is the digit count.
	if base.Equal(FromInt64(10)) {
		return FromInt64(int64(n.Digits() - 1)), nil
	}

	var result Int
	v, err := n.Div(base)
	if err != nil {
		return Int{}, err
	}
	for !v.IsZero() {
		result = result.Inc()
		v, err = v.Div(base)
		if err != nil {
			return Int{}, err
		}
	}
	return result, nil
}

// GCD returns the greatest common divisor of a and b via the Euclidean
// algorithm. The result is never negative; GCD(a, 0) is |a|.
func GCD(a, b Int) (Int, error) {
	for !b.IsZero() {
		r, err := a.Mod(b)
		if err != nil {
			return Int{}, err
		}
		a, b = b, r
	}
	return a.Abs(), nil
}

// LCM returns the least common multiple of a and b; zero when either
// operand is zero.
func LCM(a, b Int) (Int, error) {
	if a.IsZero() || b.IsZero() {
		return Int{}, nil
	}
	g, err := GCD(a, b)
	if err != nil {
		return Int{}, err
	}
	return a.Mul(b).Abs().Div(g)
}

// Factorial returns n! for non-negative n; ErrNegativeFactorial
// otherwise.
func Factorial(n Int) (Int, error) {
	if n.IsNegative() {
		return Int{}, fmt.Errorf("%w: %s", ErrNegativeFactorial, n)
	}

	result := one // 0! == 1
	for k := n.clone(); k.IsPositive(); k.absDec() {
		result = result.Mul(k)
	}
	return result, nil
}

// NextPrime returns the smallest prime strictly greater than n.
func NextPrime(n Int) (Int, error) {
	if n.Cmp(two) < 0 {
		return two, nil
	}

	p := n.clone()
	// Force the candidate odd so stepping by two below only visits odd
	// numbers; primes above 2 are odd.
	if p.IsEven() {
		p.absDec()
	}

	for {
		p.absInc()
		p.absInc()
		prime, err := isPrime(p)
		if err != nil {
			return Int{}, err
		}
		if prime {
			return p.clone(), nil
		}
	}
}

// isPrime trial-divides p by every d with d*d <= p.
func isPrime(p Int) (bool, error) {
	for d := two; d.Mul(d).Cmp(p) <= 0; d = d.Inc() {
		r, err := p.Mod(d)
		if err != nil {
			return false, err
		}
		if r.IsZero() {
			return false, nil
		}
	}
	return true, nil
}
