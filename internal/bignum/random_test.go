package bignum

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestRandomExactDigits(t *testing.T) {
	rnd := testRand()
	for _, n := range []int{1, 2, 5, 40, 300} {
		v, err := Random(rnd, n)
		if err != nil {
			t.Fatalf("Random(%d): %v", n, err)
		}
		if v.IsNegative() {
			t.Fatalf("Random(%d) negative: %s", n, v)
		}
		if got := v.Digits(); got != n {
			t.Fatalf("Random(%d) has %d digits: %s", n, got, v)
		}
		if len(v.String()) != n {
			t.Fatalf("Random(%d) renders with a leading zero: %s", n, v)
		}
	}
}

func TestRandomZeroDigits(t *testing.T) {
	v, err := Random(testRand(), 0)
	if err != nil {
		t.Fatalf("Random(0): %v", err)
	}
	if !v.IsZero() {
		t.Fatalf("Random(0) = %s, want 0", v)
	}
}

func TestRandomAnyRespectsDefaultBound(t *testing.T) {
	rnd := testRand()
	for range 50 {
		v, err := Random(rnd, DigitsAny)
		if err != nil {
			t.Fatalf("Random(DigitsAny): %v", err)
		}
		if v.Digits() > DefaultMaxRandomDigits {
			t.Fatalf("Random(DigitsAny) exceeded bound: %d digits", v.Digits())
		}
	}
}

func TestRandomMaxBound(t *testing.T) {
	rnd := testRand()
	for range 100 {
		v, err := RandomMax(rnd, 3)
		if err != nil {
			t.Fatalf("RandomMax(3): %v", err)
		}
		if v.Digits() > 3 {
			t.Fatalf("RandomMax(3) produced %s", v)
		}
	}
	if _, err := RandomMax(rnd, -1); !errors.Is(err, ErrInvalidDigits) {
		t.Fatalf("RandomMax(-1): want ErrInvalidDigits, got %v", err)
	}
}

func TestRandomInvalidDigits(t *testing.T) {
	if _, err := Random(testRand(), -2); !errors.Is(err, ErrInvalidDigits) {
		t.Fatalf("Random(-2): want ErrInvalidDigits, got %v", err)
	}
}
