package calc

import (
	"errors"
	"math/rand/v2"
	"testing"

	"decint/internal/bignum"
)

func evalOK(t *testing.T, src string) string {
	t.Helper()
	e := &Evaluator{Rand: rand.New(rand.NewPCG(1, 2))}
	v, err := e.Eval(src)
	if err != nil {
		t.Fatalf("Eval(%q): %v", src, err)
	}
	return v.String()
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct{ src, want string }{
		{"12345 + 1", "12346"},
		{"1000 - 1", "999"},
		{"999 * 999", "998001"},
		{"100 / 7", "14"},
		{"100 % 7", "2"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"-5 + 3", "-2"},
		{"--5", "5"},
		{"+5", "5"},
		{"2 ^ 10", "1024"},
		{"2 ^ 3 ^ 2", "512"},
		{"-2 ^ 2", "-4"},
		{"5!", "120"},
		{"3!!", "720"},
		{"-3!", "-6"},
		{"10 - 2 - 3", "5"},
		{"100 / 7 / 2", "7"},
	}
	for _, c := range cases {
		if got := evalOK(t, c.src); got != c.want {
			t.Fatalf("Eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestEvalFunctions(t *testing.T) {
	cases := []struct{ src, want string }{
		{"sqrt(26)", "5"},
		{"log(1024, 2)", "10"},
		{"log(12345, 10)", "4"},
		{"pow(2, 10)", "1024"},
		{"pow(2, 10, 1000)", "24"},
		{"gcd(12, 18)", "6"},
		{"lcm(4, 6)", "12"},
		{"factorial(5)", "120"},
		{"nextprime(10)", "11"},
		{"sqrt(factorial(4) + 1)", "5"},
	}
	for _, c := range cases {
		if got := evalOK(t, c.src); got != c.want {
			t.Fatalf("Eval(%q) = %s, want %s", c.src, got, c.want)
		}
	}
}

func TestEvalRandom(t *testing.T) {
	e := &Evaluator{Rand: rand.New(rand.NewPCG(3, 4)), MaxRandomDigits: 5}
	v, err := e.Eval("random(3)")
	if err != nil {
		t.Fatalf("random(3): %v", err)
	}
	if v.Digits() != 3 {
		t.Fatalf("random(3) has %d digits", v.Digits())
	}
	v, err = e.Eval("random()")
	if err != nil {
		t.Fatalf("random(): %v", err)
	}
	if v.Digits() > 5 {
		t.Fatalf("random() ignored the configured bound: %s", v)
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		src  string
		want error
	}{
		{"", ErrSyntax},
		{"1 +", ErrSyntax},
		{"(1", ErrSyntax},
		{"1 2", ErrSyntax},
		{"$", ErrSyntax},
		{"foo(1)", ErrUnknownFunc},
		{"sqrt(1, 2)", ErrArity},
		{"gcd(1)", ErrArity},
		{"1 / 0", bignum.ErrDivByZero},
		{"1 % 0", bignum.ErrDivByZero},
		{"sqrt(-1)", bignum.ErrMathDomain},
		{"log(0, 2)", bignum.ErrMathDomain},
		{"(-1)!", bignum.ErrNegativeFactorial},
		{"random(-2)", bignum.ErrInvalidDigits},
	}
	for _, c := range cases {
		e := &Evaluator{Rand: rand.New(rand.NewPCG(1, 2))}
		if _, err := e.Eval(c.src); !errors.Is(err, c.want) {
			t.Fatalf("Eval(%q): want %v, got %v", c.src, c.want, err)
		}
	}
}
