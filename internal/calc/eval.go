// Package calc evaluates integer calculator expressions on top of the
// bignum core: the usual arithmetic operators plus a small set of
// named functions (sqrt, log, pow, gcd, lcm, factorial, nextprime,
// random).
package calc

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"fortio.org/safecast"

	"decint/internal/bignum"
)

var (
	// ErrUnknownFunc indicates a call to an undefined function.
	ErrUnknownFunc = errors.New("unknown function")
	// ErrArity indicates a function call with the wrong argument count.
	ErrArity = errors.New("wrong number of arguments")
)

// Evaluator evaluates expressions. The zero value works; Rand defaults
// to a freshly seeded source and MaxRandomDigits to the bignum default.
type Evaluator struct {
	// Rand backs the random() function.
	Rand *rand.Rand
	// MaxRandomDigits bounds random() when called without arguments.
	MaxRandomDigits int
}

// Eval parses and evaluates a single expression.
func (e *Evaluator) Eval(src string) (bignum.Int, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return bignum.Int{}, err
	}
	v, err := p.parseExpr(e)
	if err != nil {
		return bignum.Int{}, err
	}
	if p.tok.kind != tokEOF {
		return bignum.Int{}, fmt.Errorf("%w: trailing input at offset %d", ErrSyntax, p.tok.off)
	}
	return v, nil
}

func (e *Evaluator) rand() *rand.Rand {
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e.Rand
}

func (e *Evaluator) maxRandomDigits() int {
	if e.MaxRandomDigits <= 0 {
		return bignum.DefaultMaxRandomDigits
	}
	return e.MaxRandomDigits
}

// call dispatches a named function over already evaluated arguments.
func (e *Evaluator) call(name string, args []bignum.Int) (bignum.Int, error) {
	switch name {
	case "sqrt":
		if len(args) != 1 {
			return bignum.Int{}, arityErr(name, "1", len(args))
		}
		return bignum.Sqrt(args[0])
	case "log":
		if len(args) != 2 {
			return bignum.Int{}, arityErr(name, "2", len(args))
		}
		return bignum.Log(args[0], args[1])
	case "pow":
		switch len(args) {
		case 2:
			return bignum.Pow(args[0], args[1], bignum.Zero())
		case 3:
			return bignum.Pow(args[0], args[1], args[2])
		default:
			return bignum.Int{}, arityErr(name, "2 or 3", len(args))
		}
	case "gcd":
		if len(args) != 2 {
			return bignum.Int{}, arityErr(name, "2", len(args))
		}
		return bignum.GCD(args[0], args[1])
	case "lcm":
		if len(args) != 2 {
			return bignum.Int{}, arityErr(name, "2", len(args))
		}
		return bignum.LCM(args[0], args[1])
	case "factorial":
		if len(args) != 1 {
			return bignum.Int{}, arityErr(name, "1", len(args))
		}
		return bignum.Factorial(args[0])
	case "nextprime":
		if len(args) != 1 {
			return bignum.Int{}, arityErr(name, "1", len(args))
		}
		return bignum.NextPrime(args[0])
	case "random":
		switch len(args) {
		case 0:
			return bignum.RandomMax(e.rand(), e.maxRandomDigits())
		case 1:
			n64, ok := args[0].Int64()
			if !ok || n64 < 0 {
				return bignum.Int{}, fmt.Errorf("%w: random digit count %s", bignum.ErrInvalidDigits, args[0])
			}
			n, err := safecast.Conv[int](n64)
			if err != nil {
				return bignum.Int{}, fmt.Errorf("%w: random digit count %s", bignum.ErrInvalidDigits, args[0])
			}
			return bignum.Random(e.rand(), n)
		default:
			return bignum.Int{}, arityErr(name, "0 or 1", len(args))
		}
	default:
		return bignum.Int{}, fmt.Errorf("%w: %s", ErrUnknownFunc, name)
	}
}

func arityErr(name, want string, got int) error {
	return fmt.Errorf("%w: %s takes %s, got %d", ErrArity, name, want, got)
}
