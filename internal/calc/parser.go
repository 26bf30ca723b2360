package calc

import (
	"fmt"

	"decint/internal/bignum"
)

// parser is a precedence-climbing evaluator: expressions are folded
// into bignum values as they are parsed, so there is no AST stage.
type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return fmt.Errorf("%w: expected %s at offset %d", ErrSyntax, what, p.tok.off)
	}
	return p.advance()
}

// parseExpr handles + and -, the loosest binding level.
func (p *parser) parseExpr(e *Evaluator) (bignum.Int, error) {
	left, err := p.parseTerm(e)
	if err != nil {
		return bignum.Int{}, err
	}
	for p.tok.kind == tokPlus || p.tok.kind == tokMinus {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		right, err := p.parseTerm(e)
		if err != nil {
			return bignum.Int{}, err
		}
		if op == tokPlus {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
	return left, nil
}

// parseTerm handles *, / and %.
func (p *parser) parseTerm(e *Evaluator) (bignum.Int, error) {
	left, err := p.parseUnary(e)
	if err != nil {
		return bignum.Int{}, err
	}
	for p.tok.kind == tokStar || p.tok.kind == tokSlash || p.tok.kind == tokPercent {
		op := p.tok.kind
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		right, err := p.parseUnary(e)
		if err != nil {
			return bignum.Int{}, err
		}
		switch op {
		case tokStar:
			left = left.Mul(right)
		case tokSlash:
			left, err = left.Div(right)
		default:
			left, err = left.Mod(right)
		}
		if err != nil {
			return bignum.Int{}, err
		}
	}
	return left, nil
}

// parseUnary handles prefix + and -; ^ and postfix ! bind tighter, so
// -2^2 is -(2^2) and -3! is -(3!).
func (p *parser) parseUnary(e *Evaluator) (bignum.Int, error) {
	switch p.tok.kind {
	case tokPlus:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		return p.parseUnary(e)
	case tokMinus:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		v, err := p.parseUnary(e)
		if err != nil {
			return bignum.Int{}, err
		}
		return v.Neg(), nil
	}
	return p.parsePower(e)
}

// parsePower handles the right-associative ^ operator.
func (p *parser) parsePower(e *Evaluator) (bignum.Int, error) {
	base, err := p.parsePostfix(e)
	if err != nil {
		return bignum.Int{}, err
	}
	if p.tok.kind != tokCaret {
		return base, nil
	}
	if err := p.advance(); err != nil {
		return bignum.Int{}, err
	}
	exp, err := p.parseUnary(e)
	if err != nil {
		return bignum.Int{}, err
	}
	return bignum.Pow(base, exp, bignum.Zero())
}

// parsePostfix handles the factorial suffix.
func (p *parser) parsePostfix(e *Evaluator) (bignum.Int, error) {
	v, err := p.parsePrimary(e)
	if err != nil {
		return bignum.Int{}, err
	}
	for p.tok.kind == tokBang {
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		v, err = bignum.Factorial(v)
		if err != nil {
			return bignum.Int{}, err
		}
	}
	return v, nil
}

func (p *parser) parsePrimary(e *Evaluator) (bignum.Int, error) {
	switch p.tok.kind {
	case tokNumber:
		v, err := bignum.Parse(p.tok.text)
		if err != nil {
			return bignum.Int{}, err
		}
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		return v, nil
	case tokIdent:
		name := p.tok.text
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		if err := p.expect(tokLParen, "'(' after function name"); err != nil {
			return bignum.Int{}, err
		}
		var args []bignum.Int
		if p.tok.kind != tokRParen {
			for {
				arg, err := p.parseExpr(e)
				if err != nil {
					return bignum.Int{}, err
				}
				args = append(args, arg)
				if p.tok.kind != tokComma {
					break
				}
				if err := p.advance(); err != nil {
					return bignum.Int{}, err
				}
			}
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return bignum.Int{}, err
		}
		return e.call(name, args)
	case tokLParen:
		if err := p.advance(); err != nil {
			return bignum.Int{}, err
		}
		v, err := p.parseExpr(e)
		if err != nil {
			return bignum.Int{}, err
		}
		if err := p.expect(tokRParen, "')'"); err != nil {
			return bignum.Int{}, err
		}
		return v, nil
	default:
		return bignum.Int{}, fmt.Errorf("%w: unexpected token at offset %d", ErrSyntax, p.tok.off)
	}
}
