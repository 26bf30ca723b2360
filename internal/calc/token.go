package calc

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// ErrSyntax indicates a malformed expression.
var ErrSyntax = errors.New("syntax error")

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokCaret
	tokBang
	tokLParen
	tokRParen
	tokComma
)

type token struct {
	kind tokenKind
	text string
	off  int
}

// lexer is a byte cursor over a normalized expression string.
type lexer struct {
	src string
	pos int
}

func newLexer(src string) *lexer {
	// Normalize so visually identical inputs tokenize identically.
	return &lexer{src: norm.NFC.String(src)}
}

func (l *lexer) next() (token, error) {
	for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, off: l.pos}, nil
	}

	start := l.pos
	ch := l.src[l.pos]
	switch {
	case ch >= '0' && ch <= '9':
		for l.pos < len(l.src) && l.src[l.pos] >= '0' && l.src[l.pos] <= '9' {
			l.pos++
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], off: start}, nil
	case isIdentStart(ch):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], off: start}, nil
	}

	l.pos++
	var kind tokenKind
	switch ch {
	case '+':
		kind = tokPlus
	case '-':
		kind = tokMinus
	case '*':
		kind = tokStar
	case '/':
		kind = tokSlash
	case '%':
		kind = tokPercent
	case '^':
		kind = tokCaret
	case '!':
		kind = tokBang
	case '(':
		kind = tokLParen
	case ')':
		kind = tokRParen
	case ',':
		kind = tokComma
	default:
		return token{}, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, ch, start)
	}
	return token{kind: kind, text: l.src[start:l.pos], off: start}, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}
