// Package arith is a small arithmetic language built on the scaffold: numbers,
// the four binary operators, and parentheses.
package arith

import (
	"fmt"
	"strconv"
)

// Kind is the kind of a token.
type Kind int

const (
	Add Kind = iota
	Sub
	Mul
	Div
	Number
	LParen
	RParen
)

var kindText = [...]string{
	Add:    "+",
	Sub:    "-",
	Mul:    "*",
	Div:    "/",
	Number: "number",
	LParen: "(",
	RParen: ")",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindText) {
		return kindText[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(kindText) {
		return nil, fmt.Errorf("unknown token kind %d", int(k))
	}
	return []byte(kindText[k]), nil
}

// precedence returns the binding power of a binary operator, or 0 if k is
// not one.
func (k Kind) precedence() int {
	switch k {
	case Add, Sub:
		return 1
	case Mul, Div:
		return 2
	}
	return 0
}

// Token is a lexical unit. Value is only meaningful for Number tokens.
type Token struct {
	Kind  Kind
	Value float64 `yaml:",omitempty" json:",omitempty"`
}

// Op returns the token for an operator or punctuation kind.
func Op(k Kind) Token {
	return Token{Kind: k}
}

// Num returns a Number token.
func Num(v float64) Token {
	return Token{Kind: Number, Value: v}
}

func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Kind.String()
}
