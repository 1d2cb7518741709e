package arith

import (
	"encoding/json"

	"github.com/adhocteam/scaffold/source"
)

// Expr is an arithmetic expression.
type Expr interface {
	expr()
}

// Literal is a number literal.
type Literal struct {
	Value float64
}

func (Literal) expr() {}

func (n Literal) MarshalJSON() ([]byte, error) {
	type t Literal

	return json.Marshal(struct {
		Type string
		Node t
	}{
		Type: "Literal",
		Node: t(n),
	})
}

var _ Expr = Literal{}

// Binary applies Op to Left and Right.
type Binary struct {
	Left  source.Located[Expr]
	Op    Kind
	Right source.Located[Expr]
}

func (Binary) expr() {}

func (n Binary) MarshalJSON() ([]byte, error) {
	type t Binary

	return json.Marshal(struct {
		Type string
		Node t
	}{
		Type: "Binary",
		Node: t(n),
	})
}

var _ Expr = Binary{}
