package arith

import (
	"errors"
	"fmt"

	"github.com/adhocteam/scaffold/source"
)

// ErrDivisionByZero is reported when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// Eval computes the value of e. Errors are *source.Error values pointing at
// the failing operation.
func Eval(e source.Located[Expr]) (float64, error) {
	switch n := e.Value.(type) {
	case Literal:
		return n.Value, nil
	case Binary:
		left, err := Eval(n.Left)
		if err != nil {
			return 0, err
		}
		right, err := Eval(n.Right)
		if err != nil {
			return 0, err
		}
		if n.Op == Div && right == 0 {
			return 0, &source.Error{Pos: e.Pos, Err: ErrDivisionByZero}
		}
		return apply(n.Op, left, right), nil
	default:
		return 0, &source.Error{Pos: e.Pos, Err: fmt.Errorf("unexpected expression %T", e.Value)}
	}
}

func apply(op Kind, left, right float64) float64 {
	switch op {
	case Add:
		return left + right
	case Sub:
		return left - right
	case Mul:
		return left * right
	case Div:
		return left / right
	}
	panic(fmt.Sprintf("internal error: %s is not a binary operator", op))
}
