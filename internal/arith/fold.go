package arith

import "github.com/adhocteam/scaffold/source"

// Fold replaces every binary operation on two literals with the literal it
// evaluates to, spanning the whole operation. Division by zero is left
// unfolded so that Eval can report it where it occurs.
func Fold(e source.Located[Expr]) source.Located[Expr] {
	b, ok := e.Value.(Binary)
	if !ok {
		return e
	}
	b.Left = Fold(b.Left)
	b.Right = Fold(b.Right)
	left, leftOk := b.Left.Value.(Literal)
	right, rightOk := b.Right.Value.(Literal)
	if leftOk && rightOk && !(b.Op == Div && right.Value == 0) {
		return source.New[Expr](Literal{Value: apply(b.Op, left.Value, right.Value)}, e.Pos)
	}
	return source.New[Expr](b, e.Pos)
}
