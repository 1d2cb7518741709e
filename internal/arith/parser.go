package arith

import (
	"github.com/adhocteam/scaffold"
	"github.com/adhocteam/scaffold/parser"
	"github.com/adhocteam/scaffold/source"
)

// Grammar parses a complete expression. Binary operators are left
// associative; * and / bind tighter than + and -.
type Grammar struct{}

func (Grammar) Parse(s *parser.Stream[Token]) (source.Located[Expr], error) {
	e, err := parseExpr(s, 1)
	if err != nil {
		return e, err
	}
	if tok, ok := s.Peek(); ok {
		return source.Located[Expr]{}, parser.Errorf(tok.Pos, "unexpected %s after expression", tok.Value)
	}
	return e, nil
}

// Language is the arithmetic tokenizer and grammar.
var Language = scaffold.Language[Token, Expr]{
	Tokenizer: Tokenizer{},
	Grammar:   Grammar{},
}

// Parse parses text as an arithmetic expression.
func Parse(text string) (source.Located[Expr], error) {
	return Language.Parse(text)
}

// parseExpr parses a chain of binary operations whose operators bind at
// least as tightly as minPrec.
func parseExpr(s *parser.Stream[Token], minPrec int) (source.Located[Expr], error) {
	left, err := parseAtom(s)
	if err != nil {
		return left, err
	}
	for {
		tok, ok := s.Peek()
		if !ok {
			return left, nil
		}
		prec := tok.Value.Kind.precedence()
		if prec == 0 || prec < minPrec {
			return left, nil
		}
		op, _ := s.Next()
		right, err := parseExpr(s, prec+1)
		if err != nil {
			return right, err
		}
		pos := left.Pos
		pos.Extend(right.Pos)
		left = source.New[Expr](Binary{Left: left, Op: op.Value.Kind, Right: right}, pos)
	}
}

// parseAtom parses a number or a parenthesized expression.
func parseAtom(s *parser.Stream[Token]) (source.Located[Expr], error) {
	tok, err := s.Expect()
	if err != nil {
		return source.Located[Expr]{}, err
	}
	switch tok.Value.Kind {
	case Number:
		return source.New[Expr](Literal{Value: tok.Value.Value}, tok.Pos), nil
	case LParen:
		inner, err := parseExpr(s, 1)
		if err != nil {
			return inner, err
		}
		closing, err := s.Expect()
		if err != nil {
			return source.Located[Expr]{}, err
		}
		if closing.Value.Kind != RParen {
			return source.Located[Expr]{}, parser.Errorf(closing.Pos, "expected ) but found %s", closing.Value)
		}
		pos := tok.Pos
		pos.Extend(closing.Pos)
		inner.Pos = pos
		return inner, nil
	}
	return source.Located[Expr]{}, parser.Errorf(tok.Pos, "unexpected %s", tok.Value)
}
