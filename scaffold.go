// Package scaffold wires a client tokenizer and grammar together: Parse lexes
// the whole text, hands the tokens to the grammar, and reports the first
// failure from either stage as an *Error.
//
// Client code supplies the concrete pieces:
//
//	type tokenizer struct{}
//
//	func (tokenizer) Token(c *lexer.Cursor) (source.Located[Token], bool, error) { ... }
//
//	type grammar struct{}
//
//	func (grammar) Parse(s *parser.Stream[Token]) (source.Located[Expr], error) { ... }
//
//	lang := scaffold.Language[Token, Expr]{Tokenizer: tokenizer{}, Grammar: grammar{}}
//	expr, err := lang.Parse("1 + 2")
package scaffold

import (
	"errors"
	"fmt"

	"github.com/adhocteam/scaffold/lexer"
	"github.com/adhocteam/scaffold/parser"
	"github.com/adhocteam/scaffold/source"
)

// Stage identifies which half of the pipeline failed.
type Stage int

const (
	StageLex Stage = iota
	StageParse
)

func (s Stage) String() string {
	switch s {
	case StageLex:
		return "lex"
	case StageParse:
		return "parse"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Error is the failure of a Lex or Parse call. Exactly one of Lex and Parse
// is set; the zero Error reports the parse stage at the zero position.
type Error struct {
	Lex   *lexer.Error
	Parse *parser.Error
}

// Stage returns the stage that failed.
func (e *Error) Stage() Stage {
	if e.Lex != nil {
		return StageLex
	}
	return StageParse
}

// Pos returns the position the failure was detected at.
func (e *Error) Pos() source.Position {
	switch {
	case e.Lex != nil:
		return e.Lex.Pos
	case e.Parse != nil:
		return e.Parse.Pos
	}
	return source.Position{}
}

func (e *Error) Error() string {
	if err := e.Unwrap(); err != nil {
		return fmt.Sprintf("%s error: %v", e.Stage(), err)
	}
	return fmt.Sprintf("%s error at %s", e.Stage(), e.Pos())
}

func (e *Error) Unwrap() error {
	switch {
	case e.Lex != nil:
		return e.Lex
	case e.Parse != nil:
		return e.Parse
	}
	return nil
}

// lexFailure tags an error returned by lexer.Lex.
func lexFailure(err error) *Error {
	var le *lexer.Error
	if !errors.As(err, &le) {
		le = lexer.NewError(source.Position{}, err)
	}
	return &Error{Lex: le}
}

// parseFailure tags an error returned by parser.Parse.
func parseFailure(err error) *Error {
	var pe *parser.Error
	if !errors.As(err, &pe) {
		pe = parser.NewError(source.Position{}, err)
	}
	return &Error{Parse: pe}
}

// Lex tokenizes text with t.
func Lex[T any](text string, t lexer.Tokenizer[T]) ([]source.Located[T], error) {
	tokens, err := lexer.Lex(text, t)
	if err != nil {
		return nil, lexFailure(err)
	}
	return tokens, nil
}

// Parse tokenizes text with t and parses the tokens with g.
func Parse[T, N any](text string, t lexer.Tokenizer[T], g parser.Grammar[T, N]) (source.Located[N], error) {
	tokens, err := Lex(text, t)
	if err != nil {
		return source.Located[N]{}, err
	}
	node, err := parser.Parse(tokens, g)
	if err != nil {
		return source.Located[N]{}, parseFailure(err)
	}
	return node, nil
}

// Language bundles a tokenizer and a grammar.
type Language[T, N any] struct {
	Tokenizer lexer.Tokenizer[T]
	Grammar   parser.Grammar[T, N]
}

// Lex tokenizes text.
func (l Language[T, N]) Lex(text string) ([]source.Located[T], error) {
	return Lex(text, l.Tokenizer)
}

// Parse tokenizes and parses text.
func (l Language[T, N]) Parse(text string) (source.Located[N], error) {
	return Parse(text, l.Tokenizer, l.Grammar)
}
