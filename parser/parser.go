// Package parser drives client grammars over a token stream.
//
// Grammars are written as recursive descent: each parse step consumes tokens
// from a Stream, calls other steps for sub-constructs, and returns a located
// syntax value whose position spans everything it consumed. There is no error
// recovery; the first error ends the parse.
package parser

import (
	"errors"
	"fmt"

	"github.com/adhocteam/scaffold/source"
)

// ErrUnexpectedEOF is reported when a grammar needs a token and the stream is
// exhausted.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Grammar builds a syntax value of type N from tokens of type T.
//
// Errors that are not already an *Error are reported at the position of the
// first token the grammar left unconsumed.
type Grammar[T, N any] interface {
	Parse(s *Stream[T]) (source.Located[N], error)
}

// GrammarFunc adapts a function to the Grammar interface.
type GrammarFunc[T, N any] func(s *Stream[T]) (source.Located[N], error)

func (f GrammarFunc[T, N]) Parse(s *Stream[T]) (source.Located[N], error) {
	return f(s)
}

// Error is a parsing error: the tokens at Pos do not fit the grammar.
type Error struct {
	Pos source.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns a parsing error for err at pos.
func NewError(pos source.Position, err error) *Error {
	return &Error{Pos: pos, Err: err}
}

// Errorf returns a parsing error at pos with a formatted message.
func Errorf(pos source.Position, format string, args ...any) *Error {
	return NewError(pos, fmt.Errorf(format, args...))
}

// Run parses s with g. On failure the error is an *Error and the partial
// syntax value is discarded.
func Run[T, N any](s *Stream[T], g Grammar[T, N]) (source.Located[N], error) {
	node, err := g.Parse(s)
	if err != nil {
		var pe *Error
		if errors.As(err, &pe) {
			return source.Located[N]{}, pe
		}
		return source.Located[N]{}, NewError(s.Pos(), err)
	}
	return node, nil
}

// Parse parses tokens with g.
func Parse[T, N any](tokens []source.Located[T], g Grammar[T, N]) (source.Located[N], error) {
	return Run(NewStream(tokens), g)
}
