// Package lexer drives client tokenizers over a source text.
//
// A tokenizer is a single step: given a Cursor, it skips whatever input it
// considers insignificant and then either produces one located token,
// reports that the input is exhausted, or fails. Lex runs that step until the
// input is exhausted and collects the tokens.
package lexer

import (
	"errors"
	"fmt"

	"github.com/adhocteam/scaffold/source"
)

// Tokenizer produces tokens of type T from a Cursor.
//
// Token returns the next token and true, or false with a nil error when the
// input is cleanly exhausted. Errors that are not already an *Error are
// reported at the cursor's position at the time of failure.
type Tokenizer[T any] interface {
	Token(c *Cursor) (source.Located[T], bool, error)
}

// TokenizerFunc adapts a function to the Tokenizer interface.
type TokenizerFunc[T any] func(c *Cursor) (source.Located[T], bool, error)

func (f TokenizerFunc[T]) Token(c *Cursor) (source.Located[T], bool, error) {
	return f(c)
}

// Error is a lexing error: the tokenizer could not classify the input at
// Pos.
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

// NewError returns a lexing error for err at pos.
func NewError(pos source.Position, err error) *Error {
	return &Error{Pos: pos, Err: err}
}

// Errorf returns a lexing error at pos with a formatted message.
func Errorf(pos source.Position, format string, args ...any) *Error {
	return NewError(pos, fmt.Errorf(format, args...))
}

// Run invokes t on c until it reports the end of input and returns the
// tokens. The first error aborts the run; tokens produced before it are
// discarded.
func Run[T any](c *Cursor, t Tokenizer[T]) ([]source.Located[T], error) {
	var tokens []source.Located[T]
	for {
		tok, ok, err := t.Token(c)
		if err != nil {
			var le *Error
			if errors.As(err, &le) {
				return nil, le
			}
			return nil, NewError(c.Pos(), err)
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

// Lex tokenizes text with t. On failure the error is an *Error.
func Lex[T any](text string, t Tokenizer[T]) ([]source.Located[T], error) {
	return Run(NewCursor(text), t)
}
