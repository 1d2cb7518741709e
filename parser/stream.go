package parser

import "github.com/adhocteam/scaffold/source"

// Stream is a read-once view of a fully lexed token sequence. The underlying
// slice is never modified; popping a token advances an index, and there is
// no way to move it back. Grammars that need lookahead use Peek.
type Stream[T any] struct {
	tokens []source.Located[T]
	idx    int
}

// NewStream returns a stream positioned at the first of tokens.
func NewStream[T any](tokens []source.Located[T]) *Stream[T] {
	return &Stream[T]{tokens: tokens}
}

// Next removes and returns the first remaining token. Once the stream is
// exhausted it returns false on every call.
func (s *Stream[T]) Next() (source.Located[T], bool) {
	if s.Done() {
		return source.Located[T]{}, false
	}
	tok := s.tokens[s.idx]
	s.idx++
	return tok, true
}

// Peek returns the first remaining token without consuming it. The returned
// token belongs to the stream and must not be modified.
func (s *Stream[T]) Peek() (*source.Located[T], bool) {
	if s.Done() {
		return nil, false
	}
	return &s.tokens[s.idx], true
}

// Expect is like Next, but reports an exhausted stream as ErrUnexpectedEOF
// at the zero position.
func (s *Stream[T]) Expect() (source.Located[T], error) {
	tok, ok := s.Next()
	if !ok {
		return tok, NewError(source.Position{}, ErrUnexpectedEOF)
	}
	return tok, nil
}

// Pos returns the position of the first remaining token, or the zero
// position if the stream is exhausted.
func (s *Stream[T]) Pos() source.Position {
	if tok, ok := s.Peek(); ok {
		return tok.Pos
	}
	return source.Position{}
}

// Remaining returns the number of tokens not yet consumed.
func (s *Stream[T]) Remaining() int {
	return len(s.tokens) - s.idx
}

// Done reports whether every token has been consumed.
func (s *Stream[T]) Done() bool {
	return s.idx >= len(s.tokens)
}
