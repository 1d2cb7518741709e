package arith

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/adhocteam/scaffold/lexer"
	"github.com/adhocteam/scaffold/source"
)

// BadCharError reports a character that does not start any token.
type BadCharError struct {
	Char rune
}

func (e *BadCharError) Error() string {
	return fmt.Sprintf("bad character %q", e.Char)
}

var punct = map[rune]Kind{
	'+': Add,
	'-': Sub,
	'*': Mul,
	'/': Div,
	'(': LParen,
	')': RParen,
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Tokenizer splits arithmetic source into tokens. White space separates
// tokens and is otherwise ignored.
type Tokenizer struct{}

func (Tokenizer) Token(c *lexer.Cursor) (source.Located[Token], bool, error) {
	c.AcceptRun(unicode.IsSpace)

	ch, ok := c.Current()
	if !ok {
		return source.Located[Token]{}, false, nil
	}

	if k, ok := punct[ch]; ok {
		pos := c.Pos()
		c.Advance()
		return source.New(Op(k), pos), true, nil
	}

	if isDigit(ch) {
		return lexNumber(c)
	}

	return source.Located[Token]{}, false, lexer.NewError(c.Pos(), &BadCharError{Char: ch})
}

// lexNumber scans digits with an optional fraction: 12, 12.5, 12.
func lexNumber(c *lexer.Cursor) (source.Located[Token], bool, error) {
	text, pos := c.AcceptRun(isDigit)
	if ch, ok := c.Current(); ok && ch == '.' {
		pos.Extend(c.Pos())
		c.Advance()
		frac, fracPos := c.AcceptRun(isDigit)
		if frac != "" {
			pos.Extend(fracPos)
		}
		text += "." + frac
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return source.Located[Token]{}, false, lexer.Errorf(pos, "invalid number %q: %w", text, err)
	}
	return source.New(Num(v), pos), true, nil
}
