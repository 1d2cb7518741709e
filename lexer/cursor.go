package lexer

import (
	"unicode/utf8"

	"github.com/adhocteam/scaffold/source"
)

// Cursor walks a source text one character at a time, keeping track of the
// byte offset and the line and column of the current character. A Cursor
// never moves on its own: tokenizers read the current character and call
// Advance explicitly to consume it.
type Cursor struct {
	text   string
	offset int
	line   int
	col    int
}

// NewCursor returns a cursor at the first character of text.
func NewCursor(text string) *Cursor {
	return &Cursor{text: text}
}

// Current returns the character under the cursor. It returns false once the
// cursor is at the end of the text.
func (c *Cursor) Current() (rune, bool) {
	if c.offset >= len(c.text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.text[c.offset:])
	return r, true
}

// Pos returns the single-character span of the current character. At the
// end of the text the column range is zero-width, which still anchors
// end-of-input errors on the last line.
func (c *Cursor) Pos() source.Position {
	if c.Done() {
		return source.Position{
			Ln:  source.Range{Start: c.line, End: c.line + 1},
			Col: source.Range{Start: c.col, End: c.col},
		}
	}
	return source.Single(c.line, c.col)
}

// Advance consumes the current character. A newline moves the cursor to
// column 0 of the next line. At the end of the text Advance does nothing.
func (c *Cursor) Advance() {
	if c.Done() {
		return
	}
	r, size := utf8.DecodeRuneInString(c.text[c.offset:])
	if r == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	c.offset += size
}

// AcceptRun consumes characters for as long as ok reports true for them. It
// returns the consumed text and its span; the span is only meaningful when
// the text is not empty.
func (c *Cursor) AcceptRun(ok func(rune) bool) (string, source.Position) {
	start := c.offset
	pos := c.Pos()
	for {
		r, more := c.Current()
		if !more || !ok(r) {
			break
		}
		pos.Extend(c.Pos())
		c.Advance()
	}
	return c.text[start:c.offset], pos
}

// Done reports whether every character has been consumed.
func (c *Cursor) Done() bool {
	return c.offset >= len(c.text)
}

// Offset returns the byte offset of the current character.
func (c *Cursor) Offset() int {
	return c.offset
}

// Line returns the 0-based line of the current character.
func (c *Cursor) Line() int {
	return c.line
}

// Column returns the 0-based column, in characters, of the current character.
func (c *Cursor) Column() int {
	return c.col
}

// Text returns the whole source text.
func (c *Cursor) Text() string {
	return c.text
}
