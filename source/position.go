// Package source tracks where values came from in a source text. Lines and
// columns are 0-based and columns count characters, not bytes.
package source

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Range is a half-open interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of units the range covers.
func (r Range) Len() int {
	return r.End - r.Start
}

// Position is the span a syntactic unit occupies: a line range and a column
// range. The zero Position is the zero-width span at line 0, column 0, and
// anchors errors that have no natural location, such as an unexpected end of
// input.
type Position struct {
	Ln  Range
	Col Range
}

// Single returns the position of the single character at ln, col.
func Single(ln, col int) Position {
	return Position{
		Ln:  Range{Start: ln, End: ln + 1},
		Col: Range{Start: col, End: col + 1},
	}
}

// Extend moves the end of both ranges of p to the ends of other. It does not
// check that other comes after p; callers must only extend with spans that
// occur later in the text.
func (p *Position) Extend(other Position) {
	p.Ln.End = other.Ln.End
	p.Col.End = other.Col.End
}

// Join returns a copy of a extended by b.
func Join(a, b Position) Position {
	a.Extend(b)
	return a
}

// IsZero reports whether p is the default position.
func (p Position) IsZero() bool {
	return p == Position{}
}

// String formats the start of p as a 1-based line:column pair.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Ln.Start+1, p.Col.Start+1)
}

// Extract returns the text p covers in text. The span starts at
// (Ln.Start, Col.Start) and ends at (Ln.End-1, Col.End). Spans that fall
// outside of text are clipped to it.
func Extract(text string, p Position) string {
	lastLn := p.Ln.End - 1
	if lastLn < p.Ln.Start {
		lastLn = p.Ln.Start
	}
	start := offsetOf(text, p.Ln.Start, p.Col.Start)
	end := offsetOf(text, lastLn, p.Col.End)
	if end < start {
		return ""
	}
	return text[start:end]
}

// offsetOf returns the byte offset of the character at ln, col. A column past
// the end of a line stops at that line's newline.
func offsetOf(text string, ln, col int) int {
	offset := 0
	for i := 0; i < ln; i++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return len(text)
		}
		offset += nl + 1
	}
	for i := 0; i < col && offset < len(text); i++ {
		r, size := utf8.DecodeRuneInString(text[offset:])
		if r == '\n' {
			break
		}
		offset += size
	}
	return offset
}
