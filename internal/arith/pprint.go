package arith

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/adhocteam/scaffold/source"
)

const indentSize = 2

var (
	literalColor = color.New(color.FgGreen)
	opColor      = color.New(color.FgMagenta, color.Bold)
	posColor     = color.New(color.Faint)
)

type prettyPrinter struct {
	w     io.Writer
	depth int
}

func NewPrettyPrinter(w io.Writer) *prettyPrinter {
	return &prettyPrinter{w: w}
}

func (p *prettyPrinter) println(pos source.Position, s string) {
	fmt.Fprintf(p.w, "%s%s %s\n", strings.Repeat(" ", p.depth*indentSize), s, posColor.Sprint("@", pos))
}

func (p *prettyPrinter) indent() {
	p.depth++
}

func (p *prettyPrinter) dedent() {
	p.depth--
	if p.depth < 0 {
		p.depth = 0
	}
}

// PrettyPrint writes e as an indented tree, one node per line, each followed
// by its position.
func (p *prettyPrinter) PrettyPrint(e source.Located[Expr]) {
	switch n := e.Value.(type) {
	case Literal:
		p.println(e.Pos, literalColor.Sprint(Num(n.Value)))
	case Binary:
		p.println(e.Pos, opColor.Sprint(n.Op))
		p.indent()
		p.PrettyPrint(n.Left)
		p.PrettyPrint(n.Right)
		p.dedent()
	}
}
