package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSingle(t *testing.T) {
	p := Single(3, 7)
	want := Position{Ln: Range{Start: 3, End: 4}, Col: Range{Start: 7, End: 8}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
	if p.Ln.Len() != 1 || p.Col.Len() != 1 {
		t.Errorf("expected single-character span, got %+v", p)
	}
}

func TestExtend(t *testing.T) {
	p := Single(0, 2)
	p.Extend(Single(0, 5))
	want := Position{Ln: Range{Start: 0, End: 1}, Col: Range{Start: 2, End: 6}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}

	// only the ends move, even for spans that come earlier
	p.Extend(Single(0, 1))
	if p.Col.Start != 2 || p.Col.End != 2 {
		t.Errorf("expected start kept and end moved back, got %+v", p)
	}
}

func TestExtendAssociative(t *testing.T) {
	a := Single(0, 0)
	b := Single(0, 4)
	c := Single(1, 2)

	stepwise := a
	stepwise.Extend(b)
	stepwise.Extend(c)

	direct := a
	direct.Extend(c)

	if diff := cmp.Diff(direct, stepwise); diff != "" {
		t.Errorf("(-direct, +stepwise)\n%s", diff)
	}
	if got := Join(a, c); got != direct {
		t.Errorf("Join = %+v, want %+v", got, direct)
	}
	if a != Single(0, 0) {
		t.Errorf("Join modified its argument: %+v", a)
	}
}

func TestZeroPosition(t *testing.T) {
	var p Position
	if !p.IsZero() {
		t.Errorf("expected default position to be zero")
	}
	if Single(0, 0).IsZero() {
		t.Errorf("single-character position at origin is not the zero position")
	}
	if got := p.String(); got != "1:1" {
		t.Errorf("String() = %q, want %q", got, "1:1")
	}
	if got := Single(2, 4).String(); got != "3:5" {
		t.Errorf("String() = %q, want %q", got, "3:5")
	}
}

func TestExtract(t *testing.T) {
	text := "ab 12\nλx  yz\n"
	tests := []struct {
		name string
		pos  Position
		want string
	}{
		{"first char", Single(0, 0), "a"},
		{"run", Join(Single(0, 3), Single(0, 4)), "12"},
		{"multibyte", Single(1, 0), "λ"},
		{"after multibyte", Join(Single(1, 4), Single(1, 5)), "yz"},
		{"across lines", Join(Single(0, 3), Single(1, 1)), "12\nλx"},
		{"past end of line", Position{Ln: Range{0, 1}, Col: Range{3, 40}}, "12"},
		{"past end of text", Single(9, 0), ""},
		{"zero width", Position{Ln: Range{0, 1}, Col: Range{2, 2}}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(text, tt.pos); got != tt.want {
				t.Errorf("Extract(%v) = %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}
