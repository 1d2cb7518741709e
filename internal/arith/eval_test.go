package arith

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"

	"github.com/adhocteam/scaffold/source"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1 + 2", 3},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 4 - 3", 3},
		{"8 / 4 / 2", 1},
		{"0.5 * 3", 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got, err := Eval(e)
			if err != nil {
				t.Fatalf("Eval: %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	e, err := Parse("1 + 4 / (2 - 2)")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Eval(e)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected division by zero, got %v", err)
	}
	var se *source.Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *source.Error, got %T", err)
	}
	if want := source.Join(source.Single(0, 4), source.Single(0, 14)); se.Pos != want {
		t.Errorf("Pos = %+v, want %+v", se.Pos, want)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  source.Located[Expr]
	}{
		{"1 + 2", lit(3)},
		{"2 * (3 + 4)", lit(14)},
		{"7", lit(7)},
		{"1 / 0", bin(lit(1), Div, lit(0))},
		{"1 + 6 / (3 - 3)", bin(lit(1), Add, bin(lit(6), Div, lit(0)))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			e, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := Fold(e)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want, +got)\n%s", diff)
			}
			if got.Pos != e.Pos {
				t.Errorf("Fold changed the root position: %+v -> %+v", e.Pos, got.Pos)
			}
		})
	}
}

func TestPrettyPrint(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = saved }()

	e, err := Parse("1 + 2 * 3")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	NewPrettyPrinter(&buf).PrettyPrint(e)

	want := `+ @1:1
  1 @1:1
  * @1:5
    2 @1:5
    3 @1:9
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want, +got)\n%s", diff)
	}
}
