package source

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// Located tags a value with the span of source text it was derived from.
type Located[T any] struct {
	Value T
	Pos   Position
}

// New returns value located at pos.
func New[T any](value T, pos Position) Located[T] {
	return Located[T]{Value: value, Pos: pos}
}

// Map transforms the value of l, keeping its position.
func Map[T, U any](l Located[T], f func(T) U) Located[U] {
	return Located[U]{Value: f(l.Value), Pos: l.Pos}
}

// Unwrap returns the located value.
func (l Located[T]) Unwrap() T {
	return l.Value
}

// Equal reports whether l and other hold equal values. Positions are
// informational and do not take part in the comparison. Because of this
// method, cmp.Equal and cmp.Diff also ignore positions of Located values.
func (l Located[T]) Equal(other Located[T]) bool {
	return cmp.Equal(l.Value, other.Value, exportAll)
}

// exportAll lets value comparison look at unexported fields of client types.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// String formats only the value.
func (l Located[T]) String() string {
	return fmt.Sprint(l.Value)
}
