package sequence

import (
	"iter"
	"math"
	"slices"
)

// Vector is a plain growable buffer backed by a Go slice.
// The zero value is an empty Vector ready to use.
type Vector[T any] struct {
	items []T
}

// Compile-time check that *Vector implements Sequence.
var _ Sequence[int] = (*Vector[int])(nil)

// NewVector returns a Vector with room for capacity elements.
func NewVector[T any](capacity int) *Vector[T] {
	return &Vector[T]{items: make([]T, 0, capacity)}
}

func (v *Vector[T]) Len() int {
	return len(v.items)
}

func (v *Vector[T]) Cap() int {
	return cap(v.items)
}

func (v *Vector[T]) MaxLen() int {
	return math.MaxInt
}

func (v *Vector[T]) At(i int) *T {
	return &v.items[i]
}

func (v *Vector[T]) Insert(i int, elem T) {
	v.items = slices.Insert(v.items, i, elem)
}

func (v *Vector[T]) Append(elem T) {
	v.items = append(v.items, elem)
}

func (v *Vector[T]) Delete(i, j int) {
	v.items = slices.Delete(v.items, i, j)
}

// Clear drops every element but keeps the allocated capacity.
func (v *Vector[T]) Clear() {
	clear(v.items)
	v.items = v.items[:0]
}

func (v *Vector[T]) Grow(n int) {
	v.items = slices.Grow(v.items, n)
}

func (v *Vector[T]) All() iter.Seq2[int, T] {
	return forward(v.items)
}

func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return backward(v.items)
}
