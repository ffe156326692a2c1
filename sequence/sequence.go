// Package sequence provides the contiguous backing storage used by the flat containers.
//
// A Sequence is an ordered, random-access buffer with insert-before-index and
// erase-range primitives. The flat containers never look inside a Sequence: they
// only rely on the contract below, so any strategy (a plain growable slice, an
// inline array that spills to the heap, a fixed-capacity buffer) can be bound in.
//
// Pointers returned by At are valid until the next structural mutation (Insert,
// Append, Delete, Clear, Grow). After that every pointer must be treated as stale,
// not only the ones at or after the mutation point.
package sequence

import (
	"iter"

	"github.com/amp-labs/amp-flat/compare"
)

// Sequence is the capability contract a flat container requires from its storage.
//
// Thread-safety: implementations are not thread-safe. Concurrent access must be
// synchronized by the caller.
//
//nolint:interfacebloat // storage contract
type Sequence[T any] interface {
	// Len returns the number of stored elements.
	Len() int

	// Cap returns the number of elements the sequence can hold without reallocating.
	Cap() int

	// MaxLen returns the largest number of elements the sequence can ever hold.
	MaxLen() int

	// At returns a pointer to the element at index i (0 <= i < Len).
	At(i int) *T

	// Insert places v before index i (0 <= i <= Len), shifting the tail one slot right.
	Insert(i int, v T)

	// Append adds v after the last element.
	Append(v T)

	// Delete removes the elements in [i, j), shifting the tail left. Vacated
	// slots are zeroed so they don't retain references.
	Delete(i, j int)

	// Clear removes every element.
	Clear()

	// Grow ensures room for at least n more elements without another reallocation.
	Grow(n int)

	// All iterates index/element pairs front to back.
	All() iter.Seq2[int, T]

	// Backward iterates index/element pairs back to front.
	Backward() iter.Seq2[int, T]
}

// Ptr constrains a pointer to a strategy type S that implements Sequence[T].
// Containers hold S by value (its zero value is an empty sequence) and operate
// on it through PS.
type Ptr[T any, S any] interface {
	*S
	Sequence[T]
}

// Values copies the elements of s into a new slice.
func Values[T any](s Sequence[T]) []T {
	out := make([]T, 0, s.Len())

	for _, v := range s.All() {
		out = append(out, v)
	}

	return out
}

// EqualFunc reports whether a and b have the same length and eq holds for every
// pair of elements at the same index.
func EqualFunc[T any](a, b Sequence[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	return compare.EqualSeq(elements(a), elements(b), eq)
}

// CompareFunc compares a and b lexicographically using cmp on each element.
// The result is negative, zero or positive as a sorts before, equal to or after b.
func CompareFunc[T any](a, b Sequence[T], cmp func(T, T) int) int {
	return compare.Lexicographic(elements(a), elements(b), cmp)
}

func elements[T any](s Sequence[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// forward and backward are shared by the strategies to iterate over their live slice.
func forward[T any](items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range items {
			if !yield(i, v) {
				return
			}
		}
	}
}

func backward[T any](items []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(i, items[i]) {
				return
			}
		}
	}
}
