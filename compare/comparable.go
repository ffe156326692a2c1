// Package compare provides utilities for comparing values and sequences of values.
package compare

import "iter"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// EqualSeq reports whether a and b yield the same number of elements and eq
// holds for each pair. It stops at the first mismatch.
func EqualSeq[T any](a, b iter.Seq[T], eq func(T, T) bool) bool {
	nextB, stop := iter.Pull(b)
	defer stop()

	for va := range a {
		vb, ok := nextB()
		if !ok || !eq(va, vb) {
			return false
		}
	}

	_, more := nextB()

	return !more
}

// Lexicographic compares a and b element by element with cmp. The first non-zero
// comparison decides; if one sequence is a prefix of the other, the shorter one
// sorts first.
func Lexicographic[T any](a, b iter.Seq[T], cmp func(T, T) int) int {
	nextB, stop := iter.Pull(b)
	defer stop()

	for va := range a {
		vb, ok := nextB()
		if !ok {
			return 1
		}

		if c := cmp(va, vb); c != 0 {
			return c
		}
	}

	if _, more := nextB(); more {
		return -1
	}

	return 0
}

// FromLess turns a strict weak ordering into a three-way comparison.
// Elements that are unordered with respect to less compare as 0.
func FromLess[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
