// Package sortable provides the ordering predicates used by the flat containers,
// and wrapper types for primitives that implement the Sortable interface.
package sortable

import (
	"cmp"

	"github.com/amp-labs/amp-flat/compare"
)

// Sortable is implemented by types that carry their own ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Less is a strict weak ordering over K: irreflexive, asymmetric and transitive,
// with transitive incomparability. Two keys a and b are equivalent when neither
// Less(a, b) nor Less(b, a) holds.
//
// A Less that is not a strict weak ordering is a caller contract violation;
// containers built on it behave unpredictably but never corrupt memory.
type Less[K any] func(a, b K) bool

// Natural orders any cmp.Ordered type with cmp.Less (NaNs sort first).
func Natural[K cmp.Ordered]() Less[K] {
	return cmp.Less[K]
}

// Of orders a Sortable type by its LessThan method.
func Of[K Sortable[K]]() Less[K] {
	return func(a, b K) bool {
		return a.LessThan(b)
	}
}

// FromCompare adapts a three-way comparison (negative, zero, positive).
func FromCompare[K any](compareFunc func(a, b K) int) Less[K] {
	return func(a, b K) bool {
		return compareFunc(a, b) < 0
	}
}

// Reverse inverts an ordering.
func Reverse[K any](less Less[K]) Less[K] {
	return func(a, b K) bool {
		return less(b, a)
	}
}

// By orders values of T by a key derived from each value.
func By[T any, K cmp.Ordered](key func(T) K) Less[T] {
	return func(a, b T) bool {
		return key(a) < key(b)
	}
}

// Equivalent reports whether a and b are unordered with respect to less.
func Equivalent[K any](less Less[K], a, b K) bool {
	return !less(a, b) && !less(b, a)
}

// Compare turns the ordering into a three-way comparison.
func (l Less[K]) Compare(a, b K) int {
	return compare.FromLess[K](l)(a, b)
}
