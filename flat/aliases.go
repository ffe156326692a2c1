package flat

import (
	"cmp"
	"iter"
	"slices"

	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

// Containers backed by a plain growable slice.
type (
	VectorMap[K, V any]      = Map[K, V, sequence.Vector[Pair[K, V]], *sequence.Vector[Pair[K, V]]]
	VectorMultiMap[K, V any] = MultiMap[K, V, sequence.Vector[Pair[K, V]], *sequence.Vector[Pair[K, V]]]
	VectorSet[K any]         = Set[K, sequence.Vector[K], *sequence.Vector[K]]
	VectorMultiSet[K any]    = MultiSet[K, sequence.Vector[K], *sequence.Vector[K]]
)

// Containers that keep up to 16 elements inline before moving to the heap.
type (
	SmallMap[K, V any]      = Map[K, V, sequence.Small16[Pair[K, V]], *sequence.Small16[Pair[K, V]]]
	SmallMultiMap[K, V any] = MultiMap[K, V, sequence.Small16[Pair[K, V]], *sequence.Small16[Pair[K, V]]]
	SmallSet[K any]         = Set[K, sequence.Small16[K], *sequence.Small16[K]]
	SmallMultiSet[K any]    = MultiSet[K, sequence.Small16[K], *sequence.Small16[K]]
)

// NewMap creates an empty map ordered by the natural ordering of K.
func NewMap[K cmp.Ordered, V any]() *VectorMap[K, V] {
	return NewMapFunc[K, V](sortable.Natural[K]())
}

// NewMapFunc creates an empty map ordered by less.
func NewMapFunc[K, V any](less sortable.Less[K]) *VectorMap[K, V] {
	return NewMapOn[K, V, sequence.Vector[Pair[K, V]]](less)
}

// NewSmallMap creates an empty inline-first map ordered by the natural ordering of K.
func NewSmallMap[K cmp.Ordered, V any]() *SmallMap[K, V] {
	return NewSmallMapFunc[K, V](sortable.Natural[K]())
}

// NewSmallMapFunc creates an empty inline-first map ordered by less.
func NewSmallMapFunc[K, V any](less sortable.Less[K]) *SmallMap[K, V] {
	return NewMapOn[K, V, sequence.Small16[Pair[K, V]]](less)
}

// MapFrom builds a map from seq. Among equivalent keys the first one wins.
func MapFrom[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *VectorMap[K, V] {
	return MapFromFunc(sortable.Natural[K](), seq)
}

// MapFromFunc builds a map ordered by less from seq. Among equivalent keys the first one wins.
func MapFromFunc[K, V any](less sortable.Less[K], seq iter.Seq2[K, V]) *VectorMap[K, V] {
	m := NewMapFunc[K, V](less)
	m.InsertAll(seq)

	return m
}

// MapFromSorted builds a map from pairs already sorted by less with no
// equivalent keys. The input is not re-sorted; out-of-order input trips an
// assertion in debug builds and leaves an invalid map otherwise.
func MapFromSorted[K, V any](less sortable.Less[K], seq iter.Seq2[K, V]) *VectorMap[K, V] {
	m := NewMapFunc[K, V](less)
	m.appendSorted(slices.Collect(pairs(seq)))

	return m
}

// NewMultiMap creates an empty multimap ordered by the natural ordering of K.
func NewMultiMap[K cmp.Ordered, V any]() *VectorMultiMap[K, V] {
	return NewMultiMapFunc[K, V](sortable.Natural[K]())
}

// NewMultiMapFunc creates an empty multimap ordered by less.
func NewMultiMapFunc[K, V any](less sortable.Less[K]) *VectorMultiMap[K, V] {
	return NewMultiMapOn[K, V, sequence.Vector[Pair[K, V]]](less)
}

// NewSmallMultiMap creates an empty inline-first multimap ordered by the natural ordering of K.
func NewSmallMultiMap[K cmp.Ordered, V any]() *SmallMultiMap[K, V] {
	return NewSmallMultiMapFunc[K, V](sortable.Natural[K]())
}

// NewSmallMultiMapFunc creates an empty inline-first multimap ordered by less.
func NewSmallMultiMapFunc[K, V any](less sortable.Less[K]) *SmallMultiMap[K, V] {
	return NewMultiMapOn[K, V, sequence.Small16[Pair[K, V]]](less)
}

// MultiMapFrom builds a multimap from seq, keeping every pair.
func MultiMapFrom[K cmp.Ordered, V any](seq iter.Seq2[K, V]) *VectorMultiMap[K, V] {
	return MultiMapFromFunc(sortable.Natural[K](), seq)
}

// MultiMapFromFunc builds a multimap ordered by less from seq.
func MultiMapFromFunc[K, V any](less sortable.Less[K], seq iter.Seq2[K, V]) *VectorMultiMap[K, V] {
	m := NewMultiMapFunc[K, V](less)
	m.InsertAll(seq)

	return m
}

// MultiMapFromSorted builds a multimap from pairs already sorted by less.
func MultiMapFromSorted[K, V any](less sortable.Less[K], seq iter.Seq2[K, V]) *VectorMultiMap[K, V] {
	m := NewMultiMapFunc[K, V](less)
	m.appendSorted(slices.Collect(pairs(seq)))

	return m
}

// NewSet creates an empty set ordered by the natural ordering of K.
func NewSet[K cmp.Ordered]() *VectorSet[K] {
	return NewSetFunc(sortable.Natural[K]())
}

// NewSetFunc creates an empty set ordered by less.
func NewSetFunc[K any](less sortable.Less[K]) *VectorSet[K] {
	return NewSetOn[K, sequence.Vector[K]](less)
}

// NewSmallSet creates an empty inline-first set ordered by the natural ordering of K.
func NewSmallSet[K cmp.Ordered]() *SmallSet[K] {
	return NewSmallSetFunc(sortable.Natural[K]())
}

// NewSmallSetFunc creates an empty inline-first set ordered by less.
func NewSmallSetFunc[K any](less sortable.Less[K]) *SmallSet[K] {
	return NewSetOn[K, sequence.Small16[K]](less)
}

// SetFrom builds a set from seq, dropping duplicates.
func SetFrom[K cmp.Ordered](seq iter.Seq[K]) *VectorSet[K] {
	return SetFromFunc(sortable.Natural[K](), seq)
}

// SetFromFunc builds a set ordered by less from seq. Among equivalent keys the first one wins.
func SetFromFunc[K any](less sortable.Less[K], seq iter.Seq[K]) *VectorSet[K] {
	s := NewSetFunc(less)
	s.InsertAll(seq)

	return s
}

// SetFromSorted builds a set from keys already sorted by less with no duplicates.
func SetFromSorted[K any](less sortable.Less[K], seq iter.Seq[K]) *VectorSet[K] {
	s := NewSetFunc(less)
	s.appendSorted(slices.Collect(seq))

	return s
}

// NewMultiSet creates an empty multiset ordered by the natural ordering of K.
func NewMultiSet[K cmp.Ordered]() *VectorMultiSet[K] {
	return NewMultiSetFunc(sortable.Natural[K]())
}

// NewMultiSetFunc creates an empty multiset ordered by less.
func NewMultiSetFunc[K any](less sortable.Less[K]) *VectorMultiSet[K] {
	return NewMultiSetOn[K, sequence.Vector[K]](less)
}

// NewSmallMultiSet creates an empty inline-first multiset ordered by the natural ordering of K.
func NewSmallMultiSet[K cmp.Ordered]() *SmallMultiSet[K] {
	return NewSmallMultiSetFunc(sortable.Natural[K]())
}

// NewSmallMultiSetFunc creates an empty inline-first multiset ordered by less.
func NewSmallMultiSetFunc[K any](less sortable.Less[K]) *SmallMultiSet[K] {
	return NewMultiSetOn[K, sequence.Small16[K]](less)
}

// MultiSetFrom builds a multiset from seq.
func MultiSetFrom[K cmp.Ordered](seq iter.Seq[K]) *VectorMultiSet[K] {
	return MultiSetFromFunc(sortable.Natural[K](), seq)
}

// MultiSetFromFunc builds a multiset ordered by less from seq.
func MultiSetFromFunc[K any](less sortable.Less[K], seq iter.Seq[K]) *VectorMultiSet[K] {
	s := NewMultiSetFunc(less)
	s.InsertAll(seq)

	return s
}

// MultiSetFromSorted builds a multiset from keys already sorted by less.
func MultiSetFromSorted[K any](less sortable.Less[K], seq iter.Seq[K]) *VectorMultiSet[K] {
	s := NewMultiSetFunc(less)
	s.appendSorted(slices.Collect(seq))

	return s
}
