package flat

import (
	"iter"

	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

// MultiSet is a sorted collection of keys that allows duplicates. Equivalent
// keys are adjacent and keep their insertion order.
//
// The zero value is not ready to use; create multisets with NewMultiSet and friends.
type MultiSet[K any, S any, PS sequence.Ptr[K, S]] struct {
	core[K, K, S, PS]
}

// NewMultiSetOn creates an empty multiset on the backing strategy S.
func NewMultiSetOn[K, S any, PS sequence.Ptr[K, S]](less sortable.Less[K]) *MultiSet[K, S, PS] {
	s := &MultiSet[K, S, PS]{}
	s.init(less, self[K], false)

	return s
}

// Insert adds k at the end of its equal-key run and returns its index.
func (s *MultiSet[K, S, PS]) Insert(k K) int {
	i, _ := s.insertElem(k)

	return i
}

// InsertHint is Insert with a hint (see Map.InsertHint). The key lands at the
// end of its equal-key run whatever the hint.
func (s *MultiSet[K, S, PS]) InsertHint(hint int, k K) int {
	i, _ := s.insertElemHint(hint, k)

	return i
}

// InsertAll inserts every key from seq and returns how many were added.
func (s *MultiSet[K, S, PS]) InsertAll(seq iter.Seq[K]) int {
	return s.insertAll(seq)
}

// All iterates over the keys in order, repeating duplicates.
func (s *MultiSet[K, S, PS]) All() iter.Seq[K] {
	return dropIndex(s.elements())
}

// Backward iterates over the keys in reverse order.
func (s *MultiSet[K, S, PS]) Backward() iter.Seq[K] {
	return dropIndex(s.elementsBackward())
}

// ValueComp is the key ordering.
func (s *MultiSet[K, S, PS]) ValueComp() func(a, b K) bool {
	return s.valueComp()
}

// Clone returns a deep copy of the multiset's storage.
func (s *MultiSet[K, S, PS]) Clone() *MultiSet[K, S, PS] {
	out := &MultiSet[K, S, PS]{}
	s.cloneInto(&out.core)

	return out
}

// Swap exchanges the contents and orderings of s and other.
func (s *MultiSet[K, S, PS]) Swap(other *MultiSet[K, S, PS]) {
	s.swap(&other.core)
}

// Take moves the contents of s into a new multiset, leaving s empty but usable.
func (s *MultiSet[K, S, PS]) Take() *MultiSet[K, S, PS] {
	out := &MultiSet[K, S, PS]{}
	s.moveInto(&out.core)

	return out
}

// Equal reports whether both multisets hold equivalent keys with the same multiplicities.
func (s *MultiSet[K, S, PS]) Equal(other *MultiSet[K, S, PS]) bool {
	return s.equalFunc(&other.core, func(a, b K) bool {
		return sortable.Equivalent(s.less, a, b)
	})
}

// Compare orders two multisets lexicographically under the multiset's ordering.
func (s *MultiSet[K, S, PS]) Compare(other *MultiSet[K, S, PS]) int {
	return s.compareFunc(&other.core, s.less.Compare)
}
