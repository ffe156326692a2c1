package flat

import (
	"iter"

	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

func self[K any](k *K) K {
	return *k
}

// Set is a sorted set of unique keys stored contiguously.
//
// The zero value is not ready to use; create sets with NewSet and friends.
type Set[K any, S any, PS sequence.Ptr[K, S]] struct {
	core[K, K, S, PS]
}

// NewSetOn creates an empty set on the backing strategy S.
func NewSetOn[K, S any, PS sequence.Ptr[K, S]](less sortable.Less[K]) *Set[K, S, PS] {
	s := &Set[K, S, PS]{}
	s.init(less, self[K], true)

	return s
}

// Insert adds k unless an equivalent key is present. It returns the index of
// the key and whether an insertion happened.
func (s *Set[K, S, PS]) Insert(k K) (int, bool) {
	return s.insertElem(k)
}

// InsertHint is Insert with a hint (see Map.InsertHint).
func (s *Set[K, S, PS]) InsertHint(hint int, k K) (int, bool) {
	return s.insertElemHint(hint, k)
}

// InsertAll inserts every key from seq and returns how many were added.
func (s *Set[K, S, PS]) InsertAll(seq iter.Seq[K]) int {
	return s.insertAll(seq)
}

// All iterates over the keys in order.
func (s *Set[K, S, PS]) All() iter.Seq[K] {
	return dropIndex(s.elements())
}

// Backward iterates over the keys in reverse order.
func (s *Set[K, S, PS]) Backward() iter.Seq[K] {
	return dropIndex(s.elementsBackward())
}

// ValueComp is the key ordering; a set's values are its keys.
func (s *Set[K, S, PS]) ValueComp() func(a, b K) bool {
	return s.valueComp()
}

// Clone returns a deep copy of the set's storage.
func (s *Set[K, S, PS]) Clone() *Set[K, S, PS] {
	out := &Set[K, S, PS]{}
	s.cloneInto(&out.core)

	return out
}

// Swap exchanges the contents and orderings of s and other.
func (s *Set[K, S, PS]) Swap(other *Set[K, S, PS]) {
	s.swap(&other.core)
}

// Take moves the contents of s into a new set, leaving s empty but usable.
func (s *Set[K, S, PS]) Take() *Set[K, S, PS] {
	out := &Set[K, S, PS]{}
	s.moveInto(&out.core)

	return out
}

// Equal reports whether both sets hold equivalent keys.
func (s *Set[K, S, PS]) Equal(other *Set[K, S, PS]) bool {
	return s.equalFunc(&other.core, func(a, b K) bool {
		return sortable.Equivalent(s.less, a, b)
	})
}

// Compare orders two sets lexicographically under the set's ordering.
// The comparison operators derive from it (a < b is s.Compare(b) < 0).
func (s *Set[K, S, PS]) Compare(other *Set[K, S, PS]) int {
	return s.compareFunc(&other.core, s.less.Compare)
}
