package flat

import (
	"cmp"
	"iter"

	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

// MultiMap is a sorted map that allows equivalent keys. Pairs with equivalent
// keys are adjacent and stay in insertion order.
//
// The zero value is not ready to use; create multimaps with NewMultiMap and friends.
type MultiMap[K, V any, S any, PS sequence.Ptr[Pair[K, V], S]] struct {
	core[K, Pair[K, V], S, PS]
}

// NewMultiMapOn creates an empty multimap on the backing strategy S.
func NewMultiMapOn[K, V, S any, PS sequence.Ptr[Pair[K, V], S]](less sortable.Less[K]) *MultiMap[K, V, S, PS] {
	m := &MultiMap[K, V, S, PS]{}
	m.init(less, pairKey[K, V], false)

	return m
}

// Insert adds (k, v) after any pairs with an equivalent key and returns its index.
func (m *MultiMap[K, V, S, PS]) Insert(k K, v V) int {
	i, _ := m.insertElem(Pair[K, V]{Key: k, Value: v})

	return i
}

// InsertHint is Insert with a hint (see Map.InsertHint). The pair lands at the
// end of its equal-key run whatever the hint.
func (m *MultiMap[K, V, S, PS]) InsertHint(hint int, k K, v V) int {
	i, _ := m.insertElemHint(hint, Pair[K, V]{Key: k, Value: v})

	return i
}

// InsertAll inserts every pair from seq and returns how many were added.
func (m *MultiMap[K, V, S, PS]) InsertAll(seq iter.Seq2[K, V]) int {
	return m.insertAll(pairs(seq))
}

// ValueAt returns a pointer to the value at index i.
func (m *MultiMap[K, V, S, PS]) ValueAt(i int) *V {
	return &m.s().At(i).Value
}

// PairAt returns copies of the key and value at index i.
func (m *MultiMap[K, V, S, PS]) PairAt(i int) (K, V) {
	p := m.s().At(i)

	return p.Key, p.Value
}

// ValuesOf iterates over the values mapped to keys equivalent to k, in insertion order.
func (m *MultiMap[K, V, S, PS]) ValuesOf(k K) iter.Seq[V] {
	return func(yield func(V) bool) {
		lo, hi := m.EqualRange(k)

		for i := lo; i < hi; i++ {
			if !yield(m.s().At(i).Value) {
				return
			}
		}
	}
}

// All iterates over keys and values in key order.
func (m *MultiMap[K, V, S, PS]) All() iter.Seq2[K, V] {
	return unpairs(m.elements())
}

// Backward iterates over keys and values in reverse order.
func (m *MultiMap[K, V, S, PS]) Backward() iter.Seq2[K, V] {
	return unpairs(m.elementsBackward())
}

// Keys iterates over the keys in order, repeating duplicates.
func (m *MultiMap[K, V, S, PS]) Keys() iter.Seq[K] {
	return keysOf(m.elements())
}

// Values iterates over the values in key order.
func (m *MultiMap[K, V, S, PS]) Values() iter.Seq[V] {
	return valuesOf(m.elements())
}

// ValueComp orders pairs by their keys.
func (m *MultiMap[K, V, S, PS]) ValueComp() func(a, b Pair[K, V]) bool {
	return m.valueComp()
}

// Clone returns a deep copy of the multimap's storage.
func (m *MultiMap[K, V, S, PS]) Clone() *MultiMap[K, V, S, PS] {
	out := &MultiMap[K, V, S, PS]{}
	m.cloneInto(&out.core)

	return out
}

// Swap exchanges the contents and orderings of m and other.
func (m *MultiMap[K, V, S, PS]) Swap(other *MultiMap[K, V, S, PS]) {
	m.swap(&other.core)
}

// Take moves the contents of m into a new multimap, leaving m empty but usable.
func (m *MultiMap[K, V, S, PS]) Take() *MultiMap[K, V, S, PS] {
	out := &MultiMap[K, V, S, PS]{}
	m.moveInto(&out.core)

	return out
}

// EqualFunc reports whether both multimaps hold equivalent keys and equal
// values (under eq) at every position.
func (m *MultiMap[K, V, S, PS]) EqualFunc(other *MultiMap[K, V, S, PS], eq func(a, b V) bool) bool {
	return m.equalFunc(&other.core, func(a, b Pair[K, V]) bool {
		return sortable.Equivalent(m.less, a.Key, b.Key) && eq(a.Value, b.Value)
	})
}

// CompareFunc compares the multimaps lexicographically by (key, value).
func (m *MultiMap[K, V, S, PS]) CompareFunc(other *MultiMap[K, V, S, PS], cmpValue func(a, b V) int) int {
	return m.compareFunc(&other.core, func(a, b Pair[K, V]) int {
		if c := m.less.Compare(a.Key, b.Key); c != 0 {
			return c
		}

		return cmpValue(a.Value, b.Value)
	})
}

// MultiMapEqual reports whether two multimaps hold the same pairs in the same order.
func MultiMapEqual[K any, V comparable, S any, PS sequence.Ptr[Pair[K, V], S]](a, b *MultiMap[K, V, S, PS]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// MultiMapCompare orders two multimaps lexicographically.
func MultiMapCompare[K any, V cmp.Ordered, S any, PS sequence.Ptr[Pair[K, V], S]](a, b *MultiMap[K, V, S, PS]) int {
	return a.CompareFunc(b, cmp.Compare[V])
}
