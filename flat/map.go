package flat

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/amp-labs/amp-flat/errors"
	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

// Pair is the element stored by Map and MultiMap.
type Pair[K, V any] struct {
	Key   K
	Value V
}

func pairKey[K, V any](p *Pair[K, V]) K {
	return p.Key
}

// Map is a sorted map with unique keys stored contiguously in a backing sequence S.
// Most code uses one of the aliases (VectorMap, SmallMap) and their constructors.
//
// The zero value is not ready to use; create maps with NewMap and friends.
type Map[K, V any, S any, PS sequence.Ptr[Pair[K, V], S]] struct {
	core[K, Pair[K, V], S, PS]
}

// NewMapOn creates an empty map on the backing strategy S.
//
// Example:
//
//	m := flat.NewMapOn[string, int, sequence.Small32[flat.Pair[string, int]]](sortable.Natural[string]())
func NewMapOn[K, V, S any, PS sequence.Ptr[Pair[K, V], S]](less sortable.Less[K]) *Map[K, V, S, PS] {
	m := &Map[K, V, S, PS]{}
	m.init(less, pairKey[K, V], true)

	return m
}

// Get returns the value mapped to k and whether it was present.
func (m *Map[K, V, S, PS]) Get(k K) (V, bool) {
	i, ok := m.Find(k)
	if !ok {
		var none V

		return none, false
	}

	return m.s().At(i).Value, true
}

// At returns a pointer to the value mapped to k, or an error wrapping
// errors.ErrOutOfRange if k is absent. It never inserts. The pointer is valid
// until the next insertion or erasure.
func (m *Map[K, V, S, PS]) At(k K) (*V, error) {
	i, ok := m.Find(k)
	if !ok {
		return nil, fmt.Errorf("%w: flat map has no key %v", errors.ErrOutOfRange, k)
	}

	return m.ValueAt(i), nil
}

// Ref returns a pointer to the value mapped to k, first inserting k with the
// zero value if it is absent. The pointer is valid until the next insertion
// or erasure.
func (m *Map[K, V, S, PS]) Ref(k K) *V {
	i, _ := m.TryEmplace(k, nil)

	return m.ValueAt(i)
}

// ValueAt returns a pointer to the value at index i. Values may be changed
// through it; keys can only be read, with KeyAt.
func (m *Map[K, V, S, PS]) ValueAt(i int) *V {
	return &m.s().At(i).Value
}

// PairAt returns copies of the key and value at index i.
func (m *Map[K, V, S, PS]) PairAt(i int) (K, V) {
	p := m.s().At(i)

	return p.Key, p.Value
}

// Insert adds (k, v) unless an equivalent key is present. It returns the index
// of the element with key k and whether an insertion happened.
func (m *Map[K, V, S, PS]) Insert(k K, v V) (int, bool) {
	return m.insertElem(Pair[K, V]{Key: k, Value: v})
}

// InsertPair is Insert for an existing Pair.
func (m *Map[K, V, S, PS]) InsertPair(p Pair[K, V]) (int, bool) {
	return m.insertElem(p)
}

// InsertHint is Insert with a hint: the index the caller expects the key to
// end up at. An accurate hint skips the binary search; a wrong one only narrows
// it. The outcome is always the same as Insert.
func (m *Map[K, V, S, PS]) InsertHint(hint int, k K, v V) (int, bool) {
	return m.insertElemHint(hint, Pair[K, V]{Key: k, Value: v})
}

// InsertOrAssign inserts (k, v) or, if k is present, overwrites its value.
// The boolean reports whether an insertion happened.
func (m *Map[K, V, S, PS]) InsertOrAssign(k K, v V) (int, bool) {
	i, free := m.uniqueSlot(k)
	if !free {
		m.s().At(i).Value = v

		return i, false
	}

	m.insertAt(i, Pair[K, V]{Key: k, Value: v})

	return i, true
}

// TryEmplace inserts k with the value produced by newValue, only if k is
// absent. newValue is not called when k is already present, so its side
// effects never happen for a rejected insert. A nil newValue means the zero value.
func (m *Map[K, V, S, PS]) TryEmplace(k K, newValue func() V) (int, bool) {
	i, free := m.uniqueSlot(k)
	if !free {
		return i, false
	}

	m.insertAt(i, Pair[K, V]{Key: k, Value: makeValue(newValue)})

	return i, true
}

// TryEmplaceHint is TryEmplace with an insertion hint (see InsertHint).
func (m *Map[K, V, S, PS]) TryEmplaceHint(hint int, k K, newValue func() V) (int, bool) {
	i, free := m.uniqueHintSlot(hint, k)
	if !free {
		return i, false
	}

	m.insertAt(i, Pair[K, V]{Key: k, Value: makeValue(newValue)})

	return i, true
}

// InsertAll inserts every pair from seq, keeping existing keys (and, among
// duplicates within seq, the first one). It returns the number of pairs added.
func (m *Map[K, V, S, PS]) InsertAll(seq iter.Seq2[K, V]) int {
	return m.insertAll(pairs(seq))
}

// All iterates over keys and values in key order.
func (m *Map[K, V, S, PS]) All() iter.Seq2[K, V] {
	return unpairs(m.elements())
}

// Backward iterates over keys and values in reverse key order.
func (m *Map[K, V, S, PS]) Backward() iter.Seq2[K, V] {
	return unpairs(m.elementsBackward())
}

// Keys iterates over the keys in order.
func (m *Map[K, V, S, PS]) Keys() iter.Seq[K] {
	return keysOf(m.elements())
}

// Values iterates over the values in key order.
func (m *Map[K, V, S, PS]) Values() iter.Seq[V] {
	return valuesOf(m.elements())
}

// ForEach calls f for every pair in key order.
func (m *Map[K, V, S, PS]) ForEach(f func(key K, value V)) {
	for k, v := range m.All() {
		f(k, v)
	}
}

// FindFirst returns the first pair in key order satisfying predicate.
func (m *Map[K, V, S, PS]) FindFirst(predicate func(key K, value V) bool) (Pair[K, V], bool) {
	for k, v := range m.All() {
		if predicate(k, v) {
			return Pair[K, V]{Key: k, Value: v}, true
		}
	}

	return Pair[K, V]{}, false
}

// ValueComp orders pairs by their keys.
func (m *Map[K, V, S, PS]) ValueComp() func(a, b Pair[K, V]) bool {
	return m.valueComp()
}

// Clone returns a deep copy of the map's storage. Values are copied with
// assignment, so pointers inside values are shared.
func (m *Map[K, V, S, PS]) Clone() *Map[K, V, S, PS] {
	out := &Map[K, V, S, PS]{}
	m.cloneInto(&out.core)

	return out
}

// Swap exchanges the contents and orderings of m and other.
func (m *Map[K, V, S, PS]) Swap(other *Map[K, V, S, PS]) {
	m.swap(&other.core)
}

// Take moves the contents of m into a new map, leaving m empty but usable.
func (m *Map[K, V, S, PS]) Take() *Map[K, V, S, PS] {
	out := &Map[K, V, S, PS]{}
	m.moveInto(&out.core)

	return out
}

// EqualFunc reports whether both maps have the same length, equivalent keys at
// each position, and values equal under eq.
func (m *Map[K, V, S, PS]) EqualFunc(other *Map[K, V, S, PS], eq func(a, b V) bool) bool {
	return m.equalFunc(&other.core, func(a, b Pair[K, V]) bool {
		return sortable.Equivalent(m.less, a.Key, b.Key) && eq(a.Value, b.Value)
	})
}

// CompareFunc compares the maps lexicographically by (key, value), keys by the
// map's ordering and values by cmpValue.
func (m *Map[K, V, S, PS]) CompareFunc(other *Map[K, V, S, PS], cmpValue func(a, b V) int) int {
	return m.compareFunc(&other.core, func(a, b Pair[K, V]) int {
		if c := m.less.Compare(a.Key, b.Key); c != 0 {
			return c
		}

		return cmpValue(a.Value, b.Value)
	})
}

// MapEqual reports whether two maps hold the same pairs. The inequality
// operator is !MapEqual(a, b).
func MapEqual[K any, V comparable, S any, PS sequence.Ptr[Pair[K, V], S]](a, b *Map[K, V, S, PS]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// MapCompare orders two maps lexicographically. The ordering operators derive
// from it: a < b is MapCompare(a, b) < 0, a >= b is MapCompare(a, b) >= 0, and so on.
func MapCompare[K any, V cmp.Ordered, S any, PS sequence.Ptr[Pair[K, V], S]](a, b *Map[K, V, S, PS]) int {
	return a.CompareFunc(b, cmp.Compare[V])
}

func makeValue[V any](newValue func() V) V {
	if newValue == nil {
		var value V

		return value
	}

	return newValue()
}
