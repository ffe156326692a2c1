// Package flat provides sorted associative containers stored in one contiguous
// buffer: Map, MultiMap, Set and MultiSet.
//
// Elements are kept in a backing sequence (see package sequence) sorted by a
// strict weak ordering over keys. Lookups are binary searches; insertions and
// erasures shift the tail of the buffer, so they cost O(n) moves but only
// O(log n) comparisons. That trade favours read-heavy, small to medium
// collections where cache locality beats node-based trees.
//
// Positions are plain indexes into the sequence and Len() is the end position.
// Any insertion or erasure invalidates every previously obtained index and
// value pointer.
//
// Thread-safety: containers are not thread-safe. Concurrent access to one
// container must be synchronized by the caller.
package flat

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/amp-flat/assert"
	"github.com/amp-labs/amp-flat/errors"
	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

// core implements the ordered operations shared by every container. K is the
// key type, E the stored element and S the backing strategy, driven through PS.
type core[K, E any, S any, PS sequence.Ptr[E, S]] struct {
	seq    S
	less   sortable.Less[K]
	key    func(*E) K
	unique bool
}

func (c *core[K, E, S, PS]) init(less sortable.Less[K], key func(*E) K, unique bool) {
	if less == nil {
		panic("flat: nil ordering predicate")
	}

	c.less = less
	c.key = key
	c.unique = unique
}

func (c *core[K, E, S, PS]) s() PS {
	return PS(&c.seq)
}

func (c *core[K, E, S, PS]) keyAt(i int) K {
	return c.key(c.s().At(i))
}

// Len returns the number of elements.
func (c *core[K, E, S, PS]) Len() int {
	return c.s().Len()
}

// Empty reports whether the container holds no elements.
func (c *core[K, E, S, PS]) Empty() bool {
	return c.s().Len() == 0
}

// MaxLen returns the largest number of elements the backing sequence can hold.
func (c *core[K, E, S, PS]) MaxLen() int {
	return c.s().MaxLen()
}

// Cap returns the current capacity of the backing sequence.
func (c *core[K, E, S, PS]) Cap() int {
	return c.s().Cap()
}

// Clear removes every element.
func (c *core[K, E, S, PS]) Clear() {
	c.s().Clear()
}

// Grow reserves room for n more elements.
func (c *core[K, E, S, PS]) Grow(n int) {
	c.s().Grow(n)
}

// KeyComp returns the ordering predicate.
func (c *core[K, E, S, PS]) KeyComp() sortable.Less[K] {
	return c.less
}

// KeyAt returns a copy of the key at index i. Keys are never exposed by
// reference: changing one in place would break the sort order.
func (c *core[K, E, S, PS]) KeyAt(i int) K {
	return c.keyAt(i)
}

// LowerBound returns the first index whose key is not less than k.
func (c *core[K, E, S, PS]) LowerBound(k K) int {
	return c.lowerBoundIn(0, c.Len(), k)
}

// UpperBound returns the first index whose key is greater than k.
func (c *core[K, E, S, PS]) UpperBound(k K) int {
	return c.upperBoundIn(0, c.Len(), k)
}

// EqualRange returns the half-open index range of keys equivalent to k.
func (c *core[K, E, S, PS]) EqualRange(k K) (int, int) {
	lo := c.LowerBound(k)

	return lo, c.upperBoundIn(lo, c.Len(), k)
}

// Find returns the index of the first key equivalent to k and true, or
// Len() and false if there is none.
func (c *core[K, E, S, PS]) Find(k K) (int, bool) {
	n := c.Len()

	i := c.LowerBound(k)
	if i < n && !c.less(k, c.keyAt(i)) {
		return i, true
	}

	return n, false
}

// Contains reports whether a key equivalent to k is present.
func (c *core[K, E, S, PS]) Contains(k K) bool {
	_, ok := c.Find(k)

	return ok
}

// Count returns the number of keys equivalent to k.
func (c *core[K, E, S, PS]) Count(k K) int {
	lo, hi := c.EqualRange(k)

	return hi - lo
}

// Erase removes every element whose key is equivalent to k and returns how many were removed.
func (c *core[K, E, S, PS]) Erase(k K) int {
	lo, hi := c.EqualRange(k)
	if lo < hi {
		c.s().Delete(lo, hi)
	}

	return hi - lo
}

// EraseAt removes the element at index i and returns the index of the element
// that followed it (which is i again, or Len() if it was the last one).
func (c *core[K, E, S, PS]) EraseAt(i int) int {
	c.s().Delete(i, i+1)

	return i
}

// EraseRange removes the elements in [i, j) and returns i.
func (c *core[K, E, S, PS]) EraseRange(i, j int) int {
	c.s().Delete(i, j)

	return i
}

// Validate checks the ordering invariant and, for unique-key containers, key
// uniqueness. Every violation is reported; nil means the container is sound.
// Violations only happen when the ordering predicate is not a strict weak
// ordering or when sorted-input constructors were handed unsorted data.
func (c *core[K, E, S, PS]) Validate() error {
	var errs errors.Collection

	for i := 1; i < c.Len(); i++ {
		prev, curr := c.keyAt(i-1), c.keyAt(i)

		switch {
		case c.less(curr, prev):
			errs.Add(fmt.Errorf("%w: index %d sorts before index %d", errors.ErrUnsorted, i, i-1))
		case c.unique && !c.less(prev, curr):
			errs.Add(fmt.Errorf("%w: indexes %d and %d hold equivalent keys", errors.ErrDuplicateKey, i-1, i))
		}
	}

	return errs.GetError()
}

func (c *core[K, E, S, PS]) lowerBoundIn(lo, hi int, k K) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec // lo and hi are non-negative indexes

		if c.less(c.keyAt(mid), k) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo
}

func (c *core[K, E, S, PS]) upperBoundIn(lo, hi int, k K) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec // lo and hi are non-negative indexes

		if c.less(k, c.keyAt(mid)) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return lo
}

// uniqueSlot returns the lower bound of k and whether it is free, i.e. no
// equivalent key occupies it.
func (c *core[K, E, S, PS]) uniqueSlot(k K) (int, bool) {
	i := c.LowerBound(k)
	if i < c.Len() && !c.less(k, c.keyAt(i)) {
		return i, false
	}

	return i, true
}

// uniqueHintSlot is uniqueSlot guided by a hint. A correct hint (the key sorts
// after the hint's predecessor and before the hint) costs two comparisons.
// Otherwise only the side of the hint that can contain the key is searched.
func (c *core[K, E, S, PS]) uniqueHintSlot(hint int, k K) (int, bool) {
	n := c.Len()
	hint = c.checkHint(hint, n)

	lo, hi := 0, n

	if hint == 0 || c.less(c.keyAt(hint-1), k) {
		if hint == n {
			return n, true
		}

		if c.less(k, c.keyAt(hint)) {
			return hint, true
		}

		lo = hint
	} else {
		hi = hint
	}

	i := c.lowerBoundIn(lo, hi, k)
	if i < n && !c.less(k, c.keyAt(i)) {
		return i, false
	}

	return i, true
}

// multiSlot is where a new element with key k goes in a multi-key container:
// the end of its equal-key run, which keeps duplicates in insertion order.
func (c *core[K, E, S, PS]) multiSlot(k K) int {
	return c.UpperBound(k)
}

// multiHintSlot finds the same slot as multiSlot, searching only the side of
// the hint that can contain it when the hint is wrong.
func (c *core[K, E, S, PS]) multiHintSlot(hint int, k K) int {
	n := c.Len()
	hint = c.checkHint(hint, n)

	if hint == 0 || !c.less(k, c.keyAt(hint-1)) {
		if hint == n || c.less(k, c.keyAt(hint)) {
			return hint
		}

		return c.upperBoundIn(hint+1, n, k)
	}

	return c.upperBoundIn(0, hint-1, k)
}

func (c *core[K, E, S, PS]) checkHint(hint, n int) int {
	assert.InRange(hint, 0, n, "flat: hint %d outside [0, %d]", hint, n)

	return min(max(hint, 0), n)
}

func (c *core[K, E, S, PS]) insertAt(i int, elem E) {
	c.s().Insert(i, elem)
}

// insertElem places elem according to the container's key policy and reports
// its index and whether it was inserted.
func (c *core[K, E, S, PS]) insertElem(elem E) (int, bool) {
	k := c.key(&elem)

	if !c.unique {
		i := c.multiSlot(k)
		c.insertAt(i, elem)

		return i, true
	}

	i, free := c.uniqueSlot(k)
	if free {
		c.insertAt(i, elem)
	}

	return i, free
}

func (c *core[K, E, S, PS]) insertElemHint(hint int, elem E) (int, bool) {
	k := c.key(&elem)

	if !c.unique {
		i := c.multiHintSlot(hint, k)
		c.insertAt(i, elem)

		return i, true
	}

	i, free := c.uniqueHintSlot(hint, k)
	if free {
		c.insertAt(i, elem)
	}

	return i, free
}

// insertAll adds every element of seq and returns how many were inserted.
// An empty container is bulk-built: the input is stable-sorted once and, for
// unique containers, the first of each run of equivalent keys is kept.
func (c *core[K, E, S, PS]) insertAll(seq iter.Seq[E]) int {
	if !c.Empty() {
		inserted := 0

		for elem := range seq {
			if _, ok := c.insertElem(elem); ok {
				inserted++
			}
		}

		return inserted
	}

	items := slices.Collect(seq)

	slices.SortStableFunc(items, func(a, b E) int {
		return c.less.Compare(c.key(&a), c.key(&b))
	})

	if c.unique {
		items = slices.CompactFunc(items, func(a, b E) bool {
			return sortable.Equivalent(c.less, c.key(&a), c.key(&b))
		})
	}

	c.appendSorted(items)

	return len(items)
}

// appendSorted appends items that are already in order.
func (c *core[K, E, S, PS]) appendSorted(items []E) {
	c.s().Grow(len(items))

	for _, elem := range items {
		c.s().Append(elem)
	}

	if assert.Enabled {
		assert.True(c.Validate() == nil, "flat: sorted input violates the container ordering")
	}
}

func (c *core[K, E, S, PS]) elements() iter.Seq2[int, E] {
	return c.s().All()
}

func (c *core[K, E, S, PS]) elementsBackward() iter.Seq2[int, E] {
	return c.s().Backward()
}

func (c *core[K, E, S, PS]) valueComp() func(a, b E) bool {
	return func(a, b E) bool {
		return c.less(c.key(&a), c.key(&b))
	}
}

// cloneInto deep-copies the receiver into an empty dst.
func (c *core[K, E, S, PS]) cloneInto(dst *core[K, E, S, PS]) {
	dst.init(c.less, c.key, c.unique)
	dst.s().Grow(c.Len())

	for _, elem := range c.elements() {
		dst.s().Append(elem)
	}
}

func (c *core[K, E, S, PS]) swap(other *core[K, E, S, PS]) {
	c.seq, other.seq = other.seq, c.seq
	c.less, other.less = other.less, c.less
	c.key, other.key = other.key, c.key
}

// moveInto transfers the contents to dst and leaves the receiver empty.
func (c *core[K, E, S, PS]) moveInto(dst *core[K, E, S, PS]) {
	dst.init(c.less, c.key, c.unique)
	dst.seq = c.seq

	var empty S
	c.seq = empty
}

func (c *core[K, E, S, PS]) equalFunc(other *core[K, E, S, PS], eq func(a, b E) bool) bool {
	return sequence.EqualFunc[E](c.s(), other.s(), eq)
}

func (c *core[K, E, S, PS]) compareFunc(other *core[K, E, S, PS], cmp func(a, b E) int) int {
	return sequence.CompareFunc[E](c.s(), other.s(), cmp)
}
