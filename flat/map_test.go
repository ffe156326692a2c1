package flat_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/amp-labs/amp-flat/errors"
	"github.com/amp-labs/amp-flat/flat"
	"github.com/amp-labs/amp-flat/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMap(t *testing.T) {
	t.Parallel()

	m := flat.NewMap[string, int]()
	require.NotNil(t, m)
	assert.True(t, m.Empty())
	assert.Equal(t, 0, m.Len())
	require.NoError(t, m.Validate())

	_, ok := m.Find("a")
	assert.False(t, ok)
}

func TestNewMapFunc_NilOrderingPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { flat.NewMapFunc[string, int](nil) })
}

func TestMap_Insert(t *testing.T) {
	t.Parallel()

	t.Run("keeps keys sorted", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[int, string]()

		for _, k := range []int{5, 2, 8, 1, 9, 3, 7, 4, 6} {
			_, inserted := m.Insert(k, "v")
			require.True(t, inserted)
		}

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, slices.Collect(m.Keys()))
		require.NoError(t, m.Validate())
	})

	t.Run("rejects equivalent keys", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[string, int]()

		i, inserted := m.Insert("b", 1)
		assert.Equal(t, 0, i)
		assert.True(t, inserted)

		i, inserted = m.Insert("a", 2)
		assert.Equal(t, 0, i)
		assert.True(t, inserted)

		i, inserted = m.Insert("b", 3)
		assert.Equal(t, 1, i)
		assert.False(t, inserted)

		v, ok := m.Get("b")
		require.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("uses the custom ordering for equivalence", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMapFunc[string, int](func(a, b string) bool {
			return strings.ToLower(a) < strings.ToLower(b)
		})

		m.Insert("Go", 1)
		_, inserted := m.Insert("GO", 2)
		assert.False(t, inserted)

		k, v := m.PairAt(0)
		assert.Equal(t, "Go", k)
		assert.Equal(t, 1, v)
		assert.True(t, m.Contains("go"))
	})

	t.Run("insert pair", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[int, int]()
		_, inserted := m.InsertPair(flat.Pair[int, int]{Key: 3, Value: 30})
		assert.True(t, inserted)
		assert.Equal(t, 1, m.Count(3))
	})
}

func TestMap_TryEmplace(t *testing.T) {
	t.Parallel()

	m := flat.NewMap[string, int]()
	calls := 0
	build := func() int {
		calls++

		return 1
	}

	i, inserted := m.TryEmplace("a", build)
	assert.Equal(t, 0, i)
	assert.True(t, inserted)

	i, inserted = m.TryEmplace("a", build)
	assert.Equal(t, 0, i)
	assert.False(t, inserted)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.Len())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	i, inserted = m.TryEmplace("b", nil)
	assert.Equal(t, 1, i)
	assert.True(t, inserted)
	assert.Equal(t, 0, *m.ValueAt(i))
}

func TestMap_At(t *testing.T) {
	t.Parallel()

	t.Run("missing key fails without inserting", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[string, int]()
		m.Insert("present", 1)

		v, err := m.At("missing")
		require.ErrorIs(t, err, errors.ErrOutOfRange)
		assert.Nil(t, v)
		assert.Equal(t, 1, m.Len())
		assert.False(t, m.Contains("missing"))
	})

	t.Run("present key is writable", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[string, int]()
		m.Insert("k", 1)

		v, err := m.At("k")
		require.NoError(t, err)

		*v = 5

		got, _ := m.Get("k")
		assert.Equal(t, 5, got)
	})
}

func TestMap_Ref(t *testing.T) {
	t.Parallel()

	m := flat.NewMap[string, int]()

	v := m.Ref("new")
	require.NotNil(t, v)
	assert.Equal(t, 0, *v)
	assert.Equal(t, 1, m.Len())

	*m.Ref("new") += 3
	*m.Ref("new") += 4

	got, ok := m.Get("new")
	require.True(t, ok)
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, m.Len())
}

func TestMap_InsertOrAssign(t *testing.T) {
	t.Parallel()

	m := flat.NewMap[string, int]()

	_, inserted := m.InsertOrAssign("x", 1)
	assert.True(t, inserted)

	i, inserted := m.InsertOrAssign("x", 2)
	assert.False(t, inserted)
	assert.Equal(t, 0, i)

	v, _ := m.Get("x")
	assert.Equal(t, 2, v)
}

func TestMap_Hints(t *testing.T) {
	t.Parallel()

	base := flat.NewMap[int, string]()
	for k := 0; k < 100; k += 10 {
		base.Insert(k, "base")
	}

	// Every hint in [0, Len] must give the same result as the unhinted insert,
	// for present keys, absent keys and keys past either end.
	for _, k := range []int{-5, 0, 5, 40, 45, 90, 95} {
		want := base.Clone()
		wantIndex, wantInserted := want.Insert(k, "new")

		for hint := 0; hint <= base.Len(); hint++ {
			got := base.Clone()

			i, inserted := got.InsertHint(hint, k, "new")
			assert.Equal(t, wantIndex, i, "key %d hint %d", k, hint)
			assert.Equal(t, wantInserted, inserted, "key %d hint %d", k, hint)
			assert.True(t, flat.MapEqual(want, got), "key %d hint %d", k, hint)

			emplaced := base.Clone()

			i, inserted = emplaced.TryEmplaceHint(hint, k, func() string { return "new" })
			assert.Equal(t, wantIndex, i, "key %d hint %d", k, hint)
			assert.Equal(t, wantInserted, inserted, "key %d hint %d", k, hint)
			assert.True(t, flat.MapEqual(want, emplaced), "key %d hint %d", k, hint)
		}
	}
}

func TestMap_Bounds(t *testing.T) {
	t.Parallel()

	m := flat.MapFrom(slices.All([]string{"a", "b", "c"}))
	// Built from index -> value pairs: keys 0, 1, 2.
	assert.Equal(t, 1, m.LowerBound(1))
	assert.Equal(t, 2, m.UpperBound(1))

	lo, hi := m.EqualRange(7)
	assert.Equal(t, 3, lo)
	assert.Equal(t, 3, hi)

	i, ok := m.Find(7)
	assert.False(t, ok)
	assert.Equal(t, m.Len(), i)

	i, ok = m.Find(2)
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Equal(t, 2, m.KeyAt(i))
}

func TestMap_Erase(t *testing.T) {
	t.Parallel()

	t.Run("by key", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[int, int]()
		m.Insert(1, 1)
		m.Insert(2, 2)

		assert.Equal(t, 1, m.Erase(1))
		assert.Equal(t, 0, m.Erase(1))
		assert.Equal(t, []int{2}, slices.Collect(m.Keys()))
	})

	t.Run("insert then erase restores the map", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[int, int]()
		for k := range 10 {
			m.Insert(k*2, k)
		}

		before := m.Clone()

		m.Insert(7, 0)
		m.Erase(7)
		assert.True(t, flat.MapEqual(before, m))
	})

	t.Run("at index and range", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[int, int]()
		for k := range 6 {
			m.Insert(k, k)
		}

		next := m.EraseAt(2)
		assert.Equal(t, 2, next)
		assert.Equal(t, 3, m.KeyAt(next))

		next = m.EraseRange(1, 3)
		assert.Equal(t, 1, next)
		assert.Equal(t, []int{0, 4, 5}, slices.Collect(m.Keys()))

		last := m.Len() - 1
		assert.Equal(t, last, m.EraseAt(last))
		assert.Equal(t, last, m.Len())
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		m := flat.NewSmallMap[int, int]()
		for k := range 40 {
			m.Insert(k, k)
		}

		m.Clear()
		assert.True(t, m.Empty())

		m.Insert(1, 1)
		assert.Equal(t, 1, m.Len())
	})
}

func TestMap_Iteration(t *testing.T) {
	t.Parallel()

	m := flat.NewMap[string, int]()
	m.Insert("b", 2)
	m.Insert("c", 3)
	m.Insert("a", 1)

	var keys []string

	var values []int

	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}

	assert.Equal(t, []string{"a", "b", "c"}, keys)
	assert.Equal(t, []int{1, 2, 3}, values)
	assert.Equal(t, []int{1, 2, 3}, slices.Collect(m.Values()))

	keys = keys[:0]
	for k := range m.Backward() {
		keys = append(keys, k)
	}

	assert.Equal(t, []string{"c", "b", "a"}, keys)

	sum := 0
	m.ForEach(func(_ string, v int) { sum += v })
	assert.Equal(t, 6, sum)

	p, ok := m.FindFirst(func(_ string, v int) bool { return v > 1 })
	require.True(t, ok)
	assert.Equal(t, "b", p.Key)

	_, ok = m.FindFirst(func(_ string, v int) bool { return v > 10 })
	assert.False(t, ok)

	for k := range m.Keys() {
		if k == "b" {
			break
		}
	}
}

func TestMap_ValueMutation(t *testing.T) {
	t.Parallel()

	m := flat.NewMap[string, []string]()
	i, _ := m.Insert("k", nil)

	v := m.ValueAt(i)
	*v = append(*v, "x")

	got, _ := m.Get("k")
	assert.Equal(t, []string{"x"}, got)
}

func TestMap_CloneSwapTake(t *testing.T) {
	t.Parallel()

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		m := flat.NewSmallMap[int, int]()
		m.Insert(1, 1)

		c := m.Clone()
		c.Insert(2, 2)
		*c.Ref(1) = 10

		assert.Equal(t, 1, m.Len())

		v, _ := m.Get(1)
		assert.Equal(t, 1, v)
	})

	t.Run("swap exchanges contents and ordering", func(t *testing.T) {
		t.Parallel()

		a := flat.NewMap[int, int]()
		a.Insert(1, 1)
		a.Insert(2, 2)

		b := flat.NewMapFunc[int, int](sortable.Reverse(sortable.Natural[int]()))
		b.Insert(5, 5)

		a.Swap(b)

		assert.Equal(t, []int{5}, slices.Collect(a.Keys()))
		assert.Equal(t, []int{1, 2}, slices.Collect(b.Keys()))

		a.Insert(9, 9)
		assert.Equal(t, []int{9, 5}, slices.Collect(a.Keys()))
	})

	t.Run("take leaves the source empty and usable", func(t *testing.T) {
		t.Parallel()

		m := flat.NewSmallMap[int, int]()
		for k := range 20 {
			m.Insert(k, k)
		}

		moved := m.Take()
		assert.Equal(t, 20, moved.Len())
		assert.True(t, m.Empty())

		m.Insert(3, 3)
		assert.Equal(t, 1, m.Len())
		assert.Equal(t, 20, moved.Len())
	})
}

func TestMap_Comparison(t *testing.T) {
	t.Parallel()

	build := func(kv ...int) *flat.VectorMap[int, int] {
		m := flat.NewMap[int, int]()
		for i := 0; i < len(kv); i += 2 {
			m.Insert(kv[i], kv[i+1])
		}

		return m
	}

	tests := []struct {
		name string
		a, b *flat.VectorMap[int, int]
		want int
	}{
		{name: "both empty", a: build(), b: build(), want: 0},
		{name: "equal", a: build(1, 1, 2, 2), b: build(2, 2, 1, 1), want: 0},
		{name: "prefix sorts first", a: build(1, 1), b: build(1, 1, 2, 2), want: -1},
		{name: "smaller key", a: build(1, 9), b: build(2, 0), want: -1},
		{name: "larger value", a: build(1, 2), b: build(1, 1), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, flat.MapCompare(tt.a, tt.b))
			assert.Equal(t, -tt.want, flat.MapCompare(tt.b, tt.a))
			assert.Equal(t, tt.want == 0, flat.MapEqual(tt.a, tt.b))
		})
	}
}

func TestMapFrom(t *testing.T) {
	t.Parallel()

	t.Run("first of equivalent keys wins", func(t *testing.T) {
		t.Parallel()

		seq := func(yield func(string, int) bool) {
			for i, k := range []string{"b", "a", "b", "c", "a"} {
				if !yield(k, i) {
					return
				}
			}
		}

		m := flat.MapFrom(seq)
		assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(m.Keys()))
		assert.Equal(t, []int{1, 0, 3}, slices.Collect(m.Values()))
	})

	t.Run("insert all into a non-empty map", func(t *testing.T) {
		t.Parallel()

		m := flat.NewMap[int, string]()
		m.Insert(1, "kept")

		added := m.InsertAll(slices.All([]string{"zero", "one", "two"}))
		assert.Equal(t, 2, added)

		v, _ := m.Get(1)
		assert.Equal(t, "kept", v)
	})

	t.Run("from sorted input", func(t *testing.T) {
		t.Parallel()

		m := flat.MapFromSorted(sortable.Natural[int](), slices.All([]string{"a", "b"}))
		require.NoError(t, m.Validate())
		assert.Equal(t, 2, m.Len())
	})
}
