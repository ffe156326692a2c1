package bench

import (
	"github.com/amp-labs/amp-flat/flat"
	"github.com/amp-labs/amp-flat/sequence"
	"github.com/amp-labs/amp-flat/sortable"
)

// target is the slice of the container API a workload needs. Every surface is
// adapted to it so one driver loop covers them all.
type target[K any] interface {
	Len() int
	Cap() int
	Erase(k K) int
	Contains(k K) bool
	Validate() error

	// put inserts (k, v), hinted at hint when hint >= 0.
	put(hint int, k K, v uint64) bool
	// slot is the position an insertion of k will end up at.
	slot(k K) int
	each(f func(k K, v uint64))
}

type mapTarget[K, S any, PS sequence.Ptr[flat.Pair[K, uint64], S]] struct {
	*flat.Map[K, uint64, S, PS]
}

func (t mapTarget[K, S, PS]) put(hint int, k K, v uint64) bool {
	if hint < 0 {
		_, ok := t.Insert(k, v)

		return ok
	}

	_, ok := t.InsertHint(hint, k, v)

	return ok
}

func (t mapTarget[K, S, PS]) slot(k K) int {
	return t.LowerBound(k)
}

func (t mapTarget[K, S, PS]) each(f func(K, uint64)) {
	t.ForEach(f)
}

type multiMapTarget[K, S any, PS sequence.Ptr[flat.Pair[K, uint64], S]] struct {
	*flat.MultiMap[K, uint64, S, PS]
}

func (t multiMapTarget[K, S, PS]) put(hint int, k K, v uint64) bool {
	if hint < 0 {
		t.Insert(k, v)
	} else {
		t.InsertHint(hint, k, v)
	}

	return true
}

func (t multiMapTarget[K, S, PS]) slot(k K) int {
	return t.UpperBound(k)
}

func (t multiMapTarget[K, S, PS]) each(f func(K, uint64)) {
	for k, v := range t.All() {
		f(k, v)
	}
}

type setTarget[K, S any, PS sequence.Ptr[K, S]] struct {
	*flat.Set[K, S, PS]
}

func (t setTarget[K, S, PS]) put(hint int, k K, _ uint64) bool {
	if hint < 0 {
		_, ok := t.Insert(k)

		return ok
	}

	_, ok := t.InsertHint(hint, k)

	return ok
}

func (t setTarget[K, S, PS]) slot(k K) int {
	return t.LowerBound(k)
}

func (t setTarget[K, S, PS]) each(f func(K, uint64)) {
	for k := range t.All() {
		f(k, 0)
	}
}

type multiSetTarget[K, S any, PS sequence.Ptr[K, S]] struct {
	*flat.MultiSet[K, S, PS]
}

func (t multiSetTarget[K, S, PS]) put(hint int, k K, _ uint64) bool {
	if hint < 0 {
		t.Insert(k)
	} else {
		t.InsertHint(hint, k)
	}

	return true
}

func (t multiSetTarget[K, S, PS]) slot(k K) int {
	return t.UpperBound(k)
}

func (t multiSetTarget[K, S, PS]) each(f func(K, uint64)) {
	for k := range t.All() {
		f(k, 0)
	}
}

// newTarget builds the container a workload asks for.
func newTarget[K any](container ContainerKind, storage StorageKind, less sortable.Less[K]) target[K] { //nolint:ireturn
	small := storage == StorageSmall

	switch container {
	case ContainerMultiMap:
		if small {
			return multiMapTarget[K, sequence.Small16[flat.Pair[K, uint64]], *sequence.Small16[flat.Pair[K, uint64]]]{
				flat.NewSmallMultiMapFunc[K, uint64](less),
			}
		}

		return multiMapTarget[K, sequence.Vector[flat.Pair[K, uint64]], *sequence.Vector[flat.Pair[K, uint64]]]{
			flat.NewMultiMapFunc[K, uint64](less),
		}
	case ContainerSet:
		if small {
			return setTarget[K, sequence.Small16[K], *sequence.Small16[K]]{flat.NewSmallSetFunc(less)}
		}

		return setTarget[K, sequence.Vector[K], *sequence.Vector[K]]{flat.NewSetFunc(less)}
	case ContainerMultiSet:
		if small {
			return multiSetTarget[K, sequence.Small16[K], *sequence.Small16[K]]{flat.NewSmallMultiSetFunc(less)}
		}

		return multiSetTarget[K, sequence.Vector[K], *sequence.Vector[K]]{flat.NewMultiSetFunc(less)}
	default:
		if small {
			return mapTarget[K, sequence.Small16[flat.Pair[K, uint64]], *sequence.Small16[flat.Pair[K, uint64]]]{
				flat.NewSmallMapFunc[K, uint64](less),
			}
		}

		return mapTarget[K, sequence.Vector[flat.Pair[K, uint64]], *sequence.Vector[flat.Pair[K, uint64]]]{
			flat.NewMapFunc[K, uint64](less),
		}
	}
}
