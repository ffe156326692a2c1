package flat

import "iter"

func pairs[K, V any](seq iter.Seq2[K, V]) iter.Seq[Pair[K, V]] {
	return func(yield func(Pair[K, V]) bool) {
		for k, v := range seq {
			if !yield(Pair[K, V]{Key: k, Value: v}) {
				return
			}
		}
	}
}

func unpairs[K, V any](seq iter.Seq2[int, Pair[K, V]]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, p := range seq {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

func keysOf[K, V any](seq iter.Seq2[int, Pair[K, V]]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, p := range seq {
			if !yield(p.Key) {
				return
			}
		}
	}
}

func valuesOf[K, V any](seq iter.Seq2[int, Pair[K, V]]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, p := range seq {
			if !yield(p.Value) {
				return
			}
		}
	}
}

func dropIndex[E any](seq iter.Seq2[int, E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range seq {
			if !yield(e) {
				return
			}
		}
	}
}
