package sequence

import (
	"iter"
	"math"
	"slices"
)

// Array constrains a pointer to a fixed-size array type A whose elements are T.
// It lets the inline region size be chosen at compile time, through the type.
type Array[T any, A any] interface {
	*A
	Slice() []T
}

// Inline region sizes. Each type is a fixed array that can expose itself as a slice.
type (
	Inline4[T any]  [4]T
	Inline8[T any]  [8]T
	Inline16[T any] [16]T
	Inline32[T any] [32]T
	Inline64[T any] [64]T
)

func (a *Inline4[T]) Slice() []T  { return a[:] }
func (a *Inline8[T]) Slice() []T  { return a[:] }
func (a *Inline16[T]) Slice() []T { return a[:] }
func (a *Inline32[T]) Slice() []T { return a[:] }
func (a *Inline64[T]) Slice() []T { return a[:] }

// Small is a hybrid buffer: the first len(A) elements live in an inline array
// stored in the struct itself, and the first insertion past that threshold moves
// every element to a heap-allocated slice. Clear returns the buffer to inline mode.
//
// Small must not be copied after first use; the owning container holds it by
// value and always addresses it through a pointer.
type Small[T any, A any, PA Array[T, A]] struct {
	inline  A
	n       int
	heap    []T
	spilled bool
}

// Common inline sizes. Small16 matches the default threshold of the flat containers.
type (
	Small4[T any]  = Small[T, Inline4[T], *Inline4[T]]
	Small8[T any]  = Small[T, Inline8[T], *Inline8[T]]
	Small16[T any] = Small[T, Inline16[T], *Inline16[T]]
	Small32[T any] = Small[T, Inline32[T], *Inline32[T]]
	Small64[T any] = Small[T, Inline64[T], *Inline64[T]]
)

var _ Sequence[int] = (*Small16[int])(nil)

func (s *Small[T, A, PA]) region() []T {
	return PA(&s.inline).Slice()
}

func (s *Small[T, A, PA]) items() []T {
	if s.spilled {
		return s.heap
	}

	return s.region()[:s.n]
}

// Inline reports whether the elements currently live in the inline region.
func (s *Small[T, A, PA]) Inline() bool {
	return !s.spilled
}

// InlineCap returns the size of the inline region.
func (s *Small[T, A, PA]) InlineCap() int {
	return len(s.region())
}

func (s *Small[T, A, PA]) Len() int {
	if s.spilled {
		return len(s.heap)
	}

	return s.n
}

func (s *Small[T, A, PA]) Cap() int {
	if s.spilled {
		return cap(s.heap)
	}

	return len(s.region())
}

func (s *Small[T, A, PA]) MaxLen() int {
	return math.MaxInt
}

func (s *Small[T, A, PA]) At(i int) *T {
	return &s.items()[i]
}

func (s *Small[T, A, PA]) Insert(i int, elem T) {
	if !s.spilled {
		buf := s.region()
		if s.n < len(buf) {
			live := buf[:s.n+1]
			copy(live[i+1:], live[i:s.n])
			live[i] = elem
			s.n++

			return
		}

		s.spill(1)
	}

	s.heap = slices.Insert(s.heap, i, elem)
}

func (s *Small[T, A, PA]) Append(elem T) {
	s.Insert(s.Len(), elem)
}

func (s *Small[T, A, PA]) Delete(i, j int) {
	if s.spilled {
		s.heap = slices.Delete(s.heap, i, j)

		return
	}

	live := s.region()[:s.n]
	_ = live[i:j]

	copy(live[i:], live[j:])
	clear(live[s.n-(j-i):])
	s.n -= j - i
}

// Clear drops every element and releases any heap storage.
func (s *Small[T, A, PA]) Clear() {
	if s.spilled {
		s.heap = nil
		s.spilled = false
	} else {
		clear(s.region()[:s.n])
	}

	s.n = 0
}

func (s *Small[T, A, PA]) Grow(n int) {
	if s.spilled {
		s.heap = slices.Grow(s.heap, n)

		return
	}

	if s.n+n > len(s.region()) {
		s.spill(n)
	}
}

func (s *Small[T, A, PA]) All() iter.Seq2[int, T] {
	return forward(s.items())
}

func (s *Small[T, A, PA]) Backward() iter.Seq2[int, T] {
	return backward(s.items())
}

// spill moves the inline elements to the heap, reserving room for extra more.
func (s *Small[T, A, PA]) spill(extra int) {
	buf := s.region()

	heap := make([]T, s.n, max(2*len(buf), s.n+extra))
	copy(heap, buf[:s.n])
	clear(buf[:s.n])

	s.heap = heap
	s.n = 0
	s.spilled = true
}
