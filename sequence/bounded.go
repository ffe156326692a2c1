package sequence

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-flat/errors"
)

// Bounded is an inline-only buffer that never allocates. Growing it past len(A)
// panics with an error wrapping errors.ErrCapacityExceeded; containers built on
// it let that panic propagate to their caller unchanged.
type Bounded[T any, A any, PA Array[T, A]] struct {
	inline A
	n      int
}

// Common fixed capacities.
type (
	Bounded8[T any]  = Bounded[T, Inline8[T], *Inline8[T]]
	Bounded16[T any] = Bounded[T, Inline16[T], *Inline16[T]]
	Bounded64[T any] = Bounded[T, Inline64[T], *Inline64[T]]
)

var _ Sequence[int] = (*Bounded16[int])(nil)

func (b *Bounded[T, A, PA]) region() []T {
	return PA(&b.inline).Slice()
}

func (b *Bounded[T, A, PA]) Len() int {
	return b.n
}

func (b *Bounded[T, A, PA]) Cap() int {
	return len(b.region())
}

func (b *Bounded[T, A, PA]) MaxLen() int {
	return len(b.region())
}

func (b *Bounded[T, A, PA]) At(i int) *T {
	return &b.region()[:b.n][i]
}

func (b *Bounded[T, A, PA]) Insert(i int, elem T) {
	b.ensure(1)

	live := b.region()[:b.n+1]
	copy(live[i+1:], live[i:b.n])
	live[i] = elem
	b.n++
}

func (b *Bounded[T, A, PA]) Append(elem T) {
	b.Insert(b.n, elem)
}

func (b *Bounded[T, A, PA]) Delete(i, j int) {
	live := b.region()[:b.n]
	_ = live[i:j]

	copy(live[i:], live[j:])
	clear(live[b.n-(j-i):])
	b.n -= j - i
}

func (b *Bounded[T, A, PA]) Clear() {
	clear(b.region()[:b.n])
	b.n = 0
}

func (b *Bounded[T, A, PA]) Grow(n int) {
	b.ensure(n)
}

func (b *Bounded[T, A, PA]) All() iter.Seq2[int, T] {
	return forward(b.region()[:b.n])
}

func (b *Bounded[T, A, PA]) Backward() iter.Seq2[int, T] {
	return backward(b.region()[:b.n])
}

func (b *Bounded[T, A, PA]) ensure(extra int) {
	if b.n+extra > len(b.region()) {
		panic(fmt.Errorf("%w: bounded sequence holds at most %d elements",
			errors.ErrCapacityExceeded, len(b.region())))
	}
}
