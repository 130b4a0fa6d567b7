package seqs

import (
	"golang.org/x/exp/constraints"

	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// Sort returns a Seq ordered by the less block.
// The sort is stable: elements the less block considers equal keep their original relative order.
// The ordering happens lazily, when a terminal operation drives the traversal.
func (s Seq[T]) Sort(less func(a, b T) bool) Seq[T] {
	if less == nil {
		panic("seqs.Seq#Sort: nil less block")
	}
	return New(func() fluent.Iterator[T] {
		return iterators.Sort(s.Iterate(), less)
	})
}

// SortReversed returns a Seq ordered by the inverse of the less block, stable on ties.
func (s Seq[T]) SortReversed(less func(a, b T) bool) Seq[T] {
	if less == nil {
		panic("seqs.Seq#SortReversed: nil less block")
	}
	return s.Sort(func(a, b T) bool { return less(b, a) })
}

// Sorted returns a Seq in ascending natural order.
func Sorted[T constraints.Ordered](s Seq[T]) Seq[T] {
	return s.Sort(func(a, b T) bool { return a < b })
}

// Reversed returns a Seq in descending natural order.
func Reversed[T constraints.Ordered](s Seq[T]) Seq[T] {
	return s.Sort(func(a, b T) bool { return b < a })
}

// SortedOn returns a Seq ordered by the keys the key block derives, ascending.
func SortedOn[T any, K constraints.Ordered](s Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		panic("seqs.SortedOn: nil key block")
	}
	return s.Sort(func(a, b T) bool { return key(a) < key(b) })
}

// ReversedOn returns a Seq ordered by the keys the key block derives, descending.
func ReversedOn[T any, K constraints.Ordered](s Seq[T], key func(T) K) Seq[T] {
	if key == nil {
		panic("seqs.ReversedOn: nil key block")
	}
	return s.Sort(func(a, b T) bool { return key(b) < key(a) })
}
