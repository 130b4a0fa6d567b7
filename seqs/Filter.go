package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
	"github.com/adamluzsi/fluent/reflects"
)

// Filter returns a Seq that keeps the elements for which the predicate block reports true.
func (s Seq[T]) Filter(pred func(T) bool) Seq[T] {
	if pred == nil {
		panic("seqs.Seq#Filter: nil predicate block")
	}
	return New(func() fluent.Iterator[T] {
		return iterators.Filter(s.Iterate(), pred)
	})
}

// Exclude returns a Seq that drops the elements for which the predicate block reports true.
// It is the logical complement of Filter.
func (s Seq[T]) Exclude(pred func(T) bool) Seq[T] {
	if pred == nil {
		panic("seqs.Seq#Exclude: nil predicate block")
	}
	return s.Filter(func(v T) bool { return !pred(v) })
}

// NotNil returns a Seq that drops the nil elements.
// Nil-ness is checked on the dynamic value, so it covers pointer, interface, map, slice, channel and function elements alike.
func (s Seq[T]) NotNil() Seq[T] {
	return s.Filter(func(v T) bool { return !reflects.IsNil(v) })
}
