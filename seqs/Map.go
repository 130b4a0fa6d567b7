package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// Map returns a Seq with the transform block applied to every element.
//
// Map is a package-level function and not a Seq method,
// because the element type changes and Go methods can't introduce new type parameters.
func Map[R, T any](s Seq[T], transform func(T) R) Seq[R] {
	if transform == nil {
		panic("seqs.Map: nil transform block")
	}
	return New(func() fluent.Iterator[R] {
		return iterators.Map[R](s.Iterate(), transform)
	})
}

// FlatMap transforms every element into a sub-sequence and concatenates the sub-sequences in element order.
func FlatMap[R, T any](s Seq[T], transform func(T) []R) Seq[R] {
	if transform == nil {
		panic("seqs.FlatMap: nil transform block")
	}
	return New(func() fluent.Iterator[R] {
		return iterators.FlatMap(s.Iterate(), transform)
	})
}

// OfType keeps the elements whose dynamic type satisfies R and narrows the element type to it.
//
//	dogs := seqs.OfType[*Dog](animals)
func OfType[R, T any](s Seq[T]) Seq[R] {
	return New(func() fluent.Iterator[R] {
		return iterators.OfType[R](s.Iterate())
	})
}
