package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// Distinct returns a Seq without duplicated elements.
// The first occurrence of each element is kept, preserving the original order.
// Distinct is idempotent; applying it twice yields the same sequence as applying it once.
func Distinct[T comparable](s Seq[T]) Seq[T] {
	return New(func() fluent.Iterator[T] {
		return iterators.Distinct(s.Iterate())
	})
}
