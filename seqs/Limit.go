package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// Limit returns a Seq truncated to at most n leading elements.
// A negative n is a programming error and panics at call time.
func (s Seq[T]) Limit(n int) Seq[T] {
	if n < 0 {
		panic("seqs.Seq#Limit: negative limit")
	}
	return New(func() fluent.Iterator[T] {
		return iterators.Limit(s.Iterate(), n)
	})
}

// Skip returns a Seq without the n leading elements.
// A negative n is a programming error and panics at call time.
func (s Seq[T]) Skip(n int) Seq[T] {
	if n < 0 {
		panic("seqs.Seq#Skip: negative skip count")
	}
	return New(func() fluent.Iterator[T] {
		return iterators.Offset(s.Iterate(), n)
	})
}
