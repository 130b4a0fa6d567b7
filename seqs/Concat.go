package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// Append returns a Seq with the received values following the current sequence, in order.
func (s Seq[T]) Append(vs ...T) Seq[T] {
	return New(func() fluent.Iterator[T] {
		return iterators.Concat(s.Iterate(), iterators.Slice(vs))
	})
}

// Concat returns a Seq with the elements of the other sequence following the current sequence, in order.
func (s Seq[T]) Concat(other fluent.Sequence[T]) Seq[T] {
	if other == nil {
		panic("seqs.Seq#Concat: nil sequence")
	}
	return New(func() fluent.Iterator[T] {
		return iterators.Concat(s.Iterate(), other.Iterate())
	})
}

// Cycle returns a Seq that repeats the full sequence without an upper bound.
//
// Warning: a cycled Seq must be truncated with Limit before any terminal operation
// that traverses to the end (ToSlice, Size, Last, ...), otherwise that operation never terminates.
// Cycling a single-pass Seq yields its one remaining pass and then nothing more.
func (s Seq[T]) Cycle() Seq[T] {
	return New(func() fluent.Iterator[T] {
		return iterators.Cycle(s.Iterate)
	})
}
