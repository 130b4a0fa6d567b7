// Package seqs provides Seq, a lazy fluent view over a sequence of values.
//
// A Seq owns no storage; it owns a recipe on how to produce the values.
// Intermediate operations (Filter, Limit, Map, ...) stack a new step on the
// recipe and return a new Seq without touching the source, while terminal
// operations (ToSlice, Size, First, ...) run the recipe by iterating it once,
// start to finish, in order.
//
// A Seq made with Of, FromSlice or New replays its source, so it can be
// consumed by terminal operations any number of times. A Seq made with
// FromIterator wraps a single-pass cursor and is valid for exactly one full
// consumption; see FromIterator.
package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// Seq is a lazy, immutable view over a sequence of T values.
// The zero value is a valid empty sequence.
type Seq[T any] struct {
	maker func() fluent.Iterator[T]
}

// New makes a Seq out of a maker block that begins a new traversal on each call.
// The Seq is replayable as long as the maker keeps producing fresh iterators over the same source.
func New[T any](maker func() fluent.Iterator[T]) Seq[T] {
	if maker == nil {
		panic("seqs.New: nil maker block")
	}
	return Seq[T]{maker: maker}
}

// Of makes a replayable Seq out of the received values.
func Of[T any](vs ...T) Seq[T] {
	return FromSlice(vs)
}

// FromSlice makes a replayable Seq over the given slice.
// The slice is not copied; each traversal re-reads the backing slice.
func FromSlice[T any](vs []T) Seq[T] {
	return New(func() fluent.Iterator[T] {
		return iterators.Slice(vs)
	})
}

// Empty returns a Seq with no elements.
func Empty[T any]() Seq[T] {
	return New(func() fluent.Iterator[T] {
		return iterators.Empty[T]()
	})
}

// FromIterator wraps a single-pass cursor into a Seq.
//
// The resulting Seq is valid for exactly one full consumption.
// Once a terminal operation (or Iterate) used up the cursor,
// any further consumption observes an empty sequence.
// This mirrors the contract of the underlying cursor instead of hiding it behind buffering.
func FromIterator[T any](iter fluent.Iterator[T]) Seq[T] {
	var used bool
	return New(func() fluent.Iterator[T] {
		if used {
			return iterators.Empty[T]()
		}
		used = true
		return iter
	})
}

// From wraps any Sequence into a Seq.
// When the received Sequence is already a Seq, it is returned unchanged, without re-wrapping.
func From[T any](src fluent.Sequence[T]) Seq[T] {
	if s, ok := src.(Seq[T]); ok {
		return s
	}
	return New(src.Iterate)
}

// Iterate begins a traversal over the sequence and implements fluent.Sequence.
//
// This is the streaming escape hatch: unlike the terminal operations,
// the caller owns the returned iterator, including closing it
// and checking Err after the iteration, where a failure of the
// underlying producer may surface mid-iteration.
func (s Seq[T]) Iterate() fluent.Iterator[T] {
	if s.maker == nil {
		return iterators.Empty[T]()
	}
	return s.maker()
}
