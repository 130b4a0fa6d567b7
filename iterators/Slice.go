// Package iterators provide iterator implementations.
//
// # Summary
//
// An Iterator's goal is to decouple the origin of the data from the consumer who uses it.
// Most commonly, iterators hide whether the data comes from a specific resource or from a stream of values computed along the way.
// This helps to design data consumers that are not dependent on the concrete implementation of the data source,
// while still allowing the sequence to be evaluated lazily, one element at a time.
//
// Iterators in this package are single-pass cursors.
// Replayable consumption is the responsibility of the seqs package,
// which re-creates an iterator chain for each traversal.
package iterators

import "github.com/adamluzsi/fluent"

// Slice returns an iterator that yields the values of the given slice in order.
// The backing slice is not copied; the iterator reads it directly.
func Slice[T any](vs []T) fluent.Iterator[T] {
	return &sliceIter[T]{values: vs}
}

type sliceIter[T any] struct {
	values []T

	closed bool
	index  int
	value  T
}

func (i *sliceIter[T]) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter[T]) Err() error {
	return nil
}

func (i *sliceIter[T]) Next() bool {
	if i.closed {
		return false
	}
	if len(i.values) <= i.index {
		return false
	}
	i.value = i.values[i.index]
	i.index++
	return true
}

func (i *sliceIter[T]) Value() T {
	return i.value
}
