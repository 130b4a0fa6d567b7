package iterators

import "github.com/adamluzsi/fluent"

// Error returns an iterator that has no elements and reports the given error.
// This can be used when a sequence producer encounters an unexpected non recoverable error while setting up the traversal.
func Error[T any](err error) fluent.Iterator[T] {
	return &errorIter[T]{err: err}
}

type errorIter[T any] struct {
	err error
}

func (i *errorIter[T]) Close() error {
	return nil
}

func (i *errorIter[T]) Next() bool {
	return false
}

func (i *errorIter[T]) Err() error {
	return i.err
}

func (i *errorIter[T]) Value() T {
	var v T
	return v
}
