package iterators

import "github.com/adamluzsi/fluent"

// Stub wraps an iterator and lets tests replace any of its behaviors.
func Stub[T any](i fluent.Iterator[T]) *StubIter[T] {
	return &StubIter[T]{
		Iterator:  i,
		StubValue: i.Value,
		StubClose: i.Close,
		StubNext:  i.Next,
		StubErr:   i.Err,
	}
}

type StubIter[T any] struct {
	Iterator  fluent.Iterator[T]
	StubValue func() T
	StubClose func() error
	StubNext  func() bool
	StubErr   func() error
}

// wrapper

func (i *StubIter[T]) Close() error {
	return i.StubClose()
}

func (i *StubIter[T]) Next() bool {
	return i.StubNext()
}

func (i *StubIter[T]) Err() error {
	return i.StubErr()
}

func (i *StubIter[T]) Value() T {
	return i.StubValue()
}

// resetting stubs

func (i *StubIter[T]) ResetClose() {
	i.StubClose = i.Iterator.Close
}

func (i *StubIter[T]) ResetNext() {
	i.StubNext = i.Iterator.Next
}

func (i *StubIter[T]) ResetErr() {
	i.StubErr = i.Iterator.Err
}

func (i *StubIter[T]) ResetValue() {
	i.StubValue = i.Iterator.Value
}
