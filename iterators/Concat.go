package iterators

import "github.com/adamluzsi/fluent"

// Concat chains the received iterators into a single iterator,
// yielding the elements of each in order, one iterator after the other.
func Concat[T any](is ...fluent.Iterator[T]) fluent.Iterator[T] {
	return &concatIter[T]{iterators: is}
}

type concatIter[T any] struct {
	iterators []fluent.Iterator[T]

	index int
	err   error
}

func (i *concatIter[T]) Close() error {
	var err error
	for _, iter := range i.iterators {
		if cErr := iter.Close(); err == nil {
			err = cErr
		}
	}
	return err
}

func (i *concatIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	if i.index < len(i.iterators) {
		return i.iterators[i.index].Err()
	}
	return nil
}

func (i *concatIter[T]) Next() bool {
	for i.index < len(i.iterators) {
		current := i.iterators[i.index]
		if current.Next() {
			return true
		}
		if err := current.Err(); err != nil {
			i.err = err
			return false
		}
		i.index++
	}
	return false
}

func (i *concatIter[T]) Value() T {
	return i.iterators[i.index].Value()
}
