package iterators

import "github.com/adamluzsi/fluent"

// Filter will hide values from the iterator's consumer for which the matcher block reports false.
func Filter[T any](i fluent.Iterator[T], match func(T) bool) fluent.Iterator[T] {
	return &filterIter[T]{src: i, match: match}
}

type filterIter[T any] struct {
	src   fluent.Iterator[T]
	match func(T) bool

	value T
}

func (i *filterIter[T]) Close() error {
	return i.src.Close()
}

func (i *filterIter[T]) Err() error {
	return i.src.Err()
}

func (i *filterIter[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.match(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *filterIter[T]) Value() T {
	return i.value
}
