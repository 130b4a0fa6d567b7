package iterators

import "github.com/adamluzsi/fluent"

// FlatMap transforms each value of the iterator into a sub-sequence,
// and yields the elements of the sub-sequences one after the other, in element order.
func FlatMap[R, T any](i fluent.Iterator[T], transform func(T) []R) fluent.Iterator[R] {
	return &flatMapIter[R, T]{src: i, transform: transform}
}

type flatMapIter[R, T any] struct {
	src       fluent.Iterator[T]
	transform func(T) []R

	buffer []R
	index  int
	value  R
}

func (i *flatMapIter[R, T]) Close() error {
	return i.src.Close()
}

func (i *flatMapIter[R, T]) Err() error {
	return i.src.Err()
}

func (i *flatMapIter[R, T]) Next() bool {
	for {
		if i.index < len(i.buffer) {
			i.value = i.buffer[i.index]
			i.index++
			return true
		}
		if !i.src.Next() {
			return false
		}
		i.buffer = i.transform(i.src.Value())
		i.index = 0
	}
}

func (i *flatMapIter[R, T]) Value() R {
	return i.value
}
