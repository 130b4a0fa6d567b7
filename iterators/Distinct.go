package iterators

import "github.com/adamluzsi/fluent"

// Distinct drops the duplicated values from the iterator.
// The first occurrence of each value is kept, in its original position.
func Distinct[T comparable](i fluent.Iterator[T]) fluent.Iterator[T] {
	return &distinctIter[T]{src: i, seen: make(map[T]struct{})}
}

type distinctIter[T comparable] struct {
	src  fluent.Iterator[T]
	seen map[T]struct{}

	value T
}

func (i *distinctIter[T]) Close() error {
	return i.src.Close()
}

func (i *distinctIter[T]) Err() error {
	return i.src.Err()
}

func (i *distinctIter[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if _, ok := i.seen[v]; ok {
			continue
		}
		i.seen[v] = struct{}{}
		i.value = v
		return true
	}
	return false
}

func (i *distinctIter[T]) Value() T {
	return i.value
}
