package iterators

import (
	"sort"

	"github.com/adamluzsi/fluent"
)

// Sort yields the values of the iterator ordered by the less block.
// The ordering is stable: values the less block considers equal keep their original relative order.
//
// Sorting requires the whole sequence, so the source iterator is drained on the first Next call.
// Until then the operation stays lazy.
func Sort[T any](i fluent.Iterator[T], less func(a, b T) bool) fluent.Iterator[T] {
	return &sortIter[T]{src: i, less: less}
}

type sortIter[T any] struct {
	src  fluent.Iterator[T]
	less func(a, b T) bool

	buffered bool
	buffer   []T
	err      error

	index int
	value T
}

func (i *sortIter[T]) Close() error {
	return i.src.Close()
}

func (i *sortIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *sortIter[T]) Next() bool {
	if !i.buffered {
		i.buffered = true
		for i.src.Next() {
			i.buffer = append(i.buffer, i.src.Value())
		}
		if err := i.src.Err(); err != nil {
			i.err = err
			return false
		}
		sort.SliceStable(i.buffer, func(a, b int) bool {
			return i.less(i.buffer[a], i.buffer[b])
		})
	}
	if i.err != nil {
		return false
	}
	if len(i.buffer) <= i.index {
		return false
	}
	i.value = i.buffer[i.index]
	i.index++
	return true
}

func (i *sortIter[T]) Value() T {
	return i.value
}
