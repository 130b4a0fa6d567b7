package iterators

import "github.com/adamluzsi/fluent"

// Offset drops the n leading elements of the iterator before yielding the rest.
func Offset[T any](i fluent.Iterator[T], n int) fluent.Iterator[T] {
	return &offsetIter[T]{
		Iterator: i,
		Offset:   n,
	}
}

type offsetIter[T any] struct {
	fluent.Iterator[T]
	Offset  int
	skipped bool
}

func (i *offsetIter[T]) Next() bool {
	if !i.skipped {
		i.skipped = true
		for n := 0; n < i.Offset; n++ {
			if !i.Iterator.Next() {
				return false
			}
		}
	}
	return i.Iterator.Next()
}
