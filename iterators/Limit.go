package iterators

import "github.com/adamluzsi/fluent"

// Limit truncates the iterator to yield at most n leading elements.
func Limit[T any](i fluent.Iterator[T], n int) fluent.Iterator[T] {
	return &limitIter[T]{
		Iterator: i,
		Limit:    n,
	}
}

type limitIter[T any] struct {
	fluent.Iterator[T]
	Limit int
	index int
}

func (i *limitIter[T]) Next() bool {
	if !(i.index < i.Limit) {
		return false
	}
	if !i.Iterator.Next() {
		return false
	}
	i.index++
	return true
}
