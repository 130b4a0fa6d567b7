package iterators

import "github.com/adamluzsi/fluent"

// Map transforms the values of an iterator with the transform block.
// This is useful in cases where you have to alter the input value,
// or change the type altogether,
// without leaking how the transformation is done to the consumer of the iterator.
//
// The transform block either yields the mapped value,
// or the mapped value along with an error, in which case the error stops the iteration
// and becomes accessible through the iterator's Err method.
func Map[R, T any, FN func(T) R | func(T) (R, error)](i fluent.Iterator[T], transform FN) fluent.Iterator[R] {
	var blk func(T) (R, error)
	switch transform := any(transform).(type) {
	case func(T) R:
		blk = func(v T) (R, error) { return transform(v), nil }
	case func(T) (R, error):
		blk = transform
	}
	return &mapIter[R, T]{src: i, transform: blk}
}

type mapIter[R, T any] struct {
	src       fluent.Iterator[T]
	transform func(T) (R, error)

	value R
	err   error
}

func (i *mapIter[R, T]) Close() error {
	return i.src.Close()
}

func (i *mapIter[R, T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *mapIter[R, T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *mapIter[R, T]) Value() R {
	return i.value
}
