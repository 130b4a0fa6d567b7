package iterators

import "github.com/adamluzsi/fluent"

// OfType keeps the values whose dynamic type satisfies R, and narrows the element type to it.
// Values that fail the type assertion are skipped.
func OfType[R, T any](i fluent.Iterator[T]) fluent.Iterator[R] {
	return &ofTypeIter[R, T]{src: i}
}

type ofTypeIter[R, T any] struct {
	src fluent.Iterator[T]

	value R
}

func (i *ofTypeIter[R, T]) Close() error {
	return i.src.Close()
}

func (i *ofTypeIter[R, T]) Err() error {
	return i.src.Err()
}

func (i *ofTypeIter[R, T]) Next() bool {
	for i.src.Next() {
		if v, ok := any(i.src.Value()).(R); ok {
			i.value = v
			return true
		}
	}
	return false
}

func (i *ofTypeIter[R, T]) Value() R {
	return i.value
}
