package iterators

import "github.com/adamluzsi/fluent"

// Collect drains the iterator into a slice, preserving the iteration order.
func Collect[T any](i fluent.Iterator[T]) (vs []T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	vs = make([]T, 0)
	for i.Next() {
		vs = append(vs, i.Value())
	}
	return vs, i.Err()
}
