package iterators

import "github.com/adamluzsi/fluent"

// First returns the first element of the iterator and closes it.
// The found return value reports whether the iterator had any element at all.
func First[T any](i fluent.Iterator[T]) (value T, found bool, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	if !i.Next() {
		return value, false, i.Err()
	}
	if err := i.Err(); err != nil {
		return value, false, err
	}
	return i.Value(), true, nil
}
