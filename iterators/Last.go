package iterators

import "github.com/adamluzsi/fluent"

// Last traverses the iterator fully and returns the final element.
// The found return value reports whether the iterator had any element at all.
func Last[T any](i fluent.Iterator[T]) (value T, found bool, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	for i.Next() {
		value = i.Value()
		found = true
	}
	if err := i.Err(); err != nil {
		return value, false, err
	}
	return value, found, nil
}
