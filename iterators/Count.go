package iterators

import "github.com/adamluzsi/fluent"

// Count will iterate over and count the total iterations number
//
// Good when all you want is count all the elements in an iterator but don't want to do anything else.
func Count[T any](i fluent.Iterator[T]) (total int, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()
	for i.Next() {
		total++
	}
	return total, i.Err()
}
