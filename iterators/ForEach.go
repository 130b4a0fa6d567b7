package iterators

import "github.com/adamluzsi/fluent"

// Break is a sentinel the ForEach block can return to stop the iteration early without an error.
const Break fluent.Error = "Break"

// ForEach visits every element of the iterator with the given block, then closes the iterator.
// When the block returns an error, the iteration stops and the error is returned,
// except for Break, which stops the iteration silently.
func ForEach[T any](i fluent.Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if err == Break {
				return nil
			}
			return err
		}
	}
	return i.Err()
}
