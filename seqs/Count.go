package seqs

import "github.com/adamluzsi/fluent/iterators"

// Size traverses the sequence and returns the total number of its elements.
// The result is not cached; every call re-counts.
func (s Seq[T]) Size() (int, error) {
	return iterators.Count(s.Iterate())
}

// Count returns the number of elements for which the predicate block reports true.
func (s Seq[T]) Count(pred func(T) bool) (int, error) {
	if pred == nil {
		panic("seqs.Seq#Count: nil predicate block")
	}
	return s.Filter(pred).Size()
}

// IsEmpty reports whether the sequence produces no element.
// Only the first iteration step is taken.
func (s Seq[T]) IsEmpty() (_ bool, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	if iter.Next() {
		return false, iter.Err()
	}
	return true, iter.Err()
}
