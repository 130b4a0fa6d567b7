package seqs

import (
	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/iterators"
)

// First returns the first element of the sequence.
// The found return value reports whether the sequence had any element at all.
func (s Seq[T]) First() (value T, found bool, err error) {
	return iterators.First(s.Iterate())
}

// FirstMatch returns the first element for which the predicate block reports true.
func (s Seq[T]) FirstMatch(pred func(T) bool) (value T, found bool, err error) {
	if pred == nil {
		panic("seqs.Seq#FirstMatch: nil predicate block")
	}
	return s.Filter(pred).First()
}

// FirstOr returns the first element of the sequence, or the default value when the sequence is empty.
func (s Seq[T]) FirstOr(def T) (T, error) {
	v, found, err := s.First()
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return v, nil
}

// Last traverses the sequence fully and returns its final element.
// The found return value reports whether the sequence had any element at all.
func (s Seq[T]) Last() (value T, found bool, err error) {
	return iterators.Last(s.Iterate())
}

// OnlyElement returns the first element of the sequence,
// and fails with fluent.ErrNotFound when the sequence is empty.
func (s Seq[T]) OnlyElement() (T, error) {
	v, found, err := s.First()
	if err != nil {
		return v, err
	}
	if !found {
		return v, fluent.ErrNotFound
	}
	return v, nil
}

// Get returns the element at the given zero based position.
// A negative index is a programming error and panics at call time;
// an index past the end of the sequence fails with fluent.ErrOutOfBounds.
func (s Seq[T]) Get(index int) (value T, rErr error) {
	if index < 0 {
		panic("seqs.Seq#Get: negative index")
	}
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	current := 0
	for iter.Next() {
		if current == index {
			return iter.Value(), iter.Err()
		}
		current++
	}
	if err := iter.Err(); err != nil {
		return value, err
	}
	return value, fluent.ErrOutOfBounds
}
