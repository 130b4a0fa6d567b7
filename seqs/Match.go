package seqs

// Any reports whether the predicate block holds for at least one element.
// The traversal stops at the first match.
func (s Seq[T]) Any(pred func(T) bool) (_ bool, rErr error) {
	if pred == nil {
		panic("seqs.Seq#Any: nil predicate block")
	}
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		if pred(iter.Value()) {
			return true, nil
		}
	}
	return false, iter.Err()
}

// All reports whether the predicate block holds for every element.
// The traversal stops at the first counterexample.
func (s Seq[T]) All(pred func(T) bool) (bool, error) {
	if pred == nil {
		panic("seqs.Seq#All: nil predicate block")
	}
	found, err := s.Any(func(v T) bool { return !pred(v) })
	return !found && err == nil, err
}

// None reports whether the predicate block holds for no element at all.
// The traversal stops at the first match.
func (s Seq[T]) None(pred func(T) bool) (bool, error) {
	if pred == nil {
		panic("seqs.Seq#None: nil predicate block")
	}
	found, err := s.Any(pred)
	return !found && err == nil, err
}
