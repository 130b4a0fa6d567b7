package seqs

import "github.com/adamluzsi/fluent/iterators"

// Fold left-folds the sequence into a single value, starting out from the initial value.
// The fold block is applied as blk(accumulator, element), in iteration order.
// On an empty sequence the initial value is returned as is.
//
// For folding into a different result type, use iterators.Reduce on Seq.Iterate.
func (s Seq[T]) Fold(initial T, blk func(acc, v T) T) (T, error) {
	if blk == nil {
		panic("seqs.Seq#Fold: nil fold block")
	}
	return iterators.Reduce(s.Iterate(), initial, blk)
}

// Reduce left-folds the sequence without a seed: the first element becomes the accumulator.
// The found return value reports whether the sequence had any element to fold.
func (s Seq[T]) Reduce(blk func(acc, v T) T) (value T, found bool, rErr error) {
	if blk == nil {
		panic("seqs.Seq#Reduce: nil fold block")
	}
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		if !found {
			value = iter.Value()
			found = true
			continue
		}
		value = blk(value, iter.Value())
	}
	if err := iter.Err(); err != nil {
		return value, false, err
	}
	return value, found, nil
}
