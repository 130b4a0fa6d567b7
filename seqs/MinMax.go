package seqs

// Min returns the smallest element according to the less block.
// On ties the first encountered element wins, keeping the result deterministic.
// The found return value reports whether the sequence had any element at all.
func (s Seq[T]) Min(less func(a, b T) bool) (T, bool, error) {
	if less == nil {
		panic("seqs.Seq#Min: nil less block")
	}
	return s.Reduce(func(best, v T) T {
		if less(v, best) {
			return v
		}
		return best
	})
}

// Max returns the largest element according to the less block.
// On ties the first encountered element wins, keeping the result deterministic.
// The found return value reports whether the sequence had any element at all.
func (s Seq[T]) Max(less func(a, b T) bool) (T, bool, error) {
	if less == nil {
		panic("seqs.Seq#Max: nil less block")
	}
	return s.Reduce(func(best, v T) T {
		if less(best, v) {
			return v
		}
		return best
	})
}
