package seqs

import (
	"sort"

	"github.com/adamluzsi/fluent/iterators"
)

// ToSlice materializes the sequence into a slice, preserving the iteration order.
func (s Seq[T]) ToSlice() ([]T, error) {
	return iterators.Collect(s.Iterate())
}

// AppendTo materializes the sequence by appending its elements to the received buffer.
// It returns the extended buffer, following the append convention.
func (s Seq[T]) AppendTo(buf []T) (_ []T, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for iter.Next() {
		buf = append(buf, iter.Value())
	}
	return buf, iter.Err()
}

// ToSet materializes the sequence into a set.
// Duplicated elements collapse into one; the set carries no ordering.
func ToSet[T comparable](s Seq[T]) (map[T]struct{}, error) {
	vs, err := s.ToSlice()
	if err != nil {
		return nil, err
	}
	set := make(map[T]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return set, nil
}

// SortedSet materializes the sequence into a slice ordered by the less block,
// with elements the less block considers equivalent collapsed into their first occurrence.
func SortedSet[T any](s Seq[T], less func(a, b T) bool) ([]T, error) {
	if less == nil {
		panic("seqs.SortedSet: nil less block")
	}
	vs, err := s.ToSlice()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(vs, func(a, b int) bool { return less(vs[a], vs[b]) })
	out := make([]T, 0, len(vs))
	for _, v := range vs {
		if 0 < len(out) {
			last := out[len(out)-1]
			if !less(last, v) && !less(v, last) {
				continue
			}
		}
		out = append(out, v)
	}
	return out, nil
}
