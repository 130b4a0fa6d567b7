package seqs

import (
	"fmt"

	"github.com/adamluzsi/fluent"
)

// UniqueIndex materializes the sequence into a mapping from derived key to element.
// Deriving the same key from two elements fails with an error wrapping fluent.ErrDuplicateKey.
func UniqueIndex[T any, K comparable](s Seq[T], key func(T) K) (map[K]T, error) {
	if key == nil {
		panic("seqs.UniqueIndex: nil key block")
	}
	index := make(map[K]T)
	err := s.ForEach(func(v T) error {
		k := key(v)
		if _, ok := index[k]; ok {
			return fmt.Errorf("%w: %v", fluent.ErrDuplicateKey, k)
		}
		index[k] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// Index materializes the sequence into a mapping from derived key
// to the group of elements sharing that key.
// Each group preserves the original relative order of its elements.
func Index[T any, K comparable](s Seq[T], key func(T) K) (map[K][]T, error) {
	if key == nil {
		panic("seqs.Index: nil key block")
	}
	groups := make(map[K][]T)
	err := s.ForEach(func(v T) error {
		k := key(v)
		groups[k] = append(groups[k], v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// ToMap materializes the sequence into a mapping from element to a derived value.
// An element occurring twice fails with an error wrapping fluent.ErrDuplicateKey.
func ToMap[T comparable, V any](s Seq[T], value func(T) V) (map[T]V, error) {
	if value == nil {
		panic("seqs.ToMap: nil value block")
	}
	out := make(map[T]V)
	err := s.ForEach(func(k T) error {
		if _, ok := out[k]; ok {
			return fmt.Errorf("%w: %v", fluent.ErrDuplicateKey, k)
		}
		out[k] = value(k)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Contains reports whether any element of the sequence equals the given value.
// The traversal stops at the first hit.
func Contains[T comparable](s Seq[T], v T) (bool, error) {
	return s.Any(func(e T) bool { return e == v })
}

// IndexOf returns the zero based position of the first element equal to the given value,
// or -1 when the sequence has no such element.
func IndexOf[T comparable](s Seq[T], v T) (int, error) {
	position := -1
	index := 0
	err := s.ForEach(func(e T) error {
		if e == v {
			position = index
			return Break
		}
		index++
		return nil
	})
	if err != nil {
		return -1, err
	}
	return position, nil
}
