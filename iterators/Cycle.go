package iterators

import "github.com/adamluzsi/fluent"

// Cycle repeats the sequence produced by the maker block without an upper bound.
// The maker is called again each time the previous pass got exhausted,
// so cycling is only meaningful with a maker that can replay the sequence.
// A single-pass maker yields its one pass and then nothing more.
//
// Warning: an iterator returned by Cycle never reports the end of the iteration
// as long as the maker keeps producing non-empty passes.
// Consume it through Limit or another truncating decorator.
func Cycle[T any](maker func() fluent.Iterator[T]) fluent.Iterator[T] {
	return &cycleIter[T]{maker: maker}
}

type cycleIter[T any] struct {
	maker   func() fluent.Iterator[T]
	current fluent.Iterator[T]

	closed bool
	err    error
}

func (i *cycleIter[T]) Close() error {
	i.closed = true
	if i.current != nil {
		return i.current.Close()
	}
	return nil
}

func (i *cycleIter[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	if i.current != nil {
		return i.current.Err()
	}
	return nil
}

func (i *cycleIter[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	if i.current == nil {
		i.current = i.maker()
	}
	if i.current.Next() {
		return true
	}
	if err := i.current.Err(); err != nil {
		i.err = err
		return false
	}
	if err := i.current.Close(); err != nil {
		i.err = err
		return false
	}
	// an empty pass means the sequence itself is empty, there is nothing to repeat
	next := i.maker()
	if !next.Next() {
		i.err = next.Err()
		_ = next.Close()
		return false
	}
	i.current = next
	return true
}

func (i *cycleIter[T]) Value() T {
	return i.current.Value()
}
