// Package fluent holds the contracts shared by the iterator building blocks
// in the iterators package and the lazy sequence facade in the seqs package.
package fluent

import (
	"io"
)

// Iterator define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use an iterator to access and traverse an aggregate without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// An Iterator is a single-pass cursor: once Next returned false, the traversal is over.
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene
	// for all other cases where the underling io is handled on a higher level, it should simply return nil
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}

// Sequence is a producer of iterators.
// In contrast to an Iterator, a Sequence can be traversed repeatedly
// as long as Iterate hands back a fresh Iterator on each call.
// Whether that holds depends on the implementation;
// a Sequence made out of a single-pass cursor yields values on the first traversal only.
type Sequence[V any] interface {
	// Iterate begins a traversal over the sequence values.
	Iterate() Iterator[V]
}
