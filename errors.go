package fluent

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
//
//	TL;DR:
//		const ErrSomething fluent.Error = "something is an error"
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

const (
	// ErrNotFound is returned when an element was expected but the sequence had none to offer.
	ErrNotFound Error = "ErrNotFound"
	// ErrOutOfBounds is returned when a positional access points past the end of the sequence.
	ErrOutOfBounds Error = "ErrOutOfBounds"
	// ErrDuplicateKey is returned when an indexing operation derives the same key from two elements.
	ErrDuplicateKey Error = "ErrDuplicateKey"
)
