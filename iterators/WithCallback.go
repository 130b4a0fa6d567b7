package iterators

import (
	"io"

	"github.com/adamluzsi/fluent"
)

// WithCallback decorates an iterator with lifecycle callbacks.
// When no callback is configured, the respective call is forwarded to the wrapped iterator untouched.
func WithCallback[T any](i fluent.Iterator[T], opts ...CallbackOption) fluent.Iterator[T] {
	if len(opts) == 0 {
		return i
	}
	var c callbacks
	for _, opt := range opts {
		opt(&c)
	}
	return &callbackIter[T]{Iterator: i, callbacks: c}
}

type CallbackOption func(*callbacks)

// OnClose registers a block that runs when the iterator is being closed.
// The wrapped iterator is passed along, so the block decides whether to forward the Close call.
func OnClose(blk func(io.Closer) error) CallbackOption {
	return func(c *callbacks) { c.OnClose = blk }
}

type callbacks struct {
	OnClose func(io.Closer) error
}

type callbackIter[T any] struct {
	fluent.Iterator[T]
	callbacks
}

func (i *callbackIter[T]) Close() error {
	if i.callbacks.OnClose != nil {
		return i.callbacks.OnClose(i.Iterator)
	}
	return i.Iterator.Close()
}
