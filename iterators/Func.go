package iterators

import "github.com/adamluzsi/fluent"

// Func enables you to create an iterator with a lambda expression.
// The next function reports the upcoming value, whether iteration can continue, and the error cause on failure.
// In case a resource needs to be released at the end of the iteration, use the OnClose callback option.
func Func[T any](next func() (v T, ok bool, err error), opts ...CallbackOption) fluent.Iterator[T] {
	return WithCallback[T](&funcIter[T]{NextFn: next}, opts...)
}

type funcIter[T any] struct {
	NextFn func() (v T, ok bool, err error)

	value T
	err   error
}

func (i *funcIter[T]) Close() error {
	return nil
}

func (i *funcIter[T]) Err() error {
	return i.err
}

func (i *funcIter[T]) Next() bool {
	if i.err != nil {
		return false
	}
	value, ok, err := i.NextFn()
	if err != nil {
		i.err = err
		return false
	}
	if !ok {
		return false
	}
	i.value = value
	return true
}

func (i *funcIter[T]) Value() T {
	return i.value
}
