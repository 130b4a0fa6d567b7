package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fluent/iterators"
)

func TestConcat_yieldsTheIteratorsOneAfterTheOther(t *testing.T) {
	t.Parallel()

	iter := iterators.Concat(
		iterators.Slice([]int{1, 2}),
		iterators.Empty[int](),
		iterators.Slice([]int{3}),
	)

	vs, err := iterators.Collect(iter)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, vs)
}

func TestConcat_errorInOneOfTheSources_iterationStops(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("Boom!")
	iter := iterators.Concat(
		iterators.Slice([]int{1, 2}),
		iterators.Error[int](expectedErr),
		iterators.Slice([]int{3}),
	)

	var vs []int
	for iter.Next() {
		vs = append(vs, iter.Value())
	}
	require.Equal(t, []int{1, 2}, vs)
	require.Equal(t, expectedErr, iter.Err())
}

func TestConcat_closeClosesAllSources(t *testing.T) {
	t.Parallel()

	var closed []string
	stubA := iterators.Stub[int](iterators.Slice([]int{1}))
	stubA.StubClose = func() error { closed = append(closed, "a"); return nil }
	stubB := iterators.Stub[int](iterators.Slice([]int{2}))
	stubB.StubClose = func() error { closed = append(closed, "b"); return nil }

	iter := iterators.Concat[int](stubA, stubB)
	require.NoError(t, iter.Close())
	require.Equal(t, []string{"a", "b"}, closed)
}

func TestConcat_noSource_behavesAsEmpty(t *testing.T) {
	t.Parallel()

	iter := iterators.Concat[int]()
	require.False(t, iter.Next())
	require.NoError(t, iter.Err())
	require.NoError(t, iter.Close())
}
