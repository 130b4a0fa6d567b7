package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fluent/iterators"
)

func TestForEach_visitsEveryElementInOrder(t *testing.T) {
	t.Parallel()

	var visited []int
	err := iterators.ForEach(iterators.Slice([]int{1, 2, 3}), func(v int) error {
		visited = append(visited, v)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, visited)
}

func TestForEach_blockReturnsBreak_iterationStopsSilently(t *testing.T) {
	t.Parallel()

	var visited []int
	err := iterators.ForEach(iterators.Slice([]int{1, 2, 3}), func(v int) error {
		visited = append(visited, v)
		if v == 2 {
			return iterators.Break
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, visited)
}

func TestForEach_blockReturnsError_errorPropagated(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("Boom!")
	err := iterators.ForEach(iterators.Slice([]int{1, 2, 3}), func(v int) error {
		return expectedErr
	})
	require.Equal(t, expectedErr, err)
}

func TestForEach_iteratorIsClosedAtTheEnd(t *testing.T) {
	t.Parallel()

	closed := false
	i := iterators.Stub[int](iterators.Slice([]int{1}))
	i.StubClose = func() error {
		closed = true
		return nil
	}

	err := iterators.ForEach[int](i, func(int) error { return nil })
	require.NoError(t, err)
	require.True(t, closed)
}
