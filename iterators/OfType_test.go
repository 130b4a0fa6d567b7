package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fluent/iterators"
)

type Greeter interface{ Greet() string }

type EnglishGreeter struct{}

func (EnglishGreeter) Greet() string { return "hello" }

type HungarianGreeter struct{}

func (HungarianGreeter) Greet() string { return "szia" }

func TestOfType_keepsOnlyTheMatchingDynamicTypes(t *testing.T) {
	t.Parallel()

	src := iterators.Slice([]Greeter{EnglishGreeter{}, HungarianGreeter{}, EnglishGreeter{}})
	iter := iterators.OfType[EnglishGreeter](src)

	vs, err := iterators.Collect(iter)
	require.NoError(t, err)
	require.Equal(t, []EnglishGreeter{{}, {}}, vs)
}

func TestOfType_noMatch_emptyResult(t *testing.T) {
	t.Parallel()

	src := iterators.Slice([]any{1, 2, 3})
	iter := iterators.OfType[string](src)

	vs, err := iterators.Collect(iter)
	require.NoError(t, err)
	require.Empty(t, vs)
}
