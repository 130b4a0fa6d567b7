package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/fixtures"
	"github.com/adamluzsi/fluent/iterators"
)

type Entity struct {
	Text string
}

// FirstAndLastSharedErrorTestCases covers the error propagation rules
// shared by the terminal operations that yield a single element.
func FirstAndLastSharedErrorTestCases(t *testing.T, subject func(fluent.Iterator[Entity]) (Entity, bool, error)) {
	t.Run("error test-cases", func(t *testing.T) {
		expectedErr := errors.New(fixtures.RandomString(4))

		t.Run("Closing", func(t *testing.T) {
			t.Parallel()

			i := iterators.Stub[Entity](iterators.SingleValue(Entity{Text: "close"}))
			i.StubClose = func() error { return expectedErr }

			_, _, err := subject(i)
			require.Equal(t, expectedErr, err)
		})

		t.Run("Err", func(t *testing.T) {
			t.Parallel()

			i := iterators.Stub[Entity](iterators.SingleValue(Entity{Text: "err"}))
			i.StubErr = func() error { return expectedErr }

			_, found, err := subject(i)
			require.False(t, found)
			require.Equal(t, expectedErr, err)
		})

		t.Run("Err+Close Err", func(t *testing.T) {
			t.Parallel()

			i := iterators.Stub[Entity](iterators.SingleValue(Entity{Text: "err"}))
			i.StubErr = func() error { return expectedErr }
			i.StubClose = func() error { return errors.New("unexpected to see this err because it hides the err cause") }

			_, found, err := subject(i)
			require.False(t, found)
			require.Equal(t, expectedErr, err)
		})

		t.Run(`empty iterator with .Err()`, func(t *testing.T) {
			i := iterators.Error[Entity](expectedErr)

			_, found, err := subject(i)
			require.False(t, found)
			require.Equal(t, expectedErr, err)
		})
	})
}
