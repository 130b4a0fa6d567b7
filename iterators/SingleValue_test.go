package iterators_test

import (
	"testing"

	"github.com/adamluzsi/testcase/assert"
	"github.com/adamluzsi/testcase/random"

	"github.com/adamluzsi/fluent"
	"github.com/adamluzsi/fluent/fixtures"
	"github.com/adamluzsi/fluent/iterators"
)

var _ fluent.Iterator[Entity] = iterators.SingleValue(Entity{})

func TestSingleValue_StructGiven_StructReceivedWithValue(t *testing.T) {
	t.Parallel()

	var expected = fixtures.New[Entity]()

	i := iterators.SingleValue(expected)
	defer i.Close()

	actually, found, err := iterators.First[Entity](i)
	assert.Must(t).Nil(err)
	assert.Must(t).True(found)
	assert.Must(t).Equal(expected, actually)
}

func TestSingleValue_NextCalledMultipleTimes_NextOnlyReturnTrueOnceAndStayFalseAfterThat(t *testing.T) {
	t.Parallel()

	i := iterators.SingleValue(fixtures.New[Entity]())
	defer i.Close()

	assert.Must(t).True(i.Next())

	checkAmount := random.New(random.CryptoSeed{}).IntBetween(1, 100)
	for n := 0; n < checkAmount; n++ {
		assert.Must(t).False(i.Next())
	}
}

func TestSingleValue_CloseCalled_NoFurtherValues(t *testing.T) {
	t.Parallel()

	i := iterators.SingleValue(fixtures.New[Entity]())
	_ = i.Close()
	assert.Must(t).False(i.Next())
	assert.Must(t).Nil(i.Err())
}
