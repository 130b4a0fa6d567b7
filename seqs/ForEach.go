package seqs

import "github.com/adamluzsi/fluent/iterators"

// Break is a sentinel the visiting blocks can return to stop the traversal early without an error.
const Break = iterators.Break

// ForEach visits every element of the sequence in order.
// When the block returns an error the traversal stops and the error is returned,
// except for Break, which stops the traversal silently.
func (s Seq[T]) ForEach(blk func(T) error) error {
	if blk == nil {
		panic("seqs.Seq#ForEach: nil block")
	}
	return iterators.ForEach(s.Iterate(), blk)
}

// ForEachWithIndex visits every element of the sequence in order,
// along with its zero based position.
func (s Seq[T]) ForEachWithIndex(blk func(index int, v T) error) error {
	if blk == nil {
		panic("seqs.Seq#ForEachWithIndex: nil block")
	}
	index := 0
	return s.ForEach(func(v T) error {
		err := blk(index, v)
		index++
		return err
	})
}
