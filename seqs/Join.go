package seqs

import (
	"fmt"
	"strings"
)

// Join concatenates the string representation of the elements,
// with the delimiter between neighbours and nothing before the first or after the last element.
// Joining an empty sequence yields an empty string.
func (s Seq[T]) Join(delimiter string) (_ string, rErr error) {
	iter := s.Iterate()
	defer func() {
		cErr := iter.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	var (
		out   strings.Builder
		first = true
	)
	for iter.Next() {
		if !first {
			out.WriteString(delimiter)
		}
		first = false
		fmt.Fprint(&out, iter.Value())
	}
	return out.String(), iter.Err()
}
