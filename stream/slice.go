package stream

import (
	"github.com/pkg/errors"

	"github.com/zostay/consume"
)

// Slice is a stream over items that are already in memory, such as the
// output of a tokenizer. It is mostly useful for running stream behaviors
// over arbitrary item types.
type Slice[I any] struct {
	items []I
	pos   int
}

// NewSlice creates a stream over items. The slice is borrowed, not copied.
func NewSlice[I any](items []I) *Slice[I] {
	return &Slice[I]{items: items}
}

// Reserve fails with consume.ErrEndOfInput when fewer than n items remain.
func (s *Slice[I]) Reserve(n int) error {
	if left := len(s.items) - s.pos; n > left {
		return errors.Wrapf(consume.ErrEndOfInput, "reserve %d items with %d left", n, left)
	}
	return nil
}

// PeekItem returns the item at offset i past the commit point.
func (s *Slice[I]) PeekItem(i int) I {
	return s.items[s.pos+i]
}

// PeekSlice returns n items starting at offset i past the commit point.
func (s *Slice[I]) PeekSlice(i, n int) []I {
	lo := s.pos + i
	return s.items[lo : lo+n : lo+n]
}

// Drop commits n items.
func (s *Slice[I]) Drop(n int) {
	s.pos = min(s.pos+n, len(s.items))
}

// Consumed returns the number of items dropped so far.
func (s *Slice[I]) Consumed() int {
	return s.pos
}

// Remaining returns the items past the commit point.
func (s *Slice[I]) Remaining() []I {
	return s.items[s.pos:]
}
