package stream

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/zostay/consume"
)

// RuneBuffer is a stream of runes decoded from UTF-8 input. Invalid or
// truncated sequences decode to unicode.ReplacementChar, one byte at a time.
type RuneBuffer struct {
	r        *bufio.Reader
	ahead    []rune
	consumed int
}

var _ consume.Stream[rune] = (*RuneBuffer)(nil)

// NewRuneBuffer creates a rune stream over r.
func NewRuneBuffer(r io.Reader) *RuneBuffer {
	return &RuneBuffer{r: bufio.NewReader(r)}
}

// Reserve decodes runes until n are available past the commit point.
func (b *RuneBuffer) Reserve(n int) error {
	for len(b.ahead) < n {
		c, _, err := b.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return errors.Wrapf(consume.ErrEndOfInput, "reserve %d runes with %d left", n, len(b.ahead))
			}
			return errors.Wrapf(err, "reserve %d runes", n)
		}

		b.ahead = append(b.ahead, c)
	}

	return nil
}

// PeekItem returns the rune at offset i past the commit point.
func (b *RuneBuffer) PeekItem(i int) rune {
	return b.ahead[i]
}

// PeekSlice returns n runes starting at offset i past the commit point.
func (b *RuneBuffer) PeekSlice(i, n int) []rune {
	return b.ahead[i : i+n : i+n]
}

// Drop commits and discards n runes.
func (b *RuneBuffer) Drop(n int) {
	n = min(n, len(b.ahead))
	b.ahead = b.ahead[n:]
	b.consumed += n
}

// Consumed returns the total number of runes dropped so far.
func (b *RuneBuffer) Consumed() int {
	return b.consumed
}
