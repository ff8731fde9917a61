// Package stream provides incremental sources for consume.Streaming. Each
// type keeps a window of items read ahead of the commit point; Reserve grows
// the window, Peek reads from it, and Drop commits items off its front.
//
// Slices returned by PeekSlice borrow the stream's storage. They stay valid
// until the next Reserve or Drop.
package stream

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"github.com/zostay/consume"
)

// Buffer is a byte stream over an io.Reader. The look-ahead window is the
// bufio.Reader buffer, so a Reserve beyond the buffer size fails with
// consume.ErrLookAhead.
type Buffer struct {
	r        *bufio.Reader
	consumed int
}

var _ consume.Stream[byte] = (*Buffer)(nil)

// NewBuffer creates a byte stream using the default buffer size (inherited
// from bufio.Reader).
func NewBuffer(r io.Reader) *Buffer {
	return &Buffer{r: bufio.NewReader(r)}
}

// NewBufferSize creates a byte stream with a custom look-ahead size.
func NewBufferSize(r io.Reader, size int) *Buffer {
	return &Buffer{r: bufio.NewReaderSize(r, size)}
}

// Reserve makes sure n bytes past the commit point are buffered.
func (b *Buffer) Reserve(n int) error {
	if n <= 0 {
		return nil
	}

	pbs, err := b.r.Peek(n)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return errors.Wrapf(consume.ErrEndOfInput, "reserve %d bytes with %d left", n, len(pbs))
	case errors.Is(err, bufio.ErrBufferFull):
		return errors.Wrapf(consume.ErrLookAhead, "reserve %d bytes in a %d byte buffer", n, b.r.Size())
	default:
		return errors.Wrapf(err, "reserve %d bytes", n)
	}
}

// PeekItem returns the byte at offset i past the commit point. The caller must
// have reserved at least i+1 bytes.
func (b *Buffer) PeekItem(i int) byte {
	pbs, _ := b.r.Peek(i + 1)
	return pbs[i]
}

// PeekSlice returns n bytes starting at offset i past the commit point. The
// caller must have reserved at least i+n bytes.
func (b *Buffer) PeekSlice(i, n int) []byte {
	pbs, _ := b.r.Peek(i + n)
	return pbs[i : i+n : i+n]
}

// Drop commits and discards n bytes.
func (b *Buffer) Drop(n int) {
	d, _ := b.r.Discard(n)
	b.consumed += d
}

// Consumed returns the total number of bytes dropped so far.
func (b *Buffer) Consumed() int {
	return b.consumed
}
