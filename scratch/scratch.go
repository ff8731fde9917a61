// Package scratch provides the accumulation buffer used to build a contiguous
// run of items when the matched items cannot be borrowed straight from the
// source.
package scratch

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrCapacity is returned when an append would grow a buffer beyond the limit
// set by its Hint.
var ErrCapacity = errors.New("scratch capacity exceeded")

// Kind selects the backing storage of a Buffer.
type Kind int

const (
	// KindDynamic buffers grow as needed.
	KindDynamic Kind = iota

	// KindExact buffers hold exactly N items, each slot written once.
	KindExact

	// KindBounded buffers hold at most N items.
	KindBounded
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindBounded:
		return "bounded"
	default:
		return "dynamic"
	}
}

// Hint describes how many items a run is expected to produce.
type Hint struct {
	Kind Kind
	N    int
}

// Exact is a Hint for runs of exactly n items.
func Exact(n int) Hint { return Hint{Kind: KindExact, N: n} }

// Bounded is a Hint for runs of at most max items.
func Bounded(max int) Hint { return Hint{Kind: KindBounded, N: max} }

// Dynamic is a Hint for runs of unknown length.
func Dynamic() Hint { return Hint{Kind: KindDynamic} }

func (h Hint) String() string {
	if h.Kind == KindDynamic {
		return h.Kind.String()
	}
	return fmt.Sprintf("%s(%d)", h.Kind, h.N)
}

const dynamicInitialCap = 16

// Buffer accumulates items in order. Appends are strictly contiguous: every
// write lands at index Len().
//
// A Buffer ends its life in exactly one of two ways: Release gives the
// storage back to the Allocator, or Take hands it to the caller. Whichever
// happens first wins and later calls to either do nothing.
type Buffer[I any] struct {
	hint  Hint
	alloc Allocator[I]
	items []I
	done  bool
}

// New creates a Buffer sized according to h. Storage is allocated from a,
// or from the heap when a is nil, on first write.
func New[I any](h Hint, a Allocator[I]) *Buffer[I] {
	if a == nil {
		a = Heap[I]{}
	}
	return &Buffer[I]{hint: h, alloc: a}
}

// Hint returns the sizing hint the Buffer was created with.
func (b *Buffer[I]) Hint() Hint { return b.hint }

// Len returns the number of items written so far.
func (b *Buffer[I]) Len() int { return len(b.items) }

func (b *Buffer[I]) limit() int {
	if b.hint.Kind == KindDynamic {
		return -1
	}
	return b.hint.N
}

// size picks an allocation size for at least n items. Exact buffers get
// their whole length at once; the others grow toward want, and Bounded
// buffers never past their maximum.
func (b *Buffer[I]) size(want, n int) int {
	switch b.hint.Kind {
	case KindExact:
		return b.hint.N
	case KindBounded:
		return min(max(want, n), b.hint.N)
	default:
		return max(want, n)
	}
}

func (b *Buffer[I]) ensure(n int) error {
	if b.done {
		panic("scratch: write to a released buffer")
	}

	if lim := b.limit(); lim >= 0 && n > lim {
		return errors.Wrapf(ErrCapacity, "%s buffer cannot hold %d items", b.hint, n)
	}

	if b.items == nil {
		b.items = b.alloc.Alloc(b.size(dynamicInitialCap, n))[:0]
		return nil
	}

	if n <= cap(b.items) {
		return nil
	}

	grown := b.alloc.Alloc(b.size(2*cap(b.items), n))[:len(b.items)]
	copy(grown, b.items)
	b.alloc.Free(b.items)
	b.items = grown
	return nil
}

// Set writes v at index i. The index must equal Len(); anything else is a
// programming error and panics.
func (b *Buffer[I]) Set(i int, v I) error {
	if i != len(b.items) {
		panic(fmt.Sprintf("scratch: non-contiguous write at %d, length is %d", i, len(b.items)))
	}

	if err := b.ensure(i + 1); err != nil {
		return err
	}

	b.items = append(b.items, v)
	return nil
}

// Append writes v at the end of the buffer.
func (b *Buffer[I]) Append(v I) error {
	return b.Set(len(b.items), v)
}

// AppendSlice writes every item of vs at the end of the buffer.
func (b *Buffer[I]) AppendSlice(vs []I) error {
	if len(vs) == 0 {
		return nil
	}

	if err := b.ensure(len(b.items) + len(vs)); err != nil {
		return err
	}

	b.items = append(b.items, vs...)
	return nil
}

// Items returns the accumulated run. The slice is only valid until Release.
func (b *Buffer[I]) Items() []I {
	return b.items
}

// Owns reports whether the buffer currently holds allocated storage.
func (b *Buffer[I]) Owns() bool {
	return !b.done && b.items != nil
}

// Release frees the storage.
func (b *Buffer[I]) Release() {
	if b.done {
		return
	}

	b.done = true
	if b.items != nil {
		b.alloc.Free(b.items)
		b.items = nil
	}
}

// Take transfers the storage to the caller, who becomes responsible for
// freeing it.
func (b *Buffer[I]) Take() []I {
	if b.done {
		return nil
	}

	b.done = true
	items := b.items
	b.items = nil
	return items
}
