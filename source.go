package consume

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/zostay/consume/scratch"
)

// Stream is an incremental source of items. Offsets are relative to the
// commit point, which only Drop moves.
type Stream[I any] interface {
	// Reserve makes sure n items past the commit point can be peeked. It
	// returns an error wrapping ErrEndOfInput when the stream ends first.
	Reserve(n int) error

	// PeekItem returns the item at offset i. Offsets up to the last Reserve
	// are valid.
	PeekItem(i int) I

	// PeekSlice returns n items starting at offset i. The slice may borrow
	// the stream's storage and is only valid until the next Reserve or Drop.
	PeekSlice(i, n int) []I

	// Drop commits and discards n items.
	Drop(n int)
}

type config struct {
	alloc  any
	log    hclog.Logger
	tracer Tracer
}

// Option configures a Source.
type Option func(*config)

// WithAllocator sets the allocator used for scratch storage and clones. The
// item type must match the Source's.
func WithAllocator[I any](a scratch.Allocator[I]) Option {
	return func(c *config) {
		c.alloc = a
	}
}

// WithLogger sets the logger that receives evaluation traces at trace level.
func WithLogger(log hclog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithTracer sets a plain trace hook, such as log.Println.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		c.tracer = t
	}
}

// Source is what patterns are evaluated against: either a directly indexable
// slice of items or a Stream. A Source carries no match state between
// evaluations.
type Source[I any] struct {
	items  []I
	stream Stream[I]

	alloc  scratch.Allocator[I]
	log    hclog.Logger
	tracer Tracer
}

func newSource[I any](items []I, s Stream[I], opts []Option) *Source[I] {
	cfg := config{}
	for _, o := range opts {
		o(&cfg)
	}

	src := &Source[I]{
		items:  items,
		stream: s,
		alloc:  scratch.Heap[I]{},
		log:    cfg.log,
		tracer: cfg.tracer,
	}

	if cfg.alloc != nil {
		a, ok := cfg.alloc.(scratch.Allocator[I])
		if !ok {
			panic(fmt.Sprintf("consume: allocator %T does not allocate %T items", cfg.alloc, *new(I)))
		}
		src.alloc = a
	}

	if src.log == nil {
		src.log = hclog.NewNullLogger()
	}

	return src
}

// Direct returns a Source over items. Offsets are indexes into items and
// nothing is ever dropped.
func Direct[I any](items []I, opts ...Option) *Source[I] {
	return newSource(items, nil, opts)
}

// Streaming returns a Source over s.
func Streaming[I any](s Stream[I], opts ...Option) *Source[I] {
	return newSource(nil, s, opts)
}

// IsStream reports whether the source is a Stream.
func (s *Source[I]) IsStream() bool {
	return s.stream != nil
}

// Release gives owned storage from an OK result back to the allocator. Call
// it only for states with Owned set.
func (s *Source[I]) Release(items []I) {
	s.alloc.Free(items)
}

func (s *Source[I]) kind() string {
	if s.IsStream() {
		return "stream"
	}
	return "direct"
}

// reserve checks that n items are readable.
func (s *Source[I]) reserve(n int) error {
	if s.stream != nil {
		return s.stream.Reserve(n)
	}

	if n > len(s.items) {
		return errors.Wrapf(ErrEndOfInput, "reserve %d items of %d", n, len(s.items))
	}
	return nil
}

func (s *Source[I]) itemAt(i int) I {
	if s.stream != nil {
		return s.stream.PeekItem(i)
	}
	return s.items[i]
}

func (s *Source[I]) sliceAt(i, n int) []I {
	if s.stream != nil {
		return s.stream.PeekSlice(i, n)
	}
	return s.items[i : i+n : i+n]
}

// drop commits n items of a stream. Direct sources belong to the caller, so
// this does nothing for them.
func (s *Source[I]) drop(n int) {
	if s.stream != nil && n > 0 {
		s.stream.Drop(n)
	}
}

type itemKind int

const (
	itemStandard itemKind = iota
	itemFiltered
	itemFail
)

// item is a single read from the source, filtered or not.
type item[I any] struct {
	kind itemKind
	State[I]
}

// readAt reads the item at off, through f when it is set. The filter is
// evaluated without consuming anything; committing is up to the caller. The
// raw item must exist even when the filter would replace it.
func (s *Source[I]) readAt(f *Filter[I], b Behavior, off int) (item[I], error) {
	if err := s.reserve(off + 1); err != nil {
		return item[I]{}, err
	}

	if f != nil {
		// a filter that runs out of input past the raw item is a miss
		res, err := Evaluate(f.Pattern, s, b.view(), off)
		if err != nil && !errors.Is(err, ErrEndOfInput) {
			return item[I]{}, err
		}

		if st, ok := res.Ok(); ok && err == nil {
			return item[I]{kind: itemFiltered, State: st}, nil
		}

		if f.OnFailure == FilterFail {
			return item[I]{kind: itemFail}, nil
		}
	}

	return item[I]{
		kind:  itemStandard,
		State: State[I]{Value: s.itemAt(off), Used: 1},
	}, nil
}
