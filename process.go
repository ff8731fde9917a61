package consume

import "github.com/zostay/consume/scratch"

// processHost is the evaluator side of result processing. The processor is
// the only place that finishes scratch: every path through it either
// releases the scratch or transfers it, never both.
type processHost[I any] interface {
	releaseScratch()
	consumeUsed()
	isOwned() bool
	transfer() []I
}

// host holds the per-call state shared by both evaluators.
type host[I any] struct {
	src     *Source[I]
	b       Behavior
	sc      *scratch.Buffer[I]
	pending int
}

func (h *host[I]) releaseScratch() {
	if h.sc != nil {
		h.sc.Release()
	}
}

func (h *host[I]) consumeUsed() {
	if h.pending > 0 {
		h.src.drop(h.pending)
		h.pending = 0
	}
}

func (h *host[I]) isOwned() bool {
	return h.sc != nil && h.sc.Owns()
}

func (h *host[I]) transfer() []I {
	return h.sc.Take()
}

func clone[I any](a scratch.Allocator[I], s []I) []I {
	c := a.Alloc(len(s))
	copy(c, s)
	return c
}

// process decides what the caller gets for a successful match of raw, which
// took used source items.
func process[I, O any](
	h processHost[I],
	src *Source[I],
	b Behavior,
	raw []I,
	used int,
	resolve func([]I) (O, bool),
) Result[O] {
	if b.Discards() {
		h.consumeUsed()
		h.releaseScratch()
		return discarded[O](used)
	}

	if resolve == nil {
		// constructors only leave resolve unset when O is []I
		return keep(h, src, b, any(raw).(O), raw, used)
	}

	out, ok := resolve(raw)
	if !ok {
		h.releaseScratch()
		return failed[O]()
	}

	outItems, isItems := any(out).([]I)
	if !isItems {
		h.releaseScratch()
		return produced(out, used, false)
	}

	switch ClassifyOverlap(SpanOf(raw), SpanOf(outItems)) {
	case OverlapFull:
		return keep(h, src, b, out, outItems, used)

	case OverlapPartial:
		c := clone(src.alloc, outItems)
		h.releaseScratch()
		return produced(any(c).(O), used, true)

	default:
		h.releaseScratch()
		return produced(out, used, false)
	}
}

// keep returns v, which is items seen as an O, as owned or borrowed.
func keep[I, O any](h processHost[I], src *Source[I], b Behavior, v O, items []I, used int) Result[O] {
	if h.isOwned() {
		h.transfer()
		return produced(v, used, true)
	}

	if b.Allocates() {
		c := clone(src.alloc, items)
		h.releaseScratch()
		return produced(any(c).(O), used, true)
	}

	h.releaseScratch()
	return produced(v, used, false)
}
