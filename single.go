package consume

import "github.com/zostay/consume/scratch"

// single evaluates Single patterns.
type single[I, O any] struct {
	host[I]
	p *Pattern[I, O]
}

func (e *single[I, O]) run(off int) (Result[O], error) {
	defer e.releaseScratch()

	if e.b.Consumes() {
		off = 0
	}

	it, err := e.src.readAt(e.p.filter, e.b, off)
	if err != nil {
		return failed[O](), err
	}

	if it.kind == itemFail {
		return failed[O](), nil
	}

	accept := it.kind == itemFiltered && e.p.skipsFiltered()
	if !accept && !e.p.match(it.Value) {
		return failed[O](), nil
	}

	var raw []I
	switch {
	case e.b.Discards():
		e.pending = it.Used

	case it.kind == itemFiltered || e.b.Keeps():
		e.sc = scratch.New(scratch.Exact(1), e.src.alloc)
		if err := e.sc.Append(it.Value); err != nil {
			return failed[O](), err
		}
		raw = e.sc.Items()

	default:
		raw = e.src.sliceAt(off, 1)
	}

	if e.b.Keeps() {
		e.src.drop(it.Used)
	}

	return process[I, O](e, e.src, e.b, raw, it.Used, e.p.resolve), nil
}
