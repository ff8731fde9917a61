package consume

import (
	"fmt"

	"github.com/zostay/consume/scratch"
)

// sequence evaluates Sequence patterns.
//
// Matched items are borrowed from the source as one slice whenever possible.
// They are copied into scratch when the behavior keeps consumed stream items,
// or from the first filtered item on. In the second case the unfiltered items
// read before it are copied in first so the run stays contiguous.
type sequence[I, O any] struct {
	host[I]
	p *Pattern[I, O]
}

func (e *sequence[I, O]) limit() int {
	if e.p.hint.Kind == scratch.KindDynamic {
		return -1
	}
	return e.p.hint.N
}

func (e *sequence[I, O]) run(skip int) (Result[O], error) {
	defer e.releaseScratch()

	consumes := e.b.Consumes()
	if consumes {
		skip = 0
	}

	var (
		used  int
		count int
		lim   = e.limit()
	)

scan:
	for i := 0; ; i++ {
		off := skip + used
		if consumes {
			// everything accepted so far is already dropped
			off = 0
		}

		it, err := e.src.readAt(e.p.filter, e.b, off)
		if err != nil {
			return failed[O](), err
		}

		if it.kind == itemFail {
			return failed[O](), nil
		}

		step := Next
		if it.kind != itemFiltered || !e.p.skipsFiltered() {
			step = e.p.classify(i, it.Value)
		}

		switch step {
		case Invalid:
			return failed[O](), nil

		case DoneExclude:
			if i == 0 {
				return failed[O](), nil
			}
			break scan

		case Next, DoneInclude:
			if lim >= 0 && count >= lim {
				return failed[O](), nil
			}

			// the limit check above keeps scratch within its hint
			if err := e.accumulate(it, skip, used); err != nil {
				return failed[O](), err
			}

			used += it.Used
			count++

			if consumes {
				e.src.drop(it.Used)
			}

			if step == DoneInclude {
				break scan
			}

		default:
			panic(fmt.Sprintf("consume: pattern %q returned unknown step %d", e.p.name, step))
		}
	}

	if e.p.hint.Kind == scratch.KindExact && count != e.p.hint.N {
		return failed[O](), nil
	}

	var raw []I
	switch {
	case e.sc != nil:
		raw = e.sc.Items()
	case e.b.Discards():
	default:
		raw = e.src.sliceAt(skip, used)
	}

	return process[I, O](e, e.src, e.b, raw, used, e.p.resolve), nil
}

// accumulate copies it into scratch when the run can no longer be borrowed
// from the source.
func (e *sequence[I, O]) accumulate(it item[I], skip, used int) error {
	if e.b.Discards() {
		return nil
	}

	if e.sc == nil {
		if !e.b.Keeps() && it.kind != itemFiltered {
			return nil
		}

		e.sc = scratch.New(e.p.hint, e.src.alloc)
		if used > 0 {
			if err := e.sc.AppendSlice(e.src.sliceAt(skip, used)); err != nil {
				return err
			}
		}
	}

	return e.sc.Append(it.Value)
}
