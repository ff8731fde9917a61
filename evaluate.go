// Package consume is the matching core of a parser-combinator toolkit. Given a
// Pattern and a Source, Evaluate decides whether the pattern matches, how many
// items it consumed and what value to hand back, borrowing from the source
// whenever it safely can and copying only when it must.
//
// A Source is either a slice (Direct) or an incremental Stream (Streaming).
// The Behavior passed to Evaluate picks how the match is materialized:
//
//	DirectView       borrow from the slice
//	DirectClone      always copy
//	StreamView       peek without consuming
//	StreamTake       consume and keep the items
//	StreamTakeClone  consume and keep, always in owned storage
//	StreamDrop       consume and discard
//
// Pattern mismatch is an outcome, not an error: Evaluate reports it as a Fail
// Result. Errors are reserved for running out of input (ErrEndOfInput), a
// behavior used with the wrong kind of source (ErrBehaviorMismatch), a stream
// whose look-ahead window is too small for a non-consuming run
// (ErrLookAhead), and failures of the underlying stream.
//
// Stream behaviors that consume do so as they go. A run that turns out to be
// Invalid after some items were taken leaves those items consumed; callers
// that need to backtrack should evaluate with StreamView first.
package consume

import (
	"fmt"

	"github.com/pkg/errors"
)

// Evaluate matches p against src.
//
// For view and direct behaviors, offset is where matching starts (an index
// into a Direct source, or a distance past the commit point of a stream).
// Consuming behaviors always start at the commit point and ignore offset.
func Evaluate[I, O any](p *Pattern[I, O], src *Source[I], b Behavior, offset int) (Result[O], error) {
	if b.IsStream() != src.IsStream() {
		return failed[O](), errors.Wrapf(ErrBehaviorMismatch, "%s behavior on a %s source", b, src.kind())
	}

	if offset < 0 {
		return failed[O](), errors.Errorf("negative offset %d", offset)
	}

	src.trace(StageTry, p.name, "arity", p.arity, "behavior", b, "offset", offset)

	var (
		res Result[O]
		err error
		h   = host[I]{src: src, b: b}
	)

	switch p.arity {
	case Single:
		res, err = (&single[I, O]{host: h, p: p}).run(offset)
	case Sequence:
		res, err = (&sequence[I, O]{host: h, p: p}).run(offset)
	default:
		panic(fmt.Sprintf("consume: pattern %q has unknown arity %d", p.name, p.arity))
	}

	switch {
	case err != nil:
		src.trace(StageErr, p.name, "behavior", b, "offset", offset, "error", err)
	case res.Outcome == Fail:
		src.trace(StageFail, p.name, "behavior", b, "offset", offset)
	case res.Outcome == Discard:
		src.trace(StageDrop, p.name, "behavior", b, "used", res.State.Used)
	default:
		src.trace(StageGot, p.name, "behavior", b, "used", res.State.Used, "owned", res.State.Owned)
	}

	return res, err
}
