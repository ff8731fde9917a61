// Package match holds the building blocks for patterns: item predicates,
// sequence classifiers, filters, resolvers, and alternation over patterns.
package match

import (
	"github.com/zostay/consume"
)

// While returns a classifier that continues a run as long as pred holds and
// ends it before the first item that fails pred. Reaching the end of input
// before such an item is an ErrEndOfInput error, so input that may end inside
// the run needs a terminator.
func While[I any](pred func(I) bool) func(int, I) consume.Step {
	return func(_ int, v I) consume.Step {
		if pred(v) {
			return consume.Next
		}
		return consume.DoneExclude
	}
}

// Until returns a classifier that continues a run up to, but not including,
// the first item matching stop.
func Until[I any](stop func(I) bool) func(int, I) consume.Step {
	return func(_ int, v I) consume.Step {
		if stop(v) {
			return consume.DoneExclude
		}
		return consume.Next
	}
}

// UntilIncluding returns a classifier that continues a run up to and
// including the first item matching stop.
func UntilIncluding[I any](stop func(I) bool) func(int, I) consume.Step {
	return func(_ int, v I) consume.Step {
		if stop(v) {
			return consume.DoneInclude
		}
		return consume.Next
	}
}

// Exactly returns a classifier for runs of exactly n items that all satisfy
// pred. Any item that does not is Invalid.
func Exactly[I any](n int, pred func(I) bool) func(int, I) consume.Step {
	return func(i int, v I) consume.Step {
		switch {
		case !pred(v):
			return consume.Invalid
		case i >= n-1:
			return consume.DoneInclude
		default:
			return consume.Next
		}
	}
}

// Delimited returns a classifier for runs that start with an item matching
// open and end with the first following item matching end, both included.
func Delimited[I any](open, end func(I) bool) func(int, I) consume.Step {
	return func(i int, v I) consume.Step {
		switch {
		case i == 0 && open(v):
			return consume.Next
		case i == 0:
			return consume.Invalid
		case end(v):
			return consume.DoneInclude
		default:
			return consume.Next
		}
	}
}

// First evaluates each pattern in turn and returns the first result that is
// not a Fail along with the index of the pattern that produced it. When every
// pattern fails, it returns a Fail and -1.
//
// A sequence pattern that fails part way under a consuming behavior leaves the
// items it took consumed, so alternatives are best tried with a view behavior.
func First[I, O any](
	src *consume.Source[I],
	b consume.Behavior,
	offset int,
	ps ...*consume.Pattern[I, O],
) (consume.Result[O], int, error) {
	for i, p := range ps {
		res, err := consume.Evaluate(p, src, b, offset)
		if err != nil {
			return res, -1, err
		}

		if !res.IsFail() {
			return res, i, nil
		}
	}

	return consume.Result[O]{}, -1, nil
}

// Longest tries every pattern without consuming anything, then evaluates the
// one that used the most items with b. Ties go to the earlier pattern. When
// every pattern fails, it returns a Fail and -1.
func Longest[I, O any](
	src *consume.Source[I],
	b consume.Behavior,
	offset int,
	ps ...*consume.Pattern[I, O],
) (consume.Result[O], int, error) {
	view := consume.DirectView
	if b.IsStream() {
		view = consume.StreamView
	}

	best, bestUsed := -1, 0
	for i, p := range ps {
		res, err := consume.Evaluate(p, src, view, offset)
		if err != nil {
			return consume.Result[O]{}, -1, err
		}

		st, ok := res.Ok()
		if !ok {
			continue
		}

		release(src, st)
		if best < 0 || st.Used > bestUsed {
			best, bestUsed = i, st.Used
		}
	}

	if best < 0 {
		return consume.Result[O]{}, -1, nil
	}

	res, err := consume.Evaluate(ps[best], src, b, offset)
	return res, best, err
}

// release gives back owned storage of a state whose value is a run of items.
func release[I, O any](src *consume.Source[I], st consume.State[O]) {
	if !st.Owned {
		return
	}

	if items, ok := any(st.Value).([]I); ok {
		src.Release(items)
	}
}
