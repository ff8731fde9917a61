package consume

// State is a value produced by an evaluation together with the number of
// source items it took to produce it.
//
// Owned only matters when Value is a slice of source items. When it is set,
// Value lives in storage from the source's allocator and the holder must give
// it back exactly once with Source.Release. Otherwise Value is borrowed from
// the source (or from the resolver) and must not be released.
type State[T any] struct {
	Value T
	Used  int
	Owned bool
}

// Outcome tags a Result.
type Outcome int

const (
	// Fail means the pattern did not match.
	Fail Outcome = iota

	// Discard means the pattern matched, but the behavior asked for no value.
	Discard

	// OK means the pattern matched and produced a value.
	OK
)

func (o Outcome) String() string {
	switch o {
	case Discard:
		return "discard"
	case OK:
		return "ok"
	default:
		return "fail"
	}
}

// Result is the outcome of Evaluate. State is set for OK results; for
// Discard results only State.Used is set.
type Result[T any] struct {
	Outcome Outcome
	State   State[T]
}

// Ok returns the produced state and true for OK results.
func (r Result[T]) Ok() (State[T], bool) {
	return r.State, r.Outcome == OK
}

// IsFail reports whether the pattern did not match.
func (r Result[T]) IsFail() bool { return r.Outcome == Fail }

// IsDiscard reports whether the pattern matched without producing a value.
func (r Result[T]) IsDiscard() bool { return r.Outcome == Discard }

func failed[T any]() Result[T] {
	return Result[T]{Outcome: Fail}
}

func discarded[T any](used int) Result[T] {
	return Result[T]{Outcome: Discard, State: State[T]{Used: used}}
}

func produced[T any](v T, used int, owned bool) Result[T] {
	return Result[T]{Outcome: OK, State: State[T]{Value: v, Used: used, Owned: owned}}
}
