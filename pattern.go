package consume

import "github.com/zostay/consume/scratch"

// Arity says whether a Pattern matches one item or a run of items.
type Arity int

const (
	// Single patterns match exactly one item.
	Single Arity = iota

	// Sequence patterns match a run of one or more items.
	Sequence
)

func (a Arity) String() string {
	if a == Sequence {
		return "sequence"
	}
	return "single"
}

// Step is how a sequence classifier judges the item at index i of a run.
type Step int

const (
	// Next accepts the item and continues the run.
	Next Step = iota

	// DoneInclude accepts the item and ends the run with it.
	DoneInclude

	// DoneExclude ends the run before the item. At index 0 this is a Fail,
	// since empty runs never match.
	DoneExclude

	// Invalid aborts the run with a Fail.
	Invalid
)

func (s Step) String() string {
	switch s {
	case Next:
		return "next"
	case DoneInclude:
		return "done-include"
	case DoneExclude:
		return "done-exclude"
	default:
		return "invalid"
	}
}

// FilterPolicy decides what happens when a filter does not match.
type FilterPolicy int

const (
	// FilterSafe falls back to the raw item when the filter fails.
	FilterSafe FilterPolicy = iota

	// FilterFail fails the whole pattern when the filter fails.
	FilterFail

	// FilterSkip falls back to the raw item when the filter fails, and accepts
	// the filtered item without consulting the pattern when it succeeds.
	FilterSkip
)

func (f FilterPolicy) String() string {
	switch f {
	case FilterFail:
		return "fail"
	case FilterSkip:
		return "skip"
	default:
		return "safe"
	}
}

// Filter rewrites items before a pattern sees them. The filter pattern is
// evaluated against the same source at the item's offset and its value
// replaces the raw item. It may consume several items to produce one.
type Filter[I any] struct {
	Pattern   *Pattern[I, I]
	OnFailure FilterPolicy
}

// Pattern describes a match. Build one with One or Run, then optionally
// attach a filter with Filtered and a resolver with Resolve.
//
// Without a resolver the produced value is the matched items as a []I (a
// single item is a one-element slice). A resolver turns that slice into an
// O. When a resolver returns a []I, the engine compares it with its input to
// decide whether the result can be borrowed or must be copied; any other
// output type is treated as a plain value, so resolvers must not keep
// references to their input in it.
type Pattern[I, O any] struct {
	name     string
	arity    Arity
	match    func(I) bool
	classify func(i int, v I) Step
	hint     scratch.Hint
	filter   *Filter[I]
	resolve  func([]I) (O, bool)
}

// One returns a Single pattern that accepts an item when match returns true.
func One[I any](match func(I) bool) *Pattern[I, []I] {
	return &Pattern[I, []I]{
		name:  "One",
		arity: Single,
		match: match,
	}
}

// Run returns a Sequence pattern driven by classify. The hint bounds the run
// length: a run that grows past an Exact or Bounded hint fails, and so does
// one that ends short of an Exact hint.
func Run[I any](hint scratch.Hint, classify func(i int, v I) Step) *Pattern[I, []I] {
	return &Pattern[I, []I]{
		name:     "Run",
		arity:    Sequence,
		classify: classify,
		hint:     hint,
	}
}

// Resolve returns a copy of p that passes the matched items through fn. When
// fn returns false the pattern fails. If p already has a resolver, fn is
// applied to its output.
func Resolve[I, O any](p *Pattern[I, []I], fn func([]I) (O, bool)) *Pattern[I, O] {
	if prev := p.resolve; prev != nil {
		inner := fn
		fn = func(v []I) (O, bool) {
			mid, ok := prev(v)
			if !ok {
				var zero O
				return zero, false
			}
			return inner(mid)
		}
	}

	return &Pattern[I, O]{
		name:     p.name,
		arity:    p.arity,
		match:    p.match,
		classify: p.classify,
		hint:     p.hint,
		filter:   p.filter,
		resolve:  fn,
	}
}

// Named returns a copy of p with the given name, used when tracing.
func (p *Pattern[I, O]) Named(name string) *Pattern[I, O] {
	c := *p
	c.name = name
	return &c
}

// Filtered returns a copy of p that reads items through f.
func (p *Pattern[I, O]) Filtered(f *Pattern[I, I], onFailure FilterPolicy) *Pattern[I, O] {
	c := *p
	c.filter = &Filter[I]{Pattern: f, OnFailure: onFailure}
	return &c
}

// Name returns the trace name.
func (p *Pattern[I, O]) Name() string { return p.name }

// Arity returns whether p matches one item or a run.
func (p *Pattern[I, O]) Arity() Arity { return p.arity }

// Hint returns the run length hint of a Sequence pattern.
func (p *Pattern[I, O]) Hint() scratch.Hint { return p.hint }

// Filter returns the attached filter or nil.
func (p *Pattern[I, O]) Filter() *Filter[I] { return p.filter }

func (p *Pattern[I, O]) skipsFiltered() bool {
	return p.filter != nil && p.filter.OnFailure == FilterSkip
}
