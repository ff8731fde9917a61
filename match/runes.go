package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/consume"
	"github.com/zostay/consume/scratch"
)

// RunePredicate is a function that returns true if it matches a single rune or
// false if it does not.
type RunePredicate func(r rune) bool

// RunesInSet creates a RunePredicate from the set of runes given.
func RunesInSet(cs ...rune) RunePredicate {
	return func(r rune) bool {
		for _, c := range cs {
			if c == r {
				return true
			}
		}
		return false
	}
}

// RunesInRange creates a RunePredicate that matches any rune in the given
// range. The match is inclusive so runes equal to either end point are also
// matched.
func RunesInRange(cs, ce rune) RunePredicate {
	return func(r rune) bool {
		return r >= cs && r <= ce
	}
}

// AnyRunes creates a combined RunePredicate that matches a rune that matches
// any of the given predicates.
func AnyRunes(preds ...RunePredicate) RunePredicate {
	switch len(preds) {
	case 0:
		return func(rune) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(r rune) bool {
			for _, pred := range preds {
				if pred(r) {
					return true
				}
			}
			return false
		}
	}
}

// NotRunes creates a combined RunePredicate that matches a rune that does not
// match any of the given predicates.
func NotRunes(preds ...RunePredicate) RunePredicate {
	return func(r rune) bool {
		for _, pred := range preds {
			if pred(r) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatRunes creates a combined RunePredicate that matches a rune that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatRunes(this, that RunePredicate) RunePredicate {
	return func(r rune) bool {
		return this(r) && !that(r)
	}
}

// Runes is the rune counterpart of Bytes.
type Runes struct {
	name string
	pred RunePredicate
}

// OneRune returns the class of runes matching any of the given predicates.
func OneRune(name string, preds ...RunePredicate) *Runes {
	return &Runes{
		name: name,
		pred: AnyRunes(preds...),
	}
}

// Match reports whether c is in the class.
func (r *Runes) Match(c rune) bool {
	return r.pred(c)
}

// One returns a pattern matching exactly one rune of the class.
func (r *Runes) One() *consume.Pattern[rune, []rune] {
	return consume.One[rune](r.pred).Named(r.name)
}

// Many returns a pattern matching a run of at least one rune of the class.
func (r *Runes) Many(hint scratch.Hint) *consume.Pattern[rune, []rune] {
	return consume.Run(hint, While[rune](r.pred)).Named(r.name + "+")
}

func extractPredFromRunes(r *Runes) RunePredicate {
	return r.pred
}

// AndAlso creates a new class which combines this class with the given
// classes such that a rune belongs to it if it belongs to any of them.
func (r *Runes) AndAlso(rs ...*Runes) *Runes {
	preds := append([]RunePredicate{r.pred}, slices.Map(rs, extractPredFromRunes)...)
	return &Runes{
		name: r.name,
		pred: AnyRunes(preds...),
	}
}

// ButNot creates a new class of the runes in this class that are in none of
// the given classes.
func (r *Runes) ButNot(rs ...*Runes) *Runes {
	preds := slices.Map(rs, extractPredFromRunes)
	return &Runes{
		name: r.name,
		pred: ThisButNotThatRunes(r.pred, AnyRunes(preds...)),
	}
}
