package match

import (
	"github.com/zostay/go-std/slices"

	"github.com/zostay/consume"
	"github.com/zostay/consume/scratch"
)

// BytePredicate is a function that returns true if it matches a single byte or
// false if it does not.
type BytePredicate func(c byte) bool

// BytesInSet creates a BytePredicate from the set of bytes given.
func BytesInSet(cs ...byte) BytePredicate {
	return func(b byte) bool {
		for _, c := range cs {
			if c == b {
				return true
			}
		}
		return false
	}
}

// BytesInRange creates a BytePredicate that matches any byte in the given
// range. The match is inclusive so bytes equal to either end point are also
// matched.
func BytesInRange(cs, ce byte) BytePredicate {
	return func(b byte) bool {
		return b >= cs && b <= ce
	}
}

// AnyBytes creates a combined BytePredicate that matches a byte that matches
// any of the given predicates.
func AnyBytes(preds ...BytePredicate) BytePredicate {
	switch len(preds) {
	case 0:
		return func(byte) bool { return false }
	case 1:
		return preds[0]
	default:
		return func(b byte) bool {
			for _, pred := range preds {
				if pred(b) {
					return true
				}
			}
			return false
		}
	}
}

// NotBytes creates a combined BytePredicate that matches a byte that does not
// match any of the given predicates.
func NotBytes(preds ...BytePredicate) BytePredicate {
	return func(b byte) bool {
		for _, pred := range preds {
			if pred(b) {
				return false
			}
		}
		return true
	}
}

// ThisButNotThatBytes creates a combined BytePredicate that matches a byte that
// matches the first predicate, but does not match the second predicate.
func ThisButNotThatBytes(this, that BytePredicate) BytePredicate {
	return func(b byte) bool {
		return this(b) && !that(b)
	}
}

// Bytes describes a class of bytes. It turns into a pattern for one byte of
// the class with One, or for a run of them with Many, and can be combined with
// other classes.
type Bytes struct {
	name string
	pred BytePredicate
}

// OneByte returns the class of bytes matching any of the given predicates.
func OneByte(name string, preds ...BytePredicate) *Bytes {
	return &Bytes{
		name: name,
		pred: AnyBytes(preds...),
	}
}

// Match reports whether c is in the class.
func (b *Bytes) Match(c byte) bool {
	return b.pred(c)
}

// One returns a pattern matching exactly one byte of the class.
func (b *Bytes) One() *consume.Pattern[byte, []byte] {
	return consume.One[byte](b.pred).Named(b.name)
}

// Many returns a pattern matching a run of at least one byte of the class.
// The run ends before the first byte outside the class.
func (b *Bytes) Many(hint scratch.Hint) *consume.Pattern[byte, []byte] {
	return consume.Run(hint, While[byte](b.pred)).Named(b.name + "+")
}

func extractPredFromBytes(b *Bytes) BytePredicate {
	return b.pred
}

// AndAlso creates a new class which combines this class with the given classes
// such that a byte belongs to it if it belongs to any of them. The new class
// keeps the name of this one.
func (b *Bytes) AndAlso(bs ...*Bytes) *Bytes {
	preds := append([]BytePredicate{b.pred}, slices.Map(bs, extractPredFromBytes)...)
	return &Bytes{
		name: b.name,
		pred: AnyBytes(preds...),
	}
}

// ButNot creates a new class of the bytes in this class that are in none of
// the given classes.
func (b *Bytes) ButNot(bs ...*Bytes) *Bytes {
	preds := slices.Map(bs, extractPredFromBytes)
	return &Bytes{
		name: b.name,
		pred: ThisButNotThatBytes(b.pred, AnyBytes(preds...)),
	}
}
