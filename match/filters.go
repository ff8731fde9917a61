package match

import (
	"github.com/zostay/consume"
	"github.com/zostay/consume/scratch"
)

// MapItem returns a filter pattern that replaces a single item matching pred
// with to(item).
func MapItem[I any](pred func(I) bool, to func(I) I) *consume.Pattern[I, I] {
	p := consume.One(pred).Named("MapItem")
	return consume.Resolve(p, func(v []I) (I, bool) {
		return to(v[0]), true
	})
}

// Escape returns a filter pattern that reads an esc byte followed by a byte
// listed in table as the single byte table maps it to. It consumes two bytes
// to produce one, so any run read through it has to be assembled in scratch.
func Escape(esc byte, table map[byte]byte) *consume.Pattern[byte, byte] {
	p := consume.Run(scratch.Exact(2), func(i int, c byte) consume.Step {
		switch {
		case i == 0 && c == esc:
			return consume.Next
		case i == 0:
			return consume.Invalid
		}

		if _, ok := table[c]; ok {
			return consume.DoneInclude
		}
		return consume.Invalid
	}).Named("Escape")

	return consume.Resolve(p, func(v []byte) (byte, bool) {
		c, ok := table[v[1]]
		return c, ok
	})
}
