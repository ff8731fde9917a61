package match

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/coregex"
	"github.com/pkg/errors"

	"github.com/zostay/consume/token"
)

// Identity is a resolver that returns the matched items unchanged. The result
// keeps whatever ownership the match had.
func Identity[I any](v []I) ([]I, bool) {
	return v, true
}

// Inner is a resolver that strips the first and last item of a run, such as
// the quotes around a string. Runs shorter than two items fail. The result
// shares memory with the match, so the engine returns a copy of it.
func Inner[I any](v []I) ([]I, bool) {
	if len(v) < 2 {
		return nil, false
	}
	return v[1 : len(v)-1], true
}

// Text is a resolver that returns the matched bytes as a string.
func Text(v []byte) (string, bool) {
	return string(v), true
}

// Tagged returns a resolver that wraps a copy of the matched bytes in a token
// with tag t.
func Tagged(t token.Tag) func([]byte) (token.Token, bool) {
	return func(v []byte) (token.Token, bool) {
		return token.Token{Tag: t, Content: bytes.Clone(v)}, true
	}
}

// Keyword returns a resolver that looks the matched bytes up in words and
// fails when they are not there.
func Keyword(words map[string]token.Tag) func([]byte) (token.Tag, bool) {
	return func(v []byte) (token.Tag, bool) {
		t, ok := words[string(v)]
		return t, ok
	}
}

// Regexp returns a resolver that accepts a run only when all of it matches
// the regular expression expr. It returns the run itself.
func Regexp(expr string) (func([]byte) ([]byte, bool), error) {
	re, err := coregex.Compile(`^(?:` + expr + `)$`)
	if err != nil {
		return nil, errors.Wrapf(err, "compile %q", expr)
	}

	return func(v []byte) ([]byte, bool) {
		return v, re.Match(v)
	}, nil
}

// MustRegexp is like Regexp but panics if expr does not compile.
func MustRegexp(expr string) func([]byte) ([]byte, bool) {
	fn, err := Regexp(expr)
	if err != nil {
		panic(err)
	}
	return fn
}

// Excluding returns a resolver that rejects a run containing any of the given
// literals and otherwise returns the run itself.
func Excluding(literals ...string) (func([]byte) ([]byte, bool), error) {
	if len(literals) == 0 {
		return Identity[byte], nil
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}

	auto, err := builder.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build literal automaton")
	}

	return func(v []byte) ([]byte, bool) {
		return v, !auto.IsMatch(v)
	}, nil
}

// MustExcluding is like Excluding but panics on error.
func MustExcluding(literals ...string) func([]byte) ([]byte, bool) {
	fn, err := Excluding(literals...)
	if err != nil {
		panic(err)
	}
	return fn
}
