package match_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zostay/consume"
	"github.com/zostay/consume/match"
	"github.com/zostay/consume/scratch"
	"github.com/zostay/consume/stream"
	"github.com/zostay/consume/token"
)

func Example() {
	var (
		TEmailAddress = token.NextTag()
		TPhoneNumber  = token.NextTag()
	)

	var (
		digits = match.BytesInRange('0', '9')
		hyphen = match.BytesInSet('-')

		atext = match.AnyBytes(
			match.BytesInRange('a', 'z'),
			match.BytesInRange('A', 'Z'),
			digits,
			match.BytesInSet(
				'!', '#', '$', '%', '&', '\'', '*', '+', '-', '/',
				'=', '?', '^', '_', '`', '{', '|', '}', '~',
			),
		)

		phoneChars = match.OneByte("PhoneNumber", digits, hyphen)
		emailChars = match.OneByte("EmailAddress", atext, match.BytesInSet('.', '@'))

		MatchPhoneNumber = consume.Resolve(
			consume.Resolve(phoneChars.Many(scratch.Bounded(12)), match.MustRegexp(`[0-9]{3}-?[0-9]{3}-?[0-9]{4}`)),
			match.Tagged(TPhoneNumber),
		)

		MatchEmailAddress = consume.Resolve(
			consume.Resolve(emailChars.Many(scratch.Dynamic()), match.MustRegexp(`[^@.]+(\.[^@.]+)*@[^@.]+(\.[^@.]+)*`)),
			match.Tagged(TEmailAddress),
		)
	)

	for _, contact := range []string{"555-555-5555\n", "sterling@example.com\n"} {
		src := consume.Direct([]byte(contact))
		res, which, err := match.Longest(src, consume.DirectView, 0, MatchPhoneNumber, MatchEmailAddress)
		if err != nil {
			panic(err)
		}

		tok := res.State.Value
		fmt.Println(which, string(tok.Content), tok.Tag == TPhoneNumber)
	}
	// Output:
	// 0 555-555-5555 true
	// 1 sterling@example.com false
}

func is(c byte) func(byte) bool {
	return func(b byte) bool { return b == c }
}

func classify[I any](fn func(int, I) consume.Step, items []I) []consume.Step {
	steps := make([]consume.Step, len(items))
	for i, v := range items {
		steps[i] = fn(i, v)
	}
	return steps
}

func TestClassifiers(t *testing.T) {
	const (
		N = consume.Next
		I = consume.DoneInclude
		X = consume.DoneExclude
		V = consume.Invalid
	)

	digit := match.BytesInRange('0', '9')

	tests := []struct {
		name  string
		fn    func(int, byte) consume.Step
		input string
		want  []consume.Step
	}{
		{"While", match.While[byte](digit), "12a", []consume.Step{N, N, X}},
		{"Until", match.Until(is(';')), "ab;", []consume.Step{N, N, X}},
		{"UntilIncluding", match.UntilIncluding(is(';')), "ab;", []consume.Step{N, N, I}},
		{"Exactly", match.Exactly[byte](3, digit), "123", []consume.Step{N, N, I}},
		{"Exactly bad item", match.Exactly[byte](3, digit), "1a3", []consume.Step{N, V, I}},
		{"Delimited", match.Delimited(is('('), is(')')), "(a))", []consume.Step{N, N, I, I}},
		{"Delimited no open", match.Delimited(is('('), is(')')), "a)", []consume.Step{V, I}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify(tt.fn, []byte(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("steps mismatch (-want +got)\n%s", diff)
			}
		})
	}
}

func TestFirst(t *testing.T) {
	word := match.OneByte("Word", match.BytesInRange('a', 'z')).Many(scratch.Dynamic())
	num := match.OneByte("Number", match.BytesInRange('0', '9')).Many(scratch.Dynamic())

	tests := []struct {
		name  string
		input string
		want  string
		which int
	}{
		{"first alternative", "abc ", "abc", 0},
		{"second alternative", "123 ", "123", 1},
		{"neither", "!!! ", "", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := stream.NewBuffer(strings.NewReader(tt.input))
			src := consume.Streaming[byte](buf)

			res, which, err := match.First(src, consume.StreamTake, 0, word, num)
			if err != nil {
				t.Fatal(err)
			}

			if which != tt.which {
				t.Errorf("which = %d, want %d", which, tt.which)
			}
			if tt.which < 0 {
				if !res.IsFail() {
					t.Errorf("outcome = %s, want fail", res.Outcome)
				}
				return
			}

			st, _ := res.Ok()
			if string(st.Value) != tt.want {
				t.Errorf("value = %q, want %q", st.Value, tt.want)
			}
			if buf.Consumed() != len(tt.want) {
				t.Errorf("Consumed() = %d, want %d", buf.Consumed(), len(tt.want))
			}
		})
	}
}

func TestFirstEndOfInput(t *testing.T) {
	word := match.OneByte("Word", match.BytesInRange('a', 'z')).Many(scratch.Dynamic())

	_, which, err := match.First(consume.Direct([]byte("abc")), consume.DirectView, 0, word)
	if err == nil || which != -1 {
		t.Errorf("which = %d, err = %v, want -1 and an error", which, err)
	}
}

func TestLongest(t *testing.T) {
	alloc := &scratch.Counting[byte]{}
	buf := stream.NewBuffer(strings.NewReader("if_x = 1;"))
	src := consume.Streaming[byte](buf, consume.WithAllocator[byte](alloc))

	keyword := match.OneByte("Keyword", match.BytesInRange('a', 'z')).Many(scratch.Bounded(2))
	ident := match.OneByte("Ident", match.BytesInRange('a', 'z'), match.BytesInSet('_')).Many(scratch.Dynamic())
	short := match.OneByte("Short", match.BytesInRange('a', 'z'), match.BytesInSet('_')).Many(scratch.Dynamic())

	res, which, err := match.Longest(src, consume.StreamTake, 0, keyword, ident, short)
	if err != nil {
		t.Fatal(err)
	}

	st, ok := res.Ok()
	if !ok {
		t.Fatalf("outcome = %s, want ok", res.Outcome)
	}

	if which != 1 {
		t.Errorf("which = %d, want the earlier of the two longest", which)
	}
	if string(st.Value) != "if_x" || buf.Consumed() != 4 {
		t.Errorf("got %q consumed %d, want \"if_x\" consumed 4", st.Value, buf.Consumed())
	}

	src.Release(st.Value)
	if alloc.Live() != 0 || alloc.Invalid != 0 {
		t.Errorf("live = %d, invalid = %d", alloc.Live(), alloc.Invalid)
	}
}

func TestLongestNoMatch(t *testing.T) {
	digit := match.OneByte("Digit", match.BytesInRange('0', '9'))

	res, which, err := match.Longest(consume.Direct([]byte("x")), consume.DirectView, 0, digit.One())
	if err != nil {
		t.Fatal(err)
	}
	if which != -1 || !res.IsFail() {
		t.Errorf("which = %d, outcome = %s, want -1 and fail", which, res.Outcome)
	}
}
