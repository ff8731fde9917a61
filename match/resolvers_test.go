package match_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zostay/consume"
	"github.com/zostay/consume/match"
	"github.com/zostay/consume/scratch"
	"github.com/zostay/consume/token"
)

func TestInner(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`"abc"`, "abc", true},
		{`""`, "", true},
		{`"`, "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := match.Inner([]byte(tt.in))
		if ok != tt.ok || string(got) != tt.want {
			t.Errorf("Inner(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRegexp(t *testing.T) {
	number := match.MustRegexp(`-?[0-9]+(\.[0-9]+)?`)

	tests := []struct {
		in string
		ok bool
	}{
		{"42", true},
		{"-3.14", true},
		{"3.", false},
		{"x42", false},
		{"42x", false},
	}

	for _, tt := range tests {
		if _, ok := number([]byte(tt.in)); ok != tt.ok {
			t.Errorf("number(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}

	if _, err := match.Regexp(`(`); err == nil {
		t.Error("Regexp(\"(\") should not compile")
	}
}

func TestExcluding(t *testing.T) {
	comment := match.MustExcluding("*/", "/*")

	tests := []struct {
		in string
		ok bool
	}{
		{"plain text", true},
		{"nested /* comment", false},
		{"closed */ early", false},
		{"a*b/c", true},
	}

	for _, tt := range tests {
		if _, ok := comment([]byte(tt.in)); ok != tt.ok {
			t.Errorf("comment(%q) = %v, want %v", tt.in, ok, tt.ok)
		}
	}

	none := match.MustExcluding()
	if _, ok := none([]byte("anything")); !ok {
		t.Error("Excluding() with no literals should accept everything")
	}
}

func TestKeywordAndTagged(t *testing.T) {
	var (
		TIf    = token.NextTag()
		TElse  = token.NextTag()
		TIdent = token.NextTag()
	)

	word := match.OneByte("Word", match.BytesInRange('a', 'z')).Many(scratch.Dynamic())
	keyword := consume.Resolve(word, match.Keyword(map[string]token.Tag{"if": TIf, "else": TElse}))
	ident := consume.Resolve(word, match.Tagged(TIdent))

	input := []byte("else x")
	src := consume.Direct(input)

	res, err := consume.Evaluate(keyword, src, consume.DirectView, 0)
	if err != nil {
		t.Fatal(err)
	}
	if tag, ok := res.Ok(); !ok || tag.Value != TElse || tag.Used != 4 {
		t.Errorf("keyword = %+v, want else tag used 4", res)
	}

	res, err = consume.Evaluate(keyword, consume.Direct([]byte("x ")), consume.DirectView, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsFail() {
		t.Errorf("keyword outcome = %s, want fail", res.Outcome)
	}

	tres, err := consume.Evaluate(ident, src, consume.DirectView, 0)
	if err != nil {
		t.Fatal(err)
	}

	st, ok := tres.Ok()
	if !ok {
		t.Fatalf("ident outcome = %s, want ok", tres.Outcome)
	}
	if diff := cmp.Diff(token.Token{Tag: TIdent, Content: []byte("else")}, st.Value); diff != "" {
		t.Errorf("token mismatch (-want +got)\n%s", diff)
	}

	input[0] = 'E'
	if string(st.Value.Content) != "else" {
		t.Error("token content aliases the source")
	}
}
