package token

import (
	"fmt"
	"sync/atomic"
)

// Tag is the abstract tag identifier used to tag matched values by type.
type Tag int

// A few standard tags.
const (
	// None is the tag for values that aren't actual tokens.
	None Tag = iota

	// Literal is the most generic tag.
	Literal

	// Last is the first tag handed out by NextTag. Tags below it are
	// reserved for this package.
	Last
)

var issued atomic.Int64

// NextTag returns a tag no other caller has received, starting at Last.
// Grammars built in different packages can mix their tags safely as long as
// they all come from here. Call it while declaring package variables.
func NextTag() Tag {
	return Last + Tag(issued.Add(1)-1)
}

// Token is a tagged copy of matched bytes. Content never aliases the source it
// was matched from.
type Token struct {
	Tag     Tag
	Content []byte
}

func (t Token) String() string {
	return fmt.Sprintf("%d(%q)", t.Tag, t.Content)
}
