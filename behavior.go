package consume

import "github.com/pkg/errors"

var (
	// ErrEndOfInput is returned when a source cannot supply the items an
	// evaluation needs to look at. It is a hard error and distinct from a Fail
	// outcome.
	ErrEndOfInput = errors.New("unexpected end of input")

	// ErrLookAhead is returned by a stream that cannot hold as many items
	// past its commit point as an evaluation needs to look at. Like
	// ErrEndOfInput it is distinct from a Fail outcome.
	ErrLookAhead = errors.New("look-ahead window exceeded")

	// ErrBehaviorMismatch is returned when a direct behavior is used with a
	// streaming source or the other way around.
	ErrBehaviorMismatch = errors.New("behavior does not match source kind")
)

// Behavior selects how an evaluation reads its source and what it does with
// the matched items.
type Behavior int

const (
	// DirectClone reads a directly indexable source and always returns a
	// freshly allocated copy of the match.
	DirectClone Behavior = iota

	// DirectView reads a directly indexable source and never allocates unless
	// the match had to be assembled in scratch.
	DirectView

	// StreamTake consumes the matched items from a stream and keeps them,
	// copying them out of the stream as they are consumed.
	StreamTake

	// StreamTakeClone is StreamTake that always returns owned storage.
	StreamTakeClone

	// StreamView peeks at a stream without consuming anything.
	StreamView

	// StreamDrop consumes the matched items from a stream and produces no
	// value.
	StreamDrop
)

func (b Behavior) String() string {
	switch b {
	case DirectClone:
		return "direct-clone"
	case DirectView:
		return "direct-view"
	case StreamTake:
		return "stream-take"
	case StreamTakeClone:
		return "stream-take-clone"
	case StreamView:
		return "stream-view"
	case StreamDrop:
		return "stream-drop"
	default:
		return "unknown"
	}
}

// IsStream reports whether b works against a Streaming source.
func (b Behavior) IsStream() bool {
	return b >= StreamTake && b <= StreamDrop
}

// Consumes reports whether b advances the stream's commit point.
func (b Behavior) Consumes() bool {
	return b == StreamTake || b == StreamTakeClone || b == StreamDrop
}

// Keeps reports whether b consumes items and also returns them. Such items
// have to be copied out of the stream before they are dropped.
func (b Behavior) Keeps() bool {
	return b == StreamTake || b == StreamTakeClone
}

// Allocates reports whether b always hands the caller owned storage.
func (b Behavior) Allocates() bool {
	return b == DirectClone || b == StreamTakeClone
}

// Discards reports whether b throws the value away.
func (b Behavior) Discards() bool {
	return b == StreamDrop
}

// view returns the non-consuming behavior for the same source kind. Filters
// are always evaluated with it.
func (b Behavior) view() Behavior {
	if b.IsStream() {
		return StreamView
	}
	return DirectView
}
