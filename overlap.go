package consume

import "unsafe"

// Span is a range of memory, in bytes.
type Span struct {
	Addr uintptr
	Size uintptr
}

// SpanOf returns the memory occupied by the elements of s.
func SpanOf[I any](s []I) Span {
	var zero I
	return Span{
		Addr: uintptr(unsafe.Pointer(unsafe.SliceData(s))),
		Size: unsafe.Sizeof(zero) * uintptr(len(s)),
	}
}

// Overlap classifies how two spans share memory.
type Overlap int

const (
	// OverlapNone means the spans have no byte in common.
	OverlapNone Overlap = iota

	// OverlapPartial means the spans intersect without being the same span.
	OverlapPartial

	// OverlapFull means the spans start at the same address and have the same
	// size.
	OverlapFull
)

func (o Overlap) String() string {
	switch o {
	case OverlapFull:
		return "full"
	case OverlapPartial:
		return "partial"
	default:
		return "none"
	}
}

// ClassifyOverlap compares a and b. Empty spans hold no bytes, so they only
// overlap a span identical to them.
func ClassifyOverlap(a, b Span) Overlap {
	if a == b {
		return OverlapFull
	}

	if a.Size == 0 || b.Size == 0 {
		return OverlapNone
	}

	if a.Addr < b.Addr+b.Size && b.Addr < a.Addr+a.Size {
		return OverlapPartial
	}

	return OverlapNone
}
