package consume

import (
	"math/rand"
	"testing"
)

func TestClassifyOverlap(t *testing.T) {
	var (
		buf   [16]byte
		other [16]byte
		words [8]uint32
	)

	tests := []struct {
		name string
		a, b Span
		want Overlap
	}{
		{"same slice", SpanOf(buf[2:6]), SpanOf(buf[2:6]), OverlapFull},
		{"prefix", SpanOf(buf[2:6]), SpanOf(buf[2:4]), OverlapPartial},
		{"interior", SpanOf(buf[0:16]), SpanOf(buf[5:7]), OverlapPartial},
		{"straddle", SpanOf(buf[0:8]), SpanOf(buf[4:12]), OverlapPartial},
		{"adjacent", SpanOf(buf[0:4]), SpanOf(buf[4:8]), OverlapNone},
		{"other array", SpanOf(buf[:]), SpanOf(other[:]), OverlapNone},
		{"empty inside", SpanOf(buf[0:8]), SpanOf(buf[3:3]), OverlapNone},
		{"both empty", SpanOf(buf[3:3]), SpanOf(buf[3:3]), OverlapFull},
		{"nil", SpanOf([]byte(nil)), SpanOf(buf[:]), OverlapNone},
		{"wide items", SpanOf(words[0:4]), SpanOf(words[3:5]), OverlapPartial},
		{"wide adjacent", SpanOf(words[0:4]), SpanOf(words[4:8]), OverlapNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("ClassifyOverlap() = %s, want %s", got, tt.want)
			}
			if got := ClassifyOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("ClassifyOverlap() reversed = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyOverlapRandom(t *testing.T) {
	var buf [64]byte
	rng := rand.New(rand.NewSource(1))

	bounds := func() (int, int) {
		lo := rng.Intn(64)
		return lo, lo + rng.Intn(65-lo)
	}

	for range 10000 {
		alo, ahi := bounds()
		blo, bhi := bounds()

		want := OverlapNone
		switch {
		case alo == blo && ahi == bhi:
			want = OverlapFull
		case alo == ahi || blo == bhi:
		case alo < bhi && blo < ahi:
			want = OverlapPartial
		}

		got := ClassifyOverlap(SpanOf(buf[alo:ahi]), SpanOf(buf[blo:bhi]))
		if got != want {
			t.Fatalf("[%d:%d] vs [%d:%d] = %s, want %s", alo, ahi, blo, bhi, got, want)
		}
	}
}
