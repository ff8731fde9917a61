package consume

import (
	"fmt"
	"strings"
)

// Tracer is a function that is used to log or report evaluation traces. This
// function signature matches log.Println and log.Print, so those can be
// passed directly.
type Tracer func(v ...any)

// Stage identifies the point of an evaluation a trace line was emitted at.
type Stage int

const (
	StageTry Stage = iota
	StageGot
	StageDrop
	StageFail
	StageErr
)

func (s Stage) String() string {
	switch s {
	case StageTry:
		return "TRY"
	case StageGot:
		return "GOT"
	case StageDrop:
		return "DROP"
	case StageFail:
		return "FAIL"
	default:
		return "ERR"
	}
}

// trace reports an evaluation stage to the logger and the tracer. args are
// key/value pairs.
func (s *Source[I]) trace(stage Stage, name string, args ...any) {
	if s.log.IsTrace() {
		s.log.Trace(stage.String()+" "+name, args...)
	}

	if s.tracer == nil {
		return
	}

	out := &strings.Builder{}
	fmt.Fprint(out, stage, " ", name, "(")
	for i := 0; i+1 < len(args); i += 2 {
		if i > 0 {
			fmt.Fprint(out, ", ")
		}
		fmt.Fprintf(out, "%v=%v", args[i], args[i+1])
	}
	fmt.Fprint(out, ")")

	s.tracer(out.String())
}
