package sim

import (
	"fmt"
	"runtime"
)

// maxTraceDepth bounds how many frames captureTrace walks; construction
// sites are rarely more than a handful of frames deep and we do not want
// a pathological recursive caller to make every timer creation expensive.
const maxTraceDepth = 32

// captureTrace records the call stack at a SimTimer's construction, for
// DebugString. It is only invoked when a Simulator is configured with
// WithTimerTrace(true), the default.
func captureTrace() []string {
	pcs := make([]uintptr, maxTraceDepth)
	// skip captureTrace, its caller (newSimTimer), and the Scheduler
	// method that invoked it, landing on the hosted code's own frame.
	n := runtime.Callers(4, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var out []string
	for {
		frame, more := frames.Next()
		out = append(out, fmt.Sprintf("%s\n\t%s:%d", frame.Function, frame.File, frame.Line))
		if !more {
			break
		}
	}
	return out
}
