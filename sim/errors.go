package sim

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced at the Simulator boundary. None of these are
// recovered internally; all propagate to the caller of the operation
// that raised them.
var (
	// ErrInvalidArgument is returned by Elapse and ElapseBlocking when
	// given a negative duration.
	ErrInvalidArgument = errors.New("picosim: invalid argument")

	// ErrReentrant is returned by Elapse when called while another
	// Elapse is already in progress on the same Simulator.
	ErrReentrant = errors.New("picosim: elapse already in progress")

	// ErrTimeout is returned by FlushTimers when it exceeds its virtual
	// time budget without draining all pending timers, suggesting a
	// periodic-timer livelock.
	ErrTimeout = errors.New("picosim: flush_timers exceeded its timeout")

	// ErrDivisionByZero is returned by SimDuration.Div when dividing by
	// zero.
	ErrDivisionByZero = errors.New("picosim: division by zero")
)

// TimerNotInFutureError is returned by Simulator.Resume when asked to
// reinsert a timer whose NextCall has already passed.
type TimerNotInFutureError struct {
	Elapsed  SimDuration
	NextCall SimDuration
}

func (e *TimerNotInFutureError) Error() string {
	return fmt.Sprintf("picosim: timer next_call %s is not >= elapsed %s", e.NextCall, e.Elapsed)
}
