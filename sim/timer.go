package sim

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// SimTimer is a scheduled callback, mirroring a host one-shot or
// periodic timer. The Simulator that created it owns it exclusively;
// SimTimer carries only a back-reference for Cancel/IsActive, not
// reverse ownership.
type SimTimer struct {
	duration   SimDuration
	nextCall   SimDuration
	isPeriodic bool

	onceCallback     func()
	periodicCallback func(*SimTimer)

	tick        int
	isCancelled bool
	active      bool

	// zone is the scheduling context this timer was born in, an opaque
	// token compared by Simulator.Suspend's selector.
	zone any

	creationTrace []string

	sim *Simulator
}

// Index implements Indexable[int64] for QueueMap: timers are bucketed
// by the picosecond count of their NextCall.
func (t *SimTimer) Index() int64 { return t.nextCall.InPicoseconds() }

// Duration returns the interval this timer was configured with
// (clamped to Zero at construction if it was negative).
func (t *SimTimer) Duration() SimDuration { return t.duration }

// NextCall returns the absolute virtual time this timer is next due.
func (t *SimTimer) NextCall() SimDuration { return t.nextCall }

// IsPeriodic reports whether this is a periodic (vs one-shot) timer.
func (t *SimTimer) IsPeriodic() bool { return t.isPeriodic }

// Tick returns the number of times this timer has fired so far.
func (t *SimTimer) Tick() int { return t.tick }

// IsCancelled reports whether Cancel has been called on this timer.
func (t *SimTimer) IsCancelled() bool { return t.isCancelled }

// IsActive reports whether the simulator still tracks this timer
// (pending, in the current-delta queue, or scheduled for
// re-insertion). It becomes false the moment a one-shot timer fires or
// any timer is cancelled; it remains true across firings for a
// periodic, uncancelled timer.
func (t *SimTimer) IsActive() bool { return t.active }

// Zone returns the opaque scheduling-context token this timer was
// created under.
func (t *SimTimer) Zone() any { return t.zone }

// Cancel marks the timer cancelled and removes it from the simulator's
// pending storage. Idempotent; safe to call from within the timer's own
// callback, in which case it prevents a periodic timer's re-insertion
// once the in-flight callback returns.
func (t *SimTimer) Cancel() {
	if t.isCancelled {
		return
	}
	t.isCancelled = true
	t.active = false
	if t.sim != nil {
		t.sim.forgetTimer(t)
	}
	logrus.Debugf("picosim: timer cancelled (periodic=%t, tick=%d)", t.isPeriodic, t.tick)
}

// fire increments tick, invokes the callback, and for a periodic,
// uncancelled timer, advances NextCall and re-inserts it into pending
// storage.
func (t *SimTimer) fire() {
	t.tick++
	logrus.Debugf("picosim: firing timer (periodic=%t, tick=%d, next_call=%s)", t.isPeriodic, t.tick, t.nextCall)
	if t.isPeriodic {
		t.periodicCallback(t)
		if t.isCancelled {
			t.active = false
			return
		}
		t.nextCall = t.nextCall.Add(t.duration)
		t.sim.insertTimer(t)
		return
	}
	t.onceCallback()
	t.active = false
}

// DebugString renders duration, periodic status, and (if the owning
// Simulator was configured to include timer traces) the construction
// call stack.
func (t *SimTimer) DebugString() string {
	s := fmt.Sprintf("duration: %s, periodic: %t", t.duration, t.isPeriodic)
	if len(t.creationTrace) > 0 {
		s += fmt.Sprintf(", created at:\n%s", strings.Join(t.creationTrace, "\n"))
	}
	return s
}

// newSimTimer clamps a negative duration to Zero and computes the
// initial NextCall from the owning Simulator's current elapsed time.
func newSimTimer(sim *Simulator, d SimDuration, periodic bool, zone any) *SimTimer {
	if d.IsNegative() {
		d = Zero
	}
	t := &SimTimer{
		duration:   d,
		nextCall:   sim.elapsed.Add(d),
		isPeriodic: periodic,
		zone:       zone,
		sim:        sim,
		active:     true,
	}
	if sim.includeTimerTrace {
		t.creationTrace = captureTrace()
	}
	return t
}
