package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator is the delta-cycle event wheel: it owns virtual time, the
// micro-task FIFO, and the pending-timer store, and drives hosted
// callback code through a Scheduler instead of real asynchrony
// primitives.
//
// At rest (between calls into the Simulator) the current-delta queue is
// always empty.
type Simulator struct {
	elapsed    SimDuration
	elapsingTo *SimDuration

	microTasks []func()
	pending    *QueueMap[int64, *SimTimer]

	// currentDelta is the FIFO of timers firing at the instant
	// currently being processed by fireTimersWhile. Empty whenever no
	// Simulator operation is in progress.
	currentDelta []*SimTimer

	clockPeriod       SimDuration
	includeTimerTrace bool
	name              string

	scheduler *Scheduler
}

// NewSimulator constructs a Simulator with the given options applied
// over these defaults: 1-picosecond clock period, timer traces enabled,
// name "simulator".
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		clockPeriod:       FromPicoseconds(1),
		includeTimerTrace: true,
		name:              "simulator",
		pending:           NewQueueMap[int64, *SimTimer](),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.scheduler = &Scheduler{sim: s, zone: s}
	return s
}

// Run enters the Simulator's forked scheduling context and invokes
// callback with it. Any timer creation or micro-task scheduling done
// transitively by callback is captured by this Simulator. Run does not
// itself advance time — follow it with Elapse.
func (s *Simulator) Run(callback func(*Scheduler)) {
	callback(s.scheduler)
}

// RunT is Run's generic form, for callbacks that produce a result. Go
// does not support type parameters on methods, so this is a free
// function rather than a method.
func RunT[T any](s *Simulator, callback func(*Scheduler) T) T {
	return callback(s.scheduler)
}

// insertTimer adds t to pending storage. It is used both for a timer's
// initial insertion and for a periodic timer's re-insertion after
// firing — including when the new NextCall equals the delta currently
// being drained, in which case it is picked up by the *next*
// RemoveFirstQueue call rather than the one in progress.
func (s *Simulator) insertTimer(t *SimTimer) {
	s.pending.Add(t)
}

// forgetTimer removes t from wherever the simulator is currently
// tracking it: pending storage, or the in-flight current-delta queue
// (a timer can be cancelled by another timer's callback before its own
// turn in the same delta).
func (s *Simulator) forgetTimer(t *SimTimer) {
	s.pending.Remove(t)
	for i, v := range s.currentDelta {
		if v == t {
			s.currentDelta = append(s.currentDelta[:i], s.currentDelta[i+1:]...)
			return
		}
	}
}

// FlushMicroTasks repeatedly pops and executes the head of the
// micro-task FIFO until empty. Micro-tasks scheduled by micro-tasks run
// in turn, forming a transitive drain. Does not run timers.
func (s *Simulator) FlushMicroTasks() {
	for len(s.microTasks) > 0 {
		task := s.microTasks[0]
		s.microTasks = s.microTasks[1:]
		task()
	}
}

// fireTimersWhile is the event wheel: drain micro-tasks, then while the
// next pending delta satisfies predicate, advance elapsed to it, fire
// every timer due at that delta (FIFO, as a batch, before any
// micro-task they schedule runs), and drain micro-tasks again before
// picking the next delta.
func (s *Simulator) fireTimersWhile(predicate func(SimDuration) bool) {
	for {
		s.FlushMicroTasks()
		if s.pending.IsEmpty() {
			return
		}
		deltaPs, _ := s.pending.FirstKey()
		deltaTime := FromPicoseconds(deltaPs)
		if !predicate(deltaTime) {
			return
		}
		if s.elapsed.Less(deltaTime) {
			s.elapsed = deltaTime
		}

		bucket, _ := s.pending.RemoveFirstQueue()
		s.currentDelta = bucket
		for len(s.currentDelta) > 0 {
			t := s.currentDelta[0]
			s.currentDelta = s.currentDelta[1:]
			t.fire()
		}

		s.FlushMicroTasks()
	}
}

// Elapse simulates the asynchronous passage of d: it drains micro-tasks,
// fires every timer whose NextCall falls at or before elapsed+d (in
// ascending-delta, FIFO-within-delta order), and advances elapsed to at
// least elapsed+d. Fails with ErrInvalidArgument if d is negative, or
// ErrReentrant if another Elapse is already in progress on this
// Simulator.
func (s *Simulator) Elapse(d Interoperable) error {
	duration := FromExtern(d)
	if duration.IsNegative() {
		return ErrInvalidArgument
	}
	if s.elapsingTo != nil {
		return ErrReentrant
	}

	target := s.elapsed.Add(duration)
	s.elapsingTo = &target
	logrus.Debugf("picosim[%s]: elapse from %s toward %s", s.name, s.elapsed, target)

	s.fireTimersWhile(func(dt SimDuration) bool {
		return dt.LessOrEqual(*s.elapsingTo)
	})

	if s.elapsed.Less(*s.elapsingTo) {
		s.elapsed = *s.elapsingTo
	}
	logrus.Debugf("picosim[%s]: elapse reached %s", s.name, s.elapsed)
	s.elapsingTo = nil
	return nil
}

// ElapseBlocking simulates synchronous passage of d, as if hosted code
// had blocked on a computation: no timers or micro-tasks run, elapsed
// simply advances by d. If called from within an in-progress Elapse and
// the new elapsed exceeds that Elapse's target, the enclosing Elapse's
// target is extended to match, so timers due before the new elapsed
// still fire before that Elapse returns. Fails with ErrInvalidArgument
// if d is negative.
func (s *Simulator) ElapseBlocking(d Interoperable) error {
	duration := FromExtern(d)
	if duration.IsNegative() {
		return ErrInvalidArgument
	}
	s.elapsed = s.elapsed.Add(duration)
	if s.elapsingTo != nil && s.elapsed.Greater(*s.elapsingTo) {
		*s.elapsingTo = s.elapsed
	}
	return nil
}

// hasOneShotOrDuePeriodic reports whether any pending timer is one-shot,
// or any pending periodic timer's NextCall is at or before elapsed —
// i.e. some periodic timer has not yet fired against the current
// elapsed. Used by FlushTimers' non-flushing predicate.
func (s *Simulator) hasOneShotOrDuePeriodic() bool {
	for t := range s.pending.All() {
		if !t.isPeriodic {
			return true
		}
		if t.nextCall.LessOrEqual(s.elapsed) {
			return true
		}
	}
	return false
}

// FlushTimers drains timers against a virtual-time budget (default 1h)
// rather than a target duration: it fires timers until either no
// matching timer remains pending or the next due delta exceeds
// elapsed+timeout, in which case it fails with ErrTimeout — a guard
// against periodic-timer livelock. With WithFlushPeriodic(false), it
// stops once no one-shot timer is pending and every pending periodic
// timer's NextCall lies after the current elapsed time, rather than
// waiting for pending storage to empty (which periodic timers never
// allow).
func (s *Simulator) FlushTimers(opts ...FlushOption) error {
	cfg := defaultFlushConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	absoluteTimeout := s.elapsed.Add(cfg.timeout)
	timedOut := false

	s.fireTimersWhile(func(dt SimDuration) bool {
		if dt.Greater(absoluteTimeout) {
			timedOut = true
			return false
		}
		if cfg.flushPeriodic {
			return true
		}
		return s.hasOneShotOrDuePeriodic()
	})

	if timedOut {
		logrus.Warnf("picosim[%s]: flush_timers exceeded timeout %s", s.name, cfg.timeout)
		return fmt.Errorf("%w: %s", ErrTimeout, cfg.timeout)
	}
	return nil
}
