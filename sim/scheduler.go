package sim

// Scheduler is the explicit, dependency-injected stand-in for a host
// language's ambient "zone" mechanism: since Go has no dynamic scoping,
// hosted callback code receives a *Scheduler and must route every
// timer/micro-task operation through it instead of reaching for an
// implicit context.
//
// A Scheduler is forked 1:1 from the Simulator that owns it (see
// Simulator.Run) and publishes the forked-context values hosted code
// needs: ClockPeriod, Simulator, and Name. Fork creates an additional
// Scheduler sharing the same Simulator but tagged with a caller-supplied
// zone token, for external machinery (e.g. a process/thread model built
// on top of picosim) that wants to Suspend/Resume a subset of timers.
type Scheduler struct {
	sim  *Simulator
	zone any
}

// ClockPeriod returns the Simulator's configured clock period.
func (s *Scheduler) ClockPeriod() SimDuration { return s.sim.clockPeriod }

// Simulator returns the Simulator this Scheduler was forked from.
func (s *Scheduler) Simulator() *Simulator { return s.sim }

// Name returns the Simulator's configured name.
func (s *Scheduler) Name() string { return s.sim.name }

// Zone returns this Scheduler's opaque scheduling-context token. Timers
// created through this Scheduler are tagged with it, and
// Simulator.Suspend's selector is evaluated against it.
func (s *Scheduler) Zone() any { return s.zone }

// Fork returns a new Scheduler sharing this one's Simulator but tagged
// with zone, letting external machinery built above picosim group
// timers for Suspend/Resume.
func (s *Scheduler) Fork(zone any) *Scheduler {
	return &Scheduler{sim: s.sim, zone: zone}
}

// NewTimer creates a one-shot timer that fires cb once after d has
// elapsed, and inserts it into the simulator's pending storage.
func (s *Scheduler) NewTimer(d Interoperable, cb func()) *SimTimer {
	t := newSimTimer(s.sim, FromExtern(d), false, s.zone)
	t.onceCallback = cb
	s.sim.insertTimer(t)
	return t
}

// NewPeriodicTimer creates a timer that fires cb every d, passing itself
// to each invocation (so the callback can inspect Tick or call Cancel).
func (s *Scheduler) NewPeriodicTimer(d Interoperable, cb func(*SimTimer)) *SimTimer {
	t := newSimTimer(s.sim, FromExtern(d), true, s.zone)
	t.periodicCallback = cb
	s.sim.insertTimer(t)
	return t
}

// ScheduleMicrotask appends cb to the micro-task FIFO. Micro-tasks run
// in scheduled order, drained before advancing time and between timer
// batches.
func (s *Scheduler) ScheduleMicrotask(cb func()) {
	s.sim.microTasks = append(s.sim.microTasks, cb)
}
