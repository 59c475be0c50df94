package sim

// Elapsed returns the current virtual time.
func (s *Simulator) Elapsed() SimDuration { return s.elapsed }

// ElapsedTicks returns elapsed divided by the configured clock period.
func (s *Simulator) ElapsedTicks() int64 {
	return s.elapsed.InPicoseconds() / s.clockPeriod.InPicoseconds()
}

// Name returns the Simulator's configured name.
func (s *Simulator) Name() string { return s.name }

// ClockPeriod returns the Simulator's configured clock period.
func (s *Simulator) ClockPeriod() SimDuration { return s.clockPeriod }

// PendingTimers snapshots every timer the Simulator currently tracks:
// the current-delta queue (if any operation is mid-flight — always
// empty at rest) followed by every pending timer in QueueMap iteration
// order.
func (s *Simulator) PendingTimers() []*SimTimer {
	out := make([]*SimTimer, 0, len(s.currentDelta)+s.pending.Len())
	out = append(out, s.currentDelta...)
	for t := range s.pending.All() {
		out = append(out, t)
	}
	return out
}

// PendingTimersDebugString renders DebugString for every timer
// PendingTimers would return, in the same order.
func (s *Simulator) PendingTimersDebugString() []string {
	timers := s.PendingTimers()
	out := make([]string, len(timers))
	for i, t := range timers {
		out[i] = t.DebugString()
	}
	return out
}

// PeriodicTimerCount returns the number of periodic timers across the
// current-delta queue and pending storage.
func (s *Simulator) PeriodicTimerCount() int {
	n := 0
	for _, t := range s.PendingTimers() {
		if t.isPeriodic {
			n++
		}
	}
	return n
}

// NonPeriodicTimerCount returns the number of one-shot timers across the
// current-delta queue and pending storage.
func (s *Simulator) NonPeriodicTimerCount() int {
	n := 0
	for _, t := range s.PendingTimers() {
		if !t.isPeriodic {
			n++
		}
	}
	return n
}

// MicroTaskCount returns the number of micro-tasks currently queued.
func (s *Simulator) MicroTaskCount() int { return len(s.microTasks) }
