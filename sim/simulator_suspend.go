package sim

import "github.com/sirupsen/logrus"

// Suspend detaches every timer — whether sitting in the current-delta
// queue or still pending — whose zone satisfies selector, and returns
// them. This lets external machinery built on top of picosim (e.g. a
// process/thread model) temporarily pull a group of timers out of the
// wheel without cancelling them.
func (s *Simulator) Suspend(selector func(zone any) bool) []*SimTimer {
	var suspended []*SimTimer

	remaining := s.currentDelta[:0]
	for _, t := range s.currentDelta {
		if selector(t.zone) {
			suspended = append(suspended, t)
		} else {
			remaining = append(remaining, t)
		}
	}
	s.currentDelta = remaining

	suspended = append(suspended, s.pending.RemoveWhere(func(t *SimTimer) bool {
		return selector(t.zone)
	})...)

	logrus.Debugf("picosim[%s]: suspended %d timers", s.name, len(suspended))
	return suspended
}

// Resume re-inserts previously Suspended timers into pending storage.
// Every timer's NextCall must be at or after the current elapsed time;
// otherwise Resume fails with a *TimerNotInFutureError and inserts
// none of the given timers.
func (s *Simulator) Resume(timers []*SimTimer) error {
	for _, t := range timers {
		if t.nextCall.Less(s.elapsed) {
			return &TimerNotInFutureError{Elapsed: s.elapsed, NextCall: t.nextCall}
		}
	}
	for _, t := range timers {
		s.insertTimer(t)
	}
	logrus.Debugf("picosim[%s]: resumed %d timers", s.name, len(timers))
	return nil
}
