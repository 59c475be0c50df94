package sim

// Option configures a Simulator at construction. All options are
// optional; see NewSimulator for defaults.
type Option func(*Simulator)

// WithClockPeriod sets the Simulator's clock period, used to derive
// ElapsedTicks. Defaults to 1 picosecond.
func WithClockPeriod(d SimDuration) Option {
	return func(s *Simulator) { s.clockPeriod = d }
}

// WithName sets the Simulator's name, retrievable from its Scheduler.
// Defaults to "simulator".
func WithName(name string) Option {
	return func(s *Simulator) { s.name = name }
}

// WithTimerTrace controls whether SimTimer construction captures a call
// stack for DebugString. Defaults to true.
func WithTimerTrace(enabled bool) Option {
	return func(s *Simulator) { s.includeTimerTrace = enabled }
}

// flushConfig holds FlushTimers' resolved options.
type flushConfig struct {
	timeout       SimDuration
	flushPeriodic bool
}

func defaultFlushConfig() flushConfig {
	return flushConfig{
		timeout:       New(Hours(1)),
		flushPeriodic: true,
	}
}

// FlushOption configures a single FlushTimers call.
type FlushOption func(*flushConfig)

// WithTimeout overrides FlushTimers' default 1-hour virtual-time budget.
func WithTimeout(d SimDuration) FlushOption {
	return func(c *flushConfig) { c.timeout = d }
}

// WithFlushPeriodic controls whether FlushTimers keeps draining while any
// periodic timer remains pending (true, the default) or keeps draining
// only while a one-shot timer is pending or some periodic timer's
// NextCall is at or before the current elapsed time (false).
func WithFlushPeriodic(flush bool) FlushOption {
	return func(c *flushConfig) { c.flushPeriodic = flush }
}
