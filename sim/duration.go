package sim

import "math"

// Picosecond weights for each named unit accepted by New.
const (
	picosecondsPerDay         int64 = 24 * 60 * 60 * 1_000_000_000_000
	picosecondsPerHour        int64 = 60 * 60 * 1_000_000_000_000
	picosecondsPerMinute      int64 = 60 * 1_000_000_000_000
	picosecondsPerSecond      int64 = 1_000_000_000_000
	picosecondsPerMillisecond int64 = 1_000_000_000
	picosecondsPerMicrosecond int64 = 1_000_000
	picosecondsPerNanosecond  int64 = 1_000
)

// Zero is the additive identity: a SimDuration of zero picoseconds.
var Zero = SimDuration{}

// Interoperable is implemented by anything that can be lifted to an
// exact picosecond count: SimDuration itself and ExternDuration, the
// coarser microsecond-granular duration type the simulator interops
// with (see extern.go).
type Interoperable interface {
	Picoseconds() int64
}

// SimDuration is an immutable signed count of picoseconds. Equality,
// ordering, and hashing all depend solely on the picosecond count.
type SimDuration struct {
	ps int64
}

// DurationOption contributes a signed number of picoseconds to a
// SimDuration under construction. See Days, Hours, Minutes, Seconds,
// Milliseconds, Microseconds, Nanoseconds, and Picoseconds.
type DurationOption func(ps *int64)

// Days adds n days, each a fixed 24h — picosim does not model leap
// seconds or calendars.
func Days(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerDay }
}

// Hours adds n hours.
func Hours(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerHour }
}

// Minutes adds n minutes (always 60s).
func Minutes(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerMinute }
}

// Seconds adds n seconds.
func Seconds(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerSecond }
}

// Milliseconds adds n milliseconds.
func Milliseconds(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerMillisecond }
}

// Microseconds adds n microseconds.
func Microseconds(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerMicrosecond }
}

// Nanoseconds adds n nanoseconds.
func Nanoseconds(n int64) DurationOption {
	return func(ps *int64) { *ps += n * picosecondsPerNanosecond }
}

// Picoseconds adds n picoseconds.
func Picoseconds(n int64) DurationOption {
	return func(ps *int64) { *ps += n }
}

// New builds a SimDuration from any mix of the eight named-unit options.
// Every option is optional and defaults to zero; all may be negative.
// The result is the signed sum of every contribution.
func New(opts ...DurationOption) SimDuration {
	var ps int64
	for _, opt := range opts {
		opt(&ps)
	}
	return SimDuration{ps: ps}
}

// FromPicoseconds builds a SimDuration directly from a picosecond count.
func FromPicoseconds(ps int64) SimDuration {
	return SimDuration{ps: ps}
}

// FromExtern lifts an ExternDuration (or anything Interoperable) into a
// SimDuration by reading its picosecond count.
func FromExtern(d Interoperable) SimDuration {
	return SimDuration{ps: d.Picoseconds()}
}

// Picoseconds implements Interoperable.
func (d SimDuration) Picoseconds() int64 { return d.ps }

// Add returns d + other, lifting other to picoseconds first.
func (d SimDuration) Add(other Interoperable) SimDuration {
	return SimDuration{ps: d.ps + other.Picoseconds()}
}

// Sub returns d - other, lifting other to picoseconds first.
func (d SimDuration) Sub(other Interoperable) SimDuration {
	return SimDuration{ps: d.ps - other.Picoseconds()}
}

// Mul returns d scaled by factor. Fractional products are rounded to the
// nearest picosecond, ties breaking away from zero (math.Round).
func (d SimDuration) Mul(factor float64) SimDuration {
	return SimDuration{ps: int64(math.Round(float64(d.ps) * factor))}
}

// Div performs truncated integer division, returning ErrDivisionByZero
// when n is zero.
func (d SimDuration) Div(n int64) (SimDuration, error) {
	if n == 0 {
		return Zero, ErrDivisionByZero
	}
	return SimDuration{ps: d.ps / n}, nil
}

// Neg returns the additive inverse of d.
func (d SimDuration) Neg() SimDuration {
	return SimDuration{ps: -d.ps}
}

// Abs returns the non-negative magnitude of d.
func (d SimDuration) Abs() SimDuration {
	if d.ps < 0 {
		return SimDuration{ps: -d.ps}
	}
	return d
}

// Compare returns -1, 0, or 1 as d is less than, equal to, or greater
// than other, lifting other to picoseconds first. Total order.
func (d SimDuration) Compare(other Interoperable) int {
	op := other.Picoseconds()
	switch {
	case d.ps < op:
		return -1
	case d.ps > op:
		return 1
	default:
		return 0
	}
}

func (d SimDuration) Less(other Interoperable) bool           { return d.Compare(other) < 0 }
func (d SimDuration) LessOrEqual(other Interoperable) bool    { return d.Compare(other) <= 0 }
func (d SimDuration) Greater(other Interoperable) bool        { return d.Compare(other) > 0 }
func (d SimDuration) GreaterOrEqual(other Interoperable) bool { return d.Compare(other) >= 0 }

// Equal reports whether d and other represent the same picosecond count,
// including across the SimDuration/ExternDuration boundary.
func (d SimDuration) Equal(other Interoperable) bool { return d.ps == other.Picoseconds() }

// Hash returns a value derived solely from the picosecond count, stable
// across equal durations regardless of how they were constructed.
func (d SimDuration) Hash() uint64 { return uint64(d.ps) }

// IsNegative reports whether d represents a negative duration.
func (d SimDuration) IsNegative() bool { return d.ps < 0 }

// InDays returns the signed count of whole days, truncated toward zero.
func (d SimDuration) InDays() int64 { return d.ps / picosecondsPerDay }

// InHours returns the signed count of whole hours, truncated toward zero.
func (d SimDuration) InHours() int64 { return d.ps / picosecondsPerHour }

// InMinutes returns the signed count of whole minutes, truncated toward zero.
func (d SimDuration) InMinutes() int64 { return d.ps / picosecondsPerMinute }

// InSeconds returns the signed count of whole seconds, truncated toward zero.
func (d SimDuration) InSeconds() int64 { return d.ps / picosecondsPerSecond }

// InMilliseconds returns the signed count of whole milliseconds, truncated toward zero.
func (d SimDuration) InMilliseconds() int64 { return d.ps / picosecondsPerMillisecond }

// InMicroseconds returns the signed count of whole microseconds, truncated toward zero.
func (d SimDuration) InMicroseconds() int64 { return d.ps / picosecondsPerMicrosecond }

// InNanoseconds returns the signed count of whole nanoseconds, truncated toward zero.
func (d SimDuration) InNanoseconds() int64 { return d.ps / picosecondsPerNanosecond }

// InPicoseconds returns the exact signed picosecond count.
func (d SimDuration) InPicoseconds() int64 { return d.ps }
