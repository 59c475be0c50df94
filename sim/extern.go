package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// ExternDuration stands in for the host's native duration and timer
// abstractions, which picosim interoperates with but does not itself
// implement. It is a plain microsecond count.
type ExternDuration int64

// Picoseconds implements Interoperable: one extern microsecond lifts to
// 1,000,000 picoseconds.
func (e ExternDuration) Picoseconds() int64 {
	return int64(e) * picosecondsPerMicrosecond
}

// suffixWeights maps the unit suffixes accepted by parseScenarioDuration
// to their picosecond weight. "s" is listed last: every other suffix
// ("ms", "us", "ns", "ps") also ends in "s", so the more specific ones
// must be tried first.
var suffixWeights = []struct {
	suffix string
	weight int64
}{
	{"d", picosecondsPerDay},
	{"h", picosecondsPerHour},
	{"m", picosecondsPerMinute},
	{"ms", picosecondsPerMillisecond},
	{"us", picosecondsPerMicrosecond},
	{"ns", picosecondsPerNanosecond},
	{"ps", 1},
	{"s", picosecondsPerSecond},
}

// parseScenarioDuration parses a Go-duration-flavored literal like
// "500us", "2ms", "-1500ns", or "1.5s" into a SimDuration. It backs both
// SimDuration's YAML (de)serialization and the cmd/picosim-demo scenario
// loader.
func parseScenarioDuration(raw string) (SimDuration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Zero, fmt.Errorf("picosim: empty duration literal")
	}
	for _, sw := range suffixWeights {
		if !strings.HasSuffix(raw, sw.suffix) {
			continue
		}
		numeric := strings.TrimSuffix(raw, sw.suffix)
		value, err := strconv.ParseFloat(numeric, 64)
		if err != nil {
			return Zero, fmt.Errorf("picosim: invalid duration literal %q: %w", raw, err)
		}
		return SimDuration{ps: int64(value * float64(sw.weight))}, nil
	}
	return Zero, fmt.Errorf("picosim: unrecognized duration unit in %q", raw)
}

// formatScenarioDuration renders d back as a suffix literal, preferring
// the coarsest unit that represents d exactly.
func formatScenarioDuration(d SimDuration) string {
	ps := d.ps
	switch {
	case ps == 0:
		return "0s"
	case ps%picosecondsPerDay == 0:
		return fmt.Sprintf("%dd", ps/picosecondsPerDay)
	case ps%picosecondsPerHour == 0:
		return fmt.Sprintf("%dh", ps/picosecondsPerHour)
	case ps%picosecondsPerMinute == 0:
		return fmt.Sprintf("%dm", ps/picosecondsPerMinute)
	case ps%picosecondsPerSecond == 0:
		return fmt.Sprintf("%ds", ps/picosecondsPerSecond)
	case ps%picosecondsPerMillisecond == 0:
		return fmt.Sprintf("%dms", ps/picosecondsPerMillisecond)
	case ps%picosecondsPerMicrosecond == 0:
		return fmt.Sprintf("%dus", ps/picosecondsPerMicrosecond)
	case ps%picosecondsPerNanosecond == 0:
		return fmt.Sprintf("%dns", ps/picosecondsPerNanosecond)
	default:
		return fmt.Sprintf("%dps", ps)
	}
}
