package sim

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// String renders d in the canonical form H:MM:SS.mmmmmm, where the hour
// is unpadded and the minute/second/microsecond fields are zero-padded
// to 2/2/6 digits. If the picosecond remainder (picoseconds mod
// 1,000,000) is non-zero, a second dot-separated six-digit field is
// appended. For example, 1ps + 1ns + 1us formats as
// "0:00:00.000001.001001".
func (d SimDuration) String() string {
	neg := d.ps < 0
	abs := d.ps
	if neg {
		abs = -abs
	}

	totalMicros := abs / picosecondsPerMicrosecond
	psRemainder := abs % picosecondsPerMicrosecond

	hours := totalMicros / (60 * 60 * 1_000_000)
	rem := totalMicros % (60 * 60 * 1_000_000)
	minutes := rem / (60 * 1_000_000)
	rem = rem % (60 * 1_000_000)
	seconds := rem / 1_000_000
	micros := rem % 1_000_000

	s := fmt.Sprintf("%d:%02d:%02d.%06d", hours, minutes, seconds, micros)
	if neg {
		s = "-" + s
	}
	if psRemainder != 0 {
		s += fmt.Sprintf(".%06d", psRemainder)
	}
	return s
}

// MarshalYAML renders d the same way scenario files in cmd/picosim-demo
// accept durations: a Go-duration-style suffix string understood by
// parseScenarioDuration (e.g. "500us", "2ms", "1500ns").
func (d SimDuration) MarshalYAML() (interface{}, error) {
	return formatScenarioDuration(d), nil
}

// UnmarshalYAML parses a suffix-based duration string, as accepted by
// parseScenarioDuration, into d.
func (d *SimDuration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := parseScenarioDuration(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
