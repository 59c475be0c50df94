package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deltacycle/picosim/sim"
)

// ScenarioConfig describes a canned run of the simulator, loaded from a
// YAML file: a clock period, a set of named timers to schedule when the
// scenario starts, and how far to elapse virtual time afterward.
type ScenarioConfig struct {
	ClockPeriod sim.SimDuration `yaml:"clock_period"`
	Elapse      sim.SimDuration `yaml:"elapse"`
	Timers      []TimerSpec     `yaml:"timers"`
}

// TimerSpec describes a single one-shot or periodic timer to schedule at
// the start of the scenario.
type TimerSpec struct {
	Name     string          `yaml:"name"`
	Interval sim.SimDuration `yaml:"interval"`
	Periodic bool            `yaml:"periodic"`
}

// loadScenario reads and validates a ScenarioConfig from path.
func loadScenario(path string) (*ScenarioConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario file: %w", err)
	}
	var cfg ScenarioConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *ScenarioConfig) validate() error {
	if c.Elapse.IsNegative() {
		return fmt.Errorf("scenario: elapse must be non-negative, got %s", c.Elapse)
	}
	for _, t := range c.Timers {
		if t.Name == "" {
			return fmt.Errorf("scenario: every timer needs a name")
		}
	}
	return nil
}
