package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deltacycle/picosim/sim"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadScenario_ValidYAML(t *testing.T) {
	yaml := `
clock_period: 1ns
elapse: 5s
timers:
  - name: heartbeat
    interval: 1s
    periodic: true
  - name: startup
    interval: 100ms
    periodic: false
`
	path := writeTempYAML(t, yaml)
	cfg, err := loadScenario(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.ClockPeriod.Equal(sim.New(sim.Nanoseconds(1))) {
		t.Errorf("ClockPeriod: got %s, want 1ns", cfg.ClockPeriod)
	}
	if !cfg.Elapse.Equal(sim.New(sim.Seconds(5))) {
		t.Errorf("Elapse: got %s, want 5s", cfg.Elapse)
	}
	if len(cfg.Timers) != 2 {
		t.Fatalf("Timers: got %d entries, want 2", len(cfg.Timers))
	}
	if cfg.Timers[0].Name != "heartbeat" || !cfg.Timers[0].Periodic {
		t.Errorf("Timers[0]: got %+v, want periodic heartbeat", cfg.Timers[0])
	}
	if cfg.Timers[1].Name != "startup" || cfg.Timers[1].Periodic {
		t.Errorf("Timers[1]: got %+v, want non-periodic startup", cfg.Timers[1])
	}
}

func TestLoadScenario_NegativeElapse_FailsValidation(t *testing.T) {
	yaml := `
clock_period: 1ns
elapse: -5s
`
	path := writeTempYAML(t, yaml)
	if _, err := loadScenario(path); err == nil {
		t.Errorf("expected validation error for negative elapse")
	}
}

func TestLoadScenario_TimerMissingName_FailsValidation(t *testing.T) {
	yaml := `
clock_period: 1ns
elapse: 1s
timers:
  - interval: 1s
    periodic: false
`
	path := writeTempYAML(t, yaml)
	if _, err := loadScenario(path); err == nil {
		t.Errorf("expected validation error for unnamed timer")
	}
}

func TestLoadScenario_MissingFile_FailsWithWrappedError(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing scenario file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected the error to wrap os.ErrNotExist, got %v", err)
	}
}
