// cmd/picosim-demo: a small driver that loads a YAML scenario and runs
// it through the picosim event wheel. This is example/demo tooling
// layered above the core library (see sim/doc.go) — picosim's core has
// no file format, wire protocol, or CLI of its own.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/deltacycle/picosim/sim"
)

var (
	scenarioPath string
	logLevel     string
	simName      string
)

var rootCmd = &cobra.Command{
	Use:   "picosim-demo",
	Short: "Run a canned picosim scenario from a YAML file",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a scenario and elapse the simulator through it",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(level)

		scenario, err := loadScenario(scenarioPath)
		if err != nil {
			return err
		}

		s := sim.NewSimulator(
			sim.WithClockPeriod(scenario.ClockPeriod),
			sim.WithName(simName),
		)

		s.Run(func(sched *sim.Scheduler) {
			for _, spec := range scenario.Timers {
				name := spec.Name
				if spec.Periodic {
					sched.NewPeriodicTimer(spec.Interval, func(t *sim.SimTimer) {
						logrus.Infof("[%s] periodic timer %q fired, tick=%d, elapsed=%s", sched.Name(), name, t.Tick(), sched.Simulator().Elapsed())
					})
				} else {
					sched.NewTimer(spec.Interval, func() {
						logrus.Infof("[%s] one-shot timer %q fired, elapsed=%s", sched.Name(), name, sched.Simulator().Elapsed())
					})
				}
			}
		})

		if err := s.Elapse(scenario.Elapse); err != nil {
			return fmt.Errorf("elapse: %w", err)
		}

		logrus.Infof("picosim-demo: simulation complete")
		fmt.Printf("=== %s ===\n", s.Name())
		fmt.Printf("Elapsed          : %s\n", s.Elapsed())
		fmt.Printf("Elapsed ticks    : %d\n", s.ElapsedTicks())
		fmt.Printf("Periodic timers  : %d\n", s.PeriodicTimerCount())
		fmt.Printf("One-shot timers  : %d\n", s.NonPeriodicTimerCount())
		fmt.Printf("Pending microtasks: %d\n", s.MicroTaskCount())
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "scenario.yaml", "Path to the YAML scenario file")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().StringVar(&simName, "name", "simulator", "Name assigned to the simulator")

	rootCmd.AddCommand(runCmd)
}

func main() {
	Execute()
}
