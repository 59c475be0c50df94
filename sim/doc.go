// Package sim provides a deterministic delta-cycle discrete-event
// simulator for modelling digital hardware systems at picosecond
// resolution.
//
// # Reading Guide
//
// The package is built leaves-first; read it in this order:
//   - duration.go, duration_format.go, extern.go: SimDuration, the
//     picosecond-granular duration algebra, and its interop with the
//     coarser ExternDuration.
//   - indexable.go, queuemap.go, queuemap_iter.go: QueueMap, the ordered
//     map of FIFO buckets that backs the pending-timer store.
//   - timer.go, trace.go: SimTimer, the scheduled-callback record and its
//     one-shot/periodic firing protocol.
//   - scheduler.go: Scheduler, the explicit stand-in for the host
//     language's ambient "zone" used to intercept timer creation and
//     micro-task scheduling.
//   - simulator.go, simulator_suspend.go, metrics.go: Simulator, the
//     event wheel that drives everything above.
//
// # Architecture
//
// Hosted callback code never touches real time. It receives a *Scheduler
// and uses it to create one-shot/periodic timers and schedule
// micro-tasks; Simulator.Elapse then drives a virtual clock forward,
// firing timers and draining micro-tasks in the exact delta-cycle order
// documented on Simulator.
package sim
