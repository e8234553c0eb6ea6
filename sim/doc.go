// Package sim provides the discrete-event production-line simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - machine.go: Machine state machine (Operational → Failed/UnderMaintenance → Operational)
//   - event.go: Event variants that drive the simulation (OperationComplete, FailureOccurred, ...)
//   - line.go: The event loop, horizon cutoff, and aggregate counters
//
// # Architecture
//
// The engine is a pure event-stepping loop: machines appear concurrent
// because their events interleave in time order, not because anything runs
// in parallel. The event queue (event_heap.go) orders events by scheduled
// time with an insertion sequence number as tie-break, so a fixed seed
// replays an identical trace. All randomness flows through PartitionedRNG
// (rng.go), which derives one isolated stream per machine from the master
// seed.
//
// Sub-packages hold pure-data and collaborator-facing pieces:
//   - sim/scenario/: YAML scenario loading, validation, and defaults
//   - sim/trace/: event trace records, in-memory collector, CSV and SQLite sinks
//   - sim/report/: JSON report assembly and terminal table rendering
//
// # Collaborator Surfaces
//
// The optimization engine calls Evaluator.Evaluate (evaluate.go) with
// candidate time vectors; the predictive engine reads Machine.History and
// static parameters; reporting reads Statistics, TrendAnalysis, and
// Metrics. None of these surfaces can mutate engine state.
package sim
