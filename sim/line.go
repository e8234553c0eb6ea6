package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/linesim/linesim/sim/trace"
)

// TraceSink receives a record for every dispatched event.
// Implementations live in sim/trace (in-memory collector, CSV, SQLite).
type TraceSink interface {
	Append(r trace.Record)
}

// ProductionLine owns a set of machines and the shared event queue, and
// drives the simulation loop. Machines never touch the queue themselves;
// the line is the only dispatcher, so a single-threaded loop gives each
// handler run-to-completion semantics.
//
// A ProductionLine is single-use: Run once, read results, and call Reset
// before running again. Independent lines share no state, so parallel
// evaluations simply build one line each.
type ProductionLine struct {
	machines []*Machine // insertion order preserved for deterministic iteration and tie-break
	byName   map[string]*Machine

	queue *EventHeap
	rng   *PartitionedRNG

	duration    float64
	seed        int64
	currentTime float64
	totalCycles int
	counts      EventCounts

	events *trace.Trace
	sinks  []TraceSink
}

// EventCounts tallies dispatched events by kind.
type EventCounts struct {
	CompletedCycles      int `json:"completed_cycles"`
	Failures             int `json:"failures"`
	RepairsCompleted     int `json:"repairs_completed"`
	MaintenanceDue       int `json:"maintenance_due"`
	MaintenanceCompleted int `json:"maintenance_completed"`
}

// NewProductionLine constructs a line from already-validated configuration.
// Machine order is preserved as given. Construction re-validates every
// parameter and rejects duplicate machine names.
func NewProductionLine(simCfg SimulationConfig, machineCfgs []MachineConfig) (*ProductionLine, error) {
	if err := simCfg.Validate(); err != nil {
		return nil, err
	}
	if len(machineCfgs) == 0 {
		return nil, &ConfigError{Field: "machines", Reason: "at least one machine is required"}
	}
	l := &ProductionLine{
		machines: make([]*Machine, 0, len(machineCfgs)),
		byName:   make(map[string]*Machine, len(machineCfgs)),
		queue:    NewEventHeap(),
		rng:      NewPartitionedRNG(simCfg.Seed),
		duration: simCfg.Duration,
		seed:     simCfg.Seed,
		events:   trace.New(),
	}
	for _, cfg := range machineCfgs {
		m, err := NewMachine(cfg)
		if err != nil {
			return nil, err
		}
		if _, dup := l.byName[m.Name()]; dup {
			return nil, &ConfigError{Machine: m.Name(), Field: "name", Reason: "duplicate machine name"}
		}
		l.machines = append(l.machines, m)
		l.byName[m.Name()] = m
	}
	return l, nil
}

// AddSink attaches an additional trace sink (CSV writer, SQLite recorder).
// The built-in in-memory trace is always populated.
func (l *ProductionLine) AddSink(s TraceSink) {
	l.sinks = append(l.sinks, s)
}

// Run executes the simulation to the configured horizon. Each machine is
// seeded with one cycle at t=0; the loop then pops the earliest event,
// advances the clock, dispatches to the owning machine, and schedules any
// follow-ups. An individual machine's failure or maintenance never halts
// the line; the loop ends only on queue exhaustion or horizon cutoff.
//
// A returned error means a dispatch hit a machine in an incompatible state,
// which is an engine defect, not a modeled outcome.
func (l *ProductionLine) Run() error {
	logrus.Infof("starting production run: %d machines, horizon %.1fh, seed %d",
		len(l.machines), l.duration, l.seed)

	for _, m := range l.machines {
		ev, err := m.StartCycle(0, l.rng.ForMachine(m.Name()))
		if err != nil {
			return err
		}
		l.queue.Schedule(ev)
	}

	for {
		ev, ok := l.queue.PopEarliest()
		if !ok {
			break
		}
		// Horizon cutoff: the event is discarded, and heap ordering
		// guarantees every remaining event is at least as late.
		if ev.At() > l.duration {
			break
		}
		if ev.At() < l.currentTime {
			panic(fmt.Sprintf("clock went backwards: %.6f < %.6f", ev.At(), l.currentTime))
		}
		l.currentTime = ev.At()
		l.record(ev)
		if err := ev.Execute(l); err != nil {
			return fmt.Errorf("dispatching %s for machine %s: %w", ev.Kind(), ev.MachineName(), err)
		}
	}

	for _, m := range l.machines {
		m.closeOutage(l.duration)
	}
	logrus.Infof("run complete: %d cycles, %d failures, %d maintenance windows",
		l.totalCycles, l.counts.Failures, l.counts.MaintenanceDue)
	return nil
}

// Reset returns the line and every machine to the pre-run state. The RNG
// is rebuilt from the same seed, so a reset line replays the identical
// event trace.
func (l *ProductionLine) Reset() {
	l.queue = NewEventHeap()
	l.rng = NewPartitionedRNG(l.seed)
	l.currentTime = 0
	l.totalCycles = 0
	l.counts = EventCounts{}
	l.events.Reset()
	for _, m := range l.machines {
		m.Reset()
	}
}

func (l *ProductionLine) record(ev Event) {
	r := trace.Record{
		Seq:     ev.Seq(),
		Time:    ev.At(),
		Kind:    string(ev.Kind()),
		Machine: ev.MachineName(),
	}
	if op, ok := ev.(*OperationCompleteEvent); ok {
		r.Duration = op.Duration
	}
	l.events.Append(r)
	for _, s := range l.sinks {
		s.Append(r)
	}
}

func (l *ProductionLine) scheduleAll(events []Event) {
	for _, ev := range events {
		l.queue.Schedule(ev)
	}
}

// Event handlers. Each dispatches to the owning machine and updates
// aggregate counters; totalCycles increments only on OperationComplete.

func (l *ProductionLine) handleOperationComplete(e *OperationCompleteEvent) error {
	m := l.byName[e.MachineName()]
	follow, err := m.CompleteCycle(e, l.rng.ForMachine(m.Name()))
	if err != nil {
		return err
	}
	l.totalCycles++
	l.counts.CompletedCycles++
	l.scheduleAll(follow)
	return nil
}

func (l *ProductionLine) handleFailureOccurred(e *FailureOccurredEvent) error {
	// Notification only: the transition happened inside CompleteCycle.
	l.counts.Failures++
	return nil
}

func (l *ProductionLine) handleRepairComplete(e *RepairCompleteEvent) error {
	m := l.byName[e.MachineName()]
	follow, err := m.FinishRepair(e, l.rng.ForMachine(m.Name()))
	if err != nil {
		return err
	}
	l.counts.RepairsCompleted++
	l.scheduleAll(follow)
	return nil
}

func (l *ProductionLine) handleMaintenanceDue(e *MaintenanceDueEvent) error {
	l.counts.MaintenanceDue++
	return nil
}

func (l *ProductionLine) handleMaintenanceComplete(e *MaintenanceCompleteEvent) error {
	m := l.byName[e.MachineName()]
	follow, err := m.FinishMaintenance(e, l.rng.ForMachine(m.Name()))
	if err != nil {
		return err
	}
	l.counts.MaintenanceCompleted++
	l.scheduleAll(follow)
	return nil
}

// Read accessors.

// Machines returns the line's machines in insertion order.
func (l *ProductionLine) Machines() []*Machine { return l.machines }

// Machine returns the named machine, or nil.
func (l *ProductionLine) Machine(name string) *Machine { return l.byName[name] }

// CurrentTime returns the timestamp of the most recently dispatched event.
func (l *ProductionLine) CurrentTime() float64 { return l.currentTime }

// TotalCycles returns the number of completed cycles dispatched so far.
func (l *ProductionLine) TotalCycles() int { return l.totalCycles }

// Duration returns the configured simulation horizon.
func (l *ProductionLine) Duration() float64 { return l.duration }

// Seed returns the master seed for this line.
func (l *ProductionLine) Seed() int64 { return l.seed }

// Trace returns the in-memory event trace for this run.
func (l *ProductionLine) Trace() *trace.Trace { return l.events }
