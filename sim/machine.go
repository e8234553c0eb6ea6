package sim

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// MachineStatus is the lifecycle state of a machine. A machine is in
// exactly one status at any simulated instant.
type MachineStatus string

const (
	StatusOperational      MachineStatus = "OPERATIONAL"
	StatusFailed           MachineStatus = "FAILED"
	StatusUnderMaintenance MachineStatus = "UNDER_MAINTENANCE"
)

// Valid returns true if the status is one of the three defined values.
func (s MachineStatus) Valid() bool {
	switch s {
	case StatusOperational, StatusFailed, StatusUnderMaintenance:
		return true
	}
	return false
}

// Machine models a single production machine subject to stochastic
// operation times, random failures, and scheduled maintenance.
//
// All mutation happens inside the event dispatch methods (StartCycle,
// CompleteCycle, FinishRepair, FinishMaintenance); every other method is
// read-only. Each machine owns its state exclusively — machines never
// observe each other.
type Machine struct {
	cfg MachineConfig

	status                   MachineStatus
	cumulativeOperatingTime  float64
	opHoursAtLastMaintenance float64 // watermark; time since last maintenance = cumulative - watermark
	cycleCount               int
	failureCount             int
	maintenanceCount         int
	totalDowntime            float64
	outageStart              float64 // valid while status != Operational
	lastEventTime            float64
	history                  []float64 // sampled effective durations, append-only

	opSampler     DurationSampler
	repairSampler DurationSampler
	maintSampler  DurationSampler
}

// NewMachine constructs an Operational machine from its static parameters.
// Out-of-domain parameters are rejected with a *ConfigError even when the
// caller claims to have validated them.
func NewMachine(cfg MachineConfig) (*Machine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.RepairTime == (Bounds{}) {
		cfg.RepairTime = DefaultRepairTime
	}
	if cfg.MaintenanceTime == (Bounds{}) {
		cfg.MaintenanceTime = DefaultMaintenanceTime
	}
	m := &Machine{
		cfg:           cfg,
		status:        StatusOperational,
		history:       make([]float64, 0),
		opSampler:     NewUniformSampler(Bounds{Min: cfg.MinTime, Max: cfg.MaxTime}),
		repairSampler: NewUniformSampler(cfg.RepairTime),
		maintSampler:  NewUniformSampler(cfg.MaintenanceTime),
	}
	logrus.Debugf("machine %s initialized (efficiency %.2f)", cfg.Name, cfg.Efficiency)
	return m, nil
}

// StartCycle begins a new production cycle at the given time. The effective
// duration is uniform(min, max)/efficiency: degraded efficiency lengthens
// the cycle. Returns a *StateError unless the machine is Operational.
func (m *Machine) StartCycle(now float64, rng *rand.Rand) (*OperationCompleteEvent, error) {
	if m.status != StatusOperational {
		return nil, &StateError{Machine: m.cfg.Name, Op: "start cycle", Status: m.status}
	}
	d := m.opSampler.Sample(rng) / m.cfg.Efficiency
	m.lastEventTime = now
	return NewOperationCompleteEvent(now+d, m.cfg.Name, d), nil
}

// CompleteCycle records a finished cycle and decides what happens next.
// Exactly one of the following applies, in order:
//
//	(a) failure draw against 1-exp(-failureRate*duration): transition to
//	    Failed, emit FailureOccurred now and RepairComplete after a sampled
//	    repair time;
//	(b) maintenance due (operating hours since last maintenance reached the
//	    interval): transition to UnderMaintenance, emit MaintenanceDue now
//	    and MaintenanceComplete after a sampled maintenance time;
//	(c) stay Operational and start the next cycle immediately.
//
// Failure takes precedence over maintenance. The failure draw consumes one
// uniform even when failureRate is zero, keeping the stream layout
// identical across configurations.
func (m *Machine) CompleteCycle(ev *OperationCompleteEvent, rng *rand.Rand) ([]Event, error) {
	if m.status != StatusOperational {
		return nil, &StateError{Machine: m.cfg.Name, Op: "complete cycle", Status: m.status}
	}
	now := ev.At()
	m.history = append(m.history, ev.Duration)
	m.cycleCount++
	m.cumulativeOperatingTime += ev.Duration
	m.lastEventTime = now
	logrus.Debugf("machine %s completed cycle %d in %.2fh", m.cfg.Name, m.cycleCount, ev.Duration)

	// (a) failure: probability of at least one failure during the cycle
	// under an exponential process with the configured hazard rate.
	pFail := 1 - math.Exp(-m.cfg.FailureRate*ev.Duration)
	if rng.Float64() < pFail {
		m.status = StatusFailed
		m.failureCount++
		m.outageStart = now
		repair := m.repairSampler.Sample(rng)
		logrus.Warnf("machine %s failed at %.2fh, repair time %.2fh", m.cfg.Name, now, repair)
		return []Event{
			NewFailureOccurredEvent(now, m.cfg.Name),
			NewRepairCompleteEvent(now+repair, m.cfg.Name),
		}, nil
	}

	// (b) maintenance due by cumulative operating hours.
	if m.cumulativeOperatingTime-m.opHoursAtLastMaintenance >= m.cfg.MaintenanceInterval {
		m.status = StatusUnderMaintenance
		m.maintenanceCount++
		m.outageStart = now
		maint := m.maintSampler.Sample(rng)
		logrus.Debugf("machine %s entering maintenance at %.2fh for %.2fh", m.cfg.Name, now, maint)
		return []Event{
			NewMaintenanceDueEvent(now, m.cfg.Name),
			NewMaintenanceCompleteEvent(now+maint, m.cfg.Name),
		}, nil
	}

	// (c) next cycle.
	next, err := m.StartCycle(now, rng)
	if err != nil {
		return nil, err
	}
	return []Event{next}, nil
}

// FinishRepair returns the machine to service after a failure, accrues the
// outage as downtime, and starts the next cycle.
func (m *Machine) FinishRepair(ev *RepairCompleteEvent, rng *rand.Rand) ([]Event, error) {
	if m.status != StatusFailed {
		return nil, &StateError{Machine: m.cfg.Name, Op: "finish repair", Status: m.status}
	}
	now := ev.At()
	m.status = StatusOperational
	m.totalDowntime += now - m.outageStart
	m.lastEventTime = now
	logrus.Debugf("machine %s repaired at %.2fh", m.cfg.Name, now)
	next, err := m.StartCycle(now, rng)
	if err != nil {
		return nil, err
	}
	return []Event{next}, nil
}

// FinishMaintenance returns the machine to service after scheduled
// maintenance, resets the maintenance watermark, accrues the outage as
// downtime, and starts the next cycle.
func (m *Machine) FinishMaintenance(ev *MaintenanceCompleteEvent, rng *rand.Rand) ([]Event, error) {
	if m.status != StatusUnderMaintenance {
		return nil, &StateError{Machine: m.cfg.Name, Op: "finish maintenance", Status: m.status}
	}
	now := ev.At()
	m.status = StatusOperational
	m.opHoursAtLastMaintenance = m.cumulativeOperatingTime
	m.totalDowntime += now - m.outageStart
	m.lastEventTime = now
	logrus.Debugf("machine %s maintenance complete at %.2fh", m.cfg.Name, now)
	next, err := m.StartCycle(now, rng)
	if err != nil {
		return nil, err
	}
	return []Event{next}, nil
}

// closeOutage stamps the end of a run: a machine still down at the horizon
// accrues downtime up to the horizon, and lastEventTime becomes the horizon
// so availability denominators equal elapsed simulated time.
func (m *Machine) closeOutage(horizon float64) {
	if m.status != StatusOperational && horizon > m.outageStart {
		m.totalDowntime += horizon - m.outageStart
		m.outageStart = horizon
	}
	if horizon > m.lastEventTime {
		m.lastEventTime = horizon
	}
}

// Reset returns the machine to its constructed state for a fresh run.
func (m *Machine) Reset() {
	m.status = StatusOperational
	m.cumulativeOperatingTime = 0
	m.opHoursAtLastMaintenance = 0
	m.cycleCount = 0
	m.failureCount = 0
	m.maintenanceCount = 0
	m.totalDowntime = 0
	m.outageStart = 0
	m.lastEventTime = 0
	m.history = m.history[:0]
}

// Read-only accessors for collaborators. The predictive engine gets the
// history as a defensive copy; no caller can mutate machine state through
// these.

// Name returns the machine's unique name.
func (m *Machine) Name() string { return m.cfg.Name }

// Config returns the machine's static parameters.
func (m *Machine) Config() MachineConfig { return m.cfg }

// Status returns the current lifecycle state.
func (m *Machine) Status() MachineStatus { return m.status }

// CycleCount returns the number of completed cycles.
func (m *Machine) CycleCount() int { return m.cycleCount }

// FailureCount returns the number of modeled failures.
func (m *Machine) FailureCount() int { return m.failureCount }

// MaintenanceCount returns the number of maintenance windows entered.
func (m *Machine) MaintenanceCount() int { return m.maintenanceCount }

// TotalDowntime returns accumulated outage hours.
func (m *Machine) TotalDowntime() float64 { return m.totalDowntime }

// CumulativeOperatingTime returns total productive hours.
func (m *Machine) CumulativeOperatingTime() float64 { return m.cumulativeOperatingTime }

// History returns a copy of the ordered sampled cycle durations.
func (m *Machine) History() []float64 {
	out := make([]float64, len(m.history))
	copy(out, m.history)
	return out
}
