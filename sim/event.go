package sim

// EventKind identifies the variant of a scheduled event.
type EventKind string

const (
	EventOperationComplete   EventKind = "OPERATION_COMPLETE"
	EventFailureOccurred     EventKind = "FAILURE_OCCURRED"
	EventRepairComplete      EventKind = "REPAIR_COMPLETE"
	EventMaintenanceDue      EventKind = "MAINTENANCE_DUE"
	EventMaintenanceComplete EventKind = "MAINTENANCE_COMPLETE"
)

// Event is a scheduled simulation event owned by exactly one machine.
type Event interface {
	// At returns the simulated time (hours) the event is scheduled for.
	At() float64
	// Seq returns the insertion sequence number, stamped by the event
	// queue. Ties at equal timestamps resolve in insertion order.
	Seq() uint64
	Kind() EventKind
	MachineName() string
	// Execute dispatches the event to the owning machine via the line.
	Execute(l *ProductionLine) error

	setSeq(seq uint64)
}

// BaseEvent provides the common event fields.
type BaseEvent struct {
	at      float64
	seq     uint64
	kind    EventKind
	machine string
}

func newBaseEvent(at float64, kind EventKind, machine string) BaseEvent {
	return BaseEvent{at: at, kind: kind, machine: machine}
}

func (e *BaseEvent) At() float64         { return e.at }
func (e *BaseEvent) Seq() uint64         { return e.seq }
func (e *BaseEvent) Kind() EventKind     { return e.kind }
func (e *BaseEvent) MachineName() string { return e.machine }
func (e *BaseEvent) setSeq(seq uint64)   { e.seq = seq }

// OperationCompleteEvent marks the end of one production cycle.
type OperationCompleteEvent struct {
	BaseEvent
	Duration float64 // sampled effective duration of the cycle (hours)
}

func NewOperationCompleteEvent(at float64, machine string, duration float64) *OperationCompleteEvent {
	return &OperationCompleteEvent{
		BaseEvent: newBaseEvent(at, EventOperationComplete, machine),
		Duration:  duration,
	}
}

func (e *OperationCompleteEvent) Execute(l *ProductionLine) error {
	return l.handleOperationComplete(e)
}

// FailureOccurredEvent is a notification that a machine transitioned to
// Failed. The transition itself already happened inside CompleteCycle;
// the line only records and counts it.
type FailureOccurredEvent struct {
	BaseEvent
}

func NewFailureOccurredEvent(at float64, machine string) *FailureOccurredEvent {
	return &FailureOccurredEvent{BaseEvent: newBaseEvent(at, EventFailureOccurred, machine)}
}

func (e *FailureOccurredEvent) Execute(l *ProductionLine) error {
	return l.handleFailureOccurred(e)
}

// RepairCompleteEvent returns a failed machine to service.
type RepairCompleteEvent struct {
	BaseEvent
}

func NewRepairCompleteEvent(at float64, machine string) *RepairCompleteEvent {
	return &RepairCompleteEvent{BaseEvent: newBaseEvent(at, EventRepairComplete, machine)}
}

func (e *RepairCompleteEvent) Execute(l *ProductionLine) error {
	return l.handleRepairComplete(e)
}

// MaintenanceDueEvent is a notification that a machine entered scheduled
// maintenance. Like FailureOccurredEvent, it carries no machine handler.
type MaintenanceDueEvent struct {
	BaseEvent
}

func NewMaintenanceDueEvent(at float64, machine string) *MaintenanceDueEvent {
	return &MaintenanceDueEvent{BaseEvent: newBaseEvent(at, EventMaintenanceDue, machine)}
}

func (e *MaintenanceDueEvent) Execute(l *ProductionLine) error {
	return l.handleMaintenanceDue(e)
}

// MaintenanceCompleteEvent returns a machine from maintenance to service.
type MaintenanceCompleteEvent struct {
	BaseEvent
}

func NewMaintenanceCompleteEvent(at float64, machine string) *MaintenanceCompleteEvent {
	return &MaintenanceCompleteEvent{BaseEvent: newBaseEvent(at, EventMaintenanceComplete, machine)}
}

func (e *MaintenanceCompleteEvent) Execute(l *ProductionLine) error {
	return l.handleMaintenanceComplete(e)
}
