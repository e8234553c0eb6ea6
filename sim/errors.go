package sim

import "fmt"

// ConfigError reports an out-of-domain static parameter detected at
// construction time. The simulation never starts with a bad configuration.
type ConfigError struct {
	Machine string // empty for simulation-level parameters
	Field   string
	Reason  string
}

func (e *ConfigError) Error() string {
	if e.Machine == "" {
		return fmt.Sprintf("invalid simulation config: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid config for machine %q: %s: %s", e.Machine, e.Field, e.Reason)
}

// StateError reports an operation dispatched to a machine whose status is
// incompatible with it. This indicates a defect in the orchestration loop,
// not modeled behavior, so callers must treat it as fatal.
type StateError struct {
	Machine string
	Op      string
	Status  MachineStatus
}

func (e *StateError) Error() string {
	return fmt.Sprintf("machine %q: cannot %s while %s", e.Machine, e.Op, e.Status)
}
