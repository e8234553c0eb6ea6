package sim

// Bounds is a closed interval used for sampled durations (hours).
type Bounds struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Default outage durations from the reference production data:
// repairs take 1-4 hours, scheduled maintenance 0.5-2 hours.
var (
	DefaultRepairTime      = Bounds{Min: 1.0, Max: 4.0}
	DefaultMaintenanceTime = Bounds{Min: 0.5, Max: 2.0}
)

// MachineConfig groups the static parameters of a single machine.
// Zero-valued RepairTime/MaintenanceTime fall back to the defaults above.
type MachineConfig struct {
	Name                string  // unique within a line
	MinTime             float64 // lower bound for sampled operation duration (hours)
	MaxTime             float64 // upper bound for sampled operation duration (hours)
	Efficiency          float64 // (0,1]; lower values lengthen effective duration
	MaintenanceInterval float64 // operating hours between mandatory maintenance
	FailureRate         float64 // hazard rate per simulated hour
	RepairTime          Bounds
	MaintenanceTime     Bounds
}

// Validate checks every static parameter domain. The scenario loader
// validates too, but construction re-checks so the engine never trusts
// its callers.
func (c *MachineConfig) Validate() error {
	if c.Name == "" {
		return &ConfigError{Field: "name", Reason: "must not be empty"}
	}
	if c.MinTime <= 0 {
		return &ConfigError{Machine: c.Name, Field: "min_time", Reason: "must be > 0"}
	}
	if c.MaxTime < c.MinTime {
		return &ConfigError{Machine: c.Name, Field: "max_time", Reason: "must be >= min_time"}
	}
	if c.Efficiency <= 0 || c.Efficiency > 1 {
		return &ConfigError{Machine: c.Name, Field: "efficiency", Reason: "must be in (0, 1]"}
	}
	if c.MaintenanceInterval <= 0 {
		return &ConfigError{Machine: c.Name, Field: "maintenance_interval", Reason: "must be > 0"}
	}
	if c.FailureRate < 0 {
		return &ConfigError{Machine: c.Name, Field: "failure_rate", Reason: "must be >= 0"}
	}
	if err := validateBounds(c.Name, "repair_time", c.RepairTime); err != nil {
		return err
	}
	return validateBounds(c.Name, "maintenance_time", c.MaintenanceTime)
}

func validateBounds(machine, field string, b Bounds) error {
	if b == (Bounds{}) {
		return nil // zero value means "use default"
	}
	if b.Min <= 0 {
		return &ConfigError{Machine: machine, Field: field + ".min", Reason: "must be > 0"}
	}
	if b.Max < b.Min {
		return &ConfigError{Machine: machine, Field: field + ".max", Reason: "must be >= min"}
	}
	return nil
}

// SimulationConfig groups run-level parameters.
type SimulationConfig struct {
	Duration float64 // simulation horizon in hours
	Seed     int64   // master seed for all RNG streams
	TimeStep float64 // accepted for collaborator compatibility; the event-driven engine ignores it
}

// Validate checks run-level parameter domains.
func (c *SimulationConfig) Validate() error {
	if c.Duration <= 0 {
		return &ConfigError{Field: "duration", Reason: "must be > 0"}
	}
	if c.TimeStep < 0 {
		return &ConfigError{Field: "time_step", Reason: "must be >= 0"}
	}
	return nil
}
