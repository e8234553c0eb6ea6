// Package scenario loads and validates YAML scenario files describing a
// production line: the machines and the simulation run parameters.
package scenario

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linesim/linesim/sim"
)

// Spec is the YAML shape of a scenario file.
type Spec struct {
	Simulation SimulationSpec `yaml:"simulation"`
	Machines   []MachineSpec  `yaml:"machines"`
}

// SimulationSpec holds run-level parameters.
type SimulationSpec struct {
	Duration float64 `yaml:"duration"`
	Seed     int64   `yaml:"seed"`
	// TimeStep is accepted for compatibility with time-stepped
	// collaborators; the event-driven engine ignores it.
	TimeStep float64 `yaml:"time_step,omitempty"`
}

// MachineSpec holds one machine's static parameters.
type MachineSpec struct {
	Name                string      `yaml:"name"`
	MinTime             float64     `yaml:"min_time"`
	MaxTime             float64     `yaml:"max_time"`
	Efficiency          float64     `yaml:"efficiency"`
	MaintenanceInterval float64     `yaml:"maintenance_interval"`
	FailureRate         float64     `yaml:"failure_rate"`
	RepairTime          *BoundsSpec `yaml:"repair_time,omitempty"`
	MaintenanceTime     *BoundsSpec `yaml:"maintenance_time,omitempty"`
}

// BoundsSpec is a sampled-duration interval in hours.
type BoundsSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Default returns the reference three-machine scenario: machines A, B, C
// with a 10-hour horizon and seed 42.
func Default() *Spec {
	return &Spec{
		Simulation: SimulationSpec{Duration: 10.0, Seed: 42, TimeStep: 0.1},
		Machines: []MachineSpec{
			{Name: "A", MinTime: 1.0, MaxTime: 2.0, Efficiency: 0.95, MaintenanceInterval: 100.0, FailureRate: 0.01},
			{Name: "B", MinTime: 0.5, MaxTime: 1.5, Efficiency: 0.90, MaintenanceInterval: 100.0, FailureRate: 0.01},
			{Name: "C", MinTime: 0.8, MaxTime: 1.8, Efficiency: 0.88, MaintenanceInterval: 100.0, FailureRate: 0.01},
		},
	}
}

// Load reads and strictly parses a scenario file: unknown YAML fields are
// errors, so typos surface instead of silently defaulting.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks every field domain, naming the offending machine and
// field. The sim package re-validates at construction regardless.
func (s *Spec) Validate() error {
	if s.Simulation.Duration <= 0 {
		return fmt.Errorf("simulation.duration must be > 0, got %v", s.Simulation.Duration)
	}
	if s.Simulation.TimeStep < 0 {
		return fmt.Errorf("simulation.time_step must be >= 0, got %v", s.Simulation.TimeStep)
	}
	if len(s.Machines) == 0 {
		return fmt.Errorf("scenario has no machines")
	}
	seen := make(map[string]bool, len(s.Machines))
	for i, m := range s.Machines {
		if m.Name == "" {
			return fmt.Errorf("machine %d: name must not be empty", i)
		}
		if seen[m.Name] {
			return fmt.Errorf("machine %q: duplicate name", m.Name)
		}
		seen[m.Name] = true
		if m.MinTime <= 0 {
			return fmt.Errorf("machine %q: min_time must be > 0, got %v", m.Name, m.MinTime)
		}
		if m.MaxTime < m.MinTime {
			return fmt.Errorf("machine %q: max_time must be >= min_time, got %v < %v", m.Name, m.MaxTime, m.MinTime)
		}
		if m.Efficiency <= 0 || m.Efficiency > 1 {
			return fmt.Errorf("machine %q: efficiency must be in (0, 1], got %v", m.Name, m.Efficiency)
		}
		if m.MaintenanceInterval <= 0 {
			return fmt.Errorf("machine %q: maintenance_interval must be > 0, got %v", m.Name, m.MaintenanceInterval)
		}
		if m.FailureRate < 0 {
			return fmt.Errorf("machine %q: failure_rate must be >= 0, got %v", m.Name, m.FailureRate)
		}
		if err := validateBounds(m.Name, "repair_time", m.RepairTime); err != nil {
			return err
		}
		if err := validateBounds(m.Name, "maintenance_time", m.MaintenanceTime); err != nil {
			return err
		}
	}
	return nil
}

func validateBounds(machine, field string, b *BoundsSpec) error {
	if b == nil {
		return nil
	}
	if b.Min <= 0 {
		return fmt.Errorf("machine %q: %s.min must be > 0, got %v", machine, field, b.Min)
	}
	if b.Max < b.Min {
		return fmt.Errorf("machine %q: %s.max must be >= min, got %v < %v", machine, field, b.Max, b.Min)
	}
	return nil
}

// Configs converts the spec into engine configuration, preserving machine
// order.
func (s *Spec) Configs() ([]sim.MachineConfig, sim.SimulationConfig) {
	machines := make([]sim.MachineConfig, 0, len(s.Machines))
	for _, m := range s.Machines {
		cfg := sim.MachineConfig{
			Name:                m.Name,
			MinTime:             m.MinTime,
			MaxTime:             m.MaxTime,
			Efficiency:          m.Efficiency,
			MaintenanceInterval: m.MaintenanceInterval,
			FailureRate:         m.FailureRate,
		}
		if m.RepairTime != nil {
			cfg.RepairTime = sim.Bounds{Min: m.RepairTime.Min, Max: m.RepairTime.Max}
		}
		if m.MaintenanceTime != nil {
			cfg.MaintenanceTime = sim.Bounds{Min: m.MaintenanceTime.Min, Max: m.MaintenanceTime.Max}
		}
		machines = append(machines, cfg)
	}
	simCfg := sim.SimulationConfig{
		Duration: s.Simulation.Duration,
		Seed:     s.Simulation.Seed,
		TimeStep: s.Simulation.TimeStep,
	}
	return machines, simCfg
}

// Write marshals the spec to a YAML file.
func (s *Spec) Write(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scenario: %w", err)
	}
	return nil
}
