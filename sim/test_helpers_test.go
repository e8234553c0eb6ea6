package sim

import "testing"

// deterministicMachine is a machine with a fixed 1-hour cycle, no failures,
// and maintenance effectively disabled.
func deterministicMachine(name string) MachineConfig {
	return MachineConfig{
		Name:                name,
		MinTime:             1.0,
		MaxTime:             1.0,
		Efficiency:          1.0,
		MaintenanceInterval: 1e9,
		FailureRate:         0,
	}
}

// stochasticMachine is a machine with uniform cycle times over [min, max]
// and the given hazard rate.
func stochasticMachine(name string, min, max, failureRate float64) MachineConfig {
	return MachineConfig{
		Name:                name,
		MinTime:             min,
		MaxTime:             max,
		Efficiency:          1.0,
		MaintenanceInterval: 1e9,
		FailureRate:         failureRate,
	}
}

func newTestLine(t *testing.T, duration float64, seed int64, cfgs ...MachineConfig) *ProductionLine {
	t.Helper()
	line, err := NewProductionLine(SimulationConfig{Duration: duration, Seed: seed}, cfgs)
	if err != nil {
		t.Fatalf("NewProductionLine: %v", err)
	}
	return line
}

func mustRun(t *testing.T, line *ProductionLine) {
	t.Helper()
	if err := line.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
