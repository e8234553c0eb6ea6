package sim

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MachineStatistics is a plain-value summary of one machine's run, exposed
// to reporting and predictive collaborators.
type MachineStatistics struct {
	CycleCount       int     `json:"cycle_count"`
	MeanTime         float64 `json:"mean_time"`
	MinTime          float64 `json:"min_time"`
	MaxTime          float64 `json:"max_time"`
	StdDevTime       float64 `json:"std_dev_time"`
	Efficiency       float64 `json:"efficiency"`
	FailureCount     int     `json:"failure_count"`
	MaintenanceCount int     `json:"maintenance_count"`
	TotalDowntime    float64 `json:"total_downtime"`
	Availability     float64 `json:"availability"`
}

// Statistics summarizes the machine's operation-time history. It is pure:
// calling it any number of times without intervening dispatches returns
// identical results.
func (m *Machine) Statistics() MachineStatistics {
	s := MachineStatistics{
		Efficiency:       m.cfg.Efficiency,
		FailureCount:     m.failureCount,
		MaintenanceCount: m.maintenanceCount,
		TotalDowntime:    m.totalDowntime,
		Availability:     1.0,
	}
	if m.lastEventTime > 0 {
		s.Availability = 1.0 - m.totalDowntime/m.lastEventTime
	}
	if len(m.history) == 0 {
		return s
	}
	s.CycleCount = m.cycleCount
	s.MeanTime = stat.Mean(m.history, nil)
	s.MinTime = floats.Min(m.history)
	s.MaxTime = floats.Max(m.history)
	s.StdDevTime = stat.PopStdDev(m.history, nil)
	return s
}
