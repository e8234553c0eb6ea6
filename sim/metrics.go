package sim

import "gonum.org/v1/gonum/stat"

// ProductionMetrics is the line-level summary computed from final machine
// state. Collaborators treat the post-run value as authoritative; mid-run
// calls are allowed for live reporting but are provisional.
type ProductionMetrics struct {
	TotalCycles int     `json:"total_cycles"`
	Duration    float64 `json:"duration"`
	// Throughput is completed cycles per simulated hour.
	Throughput float64 `json:"throughput"`
	// LineEfficiency is the cycle-share-weighted mean of per-machine
	// observed efficiency, where a machine's observed efficiency is its
	// undegraded expected duration (min+max)/2 over its achieved mean
	// duration. It recovers the configured efficiency in expectation and
	// may marginally exceed 1.0 on small samples. Zero when no cycles
	// completed.
	LineEfficiency float64 `json:"line_efficiency"`
	// BottleneckMachine is the machine with the highest mean observed
	// operation time. Ties keep the earliest-inserted machine; machines
	// with no completed cycles are never the bottleneck. Empty when no
	// machine completed a cycle.
	BottleneckMachine string      `json:"bottleneck_machine"`
	EventCounts       EventCounts `json:"event_counts"`
}

// Metrics derives line-level performance indicators from the machines'
// final state.
func (l *ProductionLine) Metrics() ProductionMetrics {
	m := ProductionMetrics{
		TotalCycles: l.totalCycles,
		Duration:    l.duration,
		EventCounts: l.counts,
	}
	if l.duration > 0 {
		m.Throughput = float64(l.totalCycles) / l.duration
	}
	m.BottleneckMachine = l.Bottleneck()
	m.LineEfficiency = l.lineEfficiency()
	return m
}

// Bottleneck returns the name of the machine with the highest mean observed
// operation time, walking machines in insertion order with a strict greater-
// than comparison so the earliest-inserted machine wins ties.
func (l *ProductionLine) Bottleneck() string {
	name := ""
	best := 0.0
	for _, m := range l.machines {
		if m.cycleCount == 0 {
			continue
		}
		mean := stat.Mean(m.history, nil)
		if name == "" || mean > best {
			name = m.Name()
			best = mean
		}
	}
	return name
}

func (l *ProductionLine) lineEfficiency() float64 {
	weighted := 0.0
	cycles := 0
	for _, m := range l.machines {
		if m.cycleCount == 0 {
			continue
		}
		mean := stat.Mean(m.history, nil)
		if mean <= 0 {
			continue
		}
		observed := ((m.cfg.MinTime + m.cfg.MaxTime) / 2) / mean
		weighted += float64(m.cycleCount) * observed
		cycles += m.cycleCount
	}
	if cycles == 0 {
		return 0
	}
	return weighted / float64(cycles)
}
