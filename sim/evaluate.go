package sim

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Objective names a deterministic scalar objective over a vector of
// candidate operation times, one per machine in insertion order.
type Objective string

const (
	// ObjectiveTotalTime is the sum of the candidate times.
	ObjectiveTotalTime Objective = "total-time"
	// ObjectiveBottleneckPenalty is the sum plus a weighted penalty on the
	// slowest machine: sum(t) + w*max(t).
	ObjectiveBottleneckPenalty Objective = "bottleneck-penalty"
	// ObjectiveWeightedEfficiency is the negated mean attainable
	// efficiency, -mean(min_i/t_i): maximizing efficiency minimizes it.
	ObjectiveWeightedEfficiency Objective = "weighted-efficiency"
)

// ValidObjectives is the set of recognized objective names.
var ValidObjectives = map[Objective]bool{
	ObjectiveTotalTime:          true,
	ObjectiveBottleneckPenalty:  true,
	ObjectiveWeightedEfficiency: true,
}

// DefaultBottleneckPenaltyWeight is the default w in sum(t) + w*max(t).
const DefaultBottleneckPenaltyWeight = 2.0

// Evaluator is the probe the optimization collaborator calls repeatedly
// with candidate time vectors. Every Evaluate call is self-contained: in
// simulation mode it builds fresh machines, queue, and RNG, so no state
// leaks between calls and identical inputs yield identical scalars.
type Evaluator struct {
	machines      []MachineConfig
	simCfg        SimulationConfig
	objective     Objective
	simulate      bool
	penaltyWeight float64
}

// NewEvaluator creates an Evaluator over the given scenario. The default
// mode is analytic; SetSimulated switches to re-running the simulation
// with pinned operation times.
func NewEvaluator(machines []MachineConfig, simCfg SimulationConfig, objective Objective) (*Evaluator, error) {
	if !ValidObjectives[objective] {
		return nil, fmt.Errorf("unknown objective %q", objective)
	}
	if err := simCfg.Validate(); err != nil {
		return nil, err
	}
	for i := range machines {
		if err := machines[i].Validate(); err != nil {
			return nil, err
		}
	}
	if len(machines) == 0 {
		return nil, &ConfigError{Field: "machines", Reason: "at least one machine is required"}
	}
	return &Evaluator{
		machines:      machines,
		simCfg:        simCfg,
		objective:     objective,
		penaltyWeight: DefaultBottleneckPenaltyWeight,
	}, nil
}

// SetSimulated switches between analytic evaluation (objective over the
// candidate vector directly) and simulated evaluation (objective over the
// mean observed times of a run with bounds pinned to the candidates).
func (e *Evaluator) SetSimulated(on bool) { e.simulate = on }

// SetPenaltyWeight overrides the bottleneck penalty weight.
func (e *Evaluator) SetPenaltyWeight(w float64) { e.penaltyWeight = w }

// Evaluate returns the scalar objective for a candidate time vector. The
// vector is in machine insertion order and every entry must be positive.
func (e *Evaluator) Evaluate(times []float64) (float64, error) {
	if len(times) != len(e.machines) {
		return 0, fmt.Errorf("time vector has %d entries, want %d", len(times), len(e.machines))
	}
	for i, t := range times {
		if t <= 0 {
			return 0, fmt.Errorf("time vector entry %d (%s) must be > 0, got %v", i, e.machines[i].Name, t)
		}
	}
	if !e.simulate {
		return e.objectiveValue(times), nil
	}
	observed, err := e.simulatedTimes(times)
	if err != nil {
		return 0, err
	}
	return e.objectiveValue(observed), nil
}

// simulatedTimes runs the line with each machine's bounds pinned to the
// candidate vector and returns per-machine mean observed times. Machines
// that complete no cycles inside the horizon fall back to their candidate.
func (e *Evaluator) simulatedTimes(times []float64) ([]float64, error) {
	pinned := make([]MachineConfig, len(e.machines))
	for i, cfg := range e.machines {
		cfg.MinTime = times[i]
		cfg.MaxTime = times[i]
		pinned[i] = cfg
	}
	line, err := NewProductionLine(e.simCfg, pinned)
	if err != nil {
		return nil, err
	}
	if err := line.Run(); err != nil {
		return nil, err
	}
	observed := make([]float64, len(times))
	for i, m := range line.Machines() {
		if m.CycleCount() == 0 {
			observed[i] = times[i]
			continue
		}
		observed[i] = stat.Mean(m.history, nil)
	}
	return observed, nil
}

func (e *Evaluator) objectiveValue(times []float64) float64 {
	switch e.objective {
	case ObjectiveBottleneckPenalty:
		return floats.Sum(times) + e.penaltyWeight*floats.Max(times)
	case ObjectiveWeightedEfficiency:
		sum := 0.0
		for i, t := range times {
			sum += e.machines[i].MinTime / t
		}
		return -sum / float64(len(times))
	default: // ObjectiveTotalTime
		return floats.Sum(times)
	}
}
