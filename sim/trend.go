package sim

import "gonum.org/v1/gonum/stat"

// TrendDirection classifies the slope of recent operation times.
type TrendDirection string

const (
	// TrendImproving means cycles are getting shorter.
	TrendImproving TrendDirection = "IMPROVING"
	// TrendDegrading means cycles are getting longer.
	TrendDegrading TrendDirection = "DEGRADING"
	// TrendStable means the slope is within the noise threshold.
	TrendStable TrendDirection = "STABLE"
	// TrendInsufficientData is the sentinel for histories shorter than
	// trendMinSamples. It is a result, not an error.
	TrendInsufficientData TrendDirection = "INSUFFICIENT_DATA"
)

const (
	// trendWindow is the sliding window of most recent samples the fit
	// runs over.
	trendWindow = 20
	// trendMinSamples is the minimum history length for a meaningful fit.
	trendMinSamples = 3
	// trendSlopeThreshold separates Stable from Improving/Degrading,
	// in hours per cycle.
	trendSlopeThreshold = 0.01
)

// TrendAnalysis reports the direction and magnitude of change in a
// machine's recent operation times.
type TrendAnalysis struct {
	Direction TrendDirection `json:"direction"`
	Slope     float64        `json:"slope"`  // hours per cycle over the window
	Window    int            `json:"window"` // samples the fit used
}

// TrendAnalysis fits a linear regression over the most recent window of
// the operation-time history. Rising times degrade, falling times improve.
func (m *Machine) TrendAnalysis() TrendAnalysis {
	n := len(m.history)
	if n < trendMinSamples {
		return TrendAnalysis{Direction: TrendInsufficientData, Window: n}
	}
	start := n - trendWindow
	if start < 0 {
		start = 0
	}
	window := m.history[start:]
	xs := make([]float64, len(window))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, window, nil, false)

	direction := TrendStable
	switch {
	case slope > trendSlopeThreshold:
		direction = TrendDegrading
	case slope < -trendSlopeThreshold:
		direction = TrendImproving
	}
	return TrendAnalysis{Direction: direction, Slope: slope, Window: len(window)}
}
