package sim

import "testing"

func trendMachine(t *testing.T, history []float64) *Machine {
	t.Helper()
	m := mustMachine(t, deterministicMachine("A"))
	m.history = history
	m.cycleCount = len(history)
	return m
}

func TestTrendAnalysis_DirectionMapping(t *testing.T) {
	cases := []struct {
		name    string
		history []float64
		want    TrendDirection
	}{
		{"degrading: cycles getting longer", []float64{1.0, 1.5, 2.0, 2.5}, TrendDegrading},
		{"improving: cycles getting shorter", []float64{2.5, 2.0, 1.5, 1.0}, TrendImproving},
		{"stable: constant times", []float64{1.5, 1.5, 1.5, 1.5}, TrendStable},
		{"stable: slope within threshold", []float64{1.0, 1.001, 1.002, 1.003}, TrendStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := trendMachine(t, tc.history).TrendAnalysis()
			if got.Direction != tc.want {
				t.Errorf("direction = %s (slope %v), want %s", got.Direction, got.Slope, tc.want)
			}
		})
	}
}

func TestTrendAnalysis_InsufficientDataSentinel(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		history := make([]float64, n)
		got := trendMachine(t, history).TrendAnalysis()
		if got.Direction != TrendInsufficientData {
			t.Errorf("%d samples: direction = %s, want %s", n, got.Direction, TrendInsufficientData)
		}
	}
}

func TestTrendAnalysis_UsesSlidingWindow(t *testing.T) {
	// GIVEN a history whose old entries fall steeply but whose most recent
	// 20 entries are constant
	history := make([]float64, 30)
	for i := 0; i < 10; i++ {
		history[i] = 100.0 - float64(i)*10
	}
	for i := 10; i < 30; i++ {
		history[i] = 1.0
	}

	got := trendMachine(t, history).TrendAnalysis()

	// THEN only the recent window matters
	if got.Direction != TrendStable {
		t.Errorf("direction = %s (slope %v), want %s", got.Direction, got.Slope, TrendStable)
	}
	if got.Window != 20 {
		t.Errorf("window = %d, want 20", got.Window)
	}
}
