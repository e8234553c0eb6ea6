// Package trace provides event-trace recording for production-line runs.
// It has no dependencies on sim/ — it stores pure data types, so external
// consumers can read traces without linking the engine.
package trace

// Record captures one dispatched simulation event.
type Record struct {
	Seq      uint64  `json:"seq"`
	Time     float64 `json:"time"`
	Kind     string  `json:"kind"`
	Machine  string  `json:"machine"`
	Duration float64 `json:"duration,omitempty"` // cycle duration; zero for non-operation events
}
