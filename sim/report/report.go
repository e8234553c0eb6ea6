// Package report assembles run results into plain structured values for
// reporting collaborators: a JSON document and terminal tables.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/xid"

	"github.com/linesim/linesim/sim"
)

// MachineSummary is the per-machine section of a report.
type MachineSummary struct {
	Name       string                `json:"name"`
	Statistics sim.MachineStatistics `json:"statistics"`
	Trend      sim.TrendAnalysis     `json:"trend"`
}

// Report is the full post-run document. Every field is a plain value;
// no engine handles leak out.
type Report struct {
	RunID       string                `json:"run_id"`
	GeneratedAt time.Time             `json:"generated_at"`
	Seed        int64                 `json:"seed"`
	Duration    float64               `json:"duration_hours"`
	Machines    []MachineSummary      `json:"machines"`
	Metrics     sim.ProductionMetrics `json:"production_metrics"`
}

// Build assembles a report from a finished run. Machines appear in line
// insertion order.
func Build(line *sim.ProductionLine) *Report {
	r := &Report{
		RunID:       xid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Seed:        line.Seed(),
		Duration:    line.Duration(),
		Metrics:     line.Metrics(),
	}
	for _, m := range line.Machines() {
		r.Machines = append(r.Machines, MachineSummary{
			Name:       m.Name(),
			Statistics: m.Statistics(),
			Trend:      m.TrendAnalysis(),
		})
	}
	return r
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
