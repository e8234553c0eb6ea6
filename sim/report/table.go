package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTables prints the report as terminal tables: one row per machine,
// then the line-level production metrics.
func RenderTables(w io.Writer, r *Report) {
	mt := table.NewWriter()
	mt.SetOutputMirror(w)
	mt.SetTitle("Machines")
	mt.AppendHeader(table.Row{"Name", "Cycles", "Mean (h)", "Min (h)", "Max (h)", "Std Dev", "Failures", "Maint.", "Availability", "Trend"})
	for _, m := range r.Machines {
		s := m.Statistics
		mt.AppendRow(table.Row{
			m.Name,
			s.CycleCount,
			fmt.Sprintf("%.3f", s.MeanTime),
			fmt.Sprintf("%.3f", s.MinTime),
			fmt.Sprintf("%.3f", s.MaxTime),
			fmt.Sprintf("%.3f", s.StdDevTime),
			s.FailureCount,
			s.MaintenanceCount,
			fmt.Sprintf("%.1f%%", s.Availability*100),
			string(m.Trend.Direction),
		})
	}
	mt.Render()

	pm := r.Metrics
	lt := table.NewWriter()
	lt.SetOutputMirror(w)
	lt.SetTitle("Production Metrics")
	lt.AppendRows([]table.Row{
		{"Total cycles", pm.TotalCycles},
		{"Duration (h)", fmt.Sprintf("%.1f", pm.Duration)},
		{"Throughput (cycles/h)", fmt.Sprintf("%.3f", pm.Throughput)},
		{"Line efficiency", fmt.Sprintf("%.3f", pm.LineEfficiency)},
		{"Bottleneck machine", pm.BottleneckMachine},
		{"Failures", pm.EventCounts.Failures},
		{"Maintenance windows", pm.EventCounts.MaintenanceDue},
	})
	lt.Render()
}
