package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesim/linesim/sim/scenario"
)

// captureStdout runs fn and returns everything it printed to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestEvaluateCmd_PrintsAnalyticObjective(t *testing.T) {
	// GIVEN the default three-machine scenario and a candidate vector
	evalTimes = nil // pflag slice values accumulate across Execute calls
	rootCmd.SetArgs([]string{"evaluate", "--times", "1.0,2.0,3.0"})

	// WHEN the evaluate subcommand runs
	out := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	// THEN the total-time objective appears on stdout
	assert.Contains(t, out, "6.000000")
}

func TestEvaluateCmd_BottleneckPenaltyObjective(t *testing.T) {
	evalTimes = nil
	rootCmd.SetArgs([]string{"evaluate", "--times", "1.0,2.0,3.0", "--objective", "bottleneck-penalty"})

	out := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, out, "12.000000")
}

func TestScenarioInitCmd_WritesLoadableDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linesim.yaml")
	rootCmd.SetArgs([]string{"scenario", "init", "--out", path})
	require.NoError(t, rootCmd.Execute())

	spec, err := scenario.Load(path)
	require.NoError(t, err)
	require.NoError(t, spec.Validate())
	assert.Equal(t, scenario.Default(), spec)
}

func TestRunCmd_WritesReportAndTrace(t *testing.T) {
	dir := t.TempDir()
	reportFile := filepath.Join(dir, "report.json")
	traceFile := filepath.Join(dir, "trace.csv")
	rootCmd.SetArgs([]string{
		"run", "--duration", "5", "--seed", "7", "--quiet-tables",
		"--report", reportFile, "--trace-csv", traceFile,
	})
	require.NoError(t, rootCmd.Execute())

	report, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(report), "production_metrics")

	trace, err := os.ReadFile(traceFile)
	require.NoError(t, err)
	assert.Contains(t, string(trace), "seq,time,kind,machine,duration")
}
