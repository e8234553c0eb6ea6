package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/linesim/linesim/sim"
	"github.com/linesim/linesim/sim/report"
	"github.com/linesim/linesim/sim/scenario"
	"github.com/linesim/linesim/sim/trace"
)

var (
	// CLI flags for the run subcommand
	scenarioPath string  // YAML scenario file; empty means the built-in default scenario
	duration     float64 // Simulation horizon in hours (overrides scenario)
	seed         int64   // Master seed (overrides scenario)
	logLevel     string  // Log verbosity level
	reportPath   string  // JSON report output path
	traceCSVPath string  // CSV event trace output path
	traceDBPath  string  // SQLite event trace output path
	quietTables  bool    // Suppress terminal tables
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "linesim",
	Short: "Discrete-event simulator for industrial production lines",
}

// runCmd executes one simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the production-line simulation",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := scenario.Default()
		if scenarioPath != "" {
			spec, err = scenario.Load(scenarioPath)
			if err != nil {
				logrus.Fatalf("Could not load scenario: %v", err)
			}
		}
		if cmd.Flags().Changed("duration") {
			spec.Simulation.Duration = duration
		}
		if cmd.Flags().Changed("seed") {
			spec.Simulation.Seed = seed
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		machineCfgs, simCfg := spec.Configs()
		line, err := sim.NewProductionLine(simCfg, machineCfgs)
		if err != nil {
			logrus.Fatalf("Could not build production line: %v", err)
		}

		var closers []interface{ Close() error }
		if traceCSVPath != "" {
			w, err := trace.NewCSVWriter(traceCSVPath)
			if err != nil {
				logrus.Fatalf("Could not open CSV trace: %v", err)
			}
			line.AddSink(w)
			closers = append(closers, w)
		}
		if traceDBPath != "" {
			rec, err := trace.NewRecorder(traceDBPath)
			if err != nil {
				logrus.Fatalf("Could not open trace database: %v", err)
			}
			line.AddSink(rec)
			closers = append(closers, rec)
		}

		startTime := time.Now()
		if err := line.Run(); err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logrus.Fatalf("Could not finish trace output: %v", err)
			}
		}

		rep := report.Build(line)
		if !quietTables {
			report.RenderTables(os.Stdout, rep)
		}
		if reportPath != "" {
			if err := rep.WriteJSON(reportPath); err != nil {
				logrus.Fatalf("Could not write report: %v", err)
			}
			logrus.Infof("Report written to %s", reportPath)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Scenario YAML file (default: built-in A/B/C scenario)")
	runCmd.Flags().Float64Var(&duration, "duration", 10.0, "Simulation horizon in hours (overrides scenario)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Master seed for all random streams (overrides scenario)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&reportPath, "report", "", "Write JSON report to this path")
	runCmd.Flags().StringVar(&traceCSVPath, "trace-csv", "", "Write CSV event trace to this path")
	runCmd.Flags().StringVar(&traceDBPath, "trace-db", "", "Write SQLite event trace to this path")
	runCmd.Flags().BoolVar(&quietTables, "quiet-tables", false, "Suppress terminal summary tables")

	rootCmd.AddCommand(runCmd)
}
