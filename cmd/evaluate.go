package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/linesim/linesim/sim"
	"github.com/linesim/linesim/sim/scenario"
)

var (
	evalTimes         []float64 // Candidate operation times, one per machine in scenario order
	evalObjective     string    // Objective name
	evalSimulate      bool      // Re-run the simulation with pinned times instead of analytic evaluation
	evalScenarioPath  string    // Scenario providing the machine set
	evalPenaltyWeight float64   // Weight for the bottleneck penalty objective
)

// evaluateCmd is the probe surface for the optimization collaborator: it
// maps a candidate time vector to a scalar objective on stdout.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate an objective over a candidate operation-time vector",
	Run: func(cmd *cobra.Command, args []string) {
		spec := scenario.Default()
		var err error
		if evalScenarioPath != "" {
			spec, err = scenario.Load(evalScenarioPath)
			if err != nil {
				logrus.Fatalf("Could not load scenario: %v", err)
			}
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		machineCfgs, simCfg := spec.Configs()
		eval, err := sim.NewEvaluator(machineCfgs, simCfg, sim.Objective(evalObjective))
		if err != nil {
			logrus.Fatalf("Could not build evaluator: %v", err)
		}
		eval.SetSimulated(evalSimulate)
		if cmd.Flags().Changed("penalty-weight") {
			eval.SetPenaltyWeight(evalPenaltyWeight)
		}

		value, err := eval.Evaluate(evalTimes)
		if err != nil {
			logrus.Fatalf("Evaluation failed: %v", err)
		}
		fmt.Printf("%.6f\n", value)
	},
}

func init() {
	evaluateCmd.Flags().Float64SliceVar(&evalTimes, "times", nil, "Comma-separated candidate times, one per machine in scenario order")
	evaluateCmd.Flags().StringVar(&evalObjective, "objective", string(sim.ObjectiveTotalTime), "Objective (total-time, bottleneck-penalty, weighted-efficiency)")
	evaluateCmd.Flags().BoolVar(&evalSimulate, "simulate", false, "Evaluate by re-running the simulation with pinned times")
	evaluateCmd.Flags().StringVar(&evalScenarioPath, "scenario", "", "Scenario YAML file (default: built-in A/B/C scenario)")
	evaluateCmd.Flags().Float64Var(&evalPenaltyWeight, "penalty-weight", sim.DefaultBottleneckPenaltyWeight, "Weight for the bottleneck penalty objective")
	_ = evaluateCmd.MarkFlagRequired("times")

	rootCmd.AddCommand(evaluateCmd)
}
