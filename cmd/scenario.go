package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/linesim/linesim/sim/scenario"
)

var scenarioOutPath string // Destination for the generated scenario file

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Scenario file utilities",
}

// scenarioInitCmd writes the built-in default scenario so users have a
// starting point to edit.
var scenarioInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default scenario YAML",
	Run: func(cmd *cobra.Command, args []string) {
		if err := scenario.Default().Write(scenarioOutPath); err != nil {
			logrus.Fatalf("Could not write scenario: %v", err)
		}
		logrus.Infof("Default scenario written to %s", scenarioOutPath)
	},
}

func init() {
	scenarioInitCmd.Flags().StringVar(&scenarioOutPath, "out", "linesim.yaml", "Output path for the scenario file")

	scenarioCmd.AddCommand(scenarioInitCmd)
	rootCmd.AddCommand(scenarioCmd)
}
