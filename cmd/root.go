package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cev-engine/cev-engine/cev"
)

var (
	// Shared CLI flags
	dataDir         string // directory with units.yaml / weapons.yaml / commanders.yaml
	calibrationPath string // optional calibration YAML overriding the built-in tables
	scenarioName    string // combat scenario preset name
	applyMastery    bool   // apply commander mastery bonuses
	logLevel        string // log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cev-engine",
	Short: "Combat Effectiveness Value evaluator for co-op strategy-game units",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadEngine builds the evaluator stack shared by the subcommands: dataset,
// calibration, batch evaluator, scenario.
func loadEngine() (*cev.Dataset, *cev.BatchEvaluator, *cev.CombatScenario, error) {
	dataset, err := cev.LoadDataset(dataDir)
	if err != nil {
		return nil, nil, nil, err
	}

	cal := cev.DefaultCalibration()
	if calibrationPath != "" {
		cal, err = cev.LoadCalibration(calibrationPath)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	eval, err := cev.NewEvaluator(cal)
	if err != nil {
		return nil, nil, nil, err
	}

	scenario, err := cev.PresetScenario(scenarioName)
	if err != nil {
		return nil, nil, nil, err
	}
	if applyMastery {
		scenario = scenario.WithMastery(true)
	}

	return dataset, cev.NewBatchEvaluator(eval), scenario, nil
}

// init sets up shared CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "Directory containing units.yaml, weapons.yaml, commanders.yaml")
	rootCmd.PersistentFlags().StringVar(&calibrationPath, "calibration", "", "Calibration YAML file (default: built-in v2.4 tables)")
	rootCmd.PersistentFlags().StringVar(&scenarioName, "scenario", "", "Combat scenario preset (standard, vs-armored, vs-light, vs-elite, vs-swarm, vs-mixed)")
	rootCmd.PersistentFlags().BoolVar(&applyMastery, "mastery", false, "Apply commander mastery bonuses")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(compareCmd)
}
