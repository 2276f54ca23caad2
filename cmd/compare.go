package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cev-engine/cev-engine/cev"
)

// compareCmd prints the pairwise CEV ratio of two units with both breakdowns.
var compareCmd = &cobra.Command{
	Use:   "compare UNIT_A UNIT_B",
	Short: "Compare two units by CEV ratio",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, batch, scenario, err := loadEngine()
		if err != nil {
			return err
		}

		unitA, ok := dataset.Unit(args[0])
		if !ok {
			return fmt.Errorf("unknown unit %q", args[0])
		}
		unitB, ok := dataset.Unit(args[1])
		if !ok {
			return fmt.Errorf("unknown unit %q", args[1])
		}

		ratio, err := batch.Compare(unitA, unitB, dataset, dataset, scenario)
		if err != nil {
			return err
		}

		ranking := batch.EvaluateAll([]cev.UnitRecord{unitA, unitB}, dataset, dataset, scenario)
		for _, res := range ranking.Results {
			printBreakdown(os.Stdout, res)
		}
		fmt.Printf("\nCEV ratio %s : %s = %.3f\n", unitA.ID, unitB.ID, ratio)
		return nil
	},
}

// printBreakdown dumps one evaluation result with every intermediate value.
func printBreakdown(out io.Writer, res *cev.EvaluationResult) {
	fmt.Fprintf(out, "\n%s (%s): CEV %.2f, CEV/supply %.2f\n", res.UnitName, res.Commander, res.CEV, res.CEVPerSupply)
	b := res.Breakdown
	fmt.Fprintf(out, "  DPS_eff %.2f | EHP %.2f | C_eff %.2f\n", b.DPSEff, b.EHP, b.CEff)
	fmt.Fprintf(out, "  splash %.2f | overkill %.2f | operator %.2f | range %.2f | mu %.2f | tax %.1f | alpha %.1f\n",
		b.SplashCoefficient, b.OverkillPenalty, b.OperatorDifficulty, b.RangeFactor,
		b.PopulationQuality, b.PopulationTax, b.GasRatio)
	for _, w := range b.Weapons {
		fmt.Fprintf(out, "  weapon %s: damage %.1f x%d splash %.2f period %.2fs -> %.2f dps\n",
			w.WeaponID, w.Damage, w.Attacks, w.Splash, w.Period, w.DPS)
	}
}
