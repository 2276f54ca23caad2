package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/cev-engine/cev-engine/cev"
)

var (
	rankCommander string // restrict ranking to one commander
	rankTop       int    // number of rows to print (0 = all)
)

// rankCmd evaluates every unit in the dataset and prints the ordered ranking.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank all units by Combat Effectiveness Value",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataset, batch, scenario, err := loadEngine()
		if err != nil {
			return err
		}

		units := dataset.Units()
		if rankCommander != "" {
			units = dataset.UnitsFor(rankCommander)
			if len(units) == 0 {
				return fmt.Errorf("no units found for commander %q", rankCommander)
			}
		}

		ranking := batch.EvaluateAll(units, dataset, dataset, scenario)
		printRanking(os.Stdout, ranking, rankTop)
		return nil
	},
}

// printRanking renders the ranking table, failures, and the summary block.
func printRanking(out io.Writer, ranking *cev.Ranking, top int) {
	scenario := ranking.Scenario
	if scenario == "" {
		scenario = "none"
	}
	fmt.Fprintf(out, "CEV ranking (scenario: %s): %d units, %d failures\n",
		scenario, len(ranking.Results), len(ranking.Failures))

	table := tablewriter.NewWriter(out)
	table.Header("#", "Unit", "Commander", "CEV", "CEV/supply", "DPS_eff", "EHP", "C_eff")
	for i, res := range ranking.Results {
		if top > 0 && i >= top {
			break
		}
		table.Append(
			fmt.Sprintf("%d", i+1),
			res.UnitName,
			res.Commander,
			fmt.Sprintf("%.2f", res.CEV),
			fmt.Sprintf("%.2f", res.CEVPerSupply),
			fmt.Sprintf("%.2f", res.Breakdown.DPSEff),
			fmt.Sprintf("%.2f", res.Breakdown.EHP),
			fmt.Sprintf("%.2f", res.Breakdown.CEff),
		)
	}
	table.Render()

	for _, failure := range ranking.Failures {
		fmt.Fprintf(out, "  FAILED %s: %v\n", failure.UnitID, failure.Err)
	}

	if rows := ranking.Summary(); rows != nil {
		fmt.Fprintln(out, "\nSummary:")
		summary := tablewriter.NewWriter(out)
		summary.Header("Commander", "Count", "Mean", "StdDev", "P50", "P90", "Max")
		for _, row := range rows {
			summary.Append(
				row.Commander,
				fmt.Sprintf("%d", row.Count),
				fmt.Sprintf("%.2f", row.Mean),
				fmt.Sprintf("%.2f", row.StdDev),
				fmt.Sprintf("%.2f", row.P50),
				fmt.Sprintf("%.2f", row.P90),
				fmt.Sprintf("%.2f", row.Max),
			)
		}
		summary.Render()
	}
}

func init() {
	rankCmd.Flags().StringVar(&rankCommander, "commander", "", "Rank only this commander's units")
	rankCmd.Flags().IntVar(&rankTop, "top", 0, "Print only the top N rows (0 = all)")
}
