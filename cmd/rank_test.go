package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cev-engine/cev-engine/cev"
)

func testRanking() *cev.Ranking {
	return &cev.Ranking{
		Scenario: "vs-armored",
		Results: []*cev.EvaluationResult{
			{
				UnitID: "SiegeTank", UnitName: "Siege Tank", Commander: "Raynor",
				CEV: 142.31, CEVPerSupply: 47.44, Supply: 3,
				Breakdown: cev.Breakdown{DPSEff: 32.71, EHP: 192.5, CEff: 437.5},
			},
			{
				UnitID: "Marine", UnitName: "Marine", Commander: "Raynor",
				CEV: 61.07, CEVPerSupply: 61.07, Supply: 1,
				Breakdown: cev.Breakdown{DPSEff: 9.84, EHP: 45, CEff: 62.5},
			},
		},
		Failures: []cev.EvaluationError{
			{UnitID: "Broken", Err: errors.New("invalid unit data")},
		},
	}
}

// TestPrintRanking verifies the header line, table contents, failure lines,
// and the summary block all land in the output.
func TestPrintRanking(t *testing.T) {
	var buf bytes.Buffer
	printRanking(&buf, testRanking(), 0)
	out := buf.String()

	assert.Contains(t, out, "CEV ranking (scenario: vs-armored): 2 units, 1 failures")
	assert.Contains(t, out, "Siege Tank")
	assert.Contains(t, out, "142.31")
	assert.Contains(t, out, "Marine")
	assert.Contains(t, out, "FAILED Broken: invalid unit data")
	assert.Contains(t, out, "Summary:")
	assert.Contains(t, out, "all")
}

// TestPrintRanking_TopLimit verifies --top truncates the ranking table but
// not the summary.
func TestPrintRanking_TopLimit(t *testing.T) {
	var buf bytes.Buffer
	printRanking(&buf, testRanking(), 1)
	out := buf.String()

	assert.Contains(t, out, "Siege Tank")
	assert.NotContains(t, out, "Marine")
	// The summary block still aggregates both units.
	assert.Contains(t, out, "Summary:")
}

// TestPrintRanking_NoScenario verifies the empty scenario renders as "none".
func TestPrintRanking_NoScenario(t *testing.T) {
	r := testRanking()
	r.Scenario = ""

	var buf bytes.Buffer
	printRanking(&buf, r, 0)
	assert.True(t, strings.HasPrefix(buf.String(), "CEV ranking (scenario: none)"))
}

// TestPrintBreakdown verifies the per-weapon lines and intermediate values.
func TestPrintBreakdown(t *testing.T) {
	res := &cev.EvaluationResult{
		UnitID: "SiegeTank", UnitName: "Siege Tank", Commander: "Raynor",
		CEV: 142.31, CEVPerSupply: 47.44,
		Breakdown: cev.Breakdown{
			DPSEff: 32.71, EHP: 192.5, CEff: 437.5,
			SplashCoefficient: 1.25, OverkillPenalty: 1.0, OperatorDifficulty: 0.75,
			RangeFactor: 4.16, PopulationQuality: 1.0, PopulationTax: 37.5, GasRatio: 2.0,
			Weapons: []cev.WeaponContribution{
				{WeaponID: "SiegedGun", Damage: 70, Attacks: 1, Splash: 1.25, Period: 2.14, DPS: 40.89},
			},
		},
	}

	var buf bytes.Buffer
	printBreakdown(&buf, res)
	out := buf.String()

	assert.Contains(t, out, "Siege Tank (Raynor): CEV 142.31")
	assert.Contains(t, out, "DPS_eff 32.71 | EHP 192.50 | C_eff 437.50")
	assert.Contains(t, out, "operator 0.75")
	assert.Contains(t, out, "weapon SiegedGun: damage 70.0 x1 splash 1.25 period 2.14s -> 40.89 dps")
}
