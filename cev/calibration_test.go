package cev

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultCalibration_Valid verifies the shipped v2.4 tables pass their
// own validation.
func TestDefaultCalibration_Valid(t *testing.T) {
	cal := DefaultCalibration()
	assert.NoError(t, cal.Validate())
	assert.Equal(t, "v2.4", cal.Version)
	assert.Equal(t, 12.5, cal.PopulationTaxPerSupply)
	assert.Equal(t, 1.4, cal.ShieldPremium)
	assert.Equal(t, 0.5, cal.FlyingRadius)
	assert.Equal(t, 1.25, cal.SplashFactors["SiegeTankSieged_Gun"])
	assert.Equal(t, 0.75, cal.OperatorFactors[ClassComplexSiege])
}

// TestLoadCalibration_PartialOverride verifies a file overriding only one
// table keeps the defaults everywhere else.
func TestLoadCalibration_PartialOverride(t *testing.T) {
	// GIVEN a calibration file that only retunes the shield premium and one
	// splash factor
	path := filepath.Join(t.TempDir(), "calibration.yaml")
	content := `
version: v2.5-rc1
shield_premium: 1.5
splash_factors:
  Liberator_AA: 2.2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	// WHEN loaded
	cal, err := LoadCalibration(path)
	assert.NoError(t, err)

	// THEN the overridden fields change and the rest keep their defaults
	assert.Equal(t, "v2.5-rc1", cal.Version)
	assert.Equal(t, 1.5, cal.ShieldPremium)
	assert.Equal(t, 2.2, cal.SplashFactors["Liberator_AA"])
	assert.Equal(t, 12.5, cal.PopulationTaxPerSupply)
	assert.Equal(t, 2.5, cal.MineralGasRatioDefault)
	assert.Len(t, cal.OverkillBrackets, 3)
}

// TestLoadCalibration_Errors covers missing files, malformed YAML, and
// content that fails validation.
func TestLoadCalibration_Errors(t *testing.T) {
	_, err := LoadCalibration(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("{not yaml: ["), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadCalibration(bad)
	assert.Error(t, err)

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("shield_premium: -1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadCalibration(invalid)
	assert.ErrorContains(t, err, "shield_premium")
}

// TestCalibration_ValidateRejects walks the structural invariants.
func TestCalibration_ValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Calibration)
	}{
		{"negative population tax", func(c *Calibration) { c.PopulationTaxPerSupply = -1 }},
		{"zero shield premium", func(c *Calibration) { c.ShieldPremium = 0 }},
		{"zero flying radius", func(c *Calibration) { c.FlyingRadius = 0 }},
		{"negative gas ratio default", func(c *Calibration) { c.MineralGasRatioDefault = -2.5 }},
		{"unknown operator class", func(c *Calibration) { c.OperatorFactors["hero-mode"] = 1.2 }},
		{"non-positive splash factor", func(c *Calibration) { c.SplashFactors["BadGun"] = 0 }},
		{"penalty above one", func(c *Calibration) { c.OverkillBrackets[0].Penalty = 1.1 }},
		{"zero penalty", func(c *Calibration) { c.OverkillBrackets[2].Penalty = 0 }},
		{"thresholds not descending", func(c *Calibration) { c.OverkillBrackets[1].Threshold = 250 }},
		{"penalties decrease down the table", func(c *Calibration) { c.OverkillBrackets[2].Penalty = 0.5 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cal := DefaultCalibration()
			tc.mutate(&cal)
			assert.Error(t, cal.Validate())
		})
	}
}

// TestCalibration_EmptyBracketsValid verifies a bracket-free calibration is
// legal: the penalty function is then constant 1.0.
func TestCalibration_EmptyBracketsValid(t *testing.T) {
	cal := DefaultCalibration()
	cal.OverkillBrackets = nil
	assert.NoError(t, cal.Validate())
	assert.Equal(t, 1.0, cal.OverkillPenalty(1000))
}
