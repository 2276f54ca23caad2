package cev

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// OverkillBracket is one step of the overkill penalty function: effective
// single-hit damage at or above Threshold incurs Penalty. Brackets are kept
// sorted by descending threshold; the first match wins.
type OverkillBracket struct {
	Threshold float64 `yaml:"threshold"`
	Penalty   float64 `yaml:"penalty"`
}

// Calibration carries the hand-tuned lookup tables and economy constants the
// resolvers read. The splash and operator-difficulty values are play-tested
// realism coefficients with no recorded derivation; they are configuration
// data, never re-derived from geometry. A Calibration is treated as read-only
// after construction and is shared freely across evaluations.
type Calibration struct {
	Version string `yaml:"version"`

	// SplashFactors maps weapon id -> area-coverage coefficient (> 1.0 for
	// splash weapons). Weapons without a splash descriptor never consult it.
	SplashFactors map[string]float64 `yaml:"splash_factors"`

	// OperatorFactors maps unit class -> operator-difficulty coefficient
	// (observed range 0.7–1.3). Missing classes resolve to 1.0 unless
	// StrictOperatorLookup is set.
	OperatorFactors map[UnitClass]float64 `yaml:"operator_factors"`

	// OverkillBrackets, descending by threshold.
	OverkillBrackets []OverkillBracket `yaml:"overkill_brackets"`

	// Economy constants.
	MineralGasRatioDefault float64 `yaml:"mineral_gas_ratio_default"`
	PopulationTaxPerSupply float64 `yaml:"population_tax_per_supply"`
	ShieldPremium          float64 `yaml:"shield_premium"`
	FlyingRadius           float64 `yaml:"flying_radius"`

	// StrictOperatorLookup disables the default-to-1.0 policy: a unit class
	// with no OperatorFactors entry then fails with
	// MissingCoefficientConfigError.
	StrictOperatorLookup bool `yaml:"strict_operator_lookup"`
}

// DefaultCalibration returns the v2.4 paper calibration. The literal splash
// and operator values come from the published table, not from a formula.
func DefaultCalibration() Calibration {
	return Calibration{
		Version: "v2.4",
		SplashFactors: map[string]float64{
			"SiegeTankSieged_Gun": 1.25,
			"Liberator_AA":        2.5,
			"Liberator_AG":        1.0,
		},
		OperatorFactors: map[UnitClass]float64{
			ClassStandard:     1.0,
			ClassMobileAttack: 1.1,
			ClassSimpleSiege:  0.9,
			ClassComplexSiege: 0.75,
			ClassAutoCast:     1.05,
		},
		OverkillBrackets: []OverkillBracket{
			{Threshold: 200, Penalty: 0.8},
			{Threshold: 150, Penalty: 0.85},
			{Threshold: 100, Penalty: 0.9},
		},
		MineralGasRatioDefault: 2.5,
		PopulationTaxPerSupply: 12.5,
		ShieldPremium:          1.4,
		FlyingRadius:           0.5,
	}
}

// LoadCalibration reads a calibration YAML file. Fields absent from the file
// keep their DefaultCalibration values, so a file may override only the
// tables it cares about.
func LoadCalibration(path string) (Calibration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Calibration{}, fmt.Errorf("reading calibration: %w", err)
	}
	cal := DefaultCalibration()
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return Calibration{}, fmt.Errorf("parsing calibration: %w", err)
	}
	if err := cal.Validate(); err != nil {
		return Calibration{}, fmt.Errorf("calibration %s: %w", path, err)
	}
	return cal, nil
}

// Validate checks the calibration's structural invariants.
func (c *Calibration) Validate() error {
	if c.PopulationTaxPerSupply < 0 {
		return fmt.Errorf("population_tax_per_supply must be >= 0, got %v", c.PopulationTaxPerSupply)
	}
	if c.ShieldPremium <= 0 {
		return fmt.Errorf("shield_premium must be > 0, got %v", c.ShieldPremium)
	}
	if c.FlyingRadius <= 0 {
		return fmt.Errorf("flying_radius must be > 0, got %v", c.FlyingRadius)
	}
	if c.MineralGasRatioDefault < 0 {
		return fmt.Errorf("mineral_gas_ratio_default must be >= 0, got %v", c.MineralGasRatioDefault)
	}
	for class := range c.OperatorFactors {
		if !ValidUnitClasses[class] {
			return fmt.Errorf("operator_factors: unknown unit class %q", string(class))
		}
	}
	for id, factor := range c.SplashFactors {
		if factor <= 0 {
			return fmt.Errorf("splash_factors[%s] must be > 0, got %v", id, factor)
		}
	}
	// The penalty must be monotonic non-increasing in damage: brackets are
	// descending by threshold, penalties ascending toward 1.0.
	prevThreshold := -1.0
	prevPenalty := 0.0
	for i, b := range c.OverkillBrackets {
		if b.Penalty <= 0 || b.Penalty > 1 {
			return fmt.Errorf("overkill_brackets[%d]: penalty %v outside (0,1]", i, b.Penalty)
		}
		if i > 0 {
			if b.Threshold >= prevThreshold {
				return fmt.Errorf("overkill_brackets[%d]: thresholds must be strictly descending", i)
			}
			if b.Penalty < prevPenalty {
				return fmt.Errorf("overkill_brackets[%d]: penalties must not decrease as thresholds fall", i)
			}
		}
		prevThreshold = b.Threshold
		prevPenalty = b.Penalty
	}
	return nil
}
