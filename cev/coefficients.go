package cev

import "math"

// Coefficient resolvers. Each one is a pure function of its arguments and
// the (read-only) calibration: no side effects, no shared mutable state, so
// calls may run in any order or in parallel.

// SplashCoefficient resolves the area-coverage multiplier for a weapon.
// Weapons without a splash descriptor always score 1.0. Splash weapons take
// the calibrated per-weapon constant; a splash weapon missing from the table
// also scores 1.0 rather than a guessed geometric value.
func (c *Calibration) SplashCoefficient(w *WeaponRecord) float64 {
	if !w.HasSplash() {
		return 1.0
	}
	if factor, ok := c.SplashFactors[w.ID]; ok {
		return factor
	}
	return 1.0
}

// OverkillPenalty resolves the wasted-damage penalty for an effective
// single-hit damage value (base damage × splash coefficient). The bracket
// lower edges are inclusive; damage below every bracket incurs no penalty.
func (c *Calibration) OverkillPenalty(effectiveHitDamage float64) float64 {
	for _, b := range c.OverkillBrackets {
		if effectiveHitDamage >= b.Threshold {
			return b.Penalty
		}
	}
	return 1.0
}

// OperatorDifficulty resolves the control-scheme coefficient for a unit's
// class. Unconfigured classes default to 1.0; with StrictOperatorLookup the
// default policy is disabled and the lookup fails instead.
func (c *Calibration) OperatorDifficulty(u *UnitRecord) (float64, error) {
	class := u.ClassOrDefault()
	if factor, ok := c.OperatorFactors[class]; ok {
		return factor, nil
	}
	if c.StrictOperatorLookup {
		return 0, &MissingCoefficientConfigError{Class: class}
	}
	return 1.0, nil
}

// RangeFactor resolves sqrt(range / effective collision radius). Flying
// units substitute the calibrated constant radius because air collision
// radii are not comparable to ground radii for range-advantage purposes.
func (c *Calibration) RangeFactor(u *UnitRecord, w *WeaponRecord) (float64, error) {
	radius := u.Radius
	if u.Flying {
		radius = c.FlyingRadius
	}
	if radius <= 0 {
		return 0, &InvalidRangeError{UnitID: u.ID, Radius: radius}
	}
	return math.Sqrt(w.Range / radius), nil
}

// GasRatio resolves the mineral:gas exchange ratio α for a commander,
// falling back to the calibrated default when the profile carries none.
func (c *Calibration) GasRatio(cm *CommanderProfile) float64 {
	if cm.MineralGasRatio > 0 {
		return cm.MineralGasRatio
	}
	return c.MineralGasRatioDefault
}

// PopulationTax resolves the amortized population-infrastructure cost for a
// unit. Tax-exempt commanders contribute zero regardless of supply.
func (c *Calibration) PopulationTax(u *UnitRecord, cm *CommanderProfile) float64 {
	if cm.SupplyTaxExempt {
		return 0
	}
	return c.PopulationTaxPerSupply * u.Supply
}

// PopulationQuality resolves the army-size normalization multiplier μ:
// 200 / population cap, i.e. 2.0 for 100-cap commanders and 1.0 at 200.
func (c *Calibration) PopulationQuality(cm *CommanderProfile) (float64, error) {
	if cm.PopulationCap <= 0 {
		return 0, &InvalidUnitDataError{ID: cm.ID, Field: "population_cap", Value: cm.PopulationCap}
	}
	return 200.0 / cm.PopulationCap, nil
}
