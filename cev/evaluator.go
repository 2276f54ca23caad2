package cev

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// WeaponContribution records one active weapon's share of DPS_eff, kept for
// auditability of multi-weapon units.
type WeaponContribution struct {
	WeaponID    string
	Damage      float64 // base damage after scenario bonus
	Attacks     int
	Splash      float64
	Period      float64 // after attack-speed mastery, if applied
	DPS         float64
	SingleHit   float64 // base damage × splash, the overkill input
	WeaponRange float64
}

// Breakdown carries every intermediate value of one evaluation.
type Breakdown struct {
	DPSEff             float64
	EHP                float64
	CEff               float64
	SplashCoefficient  float64 // of the hardest-hitting weapon
	OverkillPenalty    float64
	OperatorDifficulty float64
	RangeFactor        float64
	PopulationQuality  float64
	PopulationTax      float64
	GasRatio           float64
	Weapons            []WeaponContribution
}

// EvaluationResult is the outcome of scoring one unit. Created fresh per
// call, never mutated afterward, owned by the caller.
type EvaluationResult struct {
	UnitID     string
	UnitName   string
	Commander  string
	WeaponMode string
	Scenario   string
	Supply     float64

	CEV          float64
	CEVPerSupply float64
	Breakdown    Breakdown
}

// Evaluator combines base stats and resolved coefficients into CEV scores.
// The calibration is injected at construction and treated as read-only, so
// several evaluators with different calibrations can coexist in one process.
type Evaluator struct {
	cal Calibration
}

// NewEvaluator builds an evaluator over the given calibration.
func NewEvaluator(cal Calibration) (*Evaluator, error) {
	if err := cal.Validate(); err != nil {
		return nil, fmt.Errorf("evaluator calibration: %w", err)
	}
	return &Evaluator{cal: cal}, nil
}

// Calibration returns a copy of the evaluator's calibration.
func (e *Evaluator) Calibration() Calibration {
	return e.cal
}

// Evaluate scores a unit in its default weapon configuration. A nil scenario
// means no target-composition context and no mastery bonuses.
func (e *Evaluator) Evaluate(unit UnitRecord, weapons WeaponIndex, commander CommanderProfile, scenario *CombatScenario) (*EvaluationResult, error) {
	return e.EvaluateMode(unit, "", weapons, commander, scenario)
}

// EvaluateMode scores a unit in the named mode: the mode's stat modifiers
// apply to a copy of the unit and its weapon configuration selects the
// active weapons. The inputs are never mutated.
func (e *Evaluator) EvaluateMode(unit UnitRecord, mode string, weapons WeaponIndex, commander CommanderProfile, scenario *CombatScenario) (*EvaluationResult, error) {
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	if err := commander.Validate(); err != nil {
		return nil, err
	}

	weaponMode := ""
	if mode != "" {
		m, ok := unit.Mode(mode)
		if !ok {
			return nil, fmt.Errorf("unit %q: unknown mode %q", unit.ID, mode)
		}
		modified, err := unit.WithMode(mode)
		if err != nil {
			return nil, err
		}
		unit = modified
		weaponMode = m.WeaponMode
		if weaponMode == "" {
			weaponMode = mode
		}
		if unit.Life <= 0 {
			return nil, &InvalidUnitDataError{ID: unit.ID, Field: "life", Value: unit.Life}
		}
		if unit.Armor <= -10 {
			return nil, &InvalidUnitDataError{ID: unit.ID, Field: "armor", Value: unit.Armor}
		}
	}

	refs := unit.ActiveWeapons(weaponMode)
	if len(refs) == 0 && !unit.NonCombat {
		return nil, &InvalidUnitDataError{ID: unit.ID, Field: "weapons", Value: 0}
	}

	applyMastery := scenario != nil && scenario.ApplyMastery

	// Step 1: DPS_eff summed across all active weapons. The overkill input
	// and the range factor take the hardest-hitting and the longest-ranged
	// active weapon respectively.
	var (
		dpsEff        float64
		maxSingleHit  float64
		bestSplash    = 1.0
		rangeWeapon   *WeaponRecord
		contributions []WeaponContribution
	)
	for _, ref := range refs {
		w, ok := weapons.Weapon(ref.WeaponID)
		if !ok {
			return nil, fmt.Errorf("unit %q: dangling weapon reference %q", unit.ID, ref.WeaponID)
		}
		if err := w.Validate(); err != nil {
			return nil, err
		}

		damage := w.Damage
		if scenario != nil {
			damage += w.BonusAgainst(scenario.TargetAttributes)
		}
		period := w.Period
		if applyMastery {
			period = masteredPeriod(period, &commander)
		}
		splash := e.cal.SplashCoefficient(&w)

		dps := damage * float64(w.Attacks) * splash / period
		dpsEff += dps

		singleHit := w.Damage * splash
		if singleHit > maxSingleHit {
			maxSingleHit = singleHit
			bestSplash = splash
		}
		if rangeWeapon == nil || w.Range > rangeWeapon.Range {
			wCopy := w
			rangeWeapon = &wCopy
		}

		contributions = append(contributions, WeaponContribution{
			WeaponID:    w.ID,
			Damage:      damage,
			Attacks:     w.Attacks,
			Splash:      splash,
			Period:      period,
			DPS:         dps,
			SingleHit:   singleHit,
			WeaponRange: w.Range,
		})
	}

	// Step 2: EHP = armor-mitigated life + shield value.
	life := unit.Life
	shieldPremium := e.cal.ShieldPremium
	if applyMastery {
		life = masteredLife(&unit, &commander)
		shieldPremium = masteredShieldPremium(shieldPremium, &commander)
	}
	hpEff := life / (1 - unit.Armor/(unit.Armor+10))
	ehp := hpEff + unit.Shields*shieldPremium

	// Step 3: effective cost.
	alpha := e.cal.GasRatio(&commander)
	tax := e.cal.PopulationTax(&unit, &commander)
	cEff := unit.Minerals + alpha*unit.Vespene + tax
	if cEff <= 0 {
		return nil, &InvalidUnitDataError{ID: unit.ID, Field: "effective_cost", Value: cEff}
	}

	// Remaining coefficients.
	overkill := e.cal.OverkillPenalty(maxSingleHit)
	omega, err := e.cal.OperatorDifficulty(&unit)
	if err != nil {
		return nil, err
	}
	mu, err := e.cal.PopulationQuality(&commander)
	if err != nil {
		return nil, err
	}
	var fRange float64
	if rangeWeapon != nil {
		fRange, err = e.cal.RangeFactor(&unit, rangeWeapon)
		if err != nil {
			return nil, err
		}
	}

	// Step 4: the composite score.
	cev := dpsEff * overkill * ehp * omega * fRange / cEff * mu
	cevPerSupply := cev / (unit.Supply * mu)

	scenarioName := ""
	if scenario != nil {
		scenarioName = scenario.Name
	}
	logrus.Debugf("evaluated %s (%s): CEV=%.2f DPS_eff=%.2f EHP=%.2f C_eff=%.2f",
		unit.ID, scenarioName, cev, dpsEff, ehp, cEff)

	return &EvaluationResult{
		UnitID:       unit.ID,
		UnitName:     unit.Name,
		Commander:    commander.ID,
		WeaponMode:   weaponMode,
		Scenario:     scenarioName,
		Supply:       unit.Supply,
		CEV:          cev,
		CEVPerSupply: cevPerSupply,
		Breakdown: Breakdown{
			DPSEff:             dpsEff,
			EHP:                ehp,
			CEff:               cEff,
			SplashCoefficient:  bestSplash,
			OverkillPenalty:    overkill,
			OperatorDifficulty: omega,
			RangeFactor:        fRange,
			PopulationQuality:  mu,
			PopulationTax:      tax,
			GasRatio:           alpha,
			Weapons:            contributions,
		},
	}, nil
}
