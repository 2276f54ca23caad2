package cev

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// EvaluationError is the per-unit failure record a batch call yields in
// place of an EvaluationResult. The failing unit never aborts the batch.
type EvaluationError struct {
	UnitID string
	Err    error
}

func (e EvaluationError) Error() string {
	return fmt.Sprintf("unit %s: %v", e.UnitID, e.Err)
}

// Unwrap exposes the underlying evaluation error to errors.Is / errors.As.
func (e EvaluationError) Unwrap() error {
	return e.Err
}

// Ranking is the ordered outcome of one batch call: successes sorted by CEV
// descending (ties broken by unit id ascending), plus the per-unit failures.
type Ranking struct {
	Scenario string
	Results  []*EvaluationResult
	Failures []EvaluationError
}

// BatchEvaluator applies an Evaluator across unit collections. It holds no
// mutable state of its own: the resolver memo cache lives inside one call
// and is discarded with it, so concurrent batch invocations never share or
// reuse stale cross-scenario coefficients.
type BatchEvaluator struct {
	eval *Evaluator
}

// NewBatchEvaluator wraps an evaluator for batch use.
func NewBatchEvaluator(eval *Evaluator) *BatchEvaluator {
	return &BatchEvaluator{eval: eval}
}

// batchCache memoizes evaluation results by unit id for the duration of a
// single batch invocation.
type batchCache map[string]*EvaluationResult

func (b *BatchEvaluator) evaluateCached(cache batchCache, unit UnitRecord, weapons WeaponIndex, commanders CommanderIndex, scenario *CombatScenario) (*EvaluationResult, error) {
	if res, ok := cache[unit.ID]; ok {
		return res, nil
	}
	commander, ok := commanders.Commander(unit.Commander)
	if !ok {
		// Dangling commander ids are caller errors: surfaced, never defaulted.
		return nil, fmt.Errorf("unit %q: dangling commander reference %q", unit.ID, unit.Commander)
	}
	res, err := b.eval.Evaluate(unit, weapons, commander, scenario)
	if err != nil {
		return nil, err
	}
	cache[unit.ID] = res
	return res, nil
}

// EvaluateAll scores every unit under one scenario (nil for none) and
// returns a deterministically ordered ranking. Per-unit errors are collected
// as failure records; they never abort the pass. Re-running on the same
// collection in any input order produces the same output ordering.
func (b *BatchEvaluator) EvaluateAll(units []UnitRecord, weapons WeaponIndex, commanders CommanderIndex, scenario *CombatScenario) *Ranking {
	cache := make(batchCache, len(units))
	ranking := &Ranking{}
	if scenario != nil {
		ranking.Scenario = scenario.Name
	}

	for _, unit := range units {
		res, err := b.evaluateCached(cache, unit, weapons, commanders, scenario)
		if err != nil {
			logrus.Warnf("batch: unit %s failed evaluation: %v", unit.ID, err)
			ranking.Failures = append(ranking.Failures, EvaluationError{UnitID: unit.ID, Err: err})
			continue
		}
		ranking.Results = append(ranking.Results, res)
	}

	sort.Slice(ranking.Results, func(i, j int) bool {
		a, c := ranking.Results[i], ranking.Results[j]
		if a.CEV != c.CEV {
			return a.CEV > c.CEV
		}
		return a.UnitID < c.UnitID
	})
	sort.Slice(ranking.Failures, func(i, j int) bool {
		return ranking.Failures[i].UnitID < ranking.Failures[j].UnitID
	})
	return ranking
}

// Compare returns the pairwise CEV ratio a/b under one scenario, used to
// validate calibration against observed engagement outcomes. Both units are
// evaluated through one per-invocation cache, so shared coefficients are not
// recomputed when the units repeat or share a commander profile.
func (b *BatchEvaluator) Compare(unitA, unitB UnitRecord, weapons WeaponIndex, commanders CommanderIndex, scenario *CombatScenario) (float64, error) {
	cache := make(batchCache, 2)
	resA, err := b.evaluateCached(cache, unitA, weapons, commanders, scenario)
	if err != nil {
		return 0, fmt.Errorf("compare: %w", err)
	}
	resB, err := b.evaluateCached(cache, unitB, weapons, commanders, scenario)
	if err != nil {
		return 0, fmt.Errorf("compare: %w", err)
	}
	if resB.CEV == 0 {
		return 0, &InvalidUnitDataError{ID: unitB.ID, Field: "cev", Value: 0}
	}
	return resA.CEV / resB.CEV, nil
}
