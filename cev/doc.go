// Package cev implements the Combat Effectiveness Value (CEV) evaluation
// engine: a closed-form scoring model for co-op strategy-game combat units.
//
// # Reading Guide
//
// Start with these three files to understand the scoring pipeline:
//   - record.go: UnitRecord / WeaponRecord / CommanderProfile value objects
//   - coefficients.go: the pure coefficient resolvers (splash, overkill,
//     operator difficulty, range factor, economy)
//   - evaluator.go: the formula pipeline that combines base stats and
//     resolved coefficients into a CEV score with a full breakdown
//
// # Architecture
//
// The engine is computation-only. A Calibration (calibration.go) carries the
// hand-tuned lookup tables and economy constants; it is injected into an
// Evaluator at construction so several calibrations (e.g. different balance
// patches) can coexist in one process. BatchEvaluator (batch.go) applies the
// evaluator across a unit collection, collects per-unit failures without
// aborting, and produces a deterministically ordered Ranking. Dataset
// (dataset.go) is the YAML-backed loader that supplies validated records.
//
// Every resolver and the evaluator are pure: identical inputs yield
// bit-identical outputs, and no call mutates its arguments. The only mutable
// state is the per-batch memo cache, which is created inside one
// BatchEvaluator call and discarded with it.
package cev
