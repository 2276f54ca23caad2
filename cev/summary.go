package cev

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SummaryRow aggregates CEV statistics for one commander (or the whole
// ranking, under the pseudo-commander "all").
type SummaryRow struct {
	Commander string
	Count     int
	Mean      float64
	StdDev    float64
	P50       float64
	P90       float64
	Max       float64
}

// Summary computes per-commander and overall CEV statistics over the
// ranking's successful results. Rows are ordered by commander id with the
// overall row first.
func (r *Ranking) Summary() []SummaryRow {
	if len(r.Results) == 0 {
		return nil
	}

	byCommander := make(map[string][]float64)
	var all []float64
	for _, res := range r.Results {
		byCommander[res.Commander] = append(byCommander[res.Commander], res.CEV)
		all = append(all, res.CEV)
	}

	rows := []SummaryRow{summarize("all", all)}
	ids := make([]string, 0, len(byCommander))
	for id := range byCommander {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		rows = append(rows, summarize(id, byCommander[id]))
	}
	return rows
}

// summarize reduces one CEV sample to a SummaryRow. gonum's Quantile
// requires an ascending sample; the input slice is copied first so ranking
// results stay untouched.
func summarize(commander string, sample []float64) SummaryRow {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	sort.Float64s(sorted)

	row := SummaryRow{
		Commander: commander,
		Count:     len(sorted),
		Mean:      stat.Mean(sorted, nil),
		P50:       stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P90:       stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Max:       sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		row.StdDev = stat.StdDev(sorted, nil)
	}
	return row
}
