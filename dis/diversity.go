package dis

import (
	"gonum.org/v1/gonum/floats"

	"github.com/urbanmetrics/divintseg/frame"
)

// DiversityOfCounts returns the Blau (Gini–Simpson) index of a single
// community given as a flat vector of non-negative subgroup counts.
// A zero-population vector has diversity 0.0: an empty population holds
// no diversity rather than an indeterminate one.
func DiversityOfCounts(counts []float64) float64 {
	total := floats.Sum(counts)
	if total == 0 {
		return 0.0
	}
	var score float64
	for _, c := range counts {
		p := c / total
		score += p * (1 - p)
	}
	return score
}

// Diversity returns the Blau index of each row of the table, treating
// every row as an independent community.
func Diversity(t *frame.Table) ([]float64, error) {
	scores, _, err := DiversityWithTotals(t)
	return scores, err
}

// DiversityWithTotals is the batch form of the kernel: per-row diversity
// scores together with per-row total populations. Callers aggregating
// diversity need the totals as weights, and the sums are already paid for
// here.
func DiversityWithTotals(t *frame.Table) (scores, totals []float64, err error) {
	if t == nil {
		return nil, nil, frame.ErrNilTable
	}
	names := t.CountNames()
	cols := make([][]float64, len(names))
	for i, n := range names {
		if cols[i], err = t.Counts(n); err != nil {
			return nil, nil, err
		}
	}
	totals = t.RowTotals()
	scores = make([]float64, t.Rows())
	row := make([]float64, len(names))
	for r := range scores {
		for i := range cols {
			row[i] = cols[i][r]
		}
		scores[r] = DiversityOfCounts(row)
	}
	return scores, totals, nil
}
