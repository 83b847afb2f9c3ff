package dis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/urbanmetrics/divintseg/frame"
)

// Column names of the results produced by this package.
const (
	ColDiversity   = "diversity"
	ColIntegration = "integration"
	ColSegregation = "segregation"
)

// Options configures the grouped aggregations.
//
// Fields:
//   - Over           — optional key column naming the inner aggregation
//     units. When set, rows sharing the same (by, Over) pair are summed
//     before any diversity is computed (nested partition). When empty,
//     every row is its own inner unit (flat partition).
//   - AddSegregation — DI only: append a segregation column,
//     1 − integration.
//   - DropNonNumeric — remove key columns other than `by` and Over before
//     computing. Useful when the table carries passenger columns naming
//     other aggregation levels. A key the caller named is never dropped.
type Options struct {
	Over           string
	AddSegregation bool
	DropNonNumeric bool
}

// DefaultOptions returns the default configuration: flat partition, no
// segregation column, keep all key columns.
func DefaultOptions() Options { return Options{} }

// Integration computes the integration of each community: the
// population-weighted mean of the diversity of its inner aggregation
// units. One result row per distinct value of `by`, in first-occurrence
// order, column "integration". An empty `by` treats the whole table as a
// single community. A community with zero total population has
// integration 0.0 by convention.
func Integration(t *frame.Table, by string, opts *Options) (*frame.Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	inner, err := innerUnits(t, by, o)
	if err != nil {
		return nil, err
	}
	scores, totals, err := DiversityWithTotals(inner)
	if err != nil {
		return nil, err
	}
	groups, err := inner.Partition(by)
	if err != nil {
		return nil, err
	}
	res := frame.NewResult(resultKey(by), ColIntegration)
	for _, g := range groups {
		if err = res.AppendRow(g.Key, integrationOfGroup(g, scores, totals)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Segregation is the exact complement of Integration: one row per `by`
// value, column "segregation", with segregation + integration = 1 for
// every community by construction.
func Segregation(t *frame.Table, by string, opts *Options) (*frame.Result, error) {
	integ, err := Integration(t, by, opts)
	if err != nil {
		return nil, err
	}
	col, err := integ.Column(ColIntegration)
	if err != nil {
		return nil, err
	}
	res := frame.NewResult(integ.KeyName(), ColSegregation)
	for i, k := range integ.Keys() {
		if err = res.AppendRow(k, 1.0-col[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// integrationOfGroup folds one community's inner units into its
// integration score. Zero-population inner units carry zero weight and
// drop out of the mean naturally; a community whose every unit is empty
// short-circuits to 0.0 before the weighted mean could divide by a zero
// weight sum.
func integrationOfGroup(g frame.Group, scores, totals []float64) float64 {
	divs := make([]float64, len(g.Rows))
	weights := make([]float64, len(g.Rows))
	for i, r := range g.Rows {
		divs[i] = scores[r]
		weights[i] = totals[r]
	}
	if floats.Sum(weights) == 0 {
		return 0.0
	}
	return stat.Mean(divs, weights)
}

// innerUnits validates the grouping columns, applies the DropNonNumeric
// policy, and materializes the inner aggregation units: collapsed by
// (by, Over) when Over is set, the rows themselves otherwise.
func innerUnits(t *frame.Table, by string, o Options) (*frame.Table, error) {
	if t == nil {
		return nil, frame.ErrNilTable
	}
	if by != "" && !t.HasKey(by) {
		return nil, frame.ErrUnknownColumn
	}
	if o.Over != "" && !t.HasKey(o.Over) {
		return nil, frame.ErrUnknownColumn
	}
	if o.DropNonNumeric {
		t = t.DropKeysExcept(by, o.Over)
	}
	if o.Over == "" {
		return t, nil
	}
	return t.Collapse(by, o.Over)
}

// resultKey names the result's key column: the grouping column, or a
// synthetic community key when the whole table was one community.
func resultKey(by string) string {
	if by == "" {
		return "community"
	}
	return by
}
