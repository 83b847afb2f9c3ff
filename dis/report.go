package dis

import "github.com/urbanmetrics/divintseg/frame"

// DI reports diversity and integration of each community side by side,
// with an optional segregation column.
//
// Diversity here is the macro diversity of the whole community: all rows
// of a `by` group are pooled into one row, ignoring any inner structure,
// and the kernel runs on the pooled counts. Integration comes from
// Integration with the same `by` and Over, so both columns share one
// partition assignment. The two can diverge arbitrarily: a community of
// internally homogeneous sub-units is diverse in the pooled view and has
// integration 0 — no ordering between the columns is guaranteed.
func DI(t *frame.Table, by string, opts *Options) (*frame.Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
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

	pooled, err := t.PoolBy(by)
	if err != nil {
		return nil, err
	}
	divs, _, err := DiversityWithTotals(pooled)
	if err != nil {
		return nil, err
	}

	integ, err := Integration(t, by, &Options{Over: o.Over})
	if err != nil {
		return nil, err
	}
	ints, err := integ.Column(ColIntegration)
	if err != nil {
		return nil, err
	}

	columns := []string{ColDiversity, ColIntegration}
	if o.AddSegregation {
		columns = append(columns, ColSegregation)
	}
	res := frame.NewResult(integ.KeyName(), columns...)
	// PoolBy and Partition share first-occurrence order, so row i of the
	// pooled table is the community of row i of the integration result.
	for i, k := range integ.Keys() {
		row := []float64{divs[i], ints[i]}
		if o.AddSegregation {
			row = append(row, 1.0-ints[i])
		}
		if err = res.AppendRow(k, row...); err != nil {
			return nil, err
		}
	}
	return res, nil
}
