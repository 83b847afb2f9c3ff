package exposure

import (
	"github.com/urbanmetrics/divintseg/frame"
)

// ColBells names the value column of Bells results.
const ColBells = "bells"

// Options configures Exposure.
//
// Fields:
//   - Secondary — the group whose members the primary group is exposed
//     to. When empty, Exposure reports one column per count column other
//     than the primary group: exposure to everyone else, not a single
//     scalar.
type Options struct {
	Secondary string
}

// DefaultOptions returns the default configuration: exposure to every
// other group.
func DefaultOptions() Options { return Options{} }

// Isolation computes, per community, the likelihood that a member of
// group shares their sub-unit with another member of the same group.
// Rows sharing the same (by, over) pair are summed first. One result row
// per `by` value in first-occurrence order, value column named after the
// group. Range [0, 1]; empty sub-units and communities contribute 0.
func Isolation(t *frame.Table, group, by, over string) (*frame.Result, error) {
	coll, err := collapse(t, group, by, over)
	if err != nil {
		return nil, err
	}
	keys, vals, err := weightedLocalShare(coll, likelihoods(coll, group), by, group)
	if err != nil {
		return nil, err
	}
	res := frame.NewResult(by, group)
	for i, k := range keys {
		if err = res.AppendRow(k, vals[i]); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Bells computes Bell's adjusted isolation index per community:
// (pxx − px) / (1 − px), where pxx is the group's isolation and px its
// community-wide share. A community consisting entirely of the group has
// px == 1 and the ratio is indeterminate; the defined policy reports 1.0,
// total isolation with nobody else to be isolated from. The px == 1 case
// is detected structurally (group total equals community total), so no
// other source could slip through the substitution. An empty community
// reports 0.
func Bells(t *frame.Table, group, by, over string) (*frame.Result, error) {
	iso, err := Isolation(t, group, by, over)
	if err != nil {
		return nil, err
	}
	pxx, err := iso.Column(group)
	if err != nil {
		return nil, err
	}
	pooled, err := t.PoolBy(by)
	if err != nil {
		return nil, err
	}
	groupTotals, err := pooled.Counts(group)
	if err != nil {
		return nil, err
	}
	communityTotals := pooled.RowTotals()

	// PoolBy and Isolation order communities identically.
	res := frame.NewResult(by, ColBells)
	for i, k := range iso.Keys() {
		var v float64
		switch {
		case communityTotals[i] == 0:
			v = 0.0
		case groupTotals[i] == communityTotals[i]:
			v = 1.0
		default:
			px := groupTotals[i] / communityTotals[i]
			v = (pxx[i] - px) / (1 - px)
		}
		if err = res.AppendRow(k, v); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Exposure computes, per community, the likelihood that a member of the
// primary group shares their sub-unit with a member of another group.
// With opts.Secondary set, the result has that single column; with it
// empty, one column per other count column of the table, in table order.
// Returns frame.ErrNoCountColumns if the primary group is the only count
// column and no secondary was named.
func Exposure(t *frame.Table, primary, by, over string, opts *Options) (*frame.Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	coll, err := collapse(t, primary, by, over)
	if err != nil {
		return nil, err
	}
	var targets []string
	if o.Secondary != "" {
		if !t.HasCount(o.Secondary) {
			return nil, frame.ErrUnknownColumn
		}
		targets = []string{o.Secondary}
	} else {
		for _, n := range t.CountNames() {
			if n != primary {
				targets = append(targets, n)
			}
		}
		if len(targets) == 0 {
			return nil, frame.ErrNoCountColumns
		}
	}

	like := likelihoods(coll, primary)
	res := frame.NewResult(by, targets...)
	var keys []string
	cols := make([][]float64, len(targets))
	for i, target := range targets {
		if keys, cols[i], err = weightedLocalShare(coll, like, by, target); err != nil {
			return nil, err
		}
	}
	for i, k := range keys {
		row := make([]float64, len(targets))
		for j := range targets {
			row[j] = cols[j][i]
		}
		if err = res.AppendRow(k, row...); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// collapse validates the column arguments and sums rows per (by, over)
// pair, producing the sub-unit table the kernels run on.
func collapse(t *frame.Table, group, by, over string) (*frame.Table, error) {
	if t == nil {
		return nil, frame.ErrNilTable
	}
	if !t.HasCount(group) || !t.HasKey(by) || !t.HasKey(over) {
		return nil, frame.ErrUnknownColumn
	}
	return t.Collapse(by, over)
}

// likelihoods returns, per sub-unit, the group's share of the unit's
// total population; 0 for an empty unit.
func likelihoods(coll *frame.Table, group string) []float64 {
	counts, _ := coll.Counts(group)
	totals := coll.RowTotals()
	out := make([]float64, len(counts))
	for i := range counts {
		if totals[i] != 0 {
			out[i] = counts[i] / totals[i]
		}
	}
	return out
}

// weightedLocalShare is the kernel shared by Isolation, Bells, and
// Exposure: per community, the sum over its sub-units of
// likelihood_i × (target_i / community total of target). The second
// factor is the share of the target group's community-wide population
// living in that unit, so the sum is the chance that a random member of
// the likelihood-defining group locally encounters a member of target.
// A community holding none of the target group contributes 0 throughout.
func weightedLocalShare(coll *frame.Table, likelihood []float64, by, target string) (keys []string, vals []float64, err error) {
	targetCol, err := coll.Counts(target)
	if err != nil {
		return nil, nil, err
	}
	groups, err := coll.Partition(by)
	if err != nil {
		return nil, nil, err
	}
	keys = make([]string, len(groups))
	vals = make([]float64, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
		var targetTotal float64
		for _, r := range g.Rows {
			targetTotal += targetCol[r]
		}
		if targetTotal == 0 {
			continue
		}
		var sum float64
		for _, r := range g.Rows {
			sum += likelihood[r] * (targetCol[r] / targetTotal)
		}
		vals[i] = sum
	}
	return keys, vals, nil
}
