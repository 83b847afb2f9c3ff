// Package exposure measures who the members of a subgroup actually live
// next to, across a two-level (community, sub-unit) hierarchy.
//
// Isolation is the likelihood that a member of a group, drawn uniformly
// from a community, shares their sub-unit with fellow members of the same
// group. Exposure is the same likelihood toward a different, specified
// group — or toward every other group at once when none is specified.
// Bell's index rescales isolation by the group's community-wide share, so
// that 0 means no more isolated than random mixing would make them.
//
//	// rows: region, subregion, then counts for groups S and T
//	iso, err := exposure.Isolation(tb, "S", "region", "subregion")
//	exp, err := exposure.Exposure(tb, "S", "region", "subregion", nil)
//
// All three metrics share one kernel: the sum, over a community's
// sub-units, of a per-unit likelihood multiplied by the target group's
// share of its community-wide population in that unit. Keeping the kernel
// in one place keeps the zero-population behavior of the three metrics
// identical: empty sub-units and empty communities contribute 0, never an
// indeterminate.
package exposure
