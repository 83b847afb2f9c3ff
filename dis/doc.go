// Package dis computes diversity, integration, and segregation of
// communities of population counts.
//
// Diversity is the Blau (Gini–Simpson) index: the probability that two
// randomly chosen members of a population belong to different subgroups.
// For subgroup fractions p_i it is Σ p_i·(1−p_i), ranging over [0, 1−1/k]
// for k subgroups.
//
// Integration is the population-weighted average of the diversity of a
// community's inner aggregation units (e.g. blocks within a block group):
// high when subgroups are well mixed at the fine-grained level, even if
// the community as a whole is diverse only on paper. Segregation is its
// exact complement, 1 − integration.
//
// Two entry points cover the kernel's dual contract: DiversityOfCounts
// takes a flat count vector and returns one scalar; Diversity takes a
// *frame.Table and returns one score per row.
//
//	tb, _ := frame.New([]string{"region"}, []string{"A", "B", "C"})
//	_ = tb.AppendRow([]string{"X"}, []float64{10, 10, 10})
//	_ = tb.AppendRow([]string{"X"}, []float64{100, 0, 0})
//
//	res, err := dis.DI(tb, "region", &dis.Options{AddSegregation: true})
//
// Zero-population policy: a row with no population has diversity 0.0, and
// a community with no population at all has integration 0.0. Both are
// defined numeric conventions, not errors.
package dis
