// Package divintseg computes demographic diversity, integration, and
// segregation metrics over tabular population counts: rows are
// geographic or organizational units, columns are population subgroups.
//
// 🚀 What is divintseg?
//
//	A pure, synchronous library of the classic demographic indices:
//		• Diversity: Blau / Gini–Simpson index per community
//		• Integration & segregation: population-weighted mixing across
//		  nested aggregation levels (e.g. block groups over blocks)
//		• Dissimilarity & similarity against a fixed reference distribution
//		• Isolation, exposure, and Bell's adjusted isolation index
//
// ✨ Why choose divintseg?
//
//   - Exact edge-case policies – zero-population rows and communities are
//     defined conventions, not NaNs that leak out of a division
//   - Deterministic output – result rows follow first-occurrence order of
//     the grouping key, columns follow request order
//   - No I/O, no global state – load your data however you like, hand the
//     counts to frame.Table, get result tables back
//
// Everything is organized under four subpackages:
//
//	frame/      — the column-oriented population table and its grouped
//	              aggregation primitives (partition, collapse, pool)
//	dis/        — diversity kernel, integration, segregation, DI report
//	similarity/ — reference distributions, dissimilarity & similarity
//	exposure/   — isolation, exposure, and Bell's index
//
// Quick taste:
//
//	tb, _ := frame.New([]string{"region", "tract"}, []string{"A", "B", "C"})
//	_ = tb.AppendRow([]string{"X", "X1"}, []float64{10, 10, 10})
//	_ = tb.AppendRow([]string{"X", "X2"}, []float64{100, 0, 0})
//
//	res, err := dis.DI(tb, "region", &dis.Options{Over: "tract", AddSegregation: true})
//
// Dive into each package's doc.go for the exact semantics and the
// zero-population conventions.
//
//	go get github.com/urbanmetrics/divintseg
package divintseg
