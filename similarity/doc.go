// Package similarity compares the proportional subgroup composition of
// communities against a fixed reference distribution.
//
// The dissimilarity index is half the sum of absolute differences between
// two populations' subgroup fractions: 0 means identical composition
// regardless of scale, 1 means fully disjoint. Similarity is its exact
// complement, 1 − dissimilarity.
//
// A Reference owns the normalized fractions of one reference community,
// computed once at construction and reused for every comparison:
//
//	ref, err := similarity.NewReference(map[string]float64{"A": 30, "B": 60, "C": 10})
//	if err != nil { ... }
//	d, err := ref.Dissimilarity(tb) // one index per row of tb
//
// The free Dissimilarity and Similarity functions build a one-shot
// Reference and delegate; they exist for single-use callers and return
// identical values to the stateful path.
//
// A constructed Reference is immutable; concurrent readers of one
// instance are safe.
package similarity
