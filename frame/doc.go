// Package frame provides the column-oriented population table that every
// metric in divintseg consumes, plus the grouped aggregation primitives
// (partition, collapse, pool) those metrics are built from.
//
// A Table holds two kinds of columns over a shared row dimension:
//
//   - count columns — named float64 subgroup populations, validated to be
//     finite and non-negative at ingestion;
//   - key columns   — named string identifiers (community, sub-unit, or
//     passenger columns that metrics may be asked to ignore).
//
// Rows are observational units. A row's total population is the sum of its
// count columns and may legitimately be zero; the metric packages define
// what a zero-population row means, frame never rejects one.
//
// Grouping primitives preserve first-occurrence order of key values, so
// result rows always come out in the order communities first appear in the
// input, regardless of key lexicographic order:
//
//	groups, err := tb.Partition("region")          // outer communities
//	inner, err := tb.Collapse("region", "tract")   // sum rows per (region, tract)
//	pooled, err := tb.PoolBy("region")             // one pooled row per region
//
// All operations return new values; a Table is never mutated after
// construction except by its own AppendRow during building.
package frame
