package similarity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/urbanmetrics/divintseg/frame"
)

// Reference holds the normalized subgroup fractions of a fixed reference
// community. The fractions are computed once at construction and reused
// for every subsequent comparison, which is the reason this is an object
// rather than a free function.
type Reference struct {
	names []string
	fracs map[string]float64
}

// NewReference builds a Reference from a mapping of subgroup name to
// count. Returns ErrEmptyReference if the mapping is empty or its total
// population is zero, ErrInvalidReference if any count is negative or not
// finite.
func NewReference(counts map[string]float64) (*Reference, error) {
	if len(counts) == 0 {
		return nil, ErrEmptyReference
	}
	names := make([]string, 0, len(counts))
	var total float64
	for n, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return nil, ErrInvalidReference
		}
		names = append(names, n)
		total += c
	}
	if total == 0 {
		return nil, ErrEmptyReference
	}
	sort.Strings(names)
	fracs := make(map[string]float64, len(counts))
	for n, c := range counts {
		fracs[n] = c / total
	}
	return &Reference{names: names, fracs: fracs}, nil
}

// NewReferenceTable builds a Reference from a table that must hold exactly
// one row; anything else is ErrInvalidReference.
func NewReferenceTable(t *frame.Table) (*Reference, error) {
	if t == nil {
		return nil, frame.ErrNilTable
	}
	if t.Rows() != 1 {
		return nil, ErrInvalidReference
	}
	counts := make(map[string]float64)
	for _, n := range t.CountNames() {
		col, err := t.Counts(n)
		if err != nil {
			return nil, err
		}
		counts[n] = col[0]
	}
	return NewReference(counts)
}

// Groups returns the reference's subgroup names, sorted.
func (ref *Reference) Groups() []string { return append([]string(nil), ref.names...) }

// Dissimilarity returns the dissimilarity index of each row of the table
// relative to the reference: half the sum of absolute differences between
// the row's subgroup fractions and the cached reference fractions.
// The table's count columns must match the reference's subgroups exactly
// (ErrMismatchedColumns otherwise). A zero-population row has index 0.0,
// mirroring the diversity kernel's empty-population convention.
func (ref *Reference) Dissimilarity(t *frame.Table) ([]float64, error) {
	if t == nil {
		return nil, frame.ErrNilTable
	}
	names := t.CountNames()
	if err := ref.matchGroups(names); err != nil {
		return nil, err
	}
	cols := make([][]float64, len(names))
	for i, n := range names {
		col, err := t.Counts(n)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	totals := t.RowTotals()
	out := make([]float64, t.Rows())
	for r := range out {
		if totals[r] == 0 {
			continue
		}
		var sum float64
		for i, n := range names {
			sum += math.Abs(cols[i][r]/totals[r] - ref.fracs[n])
		}
		out[r] = 0.5 * sum
	}
	return out, nil
}

// Similarity is exactly 1 − Dissimilarity for every row; the identity
// holds algebraically because the complement is taken from the same
// computed indices, never recomputed.
func (ref *Reference) Similarity(t *frame.Table) ([]float64, error) {
	d, err := ref.Dissimilarity(t)
	if err != nil {
		return nil, err
	}
	floats.Scale(-1, d)
	floats.AddConst(1, d)
	return d, nil
}

// Dissimilarity builds a one-shot Reference from counts and compares the
// table against it.
func Dissimilarity(t *frame.Table, reference map[string]float64) ([]float64, error) {
	ref, err := NewReference(reference)
	if err != nil {
		return nil, err
	}
	return ref.Dissimilarity(t)
}

// Similarity builds a one-shot Reference from counts and compares the
// table against it.
func Similarity(t *frame.Table, reference map[string]float64) ([]float64, error) {
	ref, err := NewReference(reference)
	if err != nil {
		return nil, err
	}
	return ref.Similarity(t)
}

// matchGroups checks that the table's count columns are exactly the
// reference's subgroups, in any order.
func (ref *Reference) matchGroups(names []string) error {
	if len(names) != len(ref.names) {
		return ErrMismatchedColumns
	}
	for _, n := range names {
		if _, ok := ref.fracs[n]; !ok {
			return ErrMismatchedColumns
		}
	}
	return nil
}
