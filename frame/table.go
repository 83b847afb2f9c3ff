package frame

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Table is a column-oriented table of population counts. Count columns are
// float64 subgroup populations; key columns are string identifiers used for
// grouping. Column order is declaration order and is preserved by every
// derived table.
type Table struct {
	keyNames   []string
	keys       map[string][]string
	countNames []string
	counts     map[string][]float64
	rows       int
}

// New returns an empty Table with the given key and count column schema.
// Returns ErrNoCountColumns if countNames is empty, ErrDuplicateColumn if
// any name (key or count) repeats.
func New(keyNames, countNames []string) (*Table, error) {
	if len(countNames) == 0 {
		return nil, ErrNoCountColumns
	}
	t := &Table{
		keyNames:   append([]string(nil), keyNames...),
		keys:       make(map[string][]string, len(keyNames)),
		countNames: append([]string(nil), countNames...),
		counts:     make(map[string][]float64, len(countNames)),
	}
	for _, n := range t.keyNames {
		if _, dup := t.keys[n]; dup {
			return nil, ErrDuplicateColumn
		}
		t.keys[n] = nil
	}
	for _, n := range t.countNames {
		if _, dup := t.keys[n]; dup {
			return nil, ErrDuplicateColumn
		}
		if _, dup := t.counts[n]; dup {
			return nil, ErrDuplicateColumn
		}
		t.counts[n] = nil
	}
	return t, nil
}

// NewCounts returns an empty Table with count columns only.
func NewCounts(countNames ...string) (*Table, error) {
	return New(nil, countNames)
}

// AppendRow appends one observational unit. keys and counts must match the
// declared schema widths in order. Counts must be finite and non-negative.
func (t *Table) AppendRow(keys []string, counts []float64) error {
	if t == nil {
		return ErrNilTable
	}
	if len(keys) != len(t.keyNames) || len(counts) != len(t.countNames) {
		return ErrRowLength
	}
	for _, c := range counts {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return ErrNotFinite
		}
		if c < 0 {
			return ErrNegativeCount
		}
	}
	for i, n := range t.keyNames {
		t.keys[n] = append(t.keys[n], keys[i])
	}
	for i, n := range t.countNames {
		t.counts[n] = append(t.counts[n], counts[i])
	}
	t.rows++
	return nil
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// KeyNames returns the key column names in declaration order.
func (t *Table) KeyNames() []string { return append([]string(nil), t.keyNames...) }

// CountNames returns the count column names in declaration order.
func (t *Table) CountNames() []string { return append([]string(nil), t.countNames...) }

// HasKey reports whether name is a key column.
func (t *Table) HasKey(name string) bool {
	_, ok := t.keys[name]
	return ok
}

// HasCount reports whether name is a count column.
func (t *Table) HasCount(name string) bool {
	_, ok := t.counts[name]
	return ok
}

// HasColumn reports whether name is any column of the table.
func (t *Table) HasColumn(name string) bool { return t.HasKey(name) || t.HasCount(name) }

// Counts returns a copy of the named count column.
// Returns ErrUnknownColumn if name is not a count column.
func (t *Table) Counts(name string) ([]float64, error) {
	col, ok := t.counts[name]
	if !ok {
		return nil, ErrUnknownColumn
	}
	return append([]float64(nil), col...), nil
}

// Keys returns a copy of the named key column.
// Returns ErrUnknownColumn if name is not a key column.
func (t *Table) Keys(name string) ([]string, error) {
	col, ok := t.keys[name]
	if !ok {
		return nil, ErrUnknownColumn
	}
	return append([]string(nil), col...), nil
}

// RowTotals returns the total population of each row: the sum of all count
// columns. Key columns never participate.
func (t *Table) RowTotals() []float64 {
	totals := make([]float64, t.rows)
	for _, n := range t.countNames {
		floats.Add(totals, t.counts[n])
	}
	return totals
}

// Select returns a new Table restricted to the named count columns, in the
// requested order. Key columns are kept unchanged. Returns ErrUnknownColumn
// if any name is not a count column.
func (t *Table) Select(countNames ...string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	for _, n := range countNames {
		if !t.HasCount(n) {
			return nil, ErrUnknownColumn
		}
	}
	sub, err := New(t.keyNames, countNames)
	if err != nil {
		return nil, err
	}
	for _, n := range t.keyNames {
		sub.keys[n] = append([]string(nil), t.keys[n]...)
	}
	for _, n := range countNames {
		sub.counts[n] = append([]float64(nil), t.counts[n]...)
	}
	sub.rows = t.rows
	return sub, nil
}

// DropKeysExcept returns a new Table with only the named key columns kept
// (count columns untouched). Names not present in the schema are ignored;
// a key a caller explicitly grouped by is therefore never silently dropped,
// while passenger columns go away.
func (t *Table) DropKeysExcept(keep ...string) *Table {
	keepSet := make(map[string]bool, len(keep))
	for _, n := range keep {
		keepSet[n] = true
	}
	var kept []string
	for _, n := range t.keyNames {
		if keepSet[n] {
			kept = append(kept, n)
		}
	}
	out := &Table{
		keyNames:   kept,
		keys:       make(map[string][]string, len(kept)),
		countNames: append([]string(nil), t.countNames...),
		counts:     make(map[string][]float64, len(t.countNames)),
		rows:       t.rows,
	}
	for _, n := range kept {
		out.keys[n] = append([]string(nil), t.keys[n]...)
	}
	for _, n := range t.countNames {
		out.counts[n] = append([]float64(nil), t.counts[n]...)
	}
	return out
}
