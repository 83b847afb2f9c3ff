package frame

// Result is an ordered metric table: one row per group key, one or more
// named numeric columns in the order metrics were requested. Rows appear
// in the order groups were first seen in the source table.
type Result struct {
	keyName string
	keys    []string
	names   []string
	cols    map[string][]float64
}

// NewResult returns an empty Result keyed by keyName with the given value
// columns, in order.
func NewResult(keyName string, columns ...string) *Result {
	r := &Result{
		keyName: keyName,
		names:   append([]string(nil), columns...),
		cols:    make(map[string][]float64, len(columns)),
	}
	for _, n := range r.names {
		r.cols[n] = nil
	}
	return r
}

// AppendRow appends one group's values, which must match the declared
// column count in order. Returns ErrRowLength on width mismatch.
func (r *Result) AppendRow(key string, values ...float64) error {
	if len(values) != len(r.names) {
		return ErrRowLength
	}
	r.keys = append(r.keys, key)
	for i, n := range r.names {
		r.cols[n] = append(r.cols[n], values[i])
	}
	return nil
}

// Len returns the number of rows.
func (r *Result) Len() int { return len(r.keys) }

// KeyName returns the name of the grouping key this result is keyed by.
func (r *Result) KeyName() string { return r.keyName }

// Keys returns the group keys in row order.
func (r *Result) Keys() []string { return append([]string(nil), r.keys...) }

// Columns returns the value column names in declaration order.
func (r *Result) Columns() []string { return append([]string(nil), r.names...) }

// Column returns a copy of the named value column.
// Returns ErrUnknownColumn if name is not a column of the result.
func (r *Result) Column(name string) ([]float64, error) {
	col, ok := r.cols[name]
	if !ok {
		return nil, ErrUnknownColumn
	}
	return append([]float64(nil), col...), nil
}

// Value returns the value at (key, column).
// Returns ErrUnknownKey or ErrUnknownColumn on a miss.
func (r *Result) Value(key, column string) (float64, error) {
	col, ok := r.cols[column]
	if !ok {
		return 0, ErrUnknownColumn
	}
	for i, k := range r.keys {
		if k == key {
			return col[i], nil
		}
	}
	return 0, ErrUnknownKey
}
