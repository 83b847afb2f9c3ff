package frame

// AllRows is the synthetic group key used when an operation is given no
// grouping column: the whole table is treated as a single community.
const AllRows = "all"

// Group is one partition of a table's rows: the shared key value and the
// row indices that carry it, in input order.
type Group struct {
	Key  string
	Rows []int
}

// Partition splits the table's rows by the values of the key column `by`,
// in first-occurrence order. An empty `by` yields a single Group holding
// every row under the AllRows key. Returns ErrUnknownColumn if `by` names
// anything other than a key column.
func (t *Table) Partition(by string) ([]Group, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	if by == "" {
		all := make([]int, t.rows)
		for i := range all {
			all[i] = i
		}
		return []Group{{Key: AllRows, Rows: all}}, nil
	}
	col, ok := t.keys[by]
	if !ok {
		return nil, ErrUnknownColumn
	}
	var groups []Group
	index := make(map[string]int)
	for r, k := range col {
		g, seen := index[k]
		if !seen {
			g = len(groups)
			index[k] = g
			groups = append(groups, Group{Key: k})
		}
		groups[g].Rows = append(groups[g].Rows, r)
	}
	return groups, nil
}

// Collapse sums count columns over rows that share the same (by, over)
// pair, producing one row per inner aggregation unit, in first-occurrence
// order of the pair. The result keeps `by` (when given) and `over` as its
// only key columns. Returns ErrUnknownColumn if `over` (or a non-empty
// `by`) is not a key column.
func (t *Table) Collapse(by, over string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	overCol, ok := t.keys[over]
	if !ok {
		return nil, ErrUnknownColumn
	}
	var byCol []string
	keyNames := []string{over}
	if by != "" {
		byCol, ok = t.keys[by]
		if !ok {
			return nil, ErrUnknownColumn
		}
		keyNames = []string{by, over}
	}
	out, err := New(keyNames, t.countNames)
	if err != nil {
		return nil, err
	}
	type pair struct{ by, over string }
	index := make(map[pair]int)
	for r := 0; r < t.rows; r++ {
		p := pair{over: overCol[r]}
		if byCol != nil {
			p.by = byCol[r]
		}
		u, seen := index[p]
		if !seen {
			u = out.rows
			index[p] = u
			keys := []string{p.over}
			if byCol != nil {
				keys = []string{p.by, p.over}
			}
			if err = out.AppendRow(keys, make([]float64, len(t.countNames))); err != nil {
				return nil, err
			}
		}
		for _, n := range t.countNames {
			out.counts[n][u] += t.counts[n][r]
		}
	}
	return out, nil
}

// PoolBy sums all count columns within each `by` group into one pooled row
// per community, in first-occurrence order, ignoring any finer structure.
// An empty `by` pools the whole table into a single row keyed by AllRows.
// Returns ErrUnknownColumn if a non-empty `by` is not a key column.
func (t *Table) PoolBy(by string) (*Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	groups, err := t.Partition(by)
	if err != nil {
		return nil, err
	}
	keyName := by
	if keyName == "" {
		keyName = AllRows
	}
	out, err := New([]string{keyName}, t.countNames)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		pooled := make([]float64, len(t.countNames))
		for i, n := range t.countNames {
			col := t.counts[n]
			for _, r := range g.Rows {
				pooled[i] += col[r]
			}
		}
		if err = out.AppendRow([]string{g.Key}, pooled); err != nil {
			return nil, err
		}
	}
	return out, nil
}
