package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanmetrics/divintseg/frame"
)

// TestPartition_FirstOccurrenceOrder verifies that groups come out in the
// order their key first appears, not lexicographic order.
func TestPartition_FirstOccurrenceOrder(t *testing.T) {
	tb, err := frame.New([]string{"region"}, []string{"A"})
	require.NoError(t, err)
	for _, k := range []string{"Z", "M", "Z", "A", "M"} {
		require.NoError(t, tb.AppendRow([]string{k}, []float64{1}))
	}

	groups, err := tb.Partition("region")
	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Z", groups[0].Key)
	assert.Equal(t, []int{0, 2}, groups[0].Rows)
	assert.Equal(t, "M", groups[1].Key)
	assert.Equal(t, []int{1, 4}, groups[1].Rows)
	assert.Equal(t, "A", groups[2].Key)
	assert.Equal(t, []int{3}, groups[2].Rows)
}

// TestPartition_EmptyBy treats the whole table as one community.
func TestPartition_EmptyBy(t *testing.T) {
	tb, err := frame.NewCounts("A")
	require.NoError(t, err)
	require.NoError(t, tb.AppendRow(nil, []float64{1}))
	require.NoError(t, tb.AppendRow(nil, []float64{2}))

	groups, err := tb.Partition("")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, frame.AllRows, groups[0].Key)
	assert.Equal(t, []int{0, 1}, groups[0].Rows)
}

// TestPartition_UnknownColumn surfaces the error before any computation.
func TestPartition_UnknownColumn(t *testing.T) {
	tb, err := frame.New([]string{"region"}, []string{"A"})
	require.NoError(t, err)

	_, err = tb.Partition("state")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)

	_, err = tb.Partition("A")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn, "count column cannot serve as grouping key")
}

// TestCollapse sums rows per (by, over) pair in first-occurrence order.
func TestCollapse(t *testing.T) {
	tb, err := frame.New([]string{"region", "subregion", "note"}, []string{"A", "B"})
	require.NoError(t, err)
	rows := []struct {
		keys   []string
		counts []float64
	}{
		{[]string{"X", "X1", "p"}, []float64{10, 1}},
		{[]string{"X", "X1", "q"}, []float64{20, 2}},
		{[]string{"X", "X2", "p"}, []float64{5, 0}},
		{[]string{"Y", "Y1", "p"}, []float64{7, 7}},
		{[]string{"X", "X1", "r"}, []float64{1, 1}},
	}
	for _, r := range rows {
		require.NoError(t, tb.AppendRow(r.keys, r.counts))
	}

	coll, err := tb.Collapse("region", "subregion")
	require.NoError(t, err)
	assert.Equal(t, []string{"region", "subregion"}, coll.KeyNames(), "passenger keys drop out")
	assert.Equal(t, 3, coll.Rows())

	a, err := coll.Counts("A")
	require.NoError(t, err)
	assert.Equal(t, []float64{31, 5, 7}, a, "rows sharing (region, subregion) are summed")
	b, err := coll.Counts("B")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 0, 7}, b)

	sub, err := coll.Keys("subregion")
	require.NoError(t, err)
	assert.Equal(t, []string{"X1", "X2", "Y1"}, sub)

	_, err = tb.Collapse("region", "block")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)
	_, err = tb.Collapse("state", "subregion")
	assert.ErrorIs(t, err, frame.ErrUnknownColumn)
}

// TestCollapse_SharedOverValues verifies that the same `over` value in two
// different communities stays two distinct inner units.
func TestCollapse_SharedOverValues(t *testing.T) {
	tb, err := frame.New([]string{"region", "tract"}, []string{"A"})
	require.NoError(t, err)
	require.NoError(t, tb.AppendRow([]string{"X", "t1"}, []float64{1}))
	require.NoError(t, tb.AppendRow([]string{"Y", "t1"}, []float64{2}))

	coll, err := tb.Collapse("region", "tract")
	require.NoError(t, err)
	assert.Equal(t, 2, coll.Rows(), "(X,t1) and (Y,t1) must not merge")
}

// TestPoolBy pools every count column per community.
func TestPoolBy(t *testing.T) {
	tb := newRegions(t)

	pooled, err := tb.PoolBy("region")
	require.NoError(t, err)
	assert.Equal(t, 2, pooled.Rows())
	keys, err := pooled.Keys("region")
	require.NoError(t, err)
	assert.Equal(t, []string{"Region 1", "Region 2"}, keys)
	s, err := pooled.Counts("S")
	require.NoError(t, err)
	assert.Equal(t, []float64{150, 10}, s)
	assert.Equal(t, []float64{200, 250}, pooled.RowTotals())
}

// TestPoolBy_EmptyBy pools the whole table into a single row.
func TestPoolBy_EmptyBy(t *testing.T) {
	tb := newRegions(t)

	pooled, err := tb.PoolBy("")
	require.NoError(t, err)
	require.Equal(t, 1, pooled.Rows())
	assert.Equal(t, []float64{450}, pooled.RowTotals())
	keys, err := pooled.Keys(frame.AllRows)
	require.NoError(t, err)
	assert.Equal(t, []string{frame.AllRows}, keys)
}
