// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func testTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := FromRecords(
		[]string{"id", "score", "city"},
		[][]string{
			{"1", "3.5", "austin"},
			{"2", "1.25", "boston"},
			{"3", "", "austin"},
			{"4", "2.5", "chicago"},
			{"5", "4.0", ""},
		},
	)
	require.NoError(t, err)
	return tbl
}

func TestFromRecordsInference(t *testing.T) {
	tbl := testTable(t)
	require.Equal(t, 5, tbl.Len())
	require.Equal(t, []string{"id", "score", "city"}, tbl.Columns())

	id, err := tbl.Column("id")
	require.NoError(t, err)
	assert.Equal(t, Int, id.Kind)

	score, err := tbl.Column("score")
	require.NoError(t, err)
	assert.Equal(t, Float, score.Kind)
	assert.True(t, score.IsNull(2))

	city, err := tbl.Column("city")
	require.NoError(t, err)
	assert.Equal(t, String, city.Kind)

	_, err = tbl.Column("missing")
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestNewShapeErrors(t *testing.T) {
	_, err := New(FloatColumn("a", []float64{1, 2}), FloatColumn("a", []float64{3, 4}))
	assert.ErrorIs(t, err, ErrShape)

	_, err = New(FloatColumn("a", []float64{1, 2}), FloatColumn("b", []float64{3}))
	assert.ErrorIs(t, err, ErrShape)
}

func TestNumeric(t *testing.T) {
	tbl := testTable(t)

	xs, err := tbl.Numeric("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{3.5, 1.25, 2.5, 4.0}, xs)

	xs, err = tbl.Numeric("id")
	require.NoError(t, err)
	assert.Len(t, xs, 5)

	_, err = tbl.Numeric("city")
	assert.ErrorIs(t, err, ErrNotNumeric)

	// Mixed string column keeps the parsable values.
	mixed, err := New(StringColumn("v", []string{"1.5", "n/a", "2.5"}))
	require.NoError(t, err)
	xs, err = mixed.Numeric("v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, xs)
}

func TestSelectHead(t *testing.T) {
	tbl := testTable(t)

	sel := tbl.Select([]string{"id", "nope"}, nil)
	assert.Equal(t, []string{"id"}, sel.Columns())

	sel = tbl.Select(nil, []string{"city"})
	assert.Equal(t, []string{"id", "score"}, sel.Columns())

	head := tbl.Head(2)
	assert.Equal(t, 2, head.Len())
	xs, err := head.Numeric("id")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, xs)

	assert.Equal(t, 5, tbl.Head(100).Len())
}

func TestTopN(t *testing.T) {
	tbl := testTable(t)
	top, err := tbl.TopN("score", 2)
	require.NoError(t, err)
	xs, err := top.Numeric("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{4.0, 3.5}, xs)

	// Null rows sort last.
	top, err = tbl.TopN("score", 5)
	require.NoError(t, err)
	score, err := top.Column("score")
	require.NoError(t, err)
	assert.True(t, score.IsNull(4))

	_, err = tbl.TopN("nope", 2)
	assert.ErrorIs(t, err, ErrNoColumn)
}

func TestSampleN(t *testing.T) {
	tbl := testTable(t)
	s := tbl.SampleN(3, rand.NewSource(1))
	assert.Equal(t, 3, s.Len())

	ids, err := s.Numeric("id")
	require.NoError(t, err)
	seen := make(map[float64]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "row sampled twice")
		seen[id] = true
	}

	assert.Equal(t, 5, tbl.SampleN(100, rand.NewSource(1)).Len())
}

func TestOverviewInfo(t *testing.T) {
	tbl := testTable(t)
	assert.Equal(t, Overview{Rows: 5, Cols: 3, Cells: 15}, tbl.Overview())

	infos := tbl.Info()
	require.Len(t, infos, 3)
	assert.Equal(t, ColumnInfo{Name: "id", Kind: Int, Valid: 5, Null: 0, Unique: 5}, infos[0])
	assert.Equal(t, ColumnInfo{Name: "score", Kind: Float, Valid: 4, Null: 1, Unique: 4}, infos[1])
	assert.Equal(t, ColumnInfo{Name: "city", Kind: String, Valid: 4, Null: 1, Unique: 3}, infos[2])
}

func TestDescribe(t *testing.T) {
	tbl := testTable(t)
	d := tbl.Describe()
	require.Len(t, d.Numeric, 2)
	require.Len(t, d.Categorical, 1)

	score := d.Numeric[1]
	assert.Equal(t, "score", score.Name)
	assert.Equal(t, 4, score.N)
	assert.InDelta(t, 2.8125, score.Mean, 1e-9)
	assert.Equal(t, 1.25, score.Min)
	assert.Equal(t, 4.0, score.Max)

	city := d.Categorical[0]
	assert.Equal(t, "city", city.Name)
	assert.Equal(t, 4, city.Count)
	assert.Equal(t, 3, city.Unique)
	assert.Equal(t, "austin", city.Mode)
	assert.Equal(t, 2, city.ModeCount)
}

func TestFrequency(t *testing.T) {
	tbl := testTable(t)
	rows, err := tbl.Frequency("city", false)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "austin", rows[0].Value)
	assert.Equal(t, 2, rows[0].Count)
	assert.InDelta(t, 0.5, rows[0].Proportion, 1e-9)
	assert.InDelta(t, 1.0, rows[len(rows)-1].Cumulative, 1e-9)

	byCount, err := tbl.Frequency("city", true)
	require.NoError(t, err)
	assert.Equal(t, "austin", byCount[0].Value)

	_, err = tbl.Frequency("score", false)
	assert.ErrorIs(t, err, ErrNotCategorical)
}
