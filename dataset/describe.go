// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"fmt"
	"sort"

	"github.com/sgrant/go-eda/stats"
)

// Overview summarizes a table's shape.
type Overview struct {
	Rows, Cols, Cells int
}

// Overview returns the table's shape summary.
func (t *Table) Overview() Overview {
	return Overview{Rows: t.n, Cols: len(t.cols), Cells: t.n * len(t.cols)}
}

// ColumnInfo is the per-column quality row of Info: type, counts of
// valid and missing values, and cardinality.
type ColumnInfo struct {
	Name   string
	Kind   Kind
	Valid  int
	Null   int
	Unique int
}

// Info returns one quality row per column, in table order.
func (t *Table) Info() []ColumnInfo {
	infos := make([]ColumnInfo, len(t.cols))
	for i := range t.cols {
		c := &t.cols[i]
		info := ColumnInfo{Name: c.Name, Kind: c.Kind}
		uniq := make(map[string]struct{})
		for r := 0; r < c.Len(); r++ {
			if c.IsNull(r) {
				info.Null++
				continue
			}
			info.Valid++
			uniq[c.value(r)] = struct{}{}
		}
		info.Unique = len(uniq)
		infos[i] = info
	}
	return infos
}

// A NumericSummary is the descriptive summary of one numeric column.
type NumericSummary struct {
	Name string
	stats.Summary
}

// A CategoricalSummary is the descriptive summary of one
// non-numeric column.
type CategoricalSummary struct {
	Name      string
	Count     int    // non-null values
	Unique    int    // distinct non-null values
	Mode      string // most frequent value
	ModeCount int    // frequency of the mode
}

// A Description is the result of Describe: one summary row per
// column, split by column type.
type Description struct {
	Numeric     []NumericSummary
	Categorical []CategoricalSummary
}

// Describe computes descriptive statistics for every column: moments
// and quartiles for numeric columns, counts and mode for string
// columns. Nulls are excluded throughout.
func (t *Table) Describe() Description {
	var d Description
	for i := range t.cols {
		c := &t.cols[i]
		if c.Kind == String {
			d.Categorical = append(d.Categorical, describeCategorical(c))
			continue
		}
		xs, err := t.Numeric(c.Name)
		if err != nil {
			// All-null numeric column; report it as an empty
			// categorical column rather than dropping it.
			d.Categorical = append(d.Categorical, describeCategorical(c))
			continue
		}
		d.Numeric = append(d.Numeric, NumericSummary{
			Name:    c.Name,
			Summary: stats.Sample{Xs: xs}.Summary(),
		})
	}
	return d
}

func describeCategorical(c *Column) CategoricalSummary {
	s := CategoricalSummary{Name: c.Name}
	counts := make(map[string]int)
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		s.Count++
		counts[c.value(i)]++
	}
	s.Unique = len(counts)
	for v, n := range counts {
		if n > s.ModeCount || (n == s.ModeCount && v < s.Mode) {
			s.Mode, s.ModeCount = v, n
		}
	}
	return s
}

// A FreqRow is one row of a frequency table.
type FreqRow struct {
	Value      string
	Count      int
	Proportion float64
	Cumulative float64
}

// Frequency returns the frequency distribution of the named column:
// counts, proportions of non-null values, and cumulative proportions.
// Rows are ordered by value, or by descending count if byCount is
// set. Float columns have no natural categories and are rejected;
// bin them with vis.Histogram instead.
func (t *Table) Frequency(name string, byCount bool) ([]FreqRow, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind == Float {
		return nil, fmt.Errorf("%w: %q is a float column", ErrNotCategorical, name)
	}
	counts := make(map[string]int)
	total := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			continue
		}
		counts[c.value(i)]++
		total++
	}
	rows := make([]FreqRow, 0, len(counts))
	for v, n := range counts {
		rows = append(rows, FreqRow{Value: v, Count: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if byCount && rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Value < rows[j].Value
	})
	cum := 0.0
	for i := range rows {
		rows[i].Proportion = float64(rows[i].Count) / float64(total)
		cum += rows[i].Proportion
		rows[i].Cumulative = cum
	}
	return rows, nil
}
