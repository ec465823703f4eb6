// Copyright 2024 The go-eda Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides a small columnar table for exploratory
// data analysis: typed columns with null masks, row selection,
// descriptive summaries and frequency tables, and coercion of columns
// to numeric samples for the dist and vis packages.
package dataset // import "github.com/sgrant/go-eda/dataset"

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/rand"
)

var log = logrus.WithField("component", "dataset")

var (
	// ErrNoColumn indicates a column name not present in the table.
	ErrNoColumn = errors.New("dataset: no such column")

	// ErrNotNumeric indicates a column that cannot be coerced to a
	// numeric sample.
	ErrNotNumeric = errors.New("dataset: column is not numeric")

	// ErrNotCategorical indicates a frequency table was requested
	// for a column without natural categories.
	ErrNotCategorical = errors.New("dataset: column is not categorical")

	// ErrShape indicates columns of unequal length or duplicate
	// names.
	ErrShape = errors.New("dataset: bad table shape")
)

// Kind is the type of the values in a column.
type Kind int

const (
	Float Kind = iota
	Int
	String
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Column is a named, typed vector of values. Exactly one of the
// value slices is populated, according to Kind. Null marks missing
// values; a nil Null means no value is missing.
type Column struct {
	Name    string
	Kind    Kind
	Floats  []float64
	Ints    []int64
	Strings []string
	Null    []bool
}

// FloatColumn returns a float column over vals. The slice is not
// copied.
func FloatColumn(name string, vals []float64) Column {
	return Column{Name: name, Kind: Float, Floats: vals}
}

// IntColumn returns an integer column over vals. The slice is not
// copied.
func IntColumn(name string, vals []int64) Column {
	return Column{Name: name, Kind: Int, Ints: vals}
}

// StringColumn returns a string column over vals. The slice is not
// copied.
func StringColumn(name string, vals []string) Column {
	return Column{Name: name, Kind: String, Strings: vals}
}

// Len returns the number of values in the column, including nulls.
func (c *Column) Len() int {
	switch c.Kind {
	case Float:
		return len(c.Floats)
	case Int:
		return len(c.Ints)
	default:
		return len(c.Strings)
	}
}

// IsNull reports whether the i'th value is missing.
func (c *Column) IsNull(i int) bool {
	return c.Null != nil && c.Null[i]
}

// value returns the i'th value formatted as a string, for frequency
// tables and display.
func (c *Column) value(i int) string {
	switch c.Kind {
	case Float:
		return strconv.FormatFloat(c.Floats[i], 'g', -1, 64)
	case Int:
		return strconv.FormatInt(c.Ints[i], 10)
	default:
		return c.Strings[i]
	}
}

// A Table is an ordered collection of equal-length columns.
type Table struct {
	cols []Column
	n    int
}

// New constructs a table from cols. All columns must have the same
// length and distinct names.
func New(cols ...Column) (*Table, error) {
	t := &Table{cols: cols}
	seen := make(map[string]bool)
	for i := range cols {
		c := &cols[i]
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrShape, c.Name)
		}
		seen[c.Name] = true
		if i == 0 {
			t.n = c.Len()
		} else if c.Len() != t.n {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d", ErrShape, c.Name, c.Len(), t.n)
		}
		if c.Null != nil && len(c.Null) != t.n {
			return nil, fmt.Errorf("%w: null mask of %q has %d values, want %d", ErrShape, c.Name, len(c.Null), t.n)
		}
	}
	return t, nil
}

// FromRecords constructs a table from CSV-shaped records, one per
// row. Column types are inferred per column: all-integer values make
// an Int column, all-numeric values a Float column, anything else a
// String column. Empty fields become nulls.
func FromRecords(header []string, records [][]string) (*Table, error) {
	cols := make([]Column, len(header))
	for j, name := range header {
		vals := make([]string, len(records))
		null := make([]bool, len(records))
		hasNull := false
		for i, rec := range records {
			if j >= len(rec) {
				return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrShape, i, len(rec), len(header))
			}
			vals[i] = rec[j]
			if rec[j] == "" {
				null[i] = true
				hasNull = true
			}
		}
		if !hasNull {
			null = nil
		}
		cols[j] = inferColumn(name, vals, null)
		log.WithFields(logrus.Fields{
			"column": name,
			"kind":   cols[j].Kind.String(),
		}).Debug("inferred column type")
	}
	return New(cols...)
}

func inferColumn(name string, vals []string, null []bool) Column {
	isInt, isFloat := true, true
	for i, v := range vals {
		if null != nil && null[i] {
			continue
		}
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			isFloat = false
			break
		}
	}
	switch {
	case isInt:
		c := IntColumn(name, make([]int64, len(vals)))
		c.Null = null
		for i, v := range vals {
			if null != nil && null[i] {
				continue
			}
			c.Ints[i], _ = strconv.ParseInt(v, 10, 64)
		}
		return c
	case isFloat:
		c := FloatColumn(name, make([]float64, len(vals)))
		c.Null = null
		for i, v := range vals {
			if null != nil && null[i] {
				continue
			}
			c.Floats[i], _ = strconv.ParseFloat(v, 64)
		}
		return c
	default:
		c := StringColumn(name, vals)
		c.Null = null
		return c
	}
}

// Len returns the number of rows.
func (t *Table) Len() int { return t.n }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	names := make([]string, len(t.cols))
	for i := range t.cols {
		names[i] = t.cols[i].Name
	}
	return names
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	for i := range t.cols {
		if t.cols[i].Name == name {
			return &t.cols[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoColumn, name)
}

// Select returns a table with a subset of columns. If exclude is
// non-nil, include is ignored and all columns except those named are
// kept. Names that do not occur in the table are ignored.
func (t *Table) Select(include, exclude []string) *Table {
	want := func(name string) bool {
		if exclude != nil {
			for _, ex := range exclude {
				if ex == name {
					return false
				}
			}
			return true
		}
		if include == nil {
			return true
		}
		for _, in := range include {
			if in == name {
				return true
			}
		}
		return false
	}
	nt := &Table{n: t.n}
	for _, c := range t.cols {
		if want(c.Name) {
			nt.cols = append(nt.cols, c)
		}
	}
	return nt
}

// Head returns a table with the first n rows, or all rows if the
// table is shorter.
func (t *Table) Head(n int) *Table {
	if n > t.n {
		n = t.n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return t.take(idx)
}

// TopN returns the n rows with the largest values in the named
// column. Null rows sort last.
func (t *Table) TopN(name string, n int) (*Table, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	idx := make([]int, t.n)
	for i := range idx {
		idx[i] = i
	}
	less := func(i, j int) bool {
		if c.IsNull(idx[i]) != c.IsNull(idx[j]) {
			return !c.IsNull(idx[i])
		}
		switch c.Kind {
		case Float:
			return c.Floats[idx[i]] > c.Floats[idx[j]]
		case Int:
			return c.Ints[idx[i]] > c.Ints[idx[j]]
		default:
			return c.Strings[idx[i]] > c.Strings[idx[j]]
		}
	}
	sort.SliceStable(idx, less)
	if n > len(idx) {
		n = len(idx)
	}
	return t.take(idx[:n]), nil
}

// SampleN returns a table with n rows drawn uniformly without
// replacement. If src is nil, the shared global random source is
// used.
func (t *Table) SampleN(n int, src rand.Source) *Table {
	if n > t.n {
		n = t.n
	}
	var perm []int
	if src != nil {
		perm = rand.New(src).Perm(t.n)
	} else {
		perm = rand.Perm(t.n)
	}
	return t.take(perm[:n])
}

// take returns a table with the rows selected by idx, in order.
func (t *Table) take(idx []int) *Table {
	nt := &Table{n: len(idx), cols: make([]Column, len(t.cols))}
	for ci := range t.cols {
		c := &t.cols[ci]
		nc := Column{Name: c.Name, Kind: c.Kind}
		if c.Null != nil {
			nc.Null = make([]bool, len(idx))
			for i, ri := range idx {
				nc.Null[i] = c.Null[ri]
			}
		}
		switch c.Kind {
		case Float:
			nc.Floats = make([]float64, len(idx))
			for i, ri := range idx {
				nc.Floats[i] = c.Floats[ri]
			}
		case Int:
			nc.Ints = make([]int64, len(idx))
			for i, ri := range idx {
				nc.Ints[i] = c.Ints[ri]
			}
		default:
			nc.Strings = make([]string, len(idx))
			for i, ri := range idx {
				nc.Strings[i] = c.Strings[ri]
			}
		}
		nt.cols[ci] = nc
	}
	return nt
}

// Numeric coerces the named column to a numeric sample, the form the
// dist package consumes. Nulls are dropped. String columns are parsed
// value by value and unparsable entries dropped; the number of
// dropped values is logged at debug level. It fails with ErrNotNumeric
// if no numeric values remain.
func (t *Table) Numeric(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, 0, c.Len())
	dropped := 0
	for i := 0; i < c.Len(); i++ {
		if c.IsNull(i) {
			dropped++
			continue
		}
		switch c.Kind {
		case Float:
			xs = append(xs, c.Floats[i])
		case Int:
			xs = append(xs, float64(c.Ints[i]))
		default:
			v, err := strconv.ParseFloat(c.Strings[i], 64)
			if err != nil {
				dropped++
				continue
			}
			xs = append(xs, v)
		}
	}
	if dropped > 0 {
		log.WithFields(logrus.Fields{
			"column":  name,
			"dropped": dropped,
			"kept":    len(xs),
		}).Debug("dropped non-numeric values")
	}
	if len(xs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotNumeric, name)
	}
	return xs, nil
}
