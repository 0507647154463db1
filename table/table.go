// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements the column-oriented data model consumed
// and produced by plot layers.
//
// A Table is a set of named, typed columns that all have the same
// length. Row i of a Table is the i'th element of every column. This
// positional alignment is what ties the values of a row together, so
// every operation that produces a Table preserves it.
//
// Tables are immutable once built. Operations that derive data from a
// Table (binning, for example) build a new Table rather than
// modifying their input.
package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidColumn is returned when a referenced column does not exist
// or does not have a type the operation can use.
var ErrInvalidColumn = errors.New("invalid column")

// Type is the type of the values in a column.
type Type int

const (
	// Float columns hold []float64. NaN marks a missing value.
	Float Type = iota
	// Int columns hold []int64.
	Int
	// String columns hold []string.
	String
	// Time columns hold []time.Time. The zero time marks a
	// missing value.
	Time
)

func (t Type) String() string {
	switch t {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	case Time:
		return "time"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsNumeric reports whether values of type t can be read as numbers.
// Times are numeric; they read as milliseconds since the Unix epoch.
func (t Type) IsNumeric() bool {
	return t == Float || t == Int || t == Time
}

// Column is a typed sequence of values.
type Column struct {
	typ  Type
	data interface{}
}

// Type returns the type of c's values.
func (c *Column) Type() Type {
	return c.typ
}

// Len returns the number of values in c.
func (c *Column) Len() int {
	switch d := c.data.(type) {
	case []float64:
		return len(d)
	case []int64:
		return len(d)
	case []string:
		return len(d)
	case []time.Time:
		return len(d)
	}
	return 0
}

// Data returns the slice backing c. It is one of []float64, []int64,
// []string, or []time.Time, according to c.Type(). The caller must
// not modify it.
func (c *Column) Data() interface{} {
	return c.data
}

// Value returns the i'th value of c.
func (c *Column) Value(i int) interface{} {
	switch d := c.data.(type) {
	case []float64:
		return d[i]
	case []int64:
		return d[i]
	case []string:
		return d[i]
	case []time.Time:
		return d[i]
	}
	return nil
}

// Float returns the i'th value of c as a float64. Missing values and
// values of non-numeric columns are NaN.
func (c *Column) Float(i int) float64 {
	switch d := c.data.(type) {
	case []float64:
		return d[i]
	case []int64:
		return float64(d[i])
	case []time.Time:
		return timeToFloat(d[i])
	}
	return math.NaN()
}

// Floats returns the values of c as float64s. For Float columns this
// is the backing slice itself and must not be modified.
func (c *Column) Floats() []float64 {
	if d, ok := c.data.([]float64); ok {
		return d
	}
	out := make([]float64, c.Len())
	for i := range out {
		out[i] = c.Float(i)
	}
	return out
}

// Format returns the i'th value of c as a string.
func (c *Column) Format(i int) string {
	switch d := c.data.(type) {
	case []float64:
		return strconv.FormatFloat(d[i], 'g', -1, 64)
	case []int64:
		return strconv.FormatInt(d[i], 10)
	case []string:
		return d[i]
	case []time.Time:
		return d[i].UTC().Format(time.RFC3339Nano)
	}
	return ""
}

// Take returns a new slice of the same type as c's data holding the
// values at the given row indexes.
func (c *Column) Take(rows []int) interface{} {
	switch d := c.data.(type) {
	case []float64:
		out := make([]float64, len(rows))
		for i, r := range rows {
			out[i] = d[r]
		}
		return out
	case []int64:
		out := make([]int64, len(rows))
		for i, r := range rows {
			out[i] = d[r]
		}
		return out
	case []string:
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = d[r]
		}
		return out
	case []time.Time:
		out := make([]time.Time, len(rows))
		for i, r := range rows {
			out[i] = d[r]
		}
		return out
	}
	return nil
}

func timeToFloat(t time.Time) float64 {
	if t.IsZero() {
		return math.NaN()
	}
	return float64(t.UnixNano()) / 1e6
}

// Table is a set of equal-length named columns.
//
// The zero Table is an empty table with no columns.
type Table struct {
	names []string
	cols  map[string]*Column
	len   int
}

// Len returns the number of rows in t. A nil Table has no rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.len
}

// Columns returns the names of t's columns in the order they were
// added.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.names...)
}

// Column returns the column named name, or nil if there is no such
// column.
func (t *Table) Column(name string) *Column {
	if t == nil {
		return nil
	}
	return t.cols[name]
}

// Numeric returns the column named name. It fails with
// ErrInvalidColumn if the column does not exist or is not numeric.
func (t *Table) Numeric(name string) (*Column, error) {
	col := t.Column(name)
	if col == nil {
		return nil, fmt.Errorf("could not find column %q: %w", name, ErrInvalidColumn)
	}
	if !col.typ.IsNumeric() {
		return nil, fmt.Errorf("unsupported column type %q for column %q: %w", col.typ, name, ErrInvalidColumn)
	}
	return col, nil
}

// Floats returns the data of the numeric column named name as
// float64s. See Column.Floats.
func (t *Table) Floats(name string) ([]float64, error) {
	col, err := t.Numeric(name)
	if err != nil {
		return nil, err
	}
	return col.Floats(), nil
}

// Builder constructs a Table column by column.
//
// The zero Builder starts from an empty table.
type Builder struct {
	t Table
}

// NewBuilder returns a Builder that starts with the columns of t. t
// itself is not modified. t may be nil.
func NewBuilder(t *Table) *Builder {
	b := new(Builder)
	if t != nil {
		for _, name := range t.names {
			b.add(name, t.cols[name])
		}
		b.t.len = t.len
	}
	return b
}

// Add adds a column to the table being built, replacing any existing
// column with the same name. data must be a []float64, []int64,
// []int, []string, or []time.Time. []int data is stored as []int64.
//
// Add panics if data has an unsupported type or if its length differs
// from the length of the columns already in the table.
func (b *Builder) Add(name string, data interface{}) *Builder {
	var col *Column
	switch d := data.(type) {
	case []float64:
		col = &Column{Float, d}
	case []int64:
		col = &Column{Int, d}
	case []int:
		is := make([]int64, len(d))
		for i, v := range d {
			is[i] = int64(v)
		}
		col = &Column{Int, is}
	case []string:
		col = &Column{String, d}
	case []time.Time:
		col = &Column{Time, d}
	default:
		panic(fmt.Sprintf("table: unsupported column type %T for column %q", data, name))
	}

	n := col.Len()
	if len(b.t.names) == 0 || (len(b.t.names) == 1 && b.t.names[0] == name) {
		b.t.len = n
	} else if n != b.t.len {
		panic(fmt.Sprintf("table: column %q has length %d; table has length %d", name, n, b.t.len))
	}
	b.add(name, col)
	return b
}

func (b *Builder) add(name string, col *Column) {
	if b.t.cols == nil {
		b.t.cols = make(map[string]*Column)
	}
	if _, ok := b.t.cols[name]; !ok {
		b.t.names = append(b.t.names, name)
	}
	b.t.cols[name] = col
}

// Done returns the constructed Table. The Builder must not be used
// after calling Done.
func (b *Builder) Done() *Table {
	t := b.t
	b.t = Table{}
	return &t
}

// Concat returns the rows of ts, in order, as one table. Every table
// must have the same columns with the same types. Nil tables are
// skipped.
func Concat(ts ...*Table) (*Table, error) {
	var first *Table
	acc := make(map[string]interface{})
	for _, t := range ts {
		if t == nil {
			continue
		}
		if first == nil {
			first = t
			for _, name := range t.names {
				acc[name] = cloneData(t.cols[name].data)
			}
			continue
		}
		if len(t.names) != len(first.names) {
			return nil, fmt.Errorf("tables have %d and %d columns: %w", len(first.names), len(t.names), ErrInvalidColumn)
		}
		for _, name := range t.names {
			a, ok := acc[name]
			if !ok {
				return nil, fmt.Errorf("column %q is not in every table: %w", name, ErrInvalidColumn)
			}
			var err error
			if acc[name], err = appendData(name, a, t.cols[name].data); err != nil {
				return nil, err
			}
		}
	}
	b := new(Builder)
	if first != nil {
		for _, name := range first.names {
			b.Add(name, acc[name])
		}
	}
	return b.Done(), nil
}
