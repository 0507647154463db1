// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtab reads tables from CSV files.
package csvtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/aclements/go-minard/table"
)

// A columnParser converts every value of a column, or fails.
type columnParser func(vals []string) (interface{}, bool)

// parsers are tried in order; the first that accepts every value of
// a column determines its type. Empty values are missing.
var parsers = []columnParser{
	parseInts,
	parseFloats,
	parseTimes,
}

// Read reads a CSV file with a header row from r. Each column's type
// is the narrowest of int, float, time (RFC 3339) and string that
// holds all of its values. Empty cells in float columns are NaN, and
// in time columns the zero time; a column of integers with empty
// cells is a float column.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	header, rows := records[0], records[1:]

	seen := make(map[string]bool)
	b := new(table.Builder)
	for c, name := range header {
		if seen[name] {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		seen[name] = true

		vals := make([]string, len(rows))
		for i, row := range rows {
			vals[i] = row[c]
		}
		b.Add(name, parseColumn(vals))
	}
	return b.Done(), nil
}

func parseColumn(vals []string) interface{} {
	for _, p := range parsers {
		if data, ok := p(vals); ok {
			return data
		}
	}
	return vals
}

func parseInts(vals []string) (interface{}, bool) {
	out := make([]int64, len(vals))
	for i, v := range vals {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

func parseFloats(vals []string) (interface{}, bool) {
	out := make([]float64, len(vals))
	found := false
	for i, v := range vals {
		if v == "" {
			out[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false
		}
		out[i] = x
		found = true
	}
	return out, found
}

func parseTimes(vals []string) (interface{}, bool) {
	out := make([]time.Time, len(vals))
	found := false
	for i, v := range vals {
		if v == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, false
		}
		out[i] = t
		found = true
	}
	return out, found
}
