// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// GroupKey returns the key of the group that row belongs to when t is
// grouped by cols. The key is the formatted value of each column,
// joined with a space. Columns missing from t contribute an empty
// string.
func GroupKey(t *Table, cols []string, row int) string {
	if len(cols) == 1 {
		return formatCell(t.Column(cols[0]), row)
	}
	parts := make([]string, len(cols))
	for i, name := range cols {
		parts[i] = formatCell(t.Column(name), row)
	}
	return strings.Join(parts, " ")
}

func formatCell(col *Column, row int) string {
	if col == nil {
		return ""
	}
	return col.Format(row)
}

// GroupKeys returns the distinct group keys of t's rows when grouped
// by cols, in sorted order. Grouping by a single numeric column sorts
// the keys by value, with NaN last; otherwise keys sort as strings.
func GroupKeys(t *Table, cols []string) []string {
	if len(cols) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var keys []string
	var rows []int
	for i := 0; i < t.Len(); i++ {
		k := GroupKey(t, cols, i)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
			rows = append(rows, i)
		}
	}
	if len(cols) == 1 {
		if col := t.Column(cols[0]); col != nil && col.Type().IsNumeric() {
			sort.Sort(byValue{keys, rows, col})
			return keys
		}
	}
	sort.Strings(keys)
	return keys
}

// byValue sorts keys by the value of col at the matching row.
type byValue struct {
	keys []string
	rows []int
	col  *Column
}

func (s byValue) Len() int { return len(s.keys) }

func (s byValue) Less(i, j int) bool {
	a, b := s.col.Float(s.rows[i]), s.col.Float(s.rows[j])
	return a < b || !math.IsNaN(a) && math.IsNaN(b)
}

func (s byValue) Swap(i, j int) {
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
}

// Require checks that every column in cols exists in t.
func Require(t *Table, cols ...string) error {
	for _, name := range cols {
		if t.Column(name) == nil {
			return fmt.Errorf("could not find column %q: %w", name, ErrInvalidColumn)
		}
	}
	return nil
}
