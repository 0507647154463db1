// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin

import (
	"fmt"

	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
	"github.com/aclements/go-moremath/vec"
)

// Position controls how the groups of a 1-D bin are laid out
// vertically.
type Position int

const (
	// Stacked places a bin's groups on top of each other, in
	// group key order, so together they reach the bin's total
	// count.
	Stacked Position = iota
	// Overlaid starts every group at 0.
	Overlaid
)

func (p Position) String() string {
	switch p {
	case Stacked:
		return "stacked"
	case Overlaid:
		return "overlaid"
	}
	return fmt.Sprintf("Position(%d)", int(p))
}

// ParsePosition parses "stacked" or "overlaid". The empty string is
// Stacked.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "", "stacked":
		return Stacked, nil
	case "overlaid":
		return Overlaid, nil
	}
	return 0, fmt.Errorf("unknown position %q", s)
}

// Bin1D computes a histogram of column xCol of t.
//
// The domain xDomain is divided into binCount equal-width bins. If
// xDomain is empty, Bin1D uses the extent of xCol; if binCount <= 0,
// it uses DefaultBinCount. Rows are grouped by the values of the fill
// columns, and Bin1D counts the rows of each group in each bin.
//
// The result has one row per (bin, group) pair, including pairs with
// no rows, ordered by bin and then by group in table.GroupKeys order.
// Its columns are
// xMin and xMax (the bin bounds), yMin and yMax (the group's vertical
// extent, laid out according to pos), count, and each fill column,
// holding the group's values. The returned aesthetics bind the
// position roles to these columns and Fill to the fill columns.
//
// If xDomain is empty and xCol has no finite values, the result is an
// empty table.
func Bin1D(t *table.Table, xCol string, xDomain scales.Domain, fill []string, binCount int, pos Position) (*table.Table, scales.Aesthetics, error) {
	xcol, err := t.Numeric(xCol)
	if err != nil {
		return nil, nil, err
	}
	if err := table.Require(t, fill...); err != nil {
		return nil, nil, err
	}

	aes := scales.Aesthetics{
		scales.XMin: {ColXMin},
		scales.XMax: {ColXMax},
		scales.YMin: {ColYMin},
		scales.YMax: {ColYMax},
	}
	if len(fill) > 0 {
		aes[scales.Fill] = append([]string(nil), fill...)
	}

	xs := xcol.Floats()
	d, err := resolveDomain(xCol, xDomain, xs)
	if err != nil {
		return nil, nil, err
	}
	if d.IsEmpty() {
		return buildHist(t, fill, nil, nil, nil, pos), aes, nil
	}
	if binCount <= 0 {
		binCount = DefaultBinCount(d)
	}

	// Find the groups. Each group is represented by the first
	// source row in it.
	var keys []string
	var reps []int
	index := make(map[string]int)
	if len(fill) == 0 {
		keys, reps = []string{""}, []int{0}
	} else {
		for _, k := range table.GroupKeys(t, fill) {
			index[k] = len(keys)
			keys = append(keys, k)
			reps = append(reps, -1)
		}
	}
	groupOf := func(row int) int {
		if len(fill) == 0 {
			return 0
		}
		g := index[table.GroupKey(t, fill, row)]
		if reps[g] < 0 {
			reps[g] = row
		}
		return g
	}
	// Every group has at least one row, so visit all rows to
	// find representatives even for rows outside the domain.
	for row := 0; row < t.Len() && len(fill) > 0; row++ {
		groupOf(row)
	}

	counts := make([][]int64, binCount)
	for b := range counts {
		counts[b] = make([]int64, len(keys))
	}
	for row, x := range xs {
		if skip(x, d) {
			continue
		}
		counts[binIndex(x, d, binCount)][groupOf(row)]++
	}

	return buildHist(t, fill, vec.Linspace(d.Lo, d.Hi, binCount+1), counts, reps, pos), aes, nil
}

func buildHist(t *table.Table, fill []string, edges []float64, counts [][]int64, reps []int, pos Position) *table.Table {
	var xMin, xMax, yMin, yMax []float64
	var count []int64
	var rows []int
	for b, bc := range counts {
		var base int64
		for g, c := range bc {
			lo := int64(0)
			if pos == Stacked {
				lo = base
				base += c
			}
			xMin = append(xMin, edges[b])
			xMax = append(xMax, edges[b+1])
			yMin = append(yMin, float64(lo))
			yMax = append(yMax, float64(lo+c))
			count = append(count, c)
			rows = append(rows, reps[g])
		}
	}

	tb := new(table.Builder).
		Add(ColXMin, nonNil(xMin)).
		Add(ColXMax, nonNil(xMax)).
		Add(ColYMin, nonNil(yMin)).
		Add(ColYMax, nonNil(yMax)).
		Add(ColCount, append([]int64{}, count...))
	for _, name := range fill {
		tb.Add(name, t.Column(name).Take(rows))
	}
	return tb.Done()
}

func nonNil(xs []float64) []float64 {
	if xs == nil {
		return []float64{}
	}
	return xs
}
