// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bin aggregates raw tables into statistical tables that plot
// layers can draw: 1-D histograms (Bin1D) and 2-D heatmap grids
// (Bin2D).
//
// Binning never modifies its source table. Bins are equal-width
// intervals of the binned domain. Each bin is half-open, [lo, hi),
// except the last, which is closed so that it includes the domain
// maximum. Rows whose value is missing (NaN) or outside the domain
// are not counted.
package bin

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// ErrInvalidColumn is returned when a binned column does not exist or
// is not numeric. It is table.ErrInvalidColumn.
var ErrInvalidColumn = table.ErrInvalidColumn

// ErrDegenerateDomain is returned when the binned domain has zero
// width, so it cannot be divided into bins.
var ErrDegenerateDomain = errors.New("degenerate domain")

const (
	// DefaultBinDensity is the target number of nicely rounded
	// intervals DefaultBinCount divides a domain into.
	DefaultBinDensity = 30

	// DefaultBinSize is the default edge length in pixels of a
	// 2-D bin.
	DefaultBinSize = 20
)

// Names of the columns in binned tables.
const (
	ColXMin  = "xMin"
	ColXMax  = "xMax"
	ColYMin  = "yMin"
	ColYMax  = "yMax"
	ColCount = "count"
)

// DefaultBinCount returns the number of bins used for d when the
// caller does not specify one. It is the number of nice tick
// intervals of d at DefaultBinDensity, and at least 1.
func DefaultBinCount(d scales.Domain) int {
	ticks := scales.Ticks(d, DefaultBinDensity)
	if len(ticks) < 2 {
		return 1
	}
	step := ticks[1] - ticks[0]
	n := int(math.Ceil(d.Width()/step - 1e-9))
	if n < 1 {
		n = 1
	}
	return n
}

// resolveDomain returns d, or the extent of xs if d is empty. The
// result may be empty if xs has no finite values.
func resolveDomain(col string, d scales.Domain, xs []float64) (scales.Domain, error) {
	if d.IsEmpty() {
		d = scales.Extent(xs)
	}
	if d.IsDegenerate() {
		return d, fmt.Errorf("column %q: cannot bin domain %v: %w", col, d, ErrDegenerateDomain)
	}
	return d, nil
}

// binIndex returns the index of the bin of x, which must be in d.
func binIndex(x float64, d scales.Domain, n int) int {
	i := int(math.Floor((x - d.Lo) * float64(n) / d.Width()))
	if i >= n {
		// The last bin is inclusive.
		i = n - 1
	} else if i < 0 {
		i = 0
	}
	return i
}

// skip reports whether x should not be counted in d.
func skip(x float64, d scales.Domain) bool {
	return math.IsNaN(x) || !d.Contains(x)
}
