// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin

import (
	"math"

	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
	"github.com/aclements/go-moremath/vec"
)

// Bin2D counts the rows of t in a grid over columns xCol and yCol.
//
// The grid covers xDomain × yDomain, and each empty domain is replaced
// by the extent of its column. The number of bins along each axis is
// the pixel extent of that axis (width or height) divided by binSize,
// rounded down and clamped to [1, MaxGridSize], so cells are roughly
// binSize pixels on a side when drawn. If binSize <= 0, Bin2D uses
// DefaultBinSize.
//
// Rows whose x or y is NaN, zero, or outside its domain are not
// counted.
//
// The result has one row for every cell, including empty cells, with
// columns xMin, xMax, yMin, yMax and count. Cells are ordered by x bin
// and then by y bin. The returned aesthetics bind the position roles
// to the bounds columns and Fill to count.
//
// If either domain is empty after resolution, the result is an empty
// table.
func Bin2D(t *table.Table, xCol string, xDomain scales.Domain, yCol string, yDomain scales.Domain, width, height, binSize float64) (*table.Table, scales.Aesthetics, error) {
	xcol, err := t.Numeric(xCol)
	if err != nil {
		return nil, nil, err
	}
	ycol, err := t.Numeric(yCol)
	if err != nil {
		return nil, nil, err
	}

	aes := scales.Aesthetics{
		scales.XMin: {ColXMin},
		scales.XMax: {ColXMax},
		scales.YMin: {ColYMin},
		scales.YMax: {ColYMax},
		scales.Fill: {ColCount},
	}

	xs, ys := xcol.Floats(), ycol.Floats()
	xd, err := resolveDomain(xCol, xDomain, xs)
	if err != nil {
		return nil, nil, err
	}
	yd, err := resolveDomain(yCol, yDomain, ys)
	if err != nil {
		return nil, nil, err
	}
	if xd.IsEmpty() || yd.IsEmpty() {
		return buildGrid(nil, nil, nil), aes, nil
	}

	if binSize <= 0 {
		binSize = DefaultBinSize
	}
	nx, ny := GridSize(width, binSize), GridSize(height, binSize)

	counts := make([][]int64, nx)
	for i := range counts {
		counts[i] = make([]int64, ny)
	}
	for row := range xs {
		x, y := xs[row], ys[row]
		if x == 0 || y == 0 || skip(x, xd) || skip(y, yd) {
			continue
		}
		counts[binIndex(x, xd, nx)][binIndex(y, yd, ny)]++
	}

	return buildGrid(vec.Linspace(xd.Lo, xd.Hi, nx+1), vec.Linspace(yd.Lo, yd.Hi, ny+1), counts), aes, nil
}

// MaxGridSize bounds the number of bins along each axis of a 2-D
// grid.
const MaxGridSize = 4096

// GridSize returns the number of binSize-pixel bins that fit in px
// pixels. It is at least 1 and at most MaxGridSize.
func GridSize(px, binSize float64) int {
	f := math.Floor(px / binSize)
	switch {
	case math.IsNaN(f) || f < 1:
		return 1
	case f > MaxGridSize:
		return MaxGridSize
	}
	return int(f)
}

func buildGrid(xEdges, yEdges []float64, counts [][]int64) *table.Table {
	cells := 0
	for _, col := range counts {
		cells += len(col)
	}
	xMin := make([]float64, 0, cells)
	xMax := make([]float64, 0, cells)
	yMin := make([]float64, 0, cells)
	yMax := make([]float64, 0, cells)
	count := make([]int64, 0, cells)
	for i, col := range counts {
		for j, c := range col {
			xMin = append(xMin, xEdges[i])
			xMax = append(xMax, xEdges[i+1])
			yMin = append(yMin, yEdges[j])
			yMax = append(yMax, yEdges[j+1])
			count = append(count, c)
		}
	}
	return new(table.Builder).
		Add(ColXMin, xMin).
		Add(ColXMax, xMax).
		Add(ColYMin, yMin).
		Add(ColYMax, yMax).
		Add(ColCount, count).
		Done()
}
