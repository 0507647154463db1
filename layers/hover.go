// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import (
	"math"

	"github.com/aclements/go-minard/bin"
	"github.com/aclements/go-minard/plotenv"
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// HoveredRows returns the rows of a bars layer under the hover point
// of env: the rows of the bin containing the hovered x. It returns nil
// if nothing is hovered, the layer is not a bars layer, or the pointer
// is above the bin's tallest bar.
func HoveredRows(env *plotenv.Env, l *plotenv.Layer) []int {
	p, ok := env.Hover()
	if !ok || l == nil {
		return nil
	}
	if _, ok := l.Geom.(plotenv.Bars); !ok {
		return nil
	}
	tab := env.TableOf(l)
	xMin, err1 := tab.Floats(l.Aesthetics.Col(scales.XMin))
	xMax, err2 := tab.Floats(l.Aesthetics.Col(scales.XMax))
	yMax, err3 := tab.Floats(l.Aesthetics.Col(scales.YMax))
	if err1 != nil || err2 != nil || err3 != nil {
		return nil
	}

	x := env.XScale().Invert(p.X)
	y := env.YScale().Invert(p.Y)
	if math.IsNaN(x) || math.IsNaN(y) {
		return nil
	}

	// The last bin includes its upper bound.
	hi := math.Inf(-1)
	for _, v := range xMax {
		hi = math.Max(hi, v)
	}

	var rows []int
	top := math.Inf(-1)
	for i := range xMin {
		if xMin[i] <= x && (x < xMax[i] || x == xMax[i] && x == hi) {
			rows = append(rows, i)
			top = math.Max(top, yMax[i])
		}
	}
	if len(rows) == 0 || y > top {
		return nil
	}
	return rows
}

// TooltipData describes the hovered bin of a histogram.
type TooltipData struct {
	XMin, XMax float64
	Counts     []GroupCount
}

// GroupCount is the count of one group in a bin.
type GroupCount struct {
	// Grouping maps each fill column to the group's value.
	Grouping map[string]string
	Count    int64
	// Color is the group's fill color as "#rrggbb", or "" if the
	// layer has no fill scale.
	Color string
}

// Tooltip returns the tooltip contents for rows of a histogram layer,
// as returned by HoveredRows. It returns nil if rows is empty.
func Tooltip(env *plotenv.Env, l *plotenv.Layer, rows []int) *TooltipData {
	if len(rows) == 0 {
		return nil
	}
	tab := env.TableOf(l)
	xMin, _ := tab.Floats(l.Aesthetics.Col(scales.XMin))
	xMax, _ := tab.Floats(l.Aesthetics.Col(scales.XMax))
	yMin, _ := tab.Floats(l.Aesthetics.Col(scales.YMin))
	yMax, _ := tab.Floats(l.Aesthetics.Col(scales.YMax))
	if xMin == nil || xMax == nil || yMin == nil || yMax == nil {
		return nil
	}
	fill := l.Aesthetics[scales.Fill]
	count := tab.Column(bin.ColCount)

	td := &TooltipData{XMin: xMin[rows[0]], XMax: xMax[rows[0]]}
	for _, r := range rows {
		gc := GroupCount{
			Grouping: make(map[string]string, len(fill)),
			Count:    int64(yMax[r] - yMin[r]),
		}
		if count != nil && count.Type() == table.Int {
			gc.Count = count.Data().([]int64)[r]
		}
		for _, name := range fill {
			if col := tab.Column(name); col != nil {
				gc.Grouping[name] = col.Format(r)
			}
		}
		if s := l.Scales.Fill; s != nil {
			gc.Color = scales.Hex(s.Map(table.GroupKey(tab, fill, r)))
		}
		td.Counts = append(td.Counts, gc)
	}
	return td
}
