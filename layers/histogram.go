// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layers

import (
	"github.com/aclements/go-minard/bin"
	"github.com/aclements/go-minard/plotenv"
	"github.com/aclements/go-minard/scales"
)

// Histogram is a layer of bars counting the default table's rows by
// column X. Rows are grouped by the Fill columns, and each group's
// bars are colored by interpolating Colors.
//
// The bins cover the plot's x domain, or the extent of X if the plot
// has none.
type Histogram struct {
	X        string
	Fill     []string
	Colors   []string
	Position bin.Position
	// BinCount is the number of bins. If 0, it is derived from
	// the x domain.
	BinCount int
}

func (h Histogram) build(env *plotenv.Env, m *Mounted) ([]interface{}, plotenv.Factory) {
	tab := env.DefaultTable()
	xDomain, _ := m.xDomain.Resolve(env.XDomain(), tab.Column(h.X))
	fill := append([]string(nil), h.Fill...)
	colors := append([]string(nil), h.Colors...)

	deps := []interface{}{tab, h.X, xDomain, fill, h.Position, h.BinCount, colors}
	return deps, func() (*plotenv.Layer, error) {
		out, aes, err := bin.Bin1D(tab, h.X, xDomain, fill, h.BinCount, h.Position)
		if err != nil {
			return nil, err
		}
		return &plotenv.Layer{
			Geom:       plotenv.Bars{Position: h.Position, BinCount: h.BinCount},
			Table:      out,
			Aesthetics: aes,
			Colors:     colors,
		}, nil
	}
}

// Heatmap is a layer of squares counting the default table's rows in a
// grid over columns X and Y. Each square is roughly BinSize pixels on
// a side and is colored by its count.
type Heatmap struct {
	X, Y   string
	Colors []string
	// BinSize is the edge length of a cell in pixels. If 0,
	// bin.DefaultBinSize is used.
	BinSize float64
}

func (h Heatmap) build(env *plotenv.Env, m *Mounted) ([]interface{}, plotenv.Factory) {
	tab := env.DefaultTable()
	xDomain, _ := m.xDomain.Resolve(env.XDomain(), tab.Column(h.X))
	yDomain, _ := m.yDomain.Resolve(env.YDomain(), tab.Column(h.Y))
	w, ht := env.Width(), env.Height()
	colors := append([]string(nil), h.Colors...)

	deps := []interface{}{tab, h.X, xDomain, h.Y, yDomain, w, ht, h.BinSize, colors}
	return deps, func() (*plotenv.Layer, error) {
		out, aes, err := bin.Bin2D(tab, h.X, xDomain, h.Y, yDomain, w, ht, h.BinSize)
		if err != nil {
			return nil, err
		}
		return &plotenv.Layer{
			Geom:       plotenv.Squares{BinSize: h.BinSize},
			Table:      out,
			Aesthetics: aes,
			Colors:     colors,
		}, nil
	}
}

// Line is a layer of lines through columns X and Y of the default
// table, one per group of the Fill columns.
type Line struct {
	X, Y   string
	Fill   []string
	Colors []string
}

func (l Line) build(env *plotenv.Env, m *Mounted) ([]interface{}, plotenv.Factory) {
	tab := env.DefaultTable()
	aes := scales.Aesthetics{scales.X: {l.X}, scales.Y: {l.Y}}
	if len(l.Fill) > 0 {
		aes[scales.Fill] = append([]string(nil), l.Fill...)
	}
	colors := append([]string(nil), l.Colors...)

	deps := []interface{}{tab, l.X, l.Y, aes[scales.Fill], colors}
	return deps, func() (*plotenv.Layer, error) {
		if tab != nil {
			if _, err := tab.Numeric(l.X); err != nil {
				return nil, err
			}
			if _, err := tab.Numeric(l.Y); err != nil {
				return nil, err
			}
		}
		return &plotenv.Layer{
			Geom:       plotenv.Line{},
			Aesthetics: aes,
			Colors:     colors,
		}, nil
	}
}
