// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"errors"
	"fmt"

	"github.com/aclements/go-minard/bin"
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// ErrInvalidLayer is returned when registering a layer that cannot be
// drawn: a nil layer or geom, an empty key, colors that do not parse,
// or aesthetics that refer to columns missing from the layer's table.
var ErrInvalidLayer = errors.New("invalid layer")

// A Layer is one visual encoding of a table.
//
// Layers are registered with RegisterLayer, which stores a copy. A
// registered Layer is never modified; Reduce replaces it when its
// derived scales change.
type Layer struct {
	// Geom is the kind of mark the layer draws.
	Geom Geom

	// Table is the layer's data. If nil, the layer draws the
	// environment's default table.
	Table *table.Table

	// Aesthetics binds the layer's roles to columns of its table.
	Aesthetics scales.Aesthetics

	// Colors is the list of colors the fill scale interpolates
	// between, as hex strings.
	Colors []string

	// ColorMode is the color space Colors are interpolated in.
	ColorMode scales.Mode

	// Scales holds the scales derived for this layer. It is set
	// by Reduce; any value set by the caller is ignored.
	Scales LayerScales
}

// LayerScales are the scales derived for one layer.
type LayerScales struct {
	// Fill maps the layer's group keys to colors. It is nil
	// unless the layer has both a fill aesthetic and colors.
	Fill *scales.ColorScale
}

func (l *Layer) clone() *Layer {
	n := *l
	n.Aesthetics = l.Aesthetics.Clone()
	n.Colors = append([]string(nil), l.Colors...)
	n.Scales = LayerScales{}
	return &n
}

// validate checks l for registration in e.
func (l *Layer) validate(e *Env) error {
	if l.Geom == nil {
		return fmt.Errorf("layer has no geom: %w", ErrInvalidLayer)
	}
	if len(l.Colors) > 0 {
		if _, err := scales.ParseColors(l.Colors); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidLayer, err)
		}
	}
	// Layers that draw the default table may register before the
	// table is set, so only check layers with their own data.
	if l.Table != nil {
		for _, r := range l.Aesthetics.Roles() {
			if err := table.Require(l.Table, l.Aesthetics[r]...); err != nil {
				return fmt.Errorf("%w: role %s: %v", ErrInvalidLayer, r, err)
			}
		}
	}
	return nil
}

// A Geom is the kind of mark a layer draws, together with the
// parameters specific to that kind.
//
// The set of geoms is closed: Bars, Squares and Line.
type Geom interface {
	// Name returns a short name for the geom, such as "bars".
	Name() string

	isGeom()
}

// Bars draws a rectangle per row, spanning the xMin, xMax, yMin and
// yMax roles. Histograms are drawn with Bars.
type Bars struct {
	Position bin.Position
	BinCount int
}

// Squares draws a heatmap cell per row, spanning the xMin, xMax, yMin
// and yMax roles, colored by the fill role.
type Squares struct {
	BinSize float64
}

// Line draws a line through the x and y roles of the rows of each
// fill group, in x order.
type Line struct{}

func (Bars) Name() string    { return "bars" }
func (Squares) Name() string { return "squares" }
func (Line) Name() string    { return "line" }

func (Bars) isGeom()    {}
func (Squares) isGeom() {}
func (Line) isGeom()    {}
