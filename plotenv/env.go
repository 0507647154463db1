// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotenv implements the shared state of a plot: its
// dimensions, the layers drawn in it, and the domains, ticks, margins
// and scales derived from them.
//
// An Env is an immutable snapshot. The only way to get a new Env is to
// apply an Action to an existing one with Reduce, which recomputes all
// derived state in a fixed order: domains, then layout, then fill
// scales. Applying the same sequence of actions to the same initial
// Env always produces the same result.
//
// A Plot holds the current Env of one plot and serializes the actions
// dispatched to it. Layers register themselves with a Plot through
// Activate, which ties a layer's registration to the lifetime of the
// Handle it returns.
package plotenv

import (
	"sort"

	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
	"go.uber.org/zap"
)

// Margins is the space reserved around the inner plotting rectangle,
// in pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// LayoutConfig holds the constants used to lay out a plot's axes. All
// values are in pixels except TickDensity.
type LayoutConfig struct {
	// Padding is the space around the plot on every side, in
	// addition to the space taken by tick labels.
	Padding float64

	// TickCharWidth and TickCharHeight are the approximate size
	// of one tick label character.
	TickCharWidth  float64
	TickCharHeight float64

	// TickPaddingRight separates y tick labels from the plot.
	TickPaddingRight float64
	// TickPaddingTop separates x tick labels from the plot.
	TickPaddingTop float64

	// TickDensity is the fraction of an axis that tick labels
	// should cover.
	TickDensity float64
}

// DefaultLayout is the layout used by New unless overridden with
// WithLayout.
var DefaultLayout = LayoutConfig{
	Padding:          20,
	TickCharWidth:    7,
	TickCharHeight:   10,
	TickPaddingRight: 8,
	TickPaddingTop:   5,
	TickDensity:      0.3,
}

// Point is a position in the inner plotting rectangle, in pixels.
type Point struct {
	X, Y float64
}

// Env is a snapshot of a plot's state.
//
// The fields of an Env are private; everything about a plot other
// than its layer set, dimensions, default table, controlled domains
// and hover point is derived from those by Reduce.
type Env struct {
	width, height           float64
	innerWidth, innerHeight float64

	table      *table.Table
	aesthetics scales.Aesthetics
	xScale     scales.Linear
	yScale     scales.Linear

	layers map[string]*Layer

	xDomain, yDomain         scales.Domain
	controlledX, controlledY scales.Domain
	hover                    *Point
	xTicks, yTicks           []float64
	xTickLabels, yTickLabels []string
	margins                  Margins

	layout  LayoutConfig
	measure func(string) float64
}

// An Option configures a new Env or Plot.
type Option func(*config)

type config struct {
	layout     LayoutConfig
	measure    func(string) float64
	aesthetics scales.Aesthetics
	table      *table.Table
	logger     *zap.Logger
}

// WithLayout sets the layout constants of a plot.
func WithLayout(l LayoutConfig) Option {
	return func(c *config) { c.layout = l }
}

// WithMeasurer sets the function used to measure the rendered width of
// a tick label in pixels. By default, a label is as wide as its number
// of characters times LayoutConfig.TickCharWidth.
func WithMeasurer(measure func(label string) float64) Option {
	return func(c *config) { c.measure = measure }
}

// WithDefaultAesthetics sets the aesthetics of the default layer,
// which determines the domains of axes no registered layer uses.
func WithDefaultAesthetics(aes scales.Aesthetics) Option {
	return func(c *config) { c.aesthetics = aes.Clone() }
}

// WithTable sets the initial default table.
func WithTable(t *table.Table) Option {
	return func(c *config) { c.table = t }
}

// WithLogger sets the logger of a Plot. It has no effect on New.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{layout: DefaultLayout, logger: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	if c.measure == nil {
		w := c.layout.TickCharWidth
		c.measure = func(label string) float64 {
			return float64(len(label)) * w
		}
	}
	return c
}

// New returns an Env with no layers and zero dimensions.
func New(opts ...Option) *Env {
	return newEnv(newConfig(opts))
}

func newEnv(c *config) *Env {
	e := &Env{
		table:      c.table,
		aesthetics: c.aesthetics,
		layers:     make(map[string]*Layer),
		layout:     c.layout,
		measure:    c.measure,
	}
	e.recompute(passAll)
	return e
}

// clone returns a shallow copy of e that can be modified without
// affecting e. Layers are shared; they are never modified in place.
func (e *Env) clone() *Env {
	n := *e
	n.layers = make(map[string]*Layer, len(e.layers))
	for k, l := range e.layers {
		n.layers[k] = l
	}
	return &n
}

// Width returns the width of the plot in pixels.
func (e *Env) Width() float64 { return e.width }

// Height returns the height of the plot in pixels.
func (e *Env) Height() float64 { return e.height }

// InnerWidth returns the width of the inner plotting rectangle. It
// may be zero or negative if the plot is smaller than its margins, in
// which case there is nothing to draw.
func (e *Env) InnerWidth() float64 { return e.innerWidth }

// InnerHeight returns the height of the inner plotting rectangle. See
// InnerWidth.
func (e *Env) InnerHeight() float64 { return e.innerHeight }

// Margins returns the space around the inner plotting rectangle.
func (e *Env) Margins() Margins { return e.margins }

// XDomain returns the current x domain, which is empty if there is no
// x data.
func (e *Env) XDomain() scales.Domain { return e.xDomain }

// YDomain returns the current y domain.
func (e *Env) YDomain() scales.Domain { return e.yDomain }

// ControlledXDomain returns the externally set x domain, or the empty
// domain if the x domain is computed from the data.
func (e *Env) ControlledXDomain() scales.Domain { return e.controlledX }

// ControlledYDomain returns the externally set y domain.
func (e *Env) ControlledYDomain() scales.Domain { return e.controlledY }

// XTicks returns the x axis tick positions in data units.
func (e *Env) XTicks() []float64 { return append([]float64(nil), e.xTicks...) }

// YTicks returns the y axis tick positions in data units.
func (e *Env) YTicks() []float64 { return append([]float64(nil), e.yTicks...) }

// XTickLabels returns the labels of XTicks.
func (e *Env) XTickLabels() []string { return append([]string(nil), e.xTickLabels...) }

// YTickLabels returns the labels of YTicks.
func (e *Env) YTickLabels() []string { return append([]string(nil), e.yTickLabels...) }

// XScale maps the x domain onto [0, InnerWidth].
func (e *Env) XScale() scales.Linear { return e.xScale }

// YScale maps the y domain onto [InnerHeight, 0], so larger values
// are higher.
func (e *Env) YScale() scales.Linear { return e.yScale }

// DefaultTable returns the table of layers that do not have their
// own. It may be nil.
func (e *Env) DefaultTable() *table.Table { return e.table }

// DefaultAesthetics returns the aesthetics of the default layer.
func (e *Env) DefaultAesthetics() scales.Aesthetics { return e.aesthetics.Clone() }

// Layout returns the layout constants of e.
func (e *Env) Layout() LayoutConfig { return e.layout }

// Hover returns the hovered point in the inner plotting rectangle, if
// any.
func (e *Env) Hover() (Point, bool) {
	if e.hover == nil {
		return Point{}, false
	}
	return *e.hover, true
}

// Layer returns the layer registered under key, or nil. The returned
// Layer must not be modified.
func (e *Env) Layer(key string) *Layer {
	return e.layers[key]
}

// LayerKeys returns the keys of all registered layers in sorted order.
func (e *Env) LayerKeys() []string {
	keys := make([]string, 0, len(e.layers))
	for k := range e.layers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TableOf returns the table l draws: its own table, or the default
// table if it has none.
func (e *Env) TableOf(l *Layer) *table.Table {
	if l.Table != nil {
		return l.Table
	}
	return e.table
}
