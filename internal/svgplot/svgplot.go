// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svgplot draws a plot environment as SVG.
package svgplot

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/aclements/go-minard/layers"
	"github.com/aclements/go-minard/plotenv"
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultColor fills marks of layers without a fill scale.
const DefaultColor = "#31c0f6"

// face is the font tick labels are drawn and measured in.
var face = basicfont.Face7x13

// Measure returns the width in pixels of label drawn in the font
// Render uses. It is suitable for plotenv.WithMeasurer.
func Measure(label string) float64 {
	return float64(font.MeasureString(face, label).Ceil())
}

// Render writes env as an SVG image to w. Layers are drawn in key
// order, followed by the axes. If the inner plotting rectangle is
// empty, only the background is drawn.
func Render(w io.Writer, env *plotenv.Env) error {
	width, height := px(env.Width()), px(env.Height())
	canvas := svg.New(w)
	canvas.Start(width, height, `font-family="monospace"`, fmt.Sprintf(`font-size="%dpx"`, face.Height))
	canvas.Rect(0, 0, width, height, "fill:white")

	if env.InnerWidth() > 0 && env.InnerHeight() > 0 {
		m := env.Margins()
		canvas.Gtransform(fmt.Sprintf("translate(%d,%d)", px(m.Left), px(m.Top)))
		for _, key := range env.LayerKeys() {
			l := env.Layer(key)
			switch l.Geom.(type) {
			case plotenv.Bars:
				drawRects(canvas, env, l, false)
			case plotenv.Squares:
				drawRects(canvas, env, l, true)
			case plotenv.Line:
				drawLines(canvas, env, l)
			}
		}
		drawAxes(canvas, env)
		canvas.Gend()
	}

	canvas.End()
	return nil
}

func px(x float64) int {
	return int(math.Floor(x + 0.5))
}

// fillColor returns the color of row of l.
func fillColor(env *plotenv.Env, l *plotenv.Layer, row int) string {
	if l.Scales.Fill == nil {
		return DefaultColor
	}
	key := table.GroupKey(env.TableOf(l), l.Aesthetics[scales.Fill], row)
	return scales.Hex(l.Scales.Fill.Map(key))
}

func drawRects(canvas *svg.SVG, env *plotenv.Env, l *plotenv.Layer, skipEmpty bool) {
	tab := env.TableOf(l)
	var cols [4][]float64
	for i, r := range []scales.Role{scales.XMin, scales.XMax, scales.YMin, scales.YMax} {
		xs, err := tab.Floats(l.Aesthetics.Col(r))
		if err != nil {
			return
		}
		cols[i] = xs
	}
	var fill []float64
	if skipEmpty {
		fill, _ = tab.Floats(l.Aesthetics.Col(scales.Fill))
	}

	hovered := make(map[int]bool)
	for _, r := range layers.HoveredRows(env, l) {
		hovered[r] = true
	}

	xs, ys := env.XScale(), env.YScale()
	for row := 0; row < tab.Len(); row++ {
		if fill != nil && fill[row] == 0 {
			continue
		}
		x0, x1 := xs.Map(cols[0][row]), xs.Map(cols[1][row])
		y0, y1 := ys.Map(cols[3][row]), ys.Map(cols[2][row])
		if y1 == y0 {
			continue
		}
		style := "fill:" + fillColor(env, l, row)
		if hovered[row] {
			style += ";stroke:black"
		}
		canvas.Rect(px(x0), px(y0), px(x1)-px(x0), px(y1)-px(y0), style)
	}
}

func drawLines(canvas *svg.SVG, env *plotenv.Env, l *plotenv.Layer) {
	tab := env.TableOf(l)
	xv, err1 := tab.Floats(l.Aesthetics.Col(scales.X))
	yv, err2 := tab.Floats(l.Aesthetics.Col(scales.Y))
	if err1 != nil || err2 != nil {
		return
	}

	fillCols := l.Aesthetics[scales.Fill]
	groups := make(map[string][]int)
	var keys []string
	for row := 0; row < tab.Len(); row++ {
		if math.IsNaN(xv[row]) || math.IsNaN(yv[row]) {
			continue
		}
		k := table.GroupKey(tab, fillCols, row)
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], row)
	}
	sort.Strings(keys)

	xs, ys := env.XScale(), env.YScale()
	for _, k := range keys {
		rows := groups[k]
		sort.SliceStable(rows, func(i, j int) bool { return xv[rows[i]] < xv[rows[j]] })
		px0, py0 := make([]int, len(rows)), make([]int, len(rows))
		for i, r := range rows {
			px0[i], py0[i] = px(xs.Map(xv[r])), px(ys.Map(yv[r]))
		}
		canvas.Polyline(px0, py0, "fill:none;stroke-width:2;stroke:"+fillColor(env, l, rows[0]))
	}
}

func drawAxes(canvas *svg.SVG, env *plotenv.Env) {
	const stroke = "stroke:#888"
	c := env.Layout()
	w, h := px(env.InnerWidth()), px(env.InnerHeight())

	canvas.Line(0, h, w, h, stroke)
	canvas.Line(0, 0, 0, h, stroke)

	xs, ys := env.XScale(), env.YScale()
	labels := env.XTickLabels()
	for i, t := range env.XTicks() {
		x := px(xs.Map(t))
		canvas.Line(x, h, x, h+4, stroke)
		canvas.Text(x, h+px(c.TickPaddingTop), labels[i], `text-anchor="middle" dy="1em"`)
	}
	labels = env.YTickLabels()
	for i, t := range env.YTicks() {
		y := px(ys.Map(t))
		canvas.Line(-4, y, 0, y, stroke)
		canvas.Text(-px(c.TickPaddingRight), y, labels[i], `text-anchor="end" dy=".3em"`)
	}
}
