// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"math"

	"github.com/aclements/go-minard/scales"
)

// resolveLayout computes the ticks, margins, inner dimensions and
// position scales from the dimensions and domains of e.
func (e *Env) resolveLayout() {
	c := e.layout

	e.xTicks, e.xTickLabels = e.ticks(e.xDomain, e.width)
	e.yTicks, e.yTickLabels = e.ticks(e.yDomain, e.height)

	var yTickWidth float64
	for _, label := range e.yTickLabels {
		yTickWidth = math.Max(yTickWidth, e.measure(label))
	}

	e.margins = Margins{
		Top:    c.Padding,
		Right:  c.Padding,
		Bottom: c.TickCharHeight + c.TickPaddingTop + c.Padding,
		Left:   yTickWidth + c.TickPaddingRight + c.Padding,
	}
	e.innerWidth = e.width - e.margins.Left - e.margins.Right
	e.innerHeight = e.height - e.margins.Top - e.margins.Bottom

	e.xScale = scales.NewLinear(e.xDomain, 0, e.innerWidth)
	e.yScale = scales.NewLinear(e.yDomain, e.innerHeight, 0)
}

// ticks returns nicely rounded ticks over d and their labels. The
// number of ticks is chosen so their labels cover about
// TickDensity of length pixels.
func (e *Env) ticks(d scales.Domain, length float64) ([]float64, []string) {
	if d.IsEmpty() {
		return nil, nil
	}
	// Estimate label width from the domain bounds, since the
	// ticks are not known yet.
	approx := math.Max(e.measure(scales.FormatTick(d.Lo)), e.measure(scales.FormatTick(d.Hi)))
	if approx <= 0 {
		return nil, nil
	}
	n := int(math.Round(length / approx * e.layout.TickDensity))
	ticks := scales.Ticks(d, n)
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		labels[i] = scales.FormatTick(t)
	}
	return ticks, labels
}
