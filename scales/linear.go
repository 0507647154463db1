// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
)

// Linear maps a numeric domain linearly onto an output range
// [R0, R1]. R0 may be greater than R1, as for a y axis whose domain
// minimum maps to the bottom of the plot.
//
// A degenerate domain maps every value to the middle of the range.
// The empty domain maps every value to NaN.
type Linear struct {
	Domain Domain
	R0, R1 float64
}

// NewLinear returns a scale mapping d onto [r0, r1].
func NewLinear(d Domain, r0, r1 float64) Linear {
	return Linear{d, r0, r1}
}

func (s Linear) unit() scale.Linear {
	return scale.Linear{Min: s.Domain.Lo, Max: s.Domain.Hi}
}

// Map maps data value x to the output range.
func (s Linear) Map(x float64) float64 {
	if s.Domain.IsEmpty() {
		return math.NaN()
	}
	return s.R0 + s.unit().Map(x)*(s.R1-s.R0)
}

// Invert maps output value y back to the data domain.
func (s Linear) Invert(y float64) float64 {
	if s.Domain.IsEmpty() || s.R0 == s.R1 {
		return math.NaN()
	}
	return s.unit().Unmap((y - s.R0) / (s.R1 - s.R0))
}

// Ticks returns at most n nicely rounded tick values inside d, in
// increasing order. It returns nil if d is empty or n < 1.
func Ticks(d Domain, n int) []float64 {
	if d.IsEmpty() || n < 1 {
		return nil
	}
	major, _ := scale.Linear{Min: d.Lo, Max: d.Hi}.Ticks(scale.TickOptions{Max: n})
	return major
}

// FormatTick formats a tick value for display. It uses enough
// precision to distinguish nice tick values but hides the rounding
// noise of computing them.
func FormatTick(x float64) string {
	if x == 0 {
		// Avoid "-0".
		return "0"
	}
	return strconv.FormatFloat(x, 'g', 10, 64)
}
