// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-gg/palette"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned for color lists that are empty or
// contain a color that cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Mode selects the color space used to interpolate between colors.
type Mode int

const (
	// ModeLCh interpolates in CIE LCh, which is perceptually
	// uniform: equal steps look like equal changes in color.
	ModeLCh Mode = iota
	// ModeRGB interpolates in linear RGB, which is how go-gg's
	// palettes blend.
	ModeRGB
)

// ParseColors parses a list of hex colors ("#rrggbb" or "#rgb").
func ParseColors(colors []string) ([]colorful.Color, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("empty color list: %w", ErrInvalidColor)
	}
	out := make([]colorful.Color, len(colors))
	for i, s := range colors {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, fmt.Errorf("color %q: %w", s, ErrInvalidColor)
		}
		out[i] = c
	}
	return out, nil
}

// Gradient returns a continuous palette that evenly spaces colors on
// [0, 1] and interpolates between them in the given mode.
func Gradient(colors []string, mode Mode) (palette.Continuous, error) {
	cs, err := ParseColors(colors)
	if err != nil {
		return nil, err
	}
	return gradient{cs, mode}, nil
}

// gradient is a palette.Continuous over evenly spaced stops.
type gradient struct {
	stops []colorful.Color
	mode  Mode
}

func (g gradient) Map(x float64) color.Color {
	if len(g.stops) == 1 || x <= 0 {
		return g.stops[0]
	} else if x >= 1 {
		return g.stops[len(g.stops)-1]
	}
	ip, fr := math.Modf(x * float64(len(g.stops)-1))
	i := int(ip)
	if fr == 0 {
		return g.stops[i]
	}
	a, b := g.stops[i], g.stops[i+1]
	if g.mode == ModeRGB {
		return blendLinearRGB(a, b, fr).Clamped()
	}
	return a.BlendHcl(b, fr).Clamped()
}

// blendLinearRGB blends a and b in linear RGB, which is how light
// mixes.
func blendLinearRGB(a, b colorful.Color, t float64) colorful.Color {
	r1, g1, b1 := a.LinearRgb()
	r2, g2, b2 := b.LinearRgb()
	return colorful.LinearRgb(r1+t*(r2-r1), g1+t*(g2-g1), b1+t*(b2-b1))
}

// Sample returns n colors evenly sampled from p, including both ends.
// A single sample is taken from the middle of p.
func Sample(p palette.Continuous, n int) []color.RGBA {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []color.RGBA{toRGBA(p.Map(0.5))}
	}
	out := make([]color.RGBA, n)
	for i := range out {
		out[i] = toRGBA(p.Map(float64(i) / float64(n-1)))
	}
	return out
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	rgba := toRGBA(c)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

// ColorScale is a categorical scale from group keys to colors.
type ColorScale struct {
	keys   []string
	colors []color.RGBA
	index  map[string]int

	// Unknown is the color of keys outside the scale's domain.
	Unknown color.Color
}

// NewColorScale returns a scale that maps the i'th key to the i'th of
// len(keys) colors sampled from the gradient of colors.
func NewColorScale(keys []string, colors []string, mode Mode) (*ColorScale, error) {
	g, err := Gradient(colors, mode)
	if err != nil {
		return nil, err
	}
	s := &ColorScale{
		keys:    append([]string(nil), keys...),
		colors:  Sample(g, len(keys)),
		index:   make(map[string]int, len(keys)),
		Unknown: color.Gray{128},
	}
	for i, k := range keys {
		s.index[k] = i
	}
	return s, nil
}

// Domain returns the keys of s in order.
func (s *ColorScale) Domain() []string {
	return append([]string(nil), s.keys...)
}

// Range returns the colors of s, parallel to Domain.
func (s *ColorScale) Range() []color.RGBA {
	return append([]color.RGBA(nil), s.colors...)
}

// Lookup returns the color of key and whether key is in s's domain.
func (s *ColorScale) Lookup(key string) (color.RGBA, bool) {
	i, ok := s.index[key]
	if !ok {
		return color.RGBA{}, false
	}
	return s.colors[i], true
}

// Map returns the color of key, or s.Unknown if key is not in the
// domain.
func (s *ColorScale) Map(key string) color.Color {
	if c, ok := s.Lookup(key); ok {
		return c
	}
	return s.Unknown
}

// Equal reports whether s and o map the same keys to the same colors.
func (s *ColorScale) Equal(o *ColorScale) bool {
	if s == nil || o == nil {
		return s == o
	}
	if len(s.keys) != len(o.keys) {
		return false
	}
	for i := range s.keys {
		if s.keys[i] != o.keys[i] || s.colors[i] != o.colors[i] {
			return false
		}
	}
	return true
}
