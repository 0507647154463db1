// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestDomain(t *testing.T) {
	var empty Domain
	if !empty.IsEmpty() || empty.Width() != 0 || empty.Contains(0) {
		t.Errorf("zero Domain should be empty")
	}
	if d := NewDomain(9, 2); d != NewDomain(2, 9) {
		t.Errorf("NewDomain should order its bounds; got %v", d)
	}
	if d := NewDomain(math.NaN(), 1); !d.IsEmpty() {
		t.Errorf("NewDomain with NaN should be empty; got %v", d)
	}
	if d := NewDomain(3, 3); !d.IsDegenerate() {
		t.Errorf("%v should be degenerate", d)
	}

	for _, test := range []struct {
		a, b, want Domain
	}{
		{NewDomain(2, 9), NewDomain(-1, 5), NewDomain(-1, 9)},
		{NewDomain(2, 9), Domain{}, NewDomain(2, 9)},
		{Domain{}, NewDomain(-1, 5), NewDomain(-1, 5)},
		{Domain{}, Domain{}, Domain{}},
	} {
		if got := test.a.Union(test.b); got != test.want {
			t.Errorf("%v.Union(%v): want %v; got %v", test.a, test.b, test.want, got)
		}
	}
	if got := UnionAll(NewDomain(0, 1), Domain{}, NewDomain(5, 6)); got != NewDomain(0, 6) {
		t.Errorf("UnionAll: want [0, 6]; got %v", got)
	}
}

func TestExtent(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	for _, test := range []struct {
		xs   []float64
		want Domain
	}{
		{nil, Domain{}},
		{[]float64{nan, inf}, Domain{}},
		{[]float64{3, 1, 2}, NewDomain(1, 3)},
		{[]float64{nan, 5, -inf, -2}, NewDomain(-2, 5)},
		{[]float64{4}, NewDomain(4, 4)},
	} {
		if got := Extent(test.xs); got != test.want {
			t.Errorf("Extent(%v): want %v; got %v", test.xs, test.want, got)
		}
	}
}

func TestLinear(t *testing.T) {
	s := NewLinear(NewDomain(0, 10), 0, 200)
	for _, test := range []struct{ x, y float64 }{{0, 0}, {5, 100}, {10, 200}, {-5, -100}} {
		if got := s.Map(test.x); got != test.y {
			t.Errorf("Map(%v): want %v; got %v", test.x, test.y, got)
		}
		if got := s.Invert(test.y); got != test.x {
			t.Errorf("Invert(%v): want %v; got %v", test.y, test.x, got)
		}
	}

	// Inverted output range, as for y axes.
	s = NewLinear(NewDomain(0, 10), 100, 0)
	if got := s.Map(0); got != 100 {
		t.Errorf("inverted Map(0): want 100; got %v", got)
	}
	if got := s.Map(10); got != 0 {
		t.Errorf("inverted Map(10): want 0; got %v", got)
	}

	if got := NewLinear(NewDomain(3, 3), 0, 100).Map(3); got != 50 {
		t.Errorf("degenerate domain should map to the middle; got %v", got)
	}
	if got := NewLinear(Domain{}, 0, 100).Map(3); !math.IsNaN(got) {
		t.Errorf("empty domain should map to NaN; got %v", got)
	}
}

func TestTicks(t *testing.T) {
	if ticks := Ticks(Domain{}, 5); ticks != nil {
		t.Errorf("empty domain should have no ticks; got %v", ticks)
	}
	if ticks := Ticks(NewDomain(0, 10), 0); ticks != nil {
		t.Errorf("n=0 should give no ticks; got %v", ticks)
	}
	for _, test := range []struct {
		d Domain
		n int
	}{
		{NewDomain(0, 10), 3},
		{NewDomain(0, 10), 11},
		{NewDomain(-1, 9), 5},
		{NewDomain(0, 100), 4},
		{NewDomain(1e9, 5e9), 10},
	} {
		ticks := Ticks(test.d, test.n)
		if len(ticks) == 0 || len(ticks) > test.n {
			t.Errorf("Ticks(%v, %d): want between 1 and %d ticks; got %v", test.d, test.n, test.n, ticks)
		}
		for i, x := range ticks {
			slack := test.d.Width() * 1e-9
			if x < test.d.Lo-slack || x > test.d.Hi+slack {
				t.Errorf("Ticks(%v, %d): tick %v outside domain", test.d, test.n, x)
			}
			if i > 0 && ticks[i-1] >= x {
				t.Errorf("Ticks(%v, %d): ticks not increasing: %v", test.d, test.n, ticks)
			}
		}
	}
	if w, g := []float64{0, 5, 10}, Ticks(NewDomain(0, 10), 3); len(g) != 3 || g[0] != w[0] || g[1] != w[1] || g[2] != w[2] {
		t.Errorf("Ticks([0, 10], 3): want %v; got %v", w, g)
	}
}

func TestFormatTick(t *testing.T) {
	for _, test := range []struct {
		x    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{5, "5"},
		{0.1 * 3, "0.3"},
		{-2.5, "-2.5"},
		{1000000, "1000000"},
	} {
		if got := FormatTick(test.x); got != test.want {
			t.Errorf("FormatTick(%v): want %q; got %q", test.x, test.want, got)
		}
	}
}

func TestAesthetics(t *testing.T) {
	a := Aesthetics{X: {"time"}, Fill: {"host", "cpu"}, Y: nil}
	if a.Col(X) != "time" || a.Col(Y) != "" {
		t.Errorf("Col: got %q, %q", a.Col(X), a.Col(Y))
	}
	if a.Has(Y) || !a.Has(Fill) {
		t.Errorf("Has: unbound roles should not be reported")
	}
	if got := a.Columns(XRoles...); len(got) != 1 || got[0] != "time" {
		t.Errorf("Columns(XRoles): want [time]; got %v", got)
	}
	b := a.Clone()
	b[Fill][0] = "other"
	if a[Fill][0] != "host" {
		t.Errorf("Clone shares column slices")
	}
	if a.Equal(b) {
		t.Errorf("Equal: %v and %v should differ", a, b)
	}
	if !a.Equal(Aesthetics{X: {"time"}, Fill: {"host", "cpu"}}) {
		t.Errorf("Equal: roles bound to no columns should be ignored")
	}
	if got := a.Roles(); len(got) != 2 || got[0] != Fill || got[1] != X {
		t.Errorf("Roles: want [fill x]; got %v", got)
	}
}

func TestGradientRGB(t *testing.T) {
	g, err := Gradient([]string{"#000000", "#ffffff"}, ModeRGB)
	if err != nil {
		t.Fatal(err)
	}
	// Half intensity in linear RGB is 0.735 in sRGB.
	mid := toRGBA(g.Map(0.5))
	for _, c := range []uint8{mid.R, mid.G, mid.B} {
		if c < 187 || c > 189 {
			t.Errorf("want linear-RGB midpoint near 188; got %v", mid)
			break
		}
	}
	if c := toRGBA(g.Map(0.25)); c.R >= mid.R || c.R == 0 {
		t.Errorf("want quarter point between black and midpoint; got %v", c)
	}
}

func TestColorScale(t *testing.T) {
	if _, err := NewColorScale([]string{"a"}, nil, ModeLCh); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("want ErrInvalidColor for no colors; got %v", err)
	}
	if _, err := NewColorScale([]string{"a"}, []string{"#zzzzzz"}, ModeLCh); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("want ErrInvalidColor for bad color; got %v", err)
	}

	black, white := color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}
	for _, mode := range []Mode{ModeLCh, ModeRGB} {
		s, err := NewColorScale([]string{"a", "b", "c"}, []string{"#000000", "#ffffff"}, mode)
		if err != nil {
			t.Fatal(err)
		}
		if c, _ := s.Lookup("a"); c != black {
			t.Errorf("mode %v: want first key black; got %v", mode, c)
		}
		if c, _ := s.Lookup("c"); c != white {
			t.Errorf("mode %v: want last key white; got %v", mode, c)
		}
		mid, ok := s.Lookup("b")
		if !ok || mid == black || mid == white {
			t.Errorf("mode %v: want middle key between black and white; got %v", mode, mid)
		}
		if c := s.Map("nope"); c != s.Unknown {
			t.Errorf("mode %v: want Unknown color for unknown key; got %v", mode, c)
		}
	}

	// A single key samples the middle of the gradient.
	one, err := NewColorScale([]string{"only"}, []string{"#ff0000"}, ModeLCh)
	if err != nil {
		t.Fatal(err)
	}
	if got := Hex(one.Map("only")); got != "#ff0000" {
		t.Errorf("want #ff0000; got %s", got)
	}

	s1, _ := NewColorScale([]string{"a", "b"}, []string{"#123456", "#abcdef"}, ModeLCh)
	s2, _ := NewColorScale([]string{"a", "b"}, []string{"#123456", "#abcdef"}, ModeLCh)
	if !s1.Equal(s2) {
		t.Errorf("equal inputs should build equal scales")
	}
}
