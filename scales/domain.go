// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales builds the mappings from data values to visual
// values used by plot layers: numeric domains, linear position
// scales with nice ticks, aesthetic role bindings, and categorical
// color scales.
package scales

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Domain is a closed interval [Lo, Hi] of data values an axis must
// represent.
//
// The zero Domain is empty: it represents no values at all, as when a
// plot has no data. Domains are comparable with ==.
type Domain struct {
	Lo, Hi float64
	valid  bool
}

// NewDomain returns the domain [lo, hi]. If lo > hi, they are swapped.
// If either bound is NaN, NewDomain returns the empty domain.
func NewDomain(lo, hi float64) Domain {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Domain{}
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	return Domain{lo, hi, true}
}

// IsEmpty reports whether d is the empty domain.
func (d Domain) IsEmpty() bool {
	return !d.valid
}

// IsDegenerate reports whether d is non-empty but has zero width.
func (d Domain) IsDegenerate() bool {
	return d.valid && d.Lo == d.Hi
}

// Width returns Hi-Lo, or 0 for the empty domain.
func (d Domain) Width() float64 {
	if !d.valid {
		return 0
	}
	return d.Hi - d.Lo
}

// Contains reports whether x is in d.
func (d Domain) Contains(x float64) bool {
	return d.valid && d.Lo <= x && x <= d.Hi
}

// Union returns the smallest domain containing both d and o.
func (d Domain) Union(o Domain) Domain {
	switch {
	case !d.valid:
		return o
	case !o.valid:
		return d
	}
	return Domain{math.Min(d.Lo, o.Lo), math.Max(d.Hi, o.Hi), true}
}

func (d Domain) String() string {
	if !d.valid {
		return "[]"
	}
	return fmt.Sprintf("[%g, %g]", d.Lo, d.Hi)
}

// Extent returns the smallest domain containing every finite value in
// xs. NaN and infinite values are ignored. If xs has no finite values,
// Extent returns the empty domain.
func Extent(xs []float64) Domain {
	finite := xs
	for i, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			// Only copy when there is something to drop.
			finite = make([]float64, 0, len(xs))
			finite = append(finite, xs[:i]...)
			for _, x := range xs[i+1:] {
				if !math.IsNaN(x) && !math.IsInf(x, 0) {
					finite = append(finite, x)
				}
			}
			break
		}
	}
	if len(finite) == 0 {
		return Domain{}
	}
	lo, hi := stats.Bounds(finite)
	return Domain{lo, hi, true}
}

// UnionAll returns the union of ds: the extent of extents.
func UnionAll(ds ...Domain) Domain {
	var u Domain
	for _, d := range ds {
		u = u.Union(d)
	}
	return u
}
