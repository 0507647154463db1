// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// A StableDomain chooses the domain a layer bins over and reports when
// that choice changes, so the layer rebuilds only on real changes.
//
// The zero StableDomain is ready to use.
type StableDomain struct {
	last    scales.Domain
	lastCol *table.Column
	fromCol bool
	gen     int
}

// Resolve returns domain if it is not empty and otherwise the extent
// of col. It reports whether the result differs from the previous call.
//
// The extent of col is computed only when col is a different column
// from the last call; an unchanged column returns the cached domain.
func (s *StableDomain) Resolve(domain scales.Domain, col *table.Column) (scales.Domain, bool) {
	var d scales.Domain
	switch {
	case !domain.IsEmpty():
		d = domain
		s.fromCol, s.lastCol = false, nil
	case s.fromCol && col == s.lastCol:
		return s.last, false
	default:
		if col != nil {
			d = scales.Extent(col.Floats())
		}
		s.fromCol, s.lastCol = true, col
	}
	if d == s.last && s.gen > 0 {
		return s.last, false
	}
	s.last = d
	s.gen++
	return d, true
}

// Generation returns the number of times the resolved domain has
// changed. Callers can compare generations instead of domains.
func (s *StableDomain) Generation() int {
	return s.gen
}

// Domain returns the most recently resolved domain.
func (s *StableDomain) Domain() scales.Domain {
	return s.last
}
