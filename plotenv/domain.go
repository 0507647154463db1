// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// resolveDomain returns controlled if it is set. Otherwise, it returns
// the union of the extents of every column bound to one of roles by a
// registered layer. If no layer binds any of roles, it uses the
// default layer: the default aesthetics over the default table.
func (e *Env) resolveDomain(controlled scales.Domain, roles []scales.Role) scales.Domain {
	if !controlled.IsEmpty() {
		return controlled
	}

	var d scales.Domain
	found := false
	for _, key := range e.LayerKeys() {
		l := e.layers[key]
		cols := l.Aesthetics.Columns(roles...)
		if len(cols) == 0 {
			continue
		}
		found = true
		d = d.Union(extentOf(e.TableOf(l), cols))
	}
	if !found {
		d = extentOf(e.table, e.aesthetics.Columns(roles...))
	}
	return d
}

// extentOf returns the union of the extents of cols in t. Missing and
// non-numeric columns have no extent.
func extentOf(t *table.Table, cols []string) scales.Domain {
	var d scales.Domain
	for _, name := range cols {
		xs, err := t.Floats(name)
		if err != nil {
			continue
		}
		d = d.Union(scales.Extent(xs))
	}
	return d
}
