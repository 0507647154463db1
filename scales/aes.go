// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scales

import "sort"

// A Role is a semantic visual role a column can be bound to.
type Role string

const (
	X    Role = "x"
	Y    Role = "y"
	XMin Role = "xMin"
	XMax Role = "xMax"
	YMin Role = "yMin"
	YMax Role = "yMax"
	Fill Role = "fill"
)

// Roles whose columns determine the x and y domains of a plot.
var (
	XRoles = []Role{X, XMin, XMax}
	YRoles = []Role{Y, YMin, YMax}
)

// Aesthetics binds roles to source column names. Most roles bind a
// single column. Fill may bind several, which together form a
// composite group key.
type Aesthetics map[Role][]string

// Col returns the single column bound to r, or "" if r is unbound.
func (a Aesthetics) Col(r Role) string {
	if cols := a[r]; len(cols) > 0 {
		return cols[0]
	}
	return ""
}

// Has reports whether any column is bound to r.
func (a Aesthetics) Has(r Role) bool {
	return len(a[r]) > 0
}

// Columns returns every column bound to any of roles, in role order.
func (a Aesthetics) Columns(roles ...Role) []string {
	var out []string
	for _, r := range roles {
		out = append(out, a[r]...)
	}
	return out
}

// Clone returns a deep copy of a.
func (a Aesthetics) Clone() Aesthetics {
	if a == nil {
		return nil
	}
	out := make(Aesthetics, len(a))
	for r, cols := range a {
		out[r] = append([]string(nil), cols...)
	}
	return out
}

// Equal reports whether a and o bind the same columns to the same
// roles. Unbound roles and roles bound to no columns are equivalent.
func (a Aesthetics) Equal(o Aesthetics) bool {
	for _, pair := range [][2]Aesthetics{{a, o}, {o, a}} {
		for r, cols := range pair[0] {
			other := pair[1][r]
			if len(cols) != len(other) {
				return false
			}
			for i := range cols {
				if cols[i] != other[i] {
					return false
				}
			}
		}
	}
	return true
}

// Roles returns the bound roles of a in sorted order.
func (a Aesthetics) Roles() []Role {
	var rs []Role
	for r, cols := range a {
		if len(cols) > 0 {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}
