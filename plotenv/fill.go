// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// resolveFills computes the fill scale of every layer that has a fill
// aesthetic and colors, and clears it on every other layer.
func (e *Env) resolveFills() {
	for _, key := range e.LayerKeys() {
		l := e.layers[key]
		var fill *scales.ColorScale
		if cols := l.Aesthetics[scales.Fill]; len(cols) > 0 && len(l.Colors) > 0 {
			// Colors were checked at registration.
			fill, _ = scales.NewColorScale(FillDomain(e.TableOf(l), cols), l.Colors, l.ColorMode)
		}
		if fill.Equal(l.Scales.Fill) {
			continue
		}
		n := *l
		n.Scales.Fill = fill
		e.layers[key] = &n
	}
}

// FillDomain returns the distinct group keys of cols in t, ordered as
// table.GroupKeys orders them. This is the order Bin1D stacks groups
// in, so colors follow the stack.
func FillDomain(t *table.Table, cols []string) []string {
	return table.GroupKeys(t, cols)
}
