// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layers provides the standard plot layers: histograms,
// heatmaps and lines.
//
// A layer is described by a Spec and attached to a plot with Mount.
// The mounted layer derives its data from the plot's current state,
// so callers should call Refresh after changing the plot (for example,
// after setting its table or dimensions). Refresh rebuilds the layer
// only when its inputs have changed.
package layers

import (
	"github.com/aclements/go-minard/plotenv"
)

// A Spec describes a layer.
type Spec interface {
	// build returns the inputs the layer depends on in env and a
	// factory that builds the layer from them.
	build(env *plotenv.Env, m *Mounted) (deps []interface{}, f plotenv.Factory)
}

// Mounted is a layer attached to a plot. It is not safe for
// concurrent use.
type Mounted struct {
	d      plotenv.Dispatcher
	spec   Spec
	handle *plotenv.Handle

	// Domains the layer bins over.
	xDomain, yDomain plotenv.StableDomain
}

// Mount builds the layer described by s and registers it with d.
func Mount(d plotenv.Dispatcher, s Spec) (*Mounted, error) {
	m := &Mounted{d: d, spec: s}
	deps, f := s.build(d.Env(), m)
	h, err := plotenv.Activate(d, deps, f)
	if err != nil {
		return nil, err
	}
	m.handle = h
	return m, nil
}

// Refresh rebuilds the layer if its inputs in the plot's current state
// differ from the ones it was built from. It reports whether it
// rebuilt the layer.
func (m *Mounted) Refresh() (bool, error) {
	deps, f := m.spec.build(m.d.Env(), m)
	return m.handle.Update(deps, f)
}

// Settle calls Refresh until the layer stops changing, up to max
// times. Layers whose domain is computed from the data converge after
// one or two rounds, since the plot's domain then covers the layer.
func (m *Mounted) Settle(max int) error {
	for i := 0; i < max; i++ {
		changed, err := m.Refresh()
		if err != nil || !changed {
			return err
		}
	}
	return nil
}

// Unmount removes the layer from the plot.
func (m *Mounted) Unmount() {
	if m != nil {
		m.handle.Deactivate()
	}
}

// Key returns the key the layer is registered under.
func (m *Mounted) Key() string {
	return m.handle.Key()
}

// Layer returns the layer as registered in env.
func (m *Mounted) Layer(env *plotenv.Env) *plotenv.Layer {
	return m.handle.Layer(env)
}
