// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"fmt"
	"math"

	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

// An Action is a change to a plot's state. The set of actions is
// closed; they are the types in this file.
type Action interface {
	// apply modifies e, which is a private copy, and returns the
	// passes that must be rerun.
	apply(e *Env) (pass, error)
}

// RegisterLayer adds Layer to the plot under Key, replacing any layer
// already registered under Key.
type RegisterLayer struct {
	Key   string
	Layer *Layer
}

// UnregisterLayer removes the layer registered under Key. Removing a
// key that is not registered does nothing.
type UnregisterLayer struct {
	Key string
}

// SetDimensions sets the pixel size of the plot. Negative and NaN
// sizes are treated as 0.
type SetDimensions struct {
	Width, Height float64
}

// SetTable sets the default table, which is drawn by layers that do
// not have their own. It recomputes all derived state, since the
// domains of such layers depend on it.
type SetTable struct {
	Table *table.Table
}

// SetControlledXDomain pins the x domain to Domain. The empty Domain
// clears the override, so the x domain is again computed from the
// data.
type SetControlledXDomain struct {
	Domain scales.Domain
}

// SetControlledYDomain pins the y domain. See SetControlledXDomain.
type SetControlledYDomain struct {
	Domain scales.Domain
}

// SetHover records that the pointer is at Point in the inner plotting
// rectangle.
type SetHover struct {
	Point Point
}

// ClearHover records that the pointer has left the plot.
type ClearHover struct{}

func (a RegisterLayer) apply(e *Env) (pass, error) {
	if a.Key == "" {
		return 0, fmt.Errorf("empty layer key: %w", ErrInvalidLayer)
	}
	if a.Layer == nil {
		return 0, fmt.Errorf("layer %s is nil: %w", a.Key, ErrInvalidLayer)
	}
	if err := a.Layer.validate(e); err != nil {
		return 0, fmt.Errorf("layer %s: %w", a.Key, err)
	}
	e.layers[a.Key] = a.Layer.clone()
	return passAll, nil
}

func (a UnregisterLayer) apply(e *Env) (pass, error) {
	if _, ok := e.layers[a.Key]; !ok {
		return 0, nil
	}
	delete(e.layers, a.Key)
	return passAll, nil
}

func (a SetDimensions) apply(e *Env) (pass, error) {
	e.width, e.height = dimension(a.Width), dimension(a.Height)
	return passLayout, nil
}

func dimension(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}

func (a SetTable) apply(e *Env) (pass, error) {
	e.table = a.Table
	return passAll, nil
}

func (a SetControlledXDomain) apply(e *Env) (pass, error) {
	e.controlledX = a.Domain
	return passXDomain | passLayout, nil
}

func (a SetControlledYDomain) apply(e *Env) (pass, error) {
	e.controlledY = a.Domain
	return passYDomain | passLayout, nil
}

func (a SetHover) apply(e *Env) (pass, error) {
	p := a.Point
	e.hover = &p
	return 0, nil
}

func (ClearHover) apply(e *Env) (pass, error) {
	e.hover = nil
	return 0, nil
}

// describe returns the name of a and the layer key it refers to, if
// any, for logging.
func describe(a Action) (name, key string) {
	switch a := a.(type) {
	case RegisterLayer:
		return "RegisterLayer", a.Key
	case UnregisterLayer:
		return "UnregisterLayer", a.Key
	case SetDimensions:
		return "SetDimensions", ""
	case SetTable:
		return "SetTable", ""
	case SetControlledXDomain:
		return "SetControlledXDomain", ""
	case SetControlledYDomain:
		return "SetControlledYDomain", ""
	case SetHover:
		return "SetHover", ""
	case ClearHover:
		return "ClearHover", ""
	}
	return fmt.Sprintf("%T", a), ""
}
