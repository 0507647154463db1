// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import "github.com/aclements/go-minard/scales"

// pass is a set of recomputation passes.
type pass uint8

const (
	passXDomain pass = 1 << iota
	passYDomain
	passLayout
	passFill

	passAll = passXDomain | passYDomain | passLayout | passFill
)

// Reduce applies a to env and returns the resulting Env. env itself is
// not modified. If a fails, Reduce returns env and the error.
//
// After applying a, Reduce recomputes the derived state a affects, in
// order: the x and y domains, then the layout (ticks, margins, inner
// dimensions, and position scales), then the layers' fill scales.
func Reduce(env *Env, a Action) (*Env, error) {
	if u, ok := a.(UnregisterLayer); ok && env.layers[u.Key] == nil {
		// Unmount races make this common. Keep env's identity
		// so callers can tell nothing happened.
		return env, nil
	}
	next := env.clone()
	p, err := a.apply(next)
	if err != nil {
		return env, err
	}
	next.recompute(p)
	return next, nil
}

// Replay applies actions to env in order. It stops at the first action
// that fails, returning the Env before that action and the error.
func Replay(env *Env, actions ...Action) (*Env, error) {
	for _, a := range actions {
		next, err := Reduce(env, a)
		if err != nil {
			return env, err
		}
		env = next
	}
	return env, nil
}

// recompute reruns the passes in p, in order.
func (e *Env) recompute(p pass) {
	if p&passXDomain != 0 {
		e.xDomain = e.resolveDomain(e.controlledX, scales.XRoles)
	}
	if p&passYDomain != 0 {
		e.yDomain = e.resolveDomain(e.controlledY, scales.YRoles)
	}
	if p&passLayout != 0 {
		e.resolveLayout()
	}
	if p&passFill != 0 {
		e.resolveFills()
	}
}
