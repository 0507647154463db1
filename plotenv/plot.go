// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"sync"

	"go.uber.org/zap"
)

// A Dispatcher accepts actions and exposes the resulting state. Plot
// is the usual implementation.
type Dispatcher interface {
	// Dispatch applies a. When Dispatch returns, a has been fully
	// applied or, on error, not applied at all.
	Dispatch(a Action) error

	// Env returns the current state.
	Env() *Env
}

// A Plot owns the state of one plot. All changes go through Dispatch,
// which applies one action at a time.
//
// It is safe to call the methods of a Plot concurrently.
type Plot struct {
	logger *zap.Logger

	mu      sync.Mutex
	env     *Env
	actions []Action
	subs    []*subscription
	nextSub int
}

type subscription struct {
	id int
	f  func(*Env)
}

// NewPlot returns a Plot whose state is New(opts...).
func NewPlot(opts ...Option) *Plot {
	c := newConfig(opts)
	return &Plot{logger: c.logger, env: newEnv(c)}
}

// Env returns the current state of p.
func (p *Plot) Env() *Env {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.env
}

// Dispatch applies a to p's state. If a fails, p's state is
// unchanged. After a successful change, Dispatch calls every
// subscriber with the new state. Subscribers may dispatch further
// actions.
func (p *Plot) Dispatch(a Action) error {
	name, key := describe(a)

	p.mu.Lock()
	prev := p.env
	next, err := Reduce(prev, a)
	if err != nil {
		p.mu.Unlock()
		p.logger.Warn("action failed", zap.String("action", name), zap.String("layer", key), zap.Error(err))
		return err
	}
	p.env = next
	p.actions = append(p.actions, a)
	subs := append([]*subscription(nil), p.subs...)
	p.mu.Unlock()

	if ce := p.logger.Check(zap.DebugLevel, "action"); ce != nil {
		ce.Write(
			zap.String("action", name),
			zap.String("layer", key),
			zap.Int("layers", len(next.layers)),
			zap.Stringer("xDomain", next.xDomain),
			zap.Stringer("yDomain", next.yDomain),
			zap.Float64("innerWidth", next.innerWidth),
			zap.Float64("innerHeight", next.innerHeight),
		)
	}

	if next == prev {
		return nil
	}
	for _, s := range subs {
		s.f(next)
	}
	return nil
}

// Subscribe arranges for f to be called with the new state after
// every change. It returns a function that cancels the subscription.
func (p *Plot) Subscribe(f func(*Env)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextSub
	p.nextSub++
	p.subs = append(p.subs, &subscription{id, f})
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

// Actions returns every action successfully applied to p, in order.
// Replaying them on a new Env with the same options reproduces p's
// state.
func (p *Plot) Actions() []Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Action(nil), p.actions...)
}
