// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"errors"
	"testing"
	"time"

	"github.com/aclements/go-minard/scales"
	"github.com/aclements/go-minard/table"
)

func TestActivate(t *testing.T) {
	p := NewPlot()
	calls := 0
	factory := func() (*Layer, error) {
		calls++
		return xLayer(2, 9), nil
	}
	h, err := Activate(p, []interface{}{"x", 1}, factory)
	if err != nil {
		t.Fatal(err)
	}
	env := p.Env()
	if h.Layer(env) == nil {
		t.Fatalf("layer not registered under %q", h.Key())
	}
	if want, got := scales.NewDomain(2, 9), env.XDomain(); want != got {
		t.Errorf("want %v; got %v", want, got)
	}

	// Same inputs: no re-registration.
	changed, err := h.Update([]interface{}{"x", 1}, factory)
	if err != nil || changed || calls != 1 {
		t.Errorf("unchanged deps: got changed=%v err=%v calls=%d", changed, err, calls)
	}
	if p.Env() != env {
		t.Errorf("unchanged deps modified the plot")
	}

	h.Deactivate()
	h.Deactivate()
	if n := len(p.Env().LayerKeys()); n != 0 {
		t.Errorf("after Deactivate: want no layers; got %d", n)
	}
	if _, err := h.Update(nil, factory); !errors.Is(err, ErrInactive) {
		t.Errorf("Update after Deactivate: want ErrInactive; got %v", err)
	}
}

func TestUpdateNewKey(t *testing.T) {
	p := NewPlot()
	h, err := Activate(p, []interface{}{[]string{"a"}}, func() (*Layer, error) { return xLayer(0, 1), nil })
	if err != nil {
		t.Fatal(err)
	}
	old := h.Key()

	// Equal slices are equal deps.
	if changed, _ := h.Update([]interface{}{[]string{"a"}}, nil); changed {
		t.Errorf("deeply equal deps should not rebuild")
	}

	changed, err := h.Update([]interface{}{[]string{"b"}}, func() (*Layer, error) { return xLayer(5, 6), nil })
	if err != nil || !changed {
		t.Fatalf("want rebuild; got %v, %v", changed, err)
	}
	env := p.Env()
	if h.Key() == old {
		t.Errorf("rebuilt layer should have a new key")
	}
	if env.Layer(old) != nil {
		t.Errorf("old registration lingers")
	}
	if keys := env.LayerKeys(); len(keys) != 1 || keys[0] != h.Key() {
		t.Errorf("want only %q; got %v", h.Key(), keys)
	}
	if want, got := scales.NewDomain(5, 6), env.XDomain(); want != got {
		t.Errorf("want %v; got %v", want, got)
	}
}

func TestSubscriberReadsHandle(t *testing.T) {
	p := NewPlot()
	h, err := Activate(p, []interface{}{1}, func() (*Layer, error) { return xLayer(0, 1), nil })
	if err != nil {
		t.Fatal(err)
	}
	var seen []*Layer
	p.Subscribe(func(e *Env) {
		if h.Active() && h.Key() != "" {
			seen = append(seen, h.Layer(e))
		}
	})

	done := make(chan error)
	go func() {
		if _, err := h.Update([]interface{}{2}, func() (*Layer, error) { return xLayer(3, 4), nil }); err != nil {
			done <- err
			return
		}
		h.Deactivate()
		done <- nil
	}()
	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Update and Deactivate blocked on a subscriber reading the handle")
	}

	// The subscriber ran for the unregister and the register. The
	// handle already named the new key for both, so it saw the new
	// layer only once it was registered.
	if len(seen) != 2 || seen[0] != nil || seen[1] == nil {
		t.Errorf("want [nil, new layer]; got %v", seen)
	}
	if h.Active() || len(p.Env().LayerKeys()) != 0 {
		t.Errorf("want handle inactive and no layers; got active=%v, %v", h.Active(), p.Env().LayerKeys())
	}
}

func TestFactoryFailure(t *testing.T) {
	p := NewPlot()
	boom := errors.New("boom")
	h, err := Activate(p, nil, func() (*Layer, error) { return nil, boom })
	if !errors.Is(err, boom) || h != nil {
		t.Errorf("want factory error; got %v, %v", h, err)
	}
	// Deactivating a failed activation is safe.
	h.Deactivate()

	h, err = Activate(p, []interface{}{1}, func() (*Layer, error) { return xLayer(1, 2), nil })
	if err != nil {
		t.Fatal(err)
	}
	before := p.Env()
	for _, f := range []Factory{
		func() (*Layer, error) { return nil, boom },
		func() (*Layer, error) { return &Layer{}, nil },
	} {
		if changed, err := h.Update([]interface{}{2}, f); err == nil || changed {
			t.Errorf("want failed update; got %v, %v", changed, err)
		}
		if p.Env() != before {
			t.Errorf("failed update changed the plot")
		}
		if !h.Active() || h.Layer(p.Env()) == nil {
			t.Errorf("failed update removed the old layer")
		}
	}
}

func TestPlotSubscribe(t *testing.T) {
	p := NewPlot()
	var seen []*Env
	cancel := p.Subscribe(func(e *Env) { seen = append(seen, e) })
	p.Dispatch(SetDimensions{10, 10})
	p.Dispatch(UnregisterLayer{"nope"})
	if err := p.Dispatch(RegisterLayer{"", nil}); err == nil {
		t.Errorf("want error")
	}
	cancel()
	p.Dispatch(SetDimensions{20, 20})
	if len(seen) != 1 || seen[0].Width() != 10 {
		t.Errorf("want one notification for the 10x10 change; got %d", len(seen))
	}
	if n := len(p.Actions()); n != 3 {
		t.Errorf("want 3 logged actions; got %d", n)
	}

	replayed, err := Replay(New(), p.Actions()...)
	if err != nil {
		t.Fatal(err)
	}
	if replayed.Width() != 20 || replayed.Margins() != p.Env().Margins() {
		t.Errorf("replay differs from the plot")
	}
}

func TestStableDomain(t *testing.T) {
	col := new(table.Builder).Add("x", []float64{3, 1, 2}).Done().Column("x")
	var s StableDomain

	d, changed := s.Resolve(scales.Domain{}, col)
	if !changed || d != scales.NewDomain(1, 3) {
		t.Errorf("first: want [1, 3], changed; got %v, %v", d, changed)
	}
	if d, changed = s.Resolve(scales.Domain{}, col); changed || d != scales.NewDomain(1, 3) {
		t.Errorf("same column: want unchanged; got %v, %v", d, changed)
	}
	// The computed domain coming back from the plot is the same
	// value, so nothing changes.
	if _, changed = s.Resolve(scales.NewDomain(1, 3), col); changed {
		t.Errorf("equal explicit domain should not change")
	}
	gen := s.Generation()
	if _, changed = s.Resolve(scales.NewDomain(0, 10), col); !changed || s.Generation() != gen+1 {
		t.Errorf("new domain should change")
	}
	if d, changed = s.Resolve(scales.NewDomain(0, 10), nil); changed || d != scales.NewDomain(0, 10) {
		t.Errorf("repeated domain: want unchanged; got %v, %v", d, changed)
	}

	other := new(table.Builder).Add("x", []float64{1, 3}).Done().Column("x")
	if _, changed = s.Resolve(scales.Domain{}, other); !changed {
		t.Errorf("falling back to a column should change")
	}
	if _, changed = s.Resolve(scales.Domain{}, col); changed {
		t.Errorf("different column with the same extent should not change")
	}
}

func TestDepsEqual(t *testing.T) {
	tab := new(table.Builder).Done()
	for _, test := range []struct {
		a, b []interface{}
		want bool
	}{
		{nil, nil, true},
		{[]interface{}{1}, nil, false},
		{[]interface{}{1, "a"}, []interface{}{1, "a"}, true},
		{[]interface{}{1}, []interface{}{int64(1)}, false},
		{[]interface{}{[]string{"a"}}, []interface{}{[]string{"a"}}, true},
		{[]interface{}{tab}, []interface{}{tab}, true},
		{[]interface{}{tab}, []interface{}{new(table.Builder).Done()}, false},
		{[]interface{}{nil}, []interface{}{nil}, true},
		{[]interface{}{nil}, []interface{}{0}, false},
		{[]interface{}{scales.NewDomain(1, 2)}, []interface{}{scales.NewDomain(1, 2)}, true},
	} {
		if got := depsEqual(test.a, test.b); got != test.want {
			t.Errorf("depsEqual(%v, %v): want %v; got %v", test.a, test.b, test.want, got)
		}
	}
}
