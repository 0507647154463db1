// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotenv

import (
	"errors"
	"reflect"
	"sync"

	"github.com/google/uuid"
)

// ErrInactive is returned when updating a deactivated Handle.
var ErrInactive = errors.New("layer handle is not active")

// A Factory builds a layer from its inputs. It typically bins a table.
type Factory func() (*Layer, error)

// A Handle ties a layer's registration to the lifetime of whatever
// draws it. Activate registers the layer, Update replaces it when its
// inputs change, and Deactivate removes it.
//
// No lock is held while a Handle dispatches, so subscribers of the
// Dispatcher may call Key, Active and Layer. Update must not be called
// from such a subscriber.
type Handle struct {
	d Dispatcher

	// update serializes Update.
	update sync.Mutex

	mu     sync.Mutex
	key    string
	deps   []interface{}
	active bool
}

// Activate builds a layer with factory and registers it with d under
// a new, process-unique key.
//
// deps are the inputs factory depends on. Update compares new inputs
// against them to decide whether the layer must be rebuilt.
//
// If factory or the registration fails, Activate returns the error
// and d's state is unchanged.
func Activate(d Dispatcher, deps []interface{}, factory Factory) (*Handle, error) {
	l, err := factory()
	if err != nil {
		return nil, err
	}
	h := &Handle{d: d}
	key := uuid.NewString()
	h.commit(key, deps)
	if err := d.Dispatch(RegisterLayer{Key: key, Layer: l}); err != nil {
		return nil, err
	}
	return h, nil
}

// commit records key as the active registration, built from deps.
func (h *Handle) commit(key string, deps []interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.key = key
	h.deps = append([]interface{}(nil), deps...)
	h.active = true
}

// Update rebuilds and re-registers the layer if deps differ from the
// inputs it was last built from. It reports whether it did.
//
// The rebuilt layer is registered under a new key and the old
// registration is removed. If factory fails or the new layer is
// invalid, the old registration stays in place.
func (h *Handle) Update(deps []interface{}, factory Factory) (bool, error) {
	h.update.Lock()
	defer h.update.Unlock()

	h.mu.Lock()
	active, oldKey, same := h.active, h.key, depsEqual(h.deps, deps)
	h.mu.Unlock()
	if !active {
		return false, ErrInactive
	}
	if same {
		return false, nil
	}

	l, err := factory()
	if err != nil {
		return false, err
	}
	key := uuid.NewString()
	reg := RegisterLayer{Key: key, Layer: l}
	// Check the registration before removing the old layer.
	if _, err := Reduce(h.d.Env(), reg); err != nil {
		return false, err
	}

	h.mu.Lock()
	if !h.active || h.key != oldKey {
		// Deactivated meanwhile.
		h.mu.Unlock()
		return false, ErrInactive
	}
	h.key = key
	h.deps = append([]interface{}(nil), deps...)
	h.mu.Unlock()

	h.d.Dispatch(UnregisterLayer{Key: oldKey})
	if err := h.d.Dispatch(reg); err != nil {
		h.mu.Lock()
		if h.key == key {
			h.active = false
		}
		h.mu.Unlock()
		return false, err
	}

	// A Deactivate that ran before the registration landed
	// unregistered nothing.
	h.mu.Lock()
	stale := !h.active || h.key != key
	h.mu.Unlock()
	if stale {
		h.d.Dispatch(UnregisterLayer{Key: key})
		return false, ErrInactive
	}
	return true, nil
}

// Deactivate unregisters the layer. It is safe to call more than
// once, and on a nil Handle, such as one from a failed Activate.
func (h *Handle) Deactivate() {
	if h == nil {
		return
	}
	h.mu.Lock()
	if !h.active {
		h.mu.Unlock()
		return
	}
	h.active = false
	key := h.key
	h.mu.Unlock()
	// Unregistering never fails.
	h.d.Dispatch(UnregisterLayer{Key: key})
}

// Key returns the key the layer is currently registered under.
func (h *Handle) Key() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.key
}

// Active reports whether the layer is registered.
func (h *Handle) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// Layer returns the registered layer in env, or nil if h is not
// active or env predates the registration.
func (h *Handle) Layer(env *Env) *Layer {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.active {
		return nil
	}
	return env.Layer(h.key)
}

// depsEqual reports whether two dependency lists are equal. Comparable
// values are compared with ==, so pointers compare by identity; other
// values, such as slices, are compared deeply.
func depsEqual(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		x, y := a[i], b[i]
		if x == nil || y == nil {
			if x != y {
				return false
			}
			continue
		}
		if reflect.TypeOf(x) != reflect.TypeOf(y) {
			return false
		}
		if reflect.TypeOf(x).Comparable() {
			if x != y {
				return false
			}
		} else if !reflect.DeepEqual(x, y) {
			return false
		}
	}
	return true
}
