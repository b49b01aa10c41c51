/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/builder"
	"dirpx.dev/vcompat/probe"
	"dirpx.dev/vcompat/typetable"
	uref "dirpx.dev/vcompat/utils/reflect"
)

var (
	// ErrUnknownVariant is returned when a Binding names an undefined variant.
	ErrUnknownVariant = errors.New("vcompat(registry): unknown variant")
	// ErrIncompleteBinding is returned when a Binding lacks a type tag.
	ErrIncompleteBinding = errors.New("vcompat(registry): binding has a nil type")
	// ErrConflictingBinding indicates an attempt to re-bind a variant to
	// different types.
	ErrConflictingBinding = errors.New("vcompat(registry): conflicting variant binding")
	// ErrNilAccessorSet is the panic value raised when the builder returns nil.
	ErrNilAccessorSet = errors.New("vcompat(registry): builder returned nil accessor set")
)

// Registry hands out one apis.AccessorSet per variant.
//
// Each set is constructed lazily on first request and never recreated. Two
// goroutines racing on the first request may both construct a set; only
// the first published one is ever returned, so the duplicate is discarded.
type Registry struct {
	cfg        apis.Config
	probe      apis.Probe
	capability apis.CapabilityProbe
	table      apis.TypeTable
	builder    apis.Builder
	log        logr.Logger
	metrics    prometheus.Registerer
	instrument bool

	// mu guards bindings.
	mu       sync.Mutex
	bindings map[apis.Variant]apis.Binding

	native atomic.Pointer[holder]
	compat atomic.Pointer[holder]
}

// holder boxes an interface for atomic.Pointer.
type holder struct {
	set apis.AccessorSet
}

// New constructs a Registry for cfg.
func New(cfg apis.Config, opts ...Option) *Registry {
	r := &Registry{
		cfg:      cfg,
		log:      logr.Discard(),
		bindings: make(map[apis.Variant]apis.Binding, 2),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.table == nil {
		r.table = typetable.New(cfg)
	}
	if r.probe == nil {
		r.probe = probe.New()
	}
	if r.instrument {
		p, err := probe.Instrument(r.probe, r.metrics)
		if err != nil {
			r.log.Error(err, "probe metrics disabled")
		} else {
			r.probe = p
		}
	}
	if r.capability == nil {
		r.capability = probe.NewTypeTableProbe(r.table)
	}
	if r.builder == nil {
		r.builder = builder.New()
	}
	return r
}

// Config returns the configuration the registry was built with.
func (r *Registry) Config() apis.Config {
	return r.cfg
}

// TypeTable returns the table bound types are registered in.
func (r *Registry) TypeTable() apis.TypeTable {
	return r.table
}

// Bind declares the concrete types of b.Variant and registers each of them
// in the type table under its "import/path.Type" name. Binding the same types
// twice is a no-op.
func (r *Registry) Bind(b apis.Binding) error {
	if !b.Variant.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownVariant, b.Variant)
	}
	if b.Entity == nil || b.DialogEntity == nil || b.Manager == nil || b.Host == nil {
		return fmt.Errorf("%w: %v", ErrIncompleteBinding, b.Variant)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.bindings[b.Variant]; ok {
		if old == b {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrConflictingBinding, b.Variant)
	}

	for _, t := range []reflect.Type{b.Entity, b.DialogEntity, b.Manager, b.Host} {
		name, err := uref.TypeName(t)
		if err != nil {
			return fmt.Errorf("vcompat(registry): binding %v: %w", b.Variant, err)
		}
		if err := r.table.Register(name, t); err != nil {
			return fmt.Errorf("vcompat(registry): binding %v: %s: %w", b.Variant, name, err)
		}
	}
	r.bindings[b.Variant] = b
	r.log.V(1).Info("variant bound", "variant", b.Variant.String(), "entity", b.Entity.String())
	return nil
}

// Binding returns the binding declared for v.
func (r *Registry) Binding(v apis.Variant) (apis.Binding, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bindings[v]
	return b, ok
}

// Native returns the native accessor set. It is absent when the platform
// version is below cfg.MinNativeVersion or no native binding was declared.
func (r *Registry) Native() (apis.AccessorSet, bool) {
	if h := r.native.Load(); h != nil {
		return h.set, true
	}
	if r.cfg.PlatformVersion < r.cfg.MinNativeVersion {
		r.log.V(1).Info("native variant unavailable",
			"platformVersion", r.cfg.PlatformVersion, "minVersion", r.cfg.MinNativeVersion)
		return nil, false
	}
	return r.construct(apis.Native, &r.native)
}

// CompatibilityLibrary returns the compatibility-library accessor set. It
// is absent when the capability probe reports cfg.CompatRootType
// unloadable or no compatibility binding was declared.
func (r *Registry) CompatibilityLibrary() (apis.AccessorSet, bool) {
	if h := r.compat.Load(); h != nil {
		return h.set, true
	}
	if !r.capability.IsTypeLoadable(r.cfg.CompatRootType) {
		r.log.V(1).Info("compatibility library unavailable", "rootType", r.cfg.CompatRootType)
		return nil, false
	}
	return r.construct(apis.CompatibilityLibrary, &r.compat)
}

// Get returns the accessor set of v.
func (r *Registry) Get(v apis.Variant) (apis.AccessorSet, bool) {
	switch v {
	case apis.Native:
		return r.Native()
	case apis.CompatibilityLibrary:
		return r.CompatibilityLibrary()
	default:
		return nil, false
	}
}

// Available returns the accessor sets of every available variant, native first.
func (r *Registry) Available() []apis.AccessorSet {
	out := make([]apis.AccessorSet, 0, 2)
	if s, ok := r.Native(); ok {
		out = append(out, s)
	}
	if s, ok := r.CompatibilityLibrary(); ok {
		out = append(out, s)
	}
	return out
}

// Cached returns the accessor set of v if it has already been constructed.
// It never constructs.
func (r *Registry) Cached(v apis.Variant) (apis.AccessorSet, bool) {
	var h *holder
	switch v {
	case apis.Native:
		h = r.native.Load()
	case apis.CompatibilityLibrary:
		h = r.compat.Load()
	}
	if h == nil {
		return nil, false
	}
	return h.set, true
}

// Initialized reports whether any accessor set has been handed out.
func (r *Registry) Initialized() bool {
	return r.native.Load() != nil || r.compat.Load() != nil
}

func (r *Registry) construct(v apis.Variant, slot *atomic.Pointer[holder]) (apis.AccessorSet, bool) {
	b, ok := r.Binding(v)
	if !ok {
		r.log.V(1).Info("variant not bound", "variant", v.String())
		return nil, false
	}
	set := r.builder.BuildAccessorSet(r.cfg, b, r.probe)
	if set == nil {
		panic(ErrNilAccessorSet)
	}
	if slot.CompareAndSwap(nil, &holder{set: set}) {
		r.log.V(1).Info("accessor set constructed", "variant", v.String())
	}
	return slot.Load().set, true
}
