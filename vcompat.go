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

package vcompat

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/config"
	"dirpx.dev/vcompat/registry"
)

// init publishes the default process-wide registry.
func init() {
	st.Store(&state{reg: registry.New(config.DefaultConfig())})
}

// ErrAlreadyInitialized is returned by Configure once an accessor set has
// been handed out by the process-wide registry.
var ErrAlreadyInitialized = errors.New("vcompat: accessor sets already initialized")

// Native returns the process-wide native accessor set.
// See registry.Registry.Native.
func Native() (apis.AccessorSet, bool) {
	return get(apis.Native)
}

// CompatibilityLibrary returns the process-wide compatibility-library
// accessor set. See registry.Registry.CompatibilityLibrary.
func CompatibilityLibrary() (apis.AccessorSet, bool) {
	return get(apis.CompatibilityLibrary)
}

// Available returns every available process-wide accessor set, native first.
func Available() []apis.AccessorSet {
	out := make([]apis.AccessorSet, 0, 2)
	for _, v := range []apis.Variant{apis.Native, apis.CompatibilityLibrary} {
		if s, ok := get(v); ok {
			out = append(out, s)
		}
	}
	return out
}

// get returns the set of v. Constructed sets are read lock-free; the first
// construction runs under buildMu so it cannot interleave with Configure.
func get(v apis.Variant) (apis.AccessorSet, bool) {
	if s, ok := st.Load().reg.Cached(v); ok {
		return s, true
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	return st.Load().reg.Get(v)
}

// Bind declares the concrete types of one variant in the process-wide
// registry. It is typically called from an init function of the package
// that links the hierarchy in.
func Bind(b apis.Binding) error {
	return st.Load().reg.Bind(b)
}

// RegisterType marks the type t as loadable under name, for capability
// probes that ask about types no Binding declares.
func RegisterType(name string, t reflect.Type) error {
	return st.Load().reg.TypeTable().Register(name, t)
}

// Config returns the configuration of the process-wide registry.
func Config() apis.Config {
	return st.Load().reg.Config()
}

// Registry returns the process-wide registry.
func Registry() *registry.Registry {
	return st.Load().reg
}

// Configure replaces the process-wide registry with one built from cfg and
// opts, carrying over the bindings declared so far. It fails with
// ErrAlreadyInitialized once an accessor set has been handed out, so a set
// is never recreated during the life of the process. Sets obtained directly
// from Registry() bypass this guard; use Native and CompatibilityLibrary.
func Configure(cfg apis.Config, opts ...registry.Option) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if old.reg.Initialized() {
		return ErrAlreadyInitialized
	}

	nreg := registry.New(cfg, opts...)
	for _, v := range []apis.Variant{apis.Native, apis.CompatibilityLibrary} {
		if b, ok := old.reg.Binding(v); ok {
			if err := nreg.Bind(b); err != nil {
				return err
			}
		}
	}
	for _, e := range old.reg.TypeTable().Entries() {
		if err := nreg.TypeTable().Register(e.Name, e.Type); err != nil {
			return err
		}
	}

	st.Store(&state{reg: nreg})
	return nil
}

// buildMu serializes reconfigurations and first constructions.
var buildMu sync.Mutex

// st is the process-wide state.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store.
type state struct {
	// reg is the process-wide variant registry.
	reg *registry.Registry
}
