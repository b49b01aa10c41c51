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

package typetable

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/config"
	uref "dirpx.dev/vcompat/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("vcompat(typetable): nil reflect.Type provided")
	// ErrEmptyName is returned when an empty name is provided.
	ErrEmptyName = errors.New("vcompat(typetable): empty name provided")
	// ErrConflictingRegistration indicates an attempt to register a name
	// for a different type.
	ErrConflictingRegistration = errors.New("vcompat(typetable): conflicting type registration")
)

// New constructs a TypeTable that normalizes types using cfg.MaxUnwrap.
func New(cfg apis.Config) apis.TypeTable {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	return &table{maxUnwrap: cfg.MaxUnwrap}
}

// table is a TypeTable backed by sync.Map.
type table struct {
	// maxUnwrap bounds type normalization.
	maxUnwrap int
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps qualified names to normalized types.
	m sync.Map // map[string]reflect.Type
	// count tracks the number of registered entries.
	count int
}

// Register associates name with the nearest named type of t.
// It is idempotent for the same (name, type) pair.
func (r *table) Register(name string, t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}

	b, err := uref.Normalize(t, r.maxUnwrap)
	if err != nil {
		return err
	}

	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == b {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(name); ok {
		if old.(reflect.Type) == b {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(name, b)
	r.count++
	return nil
}

// Lookup returns the type registered under name.
func (r *table) Lookup(name string) (reflect.Type, bool) {
	if name == "" {
		return nil, false
	}
	if v, ok := r.m.Load(name); ok {
		return v.(reflect.Type), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (r *table) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Name: key.(string),
			Type: value.(reflect.Type),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *table) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *table) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
