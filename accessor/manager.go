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

package accessor

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/probe"
)

// ErrNotCollection is the panic value raised when a resolved member does
// not yield an ordered collection.
var ErrNotCollection = errors.New("vcompat(accessor): member value is not a collection")

// Manager is the reflective apis.ManagerAccessor.
//
// HeldEntities prefers the unexported held-entities field of the manager's
// concrete type and falls back to the public active-entities method. Each
// resolved member is cached per concrete type: managers of a stable type
// pay the lookup once, and a manager of a different type forces a fresh
// lookup before any cached member is reused.
//
// Manager is not safe for concurrent use. Confine it to one goroutine.
type Manager struct {
	r reader
}

var _ apis.ManagerAccessor = (*Manager)(nil)

// NewManager returns a Manager reading field, then method, through p.
// A nil p uses probe.New().
func NewManager(p apis.Probe, field, method string) *Manager {
	if p == nil {
		p = probe.New()
	}
	return &Manager{r: reader{probe: p, fieldName: field, methodName: method}}
}

// HeldEntities returns the ordered entities manager holds. ok is false when
// manager is nil or exposes neither member. A member value that is not a
// slice or array panics with ErrNotCollection.
func (a *Manager) HeldEntities(manager any) ([]any, bool) {
	v, ok := a.r.read(manager)
	if !ok {
		return nil, false
	}
	return toSlice(v), true
}

// toSlice copies the elements of a slice or array value into []any,
// preserving order. A nil value yields a nil slice.
func toSlice(v any) []any {
	if v == nil {
		return nil
	}
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
	case reflect.Array:
	default:
		panic(fmt.Errorf("%w: %s", ErrNotCollection, rv.Type()))
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
