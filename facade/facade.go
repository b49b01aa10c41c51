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

// Package facade binds the opaque roles of one hierarchy variant to
// reflective accessors.
//
// The two variants share no base type. NewNative and NewCompat return
// distinct apis.AccessorSet implementations assembled from the same
// accessor building blocks.
package facade

import (
	"fmt"
	"reflect"

	"dirpx.dev/vcompat/apis"
)

// Bind returns the Binding of variant v with E, D, M and H substituted for
// the Entity, DialogEntity, Manager and Host roles.
//
//	vcompat.Bind(facade.Bind[*support.Fragment, *support.DialogFragment,
//		support.FragmentManager, *support.FragmentActivity](apis.CompatibilityLibrary))
func Bind[E, D, M, H any](v apis.Variant) apis.Binding {
	return apis.Binding{
		Variant:      v,
		Entity:       reflect.TypeFor[E](),
		DialogEntity: reflect.TypeFor[D](),
		Manager:      reflect.TypeFor[M](),
		Host:         reflect.TypeFor[H](),
	}
}

// Entities returns the entities held by manager as a []E.
// It panics when an entity is not an E.
func Entities[E any](set apis.AccessorSet, manager any) ([]E, bool) {
	raw, ok := set.ForManager().HeldEntities(manager)
	if !ok {
		return nil, false
	}
	if raw == nil {
		return nil, true
	}
	out := make([]E, len(raw))
	for i, e := range raw {
		te, ok := e.(E)
		if !ok {
			panic(fmt.Errorf("vcompat(facade): entity %d is %T, want %s", i, e, reflect.TypeFor[E]()))
		}
		out[i] = te
	}
	return out, true
}

// tags carries the four type tags of a Binding.
type tags struct {
	b apis.Binding
}

func (t tags) Variant() apis.Variant          { return t.b.Variant }
func (t tags) EntityType() reflect.Type       { return t.b.Entity }
func (t tags) DialogEntityType() reflect.Type { return t.b.DialogEntity }
func (t tags) ManagerType() reflect.Type      { return t.b.Manager }
func (t tags) HostType() reflect.Type         { return t.b.Host }
