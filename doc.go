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

// Package vcompat gives uniform access to two unrelated type hierarchies
// that play the same roles.
//
// A program may link in a platform-native hierarchy and a
// compatibility-library hierarchy that both model an entity, a dialog
// entity, a manager holding entities and a host owning a manager. The two
// share no supertype and no contract. vcompat hands out one
// apis.AccessorSet per hierarchy ("variant"), and callers traverse entities
// of either variant through the same opaque accessors without knowing at
// compile time which hierarchy they touch.
//
// # Binding
//
// Go cannot load types by name, so the package that links a hierarchy in
// declares it, in the manner of database/sql drivers:
//
//	func init() {
//		_ = vcompat.Bind(facade.Bind[*Fragment, *DialogFragment,
//			FragmentManager, *FragmentActivity](apis.CompatibilityLibrary))
//	}
//
// Bind also records the bound types in a type table, which the default
// capability probe consults when asked whether the compatibility library's
// root type (Config.CompatRootType) is loadable.
//
// # Variants
//
//	set, ok := vcompat.Native()               // gated on Config.PlatformVersion
//	set, ok := vcompat.CompatibilityLibrary() // gated on the capability probe
//
// Each set is built lazily on first request and never recreated. Both may
// be live at once.
//
// # Reading state
//
// The state callers need is often reachable only through undocumented
// members. The manager accessor reads the unexported held-entities field
// of the manager's concrete type and falls back to the public
// active-entities method:
//
//	entities, ok := set.ForManager().HeldEntities(manager)
//
// Resolved members are cached per concrete type and re-resolved as soon
// as a manager of another concrete type is queried. A missing member is
// never an error; the result is simply absent.
//
// # Concurrency model
//
// Accessors keep unsynchronized caches and are not safe for concurrent
// use: confine each accessor set to one goroutine, typically the one that
// owns the hierarchy. The registry itself tolerates concurrent first
// access; racing constructions are discarded and every caller observes
// the same published set.
//
// # Scope
//
// vcompat is not a general reflection framework. It bridges exactly the
// two hierarchies described by the bindings.
package vcompat
