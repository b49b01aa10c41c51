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

package apis

import "reflect"

// TypeTable maps qualified names to the types linked into this process.
// It backs the default CapabilityProbe: a type is loadable when it was
// registered under its name.
type TypeTable interface {
	// Register associates name with the nearest named type of t.
	// Implementations should be idempotent; conflicting re-registrations fail.
	Register(name string, t reflect.Type) error
	// Lookup returns the type registered under name.
	Lookup(name string) (t reflect.Type, ok bool)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (name, type) association in a TypeTable snapshot.
type Entry struct {
	// Name is the qualified name.
	Name string
	// Type is the registered reflect.Type.
	Type reflect.Type
}

// Binding declares the concrete types one variant substitutes for the
// opaque roles. The type tags are used by callers for type checks at the
// boundary; the accessors never rely on them.
type Binding struct {
	// Variant is the hierarchy this binding describes.
	Variant Variant
	// Entity is the concrete entity type.
	Entity reflect.Type
	// DialogEntity is the concrete dialog-capable entity type.
	DialogEntity reflect.Type
	// Manager is the manager type (usually an interface or abstract base).
	Manager reflect.Type
	// Host is the concrete host type.
	Host reflect.Type
}
