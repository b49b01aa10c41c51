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

// Config carries the read-only knobs that gate variants and name the
// conventional members the accessors look up.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// PlatformVersion is the version of the running platform.
	PlatformVersion int

	// MinNativeVersion is the first platform version that ships the native
	// hierarchy. Below it the Native variant is unavailable.
	MinNativeVersion int

	// MinNativeChildVersion is the first platform version whose native
	// entities expose a child manager.
	MinNativeChildVersion int

	// CompatRootType is the qualified name of the compatibility library's
	// root type, as reported to the CapabilityProbe.
	CompatRootType string

	// MaxUnwrap limits container unwrapping depth when normalizing bound types.
	MaxUnwrap int

	// Members names the fields and methods read by the accessors.
	Members Members
}

// Members holds the conventional member names shared by every targeted
// version of both hierarchies. A platform change that renames one of them
// requires updating these names, not the lookup algorithm.
type Members struct {
	// HeldEntitiesField is the unexported field on a concrete manager that
	// holds the added entities.
	HeldEntitiesField string
	// ActiveEntitiesMethod is the public, argument-less manager method
	// returning the active entities.
	ActiveEntitiesMethod string
	// EntityManagerMethod returns the manager an entity is attached to.
	EntityManagerMethod string
	// ChildManagerMethod returns the manager for an entity's children.
	ChildManagerMethod string
	// TagMethod returns an entity's tag.
	TagMethod string
	// DialogMethod returns a dialog entity's dialog.
	DialogMethod string
	// NativeHostManagerMethod returns a native host's manager.
	NativeHostManagerMethod string
	// CompatHostManagerMethod returns a compatibility host's manager.
	CompatHostManagerMethod string
}
