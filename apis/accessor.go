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

// ManagerAccessor reads the entities held by a manager.
type ManagerAccessor interface {
	// HeldEntities returns the ordered entities manager currently holds,
	// or ok=false when they cannot be determined.
	HeldEntities(manager any) (entities []any, ok bool)
}

// EntityAccessor reads the relations of an entity.
type EntityAccessor interface {
	// Manager returns the manager entity is attached to.
	Manager(entity any) (manager any, ok bool)
	// ChildManager returns the manager of entity's children.
	ChildManager(entity any) (manager any, ok bool)
	// Tag returns the tag of entity.
	Tag(entity any) (tag string, ok bool)
}

// DialogEntityAccessor reads a dialog-capable entity.
type DialogEntityAccessor interface {
	EntityAccessor
	// Dialog returns the dialog shown by entity.
	Dialog(entity any) (dialog any, ok bool)
}

// HostAccessor reads the manager owned by a host.
type HostAccessor interface {
	// Manager returns the manager owned by host.
	Manager(host any) (manager any, ok bool)
}

// AccessorSet is the per-variant bundle of type tags and accessors.
// Exactly one AccessorSet exists per variant per registry.
type AccessorSet interface {
	// Variant returns the hierarchy this set is bound to.
	Variant() Variant
	// EntityType returns the concrete entity type tag.
	EntityType() reflect.Type
	// DialogEntityType returns the concrete dialog entity type tag.
	DialogEntityType() reflect.Type
	// ManagerType returns the manager type tag.
	ManagerType() reflect.Type
	// HostType returns the concrete host type tag.
	HostType() reflect.Type

	// ForEntity returns the entity accessor.
	ForEntity() EntityAccessor
	// ForDialogEntity returns the dialog entity accessor.
	ForDialogEntity() DialogEntityAccessor
	// ForManager returns the manager accessor.
	ForManager() ManagerAccessor
	// ForHost returns the host accessor.
	ForHost() HostAccessor
}
