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
	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/probe"
)

// Entity is the reflective apis.EntityAccessor. It calls the public
// accessor methods of the entity's runtime type, caching each per type.
// Entity is not safe for concurrent use.
type Entity struct {
	manager reader
	child   reader
	tag     reader
	// childOff disables ChildManager, for platforms predating child managers.
	childOff bool
}

var _ apis.EntityAccessor = (*Entity)(nil)

// EntityMethods names the methods read by an Entity accessor.
type EntityMethods struct {
	Manager      string
	ChildManager string
	Tag          string
}

// NewEntity returns an Entity accessor. When childSupported is false,
// ChildManager always reports absent.
func NewEntity(p apis.Probe, names EntityMethods, childSupported bool) *Entity {
	if p == nil {
		p = probe.New()
	}
	return &Entity{
		manager:  reader{probe: p, methodName: names.Manager},
		child:    reader{probe: p, methodName: names.ChildManager},
		tag:      reader{probe: p, methodName: names.Tag},
		childOff: !childSupported,
	}
}

// Manager returns the manager entity is attached to.
func (a *Entity) Manager(entity any) (any, bool) {
	return nonNil(a.manager.read(entity))
}

// ChildManager returns the manager of entity's children.
func (a *Entity) ChildManager(entity any) (any, bool) {
	if a.childOff {
		return nil, false
	}
	return nonNil(a.child.read(entity))
}

// Tag returns the tag of entity. A non-string tag reports absent.
func (a *Entity) Tag(entity any) (string, bool) {
	v, ok := a.tag.read(entity)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Dialog is the reflective apis.DialogEntityAccessor.
// Dialog is not safe for concurrent use.
type Dialog struct {
	*Entity
	dialog reader
}

var _ apis.DialogEntityAccessor = (*Dialog)(nil)

// NewDialog returns a Dialog accessor sharing the entity methods of e.
func NewDialog(p apis.Probe, e *Entity, dialogMethod string) *Dialog {
	if p == nil {
		p = probe.New()
	}
	return &Dialog{Entity: e, dialog: reader{probe: p, methodName: dialogMethod}}
}

// Dialog returns the dialog shown by entity.
func (a *Dialog) Dialog(entity any) (any, bool) {
	return nonNil(a.dialog.read(entity))
}

// Host is the reflective apis.HostAccessor.
// Host is not safe for concurrent use.
type Host struct {
	manager reader
}

var _ apis.HostAccessor = (*Host)(nil)

// NewHost returns a Host accessor calling managerMethod on hosts.
func NewHost(p apis.Probe, managerMethod string) *Host {
	if p == nil {
		p = probe.New()
	}
	return &Host{manager: reader{probe: p, methodName: managerMethod}}
}

// Manager returns the manager owned by host.
func (a *Host) Manager(host any) (any, bool) {
	return nonNil(a.manager.read(host))
}

// nonNil turns a nil result into absence.
func nonNil(v any, ok bool) (any, bool) {
	if !ok || isNil(v) {
		return nil, false
	}
	return v, true
}
