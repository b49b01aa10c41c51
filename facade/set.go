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

package facade

import (
	"dirpx.dev/vcompat/accessor"
	"dirpx.dev/vcompat/apis"
)

// set holds the type tags and accessors shared by both variants.
type set struct {
	tags
	entity  *accessor.Entity
	dialog  *accessor.Dialog
	manager *accessor.Manager
	host    *accessor.Host
}

// newSet assembles the accessors of b. childSupported gates child managers
// and hostMethod names the host's manager method.
func newSet(cfg apis.Config, b apis.Binding, p apis.Probe, childSupported bool, hostMethod string) set {
	mem := cfg.Members
	names := accessor.EntityMethods{
		Manager:      mem.EntityManagerMethod,
		ChildManager: mem.ChildManagerMethod,
		Tag:          mem.TagMethod,
	}
	return set{
		tags:    tags{b: b},
		entity:  accessor.NewEntity(p, names, childSupported),
		dialog:  accessor.NewDialog(p, accessor.NewEntity(p, names, childSupported), mem.DialogMethod),
		manager: accessor.NewManager(p, mem.HeldEntitiesField, mem.ActiveEntitiesMethod),
		host:    accessor.NewHost(p, hostMethod),
	}
}

func (s *set) ForEntity() apis.EntityAccessor             { return s.entity }
func (s *set) ForDialogEntity() apis.DialogEntityAccessor { return s.dialog }
func (s *set) ForManager() apis.ManagerAccessor           { return s.manager }
func (s *set) ForHost() apis.HostAccessor                 { return s.host }
