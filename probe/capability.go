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

package probe

import (
	"dirpx.dev/vcompat/apis"
)

// NewTypeTableProbe returns an apis.CapabilityProbe that reports a type as
// loadable when it has been registered in tab under its qualified name.
func NewTypeTableProbe(tab apis.TypeTable) apis.CapabilityProbe {
	return tableProbe{tab: tab}
}

type tableProbe struct {
	tab apis.TypeTable
}

// IsTypeLoadable reports whether qualifiedName is present in the table.
func (p tableProbe) IsTypeLoadable(qualifiedName string) bool {
	if p.tab == nil {
		return false
	}
	_, ok := p.tab.Lookup(qualifiedName)
	return ok
}

// Static returns an apis.CapabilityProbe answering loadable for every name.
func Static(loadable bool) apis.CapabilityProbe {
	return staticProbe(loadable)
}

type staticProbe bool

func (p staticProbe) IsTypeLoadable(string) bool { return bool(p) }
