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
	"dirpx.dev/vcompat/apis"
)

// Compat is the apis.AccessorSet of the compatibility-library hierarchy.
// The library ships child managers on every platform version, and its
// hosts expose their manager through the compatibility host method.
type Compat struct {
	set
}

var _ apis.AccessorSet = (*Compat)(nil)

// NewCompat builds the compatibility-library accessor set for b.
func NewCompat(cfg apis.Config, b apis.Binding, p apis.Probe) *Compat {
	b.Variant = apis.CompatibilityLibrary
	return &Compat{set: newSet(cfg, b, p, true, cfg.Members.CompatHostManagerMethod)}
}
