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

package builder

import (
	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/facade"
	"dirpx.dev/vcompat/probe"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildAccessorSet builds the facade matching b.Variant. A nil probe uses
// the reflect-backed probe. Unknown variants yield nil.
func (*builder) BuildAccessorSet(cfg apis.Config, b apis.Binding, p apis.Probe) apis.AccessorSet {
	if p == nil {
		p = probe.New()
	}
	switch b.Variant {
	case apis.Native:
		return facade.NewNative(cfg, b, p)
	case apis.CompatibilityLibrary:
		return facade.NewCompat(cfg, b, p)
	default:
		return nil
	}
}
