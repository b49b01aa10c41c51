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

// Native is the apis.AccessorSet of the platform-native hierarchy.
// Its hosts expose their manager through the native host method, and its
// entities only expose child managers from cfg.MinNativeChildVersion on.
type Native struct {
	set
}

var _ apis.AccessorSet = (*Native)(nil)

// NewNative builds the native accessor set for b.
func NewNative(cfg apis.Config, b apis.Binding, p apis.Probe) *Native {
	b.Variant = apis.Native
	child := cfg.PlatformVersion >= cfg.MinNativeChildVersion
	return &Native{set: newSet(cfg, b, p, child, cfg.Members.NativeHostManagerMethod)}
}
