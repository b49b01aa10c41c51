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

// Builder constructs the AccessorSet for a Binding.
// Construction must be stateless and idempotent: building twice for the
// same inputs yields interchangeable sets.
type Builder interface {
	// BuildAccessorSet constructs the set for b using probe for member access.
	BuildAccessorSet(cfg Config, b Binding, probe Probe) AccessorSet
}
