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

// MemberKind distinguishes field handles from method handles.
type MemberKind int

const (
	// FieldMember is a declared struct field.
	FieldMember MemberKind = iota
	// MethodMember is an exported method.
	MethodMember
)

// String returns "field" or "method".
func (k MemberKind) String() string {
	if k == MethodMember {
		return "method"
	}
	return "field"
}

// Member is an opaque handle to a located field or method.
type Member interface {
	// Name returns the member name used for the lookup.
	Name() string
	// Owner returns the type the member was located on.
	Owner() reflect.Type
	// Kind reports whether the member is a field or a method.
	Kind() MemberKind
}

// Probe is the primitive reflection capability consumed by the accessors.
//
// Every operation is best-effort: a missing member, or a member that cannot
// be applied to the given object, is reported with ok=false and never as an
// error. Implementations hold no per-call state.
type Probe interface {
	// FindDeclaredField locates a field declared directly on t (after
	// dereferencing pointers). Promoted fields are not considered.
	FindDeclaredField(t reflect.Type, name string) (m Member, ok bool)
	// FindPublicMethod locates an exported method of t whose parameters
	// match argTypes exactly.
	FindPublicMethod(t reflect.Type, name string, argTypes ...reflect.Type) (m Member, ok bool)
	// Read returns the value of field m on obj.
	Read(m Member, obj any) (v any, ok bool)
	// Invoke calls method m on obj and returns its first result.
	Invoke(m Member, obj any, args ...any) (v any, ok bool)
}

// CapabilityProbe reports whether a type is loadable in this process.
type CapabilityProbe interface {
	// IsTypeLoadable reports whether the type named qualifiedName is available.
	IsTypeLoadable(qualifiedName string) bool
}
