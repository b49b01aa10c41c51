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
	"reflect"

	"dirpx.dev/vcompat/apis"
)

// slot memoizes one successful member lookup together with the runtime
// type it was resolved against. A slot is valid only while owner equals the
// runtime type of the queried object.
type slot struct {
	member apis.Member
	owner  reflect.Type
}

// resetUnless clears s when it was resolved for a type other than t.
func (s *slot) resetUnless(t reflect.Type) {
	if s.owner != t {
		s.member = nil
		s.owner = nil
	}
}

func (s *slot) set(m apis.Member, t reflect.Type) {
	s.member = m
	s.owner = t
}

// reader resolves a value of an opaque object through a private field,
// falling back to a public argument-less method. Either name may be empty
// to disable that strategy. The two slots invalidate independently.
//
// A reader is not safe for concurrent use.
type reader struct {
	probe      apis.Probe
	fieldName  string
	methodName string

	field  slot
	method slot
}

// read returns the value for obj, or ok=false when neither strategy applies.
func (r *reader) read(obj any) (any, bool) {
	if obj == nil {
		return nil, false
	}
	t := reflect.TypeOf(obj)

	if r.fieldName != "" {
		r.field.resetUnless(t)
		if r.field.member == nil {
			// The field lives on the concrete runtime type, not on the role type.
			if f, ok := r.probe.FindDeclaredField(t, r.fieldName); ok {
				r.field.set(f, t)
			}
		}
		if r.field.member != nil {
			return r.probe.Read(r.field.member, obj)
		}
	}

	return r.invoke(obj, t)
}

func (r *reader) invoke(obj any, t reflect.Type) (any, bool) {
	if r.methodName == "" {
		return nil, false
	}
	r.method.resetUnless(t)
	if r.method.member == nil {
		if m, ok := r.probe.FindPublicMethod(t, r.methodName); ok {
			r.method.set(m, t)
		}
	}
	if r.method.member == nil {
		return nil, false
	}
	return r.probe.Invoke(r.method.member, obj)
}
