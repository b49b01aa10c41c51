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
	"reflect"
	"unsafe"

	"dirpx.dev/vcompat/apis"
	uref "dirpx.dev/vcompat/utils/reflect"
)

// New returns the reflect-backed apis.Probe.
func New() apis.Probe {
	return reflectProbe{}
}

// reflectProbe implements apis.Probe on top of package reflect.
// It is stateless and safe for concurrent use.
type reflectProbe struct{}

// Ensure reflectProbe implements apis.Probe.
var _ apis.Probe = reflectProbe{}

// field is a declared struct field located on owner.
type field struct {
	owner reflect.Type
	strct reflect.Type
	index int
	name  string
}

func (f field) Name() string          { return f.name }
func (f field) Owner() reflect.Type   { return f.owner }
func (f field) Kind() apis.MemberKind { return apis.FieldMember }

// method is an exported method located on owner.
type method struct {
	owner reflect.Type
	m     reflect.Method
}

func (m method) Name() string          { return m.m.Name }
func (m method) Owner() reflect.Type   { return m.owner }
func (m method) Kind() apis.MemberKind { return apis.MethodMember }

// FindDeclaredField looks at the fields declared on the struct behind t.
// Fields promoted from embedded structs are not declared on t and are skipped.
func (reflectProbe) FindDeclaredField(t reflect.Type, name string) (apis.Member, bool) {
	st := uref.Concrete(t)
	if st == nil || st.Kind() != reflect.Struct || name == "" {
		return nil, false
	}
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		if sf.Name == name {
			return field{owner: t, strct: st, index: i, name: name}, true
		}
	}
	return nil, false
}

// FindPublicMethod looks up an exported method of t with exactly argTypes
// as parameters.
func (reflectProbe) FindPublicMethod(t reflect.Type, name string, argTypes ...reflect.Type) (apis.Member, bool) {
	if t == nil || name == "" {
		return nil, false
	}
	m, ok := t.MethodByName(name)
	if !ok {
		return nil, false
	}
	// Interface methods carry no receiver in their signature.
	off := 1
	if t.Kind() == reflect.Interface {
		off = 0
	}
	if m.Type.NumIn()-off != len(argTypes) {
		return nil, false
	}
	for i, at := range argTypes {
		if m.Type.In(i+off) != at {
			return nil, false
		}
	}
	return method{owner: t, m: m}, true
}

// Read returns the value of a field located by FindDeclaredField.
// Unexported fields are made readable.
func (reflectProbe) Read(m apis.Member, obj any) (any, bool) {
	f, ok := m.(field)
	if !ok || obj == nil {
		return nil, false
	}
	v := reflect.ValueOf(obj)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	if v.Type() != f.strct {
		return nil, false
	}
	if !v.CanAddr() {
		c := reflect.New(v.Type()).Elem()
		c.Set(v)
		v = c
	}
	fv := v.Field(f.index)
	if !fv.CanInterface() {
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return fv.Interface(), true
}

// Invoke calls a method located by FindPublicMethod and returns its first
// result. A method without results yields ok=false. Arguments that do not
// match the method signature panic, as reflect.Value.Call does.
func (reflectProbe) Invoke(m apis.Member, obj any, args ...any) (any, bool) {
	mm, ok := m.(method)
	if !ok || obj == nil {
		return nil, false
	}
	rv := reflect.ValueOf(obj)
	if mm.owner.Kind() != reflect.Interface && rv.Type() != mm.owner {
		return nil, false
	}
	fn := rv.MethodByName(mm.m.Name)
	if !fn.IsValid() {
		return nil, false
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a == nil {
			in[i] = reflect.Zero(fn.Type().In(i))
			continue
		}
		in[i] = reflect.ValueOf(a)
	}
	out := fn.Call(in)
	if len(out) == 0 {
		return nil, false
	}
	return out[0].Interface(), true
}
