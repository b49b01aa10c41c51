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

package reflect_test

import (
	"errors"
	"reflect"
	"testing"

	uref "dirpx.dev/vcompat/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}
type I interface{ M() }

func TestNormalize_BasicContainers(t *testing.T) {
	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"slice", reflect.TypeOf([]A{}), reflect.TypeOf(A{})},
		{"array", reflect.TypeOf([2]A{}), reflect.TypeOf(A{})},
		{"chan", reflect.TypeOf((chan A)(nil)), reflect.TypeOf(A{})},
		{"map elem", reflect.TypeOf(map[int]*A{}), reflect.TypeOf(A{})},
		{"interface", reflect.TypeFor[I](), reflect.TypeFor[I]()},
		{"ptr to interface", reflect.TypeFor[*I](), reflect.TypeFor[I]()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, 8)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	if _, err := uref.Normalize(nil, 8); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: err = %v, want ErrReflectNilType", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf(struct{}{}), 8); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("anonymous struct: err = %v, want ErrReflectTypeNotNamed", err)
	}
	if _, err := uref.Normalize(reflect.TypeOf((**A)(nil)), 1); !errors.Is(err, uref.ErrReflectTypeNotNamed) {
		t.Fatalf("tight unwrap: err = %v, want ErrReflectTypeNotNamed", err)
	}
}

func TestConcrete(t *testing.T) {
	if got := uref.Concrete(reflect.TypeOf((**A)(nil))); got != reflect.TypeOf(A{}) {
		t.Fatalf("Concrete(**A) = %v, want A", got)
	}
	if got := uref.Concrete(nil); got != nil {
		t.Fatalf("Concrete(nil) = %v, want nil", got)
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeOf(&A{}), "dirpx.dev/vcompat/utils/reflect_test.A"},
		{reflect.TypeOf(G[int]{}), "dirpx.dev/vcompat/utils/reflect_test.G"},
		{reflect.TypeOf(0), "int"},
	}
	for _, tc := range cases {
		got, err := uref.TypeName(tc.typ)
		if err != nil {
			t.Fatalf("TypeName(%v): %v", tc.typ, err)
		}
		if got != tc.want {
			t.Fatalf("TypeName(%v) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}
