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

package typetable_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/vcompat/config"
	"dirpx.dev/vcompat/typetable"
)

type T0 struct{}
type T1 struct{}
type T2 struct{}
type T3 struct{}

func TestRegisterAndLookup(t *testing.T) {
	tab := typetable.New(config.DefaultConfig())

	if err := tab.Register("lib.T0", reflect.TypeOf(&T0{})); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := tab.Lookup("lib.T0")
	if !ok || got != reflect.TypeOf(T0{}) {
		t.Fatalf("Lookup = (%v,%v), want (T0,true)", got, ok)
	}
	if _, ok := tab.Lookup("lib.Missing"); ok {
		t.Fatal("Lookup of unknown name reported ok")
	}
	if _, ok := tab.Lookup(""); ok {
		t.Fatal("Lookup of empty name reported ok")
	}
}

func TestRegister_Validation(t *testing.T) {
	tab := typetable.New(config.DefaultConfig())

	if err := tab.Register("x", nil); !errors.Is(err, typetable.ErrNilType) {
		t.Fatalf("nil type: err = %v", err)
	}
	if err := tab.Register("", reflect.TypeOf(T0{})); !errors.Is(err, typetable.ErrEmptyName) {
		t.Fatalf("empty name: err = %v", err)
	}
	if err := tab.Register("anon", reflect.TypeOf(struct{}{})); err == nil {
		t.Fatal("anonymous type: expected error")
	}
}

func TestRegister_IdempotentAndConflict(t *testing.T) {
	tab := typetable.New(config.DefaultConfig())

	if err := tab.Register("lib.T", reflect.TypeOf(T0{})); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := tab.Register("lib.T", reflect.TypeOf(&T0{})); err != nil {
		t.Fatalf("idempotent Register: %v", err)
	}
	if err := tab.Register("lib.T", reflect.TypeOf(T1{})); !errors.Is(err, typetable.ErrConflictingRegistration) {
		t.Fatalf("conflict: err = %v, want ErrConflictingRegistration", err)
	}
	if tab.Count() != 1 {
		t.Fatalf("Count = %d, want 1", tab.Count())
	}
}

func TestReset(t *testing.T) {
	tab := typetable.New(config.DefaultConfig())
	_ = tab.Register("a", reflect.TypeOf(T0{}))
	_ = tab.Register("b", reflect.TypeOf(T1{}))

	snap := tab.Entries()
	tab.Reset()

	if len(snap) != 2 {
		t.Fatalf("snapshot len = %d, want 2", len(snap))
	}
	if tab.Count() != 0 || len(tab.Entries()) != 0 {
		t.Fatalf("after Reset: Count=%d Entries=%d", tab.Count(), len(tab.Entries()))
	}
}

// TestConcurrentRegisterAndLookup verifies that the table is race-free and
// consistent under concurrent use.
func TestConcurrentRegisterAndLookup(t *testing.T) {
	tab := typetable.New(config.DefaultConfig())

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}), reflect.TypeOf(T3{}),
	}
	names := []string{"T0", "T1", "T2", "T3"}
	for i, tt := range types {
		if err := tab.Register(names[i], tt); err != nil {
			t.Fatalf("register %s: %v", tt, err)
		}
	}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	wg.Add(workers * 2)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				n := names[i%len(names)]
				if got, ok := tab.Lookup(n); !ok || got == nil {
					t.Errorf("lookup failed for %s", n)
					return
				}
				_ = tab.Count()
				_ = tab.Entries()
			}
		}()
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				j := (i + id) % len(types)
				_ = tab.Register(names[j], types[j])
			}
		}(w)
	}
	wg.Wait()

	if tab.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", tab.Count(), len(types))
	}
}
