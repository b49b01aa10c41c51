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

package vcompat

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/config"
	"dirpx.dev/vcompat/facade"
	"dirpx.dev/vcompat/probe"
	"dirpx.dev/vcompat/registry"
)

type Manager interface{}
type Fragment struct{ id int }
type DialogFragment struct{ Fragment }
type Activity struct{}

type fragmentManager struct{ added []*Fragment }
type legacyManager struct{ active []*Fragment }

func (m *legacyManager) Active() []*Fragment { return m.active }

// reset publishes a fresh default registry for the duration of a test.
func reset(tb testing.TB) {
	tb.Helper()
	prev := st.Load()
	st.Store(&state{reg: registry.New(config.DefaultConfig())})
	tb.Cleanup(func() { st.Store(prev) })
}

func TestGlobal_NativeLifecycle(t *testing.T) {
	reset(t)

	if _, ok := Native(); ok {
		t.Fatal("unbound: expected absent")
	}
	if err := Bind(facade.Bind[*Fragment, *DialogFragment, Manager, *Activity](apis.Native)); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	set, ok := Native()
	if !ok {
		t.Fatal("bound: expected native")
	}
	again, _ := Native()
	if set != again {
		t.Fatal("Native returned different instances")
	}

	f1, f2, f3 := &Fragment{1}, &Fragment{2}, &Fragment{3}
	acc := set.ForManager()
	if got, ok := acc.HeldEntities(&fragmentManager{added: []*Fragment{f1, f2}}); !ok || len(got) != 2 {
		t.Fatalf("field manager: HeldEntities = (%v,%v)", got, ok)
	}
	if got, ok := acc.HeldEntities(&legacyManager{active: []*Fragment{f3}}); !ok || got[0] != f3 {
		t.Fatalf("method manager: HeldEntities = (%v,%v)", got, ok)
	}
	if _, ok := acc.HeldEntities(&Activity{}); ok {
		t.Fatal("no members: expected absent")
	}
}

func TestGlobal_CompatibilityLibraryGate(t *testing.T) {
	reset(t)

	if _, ok := CompatibilityLibrary(); ok {
		t.Fatal("root type not loadable: expected absent")
	}
	if err := Configure(config.NewConfig(config.WithCompatRootType("dirpx.dev/vcompat.Fragment"))); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := Bind(facade.Bind[*Fragment, *DialogFragment, Manager, *Activity](apis.CompatibilityLibrary)); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if _, ok := CompatibilityLibrary(); !ok {
		t.Fatal("root type loadable: expected present")
	}
	if got := len(Available()); got != 1 {
		t.Fatalf("Available = %d, want 1 (native unbound)", got)
	}
}

func TestConfigure_CarriesBindingsAndTypes(t *testing.T) {
	reset(t)

	b := facade.Bind[*Fragment, *DialogFragment, Manager, *Activity](apis.Native)
	if err := Bind(b); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := RegisterType("support.Fragment", reflect.TypeOf(Fragment{})); err != nil {
		t.Fatalf("RegisterType: %v", err)
	}
	if err := Configure(config.NewConfig(config.WithPlatformVersion(30)),
		registry.WithCapabilityProbe(probe.Static(false))); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if Config().PlatformVersion != 30 {
		t.Fatalf("PlatformVersion = %d, want 30", Config().PlatformVersion)
	}
	if got, ok := Registry().Binding(apis.Native); !ok || got != b {
		t.Fatal("binding not carried over")
	}
	if _, ok := Registry().TypeTable().Lookup("support.Fragment"); !ok {
		t.Fatal("registered type not carried over")
	}
	if _, ok := CompatibilityLibrary(); ok {
		t.Fatal("static probe false: expected absent")
	}
}

func TestConfigure_RejectedAfterInitialization(t *testing.T) {
	reset(t)

	_ = Bind(facade.Bind[*Fragment, *DialogFragment, Manager, *Activity](apis.Native))
	set, ok := Native()
	if !ok {
		t.Fatal("expected native")
	}
	if err := Configure(config.DefaultConfig()); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("Configure: err = %v, want ErrAlreadyInitialized", err)
	}
	if again, _ := Native(); again != set {
		t.Fatal("native set was recreated")
	}
}

// TestConfigure_ConcurrentWithFirstAccess checks that every set handed out
// while Configure races with first construction is the one that survives.
func TestConfigure_ConcurrentWithFirstAccess(t *testing.T) {
	reset(t)
	_ = Bind(facade.Bind[*Fragment, *DialogFragment, Manager, *Activity](apis.Native))

	workers := runtime.GOMAXPROCS(0) * 4
	got := make([]apis.AccessorSet, workers)
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for w := 0; w < workers; w++ {
		go func(i int) {
			defer wg.Done()
			got[i], _ = Native()
		}(w)
		go func() {
			defer wg.Done()
			err := Configure(config.DefaultConfig())
			if err != nil && !errors.Is(err, ErrAlreadyInitialized) {
				t.Errorf("Configure: %v", err)
			}
		}()
	}
	wg.Wait()

	final, ok := Native()
	if !ok {
		t.Fatal("expected native")
	}
	for i, s := range got {
		if s != final {
			t.Fatalf("worker %d received a set that was later replaced", i)
		}
	}
}
