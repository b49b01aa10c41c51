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

package builder_test

import (
	"testing"

	"dirpx.dev/vcompat/apis"
	"dirpx.dev/vcompat/builder"
	"dirpx.dev/vcompat/config"
	"dirpx.dev/vcompat/facade"
)

type frag struct{}
type dialog struct{}
type manager struct{ added []*frag }
type host struct{}

func TestBuildAccessorSet_PerVariant(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	cases := []struct {
		variant apis.Variant
		check   func(apis.AccessorSet) bool
	}{
		{apis.Native, func(s apis.AccessorSet) bool { _, ok := s.(*facade.Native); return ok }},
		{apis.CompatibilityLibrary, func(s apis.AccessorSet) bool { _, ok := s.(*facade.Compat); return ok }},
	}
	for _, tc := range cases {
		t.Run(tc.variant.String(), func(t *testing.T) {
			set := b.BuildAccessorSet(cfg, facade.Bind[*frag, *dialog, *manager, *host](tc.variant), nil)
			if set == nil {
				t.Fatal("BuildAccessorSet returned nil")
			}
			if !tc.check(set) {
				t.Fatalf("BuildAccessorSet returned %T", set)
			}
			if set.Variant() != tc.variant {
				t.Fatalf("Variant = %v, want %v", set.Variant(), tc.variant)
			}
			f := &frag{}
			got, ok := set.ForManager().HeldEntities(&manager{added: []*frag{f}})
			if !ok || len(got) != 1 || got[0] != f {
				t.Fatalf("HeldEntities = (%v,%v), want [f]", got, ok)
			}
		})
	}
}

func TestBuildAccessorSet_UnknownVariant(t *testing.T) {
	b := builder.New()
	if set := b.BuildAccessorSet(config.DefaultConfig(), apis.Binding{Variant: apis.Variant(9)}, nil); set != nil {
		t.Fatalf("unknown variant: got %T, want nil", set)
	}
}
