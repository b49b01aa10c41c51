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

import (
	"fmt"
	"strings"
)

// Variant tags one of the two type hierarchies that fill the Entity,
// DialogEntity, Manager and Host roles.
//
// A Variant is a tag, not a type: the concrete types bound to the roles
// are supplied per variant through a Binding.
type Variant int

const (
	// Native selects the platform-native hierarchy. It is only available
	// when the running platform version reaches Config.MinNativeVersion.
	Native Variant = iota

	// CompatibilityLibrary selects the compatibility-library hierarchy. It
	// is only available when its root type is loadable in this process.
	CompatibilityLibrary
)

// String returns a short, stable identifier for v.
// Unknown values render as "Unknown(<n>)" and never panic.
func (v Variant) String() string {
	switch v {
	case Native:
		return "Native"
	case CompatibilityLibrary:
		return "CompatibilityLibrary"
	default:
		return fmt.Sprintf("Unknown(%d)", int(v))
	}
}

// Valid reports whether v is one of the defined variants.
func (v Variant) Valid() bool {
	return v == Native || v == CompatibilityLibrary
}

// Parse converts a textual token into a Variant. Matching is
// case-insensitive and ignores surrounding whitespace. "compat" is accepted
// as a short form of CompatibilityLibrary.
func Parse(s string) (Variant, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Native, fmt.Errorf("variant: empty value")
	}

	switch strings.ToLower(trimmed) {
	case "native":
		return Native, nil
	case "compatibilitylibrary", "compat":
		return CompatibilityLibrary, nil
	default:
		return Native, fmt.Errorf("variant: unknown value %q", s)
	}
}

// MustParse is like Parse but panics on invalid input.
func MustParse(s string) Variant {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText implements encoding.TextMarshaler.
// Unknown values are rejected rather than serialized in their diagnostic form.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("variant: cannot marshal unknown value %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// On failure *v is left unchanged.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
