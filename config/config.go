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

package config

import (
	"dirpx.dev/vcompat/apis"
)

const (
	// DefaultMinNativeVersion is the first platform version shipping the
	// native hierarchy.
	DefaultMinNativeVersion = 11
	// DefaultMinNativeChildVersion is the first platform version whose
	// native entities expose child managers.
	DefaultMinNativeChildVersion = 17
	// DefaultPlatformVersion is assumed when the embedding program does not
	// report its platform version.
	DefaultPlatformVersion = DefaultMinNativeVersion
	// DefaultCompatRootType is the qualified name ("import/path.Type") of
	// the compatibility library's root entity type.
	DefaultCompatRootType = "android/support/v4/app.Fragment"
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	DefaultMaxUnwrap = 8
)

// Conventional member names.
const (
	DefaultHeldEntitiesField       = "added"
	DefaultActiveEntitiesMethod    = "Active"
	DefaultEntityManagerMethod     = "Manager"
	DefaultChildManagerMethod      = "ChildManager"
	DefaultTagMethod               = "Tag"
	DefaultDialogMethod            = "Dialog"
	DefaultNativeHostManagerMethod = "Manager"
	DefaultCompatHostManagerMethod = "SupportManager"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		PlatformVersion:       DefaultPlatformVersion,
		MinNativeVersion:      DefaultMinNativeVersion,
		MinNativeChildVersion: DefaultMinNativeChildVersion,
		CompatRootType:        DefaultCompatRootType,
		MaxUnwrap:             DefaultMaxUnwrap,
		Members:               DefaultMembers(),
	}
}

// DefaultMembers returns the conventional member names.
func DefaultMembers() apis.Members {
	return apis.Members{
		HeldEntitiesField:       DefaultHeldEntitiesField,
		ActiveEntitiesMethod:    DefaultActiveEntitiesMethod,
		EntityManagerMethod:     DefaultEntityManagerMethod,
		ChildManagerMethod:      DefaultChildManagerMethod,
		TagMethod:               DefaultTagMethod,
		DialogMethod:            DefaultDialogMethod,
		NativeHostManagerMethod: DefaultNativeHostManagerMethod,
		CompatHostManagerMethod: DefaultCompatHostManagerMethod,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithPlatformVersion sets the running platform version.
func WithPlatformVersion(v int) Option {
	return func(c *apis.Config) {
		c.PlatformVersion = v
	}
}

// WithMinNativeVersion sets the version gate of the Native variant.
func WithMinNativeVersion(v int) Option {
	return func(c *apis.Config) {
		c.MinNativeVersion = v
	}
}

// WithMinNativeChildVersion sets the version gate of native child managers.
func WithMinNativeChildVersion(v int) Option {
	return func(c *apis.Config) {
		c.MinNativeChildVersion = v
	}
}

// WithCompatRootType sets the qualified name probed for the
// CompatibilityLibrary variant. An empty name keeps the default.
func WithCompatRootType(name string) Option {
	return func(c *apis.Config) {
		if name == "" {
			c.CompatRootType = DefaultCompatRootType
			return
		}
		c.CompatRootType = name
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMembers replaces the conventional member names.
// Empty names in m fall back to their defaults.
func WithMembers(m apis.Members) Option {
	return func(c *apis.Config) {
		d := DefaultMembers()
		c.Members = apis.Members{
			HeldEntitiesField:       or(m.HeldEntitiesField, d.HeldEntitiesField),
			ActiveEntitiesMethod:    or(m.ActiveEntitiesMethod, d.ActiveEntitiesMethod),
			EntityManagerMethod:     or(m.EntityManagerMethod, d.EntityManagerMethod),
			ChildManagerMethod:      or(m.ChildManagerMethod, d.ChildManagerMethod),
			TagMethod:               or(m.TagMethod, d.TagMethod),
			DialogMethod:            or(m.DialogMethod, d.DialogMethod),
			NativeHostManagerMethod: or(m.NativeHostManagerMethod, d.NativeHostManagerMethod),
			CompatHostManagerMethod: or(m.CompatHostManagerMethod, d.CompatHostManagerMethod),
		}
	}
}

func or(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
