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

package registry

import (
	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/vcompat/apis"
)

// Option configures a Registry.
type Option func(*Registry)

// WithProbe sets the primitive reflection capability handed to the builder.
func WithProbe(p apis.Probe) Option {
	return func(r *Registry) {
		if p != nil {
			r.probe = p
		}
	}
}

// WithCapabilityProbe sets the probe gating the CompatibilityLibrary variant.
// By default the registry's own type table answers.
func WithCapabilityProbe(cp apis.CapabilityProbe) Option {
	return func(r *Registry) {
		if cp != nil {
			r.capability = cp
		}
	}
}

// WithTypeTable sets the table bound types are registered in.
func WithTypeTable(tab apis.TypeTable) Option {
	return func(r *Registry) {
		if tab != nil {
			r.table = tab
		}
	}
}

// WithBuilder sets the builder constructing accessor sets.
func WithBuilder(b apis.Builder) Option {
	return func(r *Registry) {
		if b != nil {
			r.builder = b
		}
	}
}

// WithLogger sets the logger. Gating decisions and constructions are
// logged at V(1).
func WithLogger(log logr.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// WithMetrics instruments the registry's probe with Prometheus counters
// registered with reg. See probe.Instrument.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.metrics = reg
		r.instrument = true
	}
}
