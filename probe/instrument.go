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
	"errors"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/vcompat/apis"
)

const (
	outcomeFound   = "found"
	outcomeMissing = "missing"
)

// Instrument wraps p so that member lookups and reads are counted in
// Prometheus metrics registered with reg:
//
//	vcompat_probe_lookups_total{kind="field|method",outcome="found|missing"}
//	vcompat_probe_reads_total{kind="field|method",outcome="found|missing"}
//
// A nil reg uses prometheus.DefaultRegisterer. Collectors that are already
// registered with reg are reused.
func Instrument(p apis.Probe, reg prometheus.Registerer) (apis.Probe, error) {
	if p == nil {
		p = New()
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	lookups, err := registerCounterVec(reg, prometheus.CounterOpts{
		Namespace: "vcompat",
		Subsystem: "probe",
		Name:      "lookups_total",
		Help:      "Total number of reflective member lookups.",
	})
	if err != nil {
		return nil, err
	}
	reads, err := registerCounterVec(reg, prometheus.CounterOpts{
		Namespace: "vcompat",
		Subsystem: "probe",
		Name:      "reads_total",
		Help:      "Total number of reflective field reads and method invocations.",
	})
	if err != nil {
		return nil, err
	}
	return &instrumented{next: p, lookups: lookups, reads: reads}, nil
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts) (*prometheus.CounterVec, error) {
	cv := prometheus.NewCounterVec(opts, []string{"kind", "outcome"})
	if err := reg.Register(cv); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return cv, nil
}

// instrumented is an apis.Probe decorator that records metrics.
type instrumented struct {
	next    apis.Probe
	lookups *prometheus.CounterVec
	reads   *prometheus.CounterVec
}

var _ apis.Probe = (*instrumented)(nil)

func (p *instrumented) FindDeclaredField(t reflect.Type, name string) (apis.Member, bool) {
	m, ok := p.next.FindDeclaredField(t, name)
	p.lookups.WithLabelValues(apis.FieldMember.String(), outcome(ok)).Inc()
	return m, ok
}

func (p *instrumented) FindPublicMethod(t reflect.Type, name string, argTypes ...reflect.Type) (apis.Member, bool) {
	m, ok := p.next.FindPublicMethod(t, name, argTypes...)
	p.lookups.WithLabelValues(apis.MethodMember.String(), outcome(ok)).Inc()
	return m, ok
}

func (p *instrumented) Read(m apis.Member, obj any) (any, bool) {
	v, ok := p.next.Read(m, obj)
	p.reads.WithLabelValues(apis.FieldMember.String(), outcome(ok)).Inc()
	return v, ok
}

func (p *instrumented) Invoke(m apis.Member, obj any, args ...any) (any, bool) {
	v, ok := p.next.Invoke(m, obj, args...)
	p.reads.WithLabelValues(apis.MethodMember.String(), outcome(ok)).Inc()
	return v, ok
}

func outcome(ok bool) string {
	if ok {
		return outcomeFound
	}
	return outcomeMissing
}
