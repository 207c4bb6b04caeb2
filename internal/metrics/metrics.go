// Package metrics counts create, update, and delete attempts per entity and
// outcome on a private Prometheus registry.
package metrics

import (
	"fmt"
	"sort"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/officedesk/pkg/crud"
)

const operationsName = "officedesk_operations_total"

// Recorder implements crud.Observer.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

var _ crud.Observer = (*Recorder)(nil)

// NewRecorder returns a Recorder with its own registry, so several sessions
// in one process never collide on registration.
func NewRecorder() *Recorder {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: operationsName,
		Help: "Create, update, and delete attempts by entity and outcome.",
	}, []string{"entity", "op", "outcome"})

	reg := prometheus.NewRegistry()
	reg.MustRegister(ops)

	return &Recorder{registry: reg, operations: ops}
}

// Observe increments the counter for one attempt.
func (r *Recorder) Observe(entity string, op crud.Op, outcome crud.Outcome) {
	r.operations.WithLabelValues(entity, string(op), string(outcome)).Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Sample is one non-zero counter value.
type Sample struct {
	Entity  string  `json:"entity"`
	Op      string  `json:"op"`
	Outcome string  `json:"outcome"`
	Value   float64 `json:"value"`
}

func (s Sample) String() string {
	return fmt.Sprintf("%-9s %-7s %-10s %g", s.Entity, s.Op, s.Outcome, s.Value)
}

// Samples gathers the counters, sorted by entity, op, and outcome.
func (r *Recorder) Samples() ([]Sample, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}

	var out []Sample
	for _, mf := range families {
		if mf.GetName() != operationsName {
			continue
		}
		for _, m := range mf.GetMetric() {
			s := Sample{Value: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "entity":
					s.Entity = lp.GetValue()
				case "op":
					s.Op = lp.GetValue()
				case "outcome":
					s.Outcome = lp.GetValue()
				}
			}
			out = append(out, s)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		if a.Op != b.Op {
			return a.Op < b.Op
		}
		return a.Outcome < b.Outcome
	})
	return out, nil
}
