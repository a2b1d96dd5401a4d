// Package metrics exposes validation engine activity as Prometheus metrics.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-formguard/pkg/validation"
)

const namespace = "formguard"

// Collector records revalidations, propagations and submissions. It
// implements validation.Observer.
type Collector struct {
	revalidations *prometheus.CounterVec
	propagations  *prometheus.CounterVec
	fanout        prometheus.Histogram
	submissions   *prometheus.CounterVec
}

var _ validation.Observer = (*Collector)(nil)

// New creates a collector and registers it with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		revalidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revalidations_total",
			Help:      "Field evaluations by field and validity.",
		}, []string{"field", "valid"}),
		propagations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "propagations_total",
			Help:      "Value changes that refreshed at least one dependent, by source field.",
		}, []string{"source"}),
		fanout: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "propagation_dependents",
			Help:      "Dependents revalidated per propagation.",
			Buckets:   []float64{1, 2, 4, 8, 16},
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Submit requests by outcome.",
		}, []string{"outcome"}),
	}

	for _, col := range []prometheus.Collector{c.revalidations, c.propagations, c.fanout, c.submissions} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}
	return c, nil
}

// OnRevalidate counts a field evaluation.
func (c *Collector) OnRevalidate(result validation.Result) {
	c.revalidations.WithLabelValues(result.FieldID, strconv.FormatBool(result.Valid)).Inc()
}

// OnPropagate counts a propagation and its fan-out.
func (c *Collector) OnPropagate(source string, results []validation.Result) {
	c.propagations.WithLabelValues(source).Inc()
	c.fanout.Observe(float64(len(results)))
}

// OnSubmit counts a submission as "valid" or "invalid".
func (c *Collector) OnSubmit(outcome validation.Outcome) {
	label := "invalid"
	if outcome.Valid {
		label = "valid"
	}
	c.submissions.WithLabelValues(label).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus exposition
// format.
func Handler(g prometheus.Gatherer) http.Handler {
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
