// Package metrics exposes Prometheus instrumentation for scaffold requests.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/toyz/quicktest/internal/models"
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics implements generator.Recorder
type Metrics struct {
	// scaffoldsTotal counts scaffold requests.
	// Labels: kind (Unit.Tests, Integration.Tests, Original), result (success, error)
	scaffoldsTotal *prometheus.CounterVec

	// scaffoldDuration measures extraction plus rendering time.
	// Labels: kind
	scaffoldDuration *prometheus.HistogramVec
}

// New registers the collectors with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		scaffoldsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quicktest",
			Name:      "scaffolds_total",
			Help:      "Total scaffold requests by kind and result",
		}, []string{"kind", "result"}),
		scaffoldDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quicktest",
			Name:      "scaffold_duration_seconds",
			Help:      "Time spent extracting and rendering one scaffold",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"kind"}),
	}
}

// ObserveScaffold records one finished request
func (m *Metrics) ObserveScaffold(kind models.ScaffoldKind, err error, elapsed time.Duration) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	m.scaffoldsTotal.WithLabelValues(string(kind), result).Inc()
	m.scaffoldDuration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}
