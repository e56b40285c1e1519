// Package metrics exposes Prometheus instrumentation for analysis runs.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all analyzer metrics.
type Registry struct {
	// Analysis metrics
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration *prometheus.HistogramVec
	AnalysisSources  *prometheus.HistogramVec

	// Graph snapshot metrics
	GraphNodes prometheus.Gauge
	GraphEdges prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry.
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a metrics registry with all metrics initialized.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initAnalysisMetrics()
	r.initGraphMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry, for
// wiring into an HTTP handler or a push gateway.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
