package metrics

import (
	"time"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// RecordAnalysis records one analysis run with its outcome and duration.
func (r *Registry) RecordAnalysis(algorithm, status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(algorithm, status).Inc()
	r.AnalysisDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

// RecordSources records how many source nodes an all-pairs analysis visited.
func (r *Registry) RecordSources(algorithm string, sources int) {
	r.AnalysisSources.WithLabelValues(algorithm).Observe(float64(sources))
}

// UpdateGraphMetrics publishes the size of the graph under analysis.
func (r *Registry) UpdateGraphMetrics(g *graph.Graph) {
	r.GraphNodes.Set(float64(g.NodeCount()))
	r.GraphEdges.Set(float64(g.EdgeCount()))
}
