package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmcnab/graphalyzer/pkg/graph"
	"github.com/dmcnab/graphalyzer/pkg/logging"
	"github.com/dmcnab/graphalyzer/pkg/metrics"
	"github.com/dmcnab/graphalyzer/pkg/traversal"
)

// Summary describes a graph in one report. Path statistics depend on
// connectivity: a connected graph reports its diameter and average path
// length, a disconnected one reports its component structure instead.
type Summary struct {
	RunID     string  `json:"run_id"`
	Directed  bool    `json:"directed"`
	NodeCount int     `json:"node_count"`
	EdgeCount int     `json:"edge_count"`
	Density   float64 `json:"density"`
	Connected bool    `json:"connected"`

	// Populated when the graph is connected
	Diameter          int     `json:"diameter,omitempty"`
	AveragePathLength float64 `json:"average_path_length,omitempty"`

	// Populated when the graph is disconnected
	ComponentCount           int `json:"component_count,omitempty"`
	LargestComponentSize     int `json:"largest_component_size,omitempty"`
	LargestComponentDiameter int `json:"largest_component_diameter,omitempty"`

	AverageDegree     float64 `json:"average_degree"`
	AverageClustering float64 `json:"average_clustering"`
	Transitivity      float64 `json:"transitivity"`
}

// Reporter builds graph summaries and publishes run telemetry.
type Reporter struct {
	logger   logging.Logger
	registry *metrics.Registry
}

// NewReporter creates a reporter. A nil logger or registry falls back to
// the process-wide defaults.
func NewReporter(logger logging.Logger, registry *metrics.Registry) *Reporter {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	return &Reporter{
		logger:   logger.With(logging.Component("stats")),
		registry: registry,
	}
}

// Summarize computes the full statistics report for a graph. Each call is
// tagged with a fresh run id.
func (r *Reporter) Summarize(g *graph.Graph) *Summary {
	runID := uuid.NewString()
	start := time.Now()

	summary := &Summary{
		RunID:     runID,
		Directed:  g.Directed(),
		NodeCount: g.NodeCount(),
		EdgeCount: g.EdgeCount(),
		Density:   g.Density(),
		Connected: traversal.IsConnected(g),
	}

	if summary.NodeCount > 0 {
		degreeSum := 0
		for _, id := range g.Nodes() {
			degreeSum += g.Degree(id)
		}
		summary.AverageDegree = float64(degreeSum) / float64(summary.NodeCount)
	}

	if summary.Connected {
		// IsConnected already held, so Diameter cannot fail
		if diameter, err := traversal.Diameter(g); err == nil {
			summary.Diameter = diameter
		}
		if avg, err := traversal.AveragePathLength(g); err == nil {
			summary.AveragePathLength = avg
		}
	} else {
		components := traversal.ConnectedComponents(g)
		summary.ComponentCount = len(components)
		largest := traversal.LargestComponent(g)
		summary.LargestComponentSize = len(largest)
		summary.LargestComponentDiameter = traversal.LargestComponentDiameter(g)
	}

	summary.AverageClustering = AverageClustering(g)
	summary.Transitivity = Transitivity(g)

	r.registry.UpdateGraphMetrics(g)
	r.registry.RecordAnalysis("summary", "success", time.Since(start))
	r.logger.Info("graph summarized",
		logging.RunID(runID),
		logging.Nodes(summary.NodeCount),
		logging.Edges(summary.EdgeCount),
		logging.Bool("connected", summary.Connected),
		logging.Float64("density", summary.Density),
		logging.Latency(time.Since(start)),
	)

	return summary
}
