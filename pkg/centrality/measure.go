// Package centrality implements node importance measures over a graph
// snapshot: degree, closeness, betweenness (Brandes), eigenvector and
// PageRank. All measures are deterministic for a fixed graph.
package centrality

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Measure selects a centrality measure for Compute.
type Measure int

const (
	// MeasureDegree scores each node by incident edge count / (n-1).
	MeasureDegree Measure = iota

	// MeasureCloseness scores each node by reachable count / distance sum.
	MeasureCloseness

	// MeasureBetweenness scores each node by the fraction of shortest
	// paths passing through it (Brandes' algorithm).
	MeasureBetweenness

	// MeasureEigenvector scores each node by the principal eigenvector of
	// the adjacency matrix (power iteration).
	MeasureEigenvector

	// MeasurePageRank scores each node by the PageRank random-surfer model.
	MeasurePageRank
)

// String returns the measure name as used in configs and logs.
func (m Measure) String() string {
	switch m {
	case MeasureDegree:
		return "degree"
	case MeasureCloseness:
		return "closeness"
	case MeasureBetweenness:
		return "betweenness"
	case MeasureEigenvector:
		return "eigenvector"
	case MeasurePageRank:
		return "pagerank"
	default:
		return "unknown"
	}
}

// ParseMeasure converts a measure name to its variant. Unrecognized names
// fail with graph.ErrUnsupported.
func ParseMeasure(name string) (Measure, error) {
	switch name {
	case "degree":
		return MeasureDegree, nil
	case "closeness":
		return MeasureCloseness, nil
	case "betweenness":
		return MeasureBetweenness, nil
	case "eigenvector":
		return MeasureEigenvector, nil
	case "pagerank":
		return MeasurePageRank, nil
	default:
		return 0, graph.UnsupportedError("ParseMeasure", name)
	}
}

// Options configures the iterative measures and the per-source parallelism
// of the traversal-based ones.
type Options struct {
	// Workers bounds the per-source fan-out for closeness and betweenness.
	// 0 selects GOMAXPROCS, 1 forces sequential execution.
	Workers int

	// PageRank parameters.
	DampingFactor float64
	MaxIterations int
	Tolerance     float64
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{
		Workers:       1,
		DampingFactor: 0.85,
		MaxIterations: 100,
		Tolerance:     1e-6,
	}
}

// Compute dispatches to the implementation of the requested measure.
// An unrecognized measure fails with graph.ErrUnsupported.
func Compute(g *graph.Graph, measure Measure, opts Options) (map[string]float64, error) {
	switch measure {
	case MeasureDegree:
		return Degree(g), nil
	case MeasureCloseness:
		return Closeness(g, opts)
	case MeasureBetweenness:
		return Betweenness(g, opts)
	case MeasureEigenvector:
		return Eigenvector(g, opts)
	case MeasurePageRank:
		result, err := PageRank(g, opts)
		if err != nil {
			return nil, err
		}
		return result.Scores, nil
	default:
		return nil, graph.UnsupportedError("Compute", measure.String())
	}
}
