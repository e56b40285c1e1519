package centrality

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Degree computes degree centrality for all nodes: incident edge count,
// counting multiplicities, divided by (n-1). Every node scores 0.0 when the
// graph has at most one node. For simple graphs the scores lie in [0,1];
// parallel edges can push a score above 1.
func Degree(g *graph.Graph) map[string]float64 {
	nodes := g.Nodes()
	n := len(nodes)

	scores := make(map[string]float64, n)
	if n <= 1 {
		for _, id := range nodes {
			scores[id] = 0.0
		}
		return scores
	}

	for _, id := range nodes {
		scores[id] = float64(g.Degree(id)) / float64(n-1)
	}
	return scores
}
