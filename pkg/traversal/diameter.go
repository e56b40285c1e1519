package traversal

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Diameter returns the maximum shortest-path length (in hops) over all node
// pairs. It fails with graph.ErrDisconnected when the graph has more than one
// component; use LargestComponentDiameter to restrict explicitly. An empty or
// single-node graph has diameter 0.
func Diameter(g *graph.Graph) (int, error) {
	if g.NodeCount() <= 1 {
		return 0, nil
	}
	if !IsConnected(g) {
		return 0, graph.DisconnectedError("Diameter")
	}
	return eccentricityMax(g, g.Nodes()), nil
}

// LargestComponentDiameter returns the diameter of the largest weakly
// connected component. Zero for an empty graph.
func LargestComponentDiameter(g *graph.Graph) int {
	return eccentricityMax(g, LargestComponent(g))
}

// AveragePathLength returns the mean shortest-path length over all ordered
// node pairs. Fails with graph.ErrDisconnected when the graph has more than
// one component, and returns 0 for graphs with fewer than two nodes.
func AveragePathLength(g *graph.Graph) (float64, error) {
	n := g.NodeCount()
	if n <= 1 {
		return 0, nil
	}
	if !IsConnected(g) {
		return 0, graph.DisconnectedError("AveragePathLength")
	}

	total := 0
	for _, source := range g.Nodes() {
		distances, err := DistancesFrom(g, source)
		if err != nil {
			return 0, err
		}
		for _, d := range distances {
			total += d
		}
	}

	return float64(total) / float64(n*(n-1)), nil
}

// eccentricityMax runs BFS from every listed node and returns the largest
// finite distance seen. Nodes outside the list are ignored, which keeps the
// computation inside a single component.
func eccentricityMax(g *graph.Graph, nodes []string) int {
	inSet := make(map[string]bool, len(nodes))
	for _, id := range nodes {
		inSet[id] = true
	}

	maxDist := 0
	for _, source := range nodes {
		distances, err := DistancesFrom(g, source)
		if err != nil {
			continue
		}
		for id, d := range distances {
			if inSet[id] && d > maxDist {
				maxDist = d
			}
		}
	}
	return maxDist
}
