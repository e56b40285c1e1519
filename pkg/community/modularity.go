package community

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Modularity scores a partition of the graph's nodes. For each community it
// compares the fraction of edge weight falling inside the community against
// the fraction expected if edges were rewired at random while preserving
// degrees. Scores lie in [-0.5, 1]; a partition of everything into one
// community always scores 0. An empty graph scores 0.
//
// partition maps node id to community id. Nodes missing from the partition
// are treated as a community of their own.
func Modularity(g *graph.Graph, partition map[string]int) float64 {
	totalWeight := g.TotalWeight()
	if totalWeight == 0 {
		return 0.0
	}

	labels := make(map[string]int, g.NodeCount())
	next := -1
	for _, id := range g.Nodes() {
		if c, ok := partition[id]; ok {
			labels[id] = c
		} else {
			labels[id] = next // negative ids cannot collide with partition ids
			next--
		}
	}

	intra := make(map[int]float64)   // community id -> internal edge weight
	degrees := make(map[int]float64) // community id -> total incident weight
	for _, e := range g.Edges() {
		cs, ct := labels[e.Source], labels[e.Target]
		degrees[cs] += e.Weight
		degrees[ct] += e.Weight
		if cs == ct {
			intra[cs] += e.Weight
		}
	}

	q := 0.0
	for c, deg := range degrees {
		frac := deg / (2.0 * totalWeight)
		q += intra[c]/totalWeight - frac*frac
	}
	return q
}
