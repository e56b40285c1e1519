package centrality

import (
	"math"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Eigenvector computes eigenvector centrality by power iteration on the
// weighted adjacency matrix. Scores are normalized to unit Euclidean length
// and are not confined to [0,1]. Iteration stops when the largest per-node
// change drops below opts.Tolerance or opts.MaxIterations is reached.
// For directed graphs a node's score derives from the nodes pointing at it.
func Eigenvector(g *graph.Graph, opts Options) (map[string]float64, error) {
	nodes := g.Nodes()
	n := len(nodes)

	scores := make(map[string]float64, n)
	if n == 0 {
		return scores, nil
	}

	for _, id := range nodes {
		scores[id] = 1.0 / float64(n)
	}

	next := make(map[string]float64, n)
	for iter := 0; iter < opts.MaxIterations; iter++ {
		for _, id := range nodes {
			sum := 0.0
			for _, nb := range g.InNeighbors(id) {
				sum += nb.Weight * scores[nb.ID]
			}
			next[id] = sum
		}

		// Normalize to unit length; a zero vector means there is nothing
		// to propagate (no edges), so every node keeps score 0.
		norm := 0.0
		for _, v := range next {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			for _, id := range nodes {
				scores[id] = 0.0
			}
			return scores, nil
		}

		maxDiff := 0.0
		for _, id := range nodes {
			scaled := next[id] / norm
			if diff := math.Abs(scaled - scores[id]); diff > maxDiff {
				maxDiff = diff
			}
			scores[id] = scaled
		}

		if maxDiff < opts.Tolerance {
			break
		}
	}

	return scores, nil
}
