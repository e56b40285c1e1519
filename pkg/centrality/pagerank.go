package centrality

import (
	"math"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// PageRankResult contains PageRank scores for all nodes.
type PageRankResult struct {
	Scores     map[string]float64 // node id -> PageRank score
	Iterations int                // number of iterations performed
	Converged  bool               // whether the iteration converged
}

// PageRank computes PageRank scores for all nodes in the graph using the
// damped random-surfer iteration. Scores sum to 1. Convergence is reached
// when the largest per-node change drops below opts.Tolerance.
func PageRank(g *graph.Graph, opts Options) (*PageRankResult, error) {
	nodes := g.Nodes()
	n := len(nodes)

	if n == 0 {
		return &PageRankResult{
			Scores:    make(map[string]float64),
			Converged: true,
		}, nil
	}

	scores := make(map[string]float64, n)
	initial := 1.0 / float64(n)
	for _, id := range nodes {
		scores[id] = initial
	}

	outDegree := make(map[string]int, n)
	for _, id := range nodes {
		outDegree[id] = len(g.Neighbors(id))
	}

	newScores := make(map[string]float64, n)
	converged := false
	iterations := 0

	for iterations < opts.MaxIterations {
		iterations++

		for _, id := range nodes {
			// Random jump probability plus incoming contributions
			score := (1.0 - opts.DampingFactor) / float64(n)
			for _, nb := range g.InNeighbors(id) {
				if out := outDegree[nb.ID]; out > 0 {
					score += opts.DampingFactor * (scores[nb.ID] / float64(out))
				}
			}
			newScores[id] = score
		}

		maxDiff := 0.0
		for _, id := range nodes {
			if diff := math.Abs(newScores[id] - scores[id]); diff > maxDiff {
				maxDiff = diff
			}
		}

		scores, newScores = newScores, scores

		if maxDiff < opts.Tolerance {
			converged = true
			break
		}
	}

	// Dangling nodes leak probability mass; renormalize to sum 1
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	if sum > 0 {
		for id := range scores {
			scores[id] /= sum
		}
	}

	return &PageRankResult{
		Scores:     scores,
		Iterations: iterations,
		Converged:  converged,
	}, nil
}
