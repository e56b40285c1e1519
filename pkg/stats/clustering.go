// Package stats summarizes a graph: size, connectivity, path lengths and
// clustering structure.
package stats

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// ClusteringCoefficients computes each node's local clustering coefficient:
// the fraction of pairs of its neighbors that are themselves connected.
// Nodes with fewer than two neighbors score 0. Edge directions and parallel
// edges are ignored; a triangle is a triangle either way round.
func ClusteringCoefficients(g *graph.Graph) map[string]float64 {
	sets := neighborSets(g)

	coefficients := make(map[string]float64, len(sets))
	for _, id := range g.Nodes() {
		links, pairs := neighborLinks(sets, id)
		if pairs == 0 {
			coefficients[id] = 0.0
			continue
		}
		coefficients[id] = float64(links) / float64(pairs)
	}
	return coefficients
}

// AverageClustering is the mean local clustering coefficient over all
// nodes, 0 for an empty graph.
func AverageClustering(g *graph.Graph) float64 {
	coefficients := ClusteringCoefficients(g)
	if len(coefficients) == 0 {
		return 0.0
	}

	sum := 0.0
	for _, id := range g.Nodes() { // fixed order keeps the sum reproducible
		sum += coefficients[id]
	}
	return sum / float64(len(coefficients))
}

// Transitivity is the global clustering coefficient: three times the
// triangle count divided by the number of connected triples. 0 when the
// graph has no connected triples.
func Transitivity(g *graph.Graph) float64 {
	sets := neighborSets(g)

	closed, triples := 0, 0
	for _, id := range g.Nodes() {
		links, pairs := neighborLinks(sets, id)
		closed += links
		triples += pairs
	}
	if triples == 0 {
		return 0.0
	}
	// Every triangle closes one neighbor pair at each of its three
	// corners, so the closed-pair sum is already 3 times the triangle count.
	return float64(closed) / float64(triples)
}

// neighborSets builds the deduplicated undirected neighborhood of every
// node, excluding self-loops.
func neighborSets(g *graph.Graph) map[string]map[string]bool {
	sets := make(map[string]map[string]bool, g.NodeCount())
	for _, id := range g.Nodes() {
		sets[id] = make(map[string]bool)
	}
	for _, e := range g.Edges() {
		if e.Source == e.Target {
			continue
		}
		sets[e.Source][e.Target] = true
		sets[e.Target][e.Source] = true
	}
	return sets
}

// neighborLinks counts the connected pairs among id's neighbors and the
// total number of neighbor pairs.
func neighborLinks(sets map[string]map[string]bool, id string) (links, pairs int) {
	neighbors := make([]string, 0, len(sets[id]))
	for nb := range sets[id] {
		neighbors = append(neighbors, nb)
	}

	k := len(neighbors)
	pairs = k * (k - 1) / 2
	for i, u := range neighbors {
		for _, v := range neighbors[i+1:] {
			if sets[u][v] {
				links++
			}
		}
	}
	return links, pairs
}
