package community

import (
	"sort"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// LabelPropagation partitions the graph by spreading labels: every node
// starts with a unique label and repeatedly adopts the label most common
// among its neighbors. Ties go to the smallest label and nodes are visited
// in sorted order, so the result is deterministic. The loop stops when a
// full pass changes no label or maxIterations passes have run.
func LabelPropagation(g *graph.Graph, maxIterations int) *Result {
	nodes := g.Nodes()
	labels := make(map[string]int, len(nodes))
	for i, id := range nodes {
		labels[id] = i
	}

	if maxIterations <= 0 {
		maxIterations = DefaultOptions().MaxIterations
	}

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for _, id := range nodes {
			label, ok := majorityLabel(g, id, labels)
			if ok && label != labels[id] {
				labels[id] = label
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return buildResult(g, labels)
}

// majorityLabel returns the most frequent label among id's neighbors,
// weighted by edge weight. For directed graphs both edge directions count.
// Reports false when the node has no neighbors.
func majorityLabel(g *graph.Graph, id string, labels map[string]int) (int, bool) {
	counts := make(map[int]float64)
	for _, nb := range g.Neighbors(id) {
		counts[labels[nb.ID]] += nb.Weight
	}
	if g.Directed() {
		for _, nb := range g.InNeighbors(id) {
			counts[labels[nb.ID]] += nb.Weight
		}
	}
	if len(counts) == 0 {
		return 0, false
	}

	candidates := make([]int, 0, len(counts))
	for label := range counts {
		candidates = append(candidates, label)
	}
	sort.Ints(candidates)

	best := candidates[0]
	for _, label := range candidates[1:] {
		if counts[label] > counts[best] {
			best = label
		}
	}
	return best, true
}
