package traversal

import (
	"container/list"
	"sort"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// ConnectedComponents partitions all nodes into maximal connected sets.
// For directed graphs this computes weak connectivity: edges are followed in
// both directions. The partition is total and disjoint. Components are
// ordered by their smallest member and each component's nodes are sorted,
// so the result is deterministic.
func ConnectedComponents(g *graph.Graph) [][]string {
	visited := make(map[string]bool, g.NodeCount())
	components := make([][]string, 0)

	for _, start := range g.Nodes() {
		if visited[start] {
			continue
		}

		component := make([]string, 0)
		queue := list.New()
		queue.PushBack(start)
		visited[start] = true

		for queue.Len() > 0 {
			v := queue.Remove(queue.Front()).(string)
			component = append(component, v)

			for _, nb := range g.Neighbors(v) {
				if !visited[nb.ID] {
					visited[nb.ID] = true
					queue.PushBack(nb.ID)
				}
			}
			for _, nb := range g.InNeighbors(v) {
				if !visited[nb.ID] {
					visited[nb.ID] = true
					queue.PushBack(nb.ID)
				}
			}
		}

		sort.Strings(component)
		components = append(components, component)
	}

	return components
}

// LargestComponent returns the component with the most nodes, or nil for an
// empty graph. Ties go to the component with the smallest leading member.
func LargestComponent(g *graph.Graph) []string {
	var largest []string
	for _, c := range ConnectedComponents(g) {
		if len(c) > len(largest) {
			largest = c
		}
	}
	return largest
}

// IsConnected reports whether the graph forms a single weak component.
// The empty graph counts as connected.
func IsConnected(g *graph.Graph) bool {
	return len(ConnectedComponents(g)) <= 1
}
