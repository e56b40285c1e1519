// Package traversal implements shortest paths, connected components and
// distance aggregates over a graph snapshot. All functions are pure reads:
// they never mutate the graph they are given.
package traversal

import (
	"container/list"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// ShortestPath finds a shortest path by hop count between two nodes using BFS.
// Returns graph.ErrNodeNotFound if either endpoint is absent, and a nil path
// when the endpoints lie in different components. Among equal-length paths the
// first one discovered under the graph's fixed adjacency ordering is returned,
// so the result is deterministic.
func ShortestPath(g *graph.Graph, source, target string) ([]string, error) {
	if !g.HasNode(source) {
		return nil, graph.NodeNotFoundError("ShortestPath", source)
	}
	if !g.HasNode(target) {
		return nil, graph.NodeNotFoundError("ShortestPath", target)
	}
	if source == target {
		return []string{source}, nil
	}

	parent := map[string]string{source: source}
	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v := queue.Remove(queue.Front()).(string)

		for _, nb := range g.Neighbors(v) {
			if _, seen := parent[nb.ID]; seen {
				continue
			}
			parent[nb.ID] = v
			if nb.ID == target {
				return buildPath(parent, source, target), nil
			}
			queue.PushBack(nb.ID)
		}
	}

	return nil, nil // different components
}

// DistancesFrom returns hop-count distances from source to every reachable
// node, including the source itself at distance 0.
func DistancesFrom(g *graph.Graph, source string) (map[string]int, error) {
	if !g.HasNode(source) {
		return nil, graph.NodeNotFoundError("DistancesFrom", source)
	}

	distances := map[string]int{source: 0}
	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v := queue.Remove(queue.Front()).(string)
		d := distances[v]

		for _, nb := range g.Neighbors(v) {
			if _, seen := distances[nb.ID]; !seen {
				distances[nb.ID] = d + 1
				queue.PushBack(nb.ID)
			}
		}
	}

	return distances, nil
}

// buildPath walks the parent map back from target to source.
func buildPath(parent map[string]string, source, target string) []string {
	path := []string{target}
	for node := target; node != source; {
		node = parent[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
