package traversal

import (
	"container/heap"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// pqItem is a priority queue entry for Dijkstra's algorithm.
type pqItem struct {
	nodeID   string
	distance float64
}

// distanceHeap implements a min-heap over (distance, node id). Ties on
// distance break by ascending node id so extraction order is deterministic.
type distanceHeap []pqItem

func (h distanceHeap) Len() int { return len(h) }
func (h distanceHeap) Less(i, j int) bool {
	if h[i].distance != h[j].distance {
		return h[i].distance < h[j].distance
	}
	return h[i].nodeID < h[j].nodeID
}
func (h distanceHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distanceHeap) Push(x any) {
	*h = append(*h, x.(pqItem))
}

func (h *distanceHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// WeightedShortestPath finds the minimum cumulative-weight path between two
// nodes using Dijkstra's algorithm. Weights must be non-negative; a graph
// containing a negative weight fails with graph.ErrNegativeWeight. A nil path
// with zero distance means the endpoints are in different components.
func WeightedShortestPath(g *graph.Graph, source, target string) ([]string, float64, error) {
	if !g.HasNode(source) {
		return nil, 0, graph.NodeNotFoundError("WeightedShortestPath", source)
	}
	if !g.HasNode(target) {
		return nil, 0, graph.NodeNotFoundError("WeightedShortestPath", target)
	}
	if g.HasNegativeWeight() {
		return nil, 0, graph.NegativeWeightError("WeightedShortestPath")
	}

	distances := map[string]float64{source: 0}
	parent := map[string]string{source: source}
	settled := make(map[string]bool)

	pq := &distanceHeap{{source, 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		if settled[current.nodeID] {
			continue
		}
		settled[current.nodeID] = true

		if current.nodeID == target {
			return buildPath(parent, source, target), distances[target], nil
		}

		for _, nb := range g.Neighbors(current.nodeID) {
			newDist := current.distance + nb.Weight
			if old, seen := distances[nb.ID]; !seen || newDist < old {
				distances[nb.ID] = newDist
				parent[nb.ID] = current.nodeID
				heap.Push(pq, pqItem{nb.ID, newDist})
			}
		}
	}

	return nil, 0, nil // different components
}

// WeightedDistancesFrom returns minimum cumulative-weight distances from
// source to every reachable node. Fails with graph.ErrNegativeWeight if any
// edge weight is negative.
func WeightedDistancesFrom(g *graph.Graph, source string) (map[string]float64, error) {
	if !g.HasNode(source) {
		return nil, graph.NodeNotFoundError("WeightedDistancesFrom", source)
	}
	if g.HasNegativeWeight() {
		return nil, graph.NegativeWeightError("WeightedDistancesFrom")
	}

	distances := map[string]float64{source: 0}
	settled := make(map[string]bool)

	pq := &distanceHeap{{source, 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(pqItem)
		if settled[current.nodeID] {
			continue
		}
		settled[current.nodeID] = true

		for _, nb := range g.Neighbors(current.nodeID) {
			newDist := current.distance + nb.Weight
			if old, seen := distances[nb.ID]; !seen || newDist < old {
				distances[nb.ID] = newDist
				heap.Push(pq, pqItem{nb.ID, newDist})
			}
		}
	}

	return distances, nil
}
