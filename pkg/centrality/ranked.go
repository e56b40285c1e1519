package centrality

import (
	"container/heap"
	"sort"
)

// RankedNode holds a node with its centrality score.
type RankedNode struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// rankedNodeHeap implements a min-heap for RankedNode by score, with equal
// scores ordering the larger id first so it is evicted first. Keeping at
// most k elements makes top-k selection O(n log k).
type rankedNodeHeap []RankedNode

func (h rankedNodeHeap) Len() int { return len(h) }
func (h rankedNodeHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].ID > h[j].ID
}
func (h rankedNodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *rankedNodeHeap) Push(x any) {
	*h = append(*h, x.(RankedNode))
}

func (h *rankedNodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopNodes returns the k highest-scoring nodes, sorted by score descending
// with ties broken by ascending node id for determinism.
func TopNodes(scores map[string]float64, k int) []RankedNode {
	if k <= 0 {
		return nil
	}

	h := make(rankedNodeHeap, 0, k)
	heap.Init(&h)

	for id, score := range scores {
		rn := RankedNode{ID: id, Score: score}
		if h.Len() < k {
			heap.Push(&h, rn)
		} else if score > h[0].Score || (score == h[0].Score && id < h[0].ID) {
			heap.Pop(&h)
			heap.Push(&h, rn)
		}
	}

	result := make([]RankedNode, h.Len())
	for i := h.Len() - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(RankedNode)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].ID < result[j].ID
	})

	return result
}
