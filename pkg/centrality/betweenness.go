package centrality

import (
	"container/list"

	"github.com/dmcnab/graphalyzer/pkg/graph"
	"github.com/dmcnab/graphalyzer/pkg/parallel"
)

// Betweenness computes betweenness centrality for all nodes using Brandes'
// algorithm: one shortest-path counting pass per source with dependency
// accumulation on the way back. Normalized so that for undirected graphs the
// score is the fraction of unordered node pairs whose shortest paths pass
// through the node, scaled by 2/((n-1)(n-2)).
//
// Each source pass only reads the graph and writes its own accumulator;
// passes fan out across opts.Workers and partials merge in fixed source
// order, so the output is deterministic and reproducible for a fixed graph.
func Betweenness(g *graph.Graph, opts Options) (map[string]float64, error) {
	nodes := g.Nodes()
	n := len(nodes)

	scores := make(map[string]float64, n)
	for _, id := range nodes {
		scores[id] = 0.0
	}

	err := parallel.ForEachSource(nodes, opts.Workers,
		func(source string) map[string]float64 {
			return brandesPass(g, nodes, source)
		},
		func(delta map[string]float64) {
			for id, d := range delta {
				scores[id] += d
			}
		},
	)
	if err != nil {
		return nil, err
	}

	// The per-source accumulation counts ordered (s,t) pairs; for undirected
	// graphs each unordered pair is counted twice, which together with the
	// 2/((n-1)(n-2)) normalization reduces to 1/((n-1)(n-2)). Directed graphs
	// use the same factor over ordered pairs.
	if n > 2 {
		normFactor := 1.0 / float64((n-1)*(n-2))
		for id := range scores {
			scores[id] *= normFactor
		}
	}

	return scores, nil
}

// brandesPass runs a single-source shortest-path count from source and
// returns the dependency of source on every other node.
func brandesPass(g *graph.Graph, nodes []string, source string) map[string]float64 {
	stack := make([]string, 0, len(nodes))
	predecessors := make(map[string][]string, len(nodes))
	sigma := map[string]float64{source: 1.0}
	distance := map[string]int{source: 0}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v := queue.Remove(queue.Front()).(string)
		stack = append(stack, v)

		for _, nb := range g.Neighbors(v) {
			w := nb.ID

			if _, seen := distance[w]; !seen {
				distance[w] = distance[v] + 1
				queue.PushBack(w)
			}
			if distance[w] == distance[v]+1 {
				sigma[w] += sigma[v]
				predecessors[w] = append(predecessors[w], v)
			}
		}
	}

	// Back-propagation in reverse BFS order
	delta := make(map[string]float64, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		w := stack[i]
		for _, pred := range predecessors[w] {
			delta[pred] += (sigma[pred] / sigma[w]) * (1.0 + delta[w])
		}
	}
	delta[source] = 0.0

	return delta
}
