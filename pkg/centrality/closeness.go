package centrality

import (
	"container/list"

	"github.com/dmcnab/graphalyzer/pkg/graph"
	"github.com/dmcnab/graphalyzer/pkg/parallel"
)

// Closeness computes closeness centrality for all nodes: the number of
// reachable other nodes divided by the sum of hop distances to them. Nodes
// that reach no one score 0.0. Each source is an independent BFS, so the
// per-source loop fans out across opts.Workers.
func Closeness(g *graph.Graph, opts Options) (map[string]float64, error) {
	nodes := g.Nodes()
	scores := make(map[string]float64, len(nodes))

	type partial struct {
		source string
		score  float64
	}

	err := parallel.ForEachSource(nodes, opts.Workers,
		func(source string) partial {
			return partial{source, closenessFrom(g, source)}
		},
		func(p partial) {
			scores[p.source] = p.score
		},
	)
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// closenessFrom runs one BFS and folds the distances into a score.
func closenessFrom(g *graph.Graph, source string) float64 {
	distance := map[string]int{source: 0}

	queue := list.New()
	queue.PushBack(source)

	for queue.Len() > 0 {
		v := queue.Remove(queue.Front()).(string)
		for _, nb := range g.Neighbors(v) {
			if _, seen := distance[nb.ID]; !seen {
				distance[nb.ID] = distance[v] + 1
				queue.PushBack(nb.ID)
			}
		}
	}

	totalDistance := 0
	reachable := 0
	for _, d := range distance {
		if d > 0 {
			totalDistance += d
			reachable++
		}
	}

	if totalDistance == 0 {
		return 0.0
	}
	return float64(reachable) / float64(totalDistance)
}
