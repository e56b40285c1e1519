package community

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

type mergePair struct {
	a, b int // a < b
}

// DetectCommunities partitions the graph by greedy modularity maximization.
// Every node starts in its own community; the pair of connected communities
// whose merge yields the largest modularity gain is merged repeatedly until
// no merge improves modularity. When several merges tie on gain, the pair
// with the smallest (a, b) id pair is taken, so results are deterministic.
func DetectCommunities(g *graph.Graph) *Result {
	nodes := g.Nodes()
	labels := make(map[string]int, len(nodes))
	for i, id := range nodes {
		labels[id] = i
	}

	totalWeight := g.TotalWeight()
	if totalWeight == 0 {
		return buildResult(g, labels)
	}

	// between[pair] holds the edge weight connecting two live communities.
	// degrees[c] holds the total weight incident to community c, with
	// self-loops counted twice.
	between := make(map[mergePair]float64)
	degrees := make(map[int]float64, len(nodes))
	for _, e := range g.Edges() {
		cs, ct := labels[e.Source], labels[e.Target]
		degrees[cs] += e.Weight
		degrees[ct] += e.Weight
		if cs != ct {
			between[orderedPair(cs, ct)] += e.Weight
		}
	}

	// parent tracks which community each original community merged into.
	parent := make([]int, len(nodes))
	for i := range parent {
		parent[i] = i
	}

	for {
		best, gain := bestMerge(between, degrees, totalWeight)
		if gain <= 0 {
			break
		}
		mergeCommunities(best, between, degrees)
		parent[best.b] = best.a
	}

	for id := range labels {
		labels[id] = rootOf(parent, labels[id])
	}
	return buildResult(g, labels)
}

// bestMerge scans the live community pairs for the merge with the largest
// modularity gain. Only connected pairs are candidates; merging communities
// with no edge between them always lowers modularity.
func bestMerge(between map[mergePair]float64, degrees map[int]float64, totalWeight float64) (mergePair, float64) {
	var best mergePair
	found := false
	bestGain := 0.0

	for pair, weight := range between {
		// Gain of merging a and b: e_ab/m - 2 * (d_a/2m) * (d_b/2m)
		gain := weight/totalWeight -
			2.0*(degrees[pair.a]/(2.0*totalWeight))*(degrees[pair.b]/(2.0*totalWeight))
		if !found || gain > bestGain ||
			(gain == bestGain && pairLess(pair, best)) {
			best = pair
			bestGain = gain
			found = true
		}
	}
	return best, bestGain
}

// mergeCommunities folds community pair.b into pair.a, rewiring the
// between-community weights of b onto a.
func mergeCommunities(pair mergePair, between map[mergePair]float64, degrees map[int]float64) {
	delete(between, pair)
	degrees[pair.a] += degrees[pair.b]
	delete(degrees, pair.b)

	for other, weight := range between {
		var neighbor int
		switch pair.b {
		case other.a:
			neighbor = other.b
		case other.b:
			neighbor = other.a
		default:
			continue
		}
		delete(between, other)
		between[orderedPair(pair.a, neighbor)] += weight
	}
}

func orderedPair(a, b int) mergePair {
	if a > b {
		a, b = b, a
	}
	return mergePair{a: a, b: b}
}

func pairLess(x, y mergePair) bool {
	if x.a != y.a {
		return x.a < y.a
	}
	return x.b < y.b
}

func rootOf(parent []int, c int) int {
	for parent[c] != c {
		parent[c] = parent[parent[c]]
		c = parent[c]
	}
	return c
}
