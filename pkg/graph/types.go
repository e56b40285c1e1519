package graph

// Neighbor is one adjacency entry: the node on the other end of an edge
// and the weight of that edge. Parallel edges produce one entry each.
type Neighbor struct {
	ID     string
	Weight float64
}

// Edge is a (source, target, weight) triple. For undirected graphs the
// pair is logically symmetric; the adjacency index carries both directions.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// DefaultWeight is assigned to edges supplied without an explicit weight.
const DefaultWeight = 1.0
