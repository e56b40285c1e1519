package graph

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// Graph is the in-memory graph store. It owns the node set, the edge list
// and the adjacency index. The directed flag is fixed at construction and
// determines whether adjacency entries are added symmetrically.
//
// A Graph is mutated only through AddNode/AddEdge. The analysis engines
// (traversal, centrality, community) treat it as a read-only snapshot;
// do not mutate a graph while an analysis is running on it.
type Graph struct {
	directed  bool
	nodes     mapset.Set[string]
	edges     []Edge
	adjacency map[string][]Neighbor

	// Reverse adjacency, maintained for directed graphs only. Needed for
	// in-degree and for weak-connectivity traversals.
	reverse map[string][]Neighbor
}

// New creates an empty graph. Pass directed=true for a directed graph.
func New(directed bool) *Graph {
	return &Graph{
		directed:  directed,
		nodes:     mapset.NewThreadUnsafeSet[string](),
		adjacency: make(map[string][]Neighbor),
		reverse:   make(map[string][]Neighbor),
	}
}

// NewUndirected creates an empty undirected graph.
func NewUndirected() *Graph {
	return New(false)
}

// NewDirected creates an empty directed graph.
func NewDirected() *Graph {
	return New(true)
}

// FromEdges builds a graph from an ordered edge sequence. Edges with a zero
// weight are given DefaultWeight, matching loaders that omit the weight column.
func FromEdges(directed bool, edges []Edge) *Graph {
	g := New(directed)
	for _, e := range edges {
		w := e.Weight
		if w == 0 {
			w = DefaultWeight
		}
		g.AddEdge(e.Source, e.Target, w)
	}
	return g
}

// Directed reports whether the graph is directed.
func (g *Graph) Directed() bool {
	return g.directed
}

// AddNode adds a node to the graph. Adding an existing node is a no-op.
func (g *Graph) AddNode(id string) {
	if g.nodes.Add(id) {
		g.adjacency[id] = nil
	}
}

// AddEdge adds an edge, creating missing endpoints. Duplicate edges are
// permitted and accumulate as parallel adjacency entries. For undirected
// graphs the reverse adjacency entry is added as well, except for
// self-loops which get a single entry.
func (g *Graph) AddEdge(source, target string, weight float64) {
	g.AddNode(source)
	g.AddNode(target)

	g.edges = append(g.edges, Edge{Source: source, Target: target, Weight: weight})
	g.adjacency[source] = append(g.adjacency[source], Neighbor{ID: target, Weight: weight})

	if g.directed {
		g.reverse[target] = append(g.reverse[target], Neighbor{ID: source, Weight: weight})
		return
	}
	if source != target {
		g.adjacency[target] = append(g.adjacency[target], Neighbor{ID: source, Weight: weight})
	}
}

// HasNode reports whether the node exists.
func (g *Graph) HasNode(id string) bool {
	return g.nodes.Contains(id)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return g.nodes.Cardinality()
}

// EdgeCount returns the number of edges, counting parallel edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Nodes returns all node ids in ascending order. Engines iterate this
// ordering so results are deterministic for a fixed graph.
func (g *Graph) Nodes() []string {
	ids := g.nodes.ToSlice()
	sort.Strings(ids)
	return ids
}

// Edges returns the edge list in insertion order. Callers must not mutate it.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// Neighbors returns the adjacency entries for a node in insertion order.
// For directed graphs these are the outgoing edges only. Callers must not
// mutate the returned slice.
func (g *Graph) Neighbors(id string) []Neighbor {
	return g.adjacency[id]
}

// InNeighbors returns the reverse adjacency entries of a node. For
// undirected graphs this is the same as Neighbors.
func (g *Graph) InNeighbors(id string) []Neighbor {
	if !g.directed {
		return g.adjacency[id]
	}
	return g.reverse[id]
}

// Degree returns the number of incident edges, counting multiplicities.
// For directed graphs this is in-degree plus out-degree. An undirected
// self-loop counts once.
func (g *Graph) Degree(id string) int {
	if g.directed {
		return len(g.adjacency[id]) + len(g.reverse[id])
	}
	return len(g.adjacency[id])
}

// WeightedDegree returns the sum of incident edge weights.
func (g *Graph) WeightedDegree(id string) float64 {
	total := 0.0
	for _, n := range g.adjacency[id] {
		total += n.Weight
	}
	if g.directed {
		for _, n := range g.reverse[id] {
			total += n.Weight
		}
	}
	return total
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() float64 {
	total := 0.0
	for _, e := range g.edges {
		total += e.Weight
	}
	return total
}

// Density returns the ratio of edges to possible node pairs: m/(n(n-1))
// for directed graphs, 2m/(n(n-1)) for undirected. Zero when n <= 1.
func (g *Graph) Density() float64 {
	n := g.NodeCount()
	if n <= 1 {
		return 0.0
	}
	m := float64(g.EdgeCount())
	pairs := float64(n) * float64(n-1)
	if g.directed {
		return m / pairs
	}
	return 2.0 * m / pairs
}

// HasNegativeWeight reports whether any edge carries a negative weight.
// Weighted shortest-path routines reject such graphs up front.
func (g *Graph) HasNegativeWeight() bool {
	for _, e := range g.edges {
		if e.Weight < 0 {
			return true
		}
	}
	return false
}
