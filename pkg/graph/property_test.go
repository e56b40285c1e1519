package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// zipEdges pairs two id slices into edges, truncating to the shorter one.
func zipEdges(sources, targets []string) [][2]string {
	n := len(sources)
	if len(targets) < n {
		n = len(targets)
	}
	pairs := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, [2]string{sources[i], targets[i]})
	}
	return pairs
}

// TestGraphInvariants uses property-based testing to verify store invariants.
// These properties should hold for any sequence of add operations.
func TestGraphInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	// Property 1: edge insertion creates both endpoints
	properties.Property("edge endpoints always exist", prop.ForAll(
		func(sources, targets []string) bool {
			g := NewUndirected()
			for _, p := range zipEdges(sources, targets) {
				g.AddEdge(p[0], p[1], 1.0)
			}
			for _, e := range g.Edges() {
				if !g.HasNode(e.Source) || !g.HasNode(e.Target) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	// Property 2: node set has no duplicates and AddNode is idempotent
	properties.Property("node count matches distinct ids", prop.ForAll(
		func(ids []string) bool {
			g := NewUndirected()
			distinct := make(map[string]bool)
			for _, id := range ids {
				g.AddNode(id)
				g.AddNode(id)
				distinct[id] = true
			}
			return g.NodeCount() == len(distinct)
		},
		gen.SliceOf(gen.AlphaString()),
	))

	// Property 3: undirected degree sum equals twice the edge count minus
	// self-loops (which carry a single adjacency entry)
	properties.Property("handshake lemma holds", prop.ForAll(
		func(sources, targets []string) bool {
			g := NewUndirected()
			selfLoops := 0
			for _, p := range zipEdges(sources, targets) {
				g.AddEdge(p[0], p[1], 1.0)
				if p[0] == p[1] {
					selfLoops++
				}
			}
			degreeSum := 0
			for _, id := range g.Nodes() {
				degreeSum += g.Degree(id)
			}
			return degreeSum == 2*g.EdgeCount()-selfLoops
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	// Property 4: density is never negative
	properties.Property("density is non-negative", prop.ForAll(
		func(sources, targets []string) bool {
			g := NewDirected()
			for _, p := range zipEdges(sources, targets) {
				g.AddEdge(p[0], p[1], 1.0)
			}
			return g.Density() >= 0.0
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
