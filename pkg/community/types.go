// Package community implements modularity-based community detection over a
// graph snapshot.
package community

import (
	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Community represents one detected community.
type Community struct {
	ID      int
	Nodes   []string // sorted ascending
	Size    int
	Density float64 // edge density within the community
}

// Result contains a detected partition. The partition is total and
// disjoint: every node carries exactly one community id.
type Result struct {
	Communities   []*Community
	NodeCommunity map[string]int // node id -> community id
	Modularity    float64        // quality of the partitioning
}

// Algorithm selects a community detection algorithm for Detect.
type Algorithm int

const (
	// AlgorithmGreedyModularity merges communities greedily by modularity gain.
	AlgorithmGreedyModularity Algorithm = iota

	// AlgorithmLabelPropagation spreads majority labels until they stabilize.
	AlgorithmLabelPropagation
)

// String returns the algorithm name as used in configs and logs.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmGreedyModularity:
		return "greedy_modularity"
	case AlgorithmLabelPropagation:
		return "label_propagation"
	default:
		return "unknown"
	}
}

// ParseAlgorithm converts an algorithm name to its variant. Unrecognized
// names fail with graph.ErrUnsupported.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "greedy_modularity":
		return AlgorithmGreedyModularity, nil
	case "label_propagation":
		return AlgorithmLabelPropagation, nil
	default:
		return 0, graph.UnsupportedError("ParseAlgorithm", name)
	}
}

// Options configures community detection.
type Options struct {
	// MaxIterations caps label propagation rounds. Ignored by greedy
	// modularity, which always runs merges to exhaustion.
	MaxIterations int
}

// DefaultOptions returns the standard configuration.
func DefaultOptions() Options {
	return Options{MaxIterations: 100}
}

// Detect dispatches to the implementation of the requested algorithm.
// An unrecognized algorithm fails with graph.ErrUnsupported.
func Detect(g *graph.Graph, algorithm Algorithm, opts Options) (*Result, error) {
	switch algorithm {
	case AlgorithmGreedyModularity:
		return DetectCommunities(g), nil
	case AlgorithmLabelPropagation:
		return LabelPropagation(g, opts.MaxIterations), nil
	default:
		return nil, graph.UnsupportedError("Detect", algorithm.String())
	}
}

// buildResult assembles a Result from a node -> label assignment. Community
// ids are renumbered 0..k-1 ordered by each community's smallest member, so
// the output is stable for a fixed partition.
func buildResult(g *graph.Graph, labels map[string]int) *Result {
	members := make(map[int][]string)
	for _, id := range g.Nodes() { // sorted iteration fixes member order
		members[labels[id]] = append(members[labels[id]], id)
	}

	// Order communities by smallest member
	groups := make([][]string, 0, len(members))
	for _, nodes := range members {
		groups = append(groups, nodes)
	}
	sortGroupsBySmallestMember(groups)

	nodeCommunity := make(map[string]int, len(labels))
	communities := make([]*Community, 0, len(groups))
	for i, nodes := range groups {
		for _, id := range nodes {
			nodeCommunity[id] = i
		}
		communities = append(communities, &Community{
			ID:      i,
			Nodes:   nodes,
			Size:    len(nodes),
			Density: intraDensity(g, nodes),
		})
	}

	return &Result{
		Communities:   communities,
		NodeCommunity: nodeCommunity,
		Modularity:    Modularity(g, nodeCommunity),
	}
}

func sortGroupsBySmallestMember(groups [][]string) {
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && groups[j][0] < groups[j-1][0]; j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
}

// intraDensity is the fraction of possible intra-community pairs carrying
// at least the listed edges. Single-node communities have density 0.
func intraDensity(g *graph.Graph, nodes []string) float64 {
	k := len(nodes)
	if k < 2 {
		return 0.0
	}

	inSet := make(map[string]bool, k)
	for _, id := range nodes {
		inSet[id] = true
	}

	intra := 0
	for _, e := range g.Edges() {
		if inSet[e.Source] && inSet[e.Target] && e.Source != e.Target {
			intra++
		}
	}

	possible := k * (k - 1) / 2
	if g.Directed() {
		possible = k * (k - 1)
	}
	return float64(intra) / float64(possible)
}
