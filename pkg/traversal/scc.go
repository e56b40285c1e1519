package traversal

import (
	"sort"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// tarjanState holds per-node state during Tarjan's DFS.
type tarjanState struct {
	index   int
	lowlink int
	onStack bool
}

// StronglyConnectedComponents finds all SCCs using Tarjan's algorithm in
// O(V+E) time. Only outgoing edges are followed, so for undirected graphs
// the result coincides with ConnectedComponents. Components are returned
// ordered by their smallest member with members sorted.
func StronglyConnectedComponents(g *graph.Graph) [][]string {
	state := make(map[string]*tarjanState, g.NodeCount())
	var stack []string
	indexCounter := 0
	var components [][]string

	var strongconnect func(u string)
	strongconnect = func(u string) {
		state[u] = &tarjanState{
			index:   indexCounter,
			lowlink: indexCounter,
			onStack: true,
		}
		indexCounter++
		stack = append(stack, u)

		for _, nb := range g.Neighbors(u) {
			v := nb.ID
			if _, exists := state[v]; !exists {
				strongconnect(v)
				if state[v].lowlink < state[u].lowlink {
					state[u].lowlink = state[v].lowlink
				}
			} else if state[v].onStack {
				if state[v].index < state[u].lowlink {
					state[u].lowlink = state[v].index
				}
			}
		}

		// u is a root node: pop the stack to form an SCC
		if state[u].lowlink == state[u].index {
			var members []string
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				state[w].onStack = false
				members = append(members, w)
				if w == u {
					break
				}
			}
			sort.Strings(members)
			components = append(components, members)
		}
	}

	for _, id := range g.Nodes() {
		if _, exists := state[id]; !exists {
			strongconnect(id)
		}
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i][0] < components[j][0]
	})
	return components
}
