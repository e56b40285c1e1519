// Package linkpred scores node pairs by how likely a future edge between
// them is, based on neighborhood overlap.
package linkpred

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

// Method selects the scoring formula for link prediction.
type Method int

const (
	// MethodCommonNeighbors scores by the number of shared neighbors.
	MethodCommonNeighbors Method = iota

	// MethodJaccard scores by neighborhood overlap divided by neighborhood
	// union, giving values in [0, 1].
	MethodJaccard

	// MethodAdamicAdar sums 1/log(degree) over shared neighbors, so rare
	// common neighbors count for more than hubs.
	MethodAdamicAdar

	// MethodPreferentialAttachment scores by the degree product. Requires
	// no intersection computation.
	MethodPreferentialAttachment
)

// String returns the method name as used in configs and logs.
func (m Method) String() string {
	switch m {
	case MethodCommonNeighbors:
		return "common_neighbors"
	case MethodJaccard:
		return "jaccard"
	case MethodAdamicAdar:
		return "adamic_adar"
	case MethodPreferentialAttachment:
		return "preferential_attachment"
	default:
		return "unknown"
	}
}

// ParseMethod converts a method name to its variant. Unrecognized names
// fail with graph.ErrUnsupported.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "common_neighbors":
		return MethodCommonNeighbors, nil
	case "jaccard":
		return MethodJaccard, nil
	case "adamic_adar":
		return MethodAdamicAdar, nil
	case "preferential_attachment":
		return MethodPreferentialAttachment, nil
	default:
		return 0, graph.UnsupportedError("ParseMethod", name)
	}
}

// Options configures link prediction.
//
// Scores across different methods are not comparable: common neighbors
// returns integer counts, Jaccard returns ratios, Adamic-Adar returns
// weighted sums and preferential attachment returns degree products.
type Options struct {
	Method          Method
	ExcludeExisting bool // skip pairs that already share an edge
	TopK            int  // 0 = all
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Method:          MethodCommonNeighbors,
		ExcludeExisting: true,
		TopK:            10,
	}
}

// Prediction holds a predicted link score between two nodes.
type Prediction struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Score  float64 `json:"score"`
}

// Score computes the prediction score for a specific node pair. Both nodes
// must exist.
func Score(g *graph.Graph, source, target string, method Method) (float64, error) {
	if !g.HasNode(source) {
		return 0, graph.NodeNotFoundError("Score", source)
	}
	if !g.HasNode(target) {
		return 0, graph.NodeNotFoundError("Score", target)
	}
	return pairScore(g, neighborSet(g, source), neighborSet(g, target), method), nil
}

// PredictFor scores the given source node against every non-adjacent other
// node. Zero-score pairs are dropped. Results are sorted descending by
// score with ties broken by ascending target id, truncated to opts.TopK.
func PredictFor(g *graph.Graph, source string, opts Options) ([]Prediction, error) {
	if !g.HasNode(source) {
		return nil, graph.NodeNotFoundError("PredictFor", source)
	}

	sourceSet := neighborSet(g, source)

	var predictions []Prediction
	for _, other := range g.Nodes() {
		if other == source {
			continue
		}
		if opts.ExcludeExisting && sourceSet.Contains(other) {
			continue
		}
		score := pairScore(g, sourceSet, neighborSet(g, other), opts.Method)
		if score > 0 {
			predictions = append(predictions, Prediction{
				Source: source,
				Target: other,
				Score:  score,
			})
		}
	}

	sortPredictions(predictions)
	if opts.TopK > 0 && len(predictions) > opts.TopK {
		predictions = predictions[:opts.TopK]
	}
	return predictions, nil
}

// PredictAll scores every unordered non-adjacent node pair in the graph.
// Results are sorted descending by score with ties broken by ascending
// (source, target), truncated to opts.TopK.
func PredictAll(g *graph.Graph, opts Options) []Prediction {
	nodes := g.Nodes()

	sets := make(map[string]mapset.Set[string], len(nodes))
	for _, id := range nodes {
		sets[id] = neighborSet(g, id)
	}

	var predictions []Prediction
	for i, u := range nodes {
		for _, v := range nodes[i+1:] {
			if opts.ExcludeExisting && sets[u].Contains(v) {
				continue
			}
			score := pairScore(g, sets[u], sets[v], opts.Method)
			if score > 0 {
				predictions = append(predictions, Prediction{
					Source: u,
					Target: v,
					Score:  score,
				})
			}
		}
	}

	sortPredictions(predictions)
	if opts.TopK > 0 && len(predictions) > opts.TopK {
		predictions = predictions[:opts.TopK]
	}
	return predictions
}

// neighborSet collects a node's neighborhood. For directed graphs both
// edge directions count, matching the undirected reading link prediction
// formulas assume.
func neighborSet(g *graph.Graph, id string) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, nb := range g.Neighbors(id) {
		set.Add(nb.ID)
	}
	if g.Directed() {
		for _, nb := range g.InNeighbors(id) {
			set.Add(nb.ID)
		}
	}
	return set
}

func pairScore(g *graph.Graph, setA, setB mapset.Set[string], method Method) float64 {
	switch method {
	case MethodPreferentialAttachment:
		return float64(setA.Cardinality()) * float64(setB.Cardinality())

	case MethodCommonNeighbors:
		return float64(setA.Intersect(setB).Cardinality())

	case MethodJaccard:
		union := setA.Union(setB).Cardinality()
		if union == 0 {
			return 0.0
		}
		return float64(setA.Intersect(setB).Cardinality()) / float64(union)

	case MethodAdamicAdar:
		sum := 0.0
		for id := range setA.Intersect(setB).Iter() {
			degree := neighborSet(g, id).Cardinality()
			// degree <= 1 means log(degree) <= 0; such neighbors carry
			// no signal and are skipped.
			if degree > 1 {
				sum += 1.0 / math.Log(float64(degree))
			}
		}
		return sum

	default:
		return 0.0
	}
}

func sortPredictions(predictions []Prediction) {
	sort.SliceStable(predictions, func(i, j int) bool {
		if predictions[i].Score != predictions[j].Score {
			return predictions[i].Score > predictions[j].Score
		}
		if predictions[i].Source != predictions[j].Source {
			return predictions[i].Source < predictions[j].Source
		}
		return predictions[i].Target < predictions[j].Target
	})
}
