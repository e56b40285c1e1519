package centrality

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

func TestDegree_EmptyGraph(t *testing.T) {
	g := graph.NewUndirected()

	result := Degree(g)
	if len(result) != 0 {
		t.Errorf("Expected 0 scores for empty graph, got %d", len(result))
	}
}

func TestDegree_SingleNode(t *testing.T) {
	g := graph.NewUndirected()
	g.AddNode("a")

	result := Degree(g)
	if result["a"] != 0.0 {
		t.Errorf("Expected degree 0 for single node, got %f", result["a"])
	}
}

func TestDegree_TriangleWithIsolate(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("A", "B", 1.0)
	g.AddEdge("B", "C", 1.0)
	g.AddEdge("C", "A", 1.0)
	g.AddNode("D")

	result := Degree(g)

	if math.Abs(result["A"]-2.0/3.0) > 1e-9 {
		t.Errorf("Expected degree centrality 2/3 for A, got %f", result["A"])
	}
	if result["D"] != 0.0 {
		t.Errorf("Expected degree centrality 0 for isolate, got %f", result["D"])
	}
}

func TestDegree_ScoresWithinUnitInterval(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)
	g.AddEdge("c", "d", 1.0)
	g.AddEdge("d", "a", 1.0)

	for id, score := range Degree(g) {
		if score < 0.0 || score > 1.0 {
			t.Errorf("Degree centrality of %s = %f outside [0,1]", id, score)
		}
	}
}

func TestDegree_CountsParallelEdges(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("a", "b", 1.0)
	g.AddNode("c")

	result := Degree(g)
	if math.Abs(result["a"]-1.0) > 1e-9 {
		t.Errorf("Expected degree centrality 1.0 counting multiplicities, got %f", result["a"])
	}
}

func TestCloseness_LinearChain(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)

	result, err := Closeness(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Closeness failed: %v", err)
	}

	if result["b"] <= result["a"] || result["b"] <= result["c"] {
		t.Errorf("Expected b most central: a=%f b=%f c=%f", result["a"], result["b"], result["c"])
	}
	// b reaches 2 nodes at distance 1 each
	if math.Abs(result["b"]-1.0) > 1e-9 {
		t.Errorf("Expected closeness 1.0 for b, got %f", result["b"])
	}
}

func TestCloseness_IsolatedNodesScoreZero(t *testing.T) {
	g := graph.NewUndirected()
	g.AddNode("a")
	g.AddNode("b")

	result, err := Closeness(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Closeness failed: %v", err)
	}

	if result["a"] != 0.0 || result["b"] != 0.0 {
		t.Errorf("Expected closeness 0 for isolated nodes, got a=%f b=%f", result["a"], result["b"])
	}
}

func TestCloseness_ParallelMatchesSequential(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)
	g.AddEdge("c", "d", 1.0)
	g.AddEdge("d", "e", 1.0)
	g.AddEdge("e", "a", 1.0)
	g.AddEdge("a", "c", 1.0)

	sequential := DefaultOptions()
	sequential.Workers = 1
	parallelOpts := DefaultOptions()
	parallelOpts.Workers = 4

	seq, err := Closeness(g, sequential)
	if err != nil {
		t.Fatalf("Closeness failed: %v", err)
	}
	par, err := Closeness(g, parallelOpts)
	if err != nil {
		t.Fatalf("Closeness failed: %v", err)
	}

	if !reflect.DeepEqual(seq, par) {
		t.Errorf("Parallel closeness %v differs from sequential %v", par, seq)
	}
}

func TestBetweenness_PathGraph(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("A", "B", 1.0)
	g.AddEdge("B", "C", 1.0)
	g.AddEdge("C", "D", 1.0)

	result, err := Betweenness(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Betweenness failed: %v", err)
	}

	if result["B"] <= result["A"] {
		t.Errorf("Expected betweenness B (%f) > A (%f)", result["B"], result["A"])
	}
	// B sits on shortest paths for pairs (A,C) and (A,D): 2 of (3*2)/2=3 pairs
	if math.Abs(result["B"]-2.0/3.0) > 1e-9 {
		t.Errorf("Expected betweenness 2/3 for B, got %f", result["B"])
	}
	if result["A"] != 0.0 || result["D"] != 0.0 {
		t.Errorf("Expected 0 betweenness for endpoints, got A=%f D=%f", result["A"], result["D"])
	}
}

func TestBetweenness_StarHub(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("hub", "s1", 1.0)
	g.AddEdge("hub", "s2", 1.0)
	g.AddEdge("hub", "s3", 1.0)
	g.AddEdge("hub", "s4", 1.0)

	result, err := Betweenness(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Betweenness failed: %v", err)
	}

	// Every spoke pair routes through the hub
	if math.Abs(result["hub"]-1.0) > 1e-9 {
		t.Errorf("Expected betweenness 1.0 for hub, got %f", result["hub"])
	}
	if result["s1"] != 0.0 {
		t.Errorf("Expected betweenness 0 for spokes, got %f", result["s1"])
	}
}

func TestBetweenness_DiamondSplitsFlow(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("a", "c", 1.0)
	g.AddEdge("b", "d", 1.0)
	g.AddEdge("c", "d", 1.0)

	result, err := Betweenness(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Betweenness failed: %v", err)
	}

	if math.Abs(result["b"]-result["c"]) > 1e-9 {
		t.Errorf("Expected equal betweenness on parallel paths, got b=%f c=%f", result["b"], result["c"])
	}
	// b carries half the a-d flow: 0.5 of 1 pair out of 3
	if math.Abs(result["b"]-0.5/3.0) > 1e-9 {
		t.Errorf("Expected betweenness 1/6 for b, got %f", result["b"])
	}
}

func TestBetweenness_Deterministic(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)
	g.AddEdge("c", "d", 1.0)
	g.AddEdge("d", "a", 1.0)
	g.AddEdge("a", "c", 1.0)

	first, err := Betweenness(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Betweenness failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Betweenness(g, DefaultOptions())
		if err != nil {
			t.Fatalf("Betweenness failed: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Betweenness not reproducible: %v vs %v", first, again)
		}
	}
}

func TestBetweenness_ParallelMatchesSequential(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)
	g.AddEdge("c", "d", 1.0)
	g.AddEdge("d", "e", 1.0)
	g.AddEdge("e", "a", 1.0)

	sequential := DefaultOptions()
	parallelOpts := DefaultOptions()
	parallelOpts.Workers = 4

	seq, err := Betweenness(g, sequential)
	if err != nil {
		t.Fatalf("Betweenness failed: %v", err)
	}
	par, err := Betweenness(g, parallelOpts)
	if err != nil {
		t.Fatalf("Betweenness failed: %v", err)
	}

	if !reflect.DeepEqual(seq, par) {
		t.Errorf("Parallel betweenness %v differs from sequential %v", par, seq)
	}
}

func TestEigenvector_StarFavorsHub(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("hub", "s1", 1.0)
	g.AddEdge("hub", "s2", 1.0)
	g.AddEdge("hub", "s3", 1.0)

	result, err := Eigenvector(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Eigenvector failed: %v", err)
	}

	if result["hub"] <= result["s1"] {
		t.Errorf("Expected hub eigenvector score (%f) > spoke (%f)", result["hub"], result["s1"])
	}
}

func TestEigenvector_NoEdges(t *testing.T) {
	g := graph.NewUndirected()
	g.AddNode("a")
	g.AddNode("b")

	result, err := Eigenvector(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Eigenvector failed: %v", err)
	}
	if result["a"] != 0.0 || result["b"] != 0.0 {
		t.Errorf("Expected 0 scores without edges, got %v", result)
	}
}

func TestPageRank_EmptyGraph(t *testing.T) {
	g := graph.NewUndirected()

	result, err := PageRank(g, DefaultOptions())
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	if len(result.Scores) != 0 || !result.Converged {
		t.Errorf("Unexpected result for empty graph: %+v", result)
	}
}

func TestPageRank_ScoresSumToOne(t *testing.T) {
	g := graph.NewDirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)
	g.AddEdge("c", "a", 1.0)
	g.AddEdge("a", "c", 1.0)

	result, err := PageRank(g, DefaultOptions())
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}

	sum := 0.0
	for _, s := range result.Scores {
		sum += s
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("Expected scores to sum to 1, got %f", sum)
	}
	if !result.Converged {
		t.Error("Expected convergence on a 3-node cycle")
	}
}

func TestPageRank_SinkGainsRank(t *testing.T) {
	g := graph.NewDirected()
	g.AddEdge("a", "sink", 1.0)
	g.AddEdge("b", "sink", 1.0)
	g.AddEdge("c", "sink", 1.0)

	result, err := PageRank(g, DefaultOptions())
	if err != nil {
		t.Fatalf("PageRank failed: %v", err)
	}
	if result.Scores["sink"] <= result.Scores["a"] {
		t.Errorf("Expected sink rank (%f) > source rank (%f)", result.Scores["sink"], result.Scores["a"])
	}
}

func TestCompute_Dispatch(t *testing.T) {
	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)

	for _, m := range []Measure{MeasureDegree, MeasureCloseness, MeasureBetweenness, MeasureEigenvector, MeasurePageRank} {
		scores, err := Compute(g, m, DefaultOptions())
		if err != nil {
			t.Fatalf("Compute(%s) failed: %v", m, err)
		}
		if len(scores) != 2 {
			t.Errorf("Compute(%s) returned %d scores, want 2", m, len(scores))
		}
	}
}

func TestCompute_UnsupportedMeasure(t *testing.T) {
	g := graph.NewUndirected()

	_, err := Compute(g, Measure(99), DefaultOptions())
	if !errors.Is(err, graph.ErrUnsupported) {
		t.Fatalf("Expected ErrUnsupported, got %v", err)
	}
}

func TestParseMeasure(t *testing.T) {
	m, err := ParseMeasure("betweenness")
	if err != nil || m != MeasureBetweenness {
		t.Errorf("ParseMeasure(betweenness) = %v, %v", m, err)
	}

	_, err = ParseMeasure("katz")
	if !errors.Is(err, graph.ErrUnsupported) {
		t.Errorf("Expected ErrUnsupported for unknown measure, got %v", err)
	}
}

func TestTopNodes(t *testing.T) {
	scores := map[string]float64{
		"a": 0.2,
		"b": 0.9,
		"c": 0.5,
		"d": 0.9,
		"e": 0.1,
	}

	top := TopNodes(scores, 3)

	want := []RankedNode{{"b", 0.9}, {"d", 0.9}, {"c", 0.5}}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("TopNodes = %v, want %v", top, want)
	}
}

func TestTopNodes_KLargerThanInput(t *testing.T) {
	scores := map[string]float64{"a": 1.0}

	top := TopNodes(scores, 10)
	if len(top) != 1 {
		t.Errorf("Expected 1 ranked node, got %d", len(top))
	}
}
