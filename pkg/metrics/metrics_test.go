package metrics

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/dmcnab/graphalyzer/pkg/graph"
)

func gatherMetric(t *testing.T, r *Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestRecordAnalysis(t *testing.T) {
	r := NewRegistry()

	r.RecordAnalysis("betweenness", "success", 50*time.Millisecond)
	r.RecordAnalysis("betweenness", "success", 70*time.Millisecond)
	r.RecordAnalysis("pagerank", "error", 10*time.Millisecond)

	mf := gatherMetric(t, r, "graphalyzer_analyses_total")
	if mf == nil {
		t.Fatal("graphalyzer_analyses_total not registered")
	}

	counts := make(map[string]float64)
	for _, m := range mf.GetMetric() {
		key := ""
		for _, l := range m.GetLabel() {
			key += l.GetName() + "=" + l.GetValue() + ";"
		}
		counts[key] = m.GetCounter().GetValue()
	}

	if counts["algorithm=betweenness;status=success;"] != 2 {
		t.Errorf("betweenness success count: %v", counts)
	}
	if counts["algorithm=pagerank;status=error;"] != 1 {
		t.Errorf("pagerank error count: %v", counts)
	}

	dur := gatherMetric(t, r, "graphalyzer_analysis_duration_seconds")
	if dur == nil {
		t.Fatal("duration histogram not registered")
	}
	for _, m := range dur.GetMetric() {
		if m.GetLabel()[0].GetValue() == "betweenness" {
			if got := m.GetHistogram().GetSampleCount(); got != 2 {
				t.Errorf("betweenness duration samples %d, want 2", got)
			}
		}
	}
}

func TestUpdateGraphMetrics(t *testing.T) {
	r := NewRegistry()

	g := graph.NewUndirected()
	g.AddEdge("a", "b", 1.0)
	g.AddEdge("b", "c", 1.0)
	r.UpdateGraphMetrics(g)

	nodes := gatherMetric(t, r, "graphalyzer_graph_nodes")
	if nodes == nil || nodes.GetMetric()[0].GetGauge().GetValue() != 3 {
		t.Errorf("graph_nodes gauge: %v", nodes)
	}
	edges := gatherMetric(t, r, "graphalyzer_graph_edges")
	if edges == nil || edges.GetMetric()[0].GetGauge().GetValue() != 2 {
		t.Errorf("graph_edges gauge: %v", edges)
	}
}

func TestRecordSources(t *testing.T) {
	r := NewRegistry()
	r.RecordSources("closeness", 120)

	mf := gatherMetric(t, r, "graphalyzer_analysis_sources")
	if mf == nil {
		t.Fatal("sources histogram not registered")
	}
	m := mf.GetMetric()[0]
	if m.GetHistogram().GetSampleCount() != 1 {
		t.Errorf("sample count %d, want 1", m.GetHistogram().GetSampleCount())
	}
	if m.GetHistogram().GetSampleSum() != 120 {
		t.Errorf("sample sum %f, want 120", m.GetHistogram().GetSampleSum())
	}
}

func TestDefaultRegistry_Singleton(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry returned different instances")
	}
}
