package conceptgraph

import (
	"errors"
	"testing"
)

// mapMastery is a MasteryReader backed by a plain map; absent concepts
// score zero.
type mapMastery map[string]float64

func (m mapMastery) CombinedMastery(conceptID string) float64 { return m[conceptID] }

func buildChain(t *testing.T, ids ...string) *Graph {
	t.Helper()
	g := New()
	for _, id := range ids {
		g.AddConcept(Concept{ID: id, Name: id})
	}
	for i := 1; i < len(ids); i++ {
		err := g.AddEdge(Edge{Source: ids[i-1], Target: ids[i], Gate: GateHard, Class: ClassIntegration})
		if err != nil {
			t.Fatalf("add edge %s->%s: %v", ids[i-1], ids[i], err)
		}
	}
	return g
}

func TestAddEdge_RejectsCycleAndLeavesGraphUnchanged(t *testing.T) {
	g := buildChain(t, "a", "b", "c")
	before := g.EdgeCount()

	err := g.AddEdge(Edge{Source: "c", Target: "a", Gate: GateHard})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
	if g.EdgeCount() != before {
		t.Errorf("edge count changed after rejected insert: %d -> %d", before, g.EdgeCount())
	}
	if len(g.Prerequisites("a")) != 0 {
		t.Error("rejected edge must not appear in prerequisites")
	}
}

func TestAddEdge_RejectsSelfEdge(t *testing.T) {
	g := buildChain(t, "a")
	if err := g.AddEdge(Edge{Source: "a", Target: "a"}); !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle for self edge, got %v", err)
	}
}

func TestAddEdge_UnknownEndpoint(t *testing.T) {
	g := buildChain(t, "a")
	if err := g.AddEdge(Edge{Source: "a", Target: "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddEdge_AllowsDiamond(t *testing.T) {
	// a -> b, a -> c, b -> d, c -> d is acyclic and must be accepted.
	g := New()
	for _, id := range []string{"a", "b", "c", "d"} {
		g.AddConcept(Concept{ID: id})
	}
	edges := []Edge{
		{Source: "a", Target: "b", Gate: GateHard},
		{Source: "a", Target: "c", Gate: GateHard},
		{Source: "b", Target: "d", Gate: GateHard},
		{Source: "c", Target: "d", Gate: GateHard},
	}
	for _, e := range edges {
		if err := g.AddEdge(e); err != nil {
			t.Fatalf("diamond edge %s->%s rejected: %v", e.Source, e.Target, err)
		}
	}
}

func TestIsUnlocked_HardGateBlocksThenUnlocks(t *testing.T) {
	g := buildChain(t, "fractions", "ratios")
	m := mapMastery{"fractions": 0.50}

	// Threshold class integration = 0.65; mastery 0.50 blocks.
	res, err := g.IsUnlocked("ratios", m)
	if err != nil {
		t.Fatal(err)
	}
	if res.Unlocked {
		t.Fatal("expected ratios to be blocked at mastery 0.50")
	}
	if len(res.Blocking) != 1 || res.Blocking[0].Source != "fractions" {
		t.Errorf("blocking edges = %+v, want the fractions edge", res.Blocking)
	}
	if gap := res.MaxGap; gap < 0.149 || gap > 0.151 {
		t.Errorf("max gap = %f, want 0.15", gap)
	}

	// After mastery improves past the threshold, the gate opens.
	m["fractions"] = 0.70
	res, err = g.IsUnlocked("ratios", m)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Unlocked {
		t.Error("expected ratios unlocked at mastery 0.70")
	}
	if len(res.Blocking) != 0 {
		t.Errorf("unexpected blocking edges: %+v", res.Blocking)
	}
}

func TestIsUnlocked_SoftEdgeOnlyWarns(t *testing.T) {
	g := New()
	g.AddConcept(Concept{ID: "a"})
	g.AddConcept(Concept{ID: "b"})
	if err := g.AddEdge(Edge{Source: "a", Target: "b", Gate: GateSoft, Class: ClassMastery}); err != nil {
		t.Fatal(err)
	}

	res, err := g.IsUnlocked("b", mapMastery{"a": 0.0})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Unlocked {
		t.Error("soft edges must never block")
	}
	if len(res.Warnings) != 1 {
		t.Errorf("warnings = %+v, want one soft warning", res.Warnings)
	}
}

func TestIsUnlocked_WaiverSatisfiesEdge(t *testing.T) {
	g := buildChain(t, "a", "b")
	g.Grant(Waiver{Source: "a", Target: "b", Type: WaiverInstructor})

	res, err := g.IsUnlocked("b", mapMastery{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Unlocked {
		t.Error("waived edge must not block regardless of mastery")
	}
}

func TestIsUnlocked_UnknownConcept(t *testing.T) {
	g := New()
	if _, err := g.IsUnlocked("ghost", mapMastery{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestIsUnlocked_ExplicitThresholdOverridesClass(t *testing.T) {
	g := New()
	g.AddConcept(Concept{ID: "a"})
	g.AddConcept(Concept{ID: "b"})
	err := g.AddEdge(Edge{Source: "a", Target: "b", Gate: GateHard, Class: ClassFoundation, Threshold: 0.9})
	if err != nil {
		t.Fatal(err)
	}

	res, _ := g.IsUnlocked("b", mapMastery{"a": 0.5})
	if res.Unlocked {
		t.Error("explicit 0.9 threshold should block at mastery 0.5 despite foundation class")
	}
}

func TestCentrality_NormalizedOutDegree(t *testing.T) {
	g := New()
	for _, id := range []string{"hub", "x", "y", "z", "leaf"} {
		g.AddConcept(Concept{ID: id})
	}
	for _, target := range []string{"x", "y", "z"} {
		if err := g.AddEdge(Edge{Source: "hub", Target: target, Gate: GateHard}); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.AddEdge(Edge{Source: "x", Target: "leaf", Gate: GateHard}); err != nil {
		t.Fatal(err)
	}

	if c := g.Centrality("hub"); c != 1.0 {
		t.Errorf("hub centrality = %f, want 1.0", c)
	}
	if c := g.Centrality("x"); c <= 0 || c >= 1 {
		t.Errorf("x centrality = %f, want strictly between 0 and 1", c)
	}
	if c := g.Centrality("leaf"); c != 0 {
		t.Errorf("leaf centrality = %f, want 0", c)
	}
}

func TestValidate_DetectsNothingOnChain(t *testing.T) {
	g := buildChain(t, "a", "b", "c")
	if err := g.Validate(); err != nil {
		t.Errorf("valid chain failed validation: %v", err)
	}
}
