package conceptgraph

import "testing"

func TestBacktrack_EmptyWhenSatisfied(t *testing.T) {
	g := buildChain(t, "a", "b", "c")
	m := mapMastery{"a": 0.9, "b": 0.9}

	got := g.Backtrack("c", m, 5)
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestBacktrack_CollectsUnmetChainNearestFirst(t *testing.T) {
	g := buildChain(t, "a", "b", "c", "d")
	m := mapMastery{} // nothing mastered

	got := g.Backtrack("d", m, 5)
	want := []string{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBacktrack_StopsAtMaxDepth(t *testing.T) {
	// Chain of 8 unmet prerequisites but depth cap of 3.
	g := buildChain(t, "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "top")
	got := g.Backtrack("top", mapMastery{}, 3)
	if len(got) != 3 {
		t.Errorf("depth 3 over a long chain should gather 3 concepts, got %d: %v", len(got), got)
	}
}

func TestBacktrack_NeverRevisits(t *testing.T) {
	// Diamond: shared is a prerequisite of both left and right.
	g := New()
	for _, id := range []string{"shared", "left", "right", "top"} {
		g.AddConcept(Concept{ID: id})
	}
	for _, e := range []Edge{
		{Source: "shared", Target: "left", Gate: GateHard},
		{Source: "shared", Target: "right", Gate: GateHard},
		{Source: "left", Target: "top", Gate: GateHard},
		{Source: "right", Target: "top", Gate: GateHard},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}

	got := g.Backtrack("top", mapMastery{}, 5)
	seen := make(map[string]int)
	for _, id := range got {
		seen[id]++
	}
	if seen["shared"] != 1 {
		t.Errorf("shared prerequisite should appear exactly once, got %d in %v", seen["shared"], got)
	}
}

func TestBacktrack_SkipsSoftEdges(t *testing.T) {
	g := New()
	g.AddConcept(Concept{ID: "a"})
	g.AddConcept(Concept{ID: "b"})
	if err := g.AddEdge(Edge{Source: "a", Target: "b", Gate: GateSoft}); err != nil {
		t.Fatal(err)
	}

	if got := g.Backtrack("b", mapMastery{}, 5); len(got) != 0 {
		t.Errorf("soft edges should not trigger backtracking, got %v", got)
	}
}

func TestBacktrack_SkipsWaivedEdges(t *testing.T) {
	g := buildChain(t, "a", "b")
	g.Grant(Waiver{Source: "a", Target: "b", Type: WaiverChallenge})

	if got := g.Backtrack("b", mapMastery{}, 5); len(got) != 0 {
		t.Errorf("waived edges should not trigger backtracking, got %v", got)
	}
}

func TestBacktrack_RecheckedAtStricterThreshold(t *testing.T) {
	// base gates top at foundation level only, but also gates mid at
	// mastery level. Meeting the easy edge first must not exempt base
	// from remediation when the walk reaches it through the strict one.
	g := New()
	for _, id := range []string{"base", "mid", "top"} {
		g.AddConcept(Concept{ID: id})
	}
	for _, e := range []Edge{
		{Source: "base", Target: "top", Gate: GateHard, Class: ClassFoundation},
		{Source: "mid", Target: "top", Gate: GateHard, Class: ClassMastery},
		{Source: "base", Target: "mid", Gate: GateHard, Class: ClassMastery},
	} {
		if err := g.AddEdge(e); err != nil {
			t.Fatal(err)
		}
	}
	m := mapMastery{"base": 0.50, "mid": 0.10}

	got := g.Backtrack("top", m, 5)
	want := []string{"mid", "base"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBacktrack_IdempotentUnderRetry(t *testing.T) {
	g := buildChain(t, "a", "b", "c")
	first := g.Backtrack("c", mapMastery{}, 5)
	second := g.Backtrack("c", mapMastery{}, 5)
	if len(first) != len(second) {
		t.Fatalf("retry changed result: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("retry changed order at %d: %v vs %v", i, first, second)
		}
	}
}
