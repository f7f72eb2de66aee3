package priority

import (
	"math"
	"testing"
)

func TestStandardScore_FreshCentralFocusedNovel(t *testing.T) {
	// All signals at maximum: score is the sum of the weights = 1.0.
	got := StandardScore(StandardInputs{
		DaysSinceReview: 0,
		Centrality:      1,
		Focus:           1,
		Novelty:         1,
	})
	if math.Abs(got-1.0) > 1e-12 {
		t.Errorf("score = %v, want 1.0", got)
	}
}

func TestStandardScore_DecayHalvesPerHalfLife(t *testing.T) {
	day0 := StandardScore(StandardInputs{DaysSinceReview: 0})
	day7 := StandardScore(StandardInputs{DaysSinceReview: 7})
	day14 := StandardScore(StandardInputs{DaysSinceReview: 14})

	if math.Abs(day0-WeightDecay) > 1e-12 {
		t.Errorf("day0 decay term = %v, want %v", day0, WeightDecay)
	}
	if math.Abs(day7-WeightDecay/2) > 1e-12 {
		t.Errorf("day7 decay term = %v, want %v", day7, WeightDecay/2)
	}
	if math.Abs(day14-WeightDecay/4) > 1e-12 {
		t.Errorf("day14 decay term = %v, want %v", day14, WeightDecay/4)
	}
}

func TestStandardScore_ConfigurableHalfLife(t *testing.T) {
	got := StandardScore(StandardInputs{DaysSinceReview: 14, HalfLifeDays: 14})
	if math.Abs(got-WeightDecay/2) > 1e-12 {
		t.Errorf("14-day half-life at day 14 = %v, want %v", got, WeightDecay/2)
	}
}

func TestStruggleScore_SpecScenario(t *testing.T) {
	// struggle 0.8, dynamic 0.5, retrievability 0.3:
	// 0.8*3.0 + 0.5*2.0 + 0.7*1.0 = 4.1.
	got := StruggleScore(StruggleInputs{
		StruggleWeight: 0.8,
		DynamicWeight:  0.5,
		Retrievability: 0.3,
	})
	if math.Abs(got-4.1) > 1e-12 {
		t.Errorf("score = %v, want 4.1", got)
	}
}

func TestScores_ArePure(t *testing.T) {
	std := StandardInputs{DaysSinceReview: 3.5, Centrality: 0.4, Focus: 1, Novelty: 0.2}
	str := StruggleInputs{StruggleWeight: 0.33, DynamicWeight: 0.77, Retrievability: 0.12}
	for range 100 {
		if StandardScore(std) != StandardScore(std) {
			t.Fatal("StandardScore is not deterministic")
		}
		if StruggleScore(str) != StruggleScore(str) {
			t.Fatal("StruggleScore is not deterministic")
		}
	}
}

func TestRank_ScoreDescending(t *testing.T) {
	got := Rank([]Candidate{
		{AtomID: "low", Score: 0.1},
		{AtomID: "high", Score: 0.9},
		{AtomID: "mid", Score: 0.5},
	})
	want := []string{"high", "mid", "low"}
	for i, id := range want {
		if got[i].AtomID != id {
			t.Fatalf("rank order = %v, want %v at %d", got, id, i)
		}
	}
}

func TestRank_TieBreakChain(t *testing.T) {
	got := Rank([]Candidate{
		{AtomID: "late-insert", Score: 0.5, Severity: 1, Retrievability: 0.3},
		{AtomID: "severe", Score: 0.5, Severity: 2, Retrievability: 0.9},
		{AtomID: "forgotten", Score: 0.5, Severity: 1, Retrievability: 0.1},
	})
	// Severity 2 first; then lower retrievability; insertion last.
	want := []string{"severe", "forgotten", "late-insert"}
	for i, id := range want {
		if got[i].AtomID != id {
			t.Fatalf("tie-break order = [%s %s %s], want %v",
				got[0].AtomID, got[1].AtomID, got[2].AtomID, want)
		}
	}
}

func TestRank_FullTiePreservesInsertionOrder(t *testing.T) {
	in := []Candidate{
		{AtomID: "first", Score: 0.5},
		{AtomID: "second", Score: 0.5},
		{AtomID: "third", Score: 0.5},
	}
	got := Rank(in)
	for i, want := range []string{"first", "second", "third"} {
		if got[i].AtomID != want {
			t.Fatalf("full tie should preserve insertion order, got %v", got)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []Candidate{
		{AtomID: "b", Score: 0.1},
		{AtomID: "a", Score: 0.9},
	}
	Rank(in)
	if in[0].AtomID != "b" {
		t.Error("Rank mutated its input slice")
	}
}
