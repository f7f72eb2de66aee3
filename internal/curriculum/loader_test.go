package curriculum_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/conceptgraph"
	"github.com/okanta/memloop/internal/curriculum"
)

const arithmeticDeck = `
module: arithmetic
concepts:
  - id: whole-numbers
    name: Whole Numbers
    section: basics
    dimension: factual
    struggle_weight: 0.1
  - id: fractions
    name: Fractions
    section: fractions
    dimension: procedural
    struggle_weight: 0.4
    requires:
      - concept: whole-numbers
        gate: hard
        class: foundation
  - id: decimals
    name: Decimals
    section: decimals
    dimension: procedural
    requires:
      - concept: fractions
        gate: soft
atoms:
  - id: wn-1
    concept: whole-numbers
    type: flashcard
    prompt: "7 + 5?"
    answer: "12"
  - id: fr-1
    concept: fractions
    type: mcq
    prompt: "Which is larger?"
    options: ["1/3", "1/2"]
    correct_option: 1
    hints: ["compare to one half"]
  - id: fr-2
    concept: fractions
    type: numeric
    prompt: "1/2 + 1/4 as a decimal?"
    answer: "0.75"
    tolerance: 0.001
    combination: true
clusters:
  - id: frac-dec
    concepts: [fractions, decimals]
`

func writeDeck(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing deck: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "arithmetic.yaml", arithmeticDeck)
	writeDeck(t, dir, "notes.yaml", "just: a stray file\n") // no module key, skipped

	cur, err := curriculum.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := len(cur.Graph.Concepts()); got != 3 {
		t.Errorf("concepts = %d, want 3", got)
	}
	if got := len(cur.Atoms); got != 3 {
		t.Errorf("atoms = %d, want 3", got)
	}
	if got := cur.Graph.EdgeCount(); got != 2 {
		t.Errorf("edges = %d, want 2", got)
	}
	if len(cur.Clusters) != 1 || cur.Clusters[0].ID != "frac-dec" {
		t.Errorf("clusters = %+v", cur.Clusters)
	}
}

func TestLoadEmptyDir(t *testing.T) {
	if _, err := curriculum.Load(t.TempDir()); err == nil {
		t.Fatal("Load() of an empty dir should fail")
	}
}

func TestBuildEdgeSemantics(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "arithmetic.yaml", arithmeticDeck)
	cur, err := curriculum.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	prereqs := cur.Graph.Prerequisites("fractions")
	if len(prereqs) != 1 {
		t.Fatalf("prereqs = %+v, want one edge", prereqs)
	}
	e := prereqs[0]
	if e.Gate != conceptgraph.GateHard || e.Class != conceptgraph.ClassFoundation {
		t.Errorf("edge = %+v, want hard foundation", e)
	}
	if got := e.EffectiveThreshold(); got != 0.40 {
		t.Errorf("threshold = %v, want 0.40", got)
	}

	soft := cur.Graph.Prerequisites("decimals")
	if len(soft) != 1 || soft[0].Gate != conceptgraph.GateSoft {
		t.Errorf("decimals prereqs = %+v, want one soft edge", soft)
	}
}

func TestBuildAtomPayloads(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "arithmetic.yaml", arithmeticDeck)
	cur, err := curriculum.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var numeric *atom.Atom
	for _, a := range cur.Atoms {
		if a.ID == "fr-2" {
			numeric = a
		}
	}
	if numeric == nil {
		t.Fatal("atom fr-2 missing")
	}
	if numeric.Type != atom.TypeNumeric || numeric.Tolerance != 0.001 || !numeric.Combination {
		t.Errorf("fr-2 = %+v", numeric)
	}
}

func TestStaticWeightsPerTopic(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "arithmetic.yaml", arithmeticDeck)
	cur, err := curriculum.Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range cur.Weights {
		if w.Module == "arithmetic" && w.Section == "fractions" {
			found = true
			if w.Static != 0.4 {
				t.Errorf("static = %v, want 0.4", w.Static)
			}
		}
	}
	if !found {
		t.Fatal("no weight for arithmetic/fractions")
	}
}

func TestBuildRejectsBrokenDecks(t *testing.T) {
	cases := []struct {
		name string
		deck curriculum.Deck
	}{
		{
			name: "unknown atom concept",
			deck: curriculum.Deck{
				Module:   "m",
				Concepts: []curriculum.ConceptSpec{{ID: "a", Section: "s"}},
				Atoms:    []curriculum.AtomSpec{{ID: "x", Concept: "ghost", Type: "flashcard", Prompt: "p", Answer: "a"}},
			},
		},
		{
			name: "dangling prerequisite",
			deck: curriculum.Deck{
				Module: "m",
				Concepts: []curriculum.ConceptSpec{{
					ID: "a", Section: "s",
					Requires: []curriculum.RequireSpec{{Concept: "ghost"}},
				}},
			},
		},
		{
			name: "prerequisite cycle",
			deck: curriculum.Deck{
				Module: "m",
				Concepts: []curriculum.ConceptSpec{
					{ID: "a", Section: "s", Requires: []curriculum.RequireSpec{{Concept: "b"}}},
					{ID: "b", Section: "s", Requires: []curriculum.RequireSpec{{Concept: "a"}}},
				},
			},
		},
		{
			name: "invalid atom payload",
			deck: curriculum.Deck{
				Module:   "m",
				Concepts: []curriculum.ConceptSpec{{ID: "a", Section: "s"}},
				Atoms:    []curriculum.AtomSpec{{ID: "x", Concept: "a", Type: "mcq", Prompt: "p", Options: []string{"only-one"}, CorrectOption: 3}},
			},
		},
		{
			name: "singleton cluster",
			deck: curriculum.Deck{
				Module:   "m",
				Concepts: []curriculum.ConceptSpec{{ID: "a", Section: "s"}},
				Clusters: []curriculum.ClusterSpec{{ID: "c", Concepts: []string{"a"}}},
			},
		},
		{
			name: "out of range struggle weight",
			deck: curriculum.Deck{
				Module:   "m",
				Concepts: []curriculum.ConceptSpec{{ID: "a", Section: "s", StruggleWeight: 1.5}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := curriculum.Build([]curriculum.Deck{tc.deck}); err == nil {
				t.Fatal("Build() should fail")
			}
		})
	}
}

func TestBuildRejectsDuplicateIDsAcrossDecks(t *testing.T) {
	a := curriculum.Deck{Module: "m1", Concepts: []curriculum.ConceptSpec{{ID: "shared", Section: "s"}}}
	b := curriculum.Deck{Module: "m2", Concepts: []curriculum.ConceptSpec{{ID: "shared", Section: "s"}}}
	if _, err := curriculum.Build([]curriculum.Deck{a, b}); err == nil {
		t.Fatal("duplicate concept ids across decks should fail")
	}
}
