package curriculum

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/conceptgraph"
)

// TopicWeight is an author-assigned static struggle weight for a topic.
type TopicWeight struct {
	Module  string
	Section string
	Static  float64
}

// Cluster is a resolved confusion cluster.
type Cluster struct {
	ID       string
	Concepts []string
}

// Curriculum is the validated, ready-to-wire content of a deck directory.
type Curriculum struct {
	Graph    *conceptgraph.Graph
	Atoms    []*atom.Atom
	Weights  []TopicWeight
	Clusters []Cluster
}

// Load reads every YAML deck under rootDir and builds the curriculum.
// Files that don't parse as decks are skipped with a warning; referential
// problems inside parsed decks are hard errors.
func Load(rootDir string) (*Curriculum, error) {
	var decks []Deck
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var d Deck
		if err := yaml.Unmarshal(data, &d); err != nil {
			slog.Warn("skipping invalid deck YAML", "path", path, "error", err)
			return nil
		}
		if d.Module == "" {
			return nil // Not a deck file
		}
		decks = append(decks, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", rootDir, err)
	}
	if len(decks) == 0 {
		return nil, fmt.Errorf("no decks found under %s", rootDir)
	}

	cur, err := Build(decks)
	if err != nil {
		return nil, err
	}
	slog.Info("curriculum loaded",
		"decks", len(decks),
		"concepts", len(cur.Graph.Concepts()),
		"atoms", len(cur.Atoms))
	return cur, nil
}

// Build assembles decks into a validated curriculum.
func Build(decks []Deck) (*Curriculum, error) {
	g := conceptgraph.New()
	seen := make(map[string]bool)

	for _, d := range decks {
		for _, cs := range d.Concepts {
			if cs.ID == "" {
				return nil, fmt.Errorf("deck %s: concept with empty id", d.Module)
			}
			if seen[cs.ID] {
				return nil, fmt.Errorf("duplicate concept %q", cs.ID)
			}
			seen[cs.ID] = true
			if cs.StruggleWeight < 0 || cs.StruggleWeight > 1 {
				return nil, fmt.Errorf("concept %q: struggle_weight %v outside [0,1]", cs.ID, cs.StruggleWeight)
			}
			g.AddConcept(conceptgraph.Concept{
				ID:        cs.ID,
				Name:      cs.Name,
				Module:    d.Module,
				Section:   cs.Section,
				Dimension: conceptgraph.Dimension(cs.Dimension),
			})
		}
	}

	for _, d := range decks {
		for _, cs := range d.Concepts {
			for _, req := range cs.Requires {
				e, err := buildEdge(req, cs.ID)
				if err != nil {
					return nil, fmt.Errorf("concept %q: %w", cs.ID, err)
				}
				if err := g.AddEdge(e); err != nil {
					return nil, fmt.Errorf("concept %q: %w", cs.ID, err)
				}
			}
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	registry := atom.NewRegistry()
	seenAtoms := make(map[string]bool)
	var atoms []*atom.Atom
	for _, d := range decks {
		for _, as := range d.Atoms {
			if as.ID == "" {
				return nil, fmt.Errorf("deck %s: atom with empty id", d.Module)
			}
			if seenAtoms[as.ID] {
				return nil, fmt.Errorf("duplicate atom %q", as.ID)
			}
			seenAtoms[as.ID] = true
			if !seen[as.Concept] {
				return nil, fmt.Errorf("atom %q: unknown concept %q", as.ID, as.Concept)
			}
			a := buildAtom(as)
			h, err := registry.Handler(a.Type)
			if err != nil {
				return nil, fmt.Errorf("atom %q: %w", as.ID, err)
			}
			if err := h.Validate(a); err != nil {
				return nil, fmt.Errorf("atom %q: %w", as.ID, err)
			}
			atoms = append(atoms, a)
		}
	}

	var clusters []Cluster
	for _, d := range decks {
		for _, cl := range d.Clusters {
			if len(cl.Concepts) < 2 {
				return nil, fmt.Errorf("cluster %q: needs at least two concepts", cl.ID)
			}
			for _, id := range cl.Concepts {
				if !seen[id] {
					return nil, fmt.Errorf("cluster %q: unknown concept %q", cl.ID, id)
				}
			}
			clusters = append(clusters, Cluster{ID: cl.ID, Concepts: cl.Concepts})
		}
	}

	return &Curriculum{
		Graph:    g,
		Atoms:    atoms,
		Weights:  collectWeights(decks),
		Clusters: clusters,
	}, nil
}

func buildEdge(req RequireSpec, target string) (conceptgraph.Edge, error) {
	gate := conceptgraph.GateHard
	switch req.Gate {
	case "", "hard":
	case "soft":
		gate = conceptgraph.GateSoft
	default:
		return conceptgraph.Edge{}, fmt.Errorf("unknown gate %q", req.Gate)
	}

	class := conceptgraph.ClassIntegration
	switch req.Class {
	case "":
	case "foundation":
		class = conceptgraph.ClassFoundation
	case "integration":
		class = conceptgraph.ClassIntegration
	case "mastery":
		class = conceptgraph.ClassMastery
	default:
		return conceptgraph.Edge{}, fmt.Errorf("unknown threshold class %q", req.Class)
	}

	return conceptgraph.Edge{
		Source:    req.Concept,
		Target:    target,
		Gate:      gate,
		Class:     class,
		Threshold: req.Threshold,
	}, nil
}

func buildAtom(as AtomSpec) *atom.Atom {
	return &atom.Atom{
		ID:            as.ID,
		ConceptID:     as.Concept,
		Type:          atom.Type(as.Type),
		Prompt:        as.Prompt,
		Answer:        as.Answer,
		Options:       as.Options,
		CorrectOption: as.CorrectOption,
		Blanks:        as.Blanks,
		Pairs:         as.Pairs,
		Steps:         as.Steps,
		Tolerance:     as.Tolerance,
		Combination:   as.Combination,
		Hints:         as.Hints,
	}
}

// collectWeights reduces per-concept static weights to one weight per
// module×section topic, keeping the highest.
func collectWeights(decks []Deck) []TopicWeight {
	idx := make(map[string]int)
	var out []TopicWeight
	for _, d := range decks {
		for _, cs := range d.Concepts {
			key := d.Module + "\x00" + cs.Section
			if i, ok := idx[key]; ok {
				if cs.StruggleWeight > out[i].Static {
					out[i].Static = cs.StruggleWeight
				}
				continue
			}
			idx[key] = len(out)
			out = append(out, TopicWeight{Module: d.Module, Section: cs.Section, Static: cs.StruggleWeight})
		}
	}
	return out
}
