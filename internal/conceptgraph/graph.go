package conceptgraph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when a concept ID is not in the graph.
var ErrNotFound = errors.New("concept not found")

// ErrCycle is returned when an edge insertion would close a cycle. The graph
// is left unchanged.
var ErrCycle = errors.New("edge would create a cycle")

// MasteryReader supplies combined mastery for gate evaluation. Implemented
// by the mastery tracker; tests use simple map-backed fakes.
type MasteryReader interface {
	CombinedMastery(conceptID string) float64
}

// Graph is the prerequisite DAG. Edges point prerequisite → dependent;
// prereqs(target) holds the incoming edges of each concept.
type Graph struct {
	concepts   map[string]Concept
	prereqs    map[string][]Edge
	dependents map[string][]string
	waivers    map[string]Waiver
	edgeCount  int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		concepts:   make(map[string]Concept),
		prereqs:    make(map[string][]Edge),
		dependents: make(map[string][]string),
		waivers:    make(map[string]Waiver),
	}
}

// AddConcept registers a concept node. Re-adding an ID overwrites the node
// metadata but leaves edges intact.
func (g *Graph) AddConcept(c Concept) {
	g.concepts[c.ID] = c
}

// Concept returns a concept by ID.
func (g *Graph) Concept(id string) (Concept, error) {
	c, ok := g.concepts[id]
	if !ok {
		return Concept{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c, nil
}

// Concepts returns all concept IDs in sorted order.
func (g *Graph) Concepts() []string {
	ids := make([]string, 0, len(g.concepts))
	for id := range g.concepts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// AddEdge inserts a prerequisite edge after checking that both endpoints
// exist and that the edge would not close a cycle. On ErrCycle the graph is
// untouched.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.concepts[e.Source]; !ok {
		return fmt.Errorf("%w: edge source %q", ErrNotFound, e.Source)
	}
	if _, ok := g.concepts[e.Target]; !ok {
		return fmt.Errorf("%w: edge target %q", ErrNotFound, e.Target)
	}
	if e.Source == e.Target {
		return fmt.Errorf("%w: self edge on %q", ErrCycle, e.Source)
	}

	// The new edge closes a cycle iff Source is already reachable from
	// Target by following existing dependency edges.
	if g.reaches(e.Target, e.Source) {
		return fmt.Errorf("%w: %s -> %s", ErrCycle, e.Source, e.Target)
	}

	g.prereqs[e.Target] = append(g.prereqs[e.Target], e)
	g.dependents[e.Source] = append(g.dependents[e.Source], e.Target)
	g.edgeCount++
	return nil
}

// reaches reports whether `to` is reachable from `from` via dependency
// edges, using an iterative DFS with white/grey/black coloring.
func (g *Graph) reaches(from, to string) bool {
	const (
		white = 0 // unvisited
		grey  = 1 // on stack
		black = 2 // done
	)
	color := make(map[string]int, len(g.concepts))
	stack := []string{from}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		if color[id] == white {
			color[id] = grey
			if id == to {
				return true
			}
			for _, dep := range g.dependents[id] {
				if color[dep] == white {
					stack = append(stack, dep)
				}
			}
		} else {
			color[id] = black
			stack = stack[:len(stack)-1]
		}
	}
	return false
}

// Prerequisites returns the incoming edges of a concept.
func (g *Graph) Prerequisites(id string) []Edge {
	edges := make([]Edge, len(g.prereqs[id]))
	copy(edges, g.prereqs[id])
	return edges
}

// Dependents returns the IDs of concepts that depend on the given one.
func (g *Graph) Dependents(id string) []string {
	deps := make([]string, len(g.dependents[id]))
	copy(deps, g.dependents[id])
	return deps
}

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Grant records a waiver for a specific edge. The waiver satisfies the edge
// during gate evaluation; it never mutates the edge itself.
func (g *Graph) Grant(w Waiver) {
	g.waivers[edgeKey(w.Source, w.Target)] = w
}

// WaiverFor returns the waiver covering an edge, if any.
func (g *Graph) WaiverFor(source, target string) (Waiver, bool) {
	w, ok := g.waivers[edgeKey(source, target)]
	return w, ok
}

func edgeKey(source, target string) string {
	return source + "\x00" + target
}

// GateResult reports the outcome of a hard-gate evaluation.
type GateResult struct {
	Unlocked bool
	// Blocking lists the hard edges whose prerequisite mastery is below
	// threshold, blocking-gap descending.
	Blocking []Edge
	// MaxGap is the largest threshold-minus-mastery shortfall among the
	// blocking edges (0 when unlocked).
	MaxGap float64
	// Warnings lists soft edges below threshold; these never block.
	Warnings []Edge
}

// IsUnlocked evaluates the hard gates of a concept against the learner's
// combined mastery. Soft edges are reported as warnings only. Waived edges
// are treated as satisfied.
func (g *Graph) IsUnlocked(conceptID string, mastery MasteryReader) (GateResult, error) {
	if _, ok := g.concepts[conceptID]; !ok {
		return GateResult{}, fmt.Errorf("%w: %q", ErrNotFound, conceptID)
	}

	res := GateResult{Unlocked: true}
	for _, e := range g.prereqs[conceptID] {
		if _, waived := g.WaiverFor(e.Source, e.Target); waived {
			continue
		}
		gap := e.EffectiveThreshold() - mastery.CombinedMastery(e.Source)
		if gap <= 0 {
			continue
		}
		switch e.Gate {
		case GateHard:
			res.Unlocked = false
			res.Blocking = append(res.Blocking, e)
			if gap > res.MaxGap {
				res.MaxGap = gap
			}
		default:
			res.Warnings = append(res.Warnings, e)
		}
	}

	sort.SliceStable(res.Blocking, func(i, j int) bool {
		gi := res.Blocking[i].EffectiveThreshold() - mastery.CombinedMastery(res.Blocking[i].Source)
		gj := res.Blocking[j].EffectiveThreshold() - mastery.CombinedMastery(res.Blocking[j].Source)
		return gi > gj
	})
	return res, nil
}

// Validate checks the whole graph for structural problems: dangling edge
// endpoints and cycles. Used after bulk curriculum import.
func (g *Graph) Validate() error {
	var errs []string
	for target, edges := range g.prereqs {
		if _, ok := g.concepts[target]; !ok {
			errs = append(errs, fmt.Sprintf("edge target %q not registered", target))
		}
		for _, e := range edges {
			if _, ok := g.concepts[e.Source]; !ok {
				errs = append(errs, fmt.Sprintf("edge source %q not registered", e.Source))
			}
		}
	}

	// Kahn's algorithm over the full edge set; leftovers are on a cycle.
	inDegree := make(map[string]int, len(g.concepts))
	for id := range g.concepts {
		inDegree[id] = len(g.prereqs[id])
	}
	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range g.dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited < len(g.concepts) {
		var cycleNodes []string
		for id, deg := range inDegree {
			if deg > 0 {
				cycleNodes = append(cycleNodes, id)
			}
		}
		sort.Strings(cycleNodes)
		errs = append(errs, fmt.Sprintf("cycle involving: %v", cycleNodes))
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("concept graph validation failed: %v", errs)
	}
	return nil
}
