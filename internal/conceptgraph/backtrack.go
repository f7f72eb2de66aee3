package conceptgraph

// DefaultBacktrackDepth caps how far the resolver walks up the
// prerequisite chain from a failed concept.
const DefaultBacktrackDepth = 5

// Backtrack walks the hard-gated prerequisites of a failed concept and
// returns the concepts that need remediation, nearest-first. For each
// unsatisfied prerequisite the walk continues into its own prerequisites,
// bounded at maxDepth levels. The walk is iterative with an explicit
// work list and a visited set, so it is stack-safe, never remediates a
// concept twice, and is idempotent under retry. Hitting the depth bound stops
// the walk silently; it is an expected boundary, not an error.
//
// Returns an empty list when every hard prerequisite is satisfied.
func (g *Graph) Backtrack(failedConceptID string, mastery MasteryReader, maxDepth int) []string {
	if maxDepth <= 0 {
		maxDepth = DefaultBacktrackDepth
	}

	type frame struct {
		id    string
		depth int
	}

	var result []string
	visited := map[string]bool{failedConceptID: true}
	work := []frame{{id: failedConceptID, depth: 0}}

	for len(work) > 0 {
		f := work[0]
		work = work[1:]

		if f.depth >= maxDepth {
			continue
		}

		for _, e := range g.prereqs[f.id] {
			if e.Gate != GateHard || visited[e.Source] {
				continue
			}
			if _, waived := g.WaiverFor(e.Source, e.Target); waived {
				continue
			}
			if mastery.CombinedMastery(e.Source) >= e.EffectiveThreshold() {
				continue
			}
			// Marked only on insertion: a prerequisite satisfied on one
			// edge must stay eligible for a stricter edge met later in
			// the walk. AddEdge guarantees a DAG, so insertion-marking
			// alone prevents re-adds.
			visited[e.Source] = true
			result = append(result, e.Source)
			work = append(work, frame{id: e.Source, depth: f.depth + 1})
		}
	}

	return result
}
