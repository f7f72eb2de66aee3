package conceptgraph

// Centrality scores how structurally important a concept is within the
// prerequisite graph, in [0,1]. The measure is normalized out-degree: the
// fraction of the maximum dependent count held by any concept. The measure
// is a tunable choice, not a contract; normalized out-degree is stable,
// cheap, and deterministic, which the priority scorer requires.
func (g *Graph) Centrality(conceptID string) float64 {
	maxDeps := 0
	for _, deps := range g.dependents {
		if len(deps) > maxDeps {
			maxDeps = len(deps)
		}
	}
	if maxDeps == 0 {
		return 0
	}
	return float64(len(g.dependents[conceptID])) / float64(maxDeps)
}
