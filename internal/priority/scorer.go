package priority

import (
	"math"
	"sort"
)

// Standard-mode signal weights. The four signals are combined linearly;
// the weights sum to 1 so the score stays in [0,1] when the inputs do.
const (
	WeightDecay      = 0.30
	WeightCentrality = 0.25
	WeightFocus      = 0.25
	WeightNovelty    = 0.20

	// DefaultHalfLifeDays is the half-life of the time-decay signal.
	DefaultHalfLifeDays = 7.0
)

// Struggle-mode term coefficients.
const (
	StruggleWeightFactor = 3.0
	DynamicWeightFactor  = 2.0
	RetrievabilityFactor = 1.0
)

// StandardInputs are the signals for the standard z-score mode.
type StandardInputs struct {
	DaysSinceReview float64
	HalfLifeDays    float64 // 0 means DefaultHalfLifeDays
	Centrality      float64 // graph centrality of the concept, [0,1]
	Focus           float64 // project/focus-relevance flag, 0 or 1
	Novelty         float64 // high for unseen items, decays after exposure
}

// StandardScore computes the standard-mode priority. Pure function:
// identical inputs always produce identical scores.
func StandardScore(in StandardInputs) float64 {
	halfLife := in.HalfLifeDays
	if halfLife <= 0 {
		halfLife = DefaultHalfLifeDays
	}
	decay := math.Pow(0.5, in.DaysSinceReview/halfLife)
	return WeightDecay*decay +
		WeightCentrality*in.Centrality +
		WeightFocus*in.Focus +
		WeightNovelty*in.Novelty
}

// StruggleInputs are the signals for the struggle-weighted mode.
type StruggleInputs struct {
	// StruggleWeight is the topic's static or dynamic weight, whichever
	// the caller selects as primary.
	StruggleWeight float64
	// DynamicWeight is the diagnosis-derived topic weight.
	DynamicWeight float64
	// Retrievability is the concept's current R(t), [0,1].
	Retrievability float64
}

// StruggleScore computes the struggle-weighted priority:
// weight·3.0 + dynamic·2.0 + (1-R)·1.0. Pure function.
func StruggleScore(in StruggleInputs) float64 {
	return in.StruggleWeight*StruggleWeightFactor +
		in.DynamicWeight*DynamicWeightFactor +
		(1-in.Retrievability)*RetrievabilityFactor
}

// Candidate is one rankable item.
type Candidate struct {
	AtomID    string
	ConceptID string
	Score     float64
	// Severity classes rank above score ties; higher is more urgent.
	Severity int
	// Retrievability breaks severity ties; lower (more forgotten) first.
	Retrievability float64
	// insertion preserves stable order for full ties.
	insertion int
}

// Rank sorts candidates by score descending with the deterministic
// tie-break chain: severity class descending, retrievability ascending,
// then original insertion order. The input slice is not modified.
func Rank(candidates []Candidate) []Candidate {
	out := make([]Candidate, len(candidates))
	copy(out, candidates)
	for i := range out {
		out[i].insertion = i
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Severity != out[j].Severity {
			return out[i].Severity > out[j].Severity
		}
		if out[i].Retrievability != out[j].Retrievability {
			return out[i].Retrievability < out[j].Retrievability
		}
		return out[i].insertion < out[j].insertion
	})
	return out
}
