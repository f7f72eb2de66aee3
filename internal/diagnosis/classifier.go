package diagnosis

// Classifier is a single rule in the diagnosis chain.
// Returns nil when the rule doesn't apply.
type Classifier interface {
	Name() string
	Classify(in *Input) *Diagnosis
}

// MinConfidence is the floor below which a rule's diagnosis is discarded
// and classification falls through to the retrieval default.
const MinConfidence = 0.3

// DefaultClassifiers returns the rule chain in priority order. Fatigue
// runs first because a depleted learner makes every other signal noisy;
// the consolidation rule runs after the fast-and-wrong check so careless
// slips don't masquerade as encoding gaps.
func DefaultClassifiers() []Classifier {
	return []Classifier{
		&FatigueClassifier{},
		&DiscriminationClassifier{},
		&ExecutiveClassifier{},
		&ConsolidationClassifier{},
	}
}

// Diagnose runs the rule chain and returns the first confident match, or
// the RETRIEVAL fallback: prior correct exposure implies the information
// was stored and is currently inaccessible, which is the conservative
// reading of an otherwise unexplained miss.
func Diagnose(classifiers []Classifier, in *Input) *Diagnosis {
	for _, c := range classifiers {
		if d := c.Classify(in); d != nil && d.Confidence >= MinConfidence {
			return d
		}
	}
	return &Diagnosis{
		Mode:       ModeRetrieval,
		Confidence: 0.5,
		Rule:       "retrieval-fallback",
		Evidence: map[string]float64{
			"prior_correct_exposure": float64(in.PriorCorrectExposure),
			"latency_z":              in.Signals.LatencyZ,
		},
	}
}
