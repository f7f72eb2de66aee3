package diagnosis

// PatternSeparationFloor is the PSI value below which confusable concepts
// are considered undifferentiated.
const PatternSeparationFloor = 0.40

// DiscriminationClassifier flags failures where the learner is not telling
// related concepts apart, measured by the concept cluster's running
// Pattern-Separation-Index.
type DiscriminationClassifier struct{}

func (c *DiscriminationClassifier) Name() string { return "discrimination" }

func (c *DiscriminationClassifier) Classify(in *Input) *Diagnosis {
	if in.Signals.Correct || !in.HasPatternSeparation {
		return nil
	}
	if in.PatternSeparation >= PatternSeparationFloor {
		return nil
	}

	// Confidence scales with how far below the floor the PSI sits.
	conf := 0.6 + 0.4*(PatternSeparationFloor-in.PatternSeparation)/PatternSeparationFloor
	if conf > 1 {
		conf = 1
	}

	return &Diagnosis{
		Mode:       ModeDiscrimination,
		Confidence: conf,
		Rule:       c.Name(),
		Evidence: map[string]float64{
			"pattern_separation": in.PatternSeparation,
			"psi_floor":          PatternSeparationFloor,
		},
	}
}
