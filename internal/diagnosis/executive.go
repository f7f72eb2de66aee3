package diagnosis

// FastLatencyZ is the z-scored latency below which a wrong answer reads
// as a rushed, careless slip rather than a knowledge gap.
const FastLatencyZ = -1.0

// ExecutiveClassifier flags fast-and-wrong responses: the learner answered
// well below their own baseline speed and missed.
type ExecutiveClassifier struct{}

func (c *ExecutiveClassifier) Name() string { return "executive" }

func (c *ExecutiveClassifier) Classify(in *Input) *Diagnosis {
	if in.Signals.Correct || in.Signals.LatencyZ >= FastLatencyZ {
		return nil
	}

	return &Diagnosis{
		Mode:       ModeExecutive,
		Confidence: 0.8,
		Rule:       c.Name(),
		Evidence: map[string]float64{
			"latency_z":      in.Signals.LatencyZ,
			"fast_threshold": FastLatencyZ,
		},
	}
}
