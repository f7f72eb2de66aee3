package diagnosis

// SlowLatencyZ is the z-scored latency above which a wrong answer counts
// as slow-and-wrong, the signature of a consolidation problem.
const SlowLatencyZ = 0.75

// ConsolidationClassifier splits slow-and-wrong failures into ENCODING
// (no prior correct exposure: the concept was never properly stored) and
// INTEGRATION (isolated exposure succeeded but the concept fails on
// combination tasks: facts aren't connecting).
type ConsolidationClassifier struct{}

func (c *ConsolidationClassifier) Name() string { return "consolidation" }

func (c *ConsolidationClassifier) Classify(in *Input) *Diagnosis {
	if in.Signals.Correct || in.Signals.LatencyZ < SlowLatencyZ {
		return nil
	}

	evidence := map[string]float64{
		"latency_z":              in.Signals.LatencyZ,
		"prior_correct_exposure": float64(in.PriorCorrectExposure),
	}

	if in.PriorCorrectExposure == 0 {
		return &Diagnosis{
			Mode:       ModeEncoding,
			Confidence: 0.75,
			Rule:       c.Name(),
			Evidence:   evidence,
		}
	}

	if in.CombinationTask {
		evidence["combination_task"] = 1
		return &Diagnosis{
			Mode:       ModeIntegration,
			Confidence: 0.7,
			Rule:       c.Name(),
			Evidence:   evidence,
		}
	}

	// Slow-and-wrong with prior exposure on an isolated task: leave it to
	// the retrieval fallback.
	return nil
}
