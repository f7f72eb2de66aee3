package diagnosis

import "time"

const (
	// FatigueMinInteractions is the minimum session interaction count
	// before fatigue becomes an eligible diagnosis.
	FatigueMinInteractions = 10

	// FatigueMinElapsed is the alternative eligibility gate on session time.
	FatigueMinElapsed = 600 * time.Second

	// FatigueNormThreshold is the fatigue-vector norm above which the
	// learner is considered depleted.
	FatigueNormThreshold = 0.85

	// BreakGraceInteractions suppresses the fatigue check for this many
	// interactions after a break, so re-acclimation variance isn't read
	// as depletion.
	BreakGraceInteractions = 5
)

// FatigueClassifier flags failures caused by depletion rather than a
// knowledge gap. It is deliberately hard to trigger early in a session.
type FatigueClassifier struct{}

func (c *FatigueClassifier) Name() string { return "fatigue" }

func (c *FatigueClassifier) Classify(in *Input) *Diagnosis {
	// Post-break grace period suppresses the check entirely.
	if in.InteractionsSinceBreak >= 0 && in.InteractionsSinceBreak < BreakGraceInteractions {
		return nil
	}

	// Not enough session history to distinguish fatigue from noise.
	if in.SessionInteractions < FatigueMinInteractions && in.SessionElapsed < FatigueMinElapsed {
		return nil
	}

	norm := in.Fatigue.Norm()
	if norm <= FatigueNormThreshold {
		return nil
	}

	return &Diagnosis{
		Mode:       ModeFatigue,
		Confidence: 0.85,
		Rule:       c.Name(),
		Evidence: map[string]float64{
			"fatigue_norm":         norm,
			"session_interactions": float64(in.SessionInteractions),
			"session_elapsed_s":    in.SessionElapsed.Seconds(),
		},
	}
}
