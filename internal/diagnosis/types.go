package diagnosis

import (
	"math"
	"time"

	"github.com/okanta/memloop/internal/telemetry"
)

// FailureMode classifies why a response failed.
type FailureMode string

const (
	// ModeEncoding: the concept was never properly consolidated.
	ModeEncoding FailureMode = "ENCODING"
	// ModeRetrieval: stored but currently inaccessible. The conservative
	// default when no stronger signal applies.
	ModeRetrieval FailureMode = "RETRIEVAL"
	// ModeDiscrimination: confusable concepts are not being told apart.
	ModeDiscrimination FailureMode = "DISCRIMINATION"
	// ModeIntegration: isolated facts are not connecting across concepts.
	ModeIntegration FailureMode = "INTEGRATION"
	// ModeExecutive: a careless slip, not a knowledge gap.
	ModeExecutive FailureMode = "EXECUTIVE"
	// ModeFatigue: depletion, not a knowledge gap.
	ModeFatigue FailureMode = "FATIGUE"
)

// AllModes returns every failure mode.
func AllModes() []FailureMode {
	return []FailureMode{
		ModeEncoding, ModeRetrieval, ModeDiscrimination,
		ModeIntegration, ModeExecutive, ModeFatigue,
	}
}

// FatigueVector carries the three depletion dimensions, each in [0,1].
type FatigueVector struct {
	Physical     float64
	Cognitive    float64
	Motivational float64
}

// Norm returns the Euclidean norm of the vector.
func (v FatigueVector) Norm() float64 {
	return math.Sqrt(v.Physical*v.Physical + v.Cognitive*v.Cognitive + v.Motivational*v.Motivational)
}

// Input is the full context a classification runs against: normalized
// telemetry plus mastery/struggle/session state.
type Input struct {
	Signals telemetry.Signals

	// Session context, for fatigue eligibility.
	SessionInteractions    int
	SessionElapsed         time.Duration
	InteractionsSinceBreak int // -1 when no break has occurred
	Fatigue                FatigueVector

	// PatternSeparation is the learner's Pattern-Separation-Index for the
	// concept's confusion cluster. HasPatternSeparation is false when the
	// concept has no confusable siblings tracked.
	PatternSeparation    float64
	HasPatternSeparation bool

	// PriorCorrectExposure counts prior successful exposures to the
	// concept; zero means it may never have been encoded.
	PriorCorrectExposure int
	// CombinationTask is true when the item exercises this concept
	// together with related ones.
	CombinationTask bool
}

// Diagnosis is the classifier output: the failure mode, a confidence in
// [0,1], the rule that fired, and the evidence signals it used.
type Diagnosis struct {
	Mode       FailureMode
	Confidence float64
	Rule       string
	Evidence   map[string]float64
}
