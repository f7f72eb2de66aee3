package conceptgraph

import "time"

// Dimension tags a concept with its knowledge dimension.
type Dimension string

const (
	DimensionFactual       Dimension = "factual"
	DimensionConceptual    Dimension = "conceptual"
	DimensionProcedural    Dimension = "procedural"
	DimensionMetacognitive Dimension = "metacognitive"
)

// Concept is a single node in the prerequisite graph. Concepts are owned by
// the curriculum; the engine treats them as read-only.
type Concept struct {
	ID        string
	Name      string
	Module    string
	Section   string
	Dimension Dimension
}

// GateType controls how a prerequisite edge gates access.
type GateType string

const (
	// GateSoft edges annotate a warning but never block.
	GateSoft GateType = "soft"
	// GateHard edges block until the prerequisite meets its threshold.
	GateHard GateType = "hard"
)

// ThresholdClass names a standard mastery threshold for an edge.
type ThresholdClass string

const (
	ClassFoundation  ThresholdClass = "foundation"
	ClassIntegration ThresholdClass = "integration"
	ClassMastery     ThresholdClass = "mastery"
)

// Threshold returns the combined-mastery cutoff for a threshold class.
func (c ThresholdClass) Threshold() float64 {
	switch c {
	case ClassFoundation:
		return 0.40
	case ClassIntegration:
		return 0.65
	case ClassMastery:
		return 0.85
	default:
		return 0.65
	}
}

// Edge is a directed prerequisite dependency: Source must be learned before
// Target. Threshold overrides the class cutoff when set (> 0).
type Edge struct {
	Source    string
	Target    string
	Gate      GateType
	Class     ThresholdClass
	Threshold float64
}

// EffectiveThreshold returns the mastery cutoff that gates this edge.
func (e Edge) EffectiveThreshold() float64 {
	if e.Threshold > 0 {
		return e.Threshold
	}
	return e.Class.Threshold()
}

// WaiverType identifies who or what satisfied a gated edge out of band.
type WaiverType string

const (
	WaiverInstructor  WaiverType = "instructor-override"
	WaiverChallenge   WaiverType = "challenge-passed"
	WaiverCredential  WaiverType = "external-credential"
	WaiverAccelerated WaiverType = "accelerated-learner"
)

// Waiver marks a specific edge as satisfied regardless of mastery. Waivers
// are standalone records; the edge itself is never mutated.
type Waiver struct {
	Source    string
	Target    string
	Type      WaiverType
	Note      string
	GrantedAt time.Time
}
