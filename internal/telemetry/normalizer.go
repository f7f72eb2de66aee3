package telemetry

import "math"

const (
	// DefaultMinSamples is the number of prior events required before the
	// learner's own baseline is trusted over the population defaults.
	DefaultMinSamples = 8

	// PopulationMeanMs is the population-default mean response time.
	PopulationMeanMs = 6000.0

	// PopulationStdMs is the population-default response time deviation.
	PopulationStdMs = 2500.0
)

// Event is a single raw learner interaction as captured by the item handler.
type Event struct {
	LearnerID      string
	AtomID         string
	ConceptID      string
	SessionID      string
	Correct        bool
	ResponseTimeMs int
	Confidence     int // 1-5, 0 when not reported
	AttemptNumber  int
}

// Signals is the normalized view of an Event used by the diagnosis engine.
type Signals struct {
	LatencyZ   float64
	Correct    bool
	Confidence int // 1-5, 0 when not reported
}

// Normalizer converts raw interaction events into learner-relative signals.
// It keeps a rolling response-time baseline per learner; until MinSamples
// events have been seen the population defaults are used instead, so the
// first few answers of a new learner don't produce wild z-scores.
type Normalizer struct {
	MinSamples int
	WindowSize int

	samples map[string][]float64
}

// DefaultWindowSize bounds the rolling baseline window.
const DefaultWindowSize = 50

// NewNormalizer creates a Normalizer with default cold-start settings.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		MinSamples: DefaultMinSamples,
		WindowSize: DefaultWindowSize,
		samples:    make(map[string][]float64),
	}
}

// Normalize converts an event into z-scored signals and folds the event's
// latency into the learner's rolling baseline. A missing latency (zero or
// negative) is substituted with the current baseline mean and yields z = 0.
func (n *Normalizer) Normalize(ev Event) Signals {
	mean, std := n.Baseline(ev.LearnerID)

	latency := float64(ev.ResponseTimeMs)
	if ev.ResponseTimeMs <= 0 {
		latency = mean
	}

	z := 0.0
	if std > 0 {
		z = (latency - mean) / std
	}

	n.record(ev.LearnerID, latency)

	return Signals{
		LatencyZ:   z,
		Correct:    ev.Correct,
		Confidence: ev.Confidence,
	}
}

// Baseline returns the (mean, std) response time for a learner, falling back
// to population defaults below the minimum sample count.
func (n *Normalizer) Baseline(learnerID string) (float64, float64) {
	s := n.samples[learnerID]
	if len(s) < n.MinSamples {
		return PopulationMeanMs, PopulationStdMs
	}

	mean := 0.0
	for _, v := range s {
		mean += v
	}
	mean /= float64(len(s))

	variance := 0.0
	for _, v := range s {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(s))

	std := math.Sqrt(variance)
	if std == 0 {
		std = PopulationStdMs
	}
	return mean, std
}

// SampleCount returns how many latency samples are held for a learner.
func (n *Normalizer) SampleCount(learnerID string) int {
	return len(n.samples[learnerID])
}

func (n *Normalizer) record(learnerID string, latency float64) {
	s := append(n.samples[learnerID], latency)
	window := n.WindowSize
	if window <= 0 {
		window = DefaultWindowSize
	}
	if len(s) > window {
		s = s[len(s)-window:]
	}
	n.samples[learnerID] = s
}

// RestoreBaseline seeds a learner's rolling window from persisted samples.
// Used when resuming from a snapshot.
func (n *Normalizer) RestoreBaseline(learnerID string, samples []float64) {
	cloned := make([]float64, len(samples))
	copy(cloned, samples)
	n.samples[learnerID] = cloned
}

// ExportBaseline returns a copy of a learner's rolling window for snapshots.
func (n *Normalizer) ExportBaseline(learnerID string) []float64 {
	s := n.samples[learnerID]
	cloned := make([]float64, len(s))
	copy(cloned, s)
	return cloned
}
