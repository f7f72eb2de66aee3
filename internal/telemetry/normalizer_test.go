package telemetry

import (
	"math"
	"testing"
)

func TestNormalize_ColdStartUsesPopulationDefaults(t *testing.T) {
	n := NewNormalizer()

	// First event of a brand-new learner: z relative to population baseline.
	sig := n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: int(PopulationMeanMs)})
	if sig.LatencyZ != 0 {
		t.Errorf("latency at population mean should z-score to 0, got %f", sig.LatencyZ)
	}

	sig = n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: int(PopulationMeanMs + PopulationStdMs)})
	if math.Abs(sig.LatencyZ-1.0) > 1e-9 {
		t.Errorf("one std above population mean should z-score to 1, got %f", sig.LatencyZ)
	}
}

func TestNormalize_PersonalBaselineAfterMinSamples(t *testing.T) {
	n := NewNormalizer()

	// Feed a stable 2000ms learner past the cold-start threshold.
	for range n.MinSamples {
		n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: 2000})
	}

	mean, _ := n.Baseline("l1")
	if mean != 2000 {
		t.Errorf("personal baseline mean = %f, want 2000", mean)
	}
}

func TestNormalize_ZeroVarianceFallsBackToPopulationStd(t *testing.T) {
	n := NewNormalizer()
	for range n.MinSamples {
		n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: 2000})
	}

	// Identical samples give zero variance; std must not be zero.
	_, std := n.Baseline("l1")
	if std != PopulationStdMs {
		t.Errorf("zero-variance std = %f, want population default %f", std, PopulationStdMs)
	}
}

func TestNormalize_MissingLatencySubstitutesBaseline(t *testing.T) {
	n := NewNormalizer()
	sig := n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: 0, Correct: true})
	if sig.LatencyZ != 0 {
		t.Errorf("missing latency should normalize to z=0, got %f", sig.LatencyZ)
	}
	if !sig.Correct {
		t.Error("correctness flag should pass through")
	}
}

func TestNormalize_WindowIsBounded(t *testing.T) {
	n := NewNormalizer()
	n.WindowSize = 10
	for i := range 100 {
		n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: 1000 + i})
	}
	if got := n.SampleCount("l1"); got != 10 {
		t.Errorf("sample count = %d, want window size 10", got)
	}
}

func TestBaseline_IsPerLearner(t *testing.T) {
	n := NewNormalizer()
	for range n.MinSamples {
		n.Normalize(Event{LearnerID: "fast", ResponseTimeMs: 1000})
		n.Normalize(Event{LearnerID: "slow", ResponseTimeMs: 9000})
	}

	fastMean, _ := n.Baseline("fast")
	slowMean, _ := n.Baseline("slow")
	if fastMean >= slowMean {
		t.Errorf("baselines should be independent: fast=%f slow=%f", fastMean, slowMean)
	}
}

func TestRestoreBaseline_RoundTrip(t *testing.T) {
	n := NewNormalizer()
	for range n.MinSamples {
		n.Normalize(Event{LearnerID: "l1", ResponseTimeMs: 3000})
	}

	exported := n.ExportBaseline("l1")

	n2 := NewNormalizer()
	n2.RestoreBaseline("l1", exported)
	m1, s1 := n.Baseline("l1")
	m2, s2 := n2.Baseline("l1")
	if m1 != m2 || s1 != s2 {
		t.Errorf("restored baseline (%f,%f) != original (%f,%f)", m2, s2, m1, s1)
	}
}
