package diagnosis

import (
	"testing"
	"time"

	"github.com/okanta/memloop/internal/telemetry"
)

func wrongSlow() telemetry.Signals { return telemetry.Signals{LatencyZ: 1.5, Correct: false} }
func wrongFast() telemetry.Signals { return telemetry.Signals{LatencyZ: -1.8, Correct: false} }
func wrongMid() telemetry.Signals { return telemetry.Signals{LatencyZ: 0.1, Correct: false} }

func baseInput(sig telemetry.Signals) *Input {
	return &Input{
		Signals:                sig,
		InteractionsSinceBreak: -1,
	}
}

func TestDiagnose_EncodingWhenNoPriorCorrectExposure(t *testing.T) {
	// Zero prior correct exposure + slow and wrong => ENCODING, not RETRIEVAL.
	in := baseInput(wrongSlow())
	in.PriorCorrectExposure = 0

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeEncoding {
		t.Fatalf("mode = %s, want ENCODING", d.Mode)
	}
	if d.Evidence["prior_correct_exposure"] != 0 {
		t.Error("evidence should record zero prior exposure")
	}
}

func TestDiagnose_IntegrationOnCombinationTask(t *testing.T) {
	in := baseInput(wrongSlow())
	in.PriorCorrectExposure = 3
	in.CombinationTask = true

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeIntegration {
		t.Fatalf("mode = %s, want INTEGRATION", d.Mode)
	}
}

func TestDiagnose_SlowWrongIsolatedWithExposureFallsToRetrieval(t *testing.T) {
	in := baseInput(wrongSlow())
	in.PriorCorrectExposure = 3
	in.CombinationTask = false

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeRetrieval {
		t.Fatalf("mode = %s, want RETRIEVAL fallback", d.Mode)
	}
	if d.Rule != "retrieval-fallback" {
		t.Errorf("rule = %s, want retrieval-fallback", d.Rule)
	}
}

func TestDiagnose_ExecutiveOnFastAndWrong(t *testing.T) {
	in := baseInput(wrongFast())
	in.PriorCorrectExposure = 5

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeExecutive {
		t.Fatalf("mode = %s, want EXECUTIVE", d.Mode)
	}
}

func TestDiagnose_FatigueSuppressedEarlyInSession(t *testing.T) {
	// Norm 0.90 exceeds the threshold, but 4 interactions in 3 minutes is
	// below both eligibility gates: diagnosis must fall through.
	in := baseInput(wrongMid())
	in.SessionInteractions = 4
	in.SessionElapsed = 3 * time.Minute
	in.Fatigue = FatigueVector{Physical: 0.52, Cognitive: 0.52, Motivational: 0.52} // norm ≈ 0.90

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode == ModeFatigue {
		t.Fatal("fatigue must be suppressed before eligibility gates are met")
	}
	if d.Mode != ModeRetrieval {
		t.Errorf("mode = %s, want RETRIEVAL fallthrough", d.Mode)
	}
}

func TestDiagnose_FatigueFiresWhenEligible(t *testing.T) {
	in := baseInput(wrongMid())
	in.SessionInteractions = 15
	in.Fatigue = FatigueVector{Physical: 0.6, Cognitive: 0.6, Motivational: 0.6} // norm ≈ 1.04

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeFatigue {
		t.Fatalf("mode = %s, want FATIGUE", d.Mode)
	}
	if d.Evidence["fatigue_norm"] <= FatigueNormThreshold {
		t.Error("evidence should carry the triggering norm")
	}
}

func TestDiagnose_ElapsedTimeAloneMakesFatigueEligible(t *testing.T) {
	in := baseInput(wrongMid())
	in.SessionInteractions = 3
	in.SessionElapsed = 11 * time.Minute
	in.Fatigue = FatigueVector{Physical: 0.6, Cognitive: 0.6, Motivational: 0.6}

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeFatigue {
		t.Fatalf("mode = %s, want FATIGUE via elapsed-time gate", d.Mode)
	}
}

func TestDiagnose_PostBreakGraceSuppressesFatigue(t *testing.T) {
	in := baseInput(wrongMid())
	in.SessionInteractions = 20
	in.Fatigue = FatigueVector{Physical: 0.9, Cognitive: 0.9, Motivational: 0.9}
	in.InteractionsSinceBreak = 2 // within the 5-interaction grace window

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode == ModeFatigue {
		t.Fatal("fatigue must be suppressed during the post-break grace period")
	}
}

func TestDiagnose_DiscriminationBelowPSIFloor(t *testing.T) {
	in := baseInput(wrongMid())
	in.PriorCorrectExposure = 2
	in.HasPatternSeparation = true
	in.PatternSeparation = 0.2

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeDiscrimination {
		t.Fatalf("mode = %s, want DISCRIMINATION", d.Mode)
	}
	if d.Confidence < MinConfidence || d.Confidence > 1 {
		t.Errorf("confidence %v out of range", d.Confidence)
	}
}

func TestDiagnose_DiscriminationIgnoredWithoutCluster(t *testing.T) {
	in := baseInput(wrongMid())
	in.PatternSeparation = 0.0 // meaningless without HasPatternSeparation

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode == ModeDiscrimination {
		t.Fatal("discrimination must not fire without a confusion cluster")
	}
}

func TestDiagnose_PriorityOrderFatigueBeatsDiscrimination(t *testing.T) {
	in := baseInput(wrongMid())
	in.SessionInteractions = 15
	in.Fatigue = FatigueVector{Physical: 0.6, Cognitive: 0.6, Motivational: 0.6}
	in.HasPatternSeparation = true
	in.PatternSeparation = 0.1

	d := Diagnose(DefaultClassifiers(), in)
	if d.Mode != ModeFatigue {
		t.Fatalf("mode = %s, fatigue should win the priority order", d.Mode)
	}
}

func TestDiagnose_EveryBranchEmitsEvidence(t *testing.T) {
	inputs := []*Input{
		func() *Input {
			in := baseInput(wrongMid())
			in.SessionInteractions = 15
			in.Fatigue = FatigueVector{Physical: 0.9, Cognitive: 0.9, Motivational: 0.9}
			return in
		}(),
		func() *Input {
			in := baseInput(wrongMid())
			in.HasPatternSeparation = true
			in.PatternSeparation = 0.1
			return in
		}(),
		baseInput(wrongFast()),
		baseInput(wrongSlow()),
		baseInput(wrongMid()),
	}
	for i, in := range inputs {
		d := Diagnose(DefaultClassifiers(), in)
		if len(d.Evidence) == 0 {
			t.Errorf("input %d (%s): diagnosis has no evidence", i, d.Mode)
		}
		if d.Confidence <= 0 || d.Confidence > 1 {
			t.Errorf("input %d (%s): confidence %v out of (0,1]", i, d.Mode, d.Confidence)
		}
	}
}
