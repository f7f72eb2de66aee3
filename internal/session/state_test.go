package session

import "testing"

func TestScaffoldStartsTeaching(t *testing.T) {
	tr := NewScaffoldTracker()
	if got := tr.Phase("fractions"); got != PhaseTeaching {
		t.Fatalf("Phase() = %v, want teaching", got)
	}
}

func TestScaffoldAdvancesOnTwoUnscaffoldedCorrect(t *testing.T) {
	tr := NewScaffoldTracker()

	if got := tr.RecordResult("fractions", true, false); got != PhaseTeaching {
		t.Fatalf("after one correct: %v, want teaching", got)
	}
	if got := tr.RecordResult("fractions", true, false); got != PhaseTransition {
		t.Fatalf("after two correct: %v, want transition", got)
	}
	tr.RecordResult("fractions", true, false)
	if got := tr.RecordResult("fractions", true, false); got != PhaseTesting {
		t.Fatalf("after four correct: %v, want testing", got)
	}

	// Testing is terminal; further correct answers hold it.
	tr.RecordResult("fractions", true, false)
	if got := tr.RecordResult("fractions", true, false); got != PhaseTesting {
		t.Fatalf("phase advanced past testing: %v", got)
	}
}

func TestScaffoldedCorrectResetsStreak(t *testing.T) {
	tr := NewScaffoldTracker()

	tr.RecordResult("fractions", true, false)
	tr.RecordResult("fractions", true, true) // hint used, streak resets
	if got := tr.RecordResult("fractions", true, false); got != PhaseTeaching {
		t.Fatalf("streak survived a scaffolded answer: %v", got)
	}
	if got := tr.RecordResult("fractions", true, false); got != PhaseTransition {
		t.Fatalf("two fresh unscaffolded correct should advance: %v", got)
	}
}

func TestScaffoldDropsBackOneOnStruggle(t *testing.T) {
	tr := NewScaffoldTracker()

	for i := 0; i < 4; i++ {
		tr.RecordResult("fractions", true, false)
	}
	if got := tr.Phase("fractions"); got != PhaseTesting {
		t.Fatalf("setup: %v, want testing", got)
	}

	if got := tr.RecordResult("fractions", false, false); got != PhaseTransition {
		t.Fatalf("miss in testing: %v, want transition", got)
	}
	if got := tr.RecordResult("fractions", false, false); got != PhaseTeaching {
		t.Fatalf("miss in transition: %v, want teaching", got)
	}
	// Teaching is the floor.
	if got := tr.RecordResult("fractions", false, false); got != PhaseTeaching {
		t.Fatalf("phase dropped below teaching: %v", got)
	}
}

func TestScaffoldTracksConceptsIndependently(t *testing.T) {
	tr := NewScaffoldTracker()

	tr.RecordResult("fractions", true, false)
	tr.RecordResult("fractions", true, false)
	if got := tr.Phase("decimals"); got != PhaseTeaching {
		t.Fatalf("untouched concept: %v, want teaching", got)
	}
	if got := tr.Phase("fractions"); got != PhaseTransition {
		t.Fatalf("advanced concept: %v, want transition", got)
	}
}

func TestPhaseHintBudget(t *testing.T) {
	if b := PhaseTeaching.HintBudget(); b >= 0 {
		t.Errorf("teaching budget = %d, want unlimited", b)
	}
	if b := PhaseTransition.HintBudget(); b != 1 {
		t.Errorf("transition budget = %d, want 1", b)
	}
	if b := PhaseTesting.HintBudget(); b != 0 {
		t.Errorf("testing budget = %d, want 0", b)
	}
}
