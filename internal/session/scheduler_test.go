package session

import (
	"context"
	"testing"
	"time"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/conceptgraph"
	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/mastery"
	"github.com/okanta/memloop/internal/priority"
	"github.com/okanta/memloop/internal/struggle"
)

// newTestScheduler builds a scheduler over two concepts where decimals is
// hard-gated behind fractions at the foundation threshold.
func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()

	g := conceptgraph.New()
	g.AddConcept(conceptgraph.Concept{ID: "fractions", Name: "Fractions", Module: "arithmetic", Section: "fractions"})
	g.AddConcept(conceptgraph.Concept{ID: "decimals", Name: "Decimals", Module: "arithmetic", Section: "decimals"})
	if err := g.AddEdge(conceptgraph.Edge{
		Source: "fractions", Target: "decimals",
		Gate: conceptgraph.GateHard, Class: conceptgraph.ClassFoundation,
	}); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	tracker := mastery.NewTracker([]string{"fractions", "decimals"}, nil)
	ledger := struggle.NewLedger(nil)
	ledger.Register("arithmetic", "fractions", 0.2)
	ledger.Register("arithmetic", "decimals", 0.2)

	s := NewScheduler(Config{LearnerID: "test", MaxItems: 10, MaxPerConcept: 4}, Deps{
		Graph:    g,
		Tracker:  tracker,
		Ledger:   ledger,
		Registry: atom.NewRegistry(),
	})
	s.AddAtoms(
		&atom.Atom{ID: "f1", ConceptID: "fractions", Type: atom.TypeFlashcard, Prompt: "1/2 + 1/4?", Answer: "3/4"},
		&atom.Atom{ID: "f2", ConceptID: "fractions", Type: atom.TypeMCQ, Prompt: "Which is larger?", Options: []string{"1/3", "1/2"}, CorrectOption: 1},
		&atom.Atom{ID: "f3", ConceptID: "fractions", Type: atom.TypeCloze, Prompt: "A fraction has a numerator and a ___", Blanks: []string{"denominator"}},
		&atom.Atom{ID: "d1", ConceptID: "decimals", Type: atom.TypeFlashcard, Prompt: "0.5 as a fraction?", Answer: "1/2"},
	)
	return s
}

func mustStart(t *testing.T, s *Scheduler) {
	t.Helper()
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func TestStartFiltersLockedConcepts(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	for {
		it, err := s.NextItem()
		if err != nil {
			break
		}
		if it.ConceptID == "decimals" {
			t.Fatal("decimals is hard-gated behind fractions and must not be queued")
		}
		if _, err := s.RecordResponse(context.Background(), correctResponse(it.Atom)); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}
}

func TestStartNothingDue(t *testing.T) {
	g := conceptgraph.New()
	g.AddConcept(conceptgraph.Concept{ID: "solo", Module: "m", Section: "s"})
	s := NewScheduler(Config{}, Deps{
		Graph:    g,
		Tracker:  mastery.NewTracker([]string{"solo"}, nil),
		Ledger:   struggle.NewLedger(nil),
		Registry: atom.NewRegistry(),
	})
	if err := s.Start(context.Background()); err != ErrNothingDue {
		t.Fatalf("Start with no atoms = %v, want ErrNothingDue", err)
	}
}

// correctResponse builds the right answer for any fixture atom.
func correctResponse(a *atom.Atom) atom.Response {
	switch a.Type {
	case atom.TypeMCQ:
		return atom.Response{Option: a.CorrectOption, TimeMs: 4000}
	case atom.TypeCloze:
		return atom.Response{Text: a.Blanks[0], TimeMs: 4000}
	default:
		return atom.Response{Text: a.Answer, TimeMs: 4000}
	}
}

func wrongResponse(a *atom.Atom) atom.Response {
	switch a.Type {
	case atom.TypeMCQ:
		return atom.Response{Option: 0, TimeMs: 4000}
	default:
		return atom.Response{Text: "no idea", TimeMs: 4000}
	}
}

func TestNextItemStableUntilResolved(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	first, err := s.NextItem()
	if err != nil {
		t.Fatalf("NextItem: %v", err)
	}
	again, _ := s.NextItem()
	if first != again {
		t.Fatal("NextItem must return the same item until RecordResponse")
	}

	if _, err := s.RecordResponse(context.Background(), correctResponse(first.Atom)); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	next, err := s.NextItem()
	if err != nil {
		t.Fatalf("NextItem after answer: %v", err)
	}
	if next == first {
		t.Fatal("a correct answer must advance the queue")
	}
}

func TestCorrectAnswerUpdatesMastery(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	it, _ := s.NextItem()
	out, err := s.RecordResponse(context.Background(), correctResponse(it.Atom))
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if !out.Result.Correct {
		t.Fatal("fixture answer should grade correct")
	}
	if out.Diagnosis != nil {
		t.Fatal("correct answers are never diagnosed")
	}
	if out.Mastery == nil || out.Mastery.ReviewCount != 1 {
		t.Fatalf("mastery = %+v, want one review recorded", out.Mastery)
	}
}

func TestFailureSplicesRemediationBeforeFailedItem(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	failed, _ := s.NextItem()
	out, err := s.RecordResponse(context.Background(), wrongResponse(failed.Atom))
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if out.Result.Correct {
		t.Fatal("fixture answer should grade wrong")
	}
	if out.Diagnosis == nil {
		t.Fatal("a miss must produce a diagnosis")
	}
	// Without latency or PSI evidence the conservative default applies.
	if out.Diagnosis.Mode != diagnosis.ModeRetrieval {
		t.Fatalf("mode = %s, want RETRIEVAL", out.Diagnosis.Mode)
	}
	if out.Struggle == nil || out.Struggle.Dynamic <= 0 {
		t.Fatalf("struggle = %+v, want raised dynamic weight", out.Struggle)
	}
	if out.InsertedItems == 0 {
		t.Fatal("remediation exercises should be spliced in")
	}

	// Every spliced item is served before the failed one comes back.
	sawFailed := false
	for i := 0; i < out.InsertedItems; i++ {
		it, err := s.NextItem()
		if err != nil {
			t.Fatalf("NextItem: %v", err)
		}
		if it.Atom.ID == failed.Atom.ID {
			sawFailed = true
			break
		}
		if it.Origin != OriginRemediation {
			t.Fatalf("spliced item origin = %s, want remediation", it.Origin)
		}
		if it.ConceptID != failed.ConceptID {
			t.Fatalf("remediation concept = %s, want %s", it.ConceptID, failed.ConceptID)
		}
		if _, err := s.RecordResponse(context.Background(), correctResponse(it.Atom)); err != nil {
			t.Fatalf("RecordResponse: %v", err)
		}
	}
	if sawFailed {
		t.Fatal("failed item re-served before its remediation finished")
	}
	it, err := s.NextItem()
	if err != nil {
		t.Fatalf("NextItem: %v", err)
	}
	if it.Atom.ID != failed.Atom.ID {
		t.Fatalf("after remediation = %s, want the failed %s", it.Atom.ID, failed.Atom.ID)
	}
}

func TestFailedRemediationItemDoesNotRecurse(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	failed, _ := s.NextItem()
	out, _ := s.RecordResponse(context.Background(), wrongResponse(failed.Atom))
	if out.InsertedItems == 0 {
		t.Fatal("setup: expected a splice")
	}

	rem, _ := s.NextItem()
	if rem.Origin != OriginRemediation {
		t.Fatalf("origin = %s, want remediation", rem.Origin)
	}
	before := s.Remaining()
	out2, err := s.RecordResponse(context.Background(), wrongResponse(rem.Atom))
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if out2.InsertedItems != 0 {
		t.Fatal("failed remediation must not splice more remediation")
	}
	if s.Remaining() != before-1 {
		t.Fatalf("remaining = %d, want %d", s.Remaining(), before-1)
	}
}

func TestFailureBacktracksUnmasteredPrerequisites(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	// Serve an item of the gated concept directly; its prerequisite has
	// zero mastery, so a miss must splice remediation for it.
	d1 := s.atoms["decimals"][0]
	s.queue = NewQueue([]*Item{{Atom: d1, ConceptID: "decimals", Origin: OriginQueue}})
	s.current = nil

	it, _ := s.NextItem()
	out, err := s.RecordResponse(context.Background(), wrongResponse(it.Atom))
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if len(out.Backtracked) != 1 || out.Backtracked[0] != "fractions" {
		t.Fatalf("backtracked = %v, want [fractions]", out.Backtracked)
	}

	next, _ := s.NextItem()
	if next.Origin != OriginBacktrack || next.ConceptID != "fractions" {
		t.Fatalf("next = %+v, want a fractions backtrack item", next)
	}
	if next.Depth != 1 {
		t.Fatalf("depth = %d, want 1", next.Depth)
	}
}

func TestFatigueSuggestsBreakWithoutSplice(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)
	s.SetFatigue(diagnosis.FatigueVector{Physical: 0.8, Cognitive: 0.8, Motivational: 0.8})
	s.served = 15 // deep enough into the session for fatigue eligibility

	it, _ := s.NextItem()
	out, err := s.RecordResponse(context.Background(), wrongResponse(it.Atom))
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if out.Diagnosis.Mode != diagnosis.ModeFatigue {
		t.Fatalf("mode = %s, want FATIGUE", out.Diagnosis.Mode)
	}
	if !out.SuggestBreak {
		t.Fatal("fatigue must suggest a break")
	}
	if out.InsertedItems != 0 {
		t.Fatal("fatigue prescribes rest, not more exercises")
	}

	next, _ := s.NextItem()
	if next == it {
		t.Fatal("the missed item should not loop when nothing was spliced")
	}
}

func TestBreakResetsFatigueEligibility(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)
	s.SetFatigue(diagnosis.FatigueVector{Physical: 0.8, Cognitive: 0.8, Motivational: 0.8})
	s.served = 15
	s.TakeBreak()

	it, _ := s.NextItem()
	out, _ := s.RecordResponse(context.Background(), wrongResponse(it.Atom))
	if out.Diagnosis.Mode == diagnosis.ModeFatigue {
		t.Fatal("post-break grace period must suppress the fatigue diagnosis")
	}
}

func TestTestingPhaseRecordsQuizAttempts(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	// Four unscaffolded correct results drive the concept to testing.
	conceptID := "fractions"
	for i := 0; i < 4; i++ {
		s.scaffold.RecordResult(conceptID, true, false)
	}
	if got := s.scaffold.Phase(conceptID); got != PhaseTesting {
		t.Fatalf("phase = %v, want testing", got)
	}

	// The next answer on that concept lands on the quiz channel.
	a := s.atoms[conceptID][0]
	s.queue = NewQueue([]*Item{{Atom: a, ConceptID: conceptID, Origin: OriginQueue}})
	s.current = nil
	it, _ := s.NextItem()
	out, err := s.RecordResponse(context.Background(), correctResponse(it.Atom))
	if err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	if len(out.Mastery.QuizScores) == 0 {
		t.Fatal("testing-phase answers must record quiz scores")
	}
}

func TestHintRespectsPhaseBudget(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	it, _ := s.NextItem()
	it.Atom.Hints = []string{"think halves", "common denominator"}

	// Teaching phase: every authored hint is available.
	if h, ok := s.Hint(); !ok || h != "think halves" {
		t.Fatalf("first hint = %q, %v", h, ok)
	}
	if h, ok := s.Hint(); !ok || h != "common denominator" {
		t.Fatalf("second hint = %q, %v", h, ok)
	}
	if _, ok := s.Hint(); ok {
		t.Fatal("authored hints exhausted, expected no third hint")
	}

	// Testing phase: hints are withheld entirely.
	for i := 0; i < 4; i++ {
		s.scaffold.RecordResult(it.ConceptID, true, false)
	}
	if _, ok := s.Hint(); ok {
		t.Fatal("testing phase must not serve hints")
	}
}

func TestTypeQuotasSwapAmongTiesOnly(t *testing.T) {
	s := newTestScheduler(t)
	s.cfg.TypeQuotas = map[atom.Type]int{atom.TypeFlashcard: 1}

	byAtom := map[string]*Item{
		"x1": {Atom: &atom.Atom{ID: "x1", Type: atom.TypeFlashcard}},
		"x2": {Atom: &atom.Atom{ID: "x2", Type: atom.TypeFlashcard}},
		"x3": {Atom: &atom.Atom{ID: "x3", Type: atom.TypeMCQ}},
		"x4": {Atom: &atom.Atom{ID: "x4", Type: atom.TypeFlashcard}},
	}
	ranked := []priority.Candidate{
		{AtomID: "x1", Score: 0.8},
		{AtomID: "x2", Score: 0.5}, // over quota, tied with x3
		{AtomID: "x3", Score: 0.5},
		{AtomID: "x4", Score: 0.3}, // over quota, no tied alternative
	}

	out := s.applyTypeQuotas(ranked, byAtom)
	want := []string{"x1", "x3", "x2", "x4"}
	for i, id := range want {
		if out[i].AtomID != id {
			t.Fatalf("out[%d] = %s, want %s (full order %v)", i, out[i].AtomID, id, out)
		}
	}
}

func TestStruggleModeOutranksStandardOnTies(t *testing.T) {
	s := newTestScheduler(t)

	// Push the fractions topic over the struggle focus threshold.
	w, err := s.deps.Ledger.Get("arithmetic", "fractions")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	w.Dynamic = 0.6

	concept, _ := s.deps.Graph.Concept("fractions")
	cm, _ := s.deps.Tracker.Get("fractions")
	score, severity := s.scoreConcept(concept, cm, 0.2, time.Now())
	if severity != 1 {
		t.Fatalf("severity = %d, want struggle class 1", severity)
	}
	// weight·3 + dynamic·2 + (1-R)·1
	want := 0.2*3 + 0.6*2 + 0.8*1
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

func TestSessionSummary(t *testing.T) {
	s := newTestScheduler(t)
	mustStart(t, s)

	it, _ := s.NextItem()
	if _, err := s.RecordResponse(context.Background(), correctResponse(it.Atom)); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}
	it, _ = s.NextItem()
	if _, err := s.RecordResponse(context.Background(), wrongResponse(it.Atom)); err != nil {
		t.Fatalf("RecordResponse: %v", err)
	}

	sum := s.End(context.Background())
	if sum.SessionID == "" {
		t.Fatal("summary must carry the session id")
	}
	if sum.ItemsServed != 2 || sum.CorrectAnswers != 1 {
		t.Fatalf("summary = %+v, want 2 served / 1 correct", sum)
	}
}
