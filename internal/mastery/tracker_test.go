package mastery

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func newTestTracker(ids ...string) *Tracker {
	return NewTracker(ids, nil)
}

func TestUpdate_UnknownConcept(t *testing.T) {
	tr := newTestTracker("a")
	now := time.Now()
	_, err := tr.Update(context.Background(), "ghost", &ReviewSignal{Score: 1, At: now}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_CombinedMasteryInvariant(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	now := time.Now()

	// A spread of review/quiz updates; after each the combined formula
	// must hold exactly and stay in [0,1].
	signals := []struct {
		review *ReviewSignal
		quiz   *QuizSignal
	}{
		{review: &ReviewSignal{Score: 1.0, At: now}},
		{quiz: &QuizSignal{Score: 0.4, At: now.Add(time.Minute)}},
		{review: &ReviewSignal{Score: 0.7, At: now.Add(2 * time.Minute)}},
		{quiz: &QuizSignal{Score: 1.7, At: now.Add(3 * time.Minute)}},  // clamps to 1
		{quiz: &QuizSignal{Score: -0.3, At: now.Add(4 * time.Minute)}}, // clamps to 0
	}

	for i, sig := range signals {
		cm, err := tr.Update(ctx, "a", sig.review, sig.quiz)
		if err != nil {
			t.Fatalf("update %d: %v", i, err)
		}
		want := ReviewWeight*cm.ReviewMastery + QuizWeight*cm.QuizMastery
		if math.Abs(cm.CombinedMastery-want) > 1e-12 {
			t.Errorf("update %d: combined = %v, want %v", i, cm.CombinedMastery, want)
		}
		if cm.CombinedMastery < 0 || cm.CombinedMastery > 1 {
			t.Errorf("update %d: combined %v out of [0,1]", i, cm.CombinedMastery)
		}
	}
}

func TestUpdate_QuizMasteryIsBestOfLastThree(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	base := time.Now()

	scores := []float64{0.9, 0.3, 0.4, 0.5}
	for i, s := range scores {
		if _, err := tr.Update(ctx, "a", nil, &QuizSignal{Score: s, At: base.Add(time.Duration(i) * time.Minute)}); err != nil {
			t.Fatal(err)
		}
	}

	cm, _ := tr.Get("a")
	// The 0.9 has rolled out of the window; best of {0.3, 0.4, 0.5} = 0.5.
	if cm.QuizMastery != 0.5 {
		t.Errorf("quiz mastery = %v, want 0.5 (best of last 3)", cm.QuizMastery)
	}
}

func TestUpdate_ReplayedEventIsIdempotent(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	at := time.Now()

	first, err := tr.Update(ctx, "a", &ReviewSignal{Score: 0.8, At: at}, nil)
	if err != nil {
		t.Fatal(err)
	}
	countAfterFirst := first.ReviewCount

	// Replaying the same timestamped event must not advance state.
	replayed, err := tr.Update(ctx, "a", &ReviewSignal{Score: 0.8, At: at}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if replayed.ReviewCount != countAfterFirst {
		t.Errorf("replay bumped review count: %d -> %d", countAfterFirst, replayed.ReviewCount)
	}
}

func TestUpdate_OutOfOrderDeliveryIgnoresStale(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	now := time.Now()

	if _, err := tr.Update(ctx, "a", nil, &QuizSignal{Score: 0.9, At: now}); err != nil {
		t.Fatal(err)
	}
	// A retried event with an older authoritative timestamp arrives late.
	cm, err := tr.Update(ctx, "a", nil, &QuizSignal{Score: 0.1, At: now.Add(-time.Hour)})
	if err != nil {
		t.Fatal(err)
	}
	if cm.QuizMastery != 0.9 {
		t.Errorf("stale event overwrote newer state: quiz mastery = %v", cm.QuizMastery)
	}
}

func TestRetrievability_DecaysWithTime(t *testing.T) {
	cm := &ConceptMastery{ConceptID: "a", StabilityDays: 7, ReviewCount: 1, LastReviewAt: time.Now()}

	rNow := cm.Retrievability(cm.LastReviewAt)
	rWeek := cm.Retrievability(cm.LastReviewAt.AddDate(0, 0, 7))

	if rNow != 1.0 {
		t.Errorf("retrievability at review time = %v, want 1.0", rNow)
	}
	// R(7d, S=7d) = e^-1.
	if math.Abs(rWeek-math.Exp(-1)) > 1e-9 {
		t.Errorf("retrievability after one stability = %v, want e^-1", rWeek)
	}
}

func TestRetrievability_ZeroBeforeFirstReview(t *testing.T) {
	cm := &ConceptMastery{ConceptID: "a", StabilityDays: DefaultStabilityDays}
	if r := cm.Retrievability(time.Now()); r != 0 {
		t.Errorf("unseen concept retrievability = %v, want 0", r)
	}
}

func TestUpdate_ReviewCountWeightsReviewMastery(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	now := time.Now()

	cm, err := tr.Update(ctx, "a", &ReviewSignal{Score: 1.0, At: now}, nil)
	if err != nil {
		t.Fatal(err)
	}
	// One review of twenty needed for full confidence: weight 1/20.
	if cm.ReviewMastery > 1.0/float64(ReviewCountCap)+1e-9 {
		t.Errorf("single review should be weighted down to <= 1/%d, got %v", ReviewCountCap, cm.ReviewMastery)
	}
}

func TestUpdate_SuccessGrowsStabilityFailureShrinksIt(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	now := time.Now()

	if _, err := tr.Update(ctx, "a", &ReviewSignal{Score: 1.0, At: now}, nil); err != nil {
		t.Fatal(err)
	}
	cm, _ := tr.Get("a")
	s1 := cm.StabilityDays

	if _, err := tr.Update(ctx, "a", &ReviewSignal{Score: 1.0, At: now.Add(time.Hour)}, nil); err != nil {
		t.Fatal(err)
	}
	s2 := cm.StabilityDays
	if s2 <= s1 {
		t.Errorf("successful review should grow stability: %v -> %v", s1, s2)
	}

	if _, err := tr.Update(ctx, "a", &ReviewSignal{Score: 0.0, At: now.Add(2 * time.Hour)}, nil); err != nil {
		t.Fatal(err)
	}
	s3 := cm.StabilityDays
	if s3 >= s2 {
		t.Errorf("failed review should shrink stability: %v -> %v", s2, s3)
	}
}

func TestPriorCorrectExposure(t *testing.T) {
	tr := newTestTracker("a")
	ctx := context.Background()
	now := time.Now()

	if got := tr.PriorCorrectExposure("a"); got != 0 {
		t.Fatalf("fresh concept exposure = %d, want 0", got)
	}

	tr.Update(ctx, "a", &ReviewSignal{Score: 0.9, At: now}, nil)
	tr.Update(ctx, "a", nil, &QuizSignal{Score: 0.3, At: now.Add(time.Minute)}) // below 0.5, no credit
	tr.Update(ctx, "a", nil, &QuizSignal{Score: 0.8, At: now.Add(2 * time.Minute)})

	if got := tr.PriorCorrectExposure("a"); got != 2 {
		t.Errorf("exposure = %d, want 2", got)
	}
}

func TestCombinedMastery_UnseenIsZero(t *testing.T) {
	tr := newTestTracker("a")
	if m := tr.CombinedMastery("a"); m != 0 {
		t.Errorf("unseen mastery = %v, want 0", m)
	}
	if m := tr.CombinedMastery("ghost"); m != 0 {
		t.Errorf("unknown mastery = %v, want 0", m)
	}
}

func TestRestore_ReplacesState(t *testing.T) {
	tr := newTestTracker("a", "b")
	tr.Restore([]*ConceptMastery{
		{ConceptID: "a", CombinedMastery: 0.7},
		{ConceptID: "ghost", CombinedMastery: 0.9}, // outside curriculum, skipped
	})
	if m := tr.CombinedMastery("a"); m != 0.7 {
		t.Errorf("restored mastery = %v, want 0.7", m)
	}
	if m := tr.CombinedMastery("ghost"); m != 0 {
		t.Errorf("unknown concept restored anyway: %v", m)
	}
}
