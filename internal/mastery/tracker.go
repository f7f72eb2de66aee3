package mastery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/okanta/memloop/internal/store"
)

// ErrNotFound is returned for concept IDs outside the registered curriculum.
var ErrNotFound = errors.New("unknown concept")

// FailureShrink is the stability multiplier applied on a failed review.
const FailureShrink = 0.5

// ReviewSignal reports the outcome of one review exposure.
type ReviewSignal struct {
	// Score in [0,1]; out-of-range values are clamped, not rejected.
	Score float64
	// At is the authoritative event timestamp. Replays and out-of-order
	// deliveries resolve last-write-wins on this field.
	At time.Time
}

// QuizSignal reports the outcome of one quiz attempt.
type QuizSignal struct {
	Score float64
	At    time.Time
}

// Tracker maintains per-concept mastery state for a single learner.
// Sessions are single-threaded per learner, so the tracker needs no
// internal locking; persistence writes go through the event repo.
type Tracker struct {
	known     map[string]bool
	state     map[string]*ConceptMastery
	eventRepo store.EventRepo
	sessionID string
}

// NewTracker creates a tracker over the given curriculum concept set.
// eventRepo may be nil in tests; no events are recorded then.
func NewTracker(conceptIDs []string, eventRepo store.EventRepo) *Tracker {
	known := make(map[string]bool, len(conceptIDs))
	for _, id := range conceptIDs {
		known[id] = true
	}
	return &Tracker{
		known:     known,
		state:     make(map[string]*ConceptMastery),
		eventRepo: eventRepo,
	}
}

// SetSessionID tags subsequent mastery events with the active session.
func (t *Tracker) SetSessionID(id string) { t.sessionID = id }

// Get returns the mastery record for a concept, creating a zero-state
// record on first access. Unknown concepts return ErrNotFound.
func (t *Tracker) Get(conceptID string) (*ConceptMastery, error) {
	if !t.known[conceptID] {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, conceptID)
	}
	cm, ok := t.state[conceptID]
	if !ok {
		cm = &ConceptMastery{
			ConceptID:     conceptID,
			StabilityDays: DefaultStabilityDays,
			FirstSeenAt:   time.Now(),
		}
		t.state[conceptID] = cm
	}
	return cm, nil
}

// Update applies review and/or quiz signals to a concept and recomputes
// the derived mastery fields. Either signal may be nil. A signal whose
// timestamp does not advance the corresponding field's last-applied
// timestamp is skipped, which makes replayed events idempotent.
func (t *Tracker) Update(ctx context.Context, conceptID string, review *ReviewSignal, quiz *QuizSignal) (*ConceptMastery, error) {
	cm, err := t.Get(conceptID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trigger := ""

	if review != nil && review.At.After(cm.LastReviewAt) {
		t.applyReview(cm, review)
		now = laterOf(now, review.At)
		trigger = "review"
	}
	if quiz != nil && quiz.At.After(cm.LastQuizAt) {
		t.applyQuiz(cm, quiz)
		now = laterOf(now, quiz.At)
		if trigger == "" {
			trigger = "quiz"
		} else {
			trigger = "review+quiz"
		}
	}

	cm.recompute(now)

	if trigger != "" && t.eventRepo != nil {
		_ = t.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
			ConceptID:       conceptID,
			ReviewMastery:   cm.ReviewMastery,
			QuizMastery:     cm.QuizMastery,
			CombinedMastery: cm.CombinedMastery,
			Trigger:         trigger,
			SessionID:       t.sessionID,
		})
	}

	return cm, nil
}

func (t *Tracker) applyReview(cm *ConceptMastery, sig *ReviewSignal) {
	score := clamp01(sig.Score)

	if cm.ReviewCount == 0 {
		cm.StabilityDays = DefaultStabilityDays
	} else if score >= 0.5 {
		cm.StabilityDays *= 1 + StabilityGrowth*score
		if cm.StabilityDays > MaxStabilityDays {
			cm.StabilityDays = MaxStabilityDays
		}
	} else {
		cm.StabilityDays *= FailureShrink
		if cm.StabilityDays < DefaultStabilityDays {
			cm.StabilityDays = DefaultStabilityDays
		}
	}

	cm.ReviewCount++
	cm.LastReviewAt = sig.At
	if score >= 0.5 {
		cm.CorrectExposures++
	}
}

func (t *Tracker) applyQuiz(cm *ConceptMastery, sig *QuizSignal) {
	score := clamp01(sig.Score)
	cm.QuizScores = append(cm.QuizScores, score)
	if len(cm.QuizScores) > QuizWindow {
		cm.QuizScores = cm.QuizScores[len(cm.QuizScores)-QuizWindow:]
	}
	cm.LastQuizAt = sig.At
	if score >= 0.5 {
		cm.CorrectExposures++
	}
}

// CombinedMastery implements conceptgraph.MasteryReader. Concepts without
// any interaction history (or unknown IDs) score zero.
func (t *Tracker) CombinedMastery(conceptID string) float64 {
	cm, ok := t.state[conceptID]
	if !ok {
		return 0
	}
	return cm.CombinedMastery
}

// PriorCorrectExposure reports how many prior successful exposures a
// concept has, used by the diagnosis engine to split encoding failures
// (never stored) from retrieval failures (stored but inaccessible).
func (t *Tracker) PriorCorrectExposure(conceptID string) int {
	cm, ok := t.state[conceptID]
	if !ok {
		return 0
	}
	return cm.CorrectExposures
}

// All returns every tracked mastery record, for stats and snapshots.
func (t *Tracker) All() map[string]*ConceptMastery {
	out := make(map[string]*ConceptMastery, len(t.state))
	for id, cm := range t.state {
		out[id] = cm
	}
	return out
}

// Restore loads previously persisted state, replacing any in-memory record
// for the same concept. Unknown concepts are skipped.
func (t *Tracker) Restore(records []*ConceptMastery) {
	for _, cm := range records {
		if cm == nil || !t.known[cm.ConceptID] {
			continue
		}
		t.state[cm.ConceptID] = cm
	}
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
