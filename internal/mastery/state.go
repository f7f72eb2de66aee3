package mastery

import (
	"math"
	"time"
)

const (
	// ReviewWeight and QuizWeight combine the two mastery estimates.
	// combined = 0.625*review + 0.375*quiz, recomputed on every update.
	ReviewWeight = 0.625
	QuizWeight   = 0.375

	// QuizWindow is how many recent quiz attempts are kept; quiz mastery
	// is the best of these.
	QuizWindow = 3

	// ReviewCountCap caps the review-count weighting of review mastery.
	ReviewCountCap = 20

	// DefaultStabilityDays is the initial memory stability S for the
	// retrievability model R(t) = e^(-t/S).
	DefaultStabilityDays = 1.0

	// StabilityGrowth scales how much a successful review extends S.
	StabilityGrowth = 0.9

	// MaxStabilityDays bounds stability growth.
	MaxStabilityDays = 365.0
)

// ConceptMastery is the per-concept mastery record for a learner.
type ConceptMastery struct {
	ConceptID string

	// ReviewMastery estimates long-term retention from review history,
	// as of the last update.
	ReviewMastery float64
	// QuizMastery is the best of the last QuizWindow quiz scores.
	QuizMastery float64
	// CombinedMastery is always ReviewWeight*ReviewMastery +
	// QuizWeight*QuizMastery. Never written independently of its inputs.
	CombinedMastery float64

	// StabilityDays is the current memory stability S in days.
	StabilityDays float64
	ReviewCount   int
	LastReviewAt  time.Time

	QuizScores []float64
	LastQuizAt time.Time

	// CorrectExposures counts review/quiz signals scored >= 0.5. The
	// diagnosis engine uses it to tell "never encoded" from "stored but
	// inaccessible".
	CorrectExposures int

	FirstSeenAt time.Time
}

// Retrievability returns R(t) = e^(-t/S) for the time elapsed since the
// last review. A concept never reviewed has zero retrievability.
func (cm *ConceptMastery) Retrievability(now time.Time) float64 {
	if cm.ReviewCount == 0 || cm.StabilityDays <= 0 {
		return 0
	}
	elapsedDays := now.Sub(cm.LastReviewAt).Hours() / 24.0
	if elapsedDays < 0 {
		elapsedDays = 0
	}
	return math.Exp(-elapsedDays / cm.StabilityDays)
}

// reviewWeight is the confidence factor min(review_count, cap)/cap applied
// to retrievability. A concept reviewed once decays the same way as one
// reviewed twenty times, but we trust the estimate far less.
func (cm *ConceptMastery) reviewWeight() float64 {
	n := cm.ReviewCount
	if n > ReviewCountCap {
		n = ReviewCountCap
	}
	return float64(n) / float64(ReviewCountCap)
}

// recompute refreshes the derived fields from their inputs.
func (cm *ConceptMastery) recompute(now time.Time) {
	cm.ReviewMastery = clamp01(cm.Retrievability(now) * cm.reviewWeight())

	best := 0.0
	for _, s := range cm.QuizScores {
		if s > best {
			best = s
		}
	}
	cm.QuizMastery = clamp01(best)

	cm.CombinedMastery = clamp01(ReviewWeight*cm.ReviewMastery + QuizWeight*cm.QuizMastery)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
