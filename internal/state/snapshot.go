// Package state saves and restores the live learner engines through the
// store's snapshot table, so sessions start from the last known state
// without replaying the whole event log.
package state

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/mastery"
	"github.com/okanta/memloop/internal/store"
	"github.com/okanta/memloop/internal/struggle"
	"github.com/okanta/memloop/internal/telemetry"
)

// SnapshotVersion guards against restoring snapshots written by an
// incompatible layout.
const SnapshotVersion = 1

// DefaultKeep is how many snapshots Prune retains after a save.
const DefaultKeep = 10

// Engines bundles the stateful components a snapshot covers.
type Engines struct {
	LearnerID  string
	Tracker    *mastery.Tracker
	Ledger     *struggle.Ledger
	Normalizer *telemetry.Normalizer
	Confusion  *diagnosis.ConfusionTracker
}

// Capture serializes the engines into snapshot data.
func Capture(e Engines) store.SnapshotData {
	data := store.SnapshotData{Version: SnapshotVersion}

	if e.Tracker != nil {
		all := e.Tracker.All()
		ids := make([]string, 0, len(all))
		for id := range all {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			data.Mastery = append(data.Mastery, masteryToRecord(all[id]))
		}
	}

	if e.Ledger != nil {
		for _, w := range e.Ledger.All() {
			data.Struggle = append(data.Struggle, struggleToRecord(w))
		}
	}

	if e.Normalizer != nil && e.LearnerID != "" {
		if samples := e.Normalizer.ExportBaseline(e.LearnerID); len(samples) > 0 {
			data.Baselines = map[string][]float64{e.LearnerID: samples}
		}
	}

	if e.Confusion != nil {
		if psi := e.Confusion.Export(); len(psi) > 0 {
			data.Confusion = psi
		}
	}
	return data
}

// Save captures the engines, stamps the snapshot against the event
// stream, and prunes old snapshots.
func Save(ctx context.Context, s *store.Store, e Engines) error {
	seq, err := s.CurrentSequence(ctx)
	if err != nil {
		return fmt.Errorf("snapshot sequence: %w", err)
	}

	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data:      Capture(e),
	}
	repo := s.SnapshotRepo()
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	return repo.Prune(ctx, DefaultKeep)
}

// Restore loads the latest snapshot into the engines. A missing snapshot
// is not an error; the engines just start cold.
func Restore(ctx context.Context, repo store.SnapshotRepo, e Engines) error {
	snap, err := repo.Latest(ctx)
	if err != nil {
		return err
	}
	if snap == nil {
		return nil
	}
	if snap.Data.Version != SnapshotVersion {
		return fmt.Errorf("snapshot version %d not supported", snap.Data.Version)
	}

	if e.Tracker != nil && len(snap.Data.Mastery) > 0 {
		records := make([]*mastery.ConceptMastery, 0, len(snap.Data.Mastery))
		for _, r := range snap.Data.Mastery {
			records = append(records, recordToMastery(r))
		}
		e.Tracker.Restore(records)
	}

	if e.Ledger != nil && len(snap.Data.Struggle) > 0 {
		weights := make([]*struggle.Weight, 0, len(snap.Data.Struggle))
		for _, r := range snap.Data.Struggle {
			weights = append(weights, recordToStruggle(r))
		}
		e.Ledger.Restore(weights)
	}

	if e.Normalizer != nil {
		for learnerID, samples := range snap.Data.Baselines {
			e.Normalizer.RestoreBaseline(learnerID, samples)
		}
	}

	if e.Confusion != nil && len(snap.Data.Confusion) > 0 {
		e.Confusion.Restore(snap.Data.Confusion)
	}
	return nil
}

func masteryToRecord(cm *mastery.ConceptMastery) store.MasteryRecord {
	return store.MasteryRecord{
		ConceptID:        cm.ConceptID,
		ReviewMastery:    cm.ReviewMastery,
		QuizMastery:      cm.QuizMastery,
		CombinedMastery:  cm.CombinedMastery,
		StabilityDays:    cm.StabilityDays,
		ReviewCount:      cm.ReviewCount,
		QuizScores:       cm.QuizScores,
		CorrectExposures: cm.CorrectExposures,
		LastReviewAt:     timePtr(cm.LastReviewAt),
		LastQuizAt:       timePtr(cm.LastQuizAt),
		FirstSeenAt:      timePtr(cm.FirstSeenAt),
	}
}

func recordToMastery(r store.MasteryRecord) *mastery.ConceptMastery {
	return &mastery.ConceptMastery{
		ConceptID:        r.ConceptID,
		ReviewMastery:    r.ReviewMastery,
		QuizMastery:      r.QuizMastery,
		CombinedMastery:  r.CombinedMastery,
		StabilityDays:    r.StabilityDays,
		ReviewCount:      r.ReviewCount,
		QuizScores:       r.QuizScores,
		CorrectExposures: r.CorrectExposures,
		LastReviewAt:     timeVal(r.LastReviewAt),
		LastQuizAt:       timeVal(r.LastQuizAt),
		FirstSeenAt:      timeVal(r.FirstSeenAt),
	}
}

func struggleToRecord(w *struggle.Weight) store.StruggleRecord {
	return store.StruggleRecord{
		Module:          w.Module,
		Section:         w.Section,
		Static:          w.Static,
		Dynamic:         w.Dynamic,
		LastDiagnosisAt: timePtr(w.LastDiagnosisAt),
	}
}

func recordToStruggle(r store.StruggleRecord) *struggle.Weight {
	return &struggle.Weight{
		Module:          r.Module,
		Section:         r.Section,
		Static:          r.Static,
		Dynamic:         r.Dynamic,
		LastDiagnosisAt: timeVal(r.LastDiagnosisAt),
	}
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func timeVal(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
