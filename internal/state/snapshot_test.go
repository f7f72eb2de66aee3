package state

import (
	"context"
	"testing"
	"time"

	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/mastery"
	"github.com/okanta/memloop/internal/store"
	"github.com/okanta/memloop/internal/struggle"
	"github.com/okanta/memloop/internal/telemetry"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seededEngines(t *testing.T, s *store.Store) Engines {
	t.Helper()
	ctx := context.Background()

	tracker := mastery.NewTracker([]string{"fractions", "decimals"}, s.EventRepo())
	if _, err := tracker.Update(ctx, "fractions", &mastery.ReviewSignal{Score: 1.0, At: time.Now()}, nil); err != nil {
		t.Fatalf("seed mastery: %v", err)
	}
	if _, err := tracker.Update(ctx, "fractions", nil, &mastery.QuizSignal{Score: 0.8, At: time.Now()}); err != nil {
		t.Fatalf("seed quiz: %v", err)
	}

	ledger := struggle.NewLedger(s.EventRepo())
	ledger.Register("arithmetic", "fractions", 0.3)
	if _, err := ledger.ApplyDiagnosis(ctx, "arithmetic", "fractions", diagnosis.ModeRetrieval, 0.2); err != nil {
		t.Fatalf("seed struggle: %v", err)
	}

	norm := telemetry.NewNormalizer()
	for i := 0; i < 12; i++ {
		norm.Normalize(telemetry.Event{LearnerID: "default", ResponseTimeMs: 4000 + i*100, Correct: true})
	}

	conf := diagnosis.NewConfusionTracker()
	conf.RegisterCluster("fractions-decimals", []string{"fractions", "decimals"})
	conf.Record("fractions", false)

	return Engines{
		LearnerID:  "default",
		Tracker:    tracker,
		Ledger:     ledger,
		Normalizer: norm,
		Confusion:  conf,
	}
}

func TestCaptureIncludesAllEngines(t *testing.T) {
	s := openTestStore(t)
	e := seededEngines(t, s)

	data := Capture(e)
	if data.Version != SnapshotVersion {
		t.Fatalf("version = %d, want %d", data.Version, SnapshotVersion)
	}
	if len(data.Mastery) != 1 {
		t.Fatalf("mastery records = %d, want 1 (untouched concepts omitted)", len(data.Mastery))
	}
	if data.Mastery[0].ConceptID != "fractions" {
		t.Errorf("mastery concept = %q", data.Mastery[0].ConceptID)
	}
	if data.Mastery[0].LastReviewAt == nil {
		t.Error("expected non-nil LastReviewAt")
	}
	if len(data.Struggle) != 1 {
		t.Fatalf("struggle records = %d, want 1", len(data.Struggle))
	}
	if data.Struggle[0].Dynamic <= 0 {
		t.Errorf("dynamic weight = %v, want > 0", data.Struggle[0].Dynamic)
	}
	if len(data.Baselines["default"]) != 12 {
		t.Errorf("baseline samples = %d, want 12", len(data.Baselines["default"]))
	}
	if _, ok := data.Confusion["fractions-decimals"]; !ok {
		t.Error("expected confusion cluster in snapshot")
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	e := seededEngines(t, s)

	if err := Save(ctx, s, e); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := Engines{
		LearnerID:  "default",
		Tracker:    mastery.NewTracker([]string{"fractions", "decimals"}, s.EventRepo()),
		Ledger:     struggle.NewLedger(s.EventRepo()),
		Normalizer: telemetry.NewNormalizer(),
		Confusion:  diagnosis.NewConfusionTracker(),
	}
	// Cluster membership is curriculum data, not learner state; the
	// snapshot only carries the indices.
	fresh.Confusion.RegisterCluster("fractions-decimals", []string{"fractions", "decimals"})

	if err := Restore(ctx, s.SnapshotRepo(), fresh); err != nil {
		t.Fatalf("restore: %v", err)
	}

	orig, err := e.Tracker.Get("fractions")
	if err != nil {
		t.Fatalf("get original: %v", err)
	}
	got, err := fresh.Tracker.Get("fractions")
	if err != nil {
		t.Fatalf("get restored: %v", err)
	}
	if got.CombinedMastery != orig.CombinedMastery {
		t.Errorf("combined mastery = %v, want %v", got.CombinedMastery, orig.CombinedMastery)
	}
	if got.ReviewCount != orig.ReviewCount {
		t.Errorf("review count = %v, want %v", got.ReviewCount, orig.ReviewCount)
	}
	if got.CorrectExposures != orig.CorrectExposures {
		t.Errorf("correct exposures = %v, want %v", got.CorrectExposures, orig.CorrectExposures)
	}

	ow, err := e.Ledger.Get("arithmetic", "fractions")
	if err != nil {
		t.Fatalf("get original weight: %v", err)
	}
	gw, err := fresh.Ledger.Get("arithmetic", "fractions")
	if err != nil {
		t.Fatalf("get restored weight: %v", err)
	}
	if gw.Dynamic != ow.Dynamic || gw.Static != ow.Static {
		t.Errorf("weight = %+v, want %+v", gw, ow)
	}

	if fresh.Normalizer.SampleCount("default") != 12 {
		t.Errorf("restored samples = %d, want 12", fresh.Normalizer.SampleCount("default"))
	}

	op, _ := e.Confusion.Index("fractions")
	gp, ok := fresh.Confusion.Index("fractions")
	if !ok || gp != op {
		t.Errorf("psi = %v (%v), want %v", gp, ok, op)
	}
}

func TestRestoreNoSnapshotIsNoop(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	e := Engines{
		LearnerID: "default",
		Tracker:   mastery.NewTracker([]string{"fractions"}, s.EventRepo()),
	}
	if err := Restore(ctx, s.SnapshotRepo(), e); err != nil {
		t.Fatalf("restore with no snapshot: %v", err)
	}
	if len(e.Tracker.All()) != 0 {
		t.Errorf("tracker state = %d entries, want 0", len(e.Tracker.All()))
	}
}

func TestRestoreRejectsUnknownVersion(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      store.SnapshotData{Version: 99},
	}
	if err := s.SnapshotRepo().Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := Restore(ctx, s.SnapshotRepo(), Engines{}); err == nil {
		t.Fatal("expected version error")
	}
}

func TestSavePrunesOldSnapshots(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	e := seededEngines(t, s)

	for i := 0; i < DefaultKeep+3; i++ {
		if err := Save(ctx, s, e); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	latest, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil {
		t.Fatal("expected a snapshot after saves")
	}
}
