package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestEventRepo_CrossTypeOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendInteraction(ctx, InteractionEventData{
		SessionID: "s1", AtomID: "a1", ConceptID: "c1",
		AtomType: "flashcard", Correct: false, Attempt: 1, Origin: "origin",
	}); err != nil {
		t.Fatalf("append interaction: %v", err)
	}
	if err := repo.AppendDiagnosis(ctx, DiagnosisEventData{
		SessionID: "s1", ConceptID: "c1", FailureMode: "RETRIEVAL",
		Confidence: 0.5, Rule: "retrieval-fallback",
	}); err != nil {
		t.Fatalf("append diagnosis: %v", err)
	}
	if err := repo.AppendMasteryEvent(ctx, MasteryEventData{
		ConceptID: "c1", ReviewMastery: 0.4, QuizMastery: 0.2,
		CombinedMastery: 0.325, Trigger: "review", SessionID: "s1",
	}); err != nil {
		t.Fatalf("append mastery: %v", err)
	}

	// The shared counter must give each event a distinct, increasing
	// sequence regardless of which table it landed in.
	ie, err := s.Client().InteractionEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query interaction: %v", err)
	}
	de, err := s.Client().DiagnosisEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query diagnosis: %v", err)
	}
	me, err := s.Client().MasteryEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query mastery: %v", err)
	}

	if !(ie.Sequence < de.Sequence && de.Sequence < me.Sequence) {
		t.Errorf("sequences not increasing across tables: %d, %d, %d",
			ie.Sequence, de.Sequence, me.Sequence)
	}
}

func TestEventRepo_RecentErrors(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, answer := range []string{"meiosis", "binary fission", "mitosis"} {
		correct := answer == "mitosis"
		err := repo.AppendInteraction(ctx, InteractionEventData{
			SessionID: "s1", AtomID: "a1", ConceptID: "c1",
			AtomType: "mcq", Correct: correct, LearnerAnswer: answer,
			Attempt: i + 1, Origin: "origin",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	errs, err := repo.RecentErrors(ctx, "c1", 5)
	if err != nil {
		t.Fatalf("recent errors: %v", err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2 (correct answers excluded)", len(errs))
	}
}

func TestEventRepo_ConceptAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	acc, err := repo.ConceptAccuracy(ctx, "c1")
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("empty accuracy = %v, want 0", acc)
	}

	for _, correct := range []bool{true, true, false, true} {
		err := repo.AppendInteraction(ctx, InteractionEventData{
			SessionID: "s1", AtomID: "a1", ConceptID: "c1",
			AtomType: "flashcard", Correct: correct, Attempt: 1, Origin: "origin",
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	acc, err = repo.ConceptAccuracy(ctx, "c1")
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestEventRepo_StruggleHistory(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	entries := []StruggleEventData{
		{Module: "algebra", Trigger: "diagnosis", FailureMode: "RETRIEVAL", Static: 0.3, Dynamic: 0.2},
		{Module: "algebra", Section: "quadratics", Trigger: "diagnosis", FailureMode: "ENCODING", Static: 0.3, Dynamic: 0.4},
		{Module: "geometry", Trigger: "decay", Static: 0.1, Dynamic: 0.05},
	}
	for i, e := range entries {
		if err := repo.AppendStruggleEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	hist, err := repo.StruggleHistory(ctx, "algebra", QueryOpts{})
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 {
		t.Fatalf("got %d entries, want 2", len(hist))
	}
	// Oldest first.
	if hist[0].Dynamic != 0.2 || hist[1].Dynamic != 0.4 {
		t.Errorf("history out of order: %+v", hist)
	}

	limited, err := repo.StruggleHistory(ctx, "algebra", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 {
		t.Errorf("limit ignored: got %d entries", len(limited))
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Mastery: []MasteryRecord{
				{ConceptID: "c1", ReviewMastery: 0.8, QuizMastery: 0.6, CombinedMastery: 0.725},
			},
			Struggle: []StruggleRecord{
				{Module: "algebra", Static: 0.3, Dynamic: 0.5},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if len(snap.Data.Mastery) != 1 || snap.Data.Mastery[0].CombinedMastery != 0.725 {
		t.Errorf("mastery round-trip failed: %+v", snap.Data.Mastery)
	}
	if len(snap.Data.Struggle) != 1 || snap.Data.Struggle[0].Dynamic != 0.5 {
		t.Errorf("struggle round-trip failed: %+v", snap.Data.Struggle)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestWaiverRepo_SaveAllRevoke(t *testing.T) {
	s := openTestStore(t)
	repo := s.WaiverRepo()
	ctx := context.Background()

	w := WaiverRecord{
		SourceID:  "c1",
		TargetID:  "c2",
		Type:      "manual",
		Note:      "covered in prior coursework",
		GrantedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := repo.Save(ctx, w); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Re-granting the same edge replaces, not duplicates.
	w.Type = "diagnostic"
	if err := repo.Save(ctx, w); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("got %d waivers, want 1", len(all))
	}
	if all[0].Type != "diagnostic" {
		t.Errorf("type = %q, want diagnostic", all[0].Type)
	}

	if err := repo.Revoke(ctx, "c1", "c2"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	all, err = repo.All(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("got %d waivers after revoke, want 0", len(all))
	}
}
