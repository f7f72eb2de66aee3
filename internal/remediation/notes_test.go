package remediation

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/llm"
)

func validNoteJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Mitosis vs Meiosis",
		"body": "Mitosis produces two identical diploid cells; meiosis produces four haploid cells. The key difference is the second division in meiosis.",
		"contrasted_with": ["meiosis"]
	}`)
}

func elaborativeInput() NoteInput {
	s, _ := Route(diagnosis.ModeDiscrimination)
	return NoteInput{
		ConceptID:    "bio.mitosis",
		ConceptName:  "Mitosis",
		Module:       "cell-biology",
		Strategy:     s,
		RecentErrors: []string{"chose meiosis when asked which process produces identical cells"},
		Confusables:  []string{"meiosis"},
	}
}

func waitForNote(t *testing.T, svc *NoteService) (*Note, bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if note, ok := svc.ConsumeNote(); ok {
			return note, true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil, false
}

func TestNoteService_GeneratesNote(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNoteJSON()})
	svc := NewNoteService(mock, DefaultNoteConfig())

	svc.RequestNote(t.Context(), elaborativeInput())

	note, ok := waitForNote(t, svc)
	if !ok || note == nil {
		t.Fatal("expected note to be generated")
	}
	if note.ConceptID != "bio.mitosis" {
		t.Errorf("concept id = %q", note.ConceptID)
	}
	if note.Type != NoteContrastive {
		t.Errorf("note type = %q, want contrastive", note.Type)
	}
	if note.Title == "" || note.Body == "" {
		t.Error("expected non-empty title and body")
	}
	if len(note.ContrastedWith) != 1 || note.ContrastedWith[0] != "meiosis" {
		t.Errorf("contrasted_with = %v", note.ContrastedWith)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "remediation-note" {
		t.Error("expected schema name 'remediation-note'")
	}
}

func TestNoteService_ConsumeClearsSlot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNoteJSON()})
	svc := NewNoteService(mock, DefaultNoteConfig())

	svc.RequestNote(t.Context(), elaborativeInput())

	if _, ok := waitForNote(t, svc); !ok {
		t.Fatal("expected note")
	}
	if _, ok := svc.ConsumeNote(); ok {
		t.Error("expected second ConsumeNote to return false")
	}
}

func TestNoteService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewNoteService(mock, DefaultNoteConfig())

	svc.RequestNote(t.Context(), elaborativeInput())

	time.Sleep(100 * time.Millisecond)

	note, ok := svc.ConsumeNote()
	if ok && note != nil {
		t.Error("expected no note on provider error")
	}
}

func TestNoteService_SkipsNoteNone(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNoteJSON()})
	svc := NewNoteService(mock, DefaultNoteConfig())

	s, _ := Route(diagnosis.ModeRetrieval)
	svc.RequestNote(t.Context(), NoteInput{ConceptID: "c1", Strategy: s})

	time.Sleep(100 * time.Millisecond)

	if mock.CallCount() != 0 {
		t.Errorf("expected no provider calls for a no-note strategy, got %d", mock.CallCount())
	}
}

func TestNoteService_NilServiceSafe(t *testing.T) {
	var svc *NoteService
	svc.RequestNote(t.Context(), elaborativeInput())
	if _, ok := svc.ConsumeNote(); ok {
		t.Error("nil service should never report a ready note")
	}
}
