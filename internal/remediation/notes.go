package remediation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/okanta/memloop/internal/llm"
)

// Note is an LLM-generated remediation note for a struggling concept.
type Note struct {
	ConceptID      string
	Type           NoteType
	Title          string
	Body           string
	ContrastedWith []string
}

// NoteInput holds the context needed to generate a note.
type NoteInput struct {
	ConceptID    string
	ConceptName  string
	Module       string
	Strategy     Strategy
	RecentErrors []string
	// Confusables lists concepts the learner mixes this one up with.
	// Only used for contrastive notes.
	Confusables []string
}

// NoteConfig holds note generation settings.
type NoteConfig struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultNoteConfig returns sensible defaults for note generation.
func DefaultNoteConfig() NoteConfig {
	return NoteConfig{
		MaxTokens:   512,
		Temperature: 0.5,
		Timeout:     20 * time.Second,
	}
}

// NoteService generates remediation notes asynchronously. Generation is
// fire-and-forget: the session never waits on a note, and a failed or
// timed-out request simply leaves the pending slot empty.
type NoteService struct {
	provider llm.Provider
	cfg      NoteConfig

	mu      sync.Mutex
	pending *Note
	err     error
	ready   bool
}

// NewNoteService creates a note generation service.
func NewNoteService(provider llm.Provider, cfg NoteConfig) *NoteService {
	return &NoteService{provider: provider, cfg: cfg}
}

// RequestNote starts async note generation. Only one note is in-flight at a
// time — new requests replace pending ones. Strategies with no note type are
// ignored.
func (s *NoteService) RequestNote(ctx context.Context, input NoteInput) {
	if s == nil || s.provider == nil || input.Strategy.NoteType == NoteNone {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
		note, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = note
		s.err = err
		s.ready = true
	}()
}

// ConsumeNote returns the pending note if one is ready.
// Returns (nil, false) if no note is ready yet.
// After consumption, the pending slot is cleared.
func (s *NoteService) ConsumeNote() (*Note, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	note := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return note, note != nil
}

type noteOutput struct {
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	ContrastedWith []string `json:"contrasted_with"`
}

func (s *NoteService) generate(ctx context.Context, input NoteInput) (*Note, error) {
	ctx = llm.WithPurpose(ctx, "remediation-note")

	req := llm.Request{
		System: noteSystemPrompt(input.Strategy.NoteType),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNoteUserMessage(input)},
		},
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("note generation: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse note response: %w", err)
	}

	return &Note{
		ConceptID:      input.ConceptID,
		Type:           input.Strategy.NoteType,
		Title:          out.Title,
		Body:           out.Body,
		ContrastedWith: out.ContrastedWith,
	}, nil
}
