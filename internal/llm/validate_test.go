package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func noteTestSchema() *Schema {
	return &Schema{
		Name:        "validate-test-note",
		Description: "test schema",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"count": map[string]any{"type": "integer"},
			},
			"required":             []any{"title", "count"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title": "hello", "count": 3}`)
	if err := validateResponse(noteTestSchema(), raw); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	err := validateResponse(noteTestSchema(), json.RawMessage(`{"title":`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	err := validateResponse(noteTestSchema(), json.RawMessage(`{"title": "hello"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	err := validateResponse(noteTestSchema(), json.RawMessage(`{"title": "x", "count": "three"}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_AdditionalProperty(t *testing.T) {
	err := validateResponse(noteTestSchema(), json.RawMessage(`{"title": "x", "count": 1, "extra": true}`))
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	s := noteTestSchema()
	raw := json.RawMessage(`{"title": "hello", "count": 3}`)
	if err := validateResponse(s, raw); err != nil {
		t.Fatal(err)
	}
	if _, ok := schemaCache.Load(s.Name); !ok {
		t.Error("expected compiled schema to be cached")
	}
	if err := validateResponse(s, raw); err != nil {
		t.Errorf("cached validation failed: %v", err)
	}
}
