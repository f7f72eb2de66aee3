package remediation

import (
	"errors"
	"testing"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/diagnosis"
)

func TestRoute_AllModesCovered(t *testing.T) {
	for _, mode := range diagnosis.AllModes() {
		if _, err := Route(mode); err != nil {
			t.Errorf("no strategy for %s: %v", mode, err)
		}
	}
}

func TestRoute_StrategyTable(t *testing.T) {
	tests := []struct {
		mode     diagnosis.FailureMode
		noteType NoteType
		count    int
		types    []atom.Type
	}{
		{diagnosis.ModeEncoding, NoteElaborative, 8, []atom.Type{atom.TypeFlashcard, atom.TypeCloze}},
		{diagnosis.ModeRetrieval, NoteNone, 10, []atom.Type{atom.TypeFlashcard, atom.TypeCloze, atom.TypeMCQ}},
		{diagnosis.ModeDiscrimination, NoteContrastive, 6, []atom.Type{atom.TypeMatching, atom.TypeMCQ, atom.TypeTrueFalse}},
		{diagnosis.ModeIntegration, NoteProcedural, 5, []atom.Type{atom.TypeParsons, atom.TypeNumeric}},
		{diagnosis.ModeExecutive, NoteSummary, 8, []atom.Type{atom.TypeMCQ, atom.TypeTrueFalse}},
	}

	for _, tt := range tests {
		s, err := Route(tt.mode)
		if err != nil {
			t.Fatalf("Route(%s): %v", tt.mode, err)
		}
		if s.NoteType != tt.noteType {
			t.Errorf("%s: note type = %q, want %q", tt.mode, s.NoteType, tt.noteType)
		}
		if s.ExerciseCount != tt.count {
			t.Errorf("%s: exercise count = %d, want %d", tt.mode, s.ExerciseCount, tt.count)
		}
		if len(s.AtomTypes) != len(tt.types) {
			t.Errorf("%s: atom types = %v, want %v", tt.mode, s.AtomTypes, tt.types)
			continue
		}
		for i, typ := range tt.types {
			if s.AtomTypes[i] != typ {
				t.Errorf("%s: atom type[%d] = %s, want %s", tt.mode, i, s.AtomTypes[i], typ)
			}
		}
		if s.SuggestBreak {
			t.Errorf("%s: should not suggest a break", tt.mode)
		}
	}
}

func TestRoute_FatigueSuggestsBreak(t *testing.T) {
	s, err := Route(diagnosis.ModeFatigue)
	if err != nil {
		t.Fatal(err)
	}
	if !s.SuggestBreak {
		t.Error("fatigue should suggest a break")
	}
	if s.ExerciseCount != 0 || len(s.AtomTypes) != 0 {
		t.Errorf("fatigue should schedule no exercises, got %d types=%v", s.ExerciseCount, s.AtomTypes)
	}
	if s.NoteType != NoteNone {
		t.Errorf("fatigue should not generate a note, got %q", s.NoteType)
	}
}

func TestRouteString_FuzzyMatching(t *testing.T) {
	tests := []struct {
		name string
		want diagnosis.FailureMode
	}{
		{"ENCODING", diagnosis.ModeEncoding},
		{"encoding", diagnosis.ModeEncoding},
		{"  Retrieval ", diagnosis.ModeRetrieval},
		{"recall", diagnosis.ModeRetrieval},
		{"confusion", diagnosis.ModeDiscrimination},
		{"disc", diagnosis.ModeDiscrimination},
		{"inter-ference", diagnosis.ModeDiscrimination},
		{"transfer", diagnosis.ModeIntegration},
		{"careless", diagnosis.ModeExecutive},
		{"exec", diagnosis.ModeExecutive},
		{"tired", diagnosis.ModeFatigue},
		{"cognitive overload", diagnosis.ModeFatigue},
	}

	for _, tt := range tests {
		s, err := RouteString(tt.name)
		if err != nil {
			t.Errorf("RouteString(%q): %v", tt.name, err)
			continue
		}
		if s.Mode != tt.want {
			t.Errorf("RouteString(%q) = %s, want %s", tt.name, s.Mode, tt.want)
		}
	}
}

func TestRouteString_Unknown(t *testing.T) {
	for _, name := range []string{"", "quantum", "xyz"} {
		_, err := RouteString(name)
		if !errors.Is(err, ErrUnknownFailureMode) {
			t.Errorf("RouteString(%q) = %v, want ErrUnknownFailureMode", name, err)
		}
	}
}
