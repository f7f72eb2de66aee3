package remediation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/diagnosis"
)

// ErrUnknownFailureMode indicates a failure-mode string that could not be
// matched to any known mode, even after normalization.
var ErrUnknownFailureMode = errors.New("unknown failure mode")

// NoteType names the kind of remediation note to generate, if any.
type NoteType string

const (
	NoteNone        NoteType = ""
	NoteElaborative NoteType = "elaborative"
	NoteContrastive NoteType = "contrastive"
	NoteProcedural  NoteType = "procedural"
	NoteSummary     NoteType = "summary"
)

// Strategy describes the intervention for a diagnosed failure mode.
type Strategy struct {
	Mode          diagnosis.FailureMode
	NoteType      NoteType
	AtomTypes     []atom.Type
	ExerciseCount int
	SuggestBreak  bool
}

var strategies = map[diagnosis.FailureMode]Strategy{
	diagnosis.ModeEncoding: {
		Mode:          diagnosis.ModeEncoding,
		NoteType:      NoteElaborative,
		AtomTypes:     []atom.Type{atom.TypeFlashcard, atom.TypeCloze},
		ExerciseCount: 8,
	},
	diagnosis.ModeRetrieval: {
		Mode:          diagnosis.ModeRetrieval,
		AtomTypes:     []atom.Type{atom.TypeFlashcard, atom.TypeCloze, atom.TypeMCQ},
		ExerciseCount: 10,
	},
	diagnosis.ModeDiscrimination: {
		Mode:          diagnosis.ModeDiscrimination,
		NoteType:      NoteContrastive,
		AtomTypes:     []atom.Type{atom.TypeMatching, atom.TypeMCQ, atom.TypeTrueFalse},
		ExerciseCount: 6,
	},
	diagnosis.ModeIntegration: {
		Mode:          diagnosis.ModeIntegration,
		NoteType:      NoteProcedural,
		AtomTypes:     []atom.Type{atom.TypeParsons, atom.TypeNumeric},
		ExerciseCount: 5,
	},
	diagnosis.ModeExecutive: {
		Mode:          diagnosis.ModeExecutive,
		NoteType:      NoteSummary,
		AtomTypes:     []atom.Type{atom.TypeMCQ, atom.TypeTrueFalse},
		ExerciseCount: 8,
	},
	diagnosis.ModeFatigue: {
		Mode:         diagnosis.ModeFatigue,
		SuggestBreak: true,
	},
}

// synonyms maps alternate spellings and shorthand to canonical modes.
// Lookup keys are lowercase with separators stripped.
var synonyms = map[string]diagnosis.FailureMode{
	"encode":            diagnosis.ModeEncoding,
	"neverlearned":      diagnosis.ModeEncoding,
	"acquisition":       diagnosis.ModeEncoding,
	"recall":            diagnosis.ModeRetrieval,
	"forgetting":        diagnosis.ModeRetrieval,
	"memory":            diagnosis.ModeRetrieval,
	"confusion":         diagnosis.ModeDiscrimination,
	"interference":      diagnosis.ModeDiscrimination,
	"discriminate":      diagnosis.ModeDiscrimination,
	"integrate":         diagnosis.ModeIntegration,
	"transfer":          diagnosis.ModeIntegration,
	"application":       diagnosis.ModeIntegration,
	"careless":          diagnosis.ModeExecutive,
	"attention":         diagnosis.ModeExecutive,
	"impulsive":         diagnosis.ModeExecutive,
	"tired":             diagnosis.ModeFatigue,
	"exhaustion":        diagnosis.ModeFatigue,
	"cognitiveoverload": diagnosis.ModeFatigue,
}

// Route returns the intervention strategy for a failure mode.
func Route(mode diagnosis.FailureMode) (Strategy, error) {
	s, ok := strategies[mode]
	if !ok {
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownFailureMode, mode)
	}
	return s, nil
}

// RouteString resolves a free-form failure-mode name to a strategy.
// Matching is case-insensitive and tolerates common synonyms.
func RouteString(name string) (Strategy, error) {
	key := normalizeKey(name)
	if key == "" {
		return Strategy{}, fmt.Errorf("%w: empty name", ErrUnknownFailureMode)
	}
	for _, mode := range diagnosis.AllModes() {
		if key == normalizeKey(string(mode)) {
			return Route(mode)
		}
	}
	if mode, ok := synonyms[key]; ok {
		return Route(mode)
	}
	// Prefix match handles truncated names like "disc" or "exec".
	if len(key) >= 4 {
		for _, mode := range diagnosis.AllModes() {
			if strings.HasPrefix(normalizeKey(string(mode)), key) {
				return Route(mode)
			}
		}
	}
	return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownFailureMode, name)
}

func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_', '.':
			return -1
		}
		return r
	}, s)
	return s
}
