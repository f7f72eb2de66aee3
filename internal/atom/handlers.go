package atom

import (
	"fmt"
	"strconv"
	"strings"
)

// normalize folds case and whitespace for text answer comparison.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

func boolResult(correct bool) Result {
	if correct {
		return Result{Correct: true, PartialScore: 1}
	}
	return Result{Correct: false, PartialScore: 0}
}

// FlashcardHandler grades free-recall cards by normalized text equality.
type FlashcardHandler struct{}

func (h *FlashcardHandler) Type() Type { return TypeFlashcard }

func (h *FlashcardHandler) Validate(a *Atom) error {
	if a.Answer == "" {
		return fmt.Errorf("flashcard %q: missing answer", a.ID)
	}
	return nil
}

func (h *FlashcardHandler) Check(a *Atom, r Response) Result {
	return boolResult(normalize(r.Text) == normalize(a.Answer))
}

func (h *FlashcardHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }

// ClozeHandler grades fill-in-the-blank items with per-blank partial credit.
// The response text carries one answer per blank, separated by ";".
type ClozeHandler struct{}

func (h *ClozeHandler) Type() Type { return TypeCloze }

func (h *ClozeHandler) Validate(a *Atom) error {
	if len(a.Blanks) == 0 {
		return fmt.Errorf("cloze %q: no blanks", a.ID)
	}
	return nil
}

func (h *ClozeHandler) Check(a *Atom, r Response) Result {
	given := strings.Split(r.Text, ";")
	hits := 0
	for i, want := range a.Blanks {
		if i < len(given) && normalize(given[i]) == normalize(want) {
			hits++
		}
	}
	score := float64(hits) / float64(len(a.Blanks))
	return Result{Correct: hits == len(a.Blanks), PartialScore: score}
}

func (h *ClozeHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }

// MCQHandler grades single-answer multiple choice by option index.
type MCQHandler struct{}

func (h *MCQHandler) Type() Type { return TypeMCQ }

func (h *MCQHandler) Validate(a *Atom) error {
	if len(a.Options) < 2 {
		return fmt.Errorf("mcq %q: needs at least 2 options", a.ID)
	}
	if a.CorrectOption < 0 || a.CorrectOption >= len(a.Options) {
		return fmt.Errorf("mcq %q: correct option %d out of range", a.ID, a.CorrectOption)
	}
	return nil
}

func (h *MCQHandler) Check(a *Atom, r Response) Result {
	return boolResult(r.Option == a.CorrectOption)
}

func (h *MCQHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }

// TrueFalseHandler grades boolean statements. Answer is "true" or "false".
type TrueFalseHandler struct{}

func (h *TrueFalseHandler) Type() Type { return TypeTrueFalse }

func (h *TrueFalseHandler) Validate(a *Atom) error {
	switch normalize(a.Answer) {
	case "true", "false":
		return nil
	}
	return fmt.Errorf("true_false %q: answer must be true or false", a.ID)
}

func (h *TrueFalseHandler) Check(a *Atom, r Response) Result {
	return boolResult(normalize(r.Text) == normalize(a.Answer))
}

func (h *TrueFalseHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }

// MatchingHandler grades pair-matching with fractional credit per pair.
type MatchingHandler struct{}

func (h *MatchingHandler) Type() Type { return TypeMatching }

func (h *MatchingHandler) Validate(a *Atom) error {
	if len(a.Pairs) < 2 {
		return fmt.Errorf("matching %q: needs at least 2 pairs", a.ID)
	}
	return nil
}

func (h *MatchingHandler) Check(a *Atom, r Response) Result {
	hits := 0
	for left, want := range a.Pairs {
		if normalize(r.Assignments[left]) == normalize(want) {
			hits++
		}
	}
	score := float64(hits) / float64(len(a.Pairs))
	return Result{Correct: hits == len(a.Pairs), PartialScore: score}
}

func (h *MatchingHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }

// ParsonsHandler grades step-ordering items. Partial credit is the length
// of the correct prefix over the total step count.
type ParsonsHandler struct{}

func (h *ParsonsHandler) Type() Type { return TypeParsons }

func (h *ParsonsHandler) Validate(a *Atom) error {
	if len(a.Steps) < 2 {
		return fmt.Errorf("parsons %q: needs at least 2 steps", a.ID)
	}
	return nil
}

func (h *ParsonsHandler) Check(a *Atom, r Response) Result {
	prefix := 0
	for i, want := range a.Steps {
		if i >= len(r.Order) || normalize(r.Order[i]) != normalize(want) {
			break
		}
		prefix++
	}
	score := float64(prefix) / float64(len(a.Steps))
	return Result{Correct: prefix == len(a.Steps) && len(r.Order) == len(a.Steps), PartialScore: score}
}

func (h *ParsonsHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }

// NumericHandler grades numeric answers within an absolute tolerance.
type NumericHandler struct{}

func (h *NumericHandler) Type() Type { return TypeNumeric }

func (h *NumericHandler) Validate(a *Atom) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(a.Answer), 64); err != nil {
		return fmt.Errorf("numeric %q: answer is not a number: %w", a.ID, err)
	}
	if a.Tolerance < 0 {
		return fmt.Errorf("numeric %q: negative tolerance", a.ID)
	}
	return nil
}

func (h *NumericHandler) Check(a *Atom, r Response) Result {
	want, err := strconv.ParseFloat(strings.TrimSpace(a.Answer), 64)
	if err != nil {
		return boolResult(false)
	}
	got, err := strconv.ParseFloat(strings.TrimSpace(r.Text), 64)
	if err != nil {
		return boolResult(false)
	}
	diff := want - got
	if diff < 0 {
		diff = -diff
	}
	return boolResult(diff <= a.Tolerance)
}

func (h *NumericHandler) Hint(a *Atom, attempt int) string { return hintAt(a, attempt) }
