package atom

import (
	"errors"
	"testing"
)

func TestRegistry_CoversAllTypes(t *testing.T) {
	r := NewRegistry()
	for _, typ := range AllTypes() {
		if _, err := r.Handler(typ); err != nil {
			t.Errorf("no handler registered for %s: %v", typ, err)
		}
	}
}

func TestRegistry_UnknownType(t *testing.T) {
	r := NewRegistry()
	_, err := r.Check(&Atom{Type: Type("essay")}, Response{})
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
}

func TestFlashcard_NormalizesText(t *testing.T) {
	h := &FlashcardHandler{}
	a := &Atom{ID: "f1", Type: TypeFlashcard, Answer: "Mitochondria"}

	tests := []struct {
		text string
		want bool
	}{
		{"mitochondria", true},
		{"  MITOCHONDRIA  ", true},
		{"chloroplast", false},
		{"", false},
	}
	for _, tt := range tests {
		got := h.Check(a, Response{Text: tt.text})
		if got.Correct != tt.want {
			t.Errorf("Check(%q).Correct = %v, want %v", tt.text, got.Correct, tt.want)
		}
	}
}

func TestCloze_PartialCredit(t *testing.T) {
	h := &ClozeHandler{}
	a := &Atom{ID: "c1", Type: TypeCloze, Blanks: []string{"alpha", "beta", "gamma", "delta"}}

	got := h.Check(a, Response{Text: "alpha;beta;wrong;delta"})
	if got.Correct {
		t.Error("three of four blanks should not be fully correct")
	}
	if got.PartialScore != 0.75 {
		t.Errorf("partial score = %v, want 0.75", got.PartialScore)
	}
}

func TestMCQ_OptionIndex(t *testing.T) {
	h := &MCQHandler{}
	a := &Atom{ID: "m1", Type: TypeMCQ, Options: []string{"a", "b", "c"}, CorrectOption: 1}

	if !h.Check(a, Response{Option: 1}).Correct {
		t.Error("correct option rejected")
	}
	if h.Check(a, Response{Option: 0}).Correct {
		t.Error("wrong option accepted")
	}
}

func TestMCQ_ValidateRange(t *testing.T) {
	h := &MCQHandler{}
	if err := h.Validate(&Atom{ID: "m1", Options: []string{"a", "b"}, CorrectOption: 5}); err == nil {
		t.Error("out-of-range correct option should fail validation")
	}
}

func TestMatching_FractionalCredit(t *testing.T) {
	h := &MatchingHandler{}
	a := &Atom{ID: "mt1", Type: TypeMatching, Pairs: map[string]string{
		"fr": "bonjour", "es": "hola", "de": "hallo", "it": "ciao",
	}}

	got := h.Check(a, Response{Assignments: map[string]string{
		"fr": "bonjour", "es": "hola", "de": "ciao", "it": "hallo",
	}})
	if got.Correct {
		t.Error("two swapped pairs should not be fully correct")
	}
	if got.PartialScore != 0.5 {
		t.Errorf("partial score = %v, want 0.5", got.PartialScore)
	}
}

func TestParsons_PrefixCredit(t *testing.T) {
	h := &ParsonsHandler{}
	a := &Atom{ID: "p1", Type: TypeParsons, Steps: []string{"read", "parse", "eval", "print"}}

	got := h.Check(a, Response{Order: []string{"read", "parse", "print", "eval"}})
	if got.Correct {
		t.Error("misordered tail should not be correct")
	}
	if got.PartialScore != 0.5 {
		t.Errorf("prefix credit = %v, want 0.5", got.PartialScore)
	}

	full := h.Check(a, Response{Order: []string{"read", "parse", "eval", "print"}})
	if !full.Correct || full.PartialScore != 1 {
		t.Errorf("exact order should be fully correct, got %+v", full)
	}
}

func TestNumeric_Tolerance(t *testing.T) {
	h := &NumericHandler{}
	a := &Atom{ID: "n1", Type: TypeNumeric, Answer: "3.14", Tolerance: 0.01}

	if !h.Check(a, Response{Text: "3.15"}).Correct {
		t.Error("answer within tolerance rejected")
	}
	if h.Check(a, Response{Text: "3.2"}).Correct {
		t.Error("answer outside tolerance accepted")
	}
	if h.Check(a, Response{Text: "not a number"}).Correct {
		t.Error("non-numeric input accepted")
	}
}

func TestHints_SequentialThenExhausted(t *testing.T) {
	h := &FlashcardHandler{}
	a := &Atom{ID: "f1", Hints: []string{"first letter is M", "organelle"}}

	if got := h.Hint(a, 1); got != "first letter is M" {
		t.Errorf("hint 1 = %q", got)
	}
	if got := h.Hint(a, 2); got != "organelle" {
		t.Errorf("hint 2 = %q", got)
	}
	if got := h.Hint(a, 3); got != "" {
		t.Errorf("exhausted hint = %q, want empty", got)
	}
}
