package atom

// Type identifies an exercise item family.
type Type string

const (
	TypeFlashcard Type = "flashcard"
	TypeCloze     Type = "cloze"
	TypeMCQ       Type = "mcq"
	TypeTrueFalse Type = "true_false"
	TypeMatching  Type = "matching"
	TypeParsons   Type = "parsons"
	TypeNumeric   Type = "numeric"
)

// AllTypes returns every item family.
func AllTypes() []Type {
	return []Type{
		TypeFlashcard, TypeCloze, TypeMCQ, TypeTrueFalse,
		TypeMatching, TypeParsons, TypeNumeric,
	}
}

// Atom is a single study item. One flexible shape covers all families;
// each handler validates the fields it needs.
type Atom struct {
	ID        string
	ConceptID string
	Type      Type
	Prompt    string

	// Answer is the canonical answer for flashcard/cloze/numeric/true_false.
	Answer string
	// Options and CorrectOption serve mcq.
	Options       []string
	CorrectOption int
	// Blanks are the per-gap answers for cloze.
	Blanks []string
	// Pairs are the left→right assignments for matching.
	Pairs map[string]string
	// Steps is the correct ordering for parsons.
	Steps []string
	// Tolerance is the absolute acceptance window for numeric answers.
	Tolerance float64

	// Combination marks items that exercise this concept together with
	// related ones; the diagnosis engine uses it to separate integration
	// failures from encoding failures.
	Combination bool

	// Hints are shown in teaching phase, one per attempt.
	Hints []string
}

// Response is the learner's captured input for one atom.
type Response struct {
	// Text is the raw answer for text-like families.
	Text string
	// Option is the selected index for mcq.
	Option int
	// Assignments are the learner's matching choices.
	Assignments map[string]string
	// Order is the learner's step ordering for parsons.
	Order []string
	// TimeMs is the response latency.
	TimeMs int
	// Confidence is the optional self-report, 1-5 (0 = not reported).
	Confidence int
}

// Result is the graded outcome of checking a response.
type Result struct {
	Correct bool
	// PartialScore is in [0,1]; 1.0 for fully correct. Families without a
	// partial-credit notion report 0 or 1.
	PartialScore float64
}
