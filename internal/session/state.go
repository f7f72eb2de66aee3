package session

// Phase is the scaffolding state for a concept within a session.
type Phase int

const (
	// PhaseTeaching allows full scaffolding: every hint is available.
	PhaseTeaching Phase = iota
	// PhaseTransition fades scaffolds down to a single hint.
	PhaseTransition
	// PhaseTesting withholds hints entirely.
	PhaseTesting
)

func (p Phase) String() string {
	switch p {
	case PhaseTeaching:
		return "teaching"
	case PhaseTransition:
		return "transition"
	case PhaseTesting:
		return "testing"
	default:
		return "unknown"
	}
}

// HintBudget returns how many hints the phase permits per item.
// A negative budget means unlimited.
func (p Phase) HintBudget() int {
	switch p {
	case PhaseTeaching:
		return -1
	case PhaseTransition:
		return 1
	default:
		return 0
	}
}

type scaffoldState struct {
	phase Phase
	// streak counts consecutive correct, unscaffolded responses.
	streak int
}

// ScaffoldTracker holds the per-concept scaffolding phase for a session.
// Phases start at teaching and advance on demonstrated independence.
type ScaffoldTracker struct {
	states map[string]*scaffoldState
}

func NewScaffoldTracker() *ScaffoldTracker {
	return &ScaffoldTracker{states: make(map[string]*scaffoldState)}
}

// Phase returns the current phase for a concept.
func (t *ScaffoldTracker) Phase(conceptID string) Phase {
	if st, ok := t.states[conceptID]; ok {
		return st.phase
	}
	return PhaseTeaching
}

// RecordResult folds one graded response into the concept's phase.
// Two consecutive correct responses without scaffolding advance the
// phase; any incorrect response drops back one phase. A correct but
// scaffolded response holds the phase and resets the streak.
func (t *ScaffoldTracker) RecordResult(conceptID string, correct, scaffolded bool) Phase {
	st, ok := t.states[conceptID]
	if !ok {
		st = &scaffoldState{}
		t.states[conceptID] = st
	}

	switch {
	case correct && !scaffolded:
		st.streak++
		if st.streak >= 2 && st.phase < PhaseTesting {
			st.phase++
			st.streak = 0
		}
	case correct:
		st.streak = 0
	default:
		st.streak = 0
		if st.phase > PhaseTeaching {
			st.phase--
		}
	}
	return st.phase
}
