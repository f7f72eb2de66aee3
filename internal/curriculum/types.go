package curriculum

// Deck is one YAML curriculum file: a module's concepts, its prerequisite
// edges, the study atoms, and the confusion clusters.
type Deck struct {
	Module   string        `yaml:"module"`
	Concepts []ConceptSpec `yaml:"concepts"`
	Atoms    []AtomSpec    `yaml:"atoms"`
	Clusters []ClusterSpec `yaml:"clusters"`
}

// ConceptSpec declares one concept node.
type ConceptSpec struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Section   string `yaml:"section"`
	Dimension string `yaml:"dimension"`

	// StruggleWeight is the author-assigned static difficulty, [0,1].
	StruggleWeight float64 `yaml:"struggle_weight"`

	Requires []RequireSpec `yaml:"requires"`
}

// RequireSpec declares a prerequisite edge into this concept.
type RequireSpec struct {
	Concept string `yaml:"concept"`
	// Gate is "hard" or "soft"; defaults to hard.
	Gate string `yaml:"gate"`
	// Class is "foundation", "integration" or "mastery".
	Class string `yaml:"class"`
	// Threshold overrides the class cutoff when set.
	Threshold float64 `yaml:"threshold"`
}

// AtomSpec declares one study item. The per-family payload fields mirror
// the atom package; the handler for the declared type validates them.
type AtomSpec struct {
	ID      string `yaml:"id"`
	Concept string `yaml:"concept"`
	Type    string `yaml:"type"`
	Prompt  string `yaml:"prompt"`

	Answer        string            `yaml:"answer"`
	Options       []string          `yaml:"options"`
	CorrectOption int               `yaml:"correct_option"`
	Blanks        []string          `yaml:"blanks"`
	Pairs         map[string]string `yaml:"pairs"`
	Steps         []string          `yaml:"steps"`
	Tolerance     float64           `yaml:"tolerance"`
	Combination   bool              `yaml:"combination"`
	Hints         []string          `yaml:"hints"`
}

// ClusterSpec declares a confusion cluster of mutually confusable concepts.
type ClusterSpec struct {
	ID       string   `yaml:"id"`
	Concepts []string `yaml:"concepts"`
}
