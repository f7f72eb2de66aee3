package remediation

import (
	"fmt"
	"strings"
)

func noteSystemPrompt(nt NoteType) string {
	base := "You are a study coach writing short remediation notes for a self-directed adult learner."
	switch nt {
	case NoteElaborative:
		return base + " Connect the concept to things the learner likely already knows, with one vivid example."
	case NoteContrastive:
		return base + " Make the differences between easily-confused concepts explicit, side by side."
	case NoteProcedural:
		return base + " Break the procedure into numbered steps and show one fully worked application."
	case NoteSummary:
		return base + " Restate only the essential facts, compressed, with nothing extra."
	default:
		return base
	}
}

func buildNoteUserMessage(input NoteInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Concept: %s\n", input.ConceptName))
	b.WriteString(fmt.Sprintf("Module: %s\n", input.Module))
	b.WriteString(fmt.Sprintf("Note type: %s\n", input.Strategy.NoteType))

	b.WriteString("\nRecent errors:\n")
	if len(input.RecentErrors) == 0 {
		b.WriteString("None recorded\n")
	} else {
		for _, e := range input.RecentErrors {
			b.WriteString(fmt.Sprintf("- %s\n", e))
		}
	}

	if len(input.Confusables) > 0 {
		b.WriteString("\nConfused with:\n")
		for _, c := range input.Confusables {
			b.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	b.WriteString(`
Instructions:
Write one remediation note:
1. Keep the body under 150 words.
2. Address the specific errors shown above, not the topic in general.
3. For contrastive notes, list the concepts you contrasted against in contrasted_with; otherwise leave it empty.
4. Plain text only. No markdown headers, no LaTeX.`)

	return b.String()
}
