package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/okanta/memloop/internal/atom"
	"github.com/okanta/memloop/internal/session"
	"github.com/okanta/memloop/internal/ui"
	"github.com/spf13/cobra"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Practice one concept's items without tracking (no database)",
	Long: `Serve every item of a concept in deck order and grade the answers.

This is a stateless tool — no mastery tracking, no diagnosis, no events.
Useful for checking new deck content before studying it for real.`,
	RunE: runDrill,
}

func init() {
	drillCmd.Flags().String("concept", "", "Concept ID to drill (required)")
	_ = drillCmd.MarkFlagRequired("concept")

	rootCmd.AddCommand(drillCmd)
}

func runDrill(cmd *cobra.Command, args []string) error {
	conceptID, _ := cmd.Flags().GetString("concept")

	cur, err := loadDecks(cmd)
	if err != nil {
		return err
	}
	concept, err := cur.Graph.Concept(conceptID)
	if err != nil {
		return err
	}

	var items []*atom.Atom
	for _, a := range cur.Atoms {
		if a.ConceptID == conceptID {
			items = append(items, a)
		}
	}
	if len(items) == 0 {
		return fmt.Errorf("concept %q has no items", conceptID)
	}

	registry := atom.NewRegistry()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Printf("Drilling %s — %s (%d items)\n\n", concept.ID, concept.Name, len(items))

	var correct int
	for i, a := range items {
		fmt.Println(ui.Subtitle.Render(fmt.Sprintf("── Item %d/%d ──", i+1, len(items))))

		var resp *atom.Response
		for resp == nil {
			renderItem(&session.Item{Atom: a, ConceptID: conceptID, Origin: session.OriginQueue})

			var action inputAction
			resp, action = readResponse(scanner, a)
			if action == actionQuit {
				fmt.Println("\n(input closed)")
				return nil
			}
			if action == actionHint {
				// drills have no phases, so hand out the first hint freely
				if len(a.Hints) > 0 {
					fmt.Println(ui.Hint.Render("hint: " + a.Hints[0]))
				}
			}
		}

		result, err := registry.Check(a, *resp)
		if err != nil {
			return fmt.Errorf("grade item %q: %w", a.ID, err)
		}
		if result.Correct {
			correct++
			fmt.Println(ui.Correct.Render("✓ Correct"))
		} else {
			fmt.Println(ui.Incorrect.Render("✗ Wrong.") + " " + answerText(a))
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(items))
	return nil
}
