package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/okanta/memloop/internal/ui"
	"github.com/spf13/cobra"
)

var gatesCmd = &cobra.Command{
	Use:   "gates",
	Short: "Show which concepts are unlocked and what blocks the rest",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		st, cur, engines, err := openEngines(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Printf("%-24s  %-10s  %s\n", "Concept", "Status", "Detail")
		fmt.Println(strings.Repeat("─", 78))

		for _, id := range cur.Graph.Concepts() {
			res, err := cur.Graph.IsUnlocked(id, engines.Tracker)
			if err != nil {
				return fmt.Errorf("evaluate gates for %q: %w", id, err)
			}

			if res.Unlocked {
				detail := ""
				if len(res.Warnings) > 0 {
					var soft []string
					for _, w := range res.Warnings {
						soft = append(soft, w.Source)
					}
					detail = "weak: " + strings.Join(soft, ", ")
				}
				fmt.Printf("%-24s  %-10s  %s\n", id, ui.Correct.Render("open"), ui.Hint.Render(detail))
				continue
			}

			var blocks []string
			for _, e := range res.Blocking {
				blocks = append(blocks, fmt.Sprintf("%s (needs %.0f%%, has %.0f%%)",
					e.Source, e.EffectiveThreshold()*100,
					engines.Tracker.CombinedMastery(e.Source)*100))
			}
			fmt.Printf("%-24s  %-10s  %s\n", id, ui.Incorrect.Render("locked"), strings.Join(blocks, "; "))
		}
		return nil
	},
}
