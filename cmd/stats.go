package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okanta/memloop/internal/curriculum"
	"github.com/okanta/memloop/internal/diagnosis"
	"github.com/okanta/memloop/internal/mastery"
	"github.com/okanta/memloop/internal/state"
	"github.com/okanta/memloop/internal/store"
	"github.com/okanta/memloop/internal/struggle"
	"github.com/okanta/memloop/internal/telemetry"
	"github.com/okanta/memloop/internal/ui"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mastery and struggle overview",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		st, cur, engines, err := openEngines(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		all := engines.Tracker.All()
		if len(all) == 0 {
			fmt.Println("No study history yet. Run `memloop study` first.")
			return nil
		}

		fmt.Println(ui.Title.Render("Mastery"))
		fmt.Printf("%-24s  %-30s  %8s  %8s\n", "Concept", "", "Recall", "Reviews")
		fmt.Println(strings.Repeat("─", 78))
		now := time.Now()
		for _, id := range cur.Graph.Concepts() {
			cm, ok := all[id]
			if !ok {
				continue
			}
			fmt.Printf("%-24s  %s  %7.0f%%  %8d\n",
				id, ui.Bar(cm.CombinedMastery, 24),
				cm.Retrievability(now)*100, cm.ReviewCount)
		}

		weights := engines.Ledger.All()
		if len(weights) > 0 {
			fmt.Println()
			fmt.Println(ui.Title.Render("Struggle"))
			fmt.Printf("%-24s  %-12s  %8s  %8s\n", "Module", "Section", "Static", "Dynamic")
			fmt.Println(strings.Repeat("─", 60))
			for _, w := range weights {
				section := w.Section
				if section == "" {
					section = "-"
				}
				line := fmt.Sprintf("%-24s  %-12s  %8.2f  %8.2f", w.Module, section, w.Static, w.Dynamic)
				if w.Dynamic >= 0.3 {
					line = ui.Warn.Render(line)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

// openEngines opens the store, loads the decks, and restores learner
// state. Shared by the read-only reporting commands; event logging is
// disabled so reads never write.
func openEngines(ctx context.Context, cmd *cobra.Command) (*store.Store, *curriculum.Curriculum, state.Engines, error) {
	var engines state.Engines

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, engines, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, engines, fmt.Errorf("open store: %w", err)
	}

	cur, err := loadDecks(cmd)
	if err != nil {
		st.Close()
		return nil, nil, engines, err
	}

	engines = state.Engines{
		LearnerID:  "default",
		Tracker:    mastery.NewTracker(cur.Graph.Concepts(), nil),
		Ledger:     struggle.NewLedger(nil),
		Normalizer: telemetry.NewNormalizer(),
		Confusion:  diagnosis.NewConfusionTracker(),
	}
	for _, w := range cur.Weights {
		engines.Ledger.Register(w.Module, w.Section, w.Static)
	}
	if err := state.Restore(ctx, st.SnapshotRepo(), engines); err != nil {
		st.Close()
		return nil, nil, engines, fmt.Errorf("restore learner state: %w", err)
	}
	return st, cur, engines, nil
}
