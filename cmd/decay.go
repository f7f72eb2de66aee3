package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/okanta/memloop/internal/state"
	"github.com/spf13/cobra"
)

var decayCmd = &cobra.Command{
	Use:   "decay",
	Short: "Fade stale struggle weights",
	Long: `Reduce dynamic struggle weights for topics with no recent diagnosis.
Run this periodically (for example from cron) so old struggles don't
dominate scheduling forever.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, _ := cmd.Flags().GetFloat64("rate")
		minAge, _ := cmd.Flags().GetInt("min-age")

		ctx := context.Background()
		st, _, engines, err := openEngines(ctx, cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		changed := engines.Ledger.Decay(ctx, rate, minAge, time.Now())
		if len(changed) == 0 {
			fmt.Println("Nothing to decay.")
			return nil
		}

		for _, w := range changed {
			section := w.Section
			if section == "" {
				section = "-"
			}
			fmt.Printf("%s/%s -> dynamic %.2f\n", w.Module, section, w.Dynamic)
		}

		if err := state.Save(ctx, st, engines); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		fmt.Printf("%d weights decayed.\n", len(changed))
		return nil
	},
}

func init() {
	decayCmd.Flags().Float64("rate", 0.10, "Fraction of dynamic weight removed per run")
	decayCmd.Flags().Int("min-age", 14, "Days since last diagnosis before a weight decays")
}
