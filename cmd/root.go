package cmd

import (
	"os"

	"github.com/okanta/memloop/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memloop",
	Short: "Adaptive spaced-repetition study engine",
	Long:  "Memloop — terminal study tool that schedules review by memory decay,\ndiagnoses why answers go wrong, and reworks weak prerequisites on the spot.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStudy(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MEMLOOP_DB env var)")
	rootCmd.PersistentFlags().String("decks", "", "Path to deck directory (overrides MEMLOOP_DECKS env var)")

	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(gatesCmd)
	rootCmd.AddCommand(waiverCmd)
	rootCmd.AddCommand(decayCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MEMLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveDeckDir returns the deck directory using --decks flag, then
// MEMLOOP_DECKS env var, then ./decks.
func resolveDeckDir(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("decks"); p != "" {
		return p
	}
	if p := os.Getenv("MEMLOOP_DECKS"); p != "" {
		return p
	}
	return "decks"
}
