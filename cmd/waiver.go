package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okanta/memloop/internal/conceptgraph"
	"github.com/okanta/memloop/internal/store"
	"github.com/spf13/cobra"
)

var waiverCmd = &cobra.Command{
	Use:   "waiver",
	Short: "Manage prerequisite gate waivers",
}

var waiverGrantCmd = &cobra.Command{
	Use:   "grant <prerequisite> <concept>",
	Short: "Waive a prerequisite gate for a concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, target := args[0], args[1]
		wType, _ := cmd.Flags().GetString("type")
		note, _ := cmd.Flags().GetString("note")

		switch conceptgraph.WaiverType(wType) {
		case conceptgraph.WaiverInstructor, conceptgraph.WaiverChallenge,
			conceptgraph.WaiverCredential, conceptgraph.WaiverAccelerated:
		default:
			return fmt.Errorf("unknown waiver type %q", wType)
		}

		cur, err := loadDecks(cmd)
		if err != nil {
			return err
		}
		var found bool
		for _, e := range cur.Graph.Prerequisites(target) {
			if e.Source == source {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no prerequisite edge %s -> %s in the loaded decks", source, target)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec := store.WaiverRecord{
			SourceID:  source,
			TargetID:  target,
			Type:      wType,
			Note:      note,
			GrantedAt: time.Now(),
		}
		if err := st.WaiverRepo().Save(context.Background(), rec); err != nil {
			return fmt.Errorf("save waiver: %w", err)
		}
		fmt.Printf("Waived %s -> %s (%s)\n", source, target, wType)
		return nil
	},
}

var waiverListCmd = &cobra.Command{
	Use:   "list",
	Short: "List granted waivers",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		waivers, err := st.WaiverRepo().All(context.Background())
		if err != nil {
			return fmt.Errorf("load waivers: %w", err)
		}
		if len(waivers) == 0 {
			fmt.Println("No waivers granted.")
			return nil
		}

		fmt.Printf("%-20s  %-20s  %-22s  %-12s  %s\n",
			"Prerequisite", "Concept", "Type", "Granted", "Note")
		fmt.Println(strings.Repeat("─", 90))
		for _, w := range waivers {
			fmt.Printf("%-20s  %-20s  %-22s  %-12s  %s\n",
				w.SourceID, w.TargetID, w.Type,
				w.GrantedAt.Local().Format("2006-01-02"), w.Note)
		}
		return nil
	},
}

var waiverRevokeCmd = &cobra.Command{
	Use:   "revoke <prerequisite> <concept>",
	Short: "Revoke a waiver",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.WaiverRepo().Revoke(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("revoke waiver: %w", err)
		}
		fmt.Printf("Revoked waiver %s -> %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	waiverGrantCmd.Flags().String("type", string(conceptgraph.WaiverInstructor),
		"Waiver type: instructor-override, challenge-passed, external-credential, accelerated-learner")
	waiverGrantCmd.Flags().String("note", "", "Reason for the waiver")

	waiverCmd.AddCommand(waiverGrantCmd)
	waiverCmd.AddCommand(waiverListCmd)
	waiverCmd.AddCommand(waiverRevokeCmd)
}
