package cmd

import (
	"fmt"
	"strings"

	"github.com/okanta/memloop/internal/conceptgraph"
	"github.com/okanta/memloop/internal/curriculum"
	"github.com/spf13/cobra"
)

// loadDecks reads the deck directory shared by several subcommands.
func loadDecks(cmd *cobra.Command) (*curriculum.Curriculum, error) {
	cur, err := curriculum.Load(resolveDeckDir(cmd))
	if err != nil {
		return nil, fmt.Errorf("load decks: %w", err)
	}
	return cur, nil
}

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect and validate deck files",
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all concepts (optionally filtered by module)",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetString("module")

		cur, err := loadDecks(cmd)
		if err != nil {
			return err
		}

		fmt.Printf("%-24s  %-32s  %-16s  %-16s  %-12s  %s\n",
			"ID", "Name", "Module", "Section", "Dimension", "Prereqs")
		fmt.Println(strings.Repeat("─", 115))

		var shown int
		for _, id := range cur.Graph.Concepts() {
			c, err := cur.Graph.Concept(id)
			if err != nil {
				continue
			}
			if module != "" && c.Module != module {
				continue
			}
			shown++

			name := c.Name
			if len(name) > 32 {
				name = name[:29] + "..."
			}
			fmt.Printf("%-24s  %-32s  %-16s  %-16s  %-12s  %s\n",
				c.ID, name, c.Module, c.Section, c.Dimension,
				formatPrereqs(cur.Graph.Prerequisites(id)))
		}

		if module != "" && shown == 0 {
			return fmt.Errorf("no concepts found for module %q", module)
		}
		fmt.Printf("\n%d concepts, %d atoms\n", shown, len(cur.Atoms))
		return nil
	},
}

var deckCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate deck files without touching the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveDeckDir(cmd)
		cur, err := loadDecks(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("%s: OK — %d concepts, %d atoms, %d edges, %d clusters\n",
			dir, len(cur.Graph.Concepts()), len(cur.Atoms),
			cur.Graph.EdgeCount(), len(cur.Clusters))
		return nil
	},
}

func formatPrereqs(edges []conceptgraph.Edge) string {
	if len(edges) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(edges))
	for _, e := range edges {
		mark := ""
		if e.Gate == conceptgraph.GateHard {
			mark = "!"
		}
		parts = append(parts, e.Source+mark)
	}
	return strings.Join(parts, ", ")
}

func init() {
	deckListCmd.Flags().String("module", "", "Filter by module (e.g. spanish-verbs)")

	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckCheckCmd)
}
