package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/archetype"
	"github.com/abhisek/dermatype/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history [id]",
	Short: "List saved consultations, or show one in full",
	Args:  cobra.MaximumNArgs(1),
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

		if len(args) == 1 {
			return showConsultation(cmd, st, args[0])
		}

		limit, _ := cmd.Flags().GetInt("limit")
		summaries, err := st.Consultations().List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			fmt.Println("No saved consultations yet.")
			return nil
		}

		for _, s := range summaries {
			fmt.Printf("%s  %s  %-18s %3.0f/100 (%s)  %d questions\n",
				s.ID,
				s.CreatedAt.Local().Format(time.DateOnly),
				profileName(s.Primary),
				s.Confidence,
				s.Tier,
				s.QuestionsAsked,
			)
		}
		return nil
	},
}

func showConsultation(cmd *cobra.Command, st *store.Store, id string) error {
	c, err := st.Consultations().Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	fmt.Printf("Consultation %s (%s)\n", c.ID, c.CreatedAt.Local().Format(time.RFC1123))
	if c.Result != nil {
		fmt.Printf("Profile:    %s\n", profileName(c.Result.Primary))
		fmt.Printf("Confidence: %.0f/100 (%s)\n", c.Result.Confidence, c.Result.Tier)
		if len(c.Result.Flags) > 0 {
			fmt.Println("Flags:")
			for _, f := range c.Result.Flags {
				fmt.Printf("  - %s\n", f)
			}
		}
	}
	fmt.Printf("Answers:    %d\n", len(c.Answers))
	if c.Advice != "" {
		fmt.Println("\n" + c.Advice)
	}
	return nil
}

func profileName(id string) string {
	if a, err := archetype.Get(id); err == nil {
		return a.Name
	}
	return id
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of consultations to list (0 = all)")
}
