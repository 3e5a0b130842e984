package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved consultations",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete without --yes")
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

		n, err := st.Consultations().DeleteAll(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %d consultation(s).\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
