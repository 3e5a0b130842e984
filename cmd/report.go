package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/report"
	"github.com/abhisek/dermatype/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report <id>",
	Short: "Export a saved consultation as a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(cmd)
		if err != nil {
			return err
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

		c, err := st.Consultations().Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = fmt.Sprintf("dermatype-%s.pdf", c.ID)
		}

		if err := report.NewGenerator(bank).WriteFile(c, out); err != nil {
			return err
		}
		fmt.Println("Wrote", out)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("out", "", "Output file (default dermatype-<id>.pdf)")
}
