package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/classify"
	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/store"
)

// classifyInput is the JSON body read from stdin or a file argument.
type classifyInput struct {
	Answers      consult.History      `json:"answers"`
	Demographics consult.Demographics `json:"demographics"`
}

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify a recorded answer set (JSON in, JSON out)",
	Long: `Reads {"answers": [{"question_id": ..., "option_id": ...}], "demographics": {...}}
from stdin or the given file and prints the classification result as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bank, err := loadBank(cmd)
		if err != nil {
			return err
		}

		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		var input classifyInput
		if err := json.NewDecoder(in).Decode(&input); err != nil {
			return fmt.Errorf("decode input: %w", err)
		}

		demo := consult.DeriveDemographics(bank, input.Answers).Merge(input.Demographics)
		result, err := classify.Classify(bank, input.Answers, demo)
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve DB path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			c := &store.Consultation{
				ID:           uuid.NewString(),
				Answers:      input.Answers,
				Demographics: demo,
				Result:       result,
			}
			if err := st.Consultations().Save(cmd.Context(), c); err != nil {
				return fmt.Errorf("save consultation: %w", err)
			}
			fmt.Fprintln(os.Stderr, "saved as", c.ID)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	classifyCmd.Flags().Bool("save", false, "Persist the result to the consultation store")
}
