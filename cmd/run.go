package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/advice"
	"github.com/abhisek/dermatype/internal/app"
	"github.com/abhisek/dermatype/internal/llm"
	"github.com/abhisek/dermatype/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	bank, err := loadBank(cmd)
	if err != nil {
		return err
	}
	policy, err := loadPolicy()
	if err != nil {
		return fmt.Errorf("load policy: %w", err)
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

	opts := app.Options{
		Bank:          bank,
		Policy:        policy,
		Consultations: st.Consultations(),
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.Events())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI advice will be unavailable.")
	} else {
		opts.Advice = advice.NewService(provider, advice.DefaultConfig())
	}

	return app.Run(opts)
}
