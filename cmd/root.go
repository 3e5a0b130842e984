package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/consult"
	"github.com/abhisek/dermatype/internal/questionbank"
	"github.com/abhisek/dermatype/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "dermatype",
	Short: "Terminal skin-profile consultation",
	Long:  "Dermatype is an adaptive terminal consultation that classifies your skin into one of twelve care profiles.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides DERMATYPE_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a custom question bank JSON file")

	rootCmd.AddCommand(consultCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then DERMATYPE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadBank returns the bank named by --bank, or the built-in bank.
func loadBank(cmd *cobra.Command) (*questionbank.Bank, error) {
	p, _ := cmd.Flags().GetString("bank")
	if p == "" {
		return questionbank.Default(), nil
	}
	bank, err := questionbank.LoadFile(p)
	if err != nil {
		return nil, fmt.Errorf("load question bank %s: %w", p, err)
	}
	return bank, nil
}

// loadPolicy reads the stop policy from config file and environment.
func loadPolicy() (consult.Policy, error) {
	return consult.LoadPolicy()
}
