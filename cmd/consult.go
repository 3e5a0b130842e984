package cmd

import (
	"github.com/spf13/cobra"
)

var consultCmd = &cobra.Command{
	Use:   "consult",
	Short: "Start an interactive consultation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
