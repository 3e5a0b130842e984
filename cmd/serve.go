package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/abhisek/dermatype/internal/httpapi"
	"github.com/abhisek/dermatype/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the consultation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		addr, _ := cmd.Flags().GetString("addr")
		srv := httpapi.NewServer(bank, policy, st.Consultations())

		fmt.Printf("Listening on %s\n", addr)
		return http.ListenAndServe(addr, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Address to listen on")
}
