package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aulalab/aula/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session-key>",
	Short: "Delete stored state for a session",
	Args:  cobra.ExactArgs(1),
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

		if err := st.SessionStore().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Session %q reset.\n", args[0])
		return nil
	},
}
