package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aulalab/aula/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats [session-key]",
	Short: "Show trace and provider-usage statistics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

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
			sessionKey := args[0]
			counts, err := st.TraceRepo().Counts(ctx, sessionKey)
			if err != nil {
				return err
			}
			fmt.Printf("Session %q\n", sessionKey)
			fmt.Printf("  attempts: %d\n", counts.Attempts)
			fmt.Printf("  accepts:  %d\n", counts.Accepts)
			fmt.Printf("  hints:    %d\n", counts.Hints)

			entries, err := st.TraceRepo().BySession(ctx, sessionKey)
			if err != nil {
				return err
			}
			for _, e := range entries {
				fmt.Printf("  [%s/%s] %s: %q\n", e.Label, e.Kind, e.StepCode, e.Response)
			}
			fmt.Println()
		}

		totals, err := st.LLMRepo().Totals(ctx)
		if err != nil {
			return err
		}
		fmt.Println("Provider usage")
		fmt.Printf("  requests:      %d\n", totals.Requests)
		fmt.Printf("  input tokens:  %d\n", totals.InputTokens)
		fmt.Printf("  output tokens: %d\n", totals.OutputTokens)
		fmt.Printf("  cost:          %d¢\n", totals.CostCents)
		return nil
	},
}
