package cmd

import (
	"github.com/aulalab/aula/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aula",
	Short: "Adaptive lesson tutor for the terminal",
	Long:  "Aula — adaptive tutoring engine that plays lesson scripts as a conversation, classifies free-text answers and escalates remediation step by step.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AULA_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then AULA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
