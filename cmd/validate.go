package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aulalab/aula/internal/plan"
	"github.com/aulalab/aula/internal/script"
)

var validateCmd = &cobra.Command{
	Use:   "validate <script.json>",
	Short: "Validate a lesson script and print its compiled shape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		doc, err := script.Parse(raw)
		if err != nil {
			var schemaErr *script.SchemaError
			if errors.As(err, &schemaErr) {
				return fmt.Errorf("invalid lesson script: %w", schemaErr)
			}
			return err
		}

		p := plan.Compile(doc)
		fmt.Printf("%s (%s)\n", p.Title, p.Code)
		fmt.Printf("  moments:   %d\n", len(p.Moments))
		fmt.Printf("  steps:     %d\n", len(p.AllSteps))
		fmt.Printf("  questions: %d\n", len(p.AskCatalog))
		fmt.Printf("  cycles:    %d\n", len(p.ContentCycles))
		for _, ask := range p.AskCatalog {
			fmt.Printf("  [%s] %s (%s, %d acceptable)\n",
				ask.StepCode, ask.Question, ask.Shape, len(ask.AcceptableAnswers))
		}
		return nil
	},
}
