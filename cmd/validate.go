package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizly/internal/bank"
	"github.com/abhisek/quizly/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a question-bank file",
	Long: `Run a question-bank file through the full loading pipeline: JSON
structure, schema, and per-question data integrity. With no argument the
bank selected by --bank or QUIZLY_BANK is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			b   *bank.Bank
			err error
		)
		if len(args) == 1 {
			b, err = bank.Load(args[0])
		} else {
			var cfg config.Config
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			b, err = loadBank(cmd, cfg)
		}
		if err != nil {
			return err
		}

		fmt.Printf("OK: %d categories, %d questions\n", len(b.Categories), b.TotalQuestions())
		return nil
	},
}
