package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizly/internal/bank"
	"github.com/abhisek/quizly/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "quizly",
	Short: "Terminal quiz game",
	Long:  "Quizly — a terminal multiple-choice quiz: pick a category, answer questions, see how you score.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuiz(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("bank", "", "Path to a question-bank JSON file (overrides QUIZLY_BANK env var)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable styled output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveBankPath returns the bank path from the --bank flag (highest
// priority), then the QUIZLY_BANK env var. Empty selects the embedded
// bank.
func resolveBankPath(cmd *cobra.Command, cfg config.Config) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return cfg.BankPath
}

// loadBank loads whichever bank the flags and environment point at.
func loadBank(cmd *cobra.Command, cfg config.Config) (*bank.Bank, error) {
	if path := resolveBankPath(cmd, cfg); path != "" {
		b, err := bank.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load question bank: %w", err)
		}
		return b, nil
	}
	b, err := bank.Default()
	if err != nil {
		return nil, fmt.Errorf("load embedded question bank: %w", err)
	}
	return b, nil
}
