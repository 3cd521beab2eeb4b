package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizly/internal/config"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the categories in the active question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		b, err := loadBank(cmd, cfg)
		if err != nil {
			return err
		}

		// Header.
		fmt.Printf("%-16s  %-28s  %s\n", "ID", "Name", "Questions")
		fmt.Println(strings.Repeat("─", 57))

		for _, c := range b.Categories {
			name := c.Name
			if len(name) > 28 {
				name = name[:25] + "..."
			}
			fmt.Printf("%-16s  %-28s  %9d\n", c.ID, name, len(c.Questions))
		}

		fmt.Printf("\n%d questions across %d categories\n", b.TotalQuestions(), len(b.Categories))
		return nil
	},
}
