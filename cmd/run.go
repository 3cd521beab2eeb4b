package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizly/internal/app"
	"github.com/abhisek/quizly/internal/config"
	"github.com/abhisek/quizly/internal/prompt"
	"github.com/abhisek/quizly/internal/ui"
)

// runQuiz loads the configuration and question bank, builds the
// collaborators, and hands control to the interactive loop.
func runQuiz(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.NoColor = true
	}

	b, err := loadBank(cmd, cfg)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	return app.Run(app.Options{
		Bank:     b,
		Prompter: prompt.NewConsole(os.Stdin, os.Stdout),
		Renderer: ui.NewRenderer(ui.WithWidth(cfg.Width), ui.WithPlain(cfg.NoColor)),
		Out:      os.Stdout,
		Logger:   logger,
	})
}
