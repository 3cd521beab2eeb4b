// Package app wires the quiz together and drives the interactive
// loop: category and count menus, the question-by-question session,
// the results report, and the play-again prompt. The loop is strictly
// sequential; at most one prompt is outstanding at any moment.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/abhisek/quizly/internal/bank"
	"github.com/abhisek/quizly/internal/prompt"
	"github.com/abhisek/quizly/internal/session"
	"github.com/abhisek/quizly/internal/shuffle"
	"github.com/abhisek/quizly/internal/ui"
)

// countChoices are the fixed question-count menu entries. Counts at or
// above the category size collapse into the trailing "All" entry.
var countChoices = []int{5, 10, 20}

// Options carries the collaborators Run needs. Out defaults to stdout,
// Renderer to a styled renderer, Logger to a discarding logger, and
// Rand to the global random source.
type Options struct {
	Bank     *bank.Bank
	Prompter prompt.Prompter
	Renderer *ui.Renderer
	Out      io.Writer
	Logger   *slog.Logger
	Rand     *rand.Rand
}

// Run drives quiz sessions until the player declines to play again.
// A closed input stream is a normal way to leave, not an error.
func Run(opts Options) error {
	if opts.Bank == nil || len(opts.Bank.Categories) == 0 {
		return errors.New("question bank is empty")
	}
	if opts.Prompter == nil {
		return errors.New("prompter is required")
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	r := opts.Renderer
	if r == nil {
		r = ui.NewRenderer()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fmt.Fprintln(out, r.Clear()+r.Banner())
	fmt.Fprintln(out)

	for {
		if err := playOnce(opts, out, r, logger); err != nil {
			if errors.Is(err, prompt.ErrInputClosed) {
				fmt.Fprintln(out, "\n(input closed)")
				return nil
			}
			return err
		}

		again, err := opts.Prompter.Confirm("Play again?")
		if err != nil {
			if errors.Is(err, prompt.ErrInputClosed) {
				return nil
			}
			return err
		}
		if !again {
			fmt.Fprintln(out, "Thanks for playing!")
			return nil
		}
		fmt.Fprint(out, r.Clear())
	}
}

// playOnce runs a single session from category menu to results.
func playOnce(opts Options, out io.Writer, r *ui.Renderer, logger *slog.Logger) error {
	category, err := chooseCategory(opts.Prompter, opts.Bank)
	if err != nil {
		return err
	}

	count, err := chooseCount(opts.Prompter, len(category.Questions))
	if err != nil {
		return err
	}

	questions := shuffle.Pick(opts.Rand, category.Questions, count)
	sess, err := session.New(category.Name, questions, session.WithRand(opts.Rand))
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	logger.Info("session started",
		"session", sess.ID(),
		"category", category.ID,
		"questions", sess.Total(),
	)

	for {
		q, ok := sess.Current()
		if !ok {
			break
		}

		fmt.Fprint(out, r.Clear())
		fmt.Fprintln(out, r.QuestionHeader(sess.Position()+1, sess.Total()))
		fmt.Fprintln(out, r.Progress(sess.Progress(), sess.Position(), sess.Total()))
		fmt.Fprintln(out)

		choice, err := opts.Prompter.SelectOption(q.Prompt, q.Options)
		if err != nil {
			return err
		}

		outcome, err := sess.SubmitAnswer(choice)
		if err != nil {
			return fmt.Errorf("submit answer: %w", err)
		}

		fmt.Fprintln(out, r.Feedback(outcome))
		if err := opts.Prompter.Acknowledge("\nPress enter to continue..."); err != nil {
			return err
		}
	}

	results := sess.Results()
	logger.Info("session finished",
		"session", sess.ID(),
		"score", results.Score,
		"total", results.Total,
		"grade", string(results.Grade),
	)

	fmt.Fprint(out, r.Clear())
	fmt.Fprintln(out, r.Results(results))

	if len(results.Misses) > 0 {
		review, err := opts.Prompter.Confirm("Review the questions you missed?")
		if err != nil {
			return err
		}
		if review {
			fmt.Fprintln(out)
			fmt.Fprintln(out, r.Misses(results.Misses))
		}
	}
	return nil
}

// chooseCategory presents the category menu with question counts.
func chooseCategory(p prompt.Prompter, b *bank.Bank) (bank.Category, error) {
	labels := make([]string, len(b.Categories))
	for i, c := range b.Categories {
		labels[i] = fmt.Sprintf("%s (%d questions)", c.Name, len(c.Questions))
	}
	idx, err := p.SelectOption("Choose a category:", labels)
	if err != nil {
		return bank.Category{}, err
	}
	return b.Categories[idx], nil
}

// chooseCount presents the question-count menu for a category with the
// given number of available questions.
func chooseCount(p prompt.Prompter, available int) (int, error) {
	var counts []int
	var labels []string
	for _, n := range countChoices {
		if n < available {
			counts = append(counts, n)
			labels = append(labels, fmt.Sprintf("%d questions", n))
		}
	}
	counts = append(counts, available)
	labels = append(labels, fmt.Sprintf("All %d questions", available))

	idx, err := p.SelectOption("How many questions?", labels)
	if err != nil {
		return 0, err
	}
	return counts[idx], nil
}
