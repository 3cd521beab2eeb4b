// Package ui renders quiz output for a line-based terminal. Every
// method returns a string; the driver decides where it goes. Plain
// mode drops all styling and control sequences so tests and NO_COLOR
// terminals see bare text with the same semantic content.
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizly/internal/session"
	"github.com/abhisek/quizly/internal/ui/theme"
)

const defaultWidth = 72

// Renderer turns session data into terminal output.
type Renderer struct {
	width int
	plain bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the terminal width the renderer lays out for.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithPlain disables styling and screen-control sequences.
func WithPlain(plain bool) Option {
	return func(r *Renderer) { r.plain = plain }
}

// NewRenderer creates a Renderer with the given options.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{width: defaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// styled applies st unless the renderer is in plain mode.
func (r *Renderer) styled(st lipgloss.Style, s string) string {
	if r.plain {
		return s
	}
	return st.Render(s)
}

// Clear returns the sequence that clears the screen and homes the
// cursor, or an empty string in plain mode.
func (r *Renderer) Clear() string {
	if r.plain {
		return ""
	}
	return "\033[2J\033[H"
}

// QuestionHeader returns the divider line shown above a question.
func (r *Renderer) QuestionHeader(num, total int) string {
	return r.styled(theme.Subtitle, fmt.Sprintf("── Question %d/%d ──", num, total))
}

// Progress renders a horizontal bar for the answered fraction, with an
// answered/total counter after it.
func (r *Renderer) Progress(fraction float64, answered, total int) string {
	barWidth := r.width / 3
	if barWidth < 10 {
		barWidth = 10
	}

	filled := int(float64(barWidth) * fraction)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	bar := r.styled(theme.ProgressFilled, strings.Repeat("█", filled)) +
		r.styled(theme.ProgressEmpty, strings.Repeat("░", barWidth-filled))
	return bar + r.styled(theme.Subtitle, fmt.Sprintf(" %d/%d", answered, total))
}

// Feedback renders the immediate verdict for one submitted answer.
func (r *Renderer) Feedback(out session.Outcome) string {
	var b strings.Builder
	if out.Correct {
		b.WriteString(r.styled(theme.Correct, "✓ Correct!"))
	} else {
		b.WriteString(r.styled(theme.Incorrect, "✗ Wrong."))
		b.WriteString(" Answer: ")
		b.WriteString(r.styled(theme.Body, out.CorrectOption))
	}
	if out.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(r.styled(theme.Hint, "Explanation: "+out.Explanation))
	}
	return b.String()
}

// Results renders the end-of-session report.
func (r *Renderer) Results(res session.Results) string {
	var b strings.Builder
	b.WriteString(r.styled(theme.Title, "Session complete!"))
	b.WriteString("\n\n")
	b.WriteString(r.styled(theme.Subtitle, "Category: "+res.Category))
	b.WriteString("\n")
	b.WriteString(r.styled(theme.Body, fmt.Sprintf("Score: %d/%d (%d%%)", res.Score, res.Total, res.Percent)))
	b.WriteString("\n")

	grade := res.Grade.DisplayName()
	if r.plain {
		b.WriteString(grade)
	} else {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(gradeColor(res.Grade)).Render(grade))
	}
	b.WriteString("\n")
	return b.String()
}

// Misses renders the review listing for incorrectly answered
// questions, showing the full option list of each with the player's
// pick and the correct answer marked.
func (r *Renderer) Misses(misses []session.Miss) string {
	if len(misses) == 0 {
		return r.styled(theme.Correct, "Nothing to review. Every answer was correct!") + "\n"
	}

	var b strings.Builder
	b.WriteString(r.styled(theme.Subtitle, "Review"))
	b.WriteString("\n")
	b.WriteString(r.styled(theme.Divider, strings.Repeat("─", 24)))
	b.WriteString("\n\n")

	for _, m := range misses {
		b.WriteString(r.styled(theme.Body, fmt.Sprintf("%d) %s", m.Record.QuestionIndex+1, m.Question.Prompt)))
		b.WriteString("\n")
		for i, opt := range m.Question.Options {
			switch i {
			case m.Record.CorrectIndex:
				b.WriteString(r.styled(theme.Correct, "   ✓ "+opt))
			case m.Record.SelectedIndex:
				b.WriteString(r.styled(theme.Incorrect, "   ✗ "+opt))
			default:
				b.WriteString(r.styled(theme.Body, "     "+opt))
			}
			b.WriteString("\n")
		}
		if m.Question.Explanation != "" {
			b.WriteString(r.styled(theme.Hint, "   "+m.Question.Explanation))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// gradeColor maps a grade to its display color.
func gradeColor(g session.Grade) color.Color {
	switch g {
	case session.GradePerfect:
		return theme.Accent
	case session.GradeGreat:
		return theme.Success
	case session.GradeGood:
		return theme.Secondary
	case session.GradeFair:
		return theme.TextDim
	default:
		return theme.Error
	}
}
