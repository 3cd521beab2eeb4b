package ui

import (
	"strings"
	"testing"

	"github.com/abhisek/quizly/internal/bank"
	"github.com/abhisek/quizly/internal/session"
)

func plainRenderer() *Renderer {
	return NewRenderer(WithPlain(true))
}

func TestBanner_WideTerminal(t *testing.T) {
	r := NewRenderer(WithPlain(true), WithWidth(80))
	got := r.Banner()
	if !strings.Contains(got, "██") {
		t.Error("wide banner should use the block art")
	}
	if !strings.Contains(got, "Test your knowledge") {
		t.Error("banner missing tagline")
	}
}

func TestBanner_NarrowTerminal(t *testing.T) {
	r := NewRenderer(WithPlain(true), WithWidth(40))
	got := r.Banner()
	if strings.Contains(got, "██") {
		t.Error("narrow banner should not use the block art")
	}
	if !strings.Contains(got, "Q U I Z L Y") {
		t.Error("narrow banner missing compact fallback")
	}
}

func TestClear_PlainModeIsEmpty(t *testing.T) {
	if got := plainRenderer().Clear(); got != "" {
		t.Errorf("Clear() in plain mode = %q, want empty", got)
	}
	if got := NewRenderer().Clear(); got == "" {
		t.Error("Clear() in styled mode should emit a control sequence")
	}
}

func TestQuestionHeader(t *testing.T) {
	got := plainRenderer().QuestionHeader(2, 5)
	if got != "── Question 2/5 ──" {
		t.Errorf("QuestionHeader(2, 5) = %q", got)
	}
}

func TestProgress_FillCounts(t *testing.T) {
	r := NewRenderer(WithPlain(true), WithWidth(60))
	barWidth := 60 / 3

	tests := []struct {
		fraction float64
		filled   int
	}{
		{0, 0},
		{0.5, barWidth / 2},
		{1, barWidth},
		{1.5, barWidth}, // clamped
		{-1, 0},         // clamped
	}
	for _, tt := range tests {
		got := r.Progress(tt.fraction, 1, 2)
		if n := strings.Count(got, "█"); n != tt.filled {
			t.Errorf("Progress(%v) filled = %d, want %d", tt.fraction, n, tt.filled)
		}
		if n := strings.Count(got, "░"); n != barWidth-tt.filled {
			t.Errorf("Progress(%v) empty = %d, want %d", tt.fraction, n, barWidth-tt.filled)
		}
		if !strings.Contains(got, "1/2") {
			t.Errorf("Progress(%v) missing counter: %q", tt.fraction, got)
		}
	}
}

func TestFeedback_Correct(t *testing.T) {
	got := plainRenderer().Feedback(session.Outcome{Correct: true})
	if !strings.Contains(got, "✓ Correct!") {
		t.Errorf("Feedback = %q, want correct marker", got)
	}
}

func TestFeedback_WrongShowsAnswer(t *testing.T) {
	out := session.Outcome{Correct: false, CorrectOption: "Paris"}
	got := plainRenderer().Feedback(out)
	if !strings.Contains(got, "✗ Wrong.") {
		t.Errorf("Feedback = %q, want wrong marker", got)
	}
	if !strings.Contains(got, "Answer: Paris") {
		t.Errorf("Feedback = %q, want correct answer", got)
	}
}

func TestFeedback_IncludesExplanation(t *testing.T) {
	out := session.Outcome{Correct: true, Explanation: "Because reasons."}
	got := plainRenderer().Feedback(out)
	if !strings.Contains(got, "Explanation: Because reasons.") {
		t.Errorf("Feedback = %q, want explanation", got)
	}
}

func TestResults_Content(t *testing.T) {
	res := session.Results{
		Category: "Science",
		Score:    4,
		Total:    5,
		Percent:  80,
		Grade:    session.GradeGreat,
	}
	got := plainRenderer().Results(res)
	for _, want := range []string{"Session complete!", "Category: Science", "Score: 4/5 (80%)", "Great"} {
		if !strings.Contains(got, want) {
			t.Errorf("Results missing %q:\n%s", want, got)
		}
	}
}

func TestMisses_Empty(t *testing.T) {
	got := plainRenderer().Misses(nil)
	if !strings.Contains(got, "Nothing to review") {
		t.Errorf("Misses(nil) = %q", got)
	}
}

func TestMisses_MarksOptions(t *testing.T) {
	misses := []session.Miss{
		{
			Record: session.AnswerRecord{
				QuestionIndex: 1,
				SelectedIndex: 0,
				CorrectIndex:  2,
				Correct:       false,
			},
			Question: bank.Question{
				Prompt:      "What is the capital of Japan?",
				Options:     []string{"Seoul", "Beijing", "Tokyo"},
				Explanation: "Tokyo replaced Kyoto in 1868.",
			},
		},
	}
	got := plainRenderer().Misses(misses)

	for _, want := range []string{
		"2) What is the capital of Japan?",
		"✗ Seoul",
		"✓ Tokyo",
		"Beijing",
		"Tokyo replaced Kyoto in 1868.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Misses missing %q:\n%s", want, got)
		}
	}
}
