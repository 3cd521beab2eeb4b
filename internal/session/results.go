package session

import (
	"math"

	"github.com/abhisek/quizly/internal/bank"
)

// Results holds the data displayed on the end-of-session report.
type Results struct {
	Category string
	Score    int
	Total    int
	Percent  int
	Grade    Grade
	Misses   []Miss
}

// Miss pairs an incorrect answer with its originating question so the
// review step can show the full option list. The pairing goes through
// the record's QuestionIndex, never through prompt-text lookup.
type Miss struct {
	Record   AnswerRecord
	Question bank.Question
}

// Results builds the report for the session so far. It is pure and
// idempotent; calling it twice on the same state yields the same
// report. Percent is rounded to the nearest integer and defined as 0
// for a zero-question session.
func (s *Session) Results() Results {
	percent := 0
	if len(s.questions) > 0 {
		percent = int(math.Round(100 * float64(s.score) / float64(len(s.questions))))
	}

	var misses []Miss
	for _, rec := range s.log {
		if !rec.Correct {
			misses = append(misses, Miss{Record: rec, Question: s.questions[rec.QuestionIndex]})
		}
	}

	return Results{
		Category: s.category,
		Score:    s.score,
		Total:    len(s.questions),
		Percent:  percent,
		Grade:    GradeFor(percent),
		Misses:   misses,
	}
}
