// Package session implements a single quiz run: a set of questions
// shuffled once at construction and asked strictly in order, with a
// running score and an append-only answer log. The session does no I/O
// and no suspension; it is a synchronous state container the driver
// advances one answer at a time.
package session

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/quizly/internal/bank"
	"github.com/abhisek/quizly/internal/shuffle"
)

var (
	// ErrComplete is returned by SubmitAnswer once every question has
	// been answered. Reaching it means the driver kept asking past the
	// end, which is a bug in the driver.
	ErrComplete = errors.New("session already complete")

	// ErrChoiceRange is returned by SubmitAnswer when the selected
	// option does not exist on the current question. The prompt layer
	// re-asks until the choice is in range, so this too indicates a
	// driver bug.
	ErrChoiceRange = errors.New("selected option out of range")
)

// Session is one play-through over a fixed, shuffled set of questions.
type Session struct {
	id        string
	category  string
	questions []bank.Question
	position  int
	score     int
	log       []AnswerRecord
}

// Option configures a Session at construction time.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source used to shuffle the questions.
// Passing nil keeps the global source.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// New builds a session over a shuffled copy of questions. The input
// slice is never mutated. An empty set is not an error; it yields a
// session that is complete from the start and reports 0/0. A question
// whose correct index falls outside its options is a data-integrity
// error caught here rather than at answer time.
func New(category string, questions []bank.Question, opts ...Option) (*Session, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	for i, q := range questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct index %d out of range for %d options", i+1, q.CorrectIndex, len(q.Options))
		}
	}

	return &Session{
		id:        uuid.New().String(),
		category:  category,
		questions: shuffle.Shuffle(o.rng, questions),
		log:       make([]AnswerRecord, 0, len(questions)),
	}, nil
}

// ID returns the identifier assigned to this session at construction.
func (s *Session) ID() string { return s.id }

// Category returns the category label the session was started from.
func (s *Session) Category() string { return s.category }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Position returns how many questions have been answered so far.
func (s *Session) Position() int { return s.position }

// IsComplete reports whether every question has been answered.
func (s *Session) IsComplete() bool { return s.position == len(s.questions) }

// Current returns the question waiting to be answered, or ok=false
// once the session is complete.
func (s *Session) Current() (bank.Question, bool) {
	if s.IsComplete() {
		return bank.Question{}, false
	}
	return s.questions[s.position], true
}

// Progress returns the answered fraction in [0, 1]. A zero-question
// session reports 0.
func (s *Session) Progress() float64 {
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.position) / float64(len(s.questions))
}

// SubmitAnswer grades the current question against the selected option
// index, appends an AnswerRecord, and advances the cursor. Score and
// position each move at most once per call. The returned Outcome
// carries the feedback to show the player.
func (s *Session) SubmitAnswer(selected int) (Outcome, error) {
	if s.IsComplete() {
		return Outcome{}, ErrComplete
	}

	q := s.questions[s.position]
	if selected < 0 || selected >= len(q.Options) {
		return Outcome{}, fmt.Errorf("%w: choice %d with %d options", ErrChoiceRange, selected, len(q.Options))
	}

	correct := selected == q.CorrectIndex
	s.log = append(s.log, AnswerRecord{
		QuestionIndex:  s.position,
		QuestionPrompt: q.Prompt,
		SelectedIndex:  selected,
		CorrectIndex:   q.CorrectIndex,
		Correct:        correct,
	})
	s.position++
	if correct {
		s.score++
	}

	return Outcome{
		Correct:       correct,
		CorrectOption: q.CorrectOption(),
		Explanation:   q.Explanation,
	}, nil
}

// Log returns a copy of the answer records in submission order.
func (s *Session) Log() []AnswerRecord {
	out := make([]AnswerRecord, len(s.log))
	copy(out, s.log)
	return out
}
