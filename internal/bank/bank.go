// Package bank defines the question-bank model and its loading pipeline.
// A bank is loaded and validated once at startup; sessions only ever see
// questions that already passed every data-integrity check here.
package bank

import "fmt"

// Question is a single multiple-choice question. Options keep their
// authored order; CorrectIndex points into Options.
type Question struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation,omitempty"`
}

// CorrectOption returns the label of the correct option.
func (q Question) CorrectOption() string {
	return q.Options[q.CorrectIndex]
}

// check enforces the data-integrity rules the schema cannot express.
func (q Question) check() error {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("correct_index %d out of range for %d options", q.CorrectIndex, len(q.Options))
	}
	return nil
}

// Category is a named group of questions the player picks from.
type Category struct {
	ID        string
	Name      string
	Questions []Question
}

// Bank is a validated question bank, categories ordered by identifier.
type Bank struct {
	Categories []Category
}

// Lookup returns the category with the given identifier.
func (b *Bank) Lookup(id string) (Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// TotalQuestions returns the number of questions across all categories.
func (b *Bank) TotalQuestions() int {
	total := 0
	for _, c := range b.Categories {
		total += len(c.Questions)
	}
	return total
}

// ValidationError reports a data-integrity problem with one question.
type ValidationError struct {
	Category string
	Index    int // zero-based position within the category
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("category %q question %d: %v", e.Category, e.Index+1, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
