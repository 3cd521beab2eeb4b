package session

// AnswerRecord captures one answered question. QuestionIndex is the
// question's position in the shuffled session order, so a record stays
// unambiguous even when two questions share the same prompt text.
type AnswerRecord struct {
	QuestionIndex  int
	QuestionPrompt string
	SelectedIndex  int
	CorrectIndex   int
	Correct        bool
}

// Outcome is the immediate feedback for one submitted answer.
type Outcome struct {
	Correct       bool
	CorrectOption string
	Explanation   string
}
