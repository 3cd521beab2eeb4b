package prompt

import "fmt"

// Script is a deterministic Prompter for testing. It answers prompts
// from queued responses in FIFO order and records every prompt shown.
type Script struct {
	selections []int
	confirms   []bool
	Prompts    []string
}

var _ Prompter = (*Script)(nil)

// NewScript creates a Script with queued zero-based selections and
// yes/no confirmations.
func NewScript(selections []int, confirms []bool) *Script {
	return &Script{selections: selections, confirms: confirms}
}

// AddSelection queues another zero-based selection.
func (s *Script) AddSelection(idx int) {
	s.selections = append(s.selections, idx)
}

// AddConfirm queues another confirmation answer.
func (s *Script) AddConfirm(v bool) {
	s.confirms = append(s.confirms, v)
}

// SelectOption returns the next queued selection, or ErrInputClosed
// when the queue is exhausted.
func (s *Script) SelectOption(text string, options []string) (int, error) {
	s.Prompts = append(s.Prompts, text)
	if len(s.selections) == 0 {
		return 0, fmt.Errorf("no selection queued for %q: %w", text, ErrInputClosed)
	}
	idx := s.selections[0]
	s.selections = s.selections[1:]
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("queued selection %d out of range for %d options", idx, len(options))
	}
	return idx, nil
}

// Confirm returns the next queued confirmation, or ErrInputClosed when
// the queue is exhausted.
func (s *Script) Confirm(text string) (bool, error) {
	s.Prompts = append(s.Prompts, text)
	if len(s.confirms) == 0 {
		return false, fmt.Errorf("no confirmation queued for %q: %w", text, ErrInputClosed)
	}
	v := s.confirms[0]
	s.confirms = s.confirms[1:]
	return v, nil
}

// Acknowledge records the prompt and returns immediately.
func (s *Script) Acknowledge(text string) error {
	s.Prompts = append(s.Prompts, text)
	return nil
}
