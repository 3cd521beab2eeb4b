// Package prompt defines the interaction boundary between the quiz
// driver and the player. Implementations block until input arrives,
// and the selection loop never hands back an out-of-range choice.
package prompt

import "errors"

// ErrInputClosed is returned when the input stream ends before the
// player responds.
var ErrInputClosed = errors.New("input closed")

// Prompter asks the player for decisions. Every method blocks until
// the player responds or the input stream closes.
type Prompter interface {
	// SelectOption shows text and the numbered options, then reads
	// input until it parses to a number in [1, len(options)]. The
	// returned index is zero-based.
	SelectOption(text string, options []string) (int, error)

	// Confirm asks a yes/no question. The answer is true iff the
	// trimmed input starts with "y", case-insensitive.
	Confirm(text string) (bool, error)

	// Acknowledge shows text and waits for the player to press enter.
	Acknowledge(text string) error
}
