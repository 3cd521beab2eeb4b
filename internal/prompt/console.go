package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Console is a Prompter over a line-based reader and writer, normally
// stdin and stdout.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

var _ Prompter = (*Console)(nil)

// NewConsole returns a Console reading lines from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{scanner: bufio.NewScanner(in), out: out}
}

// SelectOption prints the prompt and numbered options, then re-asks
// until the input is a number in range. Invalid input never escapes
// this loop; the caller always receives a valid zero-based index.
func (c *Console) SelectOption(text string, options []string) (int, error) {
	fmt.Fprintln(c.out, text)
	for i, opt := range options {
		fmt.Fprintf(c.out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprint(c.out, "\n> ")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(options) {
			fmt.Fprintf(c.out, "Enter a number from 1 to %d.\n", len(options))
			continue
		}
		return choice - 1, nil
	}
}

// Confirm asks text as a yes/no question.
func (c *Console) Confirm(text string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/n] ", text)
	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}

// Acknowledge prints text and consumes one line of input.
func (c *Console) Acknowledge(text string) error {
	fmt.Fprint(c.out, text)
	_, err := c.readLine()
	return err
}

func (c *Console) readLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return c.scanner.Text(), nil
}
