package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// ErrExitRequested is returned by every prompt when the operator enters the
// exit keyword. Callers must forward it unchanged so the abort unwinds all the
// way to the outermost loop.
var ErrExitRequested = errors.New("exit requested")

// Prompter owns every console read. Each line read by Input is compared
// against the exit keyword (case-insensitive) before any further parsing;
// password reads skip that check so a password may legally equal the keyword.
type Prompter struct {
	raw         io.Reader
	in          *bufio.Reader
	out         io.Writer
	exitKeyword string
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer, exitKeyword string) *Prompter {
	return &Prompter{
		raw:         in,
		in:          bufio.NewReader(in),
		out:         out,
		exitKeyword: exitKeyword,
	}
}

// Input prints the prompt and reads one line without its trailing newline.
func (p *Prompter) Input(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if strings.EqualFold(line, p.exitKeyword) {
		fmt.Fprintln(p.out, Warn("\nExit requested."))
		return "", ErrExitRequested
	}
	return line, nil
}

// Password reads a line without echoing it when the input is a terminal.
// Scripted and piped input falls back to a plain read.
func (p *Prompter) Password(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if f, ok := p.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(secret), nil
	}
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ValidInt prompts until the operator enters an integer within [min, max].
// An empty prompt selects the standard choice prompt for the range.
func (p *Prompter) ValidInt(min, max int, prompt string) (int, error) {
	if prompt == "" {
		prompt = fmt.Sprintf("\nEnter your choice (%d-%d): ", min, max)
	}
	for {
		raw, err := p.Input(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			fmt.Fprintln(p.out, Error("Please enter a numeric value."))
			continue
		}
		if n < min || n > max {
			fmt.Fprintln(p.out, Error(fmt.Sprintf("Invalid choice. Please enter a number between %d and %d.", min, max)))
			continue
		}
		return n, nil
	}
}

// Acknowledge blocks until the operator presses Enter.
func (p *Prompter) Acknowledge() error {
	_, err := p.Input("\nPress Enter to continue...")
	return err
}

// Notify writes one line to the console.
func (p *Prompter) Notify(message string) {
	fmt.Fprintln(p.out, message)
}
