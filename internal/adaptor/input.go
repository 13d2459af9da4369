package adaptor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter reads operator input. The password reader is a seam so tests can
// avoid touching a real terminal.
type Prompter struct {
	in           *bufio.Reader
	out          io.Writer
	readPassword func() ([]byte, error)
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		readPassword: func() ([]byte, error) {
			return term.ReadPassword(int(os.Stdin.Fd()))
		},
	}
}

// String prints the prompt and reads one line, trimmed. A partial line at
// EOF is still returned.
func (p *Prompter) String(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int re-prompts until a valid integer arrives, the input ends, or ctx is
// cancelled.
func (p *Prompter) Int(ctx context.Context, prompt string) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		input, err := p.String(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Fprintln(p.out, "Please enter a valid integer.")
			continue
		}
		return value, nil
	}
}

func (p *Prompter) Int64(ctx context.Context, prompt string) (int64, error) {
	value, err := p.Int(ctx, prompt)
	return int64(value), err
}

// IntInRange re-prompts until the integer falls within [min, max].
func (p *Prompter) IntInRange(ctx context.Context, prompt string, min, max int) (int, error) {
	for {
		value, err := p.Int(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if value >= min && value <= max {
			return value, nil
		}
		fmt.Fprintf(p.out, "Please enter a number between %d and %d.\n", min, max)
	}
}

// Password reads without echo. When no terminal is attached the read falls
// back to a plain line.
func (p *Prompter) Password(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	pw, err := p.readPassword()
	fmt.Fprintln(p.out)
	if err != nil {
		return p.String("")
	}
	return string(pw), nil
}

// Confirm asks a Y/N question; anything but Y or y declines.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	input, err := p.String(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(input, "y"), nil
}
