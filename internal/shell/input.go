package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
)

// Prompter collects line input from the player. Reads block until a line
// arrives; validating variants reprompt until satisfied.
type Prompter struct {
	raw     io.Reader
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter wraps an input source. Passing os.Stdin enables masked
// credential entry when attached to a terminal.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		raw:     r,
		scanner: bufio.NewScanner(r),
		out:     w,
	}
}

// ReadLine prints the prompt and reads one raw line. io.EOF reports an
// exhausted input source.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

// ReadValidated reprompts until the player supplies a non-empty printable
// line. The loop does not time out.
func (p *Prompter) ReadValidated(prompt string) (string, error) {
	for {
		line, err := p.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if !printable(line) {
			fmt.Fprint(p.out, "\nEntered invalid input."+
				"\nInput must contain printable ascii characters only.\n\n")
			continue
		}
		return line, nil
	}
}

// ReadSecret collects a credential without echoing when the input source is
// a terminal; piped input falls back to a plain line read so tests and
// scripts still work.
func (p *Prompter) ReadSecret(prompt string) (string, error) {
	if f, ok := p.raw.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(p.out, prompt)
		secret, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", err
		}
		return string(secret), nil
	}
	return p.ReadLine(prompt)
}

// printable reports whether s is non-empty, unpadded printable text.
func printable(s string) bool {
	if s == "" {
		return false
	}
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
