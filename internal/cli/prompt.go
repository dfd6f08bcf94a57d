package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter asks questions on stderr and reads answers from the command's
// input. Secrets are read without echo when the input is a terminal.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
	quiet    bool
}

// newPrompter returns a prompter for cmd. With quiet set no questions are
// printed and answers are read line by line, as with --password-stdin.
func newPrompter(cmd *cobra.Command, quiet bool) *prompter {
	input := cmd.InOrStdin()
	p := &prompter{
		in:    bufio.NewReader(input),
		out:   cmd.ErrOrStderr(),
		quiet: quiet,
	}

	if f, ok := input.(*os.File); ok && !quiet && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.terminal = true
	}
	return p
}

func (p *prompter) secret(question string) (string, error) {
	if !p.terminal {
		return p.line(question)
	}

	fmt.Fprintf(p.out, "%s: ", question)
	raw, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read pass phrase: %w", err)
	}
	return string(raw), nil
}

// line reads one line. End of input counts as an empty answer.
func (p *prompter) line(question string) (string, error) {
	if !p.quiet {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	answer, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(answer, "\r\n"), nil
}
