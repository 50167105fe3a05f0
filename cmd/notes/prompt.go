package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/notekeeper/pkg/core"
)

// prompter reads answers line by line from the command input.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
}

// ask returns value when set, otherwise prompts for it.
// A blank answer is an error.
func (p *prompter) ask(value, question, field string) (string, error) {
	if value = strings.TrimSpace(value); value != "" {
		return value, nil
	}

	fmt.Fprintf(p.out, "%s ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading %s: %w", field, err)
	}
	fmt.Fprintln(p.out)

	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", fmt.Errorf("%w: the %s parameter must be a non-empty string", core.ErrInvalidArgument, field)
	}
	return answer, nil
}
