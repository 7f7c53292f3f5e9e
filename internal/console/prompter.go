// Package console handles the interactive text I/O of a drill: prompting,
// the settings banner, the score line and the results transcript.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter writes prompts to out and reads one line of reply from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints prompt on its own line and blocks until a line is read.
// The line is returned without its terminator. io.EOF is returned only when
// input ends before any character of the reply.
func (p *Prompter) Ask(prompt string) (string, error) {
	if _, err := fmt.Fprintln(p.out, prompt); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Println writes a line to the prompter's output.
func (p *Prompter) Println(a ...any) error {
	_, err := fmt.Fprintln(p.out, a...)
	return err
}

// Out is the writer prompts are written to.
func (p *Prompter) Out() io.Writer {
	return p.out
}
