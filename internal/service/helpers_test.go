package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"

	"github.com/climmt/mathdrill/internal/store"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// scriptedConsole answers the fixed prompts from queued replies and every
// other prompt, which is a problem, through answer.
type scriptedConsole struct {
	out      bytes.Buffer
	prompts  []string
	confirm  []string
	results  []string
	problems int
	answer   func(n int, prompt string) (string, error)
}

func (c *scriptedConsole) Ask(prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	fmt.Fprintln(&c.out, prompt)

	switch prompt {
	case promptConfirm:
		return pop(&c.confirm)
	case promptResults:
		return pop(&c.results)
	case promptBegin, promptQuit:
		return "", nil
	}

	c.problems++
	if c.answer == nil {
		return "", io.EOF
	}
	return c.answer(c.problems, prompt)
}

func (c *scriptedConsole) Println(a ...any) error {
	_, err := fmt.Fprintln(&c.out, a...)
	return err
}

func (c *scriptedConsole) Out() io.Writer {
	return &c.out
}

func (c *scriptedConsole) count(prompt string) int {
	n := 0
	for _, p := range c.prompts {
		if p == prompt {
			n++
		}
	}
	return n
}

func pop(queue *[]string) (string, error) {
	if len(*queue) == 0 {
		return "", io.EOF
	}
	reply := (*queue)[0]
	*queue = (*queue)[1:]
	return reply, nil
}

// solve works out the expected reply to a displayed problem such as "12 / 3".
func solve(t *testing.T, prompt string) string {
	t.Helper()
	fields := strings.Fields(prompt)
	if len(fields) != 3 {
		t.Fatalf("unexpected problem prompt %q", prompt)
	}
	left, err := strconv.Atoi(fields[0])
	if err != nil {
		t.Fatalf("left operand of %q: %v", prompt, err)
	}
	right, err := strconv.Atoi(fields[2])
	if err != nil {
		t.Fatalf("right operand of %q: %v", prompt, err)
	}

	switch fields[1] {
	case "+":
		return strconv.Itoa(left + right)
	case "-":
		return strconv.Itoa(left - right)
	case "•":
		return strconv.Itoa(left * right)
	case "/":
		if right == 0 {
			return "undefined"
		}
		if left%right != 0 {
			t.Fatalf("inexact division %q", prompt)
		}
		return strconv.Itoa(left / right)
	}
	t.Fatalf("unknown operator in %q", prompt)
	return ""
}
