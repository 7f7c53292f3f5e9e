package grader

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/climmt/mathdrill/internal/domain/problem"
)

// Grader decides whether a typed answer matches a problem's answer.
type Grader interface {
	Grade(userAnswer string, expected problem.Answer) bool
}

// ExactGrader accepts an answer only when its trimmed, case-folded text
// equals the expected answer's text. There is no numeric tolerance.
// A Caser is stateful, so an ExactGrader must not be shared across goroutines.
type ExactGrader struct {
	fold cases.Caser
}

// Compile-time check: *ExactGrader satisfies the Grader interface.
var _ Grader = (*ExactGrader)(nil)

// NewExactGrader creates an ExactGrader.
func NewExactGrader() *ExactGrader {
	return &ExactGrader{fold: cases.Fold()}
}

func (g *ExactGrader) Grade(userAnswer string, expected problem.Answer) bool {
	answer := strings.TrimSpace(userAnswer)
	if answer == "" {
		return false
	}
	return g.fold.String(answer) == g.fold.String(expected.String())
}
