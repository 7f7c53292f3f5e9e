// internal/service/driver.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	practicesession "github.com/climmt/mathdrill/internal/domain/practice_session"
	"github.com/climmt/mathdrill/internal/domain/problem"
	"github.com/climmt/mathdrill/internal/grader"
)

var (
	// ErrInputClosed is returned when stdin ends while a reply is required.
	ErrInputClosed = errors.New("input closed")

	// ErrNoModes is returned when a config without any operation reaches the driver.
	ErrNoModes = errors.New("no math modes configured")
)

// Asker prompts the user and returns the line they typed.
type Asker interface {
	Ask(prompt string) (string, error)
}

// Round is the outcome of one asked problem.
type Round struct {
	Problem    problem.Problem
	UserAnswer string
	Correct    bool
}

// Driver asks single problems: it picks an operation, draws operands,
// prompts for the answer and grades it.
type Driver struct {
	rng    problem.Source
	asker  Asker
	grader grader.Grader
	logger *slog.Logger
}

// NewDriver creates a Driver.
func NewDriver(rng problem.Source, asker Asker, g grader.Grader, logger *slog.Logger) *Driver {
	return &Driver{
		rng:    rng,
		asker:  asker,
		grader: g,
		logger: logger,
	}
}

// RunProblem asks one problem drawn according to cfg and blocks for the reply.
func (d *Driver) RunProblem(ctx context.Context, cfg practicesession.SessionConfig) (Round, error) {
	if err := ctx.Err(); err != nil {
		return Round{}, err
	}
	if len(cfg.Modes) == 0 {
		return Round{}, ErrNoModes
	}

	op := cfg.Modes[d.rng.Intn(len(cfg.Modes))]
	operands, err := problem.SelectOperands(d.rng, cfg.RangeFor(op), cfg.AllowNegatives)
	if err != nil {
		return Round{}, fmt.Errorf("select %s operands: %w", op, err)
	}

	p := problem.Generate(op, operands)
	d.logger.Debug("problem generated",
		"operation", op.String(),
		"x", operands.X,
		"y", operands.Y,
		"answer", p.Answer.String(),
	)

	reply, err := d.asker.Ask(p.String())
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Round{}, ErrInputClosed
		}
		return Round{}, fmt.Errorf("read answer: %w", err)
	}

	correct := d.grader.Grade(reply, p.Answer)
	d.logger.Debug("answer graded", "problem", p.String(), "correct", correct)

	return Round{
		Problem:    p,
		UserAnswer: reply,
		Correct:    correct,
	}, nil
}
