// internal/service/session.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/climmt/mathdrill/internal/console"
	practicesession "github.com/climmt/mathdrill/internal/domain/practice_session"
	"github.com/climmt/mathdrill/internal/store"
)

// State is a step of the session loop.
type State int

const (
	StateNotStarted State = iota
	StateAwaitConfirmation
	StateRunning
	StateComplete
	StateShowingResults
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateAwaitConfirmation:
		return "await_confirmation"
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateShowingResults:
		return "showing_results"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

const (
	promptConfirm = "Enter Y to confirm selection, enter Q to quit"
	promptBegin   = "Press Enter to begin"
	promptResults = "Show results? (y/n)"
	promptQuit    = "\nPress enter to quit"
)

// Console is the interactive terminal a session runs on.
type Console interface {
	Asker
	Println(a ...any) error
	Out() io.Writer
}

// Outcome describes how a session ended.
type Outcome struct {
	Session       *practicesession.PracticeSession
	Started       bool // false when the user quit at confirmation
	ShowedResults bool
}

// SessionRunner drives a whole drill from the settings banner to the
// results transcript.
type SessionRunner struct {
	store   store.Store
	driver  *Driver
	console Console
	logger  *slog.Logger
	now     func() time.Time
}

// NewSessionRunner creates a SessionRunner that reads the wall clock.
func NewSessionRunner(s store.Store, d *Driver, c Console, logger *slog.Logger) *SessionRunner {
	return &SessionRunner{
		store:   s,
		driver:  d,
		console: c,
		logger:  logger,
		now:     time.Now,
	}
}

// SetClock replaces the clock used to time sessions.
func (r *SessionRunner) SetClock(now func() time.Time) {
	r.now = now
}

// Run executes one session for cfg. Quitting at the confirmation prompt is
// not an error: the returned Outcome has Started set to false.
func (r *SessionRunner) Run(ctx context.Context, cfg practicesession.SessionConfig) (Outcome, error) {
	session, err := practicesession.New(cfg)
	if err != nil {
		return Outcome{}, fmt.Errorf("new session: %w", err)
	}
	out := Outcome{Session: session}

	state := StateNotStarted
	for state != StateTerminated {
		r.logger.Debug("session state", "session_id", session.ID, "state", state.String())

		switch state {
		case StateNotStarted:
			if err := console.WriteBanner(r.console.Out(), cfg); err != nil {
				return out, err
			}
			state = StateAwaitConfirmation

		case StateAwaitConfirmation:
			confirmed, err := r.confirm()
			if err != nil {
				return out, err
			}
			state = StateTerminated
			if confirmed {
				state = StateRunning
			}

		case StateRunning:
			out.Started = true
			if err := r.runRounds(ctx, session); err != nil {
				return out, err
			}
			state = StateComplete

		case StateComplete:
			if err := r.report(session); err != nil {
				return out, err
			}
			state = StateShowingResults

		case StateShowingResults:
			shown, err := r.showResults(ctx, session)
			if err != nil {
				return out, err
			}
			out.ShowedResults = shown
			state = StateTerminated
		}
	}

	r.logger.Debug("session finished",
		"session_id", session.ID,
		"score", session.Record.Score,
		"rounds", session.Record.Completed(),
	)
	return out, nil
}

// confirm re-prompts until the user answers y or q. End of input counts as q.
func (r *SessionRunner) confirm() (bool, error) {
	for {
		reply, err := r.console.Ask(promptConfirm)
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("read confirmation: %w", err)
		}

		switch normalize(reply) {
		case "y":
			return true, nil
		case "q":
			return false, nil
		}
	}
}

func (r *SessionRunner) runRounds(ctx context.Context, session *practicesession.PracticeSession) error {
	if _, err := r.console.Ask(promptBegin); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrInputClosed
		}
		return fmt.Errorf("read begin: %w", err)
	}

	if err := r.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	if session.Config.Timed {
		session.Start(r.now())
	}

	for !session.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.console.Println(fmt.Sprintf("Problem %d:", session.Record.Completed()+1)); err != nil {
			return err
		}

		round, err := r.driver.RunProblem(ctx, session.Config)
		if err != nil {
			return err
		}

		entry := session.Record.Add(round.Problem.Solved(), round.UserAnswer, round.Correct)
		if err := r.store.SaveRound(ctx, session.ID, entry); err != nil {
			return fmt.Errorf("save round %d: %w", entry.Index, err)
		}
	}

	if session.Config.Timed {
		session.Finish(r.now())
	}
	return nil
}

func (r *SessionRunner) report(session *practicesession.PracticeSession) error {
	if err := r.console.Println(console.FormatScore(session.Record.Score, session.Config.ProblemCount)); err != nil {
		return err
	}
	if session.Config.Timed {
		return r.console.Println(console.FormatElapsed(session.Elapsed()))
	}
	return nil
}

// showResults prints the transcript unless the user answers n.
func (r *SessionRunner) showResults(ctx context.Context, session *practicesession.PracticeSession) (bool, error) {
	reply, err := r.console.Ask(promptResults)
	if errors.Is(err, io.EOF) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read results choice: %w", err)
	}
	if normalize(reply) == "n" {
		return false, nil
	}

	rounds, err := r.store.ListRounds(ctx, session.ID)
	if err != nil {
		return false, fmt.Errorf("list rounds: %w", err)
	}

	entries := make([]practicesession.Entry, len(rounds))
	for i, rd := range rounds {
		entries[i] = practicesession.Entry{
			Index:      rd.Position,
			Problem:    rd.Problem,
			UserAnswer: rd.UserAnswer,
			Correct:    rd.Correct,
		}
	}
	if err := console.WriteResults(r.console.Out(), entries); err != nil {
		return false, err
	}

	if _, err := r.console.Ask(promptQuit); err != nil && !errors.Is(err, io.EOF) {
		return true, fmt.Errorf("read quit: %w", err)
	}
	return true, nil
}

func normalize(reply string) string {
	return strings.ToLower(strings.TrimSpace(reply))
}
