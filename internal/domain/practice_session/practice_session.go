package practicesession

import (
	"time"

	"github.com/climmt/mathdrill/internal/id"
)

// PracticeSession is the state of one drill run. It is owned by a single
// session loop and is never shared.
type PracticeSession struct {
	ID         string
	Config     SessionConfig
	Record     Record
	StartedAt  time.Time
	FinishedAt time.Time
}

// Entry is one transcript line kept for the end-of-run review.
type Entry struct {
	Index      int
	Problem    string // problem text including the correct answer
	UserAnswer string
	Correct    bool
}

// Record accumulates the score and transcript of a session.
// Score never exceeds len(Entries).
type Record struct {
	Entries []Entry
	Score   int
}

// New validates cfg and creates an empty session for it.
func New(cfg SessionConfig) (*PracticeSession, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &PracticeSession{
		ID:     id.GenerateID(),
		Config: cfg,
		Record: Record{Entries: make([]Entry, 0, cfg.ProblemCount)},
	}, nil
}

// Add appends the next transcript entry and bumps the score when correct.
func (r *Record) Add(problemText, userAnswer string, correct bool) Entry {
	e := Entry{
		Index:      len(r.Entries) + 1,
		Problem:    problemText,
		UserAnswer: userAnswer,
		Correct:    correct,
	}
	r.Entries = append(r.Entries, e)
	if correct {
		r.Score++
	}
	return e
}

// Completed is the number of rounds answered so far.
func (r *Record) Completed() int {
	return len(r.Entries)
}

// Done reports whether every configured round has been recorded.
func (s *PracticeSession) Done() bool {
	return s.Record.Completed() >= s.Config.ProblemCount
}

// Start marks the beginning of the timed part of the run.
func (s *PracticeSession) Start(now time.Time) {
	s.StartedAt = now
}

// Finish marks the end of the run.
func (s *PracticeSession) Finish(now time.Time) {
	s.FinishedAt = now
}

// Elapsed is the wall-clock time between Start and Finish.
func (s *PracticeSession) Elapsed() time.Duration {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
