package store

import (
	"context"
	"errors"

	practicesession "github.com/climmt/mathdrill/internal/domain/practice_session"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store journals the rounds of a running session so the results transcript
// can be read back once the run is over.
type Store interface {
	SaveSession(ctx context.Context, session *practicesession.PracticeSession) error
	SaveRound(ctx context.Context, sessionID string, entry practicesession.Entry) error
	ListRounds(ctx context.Context, sessionID string) ([]StoredRound, error)
}

type StoredRound struct {
	Position   int
	Problem    string
	UserAnswer string
	Correct    bool
}
