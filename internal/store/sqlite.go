// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	practicesession "github.com/climmt/mathdrill/internal/domain/practice_session"
)

const schema = `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    modes TEXT NOT NULL,
    problem_count INTEGER NOT NULL,
    timed INTEGER NOT NULL,
    allow_negatives INTEGER NOT NULL,
    add_sub_range TEXT NOT NULL,
    mult_div_range TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS rounds (
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    problem TEXT NOT NULL,
    user_answer TEXT NOT NULL,
    correct INTEGER NOT NULL,
    PRIMARY KEY (session_id, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

// MemoryPath opens a database that lives only as long as the process.
const MemoryPath = ":memory:"

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: is a separate database, so keep exactly one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// NewMemory opens an in-memory journal discarded on Close.
func NewMemory() (*SQLiteStore, error) {
	return NewSQLite(MemoryPath)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Sessions
// ============================================================================

func (s *SQLiteStore) SaveSession(ctx context.Context, session *practicesession.PracticeSession) error {
	cfg := session.Config

	letters := make([]string, len(cfg.Modes))
	for i, m := range cfg.Modes {
		letters[i] = m.Letter()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO sessions (id, modes, problem_count, timed, allow_negatives, add_sub_range, mult_div_range) VALUES (?, ?, ?, ?, ?, ?, ?)",
		session.ID, strings.Join(letters, ""), cfg.ProblemCount, cfg.Timed, cfg.AllowNegatives,
		cfg.AddSubRange.String(), cfg.MultDivRange.String(),
	)
	return err
}

func (s *SQLiteStore) sessionExists(ctx context.Context, id string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sessions WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ============================================================================
// Rounds
// ============================================================================

func (s *SQLiteStore) SaveRound(ctx context.Context, sessionID string, entry practicesession.Entry) error {
	ok, err := s.sessionExists(ctx, sessionID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO rounds (session_id, position, problem, user_answer, correct) VALUES (?, ?, ?, ?, ?)",
		sessionID, entry.Index, entry.Problem, entry.UserAnswer, entry.Correct,
	)
	return err
}

func (s *SQLiteStore) ListRounds(ctx context.Context, sessionID string) ([]StoredRound, error) {
	ok, err := s.sessionExists(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT position, problem, user_answer, correct FROM rounds WHERE session_id = ? ORDER BY position",
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []StoredRound
	for rows.Next() {
		var r StoredRound
		if err := rows.Scan(&r.Position, &r.Problem, &r.UserAnswer, &r.Correct); err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}
