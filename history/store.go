// Package history records finished countdowns in a local SQLite database.
// It is used for the session list and for the recent duration presets.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/yllada/egg-timer/common"
)

// Outcome describes how a session ended.
type Outcome string

const (
	// OutcomeCompleted means the countdown reached zero.
	OutcomeCompleted Outcome = "completed"
	// OutcomeReset means the user reset the dial.
	OutcomeReset Outcome = "reset"
	// OutcomeRestarted means the user rewound to the last set duration.
	OutcomeRestarted Outcome = "restarted"
	// OutcomeReplaced means a new duration was committed over a paused one.
	OutcomeReplaced Outcome = "replaced"
	// OutcomeAbandoned means the application exited mid-session.
	OutcomeAbandoned Outcome = "abandoned"
)

// Session is one committed countdown.
type Session struct {
	ID        string
	Duration  int // seconds committed
	Remaining int // seconds left when the session ended
	Outcome   Outcome
	StartedAt time.Time
	EndedAt   time.Time
}

// Elapsed returns how many seconds of the session were counted down.
func (s Session) Elapsed() int {
	if s.Remaining > s.Duration {
		return 0
	}
	return s.Duration - s.Remaining
}

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id                TEXT PRIMARY KEY,
	duration_seconds  INTEGER NOT NULL,
	remaining_seconds INTEGER NOT NULL,
	outcome           TEXT NOT NULL,
	started_at        INTEGER NOT NULL,
	ended_at          INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_ended_at ON sessions(ended_at);
`

// Store persists sessions.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrHistoryUnavailable, err)
	}
	// A single connection serializes writers, which SQLite needs anyway
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: creating schema: %v", common.ErrHistoryUnavailable, err)
	}

	return &Store{db: db, path: path}, nil
}

// OpenDefault opens the database in the user's data directory.
func OpenDefault() (*Store, error) {
	dataDir, err := common.GetDataDir()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrHistoryUnavailable, err)
	}
	return Open(filepath.Join(dataDir, common.HistoryFileName))
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert stores a finished session.
func (s *Store) Insert(ctx context.Context, session Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, duration_seconds, remaining_seconds, outcome, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.Duration,
		session.Remaining,
		string(session.Outcome),
		session.StartedAt.UnixMilli(),
		session.EndedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("inserting session %s: %w", session.ID, err)
	}
	return nil
}

// Get returns the session with the given id.
func (s *Store) Get(ctx context.Context, id string) (Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, duration_seconds, remaining_seconds, outcome, started_at, ended_at
		 FROM sessions WHERE id = ?`, id)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return Session{}, common.ErrSessionNotFound
	}
	return session, err
}

// Recent returns up to limit sessions, most recently ended first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, duration_seconds, remaining_seconds, outcome, started_at, ended_at
		 FROM sessions ORDER BY ended_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// RecentDurations returns up to limit distinct committed durations, most
// recently used first.
func (s *Store) RecentDurations(ctx context.Context, limit int) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT duration_seconds FROM sessions
		 WHERE duration_seconds > 0
		 GROUP BY duration_seconds
		 ORDER BY MAX(ended_at) DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing durations: %w", err)
	}
	defer rows.Close()

	var durations []int
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		durations = append(durations, d)
	}
	return durations, rows.Err()
}

// Clear deletes every session and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("clearing sessions: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(sc scanner) (Session, error) {
	var (
		session        Session
		outcome        string
		started, ended int64
	)
	if err := sc.Scan(&session.ID, &session.Duration, &session.Remaining, &outcome, &started, &ended); err != nil {
		return Session{}, err
	}
	session.Outcome = Outcome(outcome)
	session.StartedAt = time.UnixMilli(started)
	session.EndedAt = time.UnixMilli(ended)
	return session, nil
}
