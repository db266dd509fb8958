// Package transcript keeps a log of conversation turns in SQLite.
// The log is write-only as far as replying goes: nothing in it is read
// back to shape later answers.
package transcript

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Turn is one user message and the bot's reply
type Turn struct {
	ID        int64
	SessionID string
	Input     string
	Reply     string
	Intents   []string
	CreatedAt time.Time
}

// Session summarizes the turns recorded under one session ID
type Session struct {
	ID     string
	Turns  int
	LastAt time.Time
}

// NewSessionID returns a fresh random session identifier
func NewSessionID() string {
	return uuid.NewString()
}

// Store is a SQLite-backed transcript log
type Store struct {
	db *sql.DB
}

// Open opens or creates the transcript database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		input TEXT NOT NULL,
		reply TEXT NOT NULL,
		intents TEXT NOT NULL DEFAULT '',
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_turns_session ON turns(session_id, id);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Append records a turn. A zero CreatedAt is set to now.
func (s *Store) Append(ctx context.Context, t Turn) error {
	if t.SessionID == "" {
		return fmt.Errorf("turn has no session id")
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, input, reply, intents, created_at) VALUES (?, ?, ?, ?, ?)`,
		t.SessionID, t.Input, t.Reply, strings.Join(t.Intents, ","), t.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append turn: %w", err)
	}
	return nil
}

// Recent returns up to limit of the latest turns of a session, oldest first
func (s *Store) Recent(ctx context.Context, sessionID string, limit int) ([]Turn, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session_id, input, reply, intents, created_at
		 FROM turns
		 WHERE session_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		sessionID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var intents string
		var createdAt int64
		if err := rows.Scan(&t.ID, &t.SessionID, &t.Input, &t.Reply, &intents, &createdAt); err != nil {
			return nil, err
		}
		if intents != "" {
			t.Intents = strings.Split(intents, ",")
		}
		t.CreatedAt = time.UnixMilli(createdAt)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// Sessions lists sessions, most recently active first
func (s *Store) Sessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, COUNT(*), MAX(created_at)
		 FROM turns
		 GROUP BY session_id
		 ORDER BY MAX(id) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var lastAt int64
		if err := rows.Scan(&sess.ID, &sess.Turns, &lastAt); err != nil {
			return nil, err
		}
		sess.LastAt = time.UnixMilli(lastAt)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
