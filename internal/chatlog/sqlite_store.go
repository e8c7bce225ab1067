package chatlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a local SQLite database. This is
// the default persistence collaborator.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (and creates, if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS chat_interactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		message TEXT NOT NULL,
		response TEXT NOT NULL,
		intent TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chat_interactions_session ON chat_interactions(session_id);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Append writes one interaction row.
func (s *SQLiteStore) Append(ctx context.Context, entry Entry) error {
	query := `
		INSERT INTO chat_interactions (session_id, message, response, intent, created_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		entry.SessionID, entry.Message, entry.Response, entry.Intent,
		entry.Timestamp.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// BySession returns the recorded interactions for a session, oldest
// first. Used by ops tooling and tests; the chat pipeline itself never
// reads back.
func (s *SQLiteStore) BySession(ctx context.Context, sessionID string) ([]Entry, error) {
	query := `
		SELECT session_id, message, response, intent, created_at
		FROM chat_interactions WHERE session_id = ? ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt int64
		if err := rows.Scan(&e.SessionID, &e.Message, &e.Response, &e.Intent, &createdAt); err != nil {
			return nil, fmt.Errorf("scan interaction row: %w", err)
		}
		e.Timestamp = time.Unix(createdAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
