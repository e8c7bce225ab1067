// Package chatlog persists message/response pairs on a best-effort,
// fire-and-forget basis. A logging outage must never delay a reply or
// surface an error to the user.
package chatlog

import (
	"context"
	"time"
)

// Section is the collection name understood by the persistence
// collaborator.
const Section = "chat_interaction"

// Entry is one write-once interaction record.
type Entry struct {
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}

// Store defines the interface for interaction persistence.
// This allows us to swap between SQLite, Redis, NATS, in-memory, etc.
type Store interface {
	// Append writes one interaction record.
	Append(ctx context.Context, entry Entry) error

	// Close releases the underlying connection.
	Close() error
}
