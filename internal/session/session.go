// Package session issues conversation identifiers for the chat client.
package session

import "github.com/google/uuid"

// Session scopes one continuous client conversation. The identifier is
// opaque: the server passes it through to logging context and keeps no
// session-scoped state.
type Session struct {
	ID string
}

// New creates a session with a globally-unique identifier. The chat
// controller holds it for its entire lifetime and attaches it to every
// outbound request.
func New() Session {
	return Session{ID: uuid.NewString()}
}
