package chatlog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSStore implements Store by publishing each record to a NATS
// subject, for deployments where a separate consumer owns the actual
// database write. Publishing is itself fire-and-forget; a slow or
// absent consumer never affects the chat pipeline.
type NATSStore struct {
	conn    *nats.Conn
	subject string
}

// NewNATSStore connects to NATS with infinite reconnects, matching the
// delivery expectations of a best-effort log stream.
func NewNATSStore(natsURL, subject, name string) (*NATSStore, error) {
	conn, err := nats.Connect(natsURL,
		nats.Name(name),
		nats.Timeout(10*time.Second),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSStore{conn: conn, subject: subject}, nil
}

type natsRecord struct {
	Section string `json:"section"`
	Payload Entry  `json:"payload"`
}

// Append publishes one record wrapped in the section envelope the
// persistence collaborator expects.
func (n *NATSStore) Append(ctx context.Context, entry Entry) error {
	data, err := json.Marshal(natsRecord{Section: Section, Payload: entry})
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	if err := n.conn.Publish(n.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", n.subject, err)
	}
	return nil
}

// Close flushes pending publishes and closes the connection.
func (n *NATSStore) Close() error {
	if n.conn != nil {
		_ = n.conn.Flush()
		n.conn.Close()
	}
	return nil
}
