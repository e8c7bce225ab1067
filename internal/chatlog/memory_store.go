package chatlog

import (
	"context"
	"sync"
)

// MemoryStore implements Store in memory, for development and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry

	// FailWith, when set, makes every Append return this error. Used to
	// exercise the swallow-on-failure path.
	FailWith error

	// Block, when set, makes Append wait until the channel is closed or
	// the context expires. Used to simulate a hung backend.
	Block chan struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Append(ctx context.Context, entry Entry) error {
	if m.Block != nil {
		select {
		case <-m.Block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWith != nil {
		return m.FailWith
	}
	m.entries = append(m.entries, entry)
	return nil
}

// Entries returns a copy of everything recorded so far.
func (m *MemoryStore) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *MemoryStore) Close() error {
	return nil
}
