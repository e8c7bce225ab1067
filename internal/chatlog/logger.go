package chatlog

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultQueueSize = 256

// writeTimeout bounds how long the worker waits on a single store
// write, so a hung backend cannot back up the queue forever.
const writeTimeout = 5 * time.Second

// Logger decouples interaction writes from the request/response
// critical path: Record posts to a buffered channel and returns
// immediately; a single worker goroutine drains it. Store failures are
// logged at Warn and swallowed.
type Logger struct {
	store Store
	queue chan Entry
	done  chan struct{}
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewLogger starts the background worker. queueSize <= 0 uses the
// default.
func NewLogger(store Store, queueSize int) *Logger {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	l := &Logger{
		store: store,
		queue: make(chan Entry, queueSize),
		done:  make(chan struct{}),
	}
	l.wg.Add(1)
	go l.run()
	return l
}

// Record enqueues an entry without blocking. When the queue is full the
// entry is dropped; losing a log record must never slow down a reply.
func (l *Logger) Record(entry Entry) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()

	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	select {
	case l.queue <- entry:
	default:
		slog.Warn("chatlog queue full, dropping entry", "session_id", entry.SessionID)
	}
}

func (l *Logger) run() {
	defer l.wg.Done()
	for {
		select {
		case entry := <-l.queue:
			l.write(entry)
		case <-l.done:
			// Drain what is already queued before exiting.
			for {
				select {
				case entry := <-l.queue:
					l.write(entry)
				default:
					return
				}
			}
		}
	}
}

func (l *Logger) write(entry Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := l.store.Append(ctx, entry); err != nil {
		slog.Warn("failed to persist chat interaction",
			"section", Section,
			"session_id", entry.SessionID,
			"error", err,
		)
	}
}

// Close stops the worker, flushes queued entries and closes the store.
func (l *Logger) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	l.mu.Unlock()

	close(l.done)
	l.wg.Wait()
	return l.store.Close()
}
